package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/kedare/wordsmith/internal/api"
	"github.com/kedare/wordsmith/internal/logger"
)

// Workbook sheet names.
const (
	SheetSummary = "Summary"
	SheetWords   = "Words"
	SheetGroups  = "Groups"
)

// SaveWorkbook writes resp as an .xlsx file at path.
func SaveWorkbook(path string, resp *api.SolveResponse) error {
	f, err := buildWorkbook(resp)
	if err != nil {
		return err
	}
	defer closeWorkbook(f)

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("save workbook %s: %w", path, err)
	}

	logger.Log.Debugf("Wrote %d words to %s", resp.TotalWords, path)

	return nil
}

// WriteWorkbook streams resp as an .xlsx document to w.
func WriteWorkbook(w io.Writer, resp *api.SolveResponse) error {
	f, err := buildWorkbook(resp)
	if err != nil {
		return err
	}
	defer closeWorkbook(f)

	return f.Write(w)
}

func closeWorkbook(f *excelize.File) {
	if err := f.Close(); err != nil {
		logger.Log.Debugf("Failed to close workbook: %v", err)
	}
}

func buildWorkbook(resp *api.SolveResponse) (*excelize.File, error) {
	if resp == nil {
		return nil, ErrNoResponse
	}

	f := excelize.NewFile()

	if err := f.SetSheetName("Sheet1", SheetSummary); err != nil {
		closeWorkbook(f)

		return nil, err
	}

	steps := []func(*excelize.File, *api.SolveResponse) error{summarySheet, wordsSheet}
	if resp.ViewType == api.ViewGrouped {
		steps = append(steps, groupsSheet)
	}

	for _, step := range steps {
		if err := step(f, resp); err != nil {
			closeWorkbook(f)

			return nil, fmt.Errorf("build workbook: %w", err)
		}
	}

	return f, nil
}

func summarySheet(f *excelize.File, resp *api.SolveResponse) error {
	rows := [][]interface{}{
		{"Letters", resp.Letters},
		{"Total words", resp.TotalWords},
		{"View", string(resp.ViewType)},
		{"Filters", resp.FiltersApplied},
	}

	if resp.Grouping != nil {
		rows = append(rows,
			[]interface{}{"Grouped by", string(resp.Grouping.Type)},
			[]interface{}{"Group order", string(resp.Grouping.SortOrder)},
		)
	}

	for i, row := range rows {
		cell, _ := excelize.CoordinatesToCellName(1, i+1)
		if err := f.SetSheetRow(SheetSummary, cell, &row); err != nil {
			return err
		}
	}

	return f.SetColWidth(SheetSummary, "A", "A", 14)
}

func wordsSheet(f *excelize.File, resp *api.SolveResponse) error {
	if _, err := f.NewSheet(SheetWords); err != nil {
		return err
	}

	header := []interface{}{"Rank", "Word", "Length", "Score"}
	grouped := resp.ViewType == api.ViewGrouped
	if grouped {
		header = append(header, "Group")
	}

	if err := writeHeader(f, SheetWords, header); err != nil {
		return err
	}

	line := 2
	write := func(rank int, w api.WordResult, group string) error {
		row := []interface{}{rank, w.Word, w.Length, w.Score}
		if grouped {
			row = append(row, group)
		}

		cell, _ := excelize.CoordinatesToCellName(1, line)
		line++

		return f.SetSheetRow(SheetWords, cell, &row)
	}

	if grouped {
		for _, g := range resp.Groups() {
			for i, w := range g.Words {
				if err := write(i+1, w, g.Name); err != nil {
					return err
				}
			}
		}
	} else {
		for i, w := range resp.Words {
			if err := write(i+1, w, ""); err != nil {
				return err
			}
		}
	}

	last, _ := excelize.CoordinatesToCellName(len(header), max(line-1, 1))
	if err := f.AutoFilter(SheetWords, "A1:"+last, nil); err != nil {
		return err
	}

	return f.SetColWidth(SheetWords, "B", "B", 18)
}

func groupsSheet(f *excelize.File, resp *api.SolveResponse) error {
	if _, err := f.NewSheet(SheetGroups); err != nil {
		return err
	}

	if err := writeHeader(f, SheetGroups, []interface{}{"Group", "Words", "Total score", "List"}); err != nil {
		return err
	}

	for i, g := range resp.Groups() {
		row := []interface{}{g.Name, g.Count, g.TotalScore, strings.Join(g.WordList(), ", ")}
		cell, _ := excelize.CoordinatesToCellName(1, i+2)

		if err := f.SetSheetRow(SheetGroups, cell, &row); err != nil {
			return err
		}
	}

	return f.SetColWidth(SheetGroups, "A", "A", 16)
}

func writeHeader(f *excelize.File, sheet string, header []interface{}) error {
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return err
	}

	style, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return err
	}

	last, _ := excelize.CoordinatesToCellName(len(header), 1)
	if err := f.SetCellStyle(sheet, "A1", last, style); err != nil {
		return err
	}

	return f.SetPanes(sheet, &excelize.Panes{
		Freeze:      true,
		YSplit:      1,
		TopLeftCell: "A2",
		ActivePane:  "bottomLeft",
	})
}
