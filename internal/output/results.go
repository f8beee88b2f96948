package output

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/mattn/go-runewidth"
	"gopkg.in/yaml.v3"

	"github.com/kedare/wordsmith/internal/view"
)

var (
	// ErrNoResponse is returned when the state holds nothing to display.
	ErrNoResponse = errors.New("no results to display")
	// ErrUnsupportedFormat is returned by DisplayValue for formats it leaves to the caller.
	ErrUnsupportedFormat = errors.New("format not supported for this value")
)

// DisplayValue writes v as JSON or YAML. Other formats return
// ErrUnsupportedFormat so the caller can print its own human layout.
func DisplayValue(w io.Writer, v any, format string) error {
	switch strings.ToLower(format) {
	case FormatJSON:
		return writeJSON(w, v)
	case FormatYAML:
		return writeYAML(w, v)
	default:
		return ErrUnsupportedFormat
	}
}

// DisplayResponse renders the results held by s to w.
//
// Supported formats:
//   - "json": the raw solve response
//   - "yaml": the raw solve response as YAML
//   - "html": the results tree as an HTML fragment
//   - "table": one row per word, grouped rows separated
//   - "text" (default): summary, banner and a ranked word list
func DisplayResponse(w io.Writer, s view.State, format string) error {
	if s.Response == nil {
		return ErrNoResponse
	}

	switch strings.ToLower(format) {
	case FormatJSON:
		return writeJSON(w, s.Response)
	case FormatYAML:
		return writeYAML(w, s.Response)
	}

	root := view.Renderer{}.Render(s)

	switch strings.ToLower(format) {
	case FormatHTML:
		if err := view.WriteHTML(w, root); err != nil {
			return err
		}
		_, err := io.WriteString(w, "\n")

		return err
	case FormatTable:
		return writeTable(w, root)
	default:
		p := &textPrinter{color: colorEnabled(w), width: terminalWidth()}
		p.results(root)
		_, err := io.WriteString(w, p.String())

		return err
	}
}

func writeJSON(w io.Writer, data interface{}) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")

	return encoder.Encode(data)
}

func writeYAML(w io.Writer, data interface{}) error {
	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)

	if err := encoder.Encode(data); err != nil {
		return fmt.Errorf("encode yaml: %w", err)
	}

	return encoder.Close()
}

type textPrinter struct {
	strings.Builder
	color bool
	width int
}

func (p *textPrinter) style(value string, colors ...text.Color) string {
	if !p.color || value == "" {
		return value
	}

	return text.Colors(colors).Sprint(value)
}

func (p *textPrinter) results(root *view.Node) {
	for _, child := range root.Children {
		switch child.Kind {
		case view.KindSummary:
			p.WriteString(p.style(child.Text, text.Bold) + "\n")
		case view.KindBanner:
			p.WriteString(p.style(child.Text, text.FgYellow) + "\n")
		case view.KindToggle:
			p.toggle(child)
		case view.KindNotice:
			p.rule()
			p.WriteString(child.Text + "\n")
		case view.KindList:
			p.rule()
			p.rows(child.Children, "")
		case view.KindGroups:
			p.rule()
			for _, g := range child.Children {
				p.group(g)
			}
		}
	}
}

func (p *textPrinter) rule() {
	width := p.width
	if width > maxRuleWidth {
		width = maxRuleWidth
	}

	p.WriteString(p.style(strings.Repeat("─", width), text.Faint) + "\n")
}

func (p *textPrinter) toggle(n *view.Node) {
	labels := make([]string, 0, len(n.Children))
	for _, opt := range n.Children {
		if opt.Attr(view.AttrSelected) == "true" {
			labels = append(labels, p.style("["+opt.Text+"]", text.Bold, text.FgCyan))
		} else {
			labels = append(labels, opt.Text)
		}
	}

	p.WriteString("View: " + strings.Join(labels, " ") + "\n")
}

func (p *textPrinter) group(g *view.Node) {
	header := g.Child(view.KindGroupHeader)
	if header == nil {
		return
	}

	fmt.Fprintf(p, "%s %s  %s\n",
		header.Attr(view.AttrOpen),
		p.style(header.Text, text.Bold),
		p.style(fmt.Sprintf("(%s · %s)", header.Attr(view.AttrCount), header.Attr(view.AttrScore)), text.Faint),
	)

	if body := g.Child(view.KindGroupBody); body != nil {
		p.rows(body.Children, "  ")
	}
}

func (p *textPrinter) rows(rows []*view.Node, indent string) {
	wordWidth, rankWidth := 0, 0
	for _, row := range rows {
		wordWidth = max(wordWidth, runewidth.StringWidth(row.Child(view.KindWord).Text))
		rankWidth = max(rankWidth, runewidth.StringWidth(row.Child(view.KindRank).Text))
	}

	for _, row := range rows {
		badge := row.Child(view.KindBadge)
		fmt.Fprintf(p, "%s%s  %s  %s  %s\n",
			indent,
			runewidth.FillLeft(row.Child(view.KindRank).Text, rankWidth),
			runewidth.FillRight(row.Child(view.KindWord).Text, wordWidth),
			runewidth.FillRight(row.Child(view.KindLength).Text, len("15 letters")),
			p.style(badge.Text, scoreColors(badge.Class)...),
		)
	}
}

func scoreColors(class string) []text.Color {
	switch class {
	case "high-score":
		return []text.Color{text.Bold, text.FgGreen}
	case "medium-score":
		return []text.Color{text.FgYellow}
	default:
		return nil
	}
}

func writeTable(w io.Writer, root *view.Node) error {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)

	if summary := root.Find("summary"); summary != nil {
		tw.SetTitle(summary.Text)
	}

	if banner := root.Find("filter-summary"); banner != nil {
		tw.SetCaption(banner.Text)
	}

	right := []table.ColumnConfig{}

	switch {
	case root.Find("groups") != nil:
		tw.AppendHeader(table.Row{"Group", "#", "Word", "Length", "Score"})
		right = append(right, table.ColumnConfig{Number: 2, Align: text.AlignRight}, table.ColumnConfig{Number: 5, Align: text.AlignRight})

		groups := root.FindAll(view.KindGroup)
		for i, g := range groups {
			header := g.Child(view.KindGroupHeader)
			body := g.Child(view.KindGroupBody)

			if body == nil {
				tw.AppendRow(table.Row{header.Text, "", "(collapsed)", header.Attr(view.AttrCount), header.Attr(view.AttrScore)})
			} else {
				for _, row := range body.Children {
					tw.AppendRow(table.Row{header.Text, row.Attr(view.AttrRank), row.Attr(view.AttrWord), row.Attr(view.AttrLength), row.Attr(view.AttrScore)})
				}
			}

			if i < len(groups)-1 {
				tw.AppendSeparator()
			}
		}
	case root.Find("word-list") != nil:
		tw.AppendHeader(table.Row{"#", "Word", "Length", "Score"})
		right = append(right, table.ColumnConfig{Number: 1, Align: text.AlignRight}, table.ColumnConfig{Number: 4, Align: text.AlignRight})

		for _, row := range root.FindAll(view.KindRow) {
			tw.AppendRow(table.Row{row.Attr(view.AttrRank), row.Attr(view.AttrWord), row.Attr(view.AttrLength), row.Attr(view.AttrScore)})
		}
	default:
		if notice := root.Find("no-results"); notice != nil {
			_, err := fmt.Fprintln(w, notice.Text)

			return err
		}
	}

	tw.SetColumnConfigs(right)
	_, err := io.WriteString(w, tw.Render()+"\n")

	return err
}
