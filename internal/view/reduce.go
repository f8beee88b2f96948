package view

import (
	"github.com/kedare/wordsmith/internal/api"
	"github.com/kedare/wordsmith/internal/form"
)

// Event is something the user or the solver did.
type Event interface {
	event()
}

// Submit asks for a new solve from the current form.
type Submit struct {
	Form form.State
}

// SolveSucceeded carries a 2xx answer for submission Seq.
type SolveSucceeded struct {
	Seq      uint64
	Response *api.SolveResponse
}

// SolveFailed carries the user-facing message for a failed submission Seq.
type SolveFailed struct {
	Seq     uint64
	Message string
}

// SelectMode switches between the grouped and flat renderers.
type SelectMode struct {
	Mode api.ViewType
}

// ToggleGroup opens or closes one group.
type ToggleGroup struct {
	Index int
}

// Copy puts Text on the clipboard on behalf of the control ControlID.
type Copy struct {
	ControlID string
	Text      string
}

// DismissError hides the error panel.
type DismissError struct{}

func (Submit) event()         {}
func (SolveSucceeded) event() {}
func (SolveFailed) event()    {}
func (SelectMode) event()     {}
func (ToggleGroup) event()    {}
func (Copy) event()           {}
func (DismissError) event()   {}

// Effect is work to perform after a transition.
type Effect interface {
	effect()
}

// SolveEffect sends Request to the solver, tagged with Seq.
type SolveEffect struct {
	Seq     uint64
	Request api.SolveRequest
}

// StatusEffect refreshes loading/error/results visibility and the submit control.
type StatusEffect struct{}

// RenderEffect rebuilds the whole result list.
type RenderEffect struct{}

// RenderGroupEffect rebuilds one group and nothing else.
type RenderGroupEffect struct {
	Index int
}

// CopyEffect writes Text to the clipboard for ControlID.
type CopyEffect struct {
	ControlID string
	Text      string
}

func (SolveEffect) effect()       {}
func (StatusEffect) effect()      {}
func (RenderEffect) effect()      {}
func (RenderGroupEffect) effect() {}
func (CopyEffect) effect()        {}

// Reduce applies ev to s. It has no side effects; the returned effects describe
// what the caller must do next, in order.
func Reduce(s State, ev Event) (State, []Effect) {
	switch ev := ev.(type) {
	case Submit:
		return reduceSubmit(s, ev)
	case SolveSucceeded:
		if !awaiting(s, ev.Seq) {
			return s, nil
		}

		if ev.Response == nil {
			return Reduce(s, SolveFailed{Seq: ev.Seq})
		}

		s.Status = StatusSuccess
		s.Response = ev.Response
		s.Error = ""
		s.Collapse = NewCollapse(len(ev.Response.Groups()))
		if ev.Response.ViewType != "" {
			s.Mode = ev.Response.ViewType
		}

		return s, []Effect{StatusEffect{}, RenderEffect{}}
	case SolveFailed:
		if !awaiting(s, ev.Seq) {
			return s, nil
		}

		s.Status = StatusFailure
		s.Response = nil
		s.Collapse = nil
		s.Error = ev.Message
		if s.Error == "" {
			s.Error = api.GenericFailure
		}

		return s, []Effect{StatusEffect{}, RenderEffect{}}
	case SelectMode:
		if !s.ToggleVisible() || ev.Mode == s.Mode {
			return s, nil
		}

		if ev.Mode != api.ViewGrouped && ev.Mode != api.ViewFlat {
			return s, nil
		}

		s.Mode = ev.Mode

		return s, []Effect{RenderEffect{}}
	case ToggleGroup:
		if s.Response == nil || s.EffectiveMode() != api.ViewGrouped {
			return s, nil
		}

		next, ok := s.Collapse.Toggle(ev.Index)
		if !ok {
			return s, nil
		}

		s.Collapse = next

		return s, []Effect{RenderGroupEffect{Index: ev.Index}}
	case Copy:
		if ev.Text == "" || ev.ControlID == "" {
			return s, nil
		}

		return s, []Effect{CopyEffect{ControlID: ev.ControlID, Text: ev.Text}}
	case DismissError:
		if s.Error == "" {
			return s, nil
		}

		s.Error = ""

		return s, []Effect{StatusEffect{}}
	default:
		return s, nil
	}
}

func reduceSubmit(s State, ev Submit) (State, []Effect) {
	// The submit control is disabled while loading; a second trigger that slips
	// through (keyboard shortcut racing a click) is dropped here.
	if s.Status == StatusLoading {
		return s, nil
	}

	req, err := form.Build(ev.Form)
	if err != nil {
		s.Error = err.Error()

		return s, []Effect{StatusEffect{}}
	}

	s.Status = StatusLoading
	s.Seq++
	s.Error = ""

	return s, []Effect{StatusEffect{}, SolveEffect{Seq: s.Seq, Request: req}}
}

func awaiting(s State, seq uint64) bool {
	return s.Status == StatusLoading && seq == s.Seq
}
