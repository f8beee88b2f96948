// Package view holds the result view-state controller: the state machine that
// drives a solve, the single result slot, per-group collapse flags, copy
// acknowledgements and the renderer that turns all of it into an element tree.
package view

import (
	"github.com/kedare/wordsmith/internal/api"
)

// Status is the lifecycle position of the current query.
type Status int

const (
	StatusIdle Status = iota
	StatusLoading
	StatusSuccess
	StatusFailure
)

func (s Status) String() string {
	switch s {
	case StatusIdle:
		return "idle"
	case StatusLoading:
		return "loading"
	case StatusSuccess:
		return "success"
	case StatusFailure:
		return "failure"
	default:
		return "unknown"
	}
}

// State is the client-owned view state of one session. It is a value: Reduce
// returns a new State and never mutates the one it was given.
type State struct {
	Status Status
	// Seq identifies the most recent submission; responses carrying another Seq are stale.
	Seq uint64
	// Response is the last successful answer, replaced wholesale and cleared on failure.
	Response *api.SolveResponse
	// Mode is the renderer selected by the user.
	Mode     api.ViewType
	Collapse Collapse
	// Error is the message in the error panel, empty when hidden.
	Error string
}

// NewState returns an idle session rendering in mode.
func NewState(mode api.ViewType) State {
	if mode == "" {
		mode = api.ViewGrouped
	}

	return State{Status: StatusIdle, Mode: mode}
}

// SubmitEnabled is false only while a solve is in flight.
func (s State) SubmitEnabled() bool {
	return s.Status != StatusLoading
}

// LoadingVisible reports whether the loading indicator is shown.
func (s State) LoadingVisible() bool {
	return s.Status == StatusLoading
}

// ErrorVisible reports whether the error panel is shown.
func (s State) ErrorVisible() bool {
	return s.Status != StatusLoading && s.Error != ""
}

// ResultsVisible reports whether the results panel is shown.
func (s State) ResultsVisible() bool {
	return s.Status == StatusSuccess && s.Response != nil
}

// ToggleVisible reports whether the grouped/flat switch applies to the held response.
func (s State) ToggleVisible() bool {
	return s.Response != nil && s.Response.ViewType == api.ViewGrouped
}

// EffectiveMode is the strategy the renderer uses for the held response.
// A flat response cannot be regrouped client side, so it always renders flat.
func (s State) EffectiveMode() api.ViewType {
	if s.Response != nil && s.Response.ViewType != api.ViewGrouped {
		return api.ViewFlat
	}

	return s.Mode
}
