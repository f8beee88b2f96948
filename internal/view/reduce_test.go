package view

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kedare/wordsmith/internal/api"
	"github.com/kedare/wordsmith/internal/form"
)

func validForm(letters string) form.State {
	f := form.NewState(form.StandardDefaults())
	f.Letters = letters

	return f
}

func TestStatusString(t *testing.T) {
	assert.Equal(t, "idle", StatusIdle.String())
	assert.Equal(t, "loading", StatusLoading.String())
	assert.Equal(t, "success", StatusSuccess.String())
	assert.Equal(t, "failure", StatusFailure.String())
	assert.Equal(t, "unknown", Status(42).String())
}

func TestNewStateDefaultsToGrouped(t *testing.T) {
	s := NewState("")
	assert.Equal(t, api.ViewGrouped, s.Mode)
	assert.Equal(t, StatusIdle, s.Status)
	assert.True(t, s.SubmitEnabled())
	assert.False(t, s.LoadingVisible())
	assert.False(t, s.ErrorVisible())
	assert.False(t, s.ResultsVisible())
	assert.False(t, s.ToggleVisible())
}

func TestSubmitEntersLoading(t *testing.T) {
	s, effects := Reduce(NewState(api.ViewGrouped), Submit{Form: validForm("tacs")})

	assert.Equal(t, StatusLoading, s.Status)
	assert.Equal(t, uint64(1), s.Seq)
	assert.False(t, s.SubmitEnabled())
	assert.True(t, s.LoadingVisible())
	assert.False(t, s.ResultsVisible())

	require.Len(t, effects, 2)
	assert.Equal(t, StatusEffect{}, effects[0])

	solve, ok := effects[1].(SolveEffect)
	require.True(t, ok)
	assert.Equal(t, uint64(1), solve.Seq)
	assert.Equal(t, "tacs", solve.Request.Letters)
	assert.True(t, solve.Request.Filters.IsZero())
}

func TestSubmitWithoutLettersShowsErrorAndKeepsResults(t *testing.T) {
	prev := succeeded(sampleGrouped())

	s, effects := Reduce(prev, Submit{Form: validForm("   ")})

	assert.Equal(t, StatusSuccess, s.Status)
	assert.Equal(t, "Please enter some letters", s.Error)
	assert.True(t, s.ErrorVisible())
	assert.True(t, s.ResultsVisible())
	assert.Same(t, prev.Response, s.Response)
	assert.Equal(t, prev.Seq, s.Seq)
	assert.Equal(t, []Effect{StatusEffect{}}, effects)
}

func TestSubmitIgnoredWhileLoading(t *testing.T) {
	s, _ := Reduce(NewState(api.ViewGrouped), Submit{Form: validForm("abc")})

	again, effects := Reduce(s, Submit{Form: validForm("xyz")})

	assert.Equal(t, s, again)
	assert.Empty(t, effects)
}

func TestSuccessReplacesResponseAndOpensAllGroups(t *testing.T) {
	s, _ := Reduce(NewState(api.ViewGrouped), Submit{Form: validForm("tacs")})
	resp := sampleGrouped()

	s, effects := Reduce(s, SolveSucceeded{Seq: s.Seq, Response: resp})

	assert.Equal(t, StatusSuccess, s.Status)
	assert.Same(t, resp, s.Response)
	assert.Equal(t, Collapse{true, true, true}, s.Collapse)
	assert.True(t, s.ResultsVisible())
	assert.True(t, s.ToggleVisible())
	assert.Equal(t, []Effect{StatusEffect{}, RenderEffect{}}, effects)
}

func TestSuccessAdoptsResponseViewType(t *testing.T) {
	s := NewState(api.ViewGrouped)
	s.Status = StatusLoading
	s.Seq = 3

	s, _ = Reduce(s, SolveSucceeded{Seq: 3, Response: flatResponse("ab", word("ab", 4))})

	assert.Equal(t, api.ViewFlat, s.Mode)
	assert.False(t, s.ToggleVisible())
	assert.Equal(t, api.ViewFlat, s.EffectiveMode())
	assert.Nil(t, s.Collapse)
}

func TestStaleResponsesAreDiscarded(t *testing.T) {
	s := NewState(api.ViewGrouped)
	s.Status = StatusLoading
	s.Seq = 2

	next, effects := Reduce(s, SolveSucceeded{Seq: 1, Response: sampleGrouped()})
	assert.Equal(t, s, next)
	assert.Empty(t, effects)

	next, effects = Reduce(s, SolveFailed{Seq: 1, Message: "boom"})
	assert.Equal(t, s, next)
	assert.Empty(t, effects)

	done := succeeded(sampleGrouped())
	next, effects = Reduce(done, SolveSucceeded{Seq: done.Seq, Response: flatResponse("x")})
	assert.Equal(t, done, next)
	assert.Empty(t, effects)
}

func TestFailureClearsResults(t *testing.T) {
	s := succeeded(sampleGrouped())
	s, _ = Reduce(s, Submit{Form: validForm("tacs")})
	require.Equal(t, StatusLoading, s.Status)

	s, effects := Reduce(s, SolveFailed{Seq: s.Seq, Message: "Invalid letters"})

	assert.Equal(t, StatusFailure, s.Status)
	assert.Nil(t, s.Response)
	assert.Nil(t, s.Collapse)
	assert.Equal(t, "Invalid letters", s.Error)
	assert.True(t, s.ErrorVisible())
	assert.False(t, s.ResultsVisible())
	assert.True(t, s.SubmitEnabled())
	assert.Equal(t, []Effect{StatusEffect{}, RenderEffect{}}, effects)
}

func TestFailureWithoutMessageUsesGenericText(t *testing.T) {
	s := NewState(api.ViewGrouped)
	s.Status = StatusLoading
	s.Seq = 1

	s, _ = Reduce(s, SolveFailed{Seq: 1})
	assert.Equal(t, api.GenericFailure, s.Error)
}

func TestNilResponseIsAFailure(t *testing.T) {
	s := NewState(api.ViewGrouped)
	s.Status = StatusLoading
	s.Seq = 1

	s, _ = Reduce(s, SolveSucceeded{Seq: 1})
	assert.Equal(t, StatusFailure, s.Status)
	assert.Equal(t, api.GenericFailure, s.Error)
}

func TestSelectModeRerendersWithoutNetwork(t *testing.T) {
	s := succeeded(sampleGrouped())

	flat, effects := Reduce(s, SelectMode{Mode: api.ViewFlat})
	assert.Equal(t, api.ViewFlat, flat.Mode)
	assert.Same(t, s.Response, flat.Response)
	assert.Equal(t, []Effect{RenderEffect{}}, effects)

	for _, eff := range effects {
		_, isSolve := eff.(SolveEffect)
		assert.False(t, isSolve)
	}

	same, effects := Reduce(flat, SelectMode{Mode: api.ViewFlat})
	assert.Equal(t, flat, same)
	assert.Empty(t, effects)

	back, _ := Reduce(flat, SelectMode{Mode: api.ViewGrouped})
	assert.Equal(t, api.ViewGrouped, back.Mode)
	assert.Equal(t, s.Collapse, back.Collapse)
}

func TestSelectModeIgnoredForFlatResponsesAndBadModes(t *testing.T) {
	s := succeeded(flatResponse("ab", word("ab", 4)))
	next, effects := Reduce(s, SelectMode{Mode: api.ViewGrouped})
	assert.Equal(t, s, next)
	assert.Empty(t, effects)

	g := succeeded(sampleGrouped())
	next, effects = Reduce(g, SelectMode{Mode: "tiles"})
	assert.Equal(t, g, next)
	assert.Empty(t, effects)

	idle := NewState(api.ViewGrouped)
	next, effects = Reduce(idle, SelectMode{Mode: api.ViewFlat})
	assert.Equal(t, idle, next)
	assert.Empty(t, effects)
}

func TestToggleGroupIsScoped(t *testing.T) {
	s := succeeded(sampleGrouped())

	next, effects := Reduce(s, ToggleGroup{Index: 1})

	assert.Equal(t, Collapse{true, false, true}, next.Collapse)
	assert.Equal(t, Collapse{true, true, true}, s.Collapse)
	assert.Equal(t, []Effect{RenderGroupEffect{Index: 1}}, effects)

	next, _ = Reduce(next, ToggleGroup{Index: 1})
	assert.Equal(t, Collapse{true, true, true}, next.Collapse)
}

func TestToggleGroupIgnoredOutsideGroupedView(t *testing.T) {
	s := succeeded(sampleGrouped())

	_, effects := Reduce(s, ToggleGroup{Index: 9})
	assert.Empty(t, effects)

	flat, _ := Reduce(s, SelectMode{Mode: api.ViewFlat})
	next, effects := Reduce(flat, ToggleGroup{Index: 0})
	assert.Equal(t, flat, next)
	assert.Empty(t, effects)

	_, effects = Reduce(NewState(api.ViewGrouped), ToggleGroup{Index: 0})
	assert.Empty(t, effects)
}

func TestCollapseSurvivesModeRoundTripButNotNewResponse(t *testing.T) {
	s := succeeded(sampleGrouped())
	s, _ = Reduce(s, ToggleGroup{Index: 0})
	s, _ = Reduce(s, SelectMode{Mode: api.ViewFlat})
	s, _ = Reduce(s, SelectMode{Mode: api.ViewGrouped})
	assert.Equal(t, Collapse{false, true, true}, s.Collapse)

	s, _ = Reduce(s, Submit{Form: validForm("tacs")})
	s, _ = Reduce(s, SolveSucceeded{Seq: s.Seq, Response: sampleGrouped()})
	assert.Equal(t, Collapse{true, true, true}, s.Collapse)
}

func TestCopyEvent(t *testing.T) {
	s := succeeded(sampleGrouped())

	next, effects := Reduce(s, Copy{ControlID: "copy-word-0", Text: "quiz"})
	assert.Equal(t, s, next)
	assert.Equal(t, []Effect{CopyEffect{ControlID: "copy-word-0", Text: "quiz"}}, effects)

	_, effects = Reduce(s, Copy{ControlID: "copy-word-0"})
	assert.Empty(t, effects)
}

func TestDismissError(t *testing.T) {
	s, _ := Reduce(NewState(api.ViewGrouped), Submit{})
	require.True(t, s.ErrorVisible())

	s, effects := Reduce(s, DismissError{})
	assert.False(t, s.ErrorVisible())
	assert.Equal(t, []Effect{StatusEffect{}}, effects)

	_, effects = Reduce(s, DismissError{})
	assert.Empty(t, effects)
}

func TestUnknownEventIsIgnored(t *testing.T) {
	type other struct{ Event }

	s := NewState(api.ViewGrouped)
	next, effects := Reduce(s, other{})
	assert.Equal(t, s, next)
	assert.Empty(t, effects)
}
