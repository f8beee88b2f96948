package view

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kedare/wordsmith/internal/api"
)

type stubSolver struct {
	mu       sync.Mutex
	requests []api.SolveRequest
	release  chan struct{}
	resp     *api.SolveResponse
	err      error
}

func (s *stubSolver) Solve(ctx context.Context, req api.SolveRequest) (*api.SolveResponse, error) {
	s.mu.Lock()
	s.requests = append(s.requests, req)
	s.mu.Unlock()

	if s.release != nil {
		select {
		case <-s.release:
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}

	return s.resp, s.err
}

func (s *stubSolver) calls() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.requests)
}

type recordingSink struct {
	mu     sync.Mutex
	events []string
	last   State
}

func (r *recordingSink) ApplyStatus(s State) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, "status:"+s.Status.String())
	r.last = s
}

func (r *recordingSink) ApplyResults(s State) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, "results")
	r.last = s
}

func (r *recordingSink) ApplyGroup(s State, index int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, "group")
	r.last = s
}

func (r *recordingSink) log() []string {
	r.mu.Lock()
	defer r.mu.Unlock()

	return append([]string(nil), r.events...)
}

type stubCopier struct {
	mu     sync.Mutex
	copied map[string]string
	err    error
}

func (c *stubCopier) Copy(_ context.Context, text, id string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.copied == nil {
		c.copied = make(map[string]string)
	}
	c.copied[id] = text

	return c.err
}

type stubRecorder struct {
	mu      sync.Mutex
	letters []string
}

func (r *stubRecorder) Record(letters string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.letters = append(r.letters, letters)

	return errors.New("disk full")
}

func TestControllerSuccessfulSolve(t *testing.T) {
	solver := &stubSolver{resp: sampleGrouped()}
	sink := &recordingSink{}
	rec := &stubRecorder{}
	ctrl := NewController(context.Background(), solver, sink, WithRecorder(rec))

	ctrl.Dispatch(Submit{Form: validForm("tacs")})
	ctrl.Wait()

	s := ctrl.State()
	assert.Equal(t, StatusSuccess, s.Status)
	assert.Equal(t, 7, s.Response.TotalWords)
	assert.Equal(t, []string{"status:loading", "status:success", "results"}, sink.log())
	assert.Equal(t, []string{"tacs"}, rec.letters)
	assert.Equal(t, 1, solver.calls())
}

func TestControllerServerErrorMessage(t *testing.T) {
	solver := &stubSolver{err: &api.APIError{Status: 400, Message: "Invalid letters"}}
	sink := &recordingSink{}
	ctrl := NewController(context.Background(), solver, sink)

	ctrl.Dispatch(Submit{Form: validForm("a1")})
	ctrl.Wait()

	s := ctrl.State()
	assert.Equal(t, StatusFailure, s.Status)
	assert.Equal(t, "Invalid letters", s.Error)
	assert.Nil(t, s.Response)
}

func TestControllerTransportErrorUsesGenericMessage(t *testing.T) {
	solver := &stubSolver{err: &api.TransportError{Op: "solve", Err: errors.New("connection refused")}}
	ctrl := NewController(context.Background(), solver, &recordingSink{})

	ctrl.Dispatch(Submit{Form: validForm("abc")})
	ctrl.Wait()

	assert.Equal(t, api.GenericFailure, ctrl.State().Error)
}

func TestControllerBlocksSecondSubmitWhileLoading(t *testing.T) {
	solver := &stubSolver{resp: sampleGrouped(), release: make(chan struct{})}
	sink := &recordingSink{}
	ctrl := NewController(context.Background(), solver, sink)

	ctrl.Dispatch(Submit{Form: validForm("tacs")})
	ctrl.Dispatch(Submit{Form: validForm("other")})
	assert.False(t, ctrl.State().SubmitEnabled())

	close(solver.release)
	ctrl.Wait()

	assert.Equal(t, 1, solver.calls())
	assert.Equal(t, uint64(1), ctrl.State().Seq)
	assert.True(t, ctrl.State().SubmitEnabled())
}

func TestControllerValidationNeverCallsSolver(t *testing.T) {
	solver := &stubSolver{}
	sink := &recordingSink{}
	ctrl := NewController(context.Background(), solver, sink)

	ctrl.Dispatch(Submit{Form: validForm("")})
	ctrl.Wait()

	assert.Equal(t, 0, solver.calls())
	assert.Equal(t, "Please enter some letters", ctrl.State().Error)
	assert.Equal(t, []string{"status:idle"}, sink.log())
}

func TestControllerToggleAndModeDoNotSolve(t *testing.T) {
	solver := &stubSolver{resp: sampleGrouped()}
	sink := &recordingSink{}
	ctrl := NewController(context.Background(), solver, sink)

	ctrl.Dispatch(Submit{Form: validForm("tacs")})
	ctrl.Wait()

	ctrl.Dispatch(ToggleGroup{Index: 0})
	ctrl.Dispatch(SelectMode{Mode: api.ViewFlat})
	ctrl.Dispatch(SelectMode{Mode: api.ViewGrouped})
	ctrl.Wait()

	assert.Equal(t, 1, solver.calls())
	assert.Equal(t, []string{"status:loading", "status:success", "results", "group", "results", "results"}, sink.log())
	assert.Equal(t, Collapse{false, true, true}, ctrl.State().Collapse)
}

func TestControllerCopy(t *testing.T) {
	copier := &stubCopier{}
	ctrl := NewController(context.Background(), &stubSolver{}, nil, WithCopier(copier))

	ctrl.Dispatch(Copy{ControlID: "copy-word-0", Text: "quiz"})
	ctrl.Wait()

	assert.Equal(t, map[string]string{"copy-word-0": "quiz"}, copier.copied)

	copier.err = errors.New("no clipboard")
	ctrl.Dispatch(Copy{ControlID: "copy-word-1", Text: "zit"})
	ctrl.Wait()
	assert.Equal(t, "zit", copier.copied["copy-word-1"])
}

func TestControllerCopyWithoutCopier(t *testing.T) {
	ctrl := NewController(context.Background(), &stubSolver{}, nil)
	ctrl.Dispatch(Copy{ControlID: "copy-word-0", Text: "quiz"})
	ctrl.Wait()
}

func TestControllerWithMode(t *testing.T) {
	//nolint:staticcheck // a nil context falls back to Background
	ctrl := NewController(nil, &stubSolver{}, nil, WithMode(api.ViewFlat))
	require.NotNil(t, ctrl)
	assert.Equal(t, api.ViewFlat, ctrl.State().Mode)
}

func TestControllerCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	solver := &stubSolver{release: make(chan struct{})}
	ctrl := NewController(ctx, solver, &recordingSink{})

	ctrl.Dispatch(Submit{Form: validForm("abc")})
	cancel()
	ctrl.Wait()

	assert.Equal(t, StatusFailure, ctrl.State().Status)
	assert.Equal(t, api.GenericFailure, ctrl.State().Error)
}
