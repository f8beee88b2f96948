package view

import (
	"context"
	"sync"

	"github.com/kedare/wordsmith/internal/api"
	"github.com/kedare/wordsmith/internal/logger"
)

// Solver answers solve requests.
type Solver interface {
	Solve(ctx context.Context, req api.SolveRequest) (*api.SolveResponse, error)
}

// Copier writes text to the clipboard on behalf of a control.
type Copier interface {
	Copy(ctx context.Context, text, controlID string) error
}

// Recorder remembers submitted letters.
type Recorder interface {
	Record(letters string) error
}

// Sink applies state to the presentation. Methods are called with the
// controller lock held and must not call Dispatch synchronously.
type Sink interface {
	ApplyStatus(s State)
	ApplyResults(s State)
	ApplyGroup(s State, index int)
}

// Controller owns the State of one session and dispatches events to it.
type Controller struct {
	mu       sync.Mutex
	state    State
	ctx      context.Context
	solver   Solver
	sink     Sink
	copier   Copier
	recorder Recorder
	inflight sync.WaitGroup
}

// ControllerOption customises a Controller.
type ControllerOption func(*Controller)

// WithCopier enables Copy events.
func WithCopier(c Copier) ControllerOption {
	return func(ctrl *Controller) {
		ctrl.copier = c
	}
}

// WithRecorder records every submitted letter set.
func WithRecorder(r Recorder) ControllerOption {
	return func(ctrl *Controller) {
		ctrl.recorder = r
	}
}

// WithMode sets the initial renderer.
func WithMode(mode api.ViewType) ControllerOption {
	return func(ctrl *Controller) {
		ctrl.state.Mode = mode
	}
}

// NewController binds a fresh State to solver and sink. ctx bounds every solve.
func NewController(ctx context.Context, solver Solver, sink Sink, opts ...ControllerOption) *Controller {
	if ctx == nil {
		ctx = context.Background()
	}

	c := &Controller{
		state:  NewState(api.ViewGrouped),
		ctx:    ctx,
		solver: solver,
		sink:   sink,
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// State returns a snapshot of the current state.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.state
}

// Dispatch applies ev and runs the resulting effects.
func (c *Controller) Dispatch(ev Event) {
	c.mu.Lock()
	defer c.mu.Unlock()

	switch e := ev.(type) {
	case Submit:
		if c.state.Status == StatusLoading {
			logger.Log.Debugf("Ignoring submit while request #%d is in flight", c.state.Seq)
		}
	case SolveSucceeded:
		if !awaiting(c.state, e.Seq) {
			logger.Log.Debugf("Discarding stale response #%d (current #%d)", e.Seq, c.state.Seq)
		}
	case SolveFailed:
		if !awaiting(c.state, e.Seq) {
			logger.Log.Debugf("Discarding stale failure #%d (current #%d)", e.Seq, c.state.Seq)
		}
	}

	next, effects := Reduce(c.state, ev)
	c.state = next

	for _, eff := range effects {
		c.run(next, eff)
	}
}

func (c *Controller) run(s State, eff Effect) {
	switch e := eff.(type) {
	case StatusEffect:
		if c.sink != nil {
			c.sink.ApplyStatus(s)
		}
	case RenderEffect:
		if c.sink != nil {
			c.sink.ApplyResults(s)
		}
	case RenderGroupEffect:
		if c.sink != nil {
			c.sink.ApplyGroup(s, e.Index)
		}
	case SolveEffect:
		c.inflight.Add(1)
		go c.solve(e)
	case CopyEffect:
		if c.copier == nil {
			logger.Log.Debugf("No clipboard configured, dropping copy from %s", e.ControlID)

			return
		}

		c.inflight.Add(1)
		go c.copy(e)
	}
}

func (c *Controller) solve(e SolveEffect) {
	defer c.inflight.Done()

	if c.recorder != nil {
		if err := c.recorder.Record(e.Request.Letters); err != nil {
			logger.Log.Warnf("Failed to record %q in history: %v", e.Request.Letters, err)
		}
	}

	logger.Log.Debugf("Solving #%d: letters=%q view=%s group_by=%s", e.Seq, e.Request.Letters, e.Request.ViewType, e.Request.GroupBy)

	resp, err := c.solver.Solve(c.ctx, e.Request)
	if err != nil {
		logger.Log.Debugf("Solve #%d failed: %v", e.Seq, err)
		c.Dispatch(SolveFailed{Seq: e.Seq, Message: api.ErrorMessage(err)})

		return
	}

	c.Dispatch(SolveSucceeded{Seq: e.Seq, Response: resp})
}

func (c *Controller) copy(e CopyEffect) {
	defer c.inflight.Done()

	if err := c.copier.Copy(c.ctx, e.Text, e.ControlID); err != nil {
		logger.Log.Debugf("Copy from %s failed: %v", e.ControlID, err)
	}
}

// Wait blocks until every solve and copy started so far has finished.
func (c *Controller) Wait() {
	c.inflight.Wait()
}
