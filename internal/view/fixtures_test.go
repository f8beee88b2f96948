package view

import (
	"sync"
	"time"

	"github.com/kedare/wordsmith/internal/api"
)

func word(w string, score int) api.WordResult {
	return api.WordResult{Word: w, Score: score, Length: len(w)}
}

func group(name string, words ...api.WordResult) api.Group {
	total := 0
	for _, w := range words {
		total += w.Score
	}

	return api.Group{Name: name, Count: len(words), TotalScore: total, Words: words}
}

func groupedResponse(letters string, groups ...api.Group) *api.SolveResponse {
	total := 0
	for _, g := range groups {
		total += g.Count
	}

	return &api.SolveResponse{
		Letters:        letters,
		TotalWords:     total,
		ViewType:       api.ViewGrouped,
		FiltersApplied: api.NoFiltersApplied,
		Grouping:       &api.Grouping{Type: api.GroupByLength, SortOrder: api.GroupOrderDesc, Groups: groups},
	}
}

func flatResponse(letters string, words ...api.WordResult) *api.SolveResponse {
	return &api.SolveResponse{
		Letters:        letters,
		TotalWords:     len(words),
		ViewType:       api.ViewFlat,
		FiltersApplied: api.NoFiltersApplied,
		Words:          words,
	}
}

func sampleGrouped() *api.SolveResponse {
	return groupedResponse("tacs",
		group("4 letters", word("cats", 6), word("acts", 6), word("scat", 6)),
		group("3 letters", word("cat", 5), word("act", 5), word("sat", 3)),
		group("2 letters", word("at", 2)),
	)
}

// succeeded drives s through a submit and a matching success.
func succeeded(resp *api.SolveResponse) State {
	s := NewState(api.ViewGrouped)
	s.Status = StatusLoading
	s.Seq = 1
	next, _ := Reduce(s, SolveSucceeded{Seq: 1, Response: resp})

	return next
}

type fakeTimer struct {
	d       time.Duration
	fn      func()
	stopped bool
}

func (t *fakeTimer) Stop() bool {
	was := !t.stopped
	t.stopped = true

	return was
}

type fakeClock struct {
	mu     sync.Mutex
	timers []*fakeTimer
}

func (c *fakeClock) AfterFunc(d time.Duration, fn func()) Stopper {
	c.mu.Lock()
	defer c.mu.Unlock()

	t := &fakeTimer{d: d, fn: fn}
	c.timers = append(c.timers, t)

	return t
}

// fire runs every pending, unstopped timer once.
func (c *fakeClock) fire() {
	c.mu.Lock()
	pending := c.timers
	c.timers = nil
	c.mu.Unlock()

	for _, t := range pending {
		if !t.stopped {
			t.stopped = true
			t.fn()
		}
	}
}
