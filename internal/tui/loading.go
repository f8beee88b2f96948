package tui

import (
	"fmt"
	"sync"
	"time"

	"github.com/rivo/tview"
)

var spinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

const spinnerInterval = 100 * time.Millisecond

// loadingIndicator is a one-line spinner shown while a solve is in flight.
type loadingIndicator struct {
	*tview.TextView
	queue func(func())

	mu      sync.Mutex
	frame   int
	message string
	done    chan struct{}
}

func newLoadingIndicator(queue func(func())) *loadingIndicator {
	return &loadingIndicator{
		TextView: tview.NewTextView().SetDynamicColors(true),
		queue:    queue,
	}
}

// start shows message and animates the spinner until stop. Calling start
// while running only swaps the message.
func (l *loadingIndicator) start(message string) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.message = message
	l.SetText(l.text())

	if l.done != nil {
		return
	}

	l.done = make(chan struct{})
	go l.animate(l.done)
}

// stop halts the animation and blanks the line.
func (l *loadingIndicator) stop() {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.done != nil {
		close(l.done)
		l.done = nil
	}
	l.frame = 0
	l.SetText("")
}

func (l *loadingIndicator) running() bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	return l.done != nil
}

func (l *loadingIndicator) animate(done chan struct{}) {
	ticker := time.NewTicker(spinnerInterval)
	defer ticker.Stop()

	for {
		select {
		case <-done:
			return
		case <-ticker.C:
			l.queue(func() {
				l.mu.Lock()
				defer l.mu.Unlock()

				if l.done != done {
					return
				}
				l.frame = (l.frame + 1) % len(spinnerFrames)
				l.SetText(l.text())
			})
		}
	}
}

func (l *loadingIndicator) text() string {
	return fmt.Sprintf(" [yellow]%s[-] %s", spinnerFrames[l.frame], l.message)
}
