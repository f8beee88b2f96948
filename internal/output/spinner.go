package output

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/pterm/pterm"
	"golang.org/x/term"
)

// Spinner wraps a pterm spinner that degrades to plain lines when stderr isn't
// a TTY and stays silent for machine-readable formats.
type Spinner struct {
	mu      sync.Mutex
	active  bool
	enabled bool
	quiet   bool
	stopped bool
	message string
	writer  io.Writer
	printer *pterm.SpinnerPrinter
}

// NewSpinner creates a spinner writing to stderr. Call Start before using.
func NewSpinner(message string) *Spinner {
	return newSpinner(os.Stderr, term.IsTerminal(int(os.Stderr.Fd())), message)
}

func newSpinner(w io.Writer, tty bool, message string) *Spinner {
	quiet := IsMachineMode()

	return &Spinner{
		enabled: tty && !quiet,
		quiet:   quiet,
		message: message,
		writer:  w,
	}
}

// Start begins rendering the spinner.
func (s *Spinner) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.stopped || s.active {
		return
	}
	s.active = true

	if s.quiet {
		return
	}

	if s.enabled {
		printer, err := pterm.DefaultSpinner.WithWriter(s.writer).WithRemoveWhenDone(true).Start(s.message)
		if err == nil {
			s.printer = printer

			return
		}
		s.enabled = false
	}

	fmt.Fprintf(s.writer, "%s...\n", s.message)
}

// Update replaces the spinner message.
func (s *Spinner) Update(message string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.message = message
	if !s.active || s.stopped || s.quiet {
		return
	}

	if s.printer != nil {
		s.printer.UpdateText(message)

		return
	}

	fmt.Fprintf(s.writer, "%s...\n", message)
}

// Stop stops the spinner without printing an additional message.
func (s *Spinner) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.stopped {
		return
	}
	s.stopped = true

	if s.printer != nil {
		_ = s.printer.Stop()
	}
}

// Success stops the spinner and prints a success message.
func (s *Spinner) Success(message string) {
	s.finish("✓", message, func(p *pterm.SpinnerPrinter) { p.Success(message) })
}

// Fail stops the spinner and prints a failure message.
func (s *Spinner) Fail(message string) {
	s.finish("✗", message, func(p *pterm.SpinnerPrinter) { p.Fail(message) })
}

func (s *Spinner) finish(prefix, message string, done func(*pterm.SpinnerPrinter)) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.quiet {
		s.stopped = true

		return
	}

	if !s.stopped && s.printer != nil {
		s.stopped = true
		done(s.printer)

		return
	}
	s.stopped = true

	if message != "" {
		fmt.Fprintf(s.writer, "%s %s\n", prefix, message)
	}
}
