// Package clipboard copies word lists to the system clipboard, falling back
// to an OSC 52 escape sequence on the controlling terminal when no native
// clipboard tool is available (SSH sessions, minimal containers).
package clipboard

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/aymanbagabas/go-osc52/v2"
	"golang.org/x/term"

	"github.com/kedare/wordsmith/internal/logger"
)

// ErrEmpty is returned when there is nothing to copy.
var ErrEmpty = errors.New("nothing to copy")

// Acknowledger is told which control produced a successful copy.
type Acknowledger interface {
	Mark(controlID string)
}

// Adapter writes text to the clipboard and acknowledges the originating control.
type Adapter struct {
	primary  func(text string) error
	terminal func() (io.WriteCloser, error)
	getenv   func(key string) string
	acks     Acknowledger
}

// Option configures an Adapter.
type Option func(*Adapter)

// WithPrimary replaces the native clipboard writer. A nil func disables it.
func WithPrimary(fn func(text string) error) Option {
	return func(a *Adapter) {
		a.primary = fn
	}
}

// WithTerminal replaces how the OSC 52 fallback reaches the terminal.
// A nil func disables the fallback.
func WithTerminal(open func() (io.WriteCloser, error)) Option {
	return func(a *Adapter) {
		a.terminal = open
	}
}

// WithEnv replaces the environment lookup used to detect tmux and screen.
func WithEnv(getenv func(key string) string) Option {
	return func(a *Adapter) {
		a.getenv = getenv
	}
}

// New creates an adapter. acks may be nil.
func New(acks Acknowledger, opts ...Option) *Adapter {
	a := &Adapter{
		primary:  nativeWrite,
		terminal: openTerminal,
		getenv:   os.Getenv,
		acks:     acks,
	}

	for _, opt := range opts {
		opt(a)
	}

	return a
}

// Copy writes text to the clipboard. On success the control identified by
// controlID is acknowledged. A failure leaves every acknowledgement untouched.
func (a *Adapter) Copy(ctx context.Context, text, controlID string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if text == "" {
		return ErrEmpty
	}

	if a.primary != nil {
		err := a.primary(text)
		if err == nil {
			logger.Log.Debugf("Copied %d bytes from %s to the system clipboard", len(text), controlID)
			a.ack(controlID)

			return nil
		}

		logger.Log.Debugf("System clipboard unavailable, trying OSC 52: %v", err)
	}

	if err := a.writeOSC52(text); err != nil {
		logger.Log.Warnf("Failed to copy to clipboard: %v", err)

		return fmt.Errorf("copy to clipboard: %w", err)
	}

	logger.Log.Debugf("Copied %d bytes from %s via OSC 52", len(text), controlID)
	a.ack(controlID)

	return nil
}

func (a *Adapter) ack(controlID string) {
	if a.acks != nil {
		a.acks.Mark(controlID)
	}
}

// writeOSC52 sends the sequence directly, and also through the multiplexer
// passthrough when running inside tmux or screen.
func (a *Adapter) writeOSC52(text string) error {
	if a.terminal == nil {
		return errors.New("no terminal available")
	}

	out, err := a.terminal()
	if err != nil {
		return fmt.Errorf("open terminal: %w", err)
	}
	defer out.Close()

	seq := osc52.New(text)

	switch {
	case a.getenv("TMUX") != "" || strings.HasPrefix(a.getenv("TERM"), "tmux"):
		if _, err := seq.Tmux().WriteTo(out); err != nil {
			return err
		}
	case strings.HasPrefix(a.getenv("TERM"), "screen"):
		if _, err := seq.Screen().WriteTo(out); err != nil {
			return err
		}
	}

	_, err = seq.WriteTo(out)

	return err
}

func nativeWrite(text string) error {
	if clipboard.Unsupported {
		return errors.New("no clipboard utility installed")
	}

	return clipboard.WriteAll(text)
}

type nopCloser struct{ io.Writer }

func (nopCloser) Close() error { return nil }

// openTerminal prefers /dev/tty so the sequence bypasses redirected output,
// then falls back to stderr when it is attached to a terminal.
func openTerminal() (io.WriteCloser, error) {
	tty, err := os.OpenFile("/dev/tty", os.O_WRONLY, 0)
	if err == nil {
		return tty, nil
	}

	if term.IsTerminal(int(os.Stderr.Fd())) {
		return nopCloser{os.Stderr}, nil
	}

	return nil, fmt.Errorf("no controlling terminal: %w", err)
}
