package clipboard

import (
	"bytes"
	"context"
	"encoding/base64"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type marks struct {
	ids []string
}

func (m *marks) Mark(id string) {
	m.ids = append(m.ids, id)
}

type bufferTerminal struct {
	bytes.Buffer
	closed bool
}

func (b *bufferTerminal) Close() error {
	b.closed = true

	return nil
}

func terminalTo(buf *bufferTerminal) func() (io.WriteCloser, error) {
	return func() (io.WriteCloser, error) {
		return buf, nil
	}
}

func env(vars map[string]string) func(string) string {
	return func(key string) string {
		return vars[key]
	}
}

func TestCopyUsesPrimary(t *testing.T) {
	acks := &marks{}
	var got string
	tty := &bufferTerminal{}

	a := New(acks,
		WithPrimary(func(text string) error {
			got = text

			return nil
		}),
		WithTerminal(terminalTo(tty)),
	)

	require.NoError(t, a.Copy(context.Background(), "quiz", "copy-word-0"))
	assert.Equal(t, "quiz", got)
	assert.Equal(t, []string{"copy-word-0"}, acks.ids)
	assert.Zero(t, tty.Len())
}

func TestCopyFallsBackToOSC52(t *testing.T) {
	acks := &marks{}
	tty := &bufferTerminal{}

	a := New(acks,
		WithPrimary(func(string) error { return errors.New("xclip not found") }),
		WithTerminal(terminalTo(tty)),
		WithEnv(env(nil)),
	)

	require.NoError(t, a.Copy(context.Background(), "cat, act", "copy-group-1"))

	encoded := base64.StdEncoding.EncodeToString([]byte("cat, act"))
	assert.Equal(t, "\x1b]52;c;"+encoded+"\x07", tty.String())
	assert.True(t, tty.closed)
	assert.Equal(t, []string{"copy-group-1"}, acks.ids)
}

func TestCopyInsideTmuxAlsoUsesPassthrough(t *testing.T) {
	tty := &bufferTerminal{}
	a := New(nil,
		WithPrimary(nil),
		WithTerminal(terminalTo(tty)),
		WithEnv(env(map[string]string{"TMUX": "/tmp/tmux-0/default,1,0"})),
	)

	require.NoError(t, a.Copy(context.Background(), "zit", "copy-word-2"))

	out := tty.String()
	assert.True(t, strings.HasPrefix(out, "\x1bPtmux;"))
	assert.Equal(t, 2, strings.Count(out, base64.StdEncoding.EncodeToString([]byte("zit"))))
}

func TestCopyInsideScreen(t *testing.T) {
	tty := &bufferTerminal{}
	a := New(nil,
		WithPrimary(nil),
		WithTerminal(terminalTo(tty)),
		WithEnv(env(map[string]string{"TERM": "screen-256color"})),
	)

	require.NoError(t, a.Copy(context.Background(), "zit", "copy-word-2"))
	assert.True(t, strings.HasPrefix(tty.String(), "\x1bP"))
}

func TestCopyFailureLeavesAcksUntouched(t *testing.T) {
	acks := &marks{}
	a := New(acks,
		WithPrimary(func(string) error { return errors.New("denied") }),
		WithTerminal(func() (io.WriteCloser, error) { return nil, errors.New("no tty") }),
	)

	err := a.Copy(context.Background(), "quiz", "copy-word-0")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no tty")
	assert.Empty(t, acks.ids)

	a = New(acks, WithPrimary(nil), WithTerminal(nil))
	require.Error(t, a.Copy(context.Background(), "quiz", "copy-word-0"))
	assert.Empty(t, acks.ids)
}

func TestCopyRejectsEmptyTextAndCancelledContext(t *testing.T) {
	acks := &marks{}
	a := New(acks, WithPrimary(func(string) error { return nil }))

	assert.ErrorIs(t, a.Copy(context.Background(), "", "copy-word-0"), ErrEmpty)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.ErrorIs(t, a.Copy(ctx, "quiz", "copy-word-0"), context.Canceled)
	assert.Empty(t, acks.ids)
}
