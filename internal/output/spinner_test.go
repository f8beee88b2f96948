package output

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSpinnerWithoutTerminal(t *testing.T) {
	SetFormat(FormatText)

	t.Run("prints plain progress lines", func(t *testing.T) {
		var buf bytes.Buffer
		sp := newSpinner(&buf, false, "Solving")
		require.False(t, sp.enabled)

		sp.Start()
		sp.Start()
		sp.Update("Rendering")
		sp.Success("7 words")

		assert.Equal(t, "Solving...\nRendering...\n✓ 7 words\n", buf.String())
		assert.True(t, sp.stopped)
	})

	t.Run("fail after stop still reports", func(t *testing.T) {
		var buf bytes.Buffer
		sp := newSpinner(&buf, false, "Solving")
		sp.Start()
		sp.Stop()
		sp.Stop()
		sp.Fail("connection refused")

		assert.Equal(t, "Solving...\n✗ connection refused\n", buf.String())
	})

	t.Run("cannot start after stop", func(t *testing.T) {
		var buf bytes.Buffer
		sp := newSpinner(&buf, false, "Solving")
		sp.Stop()
		sp.Start()

		assert.False(t, sp.active)
		assert.Empty(t, buf.String())
	})

	t.Run("update before start only records the message", func(t *testing.T) {
		var buf bytes.Buffer
		sp := newSpinner(&buf, false, "Solving")
		sp.Update("Waiting")

		assert.Equal(t, "Waiting", sp.message)
		assert.Empty(t, buf.String())
	})
}

func TestSpinnerQuietInMachineMode(t *testing.T) {
	SetFormat(FormatJSON)
	t.Cleanup(func() { SetFormat(FormatText) })

	var buf bytes.Buffer
	sp := newSpinner(&buf, true, "Solving")
	assert.True(t, sp.quiet)
	assert.False(t, sp.enabled)

	sp.Start()
	sp.Update("Still solving")
	sp.Success("done")

	assert.Empty(t, buf.String())
	assert.True(t, sp.stopped)
}
