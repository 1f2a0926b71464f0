package engage

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/driftwave/ripple/internal/errors"
)

func TestPicker_OpenConfirm(t *testing.T) {
	p := NewPicker("🔥", "❤️", "😂")
	p.Open("v1")

	require.True(t, p.IsOpen())
	assert.Equal(t, "v1", p.Target())
	assert.Equal(t, "🔥", p.Current())

	p.Next()
	assert.Equal(t, "❤️", p.Current())

	itemID, emoji, err := p.Confirm()
	require.NoError(t, err)
	assert.Equal(t, "v1", itemID)
	assert.Equal(t, "❤️", emoji)
	assert.False(t, p.IsOpen())
}

func TestPicker_SingleTarget(t *testing.T) {
	p := NewPicker("🔥", "❤️")
	p.Open("v1")
	p.Next()

	// Opening for a new item discards the previous uncommitted pick.
	p.Open("v2")
	assert.Equal(t, "v2", p.Target())
	assert.Equal(t, 0, p.Cursor(), "cursor resets with the new target")

	itemID, _, err := p.Confirm()
	require.NoError(t, err)
	assert.Equal(t, "v2", itemID, "no reaction ever commits for the abandoned item")
}

func TestPicker_CancelHasNoSideEffects(t *testing.T) {
	p := NewPicker()
	p.Open("v1")
	p.Cancel()

	assert.False(t, p.IsOpen())
	assert.Empty(t, p.Target())

	_, _, err := p.Confirm()
	assert.ErrorIs(t, err, errors.ErrNoActivePicker)
}

func TestPicker_CursorWraps(t *testing.T) {
	p := NewPicker("a", "b", "c")
	p.Open("v1")

	p.Prev()
	assert.Equal(t, "c", p.Current())
	p.Next()
	assert.Equal(t, "a", p.Current())

	// Navigation while closed is ignored.
	p.Cancel()
	p.Next()
	assert.Equal(t, 0, p.Cursor())
}

func TestPicker_DefaultPalette(t *testing.T) {
	p := NewPicker()
	assert.Equal(t, DefaultPalette, p.Options())
}
