package engage

import (
	"github.com/driftwave/ripple/internal/errors"
)

// DefaultPalette is the emoji set the picker offers when none is
// configured.
var DefaultPalette = []string{"🔥", "❤️", "😂", "😮", "👏", "💧"}

// Picker tracks the reaction picker overlay. Only one target item exists
// at a time: opening the picker for a new item discards any uncommitted
// selection for the previous one, and no reaction is sent for an
// abandoned pick.
type Picker struct {
	options []string
	target  string
	cursor  int
	open    bool
}

// NewPicker creates a Picker offering the given emoji, or DefaultPalette
// when none are given.
func NewPicker(options ...string) *Picker {
	if len(options) == 0 {
		options = DefaultPalette
	}
	return &Picker{options: options}
}

// Open targets the picker at itemID. Any previous uncommitted state is
// discarded, including when the picker was already open for another item.
func (p *Picker) Open(itemID string) {
	p.target = itemID
	p.cursor = 0
	p.open = true
}

// IsOpen reports whether the picker overlay is showing.
func (p *Picker) IsOpen() bool {
	return p.open
}

// Target returns the item the picker is aimed at, or "" when closed.
func (p *Picker) Target() string {
	if !p.open {
		return ""
	}
	return p.target
}

// Options returns the selectable emoji in display order.
func (p *Picker) Options() []string {
	return p.options
}

// Cursor returns the index of the highlighted emoji.
func (p *Picker) Cursor() int {
	return p.cursor
}

// Current returns the highlighted emoji, or "" when closed.
func (p *Picker) Current() string {
	if !p.open {
		return ""
	}
	return p.options[p.cursor]
}

// Next moves the highlight right, wrapping at the end.
func (p *Picker) Next() {
	if !p.open {
		return
	}
	p.cursor = (p.cursor + 1) % len(p.options)
}

// Prev moves the highlight left, wrapping at the start.
func (p *Picker) Prev() {
	if !p.open {
		return
	}
	p.cursor = (p.cursor - 1 + len(p.options)) % len(p.options)
}

// Confirm commits the highlighted emoji, closing the picker and returning
// the target item and emoji to react with.
func (p *Picker) Confirm() (itemID, emoji string, err error) {
	if !p.open {
		return "", "", errors.ErrNoActivePicker
	}
	itemID, emoji = p.target, p.options[p.cursor]
	p.close()
	return itemID, emoji, nil
}

// Cancel abandons the pick with no side effects.
func (p *Picker) Cancel() {
	p.close()
}

func (p *Picker) close() {
	p.open = false
	p.target = ""
	p.cursor = 0
}
