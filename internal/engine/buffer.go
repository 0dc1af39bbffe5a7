package engine

import "strings"

// EntryKind distinguishes visible text from structural markers.
type EntryKind int

const (
	// EntryText is one unit of visible text, typically a single grapheme
	// cluster produced by splitting an authored string.
	EntryText EntryKind = iota + 1
	// EntryTag is a structural marker. Tags occupy a buffer position and
	// render distinctly, but text-aware cursor movement steps over them.
	EntryTag
)

// Entry is one element of the typing buffer.
type Entry struct {
	Kind  EntryKind
	Value string
}

// Text reports whether the entry is visible text.
func (e Entry) Text() bool {
	return e.Kind == EntryText
}

// Deletable reports whether a delete operation may remove the entry.
// Both kinds are deletable; the zero Entry is not, which keeps scans
// over absent positions from ever targeting one.
func (e Entry) Deletable() bool {
	return e.Kind == EntryText || e.Kind == EntryTag
}

// Buffer is the ordered sequence of entries a typing run has emitted.
// Positions run 0..Len(); a cursor position of Len() means "after the
// last entry".
//
// Buffer is not safe for concurrent use. The engine's single-step
// execution model means exactly one goroutine mutates it.
type Buffer struct {
	entries []Entry
}

// NewBuffer creates an empty buffer.
func NewBuffer() *Buffer {
	return &Buffer{}
}

// Insert places e at pos, shifting everything at and after pos right.
// pos must be in [0, Len()].
func (b *Buffer) Insert(pos int, e Entry) {
	b.entries = append(b.entries, Entry{})
	copy(b.entries[pos+1:], b.entries[pos:])
	b.entries[pos] = e
}

// Delete removes the entry at pos, shifting everything after it left.
// pos must be in [0, Len()).
func (b *Buffer) Delete(pos int) {
	b.entries = append(b.entries[:pos], b.entries[pos+1:]...)
}

// Len returns the number of entries.
func (b *Buffer) Len() int {
	return len(b.entries)
}

// At returns the entry at pos. ok is false when pos holds no entry,
// which callers use to probe past the end without a bounds check.
func (b *Buffer) At(pos int) (Entry, bool) {
	if pos < 0 || pos >= len(b.entries) {
		return Entry{}, false
	}
	return b.entries[pos], true
}

// Entries returns a copy of the entry sequence in display order.
func (b *Buffer) Entries() []Entry {
	out := make([]Entry, len(b.entries))
	copy(out, b.entries)
	return out
}

// String concatenates all entry values in order. Mostly for tests and
// debug logging; the render package owns the real projection.
func (b *Buffer) String() string {
	var sb strings.Builder
	for _, e := range b.entries {
		sb.WriteString(e.Value)
	}
	return sb.String()
}
