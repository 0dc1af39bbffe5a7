package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func textEntry(v string) Entry { return Entry{Kind: EntryText, Value: v} }
func tagEntry(v string) Entry  { return Entry{Kind: EntryTag, Value: v} }

func bufferOf(entries ...Entry) *Buffer {
	b := NewBuffer()
	for _, e := range entries {
		b.Insert(b.Len(), e)
	}
	return b
}

func TestCursor_NextClampsAtLength(t *testing.T) {
	b := bufferOf(textEntry("A"))
	c := NewCursor(b)

	c.Next()
	assert.Equal(t, 1, c.Pos())

	c.Next()
	assert.Equal(t, 1, c.Pos(), "next past buffer length clamps")
}

func TestCursor_PrevClampsAtZero(t *testing.T) {
	c := NewCursor(NewBuffer())

	c.Prev()
	assert.Equal(t, 0, c.Pos())
}

func TestCursor_PrevWhileSkipsTags(t *testing.T) {
	// [A <i> <b>] cursor at 3; skipping non-text lands just after A.
	b := bufferOf(textEntry("A"), tagEntry("i"), tagEntry("b"))
	c := NewCursor(b)
	c.Next()
	c.Next()
	c.Next()

	c.PrevWhile(func(e Entry, ok bool) bool { return ok && !e.Text() })

	assert.Equal(t, 1, c.Pos())
}

func TestCursor_PrevWhileStopsAtZero(t *testing.T) {
	b := bufferOf(tagEntry("i"), tagEntry("b"))
	c := NewCursor(b)
	c.Next()
	c.Next()

	c.PrevWhile(func(e Entry, ok bool) bool { return ok && !e.Text() })

	assert.Equal(t, 0, c.Pos(), "scan must stop at position 0")
}

func TestCursor_NextWhileSkipsTags(t *testing.T) {
	// [<i> <b> A] cursor at 0; skipping non-text lands on A.
	b := bufferOf(tagEntry("i"), tagEntry("b"), textEntry("A"))
	c := NewCursor(b)

	c.NextWhile(func(e Entry, ok bool) bool { return ok && !e.Text() })

	assert.Equal(t, 2, c.Pos())
}

func TestCursor_NextWhileToleratesEndOfBuffer(t *testing.T) {
	// Predicate that treats "absent" as skippable must still stop at
	// the buffer length.
	b := bufferOf(tagEntry("i"))
	c := NewCursor(b)

	var sawAbsent bool
	c.NextWhile(func(e Entry, ok bool) bool {
		if !ok {
			sawAbsent = true
		}
		return !ok || !e.Text()
	})

	assert.Equal(t, 1, c.Pos(), "cursor never exceeds buffer length")
	assert.True(t, sawAbsent, "predicate must see the absent entry at the end")
}

func TestCursor_NextWhileStopsOnPredicateFailure(t *testing.T) {
	b := bufferOf(textEntry("A"), textEntry("B"))
	c := NewCursor(b)

	c.NextWhile(func(e Entry, ok bool) bool { return ok && !e.Text() })

	assert.Equal(t, 0, c.Pos())
}
