package engine

// Predicate examines one buffer position during a cursor scan. ok is
// false when the position holds no entry (one past the end); predicates
// decide for themselves whether an absent entry is skippable.
type Predicate func(e Entry, ok bool) bool

// Cursor is a position into a buffer, always clamped to [0, Len()].
// Position i means "before entry i"; position Len() means "after the
// last entry", which is where emission appends.
type Cursor struct {
	buf *Buffer
	pos int
}

// NewCursor creates a cursor at position 0 of buf.
func NewCursor(buf *Buffer) *Cursor {
	return &Cursor{buf: buf}
}

// Pos returns the cursor position.
func (c *Cursor) Pos() int {
	return c.pos
}

// Next advances one position, clamped at the buffer length.
func (c *Cursor) Next() {
	if c.pos < c.buf.Len() {
		c.pos++
	}
}

// Prev retreats one position, clamped at 0.
func (c *Cursor) Prev() {
	if c.pos > 0 {
		c.pos--
	}
}

// PrevWhile retreats as long as the entry immediately left of the
// cursor satisfies pred, stopping at position 0 regardless.
func (c *Cursor) PrevWhile(pred Predicate) {
	for c.pos > 0 {
		e, ok := c.buf.At(c.pos - 1)
		if !pred(e, ok) {
			return
		}
		c.pos--
	}
}

// NextWhile advances as long as the entry at the cursor satisfies pred.
// The predicate is evaluated at the end-of-buffer position too (with
// ok false), but the cursor never moves past the buffer length.
func (c *Cursor) NextWhile(pred Predicate) {
	for {
		e, ok := c.buf.At(c.pos)
		if !pred(e, ok) {
			return
		}
		if c.pos >= c.buf.Len() {
			return
		}
		c.pos++
	}
}
