package engine

// Session is the mutable state of one typing run: the buffer of emitted
// content, the cursor into it, and the pending node queue.
//
// Buffer and Cursor are ephemeral per traversal: Reset replaces them
// wholesale at run start, and the clear handler does the same mid-run.
// The Queue is durable: it is built once from the script and survives
// resets, so expansion performed on a first loop iteration is still in
// effect on later ones.
type Session struct {
	Buffer *Buffer
	Cursor *Cursor
	Queue  *NodeQueue
}

// NewSession creates a session with an empty buffer and the given queue.
func NewSession(queue *NodeQueue) *Session {
	s := &Session{Queue: queue}
	s.Reset()
	return s
}

// Reset replaces the buffer and cursor with fresh empty instances.
// The queue is left untouched.
func (s *Session) Reset() {
	s.Buffer = NewBuffer()
	s.Cursor = NewCursor(s.Buffer)
}
