package store

import "time"

// Session is one recorded typing run.
type Session struct {
	ID       string
	Script   string
	Selector string
	// CreatedAt is the database's insertion timestamp, RFC 3339.
	CreatedAt string
}

// Frame is one executed step's rendered output.
type Frame struct {
	SessionID string
	// Seq is the engine's logical step counter; frames replay in
	// ascending Seq order.
	Seq      int64
	NodeKind string
	Cursor   int
	Frame    string
	// Delay is the wait that preceded the step in the original run.
	Delay time.Duration
}
