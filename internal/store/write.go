package store

import (
	"context"
	"fmt"
)

// CreateSession inserts a session record. Duplicate IDs are silently
// ignored (ON CONFLICT DO NOTHING) so re-recording under a fixed test
// ID is idempotent.
func (s *Store) CreateSession(ctx context.Context, sess Session) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO sessions (id, script, selector)
		VALUES (?, ?, ?)
		ON CONFLICT(id) DO NOTHING
	`,
		sess.ID,
		sess.Script,
		sess.Selector,
	)
	if err != nil {
		return fmt.Errorf("create session %s: %w", sess.ID, err)
	}
	return nil
}

// WriteFrame inserts one step frame. Writes are idempotent per
// (session, seq): replaying a recorder over the same run cannot
// duplicate frames.
func (s *Store) WriteFrame(ctx context.Context, f Frame) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO frames (session_id, seq, node_kind, cursor, frame, delay_ms)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(session_id, seq) DO NOTHING
	`,
		f.SessionID,
		f.Seq,
		f.NodeKind,
		f.Cursor,
		f.Frame,
		f.Delay.Milliseconds(),
	)
	if err != nil {
		return fmt.Errorf("write frame %s/%d: %w", f.SessionID, f.Seq, err)
	}
	return nil
}
