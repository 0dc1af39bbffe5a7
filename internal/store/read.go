package store

import (
	"context"
	"fmt"
	"time"
)

// ListSessions returns all recorded sessions, newest first.
func (s *Store) ListSessions(ctx context.Context) ([]Session, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, script, selector, created_at
		FROM sessions
		ORDER BY created_at DESC, id DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("list sessions: %w", err)
	}
	defer rows.Close()

	var out []Session
	for rows.Next() {
		var sess Session
		if err := rows.Scan(&sess.ID, &sess.Script, &sess.Selector, &sess.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan session: %w", err)
		}
		out = append(out, sess)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list sessions: %w", err)
	}
	return out, nil
}

// ReadFrames returns a session's frames in ascending seq order, the
// order the steps executed.
func (s *Store) ReadFrames(ctx context.Context, sessionID string) ([]Frame, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT session_id, seq, node_kind, cursor, frame, delay_ms
		FROM frames
		WHERE session_id = ?
		ORDER BY seq ASC
	`, sessionID)
	if err != nil {
		return nil, fmt.Errorf("read frames for %s: %w", sessionID, err)
	}
	defer rows.Close()

	var out []Frame
	for rows.Next() {
		var (
			f       Frame
			delayMS int64
		)
		if err := rows.Scan(&f.SessionID, &f.Seq, &f.NodeKind, &f.Cursor, &f.Frame, &delayMS); err != nil {
			return nil, fmt.Errorf("scan frame: %w", err)
		}
		f.Delay = time.Duration(delayMS) * time.Millisecond
		out = append(out, f)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("read frames for %s: %w", sessionID, err)
	}
	return out, nil
}
