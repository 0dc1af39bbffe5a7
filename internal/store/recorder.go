package store

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/typeline/typeline/internal/engine"
	"github.com/typeline/typeline/internal/render"
	"github.com/typeline/typeline/internal/script"
)

// Recorder captures every executed step of a run as a stored frame.
// Wire its Observe method into the engine with engine.WithObserver.
type Recorder struct {
	store     *Store
	sessionID string
}

// NewRecorder creates the session row and returns a recorder bound to
// it.
func NewRecorder(ctx context.Context, st *Store, gen SessionIDGenerator, sc *script.Script) (*Recorder, error) {
	sess := Session{
		ID:       gen.Generate(),
		Script:   sc.Name,
		Selector: sc.Selector,
	}
	if err := st.CreateSession(ctx, sess); err != nil {
		return nil, fmt.Errorf("recorder: %w", err)
	}
	return &Recorder{store: st, sessionID: sess.ID}, nil
}

// SessionID returns the ID of the session being recorded.
func (r *Recorder) SessionID() string {
	return r.sessionID
}

// Observe implements engine.Observer. Write failures are logged and
// swallowed: recording is an observer, it must never perturb the step
// sequence of the run it is watching.
func (r *Recorder) Observe(seq int64, n script.Node, s *engine.Session) {
	frame := Frame{
		SessionID: r.sessionID,
		Seq:       seq,
		NodeKind:  string(n.Kind),
		Cursor:    s.Cursor.Pos(),
		Frame:     render.FrameString(s.Buffer, s.Cursor),
		Delay:     n.Delay,
	}
	if err := r.store.WriteFrame(context.Background(), frame); err != nil {
		slog.Error("frame recording failed",
			"error", err,
			"session_id", r.sessionID,
			"seq", seq,
		)
	}
}
