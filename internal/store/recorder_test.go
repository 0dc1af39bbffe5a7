package store

import (
	"context"
	"io"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/typeline/typeline/internal/engine"
	"github.com/typeline/typeline/internal/render"
	"github.com/typeline/typeline/internal/script"
	"github.com/typeline/typeline/internal/testutil"
)

func TestRecorder_CapturesFullRun(t *testing.T) {
	st := openTestStore(t)
	ctx := context.Background()

	sc := &script.Script{
		Name:     "greeting",
		Selector: "main",
		Nodes: []script.Node{
			{Kind: script.KindText, Value: "H", Delay: 10 * time.Millisecond},
			{Kind: script.KindText, Value: "i", Delay: 10 * time.Millisecond},
			{Kind: script.KindClear, Delay: 500 * time.Millisecond},
		},
	}

	rec, err := NewRecorder(ctx, st, NewFixedGenerator("session-1"), sc)
	require.NoError(t, err)
	assert.Equal(t, "session-1", rec.SessionID())

	eng, err := engine.New(sc, render.NewFrameWriter(io.Discard),
		engine.WithScheduler(testutil.NewVirtualScheduler()),
		engine.WithObserver(rec.Observe),
	)
	require.NoError(t, err)
	require.NoError(t, eng.Run(ctx))

	frames, err := st.ReadFrames(ctx, "session-1")
	require.NoError(t, err)
	require.Len(t, frames, 3)

	assert.Equal(t, Frame{
		SessionID: "session-1",
		Seq:       1,
		NodeKind:  "text",
		Cursor:    1,
		Frame:     "H|",
		Delay:     10 * time.Millisecond,
	}, frames[0])
	assert.Equal(t, "Hi|", frames[1].Frame)
	assert.Equal(t, Frame{
		SessionID: "session-1",
		Seq:       3,
		NodeKind:  "clear",
		Cursor:    0,
		Frame:     "|",
		Delay:     500 * time.Millisecond,
	}, frames[2])
}

func TestRecorder_CreatesSessionRow(t *testing.T) {
	st := openTestStore(t)
	ctx := context.Background()

	sc := &script.Script{
		Name:     "banner",
		Selector: "footer",
		Nodes:    []script.Node{{Kind: script.KindClear}},
	}
	_, err := NewRecorder(ctx, st, NewFixedGenerator("session-2"), sc)
	require.NoError(t, err)

	sessions, err := st.ListSessions(ctx)
	require.NoError(t, err)
	require.Len(t, sessions, 1)
	assert.Equal(t, "banner", sessions[0].Script)
	assert.Equal(t, "footer", sessions[0].Selector)
	assert.NotEmpty(t, sessions[0].CreatedAt)
}
