package store

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	st, err := Open(filepath.Join(t.TempDir(), "typeline.db"))
	require.NoError(t, err)
	t.Cleanup(func() { st.Close() })
	return st
}

func TestOpen_AppliesSchemaAndVersion(t *testing.T) {
	st := openTestStore(t)

	var version int
	require.NoError(t, st.DB().QueryRow("PRAGMA user_version").Scan(&version))
	assert.Equal(t, currentSchemaVersion, version)

	var count int
	require.NoError(t, st.DB().QueryRow(`
		SELECT count(*) FROM sqlite_master
		WHERE type = 'table' AND name IN ('sessions', 'frames')
	`).Scan(&count))
	assert.Equal(t, 2, count)
}

func TestOpen_IsIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "typeline.db")

	st, err := Open(path)
	require.NoError(t, err)
	require.NoError(t, st.CreateSession(context.Background(), Session{
		ID: "s1", Script: "greeting", Selector: "main",
	}))
	require.NoError(t, st.Close())

	st, err = Open(path)
	require.NoError(t, err)
	defer st.Close()

	sessions, err := st.ListSessions(context.Background())
	require.NoError(t, err)
	require.Len(t, sessions, 1)
	assert.Equal(t, "s1", sessions[0].ID)
}

func TestCreateSession_DuplicateIDIsIgnored(t *testing.T) {
	st := openTestStore(t)
	ctx := context.Background()

	sess := Session{ID: "s1", Script: "greeting", Selector: "main"}
	require.NoError(t, st.CreateSession(ctx, sess))
	require.NoError(t, st.CreateSession(ctx, sess))

	sessions, err := st.ListSessions(ctx)
	require.NoError(t, err)
	assert.Len(t, sessions, 1)
}

func TestWriteFrame_IdempotentPerSeq(t *testing.T) {
	st := openTestStore(t)
	ctx := context.Background()

	require.NoError(t, st.CreateSession(ctx, Session{ID: "s1", Script: "x", Selector: "main"}))

	f := Frame{
		SessionID: "s1",
		Seq:       1,
		NodeKind:  "text",
		Cursor:    1,
		Frame:     "G|",
		Delay:     75 * time.Millisecond,
	}
	require.NoError(t, st.WriteFrame(ctx, f))

	f.Frame = "changed"
	require.NoError(t, st.WriteFrame(ctx, f))

	frames, err := st.ReadFrames(ctx, "s1")
	require.NoError(t, err)
	require.Len(t, frames, 1)
	assert.Equal(t, "G|", frames[0].Frame, "first write wins")
}

func TestReadFrames_OrderedBySeq(t *testing.T) {
	st := openTestStore(t)
	ctx := context.Background()

	require.NoError(t, st.CreateSession(ctx, Session{ID: "s1", Script: "x", Selector: "main"}))

	// Insert out of order; read is still seq-ascending.
	for _, seq := range []int64{3, 1, 2} {
		require.NoError(t, st.WriteFrame(ctx, Frame{
			SessionID: "s1",
			Seq:       seq,
			NodeKind:  "text",
			Frame:     "f",
			Delay:     time.Duration(seq) * time.Millisecond,
		}))
	}

	frames, err := st.ReadFrames(ctx, "s1")
	require.NoError(t, err)
	require.Len(t, frames, 3)
	for i, f := range frames {
		assert.Equal(t, int64(i+1), f.Seq)
		assert.Equal(t, time.Duration(i+1)*time.Millisecond, f.Delay)
	}
}

func TestReadFrames_UnknownSessionIsEmpty(t *testing.T) {
	st := openTestStore(t)

	frames, err := st.ReadFrames(context.Background(), "nope")
	require.NoError(t, err)
	assert.Empty(t, frames)
}

func TestWriteFrame_UnknownSessionFailsForeignKey(t *testing.T) {
	st := openTestStore(t)

	err := st.WriteFrame(context.Background(), Frame{
		SessionID: "ghost",
		Seq:       1,
		NodeKind:  "text",
	})
	require.Error(t, err, "frames require an existing session row")
}

func TestFixedGenerator(t *testing.T) {
	gen := NewFixedGenerator("a", "b")

	assert.Equal(t, "a", gen.Generate())
	assert.Equal(t, "b", gen.Generate())
	assert.Panics(t, func() { gen.Generate() })
}

func TestUUIDv7Generator_SortableIDs(t *testing.T) {
	gen := UUIDv7Generator{}

	a := gen.Generate()
	b := gen.Generate()

	assert.NotEqual(t, a, b)
	assert.Len(t, a, 36)
	assert.LessOrEqual(t, a, b, "v7 IDs sort by creation time")
}
