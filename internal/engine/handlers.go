package engine

import "github.com/typeline/typeline/internal/script"

// HandlerFunc applies one node's semantics to the session. idx is the
// node's current queue index; expansion handlers use it to rewrite the
// queue at and after that index. Handlers never touch queue entries
// before idx.
//
// Handlers receive session state explicitly rather than capturing engine
// internals, so they are testable in isolation.
type HandlerFunc func(n script.Node, idx int, s *Session)

// defaultHandlers wires one handler per node kind. Dispatch happens by
// kind, and each handler additionally guards on the kind it owns: a
// mismatched dispatch is a silent no-op, never an error.
func defaultHandlers() map[script.Kind]HandlerFunc {
	return map[script.Kind]HandlerFunc{
		script.KindText:   handleEmit,
		script.KindTag:    handleEmit,
		script.KindDelay:  handleDelay,
		script.KindClear:  handleClear,
		script.KindMove:   handleMove,
		script.KindDelete: handleDelete,
	}
}

// handleEmit inserts the node's payload at the cursor and advances by
// one. Text and tags share this path; they differ only in how the render
// projection treats the resulting entry.
func handleEmit(n script.Node, _ int, s *Session) {
	kind := EntryText
	switch n.Kind {
	case script.KindText:
	case script.KindTag:
		kind = EntryTag
	default:
		return
	}
	s.Buffer.Insert(s.Cursor.Pos(), Entry{Kind: kind, Value: n.Value})
	s.Cursor.Next()
}

// handleDelay does nothing: the engine has already waited out the node's
// delay before dispatching, so the node is purely a timing placeholder.
func handleDelay(n script.Node, _ int, _ *Session) {
	_ = n
}

// handleClear empties the buffer by replacing it (and the cursor) with
// fresh instances. The node queue is untouched.
func handleClear(n script.Node, _ int, s *Session) {
	if n.Kind != script.KindClear {
		return
	}
	s.Reset()
}

// handleMove repositions the cursor one text-aware step.
//
// A relative direction (start/end) is expanded in place instead: the
// node is replaced at its own index by enough left/right copies to
// guarantee reaching the boundary, and the copies execute as ordinary
// moves on subsequent iterations.
func handleMove(n script.Node, idx int, s *Session) {
	if n.Kind != script.KindMove {
		return
	}
	if n.Dir.Relative() {
		expand(n, idx, s)
		return
	}
	switch n.Dir {
	case script.DirLeft:
		moveLeft(s.Cursor)
	case script.DirRight:
		moveRight(s.Cursor)
	}
}

// handleDelete removes one buffer entry relative to the cursor.
// Boundary conditions (delete left at 0, delete right at end) are
// silent no-ops. Relative directions expand exactly like move.
func handleDelete(n script.Node, idx int, s *Session) {
	if n.Kind != script.KindDelete {
		return
	}
	if n.Dir.Relative() {
		expand(n, idx, s)
		return
	}
	switch n.Dir {
	case script.DirLeft:
		if s.Cursor.Pos() == 0 {
			return
		}
		// Skip structural entries, step onto the nearest deletable
		// entry, and remove it at the resulting cursor position.
		s.Cursor.PrevWhile(func(e Entry, ok bool) bool {
			return ok && !e.Deletable()
		})
		s.Cursor.Prev()
		s.Buffer.Delete(s.Cursor.Pos())
	case script.DirRight:
		if s.Cursor.Pos() < s.Buffer.Len() {
			s.Buffer.Delete(s.Cursor.Pos())
		}
	}
}

// moveLeft jumps the cursor to just after the nearest text entry on its
// left: one raw step, then backward past any structural entries.
func moveLeft(c *Cursor) {
	if c.Pos() == 0 {
		return
	}
	c.Prev()
	c.PrevWhile(func(e Entry, ok bool) bool {
		return ok && !e.Text()
	})
}

// moveRight mirrors moveLeft: one raw step, then forward past any
// structural (or absent) entries. Next clamps at buffer length, so at
// the end this is a no-op.
func moveRight(c *Cursor) {
	c.Next()
	c.NextWhile(func(e Entry, ok bool) bool {
		return !ok || !e.Text()
	})
}

// expand rewrites a relative move/delete into a concrete run of atomic
// steps, in place in the queue at the node's own index.
//
// The copy count deliberately over-counts by one:
//
//	start: idx+1 left steps, enough to reach position 0 from any cursor
//	       position the first idx nodes could have produced
//	end:   bufferLen-cursorPos+1 right steps, enough to reach the end
//
// The headroom guarantees the boundary is reached even as the buffer
// changes while the copies execute; the spare step is a no-op at the
// edge and keeps its delay tick.
func expand(n script.Node, idx int, s *Session) {
	var (
		dir   script.Direction
		count int
	)
	switch n.Dir {
	case script.DirStart:
		dir = script.DirLeft
		count = idx + 1
	case script.DirEnd:
		dir = script.DirRight
		count = s.Buffer.Len() - s.Cursor.Pos() + 1
	default:
		return
	}

	s.Queue.Delete(idx)
	for i := 0; i < count; i++ {
		cp := n
		cp.Dir = dir
		s.Queue.Insert(idx+i, cp)
	}
}
