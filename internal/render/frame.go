// Package render turns engine session state into visible output: a pure
// textual frame projection used by tests, headless mode, and the frame
// recorder, plus terminal surfaces drawn with tcell.
package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/typeline/typeline/internal/engine"
)

// CursorMark is the glyph marking the cursor position in textual frames.
const CursorMark = "|"

// FrameString projects a buffer and cursor into one deterministic line:
// entries in display order with the cursor mark inserted at the cursor's
// slot. Tag entries are bracketed so structural markers stay visible in
// recordings and golden files.
//
//	buffer [A C B], cursor 2  ->  "AC|B"
//	buffer [A <b> C], cursor 3 -> "A<b>C|"
func FrameString(buf *engine.Buffer, cur *engine.Cursor) string {
	var b strings.Builder
	for i, e := range buf.Entries() {
		if i == cur.Pos() {
			b.WriteString(CursorMark)
		}
		if e.Text() {
			b.WriteString(e.Value)
		} else {
			b.WriteString("<" + e.Value + ">")
		}
	}
	if cur.Pos() >= buf.Len() {
		b.WriteString(CursorMark)
	}
	return b.String()
}

// FrameWriter renders textual frames to a writer, one line per step.
// It doubles as a Resolver that accepts any selector, which is what
// headless mode and tests want: every surface is the same stream.
type FrameWriter struct {
	w io.Writer
}

// NewFrameWriter creates a writer-backed renderer.
func NewFrameWriter(w io.Writer) *FrameWriter {
	return &FrameWriter{w: w}
}

// Resolve implements engine.Resolver; any selector maps to the stream.
func (f *FrameWriter) Resolve(_ string) (engine.Renderer, error) {
	return f, nil
}

// Render implements engine.Renderer.
func (f *FrameWriter) Render(buf *engine.Buffer, _ *engine.NodeQueue, cur *engine.Cursor) error {
	_, err := fmt.Fprintln(f.w, FrameString(buf, cur))
	return err
}
