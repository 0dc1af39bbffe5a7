package render

import (
	"sync"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/uniseg"

	"github.com/typeline/typeline/internal/engine"
)

// Screen owns a tcell screen and a registry of named regions that act
// as display surfaces. Scripts address a region by selector; resolving
// an unknown selector is the fatal startup error of a run.
type Screen struct {
	mu      sync.Mutex
	tc      tcell.Screen
	regions map[string]*Region
}

// Region is one rectangular display surface on the screen.
type Region struct {
	screen *Screen
	name   string
	x, y   int
	width  int

	textStyle   tcell.Style
	tagStyle    tcell.Style
	cursorStyle tcell.Style
	blankStyle  tcell.Style
}

// NewScreen initializes the terminal.
func NewScreen() (*Screen, error) {
	tc, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := tc.Init(); err != nil {
		return nil, err
	}
	tc.Clear()
	return &Screen{
		tc:      tc,
		regions: make(map[string]*Region),
	}, nil
}

// NewScreenFrom wraps an existing tcell screen. Tests pass a
// tcell.SimulationScreen here.
func NewScreenFrom(tc tcell.Screen) *Screen {
	return &Screen{
		tc:      tc,
		regions: make(map[string]*Region),
	}
}

// Close restores the terminal.
func (s *Screen) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tc.Fini()
}

// DefineRegion registers a named surface spanning width cells at (x, y).
// clearAttr selects how a cleared region is blanked: "reverse" leaves an
// inverted band, anything else blanks to the default background.
func (s *Screen) DefineRegion(name string, x, y, width int, clearAttr string) *Region {
	s.mu.Lock()
	defer s.mu.Unlock()

	blank := tcell.StyleDefault
	if clearAttr == "reverse" {
		blank = blank.Reverse(true)
	}
	r := &Region{
		screen:      s,
		name:        name,
		x:           x,
		y:           y,
		width:       width,
		textStyle:   tcell.StyleDefault,
		tagStyle:    tcell.StyleDefault.Foreground(tcell.ColorTeal),
		cursorStyle: tcell.StyleDefault.Reverse(true),
		blankStyle:  blank,
	}
	s.regions[name] = r
	return r
}

// Resolve implements engine.Resolver: the selector names a region.
func (s *Screen) Resolve(selector string) (engine.Renderer, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	r, ok := s.regions[selector]
	if !ok {
		return nil, engine.NewSurfaceError(selector)
	}
	return r, nil
}

// Render implements engine.Renderer: a full redraw of the region from
// the buffer, with the cursor cell inverted. The projection is pure;
// repeated calls with the same state draw the same cells.
func (r *Region) Render(buf *engine.Buffer, _ *engine.NodeQueue, cur *engine.Cursor) error {
	r.screen.mu.Lock()
	defer r.screen.mu.Unlock()

	col := r.x
	limit := r.x + r.width

	for i, e := range buf.Entries() {
		if col >= limit {
			break
		}
		style := r.textStyle
		if !e.Text() {
			style = r.tagStyle
		}
		if i == cur.Pos() {
			style = r.cursorStyle
		}
		col += r.setCluster(col, e.Value, style)
	}

	// Cursor sits past the last entry: draw it as an inverted blank.
	if cur.Pos() >= buf.Len() && col < limit {
		r.screen.tc.SetContent(col, r.y, ' ', nil, r.cursorStyle)
		col++
	}

	for ; col < limit; col++ {
		r.screen.tc.SetContent(col, r.y, ' ', nil, r.blankStyle)
	}

	r.screen.tc.Show()
	return nil
}

// setCluster draws one grapheme cluster at col and returns the number of
// cells it occupies. The first rune is the base cell content, the rest
// ride along as combining characters.
func (r *Region) setCluster(col int, cluster string, style tcell.Style) int {
	runes := []rune(cluster)
	if len(runes) == 0 {
		return 0
	}
	var comb []rune
	if len(runes) > 1 {
		comb = runes[1:]
	}
	r.screen.tc.SetContent(col, r.y, runes[0], comb, style)

	w := uniseg.StringWidth(cluster)
	if w < 1 {
		w = 1
	}
	return w
}
