package render_test

import (
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/typeline/typeline/internal/engine"
	"github.com/typeline/typeline/internal/render"
)

func simScreen(t *testing.T) (*render.Screen, tcell.SimulationScreen) {
	t.Helper()
	sim := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, sim.Init())
	sim.SetSize(20, 3)
	t.Cleanup(sim.Fini)
	return render.NewScreenFrom(sim), sim
}

func TestScreen_ResolveUnknownSelector(t *testing.T) {
	s, _ := simScreen(t)
	s.DefineRegion("main", 0, 0, 10, "")

	_, err := s.Resolve("sidebar")
	require.Error(t, err)
	assert.True(t, engine.IsSurfaceError(err))
}

func TestRegion_RenderDrawsTextAndCursor(t *testing.T) {
	s, sim := simScreen(t)
	s.DefineRegion("main", 0, 0, 10, "")

	r, err := s.Resolve("main")
	require.NoError(t, err)

	buf := engine.NewBuffer()
	buf.Insert(0, engine.Entry{Kind: engine.EntryText, Value: "H"})
	buf.Insert(1, engine.Entry{Kind: engine.EntryText, Value: "i"})
	cur := engine.NewCursor(buf)
	cur.Next()
	cur.Next()

	require.NoError(t, r.Render(buf, nil, cur))

	pr, _, _, _ := sim.GetContent(0, 0)
	assert.Equal(t, 'H', pr)
	pr, _, _, _ = sim.GetContent(1, 0)
	assert.Equal(t, 'i', pr)

	// Cursor past the last entry draws as an inverted blank cell.
	pr, _, style, _ := sim.GetContent(2, 0)
	assert.Equal(t, ' ', pr)
	assert.Equal(t, tcell.StyleDefault.Reverse(true), style)
}

func TestRegion_RenderCursorOnEntryInverts(t *testing.T) {
	s, sim := simScreen(t)
	s.DefineRegion("main", 0, 0, 10, "")
	r, err := s.Resolve("main")
	require.NoError(t, err)

	buf := engine.NewBuffer()
	buf.Insert(0, engine.Entry{Kind: engine.EntryText, Value: "A"})
	buf.Insert(1, engine.Entry{Kind: engine.EntryText, Value: "B"})
	cur := engine.NewCursor(buf) // on A

	require.NoError(t, r.Render(buf, nil, cur))

	_, _, style, _ := sim.GetContent(0, 0)
	assert.Equal(t, tcell.StyleDefault.Reverse(true), style, "cursor cell is inverted")
	_, _, style, _ = sim.GetContent(1, 0)
	assert.Equal(t, tcell.StyleDefault, style)
}

func TestRegion_ReverseClearAttrBlanksInverted(t *testing.T) {
	s, sim := simScreen(t)
	s.DefineRegion("main", 0, 0, 4, "reverse")
	r, err := s.Resolve("main")
	require.NoError(t, err)

	// Empty buffer: cell 0 is the cursor, the rest blank with the
	// region's clear attribute.
	buf := engine.NewBuffer()
	require.NoError(t, r.Render(buf, nil, engine.NewCursor(buf)))

	_, _, style, _ := sim.GetContent(3, 0)
	assert.Equal(t, tcell.StyleDefault.Reverse(true), style)
}

func TestRegion_RenderRespectsWidth(t *testing.T) {
	s, sim := simScreen(t)
	s.DefineRegion("main", 0, 0, 2, "")
	r, err := s.Resolve("main")
	require.NoError(t, err)

	buf := engine.NewBuffer()
	for i, v := range []string{"A", "B", "C", "D"} {
		buf.Insert(i, engine.Entry{Kind: engine.EntryText, Value: v})
	}
	require.NoError(t, r.Render(buf, nil, engine.NewCursor(buf)))

	pr, _, _, _ := sim.GetContent(2, 0)
	assert.NotEqual(t, 'C', pr, "entries past the region width are clipped")
}
