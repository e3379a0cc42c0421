package tui

import (
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/bricker/internal/core"
	"github.com/vovakirdan/bricker/internal/storage"
)

// scriptGame records the frames it receives and ends when told to.
type scriptGame struct {
	frames []core.InputFrame
	resets int
	state  core.GameState
}

func (g *scriptGame) ID() string    { return "script" }
func (g *scriptGame) Title() string { return "Script" }
func (g *scriptGame) Reset(core.RuntimeConfig) {
	g.resets++
	g.state = core.GameState{}
}

func (g *scriptGame) Step(in core.InputFrame) core.StepResult {
	copied := core.NewInputFrame()
	for a := range in.Actions {
		copied.Set(a)
	}
	g.frames = append(g.frames, copied)
	return core.StepResult{State: g.state}
}

func (g *scriptGame) Render(dst *core.Screen) { dst.DrawText(0, 0, "script") }
func (g *scriptGame) State() core.GameState   { return g.state }

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func newTestModel(g *scriptGame, store *storage.Store) GameModel {
	cfg := core.RuntimeConfig{ScreenW: 20, ScreenH: 5, TickRate: 60, Seed: 7}
	m := NewGameModel(g, store, cfg, nil)
	m.Init()
	return m
}

func tick(t *testing.T, m GameModel) GameModel {
	t.Helper()
	next, _ := m.Update(TickMsg{Time: time.Now(), Loop: m.loop})
	gm, ok := next.(GameModel)
	require.True(t, ok)
	return gm
}

func press(t *testing.T, m GameModel, msg tea.KeyMsg) GameModel {
	t.Helper()
	next, _ := m.Update(msg)
	gm, ok := next.(GameModel)
	require.True(t, ok)
	return gm
}

func TestKeyMapperGameActions(t *testing.T) {
	km := NewKeyMapper()

	cases := map[string]core.Action{
		"a": core.ActionLeft,
		"d": core.ActionRight,
		" ": core.ActionLaunch,
		"p": core.ActionPause,
		"r": core.ActionRestart,
		"b": core.ActionBack,
		"q": core.ActionQuit,
		"x": core.ActionNone,
	}
	for k, want := range cases {
		assert.Equal(t, want, km.MapKey(keyRunes(k)), "key %q", k)
	}
	assert.Equal(t, core.ActionLeft, km.MapKey(tea.KeyMsg{Type: tea.KeyLeft}))
	assert.Equal(t, core.ActionRight, km.MapKey(tea.KeyMsg{Type: tea.KeyRight}))
	assert.Equal(t, core.ActionBack, km.MapKey(tea.KeyMsg{Type: tea.KeyEsc}))
}

func TestKeyMapperMenuActions(t *testing.T) {
	km := NewKeyMapper()

	assert.Equal(t, MenuActionUp, km.MapKeyToMenuAction(keyRunes("k")))
	assert.Equal(t, MenuActionDown, km.MapKeyToMenuAction(tea.KeyMsg{Type: tea.KeyDown}))
	assert.Equal(t, MenuActionSelect, km.MapKeyToMenuAction(tea.KeyMsg{Type: tea.KeyEnter}))
	assert.Equal(t, MenuActionScoreboard, km.MapKeyToMenuAction(tea.KeyMsg{Type: tea.KeyTab}))
	assert.Equal(t, MenuActionQuit, km.MapKeyToMenuAction(keyRunes("q")))
}

func TestRenderScreenKeepsPlainTextForDefaultColor(t *testing.T) {
	s := core.NewScreen(5, 2)
	s.DrawText(0, 0, "ab")
	s.SetColored(2, 1, '♥', core.ColorRed)

	out := RenderScreen(s)
	lines := strings.Split(out, "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "ab   ", lines[0])
	assert.Contains(t, lines[1], "♥")
}

func TestHeldMovementLastsAFewTicks(t *testing.T) {
	g := &scriptGame{}
	m := newTestModel(g, nil)

	m = press(t, m, keyRunes("a"))
	for i := 0; i < holdTicks+2; i++ {
		m = tick(t, m)
	}

	require.Len(t, g.frames, holdTicks+2)
	for i := 0; i < holdTicks; i++ {
		assert.True(t, g.frames[i].Has(core.ActionLeft), "tick %d should move left", i)
	}
	assert.False(t, g.frames[holdTicks].Has(core.ActionLeft))
}

func TestOppositeKeyCancelsHeldMovement(t *testing.T) {
	g := &scriptGame{}
	m := newTestModel(g, nil)

	m = press(t, m, keyRunes("a"))
	m = press(t, m, keyRunes("d"))
	m = tick(t, m)

	assert.True(t, g.frames[0].Has(core.ActionRight))
	assert.False(t, g.frames[0].Has(core.ActionLeft))
}

func TestSingleShotActionsLastOneTick(t *testing.T) {
	g := &scriptGame{}
	m := newTestModel(g, nil)

	m = press(t, m, keyRunes(" "))
	m = tick(t, m)
	m = tick(t, m)

	assert.True(t, g.frames[0].Has(core.ActionLaunch))
	assert.False(t, g.frames[1].Has(core.ActionLaunch))
}

func TestTicksFromOtherLoopsAreIgnored(t *testing.T) {
	g := &scriptGame{}
	m := newTestModel(g, nil)

	next, cmd := m.Update(TickMsg{Time: time.Now(), Loop: m.loop + 1000})
	assert.Nil(t, cmd)
	_ = next
	assert.Empty(t, g.frames)
}

func TestScoreSavedOnceWhenRunEnds(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	require.NoError(t, err)
	defer store.Close()

	g := &scriptGame{}
	m := newTestModel(g, store)

	g.state = core.GameState{Score: 70, GameOver: true, Won: true}
	m = tick(t, m)
	m = tick(t, m)

	scores, err := store.TopScores("script", 10)
	require.NoError(t, err)
	require.Len(t, scores, 1)
	assert.Equal(t, 70, scores[0].Score)
	assert.True(t, scores[0].Won)
}

func TestRestartAfterGameOverResetsGame(t *testing.T) {
	g := &scriptGame{}
	m := newTestModel(g, nil)
	require.Equal(t, 1, g.resets)

	g.state = core.GameState{Score: 10, GameOver: true}
	m = tick(t, m)
	m = press(t, m, keyRunes("r"))
	m = tick(t, m)

	assert.Equal(t, 2, g.resets)
	assert.False(t, m.State().GameOver)
}

func TestBackOnlyLeavesWhenPausedOrOver(t *testing.T) {
	g := &scriptGame{}
	m := newTestModel(g, nil)

	m = press(t, m, keyRunes("b"))
	assert.False(t, m.BackToMenu(), "back during play is ignored")

	g.state = core.GameState{Paused: true}
	m = tick(t, m)
	m = press(t, m, keyRunes("b"))
	assert.True(t, m.BackToMenu())
}

func TestScoreRowsRankAndResult(t *testing.T) {
	rows := scoreRows([]storage.ScoreEntry{
		{Score: 300, Won: true},
		{Score: 20},
	})

	require.Len(t, rows, 2)
	assert.Equal(t, "#1", rows[0][0])
	assert.Equal(t, "300", rows[0][1])
	assert.Equal(t, "cleared", rows[0][2])
	assert.Equal(t, "lost", rows[1][2])
}

func TestCenterTextIgnoresANSI(t *testing.T) {
	styled := menuTitleStyle.Render("abc")
	out := centerText(styled, 9)
	assert.True(t, strings.HasPrefix(out, "   "))
}
