package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-tetris/internal/core"
)

// recordGame records the input frames it is stepped with.
type recordGame struct {
	frames []core.InputFrame
	state  core.GameState
	resets int
}

func (g *recordGame) ID() string { return "record" }
func (g *recordGame) Title() string { return "Record" }
func (g *recordGame) Reset(core.RuntimeConfig) { g.resets++ }
func (g *recordGame) Render(dst *core.Screen) { dst.DrawText(0, 0, "hello") }
func (g *recordGame) State() core.GameState { return g.state }
func (g *recordGame) Step(in core.InputFrame) core.StepResult {
	g.frames = append(g.frames, in.Clone())
	return core.StepResult{State: g.state}
}

func runeKey(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestKeyMapActions(t *testing.T) {
	keys := DefaultKeyMap()
	tests := []struct {
		name string
		msg  tea.KeyMsg
		want core.Action
	}{
		{"left arrow", tea.KeyMsg{Type: tea.KeyLeft}, core.ActionLeft},
		{"a", runeKey("a"), core.ActionLeft},
		{"right arrow", tea.KeyMsg{Type: tea.KeyRight}, core.ActionRight},
		{"d", runeKey("d"), core.ActionRight},
		{"down arrow", tea.KeyMsg{Type: tea.KeyDown}, core.ActionDown},
		{"up arrow", tea.KeyMsg{Type: tea.KeyUp}, core.ActionRotate},
		{"w", runeKey("w"), core.ActionRotate},
		{"h", runeKey("h"), core.ActionFlipH},
		{"g", runeKey("g"), core.ActionFlipV},
		{"enter", tea.KeyMsg{Type: tea.KeyEnter}, core.ActionConfirm},
		{"esc", tea.KeyMsg{Type: tea.KeyEsc}, core.ActionBack},
		{"r", runeKey("r"), core.ActionRestart},
		{"p", runeKey("p"), core.ActionPause},
		{"q", runeKey("q"), core.ActionQuit},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit},
		{"unbound", runeKey("z"), core.ActionNone},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := keys.Action(tc.msg); got != tc.want {
				t.Errorf("Action(%q) = %v, expected %v", tc.msg.String(), got, tc.want)
			}
		})
	}
}

func TestModelBuffersInputUntilTick(t *testing.T) {
	g := &recordGame{}
	m := NewModel(g, core.RuntimeConfig{ScreenW: 40, ScreenH: 10, TickRate: 60, Seed: 1})

	next, _ := m.Update(runeKey("a"))
	next, _ = next.Update(tea.KeyMsg{Type: tea.KeyUp})
	if len(g.frames) != 0 {
		t.Fatalf("game stepped %d times before a tick", len(g.frames))
	}

	next, cmd := next.Update(TickMsg{})
	if cmd == nil {
		t.Error("tick should schedule the next tick")
	}
	if len(g.frames) != 1 {
		t.Fatalf("game stepped %d times, expected 1", len(g.frames))
	}
	if !g.frames[0].Has(core.ActionLeft) || !g.frames[0].Has(core.ActionRotate) {
		t.Errorf("frame = %v, expected Left and Rotate", g.frames[0].Actions)
	}

	next.Update(TickMsg{})
	if len(g.frames) != 2 || len(g.frames[1].Actions) != 0 {
		t.Errorf("second frame = %v, expected empty", g.frames[1].Actions)
	}
}

func TestModelQuit(t *testing.T) {
	m := NewModel(&recordGame{}, core.RuntimeConfig{ScreenW: 40, ScreenH: 10})

	next, cmd := m.Update(runeKey("q"))
	if cmd == nil || !next.(Model).Quitting() {
		t.Error("q should quit")
	}
}

func TestModelBackQuitsOnlyWhenNotPlaying(t *testing.T) {
	tests := []struct {
		name     string
		state    core.GameState
		wantQuit bool
	}{
		{"title", core.GameState{Idle: true}, true},
		{"game over", core.GameState{GameOver: true}, true},
		{"playing", core.GameState{}, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g := &recordGame{state: tc.state}
			m := NewModel(g, core.RuntimeConfig{ScreenW: 40, ScreenH: 10})
			next, _ := m.Update(TickMsg{})

			next, _ = next.Update(tea.KeyMsg{Type: tea.KeyEsc})
			if got := next.(Model).Quitting(); got != tc.wantQuit {
				t.Errorf("Quitting() = %v, expected %v", got, tc.wantQuit)
			}
		})
	}
}

func TestModelResizeResetsPlainGame(t *testing.T) {
	g := &recordGame{}
	m := NewModel(g, core.RuntimeConfig{ScreenW: 40, ScreenH: 10})

	next, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	mm := next.(Model)
	if mm.screen.Width() != 100 || mm.screen.Height() != 30-helpHeight {
		t.Errorf("screen = %dx%d, expected 100x%d", mm.screen.Width(), mm.screen.Height(), 30-helpHeight)
	}
	// recordGame is not a Resizer, so it is reset.
	if g.resets != 1 {
		t.Errorf("resets = %d, expected 1", g.resets)
	}
}

// resizeGame keeps its state across resizes.
type resizeGame struct {
	recordGame
	w, h int
}

func (g *resizeGame) Resize(w, h int) { g.w, g.h = w, h }

func TestModelResizeKeepsResizer(t *testing.T) {
	g := &resizeGame{}
	m := NewModel(g, core.RuntimeConfig{ScreenW: 40, ScreenH: 10})

	m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	if g.resets != 0 {
		t.Errorf("resets = %d, expected 0", g.resets)
	}
	if g.w != 100 || g.h != 30-helpHeight {
		t.Errorf("Resize(%d, %d), expected Resize(100, %d)", g.w, g.h, 30-helpHeight)
	}
}

func TestModelResizeKeepsFinishedGame(t *testing.T) {
	g := &recordGame{state: core.GameState{GameOver: true}}
	m := NewModel(g, core.RuntimeConfig{ScreenW: 40, ScreenH: 10})

	next, _ := m.Update(TickMsg{})
	next.Update(tea.WindowSizeMsg{Width: 60, Height: 20})
	if g.resets != 0 {
		t.Errorf("resets = %d, expected 0 after game over", g.resets)
	}
}

func TestModelView(t *testing.T) {
	m := NewModel(&recordGame{}, core.RuntimeConfig{ScreenW: 40, ScreenH: 10})
	view := m.View()
	if !strings.Contains(view, "hello") {
		t.Errorf("View() missing game output:\n%s", view)
	}
	if !strings.Contains(view, "left") {
		t.Errorf("View() missing help line:\n%s", view)
	}
}
