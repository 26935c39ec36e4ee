package registry

import (
	"errors"
	"testing"

	"github.com/vovakirdan/tui-tetris/internal/core"
)

type stubGame struct{ id string }

func (g stubGame) ID() string { return g.id }
func (g stubGame) Title() string { return "Stub " + g.id }
func (g stubGame) Reset(core.RuntimeConfig) {}
func (g stubGame) Step(core.InputFrame) core.StepResult { return core.StepResult{} }
func (g stubGame) Render(*core.Screen) {}
func (g stubGame) State() core.GameState { return core.GameState{} }

func TestRegisterAndCreate(t *testing.T) {
	Register("stub_a", func() Game { return stubGame{id: "stub_a"} })

	if !Exists("stub_a") {
		t.Fatal("Exists(stub_a) = false, expected true")
	}
	g, err := Create("stub_a")
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if g.ID() != "stub_a" {
		t.Errorf("ID() = %q, expected %q", g.ID(), "stub_a")
	}

	found := false
	for _, info := range List() {
		if info.ID == "stub_a" {
			found = true
			if info.Title != "Stub stub_a" {
				t.Errorf("Title = %q, expected %q", info.Title, "Stub stub_a")
			}
		}
	}
	if !found {
		t.Error("List() does not include stub_a")
	}
}

func TestCreateUnknown(t *testing.T) {
	if _, err := Create("no_such_game"); !errors.Is(err, ErrUnknownGame) {
		t.Errorf("Create() error = %v, expected %v", err, ErrUnknownGame)
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register("stub_b", func() Game { return stubGame{id: "stub_b"} })

	defer func() {
		if recover() == nil {
			t.Error("duplicate Register should panic")
		}
	}()
	Register("stub_b", func() Game { return stubGame{id: "stub_b"} })
}
