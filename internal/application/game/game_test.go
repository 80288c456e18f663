package game

import (
	"errors"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/younwookim/brawl/internal/application/scene"
)

// mockScene is a test double for Scene interface
type mockScene struct {
	name          string
	updateCalled  int
	drawCalled    int
	onEnterCalled int
	onExitCalled  int
	nextScene     scene.Scene
	updateErr     error
}

func (m *mockScene) Name() string { return m.name }

func (m *mockScene) Update() (scene.Scene, error) {
	m.updateCalled++
	return m.nextScene, m.updateErr
}

func (m *mockScene) Draw(_ *ebiten.Image) {
	m.drawCalled++
}

func (m *mockScene) OnEnter() {
	m.onEnterCalled++
}

func (m *mockScene) OnExit() {
	m.onExitCalled++
}

func TestNew(t *testing.T) {
	initial := &mockScene{name: "a"}
	g := New(initial, 320, 240, nil)

	assert.NotNil(t, g)
	assert.Equal(t, 1, initial.onEnterCalled, "OnEnter is called on the initial scene")
	assert.Same(t, initial, g.Current())
}

func TestGame_UpdateAndDrawDelegate(t *testing.T) {
	initial := &mockScene{name: "a"}
	g := New(initial, 320, 240, zap.NewNop())

	assert.NoError(t, g.Update())
	g.Draw(nil)

	assert.Equal(t, 1, initial.updateCalled)
	assert.Equal(t, 1, initial.drawCalled)
	assert.Equal(t, uint64(1), g.Ticks())
}

func TestGame_Layout(t *testing.T) {
	g := New(&mockScene{name: "a"}, 480, 270, nil)

	w, h := g.Layout(1920, 1080)
	assert.Equal(t, 480, w)
	assert.Equal(t, 270, h)
}

func TestGame_SceneTransition(t *testing.T) {
	second := &mockScene{name: "b"}
	first := &mockScene{name: "a", nextScene: second}

	core, logs := observer.New(zapcore.InfoLevel)
	g := New(first, 320, 240, zap.New(core))

	assert.NoError(t, g.Update())
	assert.Equal(t, 1, first.onExitCalled)
	assert.Equal(t, 1, second.onEnterCalled)
	assert.Same(t, second, g.Current())

	changed := logs.FilterMessage("scene changed").All()
	if assert.Len(t, changed, 1) {
		assert.Equal(t, "a", changed[0].ContextMap()["from"])
		assert.Equal(t, "b", changed[0].ContextMap()["to"])
	}

	assert.NoError(t, g.Update())
	assert.Equal(t, 1, second.updateCalled)
}

func TestGame_UpdateError(t *testing.T) {
	boom := errors.New("boom")
	s := &mockScene{name: "a", updateErr: boom, nextScene: &mockScene{name: "b"}}
	g := New(s, 320, 240, nil)

	assert.ErrorIs(t, g.Update(), boom)
	assert.Same(t, s, g.Current(), "no transition on error")
	assert.Zero(t, s.onExitCalled)
}
