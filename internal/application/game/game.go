// Package game provides the ebiten.Game that runs the current Scene.
package game

import (
	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"

	"github.com/younwookim/brawl/internal/application/scene"
)

// Game implements ebiten.Game and manages Scene transitions.
type Game struct {
	current scene.Scene
	screenW int
	screenH int
	log     *zap.Logger
	ticks   uint64
}

// New creates a new Game with the given initial scene.
// The initial scene's OnEnter is called immediately.
func New(initial scene.Scene, screenW, screenH int, log *zap.Logger) *Game {
	if log == nil {
		log = zap.NewNop()
	}
	g := &Game{
		current: initial,
		screenW: screenW,
		screenH: screenH,
		log:     log,
	}
	g.log.Info("scene entered", zap.String("scene", initial.Name()))
	g.current.OnEnter()
	return g
}

// Update updates the current scene and handles scene transitions.
func (g *Game) Update() error {
	g.ticks++
	next, err := g.current.Update()
	if err != nil {
		return err
	}

	if next != nil {
		g.log.Info("scene changed",
			zap.String("from", g.current.Name()),
			zap.String("to", next.Name()),
			zap.Uint64("tick", g.ticks),
		)
		g.current.OnExit()
		g.current = next
		g.current.OnEnter()
	}
	return nil
}

// Draw renders the current scene.
func (g *Game) Draw(screen *ebiten.Image) {
	g.current.Draw(screen)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.screenW, g.screenH
}

// Current returns the active scene
func (g *Game) Current() scene.Scene {
	return g.current
}

// Ticks returns the number of Update calls so far
func (g *Game) Ticks() uint64 {
	return g.ticks
}
