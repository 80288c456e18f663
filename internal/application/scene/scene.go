// Package scene defines the Scene interface for host screens.
package scene

import "github.com/hajimehoshi/ebiten/v2"

// Scene is one host screen. The game loop delegates Update and Draw to the
// current scene; returning a non-nil Scene from Update switches to it.
type Scene interface {
	// Name identifies the scene in logs
	Name() string

	// Update advances one tick. Returns the next scene for a transition,
	// nil to stay. An error ends the game loop.
	Update() (next Scene, err error)

	Draw(screen *ebiten.Image)

	// OnEnter is called each time the scene becomes current
	OnEnter()

	// OnExit is called when the scene is replaced
	OnExit()
}
