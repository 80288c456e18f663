package system

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/younwookim/brawl/internal/domain/entity"
	"github.com/younwookim/brawl/internal/infrastructure/config"
)

// InputState holds one tick of player input
type InputState struct {
	Left   bool
	Right  bool
	Jump   bool // pressed this tick
	Attack bool // pressed this tick
	Throw  bool // pressed this tick
	Pause  bool // pressed this tick
}

// ReadInput reads the keyboard
func ReadInput() InputState {
	return InputState{
		Left:   ebiten.IsKeyPressed(ebiten.KeyA) || ebiten.IsKeyPressed(ebiten.KeyArrowLeft),
		Right:  ebiten.IsKeyPressed(ebiten.KeyD) || ebiten.IsKeyPressed(ebiten.KeyArrowRight),
		Jump:   inpututil.IsKeyJustPressed(ebiten.KeyW) || inpututil.IsKeyJustPressed(ebiten.KeySpace),
		Attack: inpututil.IsKeyJustPressed(ebiten.KeyJ),
		Throw:  inpututil.IsKeyJustPressed(ebiten.KeyK),
		Pause:  inpututil.IsKeyJustPressed(ebiten.KeyEscape),
	}
}

// InputSystem turns input into player intent
type InputSystem struct {
	config *config.EngineConfig
}

// NewInputSystem creates a new input system
func NewInputSystem(cfg *config.EngineConfig) *InputSystem {
	return &InputSystem{config: cfg}
}

// SetConfig swaps the tuning on hot reload
func (s *InputSystem) SetConfig(cfg *config.EngineConfig) {
	s.config = cfg
}

// UpdatePlayer applies input to the player. Returns true when the player
// throws this tick; the caller spawns the projectile.
func (s *InputSystem) UpdatePlayer(player *entity.Player, input InputState, abilities entity.Abilities) bool {
	player.MoveX = 0
	if player.IsDamaged() || player.IsDead() {
		return false
	}

	speed := s.config.Player.MoveSpeed
	if input.Left && !input.Right {
		player.MoveX = -speed
		player.Facing = entity.FacingLeft
	}
	if input.Right && !input.Left {
		player.MoveX = speed
		player.Facing = entity.FacingRight
	}

	if input.Jump && !player.InAir {
		player.InAir = true
		player.AirSpeed = -s.config.Player.JumpForce
	}

	if input.Attack {
		player.StartAttack()
	}

	if input.Throw && abilities.Has(entity.AbilityThrow) && player.ThrowCooldown == 0 {
		player.ThrowCooldown = player.Stats.ThrowCooldownTicks
		return true
	}
	return false
}
