package system

import (
	"math"

	"github.com/younwookim/brawl/internal/domain/entity"
	"github.com/younwookim/brawl/internal/infrastructure/config"
)

// PhysicsSystem moves the reference player against the tile grid
type PhysicsSystem struct {
	config *config.EngineConfig
	grid   *entity.TileGrid
}

// NewPhysicsSystem creates a new physics system
func NewPhysicsSystem(cfg *config.EngineConfig, grid *entity.TileGrid) *PhysicsSystem {
	return &PhysicsSystem{
		config: cfg,
		grid:   grid,
	}
}

// SetConfig swaps the tuning on hot reload
func (s *PhysicsSystem) SetConfig(cfg *config.EngineConfig) {
	s.config = cfg
}

// Update applies one tick of movement, knockback and gravity, then
// advances the player's timers
func (s *PhysicsSystem) Update(player *entity.Player) {
	s.moveX(player, player.MoveX+player.KnockbackVelocity())
	s.moveY(player)
	player.AdvanceTimers()
}

// moveX moves horizontally, stopping flush against walls
func (s *PhysicsSystem) moveX(player *entity.Player, dx float64) {
	if dx == 0 {
		return
	}
	hb := player.Hitbox
	if s.grid.CanOccupy(hb.X+dx, hb.Y, hb.Width, hb.Height) {
		player.Hitbox.X += dx
		return
	}
	player.Hitbox.X = s.grid.SnapX(hb, dx)
	player.KnockbackX = 0
}

// moveY applies gravity and lands on floors or stops under ceilings
func (s *PhysicsSystem) moveY(player *entity.Player) {
	if !player.InAir {
		if s.grid.IsOnFloor(player.Hitbox) {
			return
		}
		player.InAir = true
		player.AirSpeed = 0
	}

	phys := s.config.Physics
	player.AirSpeed = math.Min(player.AirSpeed+phys.Gravity, phys.MaxFallSpeed)
	dy := player.AirSpeed
	hb := player.Hitbox

	if s.grid.CanOccupy(hb.X, hb.Y+dy, hb.Width, hb.Height) {
		player.Hitbox.Y += dy
		if dy > 0 && s.grid.IsOnFloor(player.Hitbox) {
			player.InAir = false
			player.AirSpeed = 0
		}
		return
	}

	player.Hitbox.Y = s.grid.SnapY(hb, dy)
	if dy >= 0 {
		player.InAir = false
	}
	player.AirSpeed = 0
}

// PlayerStats converts the player tuning
func PlayerStats(cfg *config.EngineConfig) entity.PlayerStats {
	pc := cfg.Player
	return entity.PlayerStats{
		MaxHealth:          pc.MaxHealth,
		HitStunTicks:       cfg.Combat.HitStunTicks,
		KnockbackTicks:     cfg.Combat.Knockback.DurationTicks,
		AttackDamage:       pc.AttackDamage,
		AttackTicks:        pc.AttackTicks,
		AttackActiveStart:  pc.AttackActiveStart,
		AttackActiveEnd:    pc.AttackActiveEnd,
		AttackReachW:       pc.AttackReach.Width,
		AttackReachH:       pc.AttackReach.Height,
		ThrowCooldownTicks: pc.ThrowCooldownTicks,
	}
}

// SpawnPlayer places a new player with its feet on the level's spawn point
func SpawnPlayer(cfg *config.EngineConfig, level *entity.Level) *entity.Player {
	hb := cfg.Player.Hitbox
	return entity.NewPlayer(level.SpawnX, level.SpawnY-hb.Height-1, hb.Width, hb.Height, PlayerStats(cfg))
}
