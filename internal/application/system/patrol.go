package system

import (
	"math"

	"go.uber.org/zap"

	"github.com/younwookim/brawl/internal/domain/entity"
	"github.com/younwookim/brawl/internal/infrastructure/config"
)

const (
	defaultCorridorProbeTiles = 6
	defaultCorridorMinTiles   = 2
)

// updatePatrol steps one ground-patrol enemy
func (m *EnemyManager) updatePatrol(e *entity.Enemy, target Target) {
	if !e.Active {
		return
	}
	tun, ok := m.cfg.Enemies[e.Archetype.String()]
	if !ok {
		return
	}
	if !e.State.Valid() {
		m.log.Warn("invalid enemy state, resetting to idle",
			zap.Uint32("id", uint32(e.ID)),
			zap.Int("state", int(e.State)),
		)
		e.SetState(entity.EnemyIdle)
	}

	if e.TouchCooldown > 0 {
		e.TouchCooldown--
	}
	if e.AttackCooldown > 0 {
		e.AttackCooldown--
	}

	m.applyEnemyGravity(e)
	e.StateTimer++

	switch e.State {
	case entity.EnemyIdle:
		if e.InAir {
			return
		}
		if e.StateTimer >= tun.IdleTicks {
			e.SetState(entity.EnemyRunning)
		}

	case entity.EnemyRunning:
		if e.InAir {
			return
		}
		m.patrolStep(e, &tun, target)

	case entity.EnemyAttack:
		m.patrolAttack(e, &tun, target)

	case entity.EnemyHurt:
		if e.StateTimer >= tun.HurtTicks {
			if e.Health.Current <= 0 {
				e.SetState(entity.EnemyDying)
			} else {
				e.SetState(entity.EnemyIdle)
			}
		}

	case entity.EnemyDying:
		if e.StateTimer >= tun.DyingTicks {
			e.Active = false
		}
	}
}

// applyEnemyGravity accelerates an airborne enemy and lands it on the floor
func (m *EnemyManager) applyEnemyGravity(e *entity.Enemy) {
	if !e.InAir {
		if m.grid.IsOnFloor(e.Hitbox) {
			return
		}
		e.InAir = true
		e.AirSpeed = 0
	}

	e.AirSpeed = math.Min(e.AirSpeed+m.cfg.Physics.Gravity, m.cfg.Physics.MaxFallSpeed)
	hb := e.Hitbox
	if m.grid.CanOccupy(hb.X, hb.Y+e.AirSpeed, hb.Width, hb.Height) {
		e.Hitbox.Y += e.AirSpeed
		if !m.grid.IsOnFloor(e.Hitbox) {
			return
		}
	} else {
		e.Hitbox.Y = m.grid.SnapY(hb, e.AirSpeed)
	}
	e.InAir = false
	e.AirSpeed = 0
}

// patrolStep walks the corridor and turns at its ends, walls and ledges
func (m *EnemyManager) patrolStep(e *entity.Enemy, tun *config.EnemyConfig, target Target) {
	if !e.Corridor.Known {
		e.Corridor = m.discoverCorridor(e.Hitbox, tun)
	}

	if target != nil && e.AttackCooldown == 0 && m.detects(e, tun, target) {
		e.SetState(entity.EnemyAttack)
		return
	}

	dx := e.Facing.Sign() * tun.PatrolSpeed
	hb := e.Hitbox
	nx := hb.X + dx

	switch {
	case nx < e.Corridor.Left || nx > e.Corridor.Right:
		e.Turn()
	case !m.grid.CanOccupy(nx, hb.Y, hb.Width, hb.Height):
		e.Hitbox.X = m.grid.SnapX(hb, dx)
		e.Turn()
	case !m.grid.IsFloorAhead(hb, dx):
		e.Turn()
	default:
		e.Hitbox.X = nx
	}
}

// discoverCorridor probes whole tiles left and right while the box still fits
// and stands on floor, then widens the result to the minimum width
func (m *EnemyManager) discoverCorridor(hb entity.Hitbox, tun *config.EnemyConfig) entity.Corridor {
	probe := tun.CorridorProbeTiles
	if probe <= 0 {
		probe = defaultCorridorProbeTiles
	}
	minTiles := tun.CorridorMinTiles
	if minTiles <= 0 {
		minTiles = defaultCorridorMinTiles
	}
	ts := float64(m.grid.TileSize)

	fits := func(x float64) bool {
		probeBox := hb
		probeBox.X = x
		return m.grid.CanOccupyBox(probeBox) && m.grid.IsOnFloor(probeBox)
	}

	left, right := hb.X, hb.X
	for i := 1; i <= probe; i++ {
		x := hb.X - float64(i)*ts
		if !fits(x) {
			break
		}
		left = x
	}
	for i := 1; i <= probe; i++ {
		x := hb.X + float64(i)*ts
		if !fits(x) {
			break
		}
		right = x
	}

	if minWidth := float64(minTiles) * ts; right-left < minWidth {
		pad := (minWidth - (right - left)) / 2
		left -= pad
		right += pad
	}
	return entity.Corridor{Left: left, Right: right, Known: true}
}

// detects checks range, vertical alignment within one tile and facing
func (m *EnemyManager) detects(e *entity.Enemy, tun *config.EnemyConfig, target Target) bool {
	tb := target.Box()
	dx := tb.CenterX() - e.Hitbox.CenterX()
	if math.Abs(dx) > tun.DetectRange {
		return false
	}
	if math.Abs(tb.Bottom()-e.Hitbox.Bottom()) > float64(m.grid.TileSize) {
		return false
	}
	return dx*e.Facing.Sign() >= 0
}

// patrolAttack runs the locked attack animation with a single hit-check
func (m *EnemyManager) patrolAttack(e *entity.Enemy, tun *config.EnemyConfig, target Target) {
	duration := tun.Attack.Duration()
	if duration == 0 {
		m.log.Warn("invalid attack animation, attack skipped",
			zap.Stringer("archetype", e.Archetype),
			zap.Int("frames", tun.Attack.Frames),
			zap.Int("ticksPerFrame", tun.Attack.TicksPerFrame),
		)
		e.SetState(entity.EnemyIdle)
		e.AttackCooldown = tun.AttackCooldownTicks
		return
	}

	if !e.AttackChecked && e.StateTimer >= tun.AttackHitTick {
		e.AttackChecked = true
		if tun.Ranged {
			m.throwFrom(&e.Actor)
		} else {
			m.emit(EnemyStrike{
				ID:        e.ID,
				Archetype: e.Archetype,
				Landed:    target != nil && !target.IsDamaged() && strikeBox(e.Hitbox, e.Facing).Overlaps(target.Box()),
			})
		}
	}

	if e.StateTimer >= duration {
		e.SetState(entity.EnemyIdle)
		e.AttackCooldown = tun.AttackCooldownTicks
	}
}

// strikeBox is the enemy's box extended by half its width toward facing
func strikeBox(hb entity.Hitbox, facing entity.Facing) entity.Hitbox {
	reach := hb.Width / 2
	if facing == entity.FacingLeft {
		hb.X -= reach
	}
	hb.Width += reach
	return hb
}

// throwFrom launches a projectile from the actor's leading side at mid height
func (m *EnemyManager) throwFrom(a *entity.Actor) {
	half := m.cfg.Projectile.Hitbox.Width / 2
	cx := a.Hitbox.Right() + half
	if a.Facing == entity.FacingLeft {
		cx = a.Hitbox.X - half
	}
	m.SpawnProjectile(a.ID, cx, a.Hitbox.CenterY(), a.Facing)
}
