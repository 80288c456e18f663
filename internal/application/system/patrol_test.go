package system

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/younwookim/brawl/internal/domain/entity"
	"github.com/younwookim/brawl/internal/infrastructure/config"
)

func onlyCrab(t *testing.T, m *EnemyManager) *entity.Enemy {
	t.Helper()
	crabs := m.Enemies(entity.ArchetypeCrab)
	require.Len(t, crabs, 1)
	return crabs[0]
}

func TestPatrol_IdleThenRunning(t *testing.T) {
	cfg := config.Default()
	m, _ := newTestManager(t, cfg, 1, arena("#...C..............#"))
	crab := onlyCrab(t, m)
	idle := cfg.Enemies["crab"].IdleTicks

	for i := 0; i < idle-1; i++ {
		m.Update(nil)
	}
	assert.Equal(t, entity.EnemyIdle, crab.State)

	m.Update(nil)
	assert.Equal(t, entity.EnemyRunning, crab.State)
}

func TestPatrol_CorridorDiscovery(t *testing.T) {
	cfg := config.Default()
	tun := cfg.Enemies["crab"]

	t.Run("open floor is capped by the probe distance", func(t *testing.T) {
		m, _ := newTestManager(t, cfg, 1, arena("#...C..............#"))
		crab := onlyCrab(t, m)

		c := m.discoverCorridor(crab.Hitbox, &tun)
		assert.True(t, c.Known)
		assert.Equal(t, 16.0, c.Left, "stops before the wall tile")
		assert.Equal(t, 64.0+6*testTile, c.Right, "six tiles to the right")
	})

	t.Run("walls bound both sides", func(t *testing.T) {
		// spawned at tile (10,5) with three clear tiles to the left and two
		// to the right
		air := strings.Repeat(".", 14)
		rows := []string{air, air, air, air, air, "......#...C..#", strings.Repeat("#", 14)}
		m, _ := newTestManager(t, cfg, 1, rows)
		crab := onlyCrab(t, m)
		spawnX := float64(10 * testTile)
		require.Equal(t, spawnX, crab.Hitbox.X)

		// a box narrower than a tile steps a whole tile per probe
		hb := crab.Hitbox
		hb.Width = testTile - 1
		c := m.discoverCorridor(hb, &tun)
		assert.Equal(t, spawnX-3*testTile, c.Left)
		assert.Equal(t, spawnX+2*testTile, c.Right)
	})

	t.Run("narrow ledge is widened symmetrically", func(t *testing.T) {
		rows := []string{
			"........",
			"........",
			"........",
			"........",
			"...C....",
			"...#....",
		}
		m, _ := newTestManager(t, cfg, 1, rows)
		crab := onlyCrab(t, m)

		// one step left keeps the right corner on the ledge, so the raw
		// corridor is [32, 48] before widening
		c := m.discoverCorridor(crab.Hitbox, &tun)
		assert.Equal(t, float64(2*testTile), c.Width())
		assert.Equal(t, 24.0, c.Left)
		assert.Equal(t, 56.0, c.Right)
	})
}

func TestPatrol_StaysInsideCorridor(t *testing.T) {
	cfg := config.Default()
	m, _ := newTestManager(t, cfg, 1, arena("#...C..............#"))
	crab := onlyCrab(t, m)
	crab.SetState(entity.EnemyRunning)
	startY := crab.Hitbox.Y

	turns := 0
	facing := crab.Facing
	for i := 0; i < 600; i++ {
		m.Update(nil)
		require.True(t, crab.Corridor.Known)
		assert.GreaterOrEqual(t, crab.Hitbox.X, crab.Corridor.Left)
		assert.LessOrEqual(t, crab.Hitbox.X, crab.Corridor.Right)
		assert.True(t, m.Grid().CanOccupyBox(crab.Hitbox))
		assert.Equal(t, startY, crab.Hitbox.Y)
		if crab.Facing != facing {
			turns++
			facing = crab.Facing
		}
	}
	assert.GreaterOrEqual(t, turns, 2)
}

func TestPatrol_ReversesAtWall(t *testing.T) {
	cfg := config.Default()
	m, _ := newTestManager(t, cfg, 1, arena("#C.......#"))
	crab := onlyCrab(t, m)
	crab.SetState(entity.EnemyRunning)
	crab.Corridor = entity.Corridor{Left: -1000, Right: 1000, Known: true}
	require.Equal(t, entity.FacingLeft, crab.Facing)

	m.Update(nil)
	assert.Equal(t, 16.0, crab.Hitbox.X, "flush with the wall")
	assert.Equal(t, entity.FacingRight, crab.Facing)

	m.Update(nil)
	assert.InDelta(t, 16.6, crab.Hitbox.X, 1e-9)
}

func TestPatrol_ReversesAtLedge(t *testing.T) {
	cfg := config.Default()
	rows := arena("..C.......")
	rows[5] = "####.#####"
	m, _ := newTestManager(t, cfg, 1, rows)
	crab := onlyCrab(t, m)
	crab.SetState(entity.EnemyRunning)
	crab.Corridor = entity.Corridor{Left: -1000, Right: 1000, Known: true}
	crab.Facing = entity.FacingRight
	startY := crab.Hitbox.Y

	turned := false
	for i := 0; i < 30; i++ {
		m.Update(nil)
		assert.False(t, crab.InAir)
		assert.Equal(t, startY, crab.Hitbox.Y)
		assert.LessOrEqual(t, crab.Hitbox.X, 40.0)
		if crab.Facing == entity.FacingLeft {
			turned = true
		}
	}
	assert.True(t, turned)
}

func TestPatrol_GravityLandsOnFloor(t *testing.T) {
	cfg := config.Default()
	m, _ := newTestManager(t, cfg, 1, arena("#...C....#"))
	crab := onlyCrab(t, m)
	crab.Hitbox.Y = 10
	crab.SetState(entity.EnemyRunning)

	m.Update(nil)
	assert.True(t, crab.InAir)
	assert.False(t, crab.Corridor.Known, "no patrol progress while airborne")

	for i := 0; i < 60 && crab.InAir; i++ {
		m.Update(nil)
	}
	assert.False(t, crab.InAir)
	assert.Equal(t, 5*testTile-1.0, crab.Hitbox.Bottom())
	assert.Equal(t, 0.0, crab.AirSpeed)
}

func TestPatrol_MeleeAttack(t *testing.T) {
	cfg := config.Default()
	tun := cfg.Enemies["crab"]
	m, _ := newTestManager(t, cfg, 1, arena("#...C..............#"))
	crab := onlyCrab(t, m)
	crab.SetState(entity.EnemyRunning)
	player := newTestPlayer(cfg, 45)

	m.Update(player)
	require.Equal(t, entity.EnemyAttack, crab.State)
	startX := crab.Hitbox.X

	for i := 0; i < tun.AttackHitTick; i++ {
		m.Update(player)
	}
	events := m.DrainEvents()
	require.Len(t, events, 1)
	strike, ok := events[0].(EnemyStrike)
	require.True(t, ok)
	assert.True(t, strike.Landed)
	assert.Equal(t, crab.ID, strike.ID)
	assert.Equal(t, 100, player.Health.Current, "melee hit-check deals no damage")

	for i := tun.AttackHitTick; i < tun.Attack.Duration()-1; i++ {
		m.Update(player)
		assert.Equal(t, entity.EnemyAttack, crab.State)
	}
	assert.Equal(t, startX, crab.Hitbox.X, "movement is locked while attacking")

	m.Update(player)
	assert.Equal(t, entity.EnemyIdle, crab.State)
	assert.Equal(t, tun.AttackCooldownTicks, crab.AttackCooldown)
	assert.Empty(t, m.DrainEvents(), "one hit-check per attack")
}

func TestPatrol_CooldownDecrementsByOne(t *testing.T) {
	cfg := config.Default()
	m, _ := newTestManager(t, cfg, 1, arena("#...C....#"))
	crab := onlyCrab(t, m)
	crab.AttackCooldown = 10
	crab.TouchCooldown = 5

	for i := 1; i <= 12; i++ {
		m.Update(nil)
		assert.Equal(t, max(10-i, 0), crab.AttackCooldown)
		assert.Equal(t, max(5-i, 0), crab.TouchCooldown)
	}
}

func TestPatrol_NoDetectionBehind(t *testing.T) {
	cfg := config.Default()
	tun := cfg.Enemies["crab"]
	m, _ := newTestManager(t, cfg, 1, arena("#...C..............#"))
	crab := onlyCrab(t, m)

	tests := []struct {
		name   string
		x      float64
		detect bool
	}{
		{"in front", 45, true},
		{"behind", 95, false},
		{"out of range", 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			player := newTestPlayer(cfg, tt.x)
			assert.Equal(t, tt.detect, m.detects(crab, &tun, player))
		})
	}

	player := newTestPlayer(cfg, 45)
	player.Hitbox.Y -= 2 * testTile
	assert.False(t, m.detects(crab, &tun, player), "more than a tile above")
}

func TestPatrol_RangedThrowsProjectile(t *testing.T) {
	cfg := config.Default()
	m, _ := newTestManager(t, cfg, 1, arena("#.......M..........#"))
	monkey := m.Enemies(entity.ArchetypeMonkey)[0]
	monkey.SetState(entity.EnemyRunning)
	player := newTestPlayer(cfg, 20)

	m.Update(player)
	require.Equal(t, entity.EnemyAttack, monkey.State)

	for i := 0; i < 20; i++ {
		m.Update(player)
	}
	require.Len(t, m.Projectiles(), 1)
	p := m.Projectiles()[0]
	assert.Equal(t, monkey.ID, p.Owner)
	assert.Equal(t, entity.FacingLeft, p.Direction)

	for i := 0; i < 60 && len(m.Projectiles()) > 0; i++ {
		m.Update(player)
	}
	assert.Empty(t, m.Projectiles())
	assert.Equal(t, 100-cfg.Projectile.Damage, player.Health.Current)
	assert.True(t, player.IsDamaged())
	assert.Less(t, player.KnockbackX, 0.0, "pushed along the projectile's travel")

	var hit *PlayerHit
	for _, e := range m.DrainEvents() {
		if h, ok := e.(PlayerHit); ok {
			hit = &h
		}
	}
	require.NotNil(t, hit)
	assert.Equal(t, monkey.ID, hit.Source)
}

func TestPatrol_InvalidAnimationSkipsAttack(t *testing.T) {
	cfg := config.Default()
	crabCfg := cfg.Enemies["crab"]
	crabCfg.Attack.Frames = 0
	cfg.Enemies["crab"] = crabCfg

	core, logs := observer.New(zapcore.WarnLevel)
	lvl := &entity.Level{Grid: gridFromRows(arena("#...C....#")...)}
	m := NewEnemyManager(cfg, testRNG(), nil, zap.New(core))
	m.LoadFromLevel(lvl, 1)
	crab := onlyCrab(t, m)
	crab.SetState(entity.EnemyAttack)

	m.Update(nil)
	assert.Equal(t, entity.EnemyIdle, crab.State)
	assert.Equal(t, crabCfg.AttackCooldownTicks, crab.AttackCooldown)
	assert.Equal(t, 1, logs.FilterMessage("invalid attack animation, attack skipped").Len())
}

func TestPatrol_InvalidStateResetsToIdle(t *testing.T) {
	cfg := config.Default()
	core, logs := observer.New(zapcore.WarnLevel)
	lvl := &entity.Level{Grid: gridFromRows(arena("#...C....#")...)}
	m := NewEnemyManager(cfg, testRNG(), nil, zap.New(core))
	m.LoadFromLevel(lvl, 1)
	crab := onlyCrab(t, m)
	crab.State = entity.EnemyState(42)

	m.Update(nil)
	assert.Equal(t, entity.EnemyIdle, crab.State)
	assert.Equal(t, 1, logs.FilterMessage("invalid enemy state, resetting to idle").Len())
}

func TestPatrol_HurtRecovers(t *testing.T) {
	cfg := config.Default()
	m, _ := newTestManager(t, cfg, 1, arena("#...C....#"))
	crab := onlyCrab(t, m)
	require.False(t, crab.TakeDamage(10))

	for i := 0; i < cfg.Enemies["crab"].HurtTicks; i++ {
		assert.Equal(t, entity.EnemyHurt, crab.State)
		m.Update(nil)
	}
	assert.Equal(t, entity.EnemyIdle, crab.State)
	assert.Equal(t, 20, crab.Health.Current)
}
