package system

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest"
	"go.uber.org/zap/zaptest/observer"

	"github.com/younwookim/brawl/internal/domain/entity"
	"github.com/younwookim/brawl/internal/infrastructure/config"
)

const testTile = 16

func testRNG() *rand.Rand {
	return rand.New(rand.NewSource(12345))
}

// gridFromRows builds a 16px grid using the default stage characters
func gridFromRows(rows ...string) *entity.TileGrid {
	mapping := config.DefaultTileMapping()
	codes := make([][]int, len(rows))
	for y, row := range rows {
		codes[y] = make([]int, len(row))
		for x, ch := range row {
			codes[y][x] = mapping[string(ch)]
		}
	}
	return entity.NewTileGrid(codes, testTile)
}

// arena is four rows of air, one actor row and a floor
func arena(actorRow string) []string {
	cols := len(actorRow)
	air := strings.Repeat(".", cols)
	return []string{air, air, air, air, actorRow, strings.Repeat("#", cols)}
}

func newTestManager(t testing.TB, cfg *config.EngineConfig, levelID int, rows []string) (*EnemyManager, *entity.Level) {
	t.Helper()
	lvl := &entity.Level{ID: levelID, Grid: gridFromRows(rows...)}
	m := NewEnemyManager(cfg, testRNG(), nil, zap.NewNop())
	m.LoadFromLevel(lvl, levelID)
	return m, lvl
}

// newTestPlayer stands a default-sized player on the arena floor at x
func newTestPlayer(cfg *config.EngineConfig, x float64) *entity.Player {
	h := cfg.Player.Hitbox.Height
	return entity.NewPlayer(x, 5*testTile-h-1, cfg.Player.Hitbox.Width, h, PlayerStats(cfg))
}

func TestEnemyManager_LoadFromLevel(t *testing.T) {
	cfg := config.Default()
	m, _ := newTestManager(t, cfg, 1, arena("#.C..B..M...P....G......#"))

	assert.Len(t, m.Enemies(entity.ArchetypeCrab), 1)
	assert.Len(t, m.Enemies(entity.ArchetypeBoar), 1)
	assert.Len(t, m.Enemies(entity.ArchetypeMonkey), 1)
	assert.Len(t, m.Bosses(), 2)
	assert.Len(t, m.AllEnemies(), 3)
	assert.Empty(t, m.Pending())
	assert.Equal(t, 5, m.Remaining())

	crab := m.Enemies(entity.ArchetypeCrab)[0]
	assert.Equal(t, float64(2*testTile), crab.Hitbox.X)
	assert.Equal(t, 5*testTile-1.0, crab.Hitbox.Bottom(), "spawned one unit above the floor")
	assert.True(t, m.Grid().IsOnFloor(crab.Hitbox))

	seen := make(map[entity.EntityID]bool)
	for _, e := range m.AllEnemies() {
		assert.NotEqual(t, entity.PlayerID, e.ID)
		assert.False(t, seen[e.ID])
		seen[e.ID] = true
	}
}

func TestEnemyManager_AllEnemiesDeclarationOrder(t *testing.T) {
	cfg := config.Default()
	m, _ := newTestManager(t, cfg, 1, arena("#M..B..C..#"))

	all := m.AllEnemies()
	require.Len(t, all, 3)
	assert.Equal(t, entity.ArchetypeCrab, all[0].Archetype)
	assert.Equal(t, entity.ArchetypeBoar, all[1].Archetype)
	assert.Equal(t, entity.ArchetypeMonkey, all[2].Archetype)
}

func TestEnemyManager_UpdateWithoutLevelIsNoop(t *testing.T) {
	m := NewEnemyManager(config.Default(), testRNG(), nil, nil)
	assert.NotPanics(t, func() { m.Update(nil) })
	assert.Equal(t, 0, m.Remaining())
}

func TestEnemyManager_ProximitySpawn(t *testing.T) {
	cfg := config.Default()
	row := "#" + strings.Repeat(".", 34) + "C...#"
	m, _ := newTestManager(t, cfg, 3, arena(row))

	require.Equal(t, config.SpawnProximity, cfg.Spawn.Policy(3))
	assert.Empty(t, m.AllEnemies())
	require.Len(t, m.Pending(), 1)
	assert.Equal(t, 1, m.Remaining(), "pending spawns count as remaining")

	m.Update(nil)
	assert.Len(t, m.Pending(), 1, "no target, nothing spawns")

	player := newTestPlayer(cfg, 20)
	m.Update(player)
	assert.Len(t, m.Pending(), 1, "target too far")

	player.Hitbox.X = 300
	m.Update(player)
	assert.Empty(t, m.Pending())
	assert.Len(t, m.Enemies(entity.ArchetypeCrab), 1)
}

func TestEnemyManager_RemovalDropsLoot(t *testing.T) {
	tests := []struct {
		name    string
		chance  float64
		pickups int
	}{
		{"always", 1, 1},
		{"never", 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.Default()
			cfg.Drops.PickupChance = tt.chance
			m, lvl := newTestManager(t, cfg, 1, arena("#...C...#"))

			crab := m.Enemies(entity.ArchetypeCrab)[0]
			require.True(t, crab.TakeDamage(crab.Health.Max))
			m.DrainEvents()

			dying := cfg.Enemies["crab"].DyingTicks
			for i := 0; i < dying-1; i++ {
				m.Update(nil)
			}
			assert.Len(t, m.Enemies(entity.ArchetypeCrab), 1, "still playing the death animation")
			assert.Equal(t, 1, m.Remaining(), "a dying enemy still counts")

			m.Update(nil)
			assert.Empty(t, m.Enemies(entity.ArchetypeCrab))
			assert.Zero(t, m.Remaining())
			require.Len(t, m.Gems(), 1)
			assert.Equal(t, crab.Hitbox.Bottom(), m.Gems()[0].Hitbox.Bottom())
			assert.Equal(t, tt.pickups, len(lvl.Bananas)+len(lvl.Coconuts))

			events := m.DrainEvents()
			require.Len(t, events, 1)
			defeated, ok := events[0].(EnemyDefeated)
			require.True(t, ok)
			assert.Equal(t, crab.ID, defeated.ID)
			assert.Empty(t, m.DrainEvents(), "drain empties the queue")
		})
	}
}

func TestEnemyManager_GemPickup(t *testing.T) {
	cfg := config.Default()
	m, _ := newTestManager(t, cfg, 1, arena("#........#"))
	m.gems = append(m.gems, entity.NewGem(99, 60, 79, 10, 10, 3))

	player := newTestPlayer(cfg, 100)
	m.Update(player)
	assert.Len(t, m.Gems(), 1, "out of reach")

	player.Hitbox.X = 55
	m.Update(player)
	assert.Empty(t, m.Gems())
	assert.Equal(t, 3, player.Gems)
	assert.Contains(t, m.DrainEvents(), Event(GemCollected{ID: 99, Value: 3}))
}

func TestEnemyManager_ResetAll(t *testing.T) {
	cfg := config.Default()
	m, _ := newTestManager(t, cfg, 1, arena("#..C..C..#"))
	first := m.Enemies(entity.ArchetypeCrab)[0].ID

	for _, e := range m.AllEnemies() {
		e.TakeDamage(e.Health.Max)
	}
	m.SpawnProjectile(entity.PlayerID, 40, 40, entity.FacingRight)
	for i := 0; i < 100; i++ {
		m.Update(nil)
	}
	require.Empty(t, m.AllEnemies())
	require.NotEmpty(t, m.Gems())

	m.ResetAll()
	assert.Len(t, m.AllEnemies(), 2)
	assert.Empty(t, m.Gems())
	assert.Empty(t, m.Projectiles())
	assert.Empty(t, m.DrainEvents())
	assert.Equal(t, first, m.Enemies(entity.ArchetypeCrab)[0].ID, "IDs restart per load")
}

func TestEnemyManager_SpawnWithoutTuningIsSkipped(t *testing.T) {
	cfg := config.Default()
	delete(cfg.Enemies, "boar")
	m, _ := newTestManager(t, cfg, 1, arena("#..B..C..#"))

	assert.Empty(t, m.Enemies(entity.ArchetypeBoar))
	assert.Len(t, m.Enemies(entity.ArchetypeCrab), 1)
}

func TestEnemyManager_Logging(t *testing.T) {
	cfg := config.Default()
	lvl := &entity.Level{Grid: gridFromRows(arena("#..C..#")...)}
	m := NewEnemyManager(cfg, testRNG(), nil, zaptest.NewLogger(t))
	m.LoadFromLevel(lvl, 1)
	m.Update(nil)
	assert.Len(t, m.AllEnemies(), 1)
}

func TestEnemyManager_SetConfigKeepsMissingTuning(t *testing.T) {
	cfg := config.Default()
	core, logs := observer.New(zapcore.WarnLevel)
	lvl := &entity.Level{ID: 1, Grid: gridFromRows(arena("#..C....G......#")...)}
	m := NewEnemyManager(cfg, testRNG(), nil, zap.New(core))
	m.LoadFromLevel(lvl, 1)
	crab := onlyCrab(t, m)
	gorilla := onlyBoss(t, m)

	reloaded := config.Default()
	delete(reloaded.Enemies, "crab")
	delete(reloaded.Bosses, "gorilla")
	m.SetConfig(reloaded)

	assert.NotContains(t, reloaded.Enemies, "crab", "caller's config is untouched")
	assert.Equal(t, 2, logs.FilterMessage("config has no tuning for archetype, keeping previous").Len())

	require.True(t, crab.TakeDamage(crab.Health.Max))
	require.True(t, gorilla.TakeDamage(gorilla.Health.Max))
	ticks := max(cfg.Enemies["crab"].DyingTicks, cfg.Bosses["gorilla"].DyingTicks)
	for i := 0; i < ticks; i++ {
		m.Update(nil)
	}
	assert.Empty(t, m.AllEnemies())
	assert.Empty(t, m.Bosses())
	assert.Zero(t, m.Remaining())
}

func TestCompact(t *testing.T) {
	list := []int{1, 2, 3, 4, 5, 6}
	out := compact(list, func(v int) bool { return v%2 == 0 })

	assert.Equal(t, []int{2, 4, 6}, out)
	assert.Equal(t, []int{2, 4, 6, 0, 0, 0}, list, "tail is cleared")
	assert.Empty(t, compact([]int(nil), func(int) bool { return true }))
}

func BenchmarkEnemyManager_Update(b *testing.B) {
	cfg := config.Default()
	row := "#" + strings.Repeat("..C..B..M.", 20) + "P....G....#"
	m, _ := newTestManager(b, cfg, 1, arena(row))
	player := newTestPlayer(cfg, 100)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		player.HitStun = 0
		m.Update(player)
		if m.Remaining() == 0 {
			m.ResetAll()
		}
	}
}
