package system

import (
	"math"
	"math/rand"

	"go.uber.org/zap"

	"github.com/younwookim/brawl/internal/domain/entity"
	"github.com/younwookim/brawl/internal/infrastructure/config"
)

// LevelProvider supplies the tile grid and receives cosmetic drops
type LevelProvider interface {
	TileGrid() *entity.TileGrid
	AddBanana(x, y float64)
	AddCoconut(x, y float64)
}

// Target is the player as seen by the engine
type Target interface {
	Box() entity.Hitbox
	IsDamaged() bool
	TakeDamage(amount int) bool
	ApplyKnockback(dx, dy float64)
}

// Attacker is the player side's attack state
type Attacker interface {
	CurrentAttack() (entity.PlayerAttack, uint32, *entity.Hitbox)
	AttackDamage() int
}

// Progression receives abilities granted by boss defeats
type Progression interface {
	Unlock(ab entity.Ability) bool
}

// GemCollector is implemented by targets that keep a gem count
type GemCollector interface {
	AddGems(n int)
}

// EnemyManager owns every enemy, boss, projectile and gem of the loaded
// level and steps them once per frame.
type EnemyManager struct {
	cfg      *config.EngineConfig
	rng      *rand.Rand
	progress Progression
	log      *zap.Logger

	level   LevelProvider
	grid    *entity.TileGrid
	levelID int
	policy  string

	enemies     map[entity.Archetype][]*entity.Enemy
	bosses      []*entity.Boss
	projectiles []*entity.Projectile
	gems        []*entity.Gem

	spawnPoints []SpawnPoint
	pending     []SpawnPoint

	nextID entity.EntityID
	events []Event
}

// NewEnemyManager creates an empty manager. rng drives every random
// decision so a fixed seed reproduces a run.
func NewEnemyManager(cfg *config.EngineConfig, rng *rand.Rand, progress Progression, log *zap.Logger) *EnemyManager {
	if log == nil {
		log = zap.NewNop()
	}
	return &EnemyManager{
		cfg:         cfg,
		rng:         rng,
		progress:    progress,
		log:         log,
		enemies:     make(map[entity.Archetype][]*entity.Enemy),
		projectiles: make([]*entity.Projectile, 0, 16),
		gems:        make([]*entity.Gem, 0, 16),
		nextID:      1,
	}
}

// SetConfig swaps the tuning, used by hot reload. Live actors keep their
// health; behavior picks up the new values on the next tick.
func (m *EnemyManager) SetConfig(cfg *config.EngineConfig) {
	next := *cfg
	next.Enemies = keepTuning(cfg.Enemies, m.cfg.Enemies, entity.PatrolArchetypes(), m.log)
	next.Bosses = keepTuning(cfg.Bosses, m.cfg.Bosses, entity.BossArchetypes(), m.log)
	m.cfg = &next
	m.policy = next.Spawn.Policy(m.levelID)
}

// keepTuning carries over the previous entry for every archetype the new
// config drops, so actors already in play keep stepping
func keepTuning[T any](next, prev map[string]T, kinds []entity.Archetype, log *zap.Logger) map[string]T {
	out := make(map[string]T, len(next))
	for k, v := range next {
		out[k] = v
	}
	for _, a := range kinds {
		name := a.String()
		if _, ok := out[name]; ok {
			continue
		}
		if v, ok := prev[name]; ok {
			out[name] = v
			log.Warn("config has no tuning for archetype, keeping previous", zap.String("archetype", name))
		}
	}
	return out
}

// LoadFromLevel extracts spawn points from the level and rebuilds every collection
func (m *EnemyManager) LoadFromLevel(level LevelProvider, levelID int) {
	m.level = level
	m.grid = level.TileGrid()
	m.levelID = levelID
	m.policy = m.cfg.Spawn.Policy(levelID)
	m.spawnPoints = ExtractSpawnPoints(m.grid, m.log)

	m.ResetAll()

	m.log.Info("level loaded",
		zap.Int("level", levelID),
		zap.String("policy", m.policy),
		zap.Int("spawnPoints", len(m.spawnPoints)),
	)
}

// ResetAll drops every actor and respawns from the level's spawn points
func (m *EnemyManager) ResetAll() {
	for a := range m.enemies {
		delete(m.enemies, a)
	}
	m.bosses = nil
	m.projectiles = m.projectiles[:0]
	m.gems = m.gems[:0]
	m.pending = m.pending[:0]
	m.events = nil
	m.nextID = 1

	if m.policy == config.SpawnProximity {
		m.pending = append(m.pending, m.spawnPoints...)
		return
	}
	for _, p := range m.spawnPoints {
		m.Spawn(p)
	}
}

// Spawn materializes one spawn point. The box sits on the bottom of the
// sentinel tile, one unit above the floor below it.
func (m *EnemyManager) Spawn(p SpawnPoint) bool {
	if !m.grid.Valid() {
		return false
	}
	ts := float64(m.grid.TileSize)

	if p.Archetype.IsBoss() {
		tun, ok := m.cfg.Bosses[p.Archetype.String()]
		if !ok {
			m.log.Warn("no tuning for boss, spawn skipped", zap.Stringer("archetype", p.Archetype))
			return false
		}
		hb := spawnBox(p, ts, tun.Hitbox)
		boss := entity.NewBoss(m.allocID(), p.Archetype, hb, tun.MaxHealth, tun.Damage)
		m.bosses = append(m.bosses, boss)
		m.log.Debug("boss spawned", zap.Stringer("archetype", p.Archetype), zap.Uint32("id", uint32(boss.ID)))
		return true
	}

	tun, ok := m.cfg.Enemies[p.Archetype.String()]
	if !ok {
		m.log.Warn("no tuning for enemy, spawn skipped", zap.Stringer("archetype", p.Archetype))
		return false
	}
	hb := spawnBox(p, ts, tun.Hitbox)
	enemy := entity.NewEnemy(m.allocID(), p.Archetype, hb, tun.MaxHealth, tun.Damage)
	m.enemies[p.Archetype] = append(m.enemies[p.Archetype], enemy)
	m.log.Debug("enemy spawned", zap.Stringer("archetype", p.Archetype), zap.Uint32("id", uint32(enemy.ID)))
	return true
}

func spawnBox(p SpawnPoint, ts float64, size config.HitboxConfig) entity.Hitbox {
	return entity.Hitbox{
		X:      p.X,
		Y:      p.Y + ts - size.Height - 1,
		Width:  size.Width,
		Height: size.Height,
	}
}

// SpawnProjectile creates a projectile centered on (cx, cy)
func (m *EnemyManager) SpawnProjectile(owner entity.EntityID, cx, cy float64, dir entity.Facing) *entity.Projectile {
	pc := m.cfg.Projectile
	hb := entity.Hitbox{
		X:      cx - pc.Hitbox.Width/2,
		Y:      cy - pc.Hitbox.Height/2,
		Width:  pc.Hitbox.Width,
		Height: pc.Hitbox.Height,
	}
	p := entity.NewProjectile(m.allocID(), owner, hb, dir, pc.Speed, pc.Damage)
	m.projectiles = append(m.projectiles, p)
	m.emit(ProjectileThrown{ID: p.ID, Owner: owner})
	return p
}

// Update advances the whole level by one tick. target may be nil.
func (m *EnemyManager) Update(target Target) {
	if m.level == nil {
		return
	}

	m.spawnNearby(target)

	for _, a := range entity.PatrolArchetypes() {
		list := m.enemies[a]
		for _, e := range list {
			m.updatePatrol(e, target)
			m.checkContact(&e.Actor, e.IsAlive(), target)
		}
		m.enemies[a] = compact(list, func(e *entity.Enemy) bool {
			if e.Active {
				return true
			}
			m.dropLoot(&e.Actor)
			return false
		})
	}

	for _, b := range m.bosses {
		m.updateBoss(b, target)
		m.checkContact(&b.Actor, b.IsAlive(), target)
	}
	m.bosses = compact(m.bosses, func(b *entity.Boss) bool {
		if b.Active {
			return true
		}
		m.unlockFor(b)
		m.dropLoot(&b.Actor)
		return false
	})

	for _, p := range m.projectiles {
		if !p.Active {
			continue
		}
		p.Update()
		m.resolveProjectile(p, target)
	}
	m.projectiles = compact(m.projectiles, func(p *entity.Projectile) bool { return p.Active })

	m.updateGems(target)
}

// spawnNearby materializes pending points close to the target
func (m *EnemyManager) spawnNearby(target Target) {
	if len(m.pending) == 0 || target == nil {
		return
	}
	tb := target.Box()
	half := float64(m.grid.TileSize) / 2
	radius := m.cfg.Spawn.ProximityRadius

	m.pending = compact(m.pending, func(p SpawnPoint) bool {
		if math.Hypot(p.X+half-tb.CenterX(), p.Y+half-tb.CenterY()) > radius {
			return true
		}
		m.Spawn(p)
		return false
	})
}

func (m *EnemyManager) updateGems(target Target) {
	gc := m.cfg.Gem
	for _, g := range m.gems {
		g.Update(gc.FloatSpeed, gc.BreathAmplitude)
		if target == nil || !g.Active || !g.Hitbox.Overlaps(target.Box()) {
			continue
		}
		value := g.Collect()
		if c, ok := target.(GemCollector); ok {
			c.AddGems(value)
		}
		m.emit(GemCollected{ID: g.ID, Value: value})
	}
	m.gems = compact(m.gems, func(g *entity.Gem) bool { return g.Active })
}

// dropLoot leaves a gem where the actor was and maybe a cosmetic pickup
func (m *EnemyManager) dropLoot(a *entity.Actor) {
	cx, bottom := a.Hitbox.CenterX(), a.Hitbox.Bottom()
	gc := m.cfg.Gem
	m.gems = append(m.gems, entity.NewGem(m.allocID(), cx, bottom, gc.Hitbox.Width, gc.Hitbox.Height, gc.Value))

	if m.rng.Float64() < m.cfg.Drops.PickupChance {
		if m.rng.Intn(2) == 0 {
			m.level.AddBanana(cx, bottom)
		} else {
			m.level.AddCoconut(cx, bottom)
		}
	}

	m.emit(EnemyDefeated{ID: a.ID, Archetype: a.Archetype, X: cx, Y: bottom})
	m.log.Debug("actor removed", zap.Stringer("archetype", a.Archetype), zap.Uint32("id", uint32(a.ID)))
}

// unlockFor grants the boss's ability before it is removed
func (m *EnemyManager) unlockFor(b *entity.Boss) {
	m.emit(BossDefeated{ID: b.ID, Archetype: b.Archetype})

	tun, ok := m.cfg.Bosses[b.Archetype.String()]
	if !ok || m.progress == nil {
		return
	}
	ab := entity.ParseAbility(tun.Unlocks)
	if ab == entity.AbilityNone {
		return
	}
	if m.progress.Unlock(ab) {
		m.emit(AbilityUnlocked{Ability: ab})
		m.log.Info("ability unlocked", zap.Stringer("ability", ab), zap.Stringer("boss", b.Archetype))
	}
}

func (m *EnemyManager) allocID() entity.EntityID {
	id := m.nextID
	m.nextID++
	return id
}

func (m *EnemyManager) emit(e Event) {
	m.events = append(m.events, e)
}

// DrainEvents returns the events since the last call
func (m *EnemyManager) DrainEvents() []Event {
	events := m.events
	m.events = nil
	return events
}

// Enemies returns the live collection of one patrol archetype
func (m *EnemyManager) Enemies(a entity.Archetype) []*entity.Enemy {
	return m.enemies[a]
}

// AllEnemies returns every patrol enemy in update order
func (m *EnemyManager) AllEnemies() []*entity.Enemy {
	var all []*entity.Enemy
	for _, a := range entity.PatrolArchetypes() {
		all = append(all, m.enemies[a]...)
	}
	return all
}

// Bosses returns the live bosses
func (m *EnemyManager) Bosses() []*entity.Boss {
	return m.bosses
}

// Projectiles returns the live projectiles
func (m *EnemyManager) Projectiles() []*entity.Projectile {
	return m.projectiles
}

// Gems returns the uncollected gems
func (m *EnemyManager) Gems() []*entity.Gem {
	return m.gems
}

// Pending returns spawn points not yet materialized
func (m *EnemyManager) Pending() []SpawnPoint {
	return m.pending
}

// Remaining counts actors not yet removed, dying ones included, plus
// pending spawns. It reaches zero only after every defeat has dropped its
// loot and applied its unlock.
func (m *EnemyManager) Remaining() int {
	n := len(m.pending)
	for _, list := range m.enemies {
		for _, e := range list {
			if e.Active {
				n++
			}
		}
	}
	for _, b := range m.bosses {
		if b.Active {
			n++
		}
	}
	return n
}

// Grid returns the loaded level's grid
func (m *EnemyManager) Grid() *entity.TileGrid {
	return m.grid
}

// compact keeps the elements for which keep returns true, in order, reusing
// the backing array
func compact[T any](list []T, keep func(T) bool) []T {
	n := 0
	for _, v := range list {
		if keep(v) {
			list[n] = v
			n++
		}
	}
	var zero T
	for i := n; i < len(list); i++ {
		list[i] = zero
	}
	return list[:n]
}
