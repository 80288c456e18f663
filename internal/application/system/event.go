package system

import "github.com/younwookim/brawl/internal/domain/entity"

// Event is something the engine reports to the host for feedback
// (hitstop, shake, counters). Drained once per frame.
type Event interface {
	isEvent()
}

// PlayerHit is emitted when contact, a boss attack or a projectile damages the target
type PlayerHit struct {
	Source entity.EntityID
	Damage int
	Fatal  bool
}

func (PlayerHit) isEvent() {}

// EnemyStruck is emitted when the player side damages an enemy or boss
type EnemyStruck struct {
	ID        entity.EntityID
	Archetype entity.Archetype
	Damage    int
	Killed    bool
}

func (EnemyStruck) isEvent() {}

// EnemyStrike is a melee patrol enemy's hit-check. It carries no damage.
type EnemyStrike struct {
	ID        entity.EntityID
	Archetype entity.Archetype
	Landed    bool
}

func (EnemyStrike) isEvent() {}

// ProjectileThrown is emitted for every projectile created
type ProjectileThrown struct {
	ID    entity.EntityID
	Owner entity.EntityID
}

func (ProjectileThrown) isEvent() {}

// EnemyDefeated is emitted when an actor is removed and its loot spawned
type EnemyDefeated struct {
	ID        entity.EntityID
	Archetype entity.Archetype
	X, Y      float64
}

func (EnemyDefeated) isEvent() {}

// BossDefeated is emitted before a boss is removed
type BossDefeated struct {
	ID        entity.EntityID
	Archetype entity.Archetype
}

func (BossDefeated) isEvent() {}

// AbilityUnlocked is emitted when a boss defeat grants a new ability
type AbilityUnlocked struct {
	Ability entity.Ability
}

func (AbilityUnlocked) isEvent() {}

// GemCollected is emitted when the target picks up a gem
type GemCollected struct {
	ID    entity.EntityID
	Value int
}

func (GemCollected) isEvent() {}
