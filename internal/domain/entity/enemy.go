package entity

// EnemyState is the behavior state of a ground-patrol enemy
type EnemyState int

const (
	EnemyIdle EnemyState = iota
	EnemyRunning
	EnemyAttack
	EnemyHurt
	EnemyDying
	enemyStateCount
)

// String returns the state name
func (s EnemyState) String() string {
	switch s {
	case EnemyIdle:
		return "Idle"
	case EnemyRunning:
		return "Running"
	case EnemyAttack:
		return "Attack"
	case EnemyHurt:
		return "Hurt"
	case EnemyDying:
		return "Dying"
	default:
		return "Invalid"
	}
}

// Valid reports whether the state is one the machine knows
func (s EnemyState) Valid() bool {
	return s >= EnemyIdle && s < enemyStateCount
}

// Corridor is the discovered horizontal patrol range of an enemy's hitbox X
type Corridor struct {
	Left, Right float64
	Known       bool
}

// Width returns Right - Left
func (c Corridor) Width() float64 {
	return c.Right - c.Left
}

// Enemy is a ground-patrol actor (crab, boar, monkey)
type Enemy struct {
	Actor

	State      EnemyState
	StateTimer int

	// Attack
	AttackCooldown int
	AttackChecked  bool

	// Gravity
	InAir    bool
	AirSpeed float64

	Corridor Corridor
}

// NewEnemy creates an enemy with its hitbox at (x, y), facing left
func NewEnemy(id EntityID, archetype Archetype, hb Hitbox, maxHealth, damage int) *Enemy {
	return &Enemy{
		Actor: Actor{
			ID:        id,
			Archetype: archetype,
			Hitbox:    hb,
			Health:    NewHealth(maxHealth),
			Damage:    damage,
			Facing:    FacingLeft,
			Active:    true,
		},
		State: EnemyIdle,
	}
}

// SetState switches state and restarts the state timer
func (e *Enemy) SetState(s EnemyState) {
	e.State = s
	e.StateTimer = 0
	e.AttackChecked = false
}

// IsAlive returns true if the enemy can still act and be hurt
func (e *Enemy) IsAlive() bool {
	return e.Active && e.State != EnemyDying
}

// TakeDamage applies damage. Dying or inactive enemies ignore it.
// Returns true only on the call that killed the enemy.
func (e *Enemy) TakeDamage(amount int) bool {
	if !e.IsAlive() || amount <= 0 {
		return false
	}
	if e.Health.Apply(amount) {
		e.SetState(EnemyDying)
		return true
	}
	e.SetState(EnemyHurt)
	return false
}

// Base returns the shared actor record
func (e *Enemy) Base() *Actor {
	return &e.Actor
}
