package entity

// Health tracks current and maximum hit points
type Health struct {
	Current int
	Max     int
}

// NewHealth creates full health
func NewHealth(max int) Health {
	return Health{Current: max, Max: max}
}

// Apply subtracts damage, clamping at zero. Returns true if health hit zero.
func (h *Health) Apply(amount int) bool {
	h.Current -= amount
	if h.Current <= 0 {
		h.Current = 0
		return true
	}
	return false
}

// Ratio returns current/max in [0, 1]
func (h Health) Ratio() float64 {
	if h.Max <= 0 {
		return 0
	}
	return float64(h.Current) / float64(h.Max)
}

// Actor is the record shared by every enemy and boss
type Actor struct {
	ID        EntityID
	Archetype Archetype
	Hitbox    Hitbox
	Health    Health
	Damage    int // contact damage
	Facing    Facing
	Active    bool

	// TouchCooldown gates contact damage so overlap hurts at a fixed rate
	TouchCooldown int
	// LastHitBy is the player attack instance that last damaged this actor
	LastHitBy uint32
}

// Box returns the current hitbox
func (a *Actor) Box() Hitbox {
	return a.Hitbox
}

// Turn reverses the facing direction
func (a *Actor) Turn() {
	a.Facing = a.Facing.Reverse()
}

// Damageable is anything the player side or a projectile can hurt
type Damageable interface {
	Box() Hitbox
	IsAlive() bool
	TakeDamage(amount int) bool
	Base() *Actor
}
