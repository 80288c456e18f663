package entity

// PickupKind is a cosmetic collectible placed in the level
type PickupKind int

const (
	PickupBanana PickupKind = iota
	PickupCoconut
)

// Pickup is a collectible owned by the level, not by the enemy manager
type Pickup struct {
	Kind PickupKind
	X, Y float64
}

// Level is the reference level provider: a tile grid plus the level's own
// pickup lists, which the engine appends drops to.
type Level struct {
	ID     int
	Name   string
	Grid   *TileGrid
	SpawnX float64
	SpawnY float64

	Bananas  []Pickup
	Coconuts []Pickup
}

// TileGrid returns the level's grid
func (l *Level) TileGrid() *TileGrid {
	return l.Grid
}

// AddBanana appends a banana pickup
func (l *Level) AddBanana(x, y float64) {
	l.Bananas = append(l.Bananas, Pickup{Kind: PickupBanana, X: x, Y: y})
}

// AddCoconut appends a coconut pickup
func (l *Level) AddCoconut(x, y float64) {
	l.Coconuts = append(l.Coconuts, Pickup{Kind: PickupCoconut, X: x, Y: y})
}

// ClearPickups drops every appended pickup, used on retry
func (l *Level) ClearPickups() {
	l.Bananas = l.Bananas[:0]
	l.Coconuts = l.Coconuts[:0]
}

// Ability is a player capability unlocked by game progression
type Ability int

const (
	AbilityNone Ability = iota
	AbilityThrow
	AbilitySlide
)

// String returns the config key of the ability
func (a Ability) String() string {
	switch a {
	case AbilityThrow:
		return "throw"
	case AbilitySlide:
		return "slide"
	default:
		return "none"
	}
}

// ParseAbility looks up an ability by config key; unknown keys are AbilityNone
func ParseAbility(name string) Ability {
	switch name {
	case "throw":
		return AbilityThrow
	case "slide":
		return AbilitySlide
	default:
		return AbilityNone
	}
}

// Abilities is the set of unlocked abilities
type Abilities uint32

// Unlock adds an ability. Returns true if it was not unlocked before.
func (a *Abilities) Unlock(ab Ability) bool {
	if ab == AbilityNone || a.Has(ab) {
		return false
	}
	*a |= 1 << uint(ab)
	return true
}

// Has reports whether an ability is unlocked
func (a Abilities) Has(ab Ability) bool {
	return ab != AbilityNone && a&(1<<uint(ab)) != 0
}
