package entity

// Archetype tags an actor with the behavior it runs
type Archetype int

const (
	ArchetypeCrab Archetype = iota
	ArchetypeBoar
	ArchetypeMonkey
	ArchetypePanther
	ArchetypeGorilla
	archetypeCount
)

var archetypeNames = [archetypeCount]string{
	ArchetypeCrab:    "crab",
	ArchetypeBoar:    "boar",
	ArchetypeMonkey:  "monkey",
	ArchetypePanther: "panther",
	ArchetypeGorilla: "gorilla",
}

// String returns the config key of the archetype
func (a Archetype) String() string {
	if a < 0 || a >= archetypeCount {
		return "unknown"
	}
	return archetypeNames[a]
}

// IsBoss reports whether the archetype runs the boss state machine
func (a Archetype) IsBoss() bool {
	return a == ArchetypePanther || a == ArchetypeGorilla
}

// ParseArchetype looks up an archetype by its config key
func ParseArchetype(name string) (Archetype, bool) {
	for i, n := range archetypeNames {
		if n == name {
			return Archetype(i), true
		}
	}
	return 0, false
}

// PatrolArchetypes lists the ground-patrol archetypes in update order
func PatrolArchetypes() []Archetype {
	return []Archetype{ArchetypeCrab, ArchetypeBoar, ArchetypeMonkey}
}

// BossArchetypes lists the boss archetypes in update order
func BossArchetypes() []Archetype {
	return []Archetype{ArchetypePanther, ArchetypeGorilla}
}
