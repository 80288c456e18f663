package entity

// BossAction is the current action of a boss
type BossAction int

const (
	BossIdle BossAction = iota
	BossDetected
	BossChasing
	BossWalking
	BossPreparing
	BossAttacking
	BossRepositionWalk
	BossRepositionSlide
	BossHurt
	BossDying
	bossActionCount
)

var bossActionNames = [bossActionCount]string{
	BossIdle:            "Idle",
	BossDetected:        "Detected",
	BossChasing:         "Chasing",
	BossWalking:         "Walking",
	BossPreparing:       "Preparing",
	BossAttacking:       "Attacking",
	BossRepositionWalk:  "RepositionWalk",
	BossRepositionSlide: "RepositionSlide",
	BossHurt:            "Hurt",
	BossDying:           "Dying",
}

// String returns the action name
func (a BossAction) String() string {
	if !a.Valid() {
		return "Invalid"
	}
	return bossActionNames[a]
}

// Valid reports whether the action is one the machine knows
func (a BossAction) Valid() bool {
	return a >= BossIdle && a < bossActionCount
}

// AttackVariant selects which attack animation a boss plays
type AttackVariant int

const (
	AttackSwing AttackVariant = iota
	AttackKick
	AttackDash
)

// String returns the config key of the variant
func (v AttackVariant) String() string {
	switch v {
	case AttackSwing:
		return "swing"
	case AttackKick:
		return "kick"
	case AttackDash:
		return "dash"
	default:
		return "unknown"
	}
}

// ParseAttackVariant looks up a variant by config key
func ParseAttackVariant(name string) (AttackVariant, bool) {
	switch name {
	case "swing":
		return AttackSwing, true
	case "kick":
		return AttackKick, true
	case "dash":
		return AttackDash, true
	}
	return 0, false
}

// Boss is a multi-action actor (panther, gorilla)
type Boss struct {
	Actor

	Action         BossAction
	ActionTimer    int
	ActionCooldown int

	// Attack in progress
	Variant       AttackVariant
	AttackBox     *Hitbox // non-nil only during active frames
	DamageApplied bool

	RepositionTargetX float64 // hitbox center target
}

// NewBoss creates an idle boss facing left
func NewBoss(id EntityID, archetype Archetype, hb Hitbox, maxHealth, damage int) *Boss {
	return &Boss{
		Actor: Actor{
			ID:        id,
			Archetype: archetype,
			Hitbox:    hb,
			Health:    NewHealth(maxHealth),
			Damage:    damage,
			Facing:    FacingLeft,
			Active:    true,
		},
		Action: BossIdle,
	}
}

// SetAction switches action, restarting the action timer and dropping any
// live attack hitbox
func (b *Boss) SetAction(a BossAction) {
	b.Action = a
	b.ActionTimer = 0
	b.AttackBox = nil
}

// BeginAttack starts a new attack instance, re-arming the damage guard
func (b *Boss) BeginAttack(v AttackVariant) {
	b.SetAction(BossAttacking)
	b.Variant = v
	b.DamageApplied = false
}

// IsAlive returns true if the boss can still act and be hurt
func (b *Boss) IsAlive() bool {
	return b.Active && b.Action != BossDying
}

// TakeDamage applies damage from any non-terminal action.
// Returns true only on the call that killed the boss.
func (b *Boss) TakeDamage(amount int) bool {
	if !b.IsAlive() || amount <= 0 {
		return false
	}
	if b.Health.Apply(amount) {
		b.SetAction(BossDying)
		return true
	}
	b.SetAction(BossHurt)
	return false
}

// Base returns the shared actor record
func (b *Boss) Base() *Actor {
	return &b.Actor
}
