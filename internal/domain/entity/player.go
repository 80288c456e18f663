package entity

// PlayerAttack identifies which attack the player is performing
type PlayerAttack int

const (
	PlayerAttackNone PlayerAttack = iota
	PlayerAttackPunch
)

// PlayerStats holds the reference player's tuning, copied from config
type PlayerStats struct {
	MaxHealth      int
	HitStunTicks   int
	KnockbackTicks int

	AttackDamage      int
	AttackTicks       int // total swing duration
	AttackActiveStart int // first tick with a hitbox
	AttackActiveEnd   int // last tick with a hitbox
	AttackReachW      float64
	AttackReachH      float64

	ThrowCooldownTicks int
}

// Player is a minimal reference target for the enemy engine.
// Its hitbox is the authoritative position, like every other actor.
type Player struct {
	Hitbox Hitbox
	Health Health
	Facing Facing
	Stats  PlayerStats

	// Movement
	MoveX    float64 // input-driven horizontal speed for this tick
	InAir    bool
	AirSpeed float64

	// Damage response
	HitStun       int
	KnockbackX    float64
	KnockbackLeft int

	// Attack
	Attack        PlayerAttack
	AttackTimer   int
	AttackSeq     uint32 // increments per attack instance
	ThrowCooldown int

	Gems int
}

// NewPlayer creates a player with its hitbox at (x, y)
func NewPlayer(x, y, w, h float64, stats PlayerStats) *Player {
	return &Player{
		Hitbox: Hitbox{X: x, Y: y, Width: w, Height: h},
		Health: NewHealth(stats.MaxHealth),
		Facing: FacingRight,
		Stats:  stats,
	}
}

// Box returns the player's hitbox
func (p *Player) Box() Hitbox {
	return p.Hitbox
}

// IsDamaged returns true during hit stun, when further hits are ignored
func (p *Player) IsDamaged() bool {
	return p.HitStun > 0
}

// IsDead returns true once health reaches zero
func (p *Player) IsDead() bool {
	return p.Health.Current <= 0
}

// TakeDamage applies damage and starts hit stun. Returns true if still alive.
func (p *Player) TakeDamage(amount int) bool {
	if amount > 0 {
		p.Health.Apply(amount)
		p.HitStun = p.Stats.HitStunTicks
		p.Attack = PlayerAttackNone
	}
	return !p.IsDead()
}

// ApplyKnockback starts a knockback impulse. A negative dy lifts the player
// into the air; the horizontal part decays linearly over KnockbackTicks.
func (p *Player) ApplyKnockback(dx, dy float64) {
	p.KnockbackX = dx
	p.KnockbackLeft = p.Stats.KnockbackTicks
	if dy < 0 {
		p.InAir = true
		p.AirSpeed = dy
	}
}

// KnockbackVelocity returns the horizontal knockback speed for this tick
func (p *Player) KnockbackVelocity() float64 {
	if p.KnockbackLeft <= 0 || p.Stats.KnockbackTicks <= 0 {
		return 0
	}
	return p.KnockbackX * float64(p.KnockbackLeft) / float64(p.Stats.KnockbackTicks)
}

// StartAttack begins a punch if idle and not stunned
func (p *Player) StartAttack() bool {
	if p.Attack != PlayerAttackNone || p.IsDamaged() {
		return false
	}
	p.Attack = PlayerAttackPunch
	p.AttackTimer = 0
	p.AttackSeq++
	return true
}

// CurrentAttack returns the attack in progress, its instance number, and its
// hitbox. The hitbox is nil outside the active ticks.
func (p *Player) CurrentAttack() (PlayerAttack, uint32, *Hitbox) {
	if p.Attack == PlayerAttackNone {
		return PlayerAttackNone, p.AttackSeq, nil
	}
	if p.AttackTimer < p.Stats.AttackActiveStart || p.AttackTimer > p.Stats.AttackActiveEnd {
		return p.Attack, p.AttackSeq, nil
	}
	box := Hitbox{
		X:      p.Hitbox.Right(),
		Y:      p.Hitbox.CenterY() - p.Stats.AttackReachH/2,
		Width:  p.Stats.AttackReachW,
		Height: p.Stats.AttackReachH,
	}
	if p.Facing == FacingLeft {
		box.X = p.Hitbox.X - p.Stats.AttackReachW
	}
	return p.Attack, p.AttackSeq, &box
}

// AttackDamage returns the damage of the player's attacks
func (p *Player) AttackDamage() int {
	return p.Stats.AttackDamage
}

// AdvanceTimers ticks stun, knockback, attack and throw timers by one
func (p *Player) AdvanceTimers() {
	if p.HitStun > 0 {
		p.HitStun--
	}
	if p.KnockbackLeft > 0 {
		p.KnockbackLeft--
	}
	if p.ThrowCooldown > 0 {
		p.ThrowCooldown--
	}
	if p.Attack != PlayerAttackNone {
		p.AttackTimer++
		if p.AttackTimer >= p.Stats.AttackTicks {
			p.Attack = PlayerAttackNone
			p.AttackTimer = 0
		}
	}
}

// AddGems credits collected gems
func (p *Player) AddGems(n int) {
	p.Gems += n
}
