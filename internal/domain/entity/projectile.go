package entity

// Projectile is a short-lived box travelling in a fixed direction at a fixed speed.
// Bounds, geometry and target tests are done by the owner of the collection.
type Projectile struct {
	ID        EntityID
	Owner     EntityID
	Hitbox    Hitbox
	Direction Facing
	Speed     float64
	Damage    int
	Active    bool
}

// NewProjectile creates an active projectile
func NewProjectile(id, owner EntityID, hb Hitbox, dir Facing, speed float64, damage int) *Projectile {
	return &Projectile{
		ID:        id,
		Owner:     owner,
		Hitbox:    hb,
		Direction: dir,
		Speed:     speed,
		Damage:    damage,
		Active:    true,
	}
}

// Update moves the projectile one tick
func (p *Projectile) Update() {
	if !p.Active {
		return
	}
	p.Hitbox.X += p.Direction.Sign() * p.Speed
}

// FromPlayer reports whether the player threw it
func (p *Projectile) FromPlayer() bool {
	return p.Owner == PlayerID
}

// Deactivate marks the projectile as spent
func (p *Projectile) Deactivate() {
	p.Active = false
}
