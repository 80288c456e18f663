package entity

// Hitbox is the axis-aligned rectangle that is the single source of truth
// for an actor's world position and collidable extent.
type Hitbox struct {
	X, Y          float64
	Width, Height float64
}

// Right returns the right edge
func (h Hitbox) Right() float64 { return h.X + h.Width }

// Bottom returns the bottom edge
func (h Hitbox) Bottom() float64 { return h.Y + h.Height }

// CenterX returns the horizontal center
func (h Hitbox) CenterX() float64 { return h.X + h.Width/2 }

// CenterY returns the vertical center
func (h Hitbox) CenterY() float64 { return h.Y + h.Height/2 }

// Translated returns a copy moved by (dx, dy)
func (h Hitbox) Translated(dx, dy float64) Hitbox {
	h.X += dx
	h.Y += dy
	return h
}

// Overlaps reports whether two boxes share any interior area.
// Boxes that only touch along an edge do not overlap.
func (h Hitbox) Overlaps(o Hitbox) bool {
	return h.X < o.X+o.Width && h.X+h.Width > o.X && h.Y < o.Y+o.Height && h.Y+h.Height > o.Y
}

// Facing is the horizontal direction an actor looks or moves in
type Facing int

const (
	FacingLeft  Facing = -1
	FacingRight Facing = 1
)

// Sign returns -1 or 1
func (f Facing) Sign() float64 {
	if f == FacingLeft {
		return -1
	}
	return 1
}

// Reverse returns the opposite direction
func (f Facing) Reverse() Facing {
	if f == FacingLeft {
		return FacingRight
	}
	return FacingLeft
}

// FacingToward returns the direction of dx; zero keeps current
func FacingToward(dx float64, current Facing) Facing {
	switch {
	case dx > 0:
		return FacingRight
	case dx < 0:
		return FacingLeft
	default:
		return current
	}
}

// DrawSpec describes how a sprite frame sits around a hitbox.
// It is presentation-only and never feeds back into simulation.
type DrawSpec struct {
	OffsetX, OffsetY float64 // hitbox position inside the frame
	Width, Height    float64 // frame size
}

// DrawRect returns the sprite rectangle for a hitbox.
// The horizontal offset is mirrored when facing left.
func (h Hitbox) DrawRect(spec DrawSpec, facing Facing) (x, y, w, ht float64) {
	offsetX := spec.OffsetX
	if facing == FacingLeft {
		offsetX = spec.Width - spec.OffsetX - h.Width
	}
	return h.X - offsetX, h.Y - spec.OffsetY, spec.Width, spec.Height
}
