package entity

import "math"

// Gem is a currency drop left by a defeated enemy. It floats and pulses
// for presentation and is consumed when the player touches it.
type Gem struct {
	ID          EntityID
	Hitbox      Hitbox
	Value       int
	Active      bool
	FloatPhase  float64
	BreathScale float64
}

// NewGem creates an active gem whose hitbox is centered on (cx, bottom)
func NewGem(id EntityID, cx, bottom, w, h float64, value int) *Gem {
	return &Gem{
		ID:          id,
		Hitbox:      Hitbox{X: cx - w/2, Y: bottom - h, Width: w, Height: h},
		Value:       value,
		Active:      true,
		BreathScale: 1,
	}
}

// Update advances the float/breath animation by one tick
func (g *Gem) Update(floatSpeed, breathAmplitude float64) {
	if !g.Active {
		return
	}
	g.FloatPhase += floatSpeed
	if g.FloatPhase >= 2*math.Pi {
		g.FloatPhase -= 2 * math.Pi
	}
	g.BreathScale = 1 + math.Sin(g.FloatPhase*2)*breathAmplitude
}

// FloatOffset returns the vertical draw offset for the current phase
func (g *Gem) FloatOffset(amplitude float64) float64 {
	return math.Sin(g.FloatPhase) * amplitude
}

// Collect consumes the gem, returning its value (0 if already taken)
func (g *Gem) Collect() int {
	if !g.Active {
		return 0
	}
	g.Active = false
	return g.Value
}
