package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testPlayerStats() PlayerStats {
	return PlayerStats{
		MaxHealth:          100,
		HitStunTicks:       30,
		KnockbackTicks:     10,
		AttackDamage:       10,
		AttackTicks:        20,
		AttackActiveStart:  5,
		AttackActiveEnd:    10,
		AttackReachW:       16,
		AttackReachH:       12,
		ThrowCooldownTicks: 40,
	}
}

func TestPlayer_TakeDamage(t *testing.T) {
	p := NewPlayer(0, 0, 12, 20, testPlayerStats())

	alive := p.TakeDamage(30)
	assert.True(t, alive)
	assert.Equal(t, 70, p.Health.Current)
	assert.True(t, p.IsDamaged())
	assert.Equal(t, 30, p.HitStun)

	alive = p.TakeDamage(500)
	assert.False(t, alive)
	assert.Equal(t, 0, p.Health.Current)
	assert.True(t, p.IsDead())
}

func TestPlayer_HitStunExpires(t *testing.T) {
	p := NewPlayer(0, 0, 12, 20, testPlayerStats())
	p.TakeDamage(1)

	for i := 0; i < 30; i++ {
		assert.True(t, p.IsDamaged())
		p.AdvanceTimers()
	}
	assert.False(t, p.IsDamaged())
}

func TestPlayer_KnockbackDecaysLinearly(t *testing.T) {
	p := NewPlayer(0, 0, 12, 20, testPlayerStats())
	p.ApplyKnockback(-4, -3)

	assert.True(t, p.InAir, "upward impulse lifts the player")
	assert.Equal(t, -3.0, p.AirSpeed)
	assert.Equal(t, -4.0, p.KnockbackVelocity())

	p.AdvanceTimers()
	assert.InDelta(t, -3.6, p.KnockbackVelocity(), 1e-9)

	for i := 0; i < 9; i++ {
		p.AdvanceTimers()
	}
	assert.Equal(t, 0.0, p.KnockbackVelocity())
}

func TestPlayer_AttackWindow(t *testing.T) {
	p := NewPlayer(100, 50, 12, 20, testPlayerStats())

	require.True(t, p.StartAttack())
	assert.False(t, p.StartAttack(), "one attack at a time")

	kind, seq, box := p.CurrentAttack()
	assert.Equal(t, PlayerAttackPunch, kind)
	assert.Equal(t, uint32(1), seq)
	assert.Nil(t, box, "wind-up has no hitbox")

	for i := 0; i < 5; i++ {
		p.AdvanceTimers()
	}
	_, _, box = p.CurrentAttack()
	require.NotNil(t, box)
	assert.Equal(t, 112.0, box.X)
	assert.Equal(t, 16.0, box.Width)

	p.Facing = FacingLeft
	_, _, box = p.CurrentAttack()
	require.NotNil(t, box)
	assert.Equal(t, 84.0, box.X)

	for i := 0; i < 15; i++ {
		p.AdvanceTimers()
	}
	kind, _, box = p.CurrentAttack()
	assert.Equal(t, PlayerAttackNone, kind)
	assert.Nil(t, box)

	require.True(t, p.StartAttack())
	_, seq, _ = p.CurrentAttack()
	assert.Equal(t, uint32(2), seq)
}

func TestPlayer_CannotAttackWhileStunned(t *testing.T) {
	p := NewPlayer(0, 0, 12, 20, testPlayerStats())
	p.TakeDamage(5)
	assert.False(t, p.StartAttack())
}
