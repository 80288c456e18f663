package system

import (
	"github.com/younwookim/brawl/internal/domain/entity"
	"github.com/younwookim/brawl/internal/infrastructure/config"
)

// KnockbackImpulse pushes the target away from the attacker's side and up
func KnockbackImpulse(attackerX, targetX float64, kb config.KnockbackConfig) (dx, dy float64) {
	dir := 1.0
	if targetX < attackerX {
		dir = -1.0
	}
	return dir * kb.X, -kb.Y
}

// damageTarget applies damage and knockback to the player side
func (m *EnemyManager) damageTarget(target Target, damage int, fromX float64, source entity.EntityID) {
	alive := target.TakeDamage(damage)
	dx, dy := KnockbackImpulse(fromX, target.Box().CenterX(), m.cfg.Combat.Knockback)
	target.ApplyKnockback(dx, dy)
	m.emit(PlayerHit{Source: source, Damage: damage, Fatal: !alive})
}

// checkContact hurts the target when a living actor touches it, at most
// once per TouchCooldownTicks
func (m *EnemyManager) checkContact(a *entity.Actor, alive bool, target Target) {
	if target == nil || !alive || a.Damage <= 0 || a.TouchCooldown > 0 {
		return
	}
	if target.IsDamaged() || !a.Hitbox.Overlaps(target.Box()) {
		return
	}
	a.TouchCooldown = m.cfg.Combat.TouchCooldownTicks
	m.damageTarget(target, a.Damage, a.Hitbox.CenterX(), a.ID)
}

// strike damages an enemy or boss from the player side
func (m *EnemyManager) strike(d entity.Damageable, damage int) {
	killed := d.TakeDamage(damage)
	a := d.Base()
	m.emit(EnemyStruck{ID: a.ID, Archetype: a.Archetype, Damage: damage, Killed: killed})
}

// forEachDamageable visits enemies in declaration order, then bosses.
// Returning false from fn stops the walk.
func (m *EnemyManager) forEachDamageable(fn func(d entity.Damageable) bool) {
	for _, a := range entity.PatrolArchetypes() {
		for _, e := range m.enemies[a] {
			if !fn(e) {
				return
			}
		}
	}
	for _, b := range m.bosses {
		if !fn(b) {
			return
		}
	}
}

// resolveProjectile tests bounds, geometry, the target and then every actor.
// The first hit deactivates the projectile.
func (m *EnemyManager) resolveProjectile(p *entity.Projectile, target Target) {
	hb := p.Hitbox
	if hb.X < 0 || hb.Right() > m.grid.PixelWidth() {
		p.Deactivate()
		return
	}
	if !m.grid.CanOccupyBox(hb) {
		p.Deactivate()
		return
	}

	if !p.FromPlayer() && target != nil && !target.IsDamaged() && hb.Overlaps(target.Box()) {
		p.Deactivate()
		m.damageTarget(target, p.Damage, hb.CenterX()-p.Direction.Sign(), p.Owner)
		return
	}

	m.forEachDamageable(func(d entity.Damageable) bool {
		if d.Base().ID == p.Owner || !d.IsAlive() || !hb.Overlaps(d.Box()) {
			return true
		}
		p.Deactivate()
		m.strike(d, p.Damage)
		return false
	})
}

// ResolvePlayerAttack applies the attacker's active hitbox to every living
// enemy and boss, once per attack instance. Returns the number of hits.
func (m *EnemyManager) ResolvePlayerAttack(attacker Attacker) int {
	kind, seq, box := attacker.CurrentAttack()
	if kind == entity.PlayerAttackNone || box == nil {
		return 0
	}
	damage := attacker.AttackDamage()

	hits := 0
	m.forEachDamageable(func(d entity.Damageable) bool {
		a := d.Base()
		if !d.IsAlive() || a.LastHitBy == seq || !box.Overlaps(d.Box()) {
			return true
		}
		a.LastHitBy = seq
		m.strike(d, damage)
		hits++
		return true
	})
	return hits
}
