package system

import (
	"math"

	"go.uber.org/zap"

	"github.com/younwookim/brawl/internal/domain/entity"
	"github.com/younwookim/brawl/internal/infrastructure/config"
)

// bossChoice indexes the weighted decision table
type bossChoice int

const (
	choiceMelee bossChoice = iota
	choiceDash
	choiceWalk
	choiceRun
	choiceRepositionWalk
	choiceRepositionSlide
	choiceCount
)

// updateBoss steps one boss
func (m *EnemyManager) updateBoss(b *entity.Boss, target Target) {
	if !b.Active {
		return
	}
	tun, ok := m.cfg.Bosses[b.Archetype.String()]
	if !ok {
		return
	}
	if !b.Action.Valid() {
		m.log.Warn("invalid boss action, resetting to idle",
			zap.Uint32("id", uint32(b.ID)),
			zap.Int("action", int(b.Action)),
		)
		b.SetAction(entity.BossIdle)
	}

	if b.TouchCooldown > 0 {
		b.TouchCooldown--
	}
	if b.ActionCooldown > 0 {
		b.ActionCooldown--
	}

	m.applyBossGravity(b)
	b.ActionTimer++

	switch b.Action {
	case entity.BossIdle:
		if target != nil && m.inSight(b, &tun, target) {
			m.faceTarget(b, target)
			b.SetAction(entity.BossDetected)
		}

	case entity.BossDetected:
		if target != nil {
			m.faceTarget(b, target)
		}
		if b.ActionTimer >= tun.DetectDwellTicks {
			m.decide(b, &tun, target)
		}

	case entity.BossChasing:
		m.approach(b, &tun, target, tun.RunSpeed)

	case entity.BossWalking:
		m.approach(b, &tun, target, tun.WalkSpeed)

	case entity.BossPreparing:
		m.prepare(b, &tun, target)

	case entity.BossAttacking:
		m.bossAttack(b, &tun, target)

	case entity.BossRepositionWalk:
		m.reposition(b, &tun, tun.WalkSpeed)

	case entity.BossRepositionSlide:
		m.reposition(b, &tun, tun.SlideSpeed)

	case entity.BossHurt:
		if b.ActionTimer >= tun.HurtTicks {
			if b.Health.Current <= 0 {
				b.SetAction(entity.BossDying)
			} else {
				b.SetAction(entity.BossIdle)
			}
		}

	case entity.BossDying:
		if b.ActionTimer >= tun.DyingTicks {
			b.Active = false
		}
	}
}

// applyBossGravity drops the boss a fixed distance while it is off the floor
func (m *EnemyManager) applyBossGravity(b *entity.Boss) {
	hb := b.Hitbox
	if m.grid.IsOnFloor(hb) {
		return
	}
	dy := m.cfg.Physics.BossFallSpeed
	if m.grid.CanOccupy(hb.X, hb.Y+dy, hb.Width, hb.Height) {
		b.Hitbox.Y += dy
	} else {
		b.Hitbox.Y = m.grid.SnapY(hb, dy)
	}
}

func (m *EnemyManager) inSight(b *entity.Boss, tun *config.BossConfig, target Target) bool {
	tb := target.Box()
	if math.Abs(tb.CenterX()-b.Hitbox.CenterX()) > tun.SightRange {
		return false
	}
	tolerance := math.Max(float64(m.grid.TileSize), b.Hitbox.Height)
	return math.Abs(tb.Bottom()-b.Hitbox.Bottom()) <= tolerance
}

func (m *EnemyManager) faceTarget(b *entity.Boss, target Target) {
	b.Facing = entity.FacingToward(target.Box().CenterX()-b.Hitbox.CenterX(), b.Facing)
}

func distanceTo(b *entity.Boss, target Target) float64 {
	return math.Abs(target.Box().CenterX() - b.Hitbox.CenterX())
}

// decisionWeights returns the weights for the target's distance band with
// ineligible choices zeroed. ok is false when the target is out of sight.
func (m *EnemyManager) decisionWeights(b *entity.Boss, tun *config.BossConfig, dist float64) (w [choiceCount]int, ok bool) {
	var band config.ActionWeights
	switch {
	case dist <= tun.MeleeRange:
		band = tun.Weights.Near
	case dist <= tun.DashRange:
		band = tun.Weights.Mid
	case dist <= tun.SightRange:
		band = tun.Weights.Far
	default:
		return w, false
	}
	w = [choiceCount]int{
		choiceMelee:           band.Melee,
		choiceDash:            band.Dash,
		choiceWalk:            band.Walk,
		choiceRun:             band.Run,
		choiceRepositionWalk:  band.RepositionWalk,
		choiceRepositionSlide: band.RepositionSlide,
	}

	// Attacks need a ready cooldown, the right band and a configured variant
	_, hasDash := tun.Attacks[entity.AttackDash.String()]
	if b.ActionCooldown > 0 || dist > tun.MeleeRange || len(tun.MeleeVariants) == 0 {
		w[choiceMelee] = 0
	}
	if b.ActionCooldown > 0 || dist <= tun.MeleeRange || dist > tun.DashRange || !hasDash {
		w[choiceDash] = 0
	}
	return w, true
}

// decide picks the boss's next action from the weighted table
func (m *EnemyManager) decide(b *entity.Boss, tun *config.BossConfig, target Target) {
	if target == nil {
		b.SetAction(entity.BossIdle)
		return
	}
	weights, ok := m.decisionWeights(b, tun, distanceTo(b, target))
	if !ok {
		b.SetAction(entity.BossIdle)
		return
	}

	switch bossChoice(weightedPick(m.rng, weights[:])) {
	case choiceMelee:
		m.prepareMelee(b, tun)
	case choiceDash:
		b.Variant = entity.AttackDash
		b.SetAction(entity.BossPreparing)
	case choiceWalk:
		b.SetAction(entity.BossWalking)
	case choiceRun:
		b.SetAction(entity.BossChasing)
	case choiceRepositionWalk:
		m.startReposition(b, tun, entity.BossRepositionWalk)
	case choiceRepositionSlide:
		m.startReposition(b, tun, entity.BossRepositionSlide)
	default:
		b.SetAction(entity.BossIdle)
	}
}

// prepareMelee picks a melee variant and starts its telegraph
func (m *EnemyManager) prepareMelee(b *entity.Boss, tun *config.BossConfig) {
	name := tun.MeleeVariants[m.rng.Intn(len(tun.MeleeVariants))]
	v, ok := entity.ParseAttackVariant(name)
	if !ok {
		m.log.Warn("unknown melee variant", zap.String("variant", name), zap.Stringer("boss", b.Archetype))
		b.SetAction(entity.BossIdle)
		return
	}
	b.Variant = v
	b.SetAction(entity.BossPreparing)
}

// approach moves toward the target until melee range, timeout, loss of
// sight or a blocked path
func (m *EnemyManager) approach(b *entity.Boss, tun *config.BossConfig, target Target, speed float64) {
	if target == nil || !m.inSight(b, tun, target) || b.ActionTimer >= tun.ChaseTimeoutTicks {
		b.SetAction(entity.BossIdle)
		return
	}
	m.faceTarget(b, target)

	if distanceTo(b, target) <= tun.MeleeRange {
		if b.ActionCooldown == 0 && len(tun.MeleeVariants) > 0 {
			m.prepareMelee(b, tun)
		} else {
			b.SetAction(entity.BossIdle)
		}
		return
	}

	if !m.moveBossX(b, b.Facing.Sign()*speed) {
		b.SetAction(entity.BossIdle)
	}
}

// prepare runs the telegraph. A boss with AbortOnLeaveRange gives up a melee
// telegraph when the target steps out of reach; dashes always commit.
func (m *EnemyManager) prepare(b *entity.Boss, tun *config.BossConfig, target Target) {
	if tun.AbortOnLeaveRange && b.Variant != entity.AttackDash &&
		target != nil && distanceTo(b, target) > tun.MeleeRange {
		b.SetAction(entity.BossChasing)
		return
	}
	if b.ActionTimer >= tun.PrepareTicks {
		b.BeginAttack(b.Variant)
	}
}

// bossAttack plays the attack animation. The attack box exists only on the
// active frames and damages the target at most once per attack.
func (m *EnemyManager) bossAttack(b *entity.Boss, tun *config.BossConfig, target Target) {
	atk, ok := tun.Attacks[b.Variant.String()]
	if !ok || !atk.Animation.Valid() {
		m.log.Warn("invalid boss attack animation, attack skipped",
			zap.Stringer("boss", b.Archetype),
			zap.Stringer("variant", b.Variant),
		)
		m.finishAttack(b, tun)
		return
	}

	if b.Variant == entity.AttackDash {
		m.moveBossX(b, b.Facing.Sign()*tun.DashSpeed)
	}

	frame := (b.ActionTimer - 1) / atk.Animation.TicksPerFrame
	if frame >= atk.HitFrame && frame <= atk.HitFrameEnd {
		box := attackBox(b.Hitbox, b.Facing, atk.Reach)
		b.AttackBox = &box
		if !b.DamageApplied && target != nil && !target.IsDamaged() && box.Overlaps(target.Box()) {
			b.DamageApplied = true
			m.damageTarget(target, atk.Damage, b.Hitbox.CenterX(), b.ID)
		}
	} else {
		b.AttackBox = nil
	}

	if b.ActionTimer >= atk.Animation.Duration() {
		m.finishAttack(b, tun)
	}
}

// attackBox is a full-height box of the given reach in front of the boss
func attackBox(hb entity.Hitbox, facing entity.Facing, reach float64) entity.Hitbox {
	box := entity.Hitbox{X: hb.Right(), Y: hb.Y, Width: reach, Height: hb.Height}
	if facing == entity.FacingLeft {
		box.X = hb.X - reach
	}
	return box
}

// finishAttack starts the cooldown and picks what follows the attack
func (m *EnemyManager) finishAttack(b *entity.Boss, tun *config.BossConfig) {
	b.ActionCooldown = tun.CooldownTicks
	after := tun.Weights.AfterAttack
	switch weightedPick(m.rng, []int{after.Idle, after.RepositionWalk, after.RepositionSlide}) {
	case 1:
		m.startReposition(b, tun, entity.BossRepositionWalk)
	case 2:
		m.startReposition(b, tun, entity.BossRepositionSlide)
	default:
		b.SetAction(entity.BossIdle)
	}
}

// startReposition picks a random center within RepositionDistance, kept
// inside the level
func (m *EnemyManager) startReposition(b *entity.Boss, tun *config.BossConfig, action entity.BossAction) {
	half := b.Hitbox.Width / 2
	cx := b.Hitbox.CenterX()
	tx := cx + (m.rng.Float64()*2-1)*tun.RepositionDistance
	tx = math.Max(half, math.Min(tx, m.grid.PixelWidth()-half))

	b.RepositionTargetX = tx
	b.Facing = entity.FacingToward(tx-cx, b.Facing)
	b.SetAction(action)
}

// reposition moves toward RepositionTargetX. Arrival, a blocked path and the
// timeout all end it in Idle with the cooldown running.
func (m *EnemyManager) reposition(b *entity.Boss, tun *config.BossConfig, speed float64) {
	remaining := b.RepositionTargetX - b.Hitbox.CenterX()
	step := math.Copysign(math.Min(math.Abs(remaining), speed), remaining)

	done := b.ActionTimer >= tun.RepositionTimeoutTicks
	if !done && step != 0 {
		b.Facing = entity.FacingToward(step, b.Facing)
		done = !m.moveBossX(b, step)
	}
	if math.Abs(b.RepositionTargetX-b.Hitbox.CenterX()) < 0.5 {
		done = true
	}

	if done {
		b.SetAction(entity.BossIdle)
		b.ActionCooldown = tun.CooldownTicks
	}
}

// moveBossX moves horizontally unless a wall or ledge is in the way.
// Against a wall the boss ends flush with it. Returns false when blocked.
func (m *EnemyManager) moveBossX(b *entity.Boss, dx float64) bool {
	if dx == 0 {
		return true
	}
	hb := b.Hitbox
	if !m.grid.CanOccupy(hb.X+dx, hb.Y, hb.Width, hb.Height) {
		b.Hitbox.X = m.grid.SnapX(hb, dx)
		return false
	}
	if m.grid.IsOnFloor(hb) && !m.grid.IsFloorAhead(hb, dx) {
		return false
	}
	b.Hitbox.X += dx
	return true
}

// weightedPick returns an index with probability proportional to its
// weight, or -1 when every weight is zero
func weightedPick(rng interface{ Intn(int) int }, weights []int) int {
	total := 0
	for _, w := range weights {
		if w > 0 {
			total += w
		}
	}
	if total == 0 {
		return -1
	}
	roll := rng.Intn(total)
	for i, w := range weights {
		if w <= 0 {
			continue
		}
		if roll < w {
			return i
		}
		roll -= w
	}
	return -1
}
