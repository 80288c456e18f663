package config

// EngineConfig is the root config for engine.yaml (or engine.json).
// Speeds are world units per tick, durations are ticks.
type EngineConfig struct {
	Simulation SimulationConfig       `json:"simulation" yaml:"simulation"`
	Physics    PhysicsConfig          `json:"physics" yaml:"physics"`
	Combat     CombatConfig           `json:"combat" yaml:"combat"`
	Enemies    map[string]EnemyConfig `json:"enemies" yaml:"enemies"`
	Bosses     map[string]BossConfig  `json:"bosses" yaml:"bosses"`
	Projectile ProjectileConfig       `json:"projectile" yaml:"projectile"`
	Gem        GemConfig              `json:"gem" yaml:"gem"`
	Drops      DropsConfig            `json:"drops" yaml:"drops"`
	Spawn      SpawnConfig            `json:"spawn" yaml:"spawn"`
	Player     PlayerConfig           `json:"player" yaml:"player"`
	Logging    LoggingConfig          `json:"logging" yaml:"logging"`
}

type SimulationConfig struct {
	TicksPerSecond int `json:"ticksPerSecond" yaml:"ticksPerSecond"`
	ScreenWidth    int `json:"screenWidth" yaml:"screenWidth"`
	ScreenHeight   int `json:"screenHeight" yaml:"screenHeight"`
	Scale          int `json:"scale" yaml:"scale"`
}

type PhysicsConfig struct {
	Gravity      float64 `json:"gravity" yaml:"gravity"`           // added to fall speed per tick
	MaxFallSpeed float64 `json:"maxFallSpeed" yaml:"maxFallSpeed"` // terminal fall speed
	// BossFallSpeed is the fixed per-tick drop applied to bosses off the floor
	BossFallSpeed float64 `json:"bossFallSpeed" yaml:"bossFallSpeed"`
}

type CombatConfig struct {
	TouchCooldownTicks int             `json:"touchCooldownTicks" yaml:"touchCooldownTicks"`
	HitStunTicks       int             `json:"hitStunTicks" yaml:"hitStunTicks"`
	Knockback          KnockbackConfig `json:"knockback" yaml:"knockback"`
}

type KnockbackConfig struct {
	X             float64 `json:"x" yaml:"x"`
	Y             float64 `json:"y" yaml:"y"`
	DurationTicks int     `json:"durationTicks" yaml:"durationTicks"`
}

type HitboxConfig struct {
	Width  float64 `json:"width" yaml:"width"`
	Height float64 `json:"height" yaml:"height"`
}

type AnimationConfig struct {
	Frames        int `json:"frames" yaml:"frames"`
	TicksPerFrame int `json:"ticksPerFrame" yaml:"ticksPerFrame"`
}

// Duration returns the animation length in ticks, 0 if malformed
func (a AnimationConfig) Duration() int {
	if a.Frames <= 0 || a.TicksPerFrame <= 0 {
		return 0
	}
	return a.Frames * a.TicksPerFrame
}

// Valid reports whether the animation can be stepped
func (a AnimationConfig) Valid() bool {
	return a.Duration() > 0
}

// EnemyConfig tunes one ground-patrol archetype
type EnemyConfig struct {
	Hitbox      HitboxConfig `json:"hitbox" yaml:"hitbox"`
	MaxHealth   int          `json:"maxHealth" yaml:"maxHealth"`
	Damage      int          `json:"damage" yaml:"damage"` // contact damage
	PatrolSpeed float64      `json:"patrolSpeed" yaml:"patrolSpeed"`
	DetectRange float64      `json:"detectRange" yaml:"detectRange"`

	IdleTicks           int             `json:"idleTicks" yaml:"idleTicks"`
	AttackCooldownTicks int             `json:"attackCooldownTicks" yaml:"attackCooldownTicks"`
	AttackHitTick       int             `json:"attackHitTick" yaml:"attackHitTick"`
	Attack              AnimationConfig `json:"attack" yaml:"attack"`
	HurtTicks           int             `json:"hurtTicks" yaml:"hurtTicks"`
	DyingTicks          int             `json:"dyingTicks" yaml:"dyingTicks"`

	// Ranged enemies throw a projectile at AttackHitTick instead of striking
	Ranged bool `json:"ranged" yaml:"ranged"`

	CorridorProbeTiles int `json:"corridorProbeTiles" yaml:"corridorProbeTiles"`
	CorridorMinTiles   int `json:"corridorMinTiles" yaml:"corridorMinTiles"`
}

// BossConfig tunes one boss archetype
type BossConfig struct {
	Hitbox    HitboxConfig `json:"hitbox" yaml:"hitbox"`
	MaxHealth int          `json:"maxHealth" yaml:"maxHealth"`
	Damage    int          `json:"damage" yaml:"damage"` // contact damage

	SightRange float64 `json:"sightRange" yaml:"sightRange"`
	MeleeRange float64 `json:"meleeRange" yaml:"meleeRange"`
	DashRange  float64 `json:"dashRange" yaml:"dashRange"`

	WalkSpeed  float64 `json:"walkSpeed" yaml:"walkSpeed"`
	RunSpeed   float64 `json:"runSpeed" yaml:"runSpeed"`
	SlideSpeed float64 `json:"slideSpeed" yaml:"slideSpeed"`
	DashSpeed  float64 `json:"dashSpeed" yaml:"dashSpeed"`

	DetectDwellTicks       int     `json:"detectDwellTicks" yaml:"detectDwellTicks"`
	PrepareTicks           int     `json:"prepareTicks" yaml:"prepareTicks"`
	CooldownTicks          int     `json:"cooldownTicks" yaml:"cooldownTicks"`
	ChaseTimeoutTicks      int     `json:"chaseTimeoutTicks" yaml:"chaseTimeoutTicks"`
	RepositionDistance     float64 `json:"repositionDistance" yaml:"repositionDistance"`
	RepositionTimeoutTicks int     `json:"repositionTimeoutTicks" yaml:"repositionTimeoutTicks"`
	HurtTicks              int     `json:"hurtTicks" yaml:"hurtTicks"`
	DyingTicks             int     `json:"dyingTicks" yaml:"dyingTicks"`

	// AbortOnLeaveRange cancels a melee telegraph when the target steps out of reach
	AbortOnLeaveRange bool `json:"abortOnLeaveRange" yaml:"abortOnLeaveRange"`

	// MeleeVariants are the attack keys a near-band melee decision picks from
	MeleeVariants []string                    `json:"meleeVariants" yaml:"meleeVariants"`
	Attacks       map[string]BossAttackConfig `json:"attacks" yaml:"attacks"`
	Weights       BossWeightsConfig           `json:"weights" yaml:"weights"`

	// Unlocks names the ability granted when this boss is defeated
	Unlocks string `json:"unlocks" yaml:"unlocks"`
}

// BossAttackConfig describes one attack variant
type BossAttackConfig struct {
	Animation   AnimationConfig `json:"animation" yaml:"animation"`
	HitFrame    int             `json:"hitFrame" yaml:"hitFrame"`       // first active frame
	HitFrameEnd int             `json:"hitFrameEnd" yaml:"hitFrameEnd"` // last active frame
	Damage      int             `json:"damage" yaml:"damage"`
	Reach       float64         `json:"reach" yaml:"reach"` // attack box width in front of the boss
}

// ActionWeights are the relative odds of each decision in one distance band
type ActionWeights struct {
	Melee           int `json:"melee" yaml:"melee"`
	Dash            int `json:"dash" yaml:"dash"`
	Walk            int `json:"walk" yaml:"walk"`
	Run             int `json:"run" yaml:"run"`
	RepositionWalk  int `json:"repositionWalk" yaml:"repositionWalk"`
	RepositionSlide int `json:"repositionSlide" yaml:"repositionSlide"`
}

// AfterAttackWeights are the odds of what a boss does once an attack ends
type AfterAttackWeights struct {
	Idle            int `json:"idle" yaml:"idle"`
	RepositionWalk  int `json:"repositionWalk" yaml:"repositionWalk"`
	RepositionSlide int `json:"repositionSlide" yaml:"repositionSlide"`
}

type BossWeightsConfig struct {
	Near        ActionWeights      `json:"near" yaml:"near"`
	Mid         ActionWeights      `json:"mid" yaml:"mid"`
	Far         ActionWeights      `json:"far" yaml:"far"`
	AfterAttack AfterAttackWeights `json:"afterAttack" yaml:"afterAttack"`
}

type ProjectileConfig struct {
	Hitbox HitboxConfig `json:"hitbox" yaml:"hitbox"`
	Speed  float64      `json:"speed" yaml:"speed"`
	Damage int          `json:"damage" yaml:"damage"`
}

type GemConfig struct {
	Hitbox          HitboxConfig `json:"hitbox" yaml:"hitbox"`
	Value           int          `json:"value" yaml:"value"`
	FloatSpeed      float64      `json:"floatSpeed" yaml:"floatSpeed"` // radians per tick
	FloatAmplitude  float64      `json:"floatAmplitude" yaml:"floatAmplitude"`
	BreathAmplitude float64      `json:"breathAmplitude" yaml:"breathAmplitude"`
}

type DropsConfig struct {
	// PickupChance is the odds that a removed enemy also leaves a banana or coconut
	PickupChance float64 `json:"pickupChance" yaml:"pickupChance"`
}

// Spawn policies
const (
	SpawnAll       = "all"
	SpawnProximity = "proximity"
)

type SpawnConfig struct {
	ProximityRadius float64        `json:"proximityRadius" yaml:"proximityRadius"`
	Default         string         `json:"default" yaml:"default"`
	Levels          map[int]string `json:"levels" yaml:"levels"` // level ID -> policy
}

// Policy returns the spawn policy for a level
func (s SpawnConfig) Policy(levelID int) string {
	if p, ok := s.Levels[levelID]; ok && (p == SpawnAll || p == SpawnProximity) {
		return p
	}
	if s.Default == SpawnProximity {
		return SpawnProximity
	}
	return SpawnAll
}

type PlayerConfig struct {
	Hitbox    HitboxConfig `json:"hitbox" yaml:"hitbox"`
	MaxHealth int          `json:"maxHealth" yaml:"maxHealth"`
	MoveSpeed float64      `json:"moveSpeed" yaml:"moveSpeed"`
	JumpForce float64      `json:"jumpForce" yaml:"jumpForce"`

	AttackDamage      int          `json:"attackDamage" yaml:"attackDamage"`
	AttackTicks       int          `json:"attackTicks" yaml:"attackTicks"`
	AttackActiveStart int          `json:"attackActiveStart" yaml:"attackActiveStart"`
	AttackActiveEnd   int          `json:"attackActiveEnd" yaml:"attackActiveEnd"`
	AttackReach       HitboxConfig `json:"attackReach" yaml:"attackReach"`

	ThrowCooldownTicks int `json:"throwCooldownTicks" yaml:"throwCooldownTicks"`
}

type LoggingConfig struct {
	Level  string `json:"level" yaml:"level"`
	Format string `json:"format" yaml:"format"` // "json" or "console"
}
