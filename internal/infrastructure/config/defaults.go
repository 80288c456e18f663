package config

// Default returns the built-in tuning. Loaded files are decoded on top of it,
// so a file only needs the values it changes.
func Default() *EngineConfig {
	return &EngineConfig{
		Simulation: SimulationConfig{
			TicksPerSecond: 60,
			ScreenWidth:    480,
			ScreenHeight:   270,
			Scale:          2,
		},
		Physics: PhysicsConfig{
			Gravity:       0.4,
			MaxFallSpeed:  8,
			BossFallSpeed: 4,
		},
		Combat: CombatConfig{
			TouchCooldownTicks: 60,
			HitStunTicks:       45,
			Knockback: KnockbackConfig{
				X:             3,
				Y:             4,
				DurationTicks: 15,
			},
		},
		Enemies: map[string]EnemyConfig{
			"crab": {
				Hitbox:              HitboxConfig{Width: 24, Height: 16},
				MaxHealth:           30,
				Damage:              10,
				PatrolSpeed:         0.6,
				DetectRange:         48,
				IdleTicks:           60,
				AttackCooldownTicks: 90,
				AttackHitTick:       12,
				Attack:              AnimationConfig{Frames: 5, TicksPerFrame: 5},
				HurtTicks:           18,
				DyingTicks:          30,
				CorridorProbeTiles:  6,
				CorridorMinTiles:    2,
			},
			"boar": {
				Hitbox:              HitboxConfig{Width: 32, Height: 22},
				MaxHealth:           50,
				Damage:              15,
				PatrolSpeed:         1.0,
				DetectRange:         64,
				IdleTicks:           45,
				AttackCooldownTicks: 75,
				AttackHitTick:       15,
				Attack:              AnimationConfig{Frames: 6, TicksPerFrame: 5},
				HurtTicks:           18,
				DyingTicks:          36,
				CorridorProbeTiles:  6,
				CorridorMinTiles:    2,
			},
			"monkey": {
				Hitbox:              HitboxConfig{Width: 22, Height: 26},
				MaxHealth:           30,
				Damage:              10,
				PatrolSpeed:         0.8,
				DetectRange:         160,
				IdleTicks:           60,
				AttackCooldownTicks: 120,
				AttackHitTick:       20,
				Attack:              AnimationConfig{Frames: 6, TicksPerFrame: 5},
				HurtTicks:           18,
				DyingTicks:          30,
				Ranged:              true,
				CorridorProbeTiles:  6,
				CorridorMinTiles:    2,
			},
		},
		Bosses: map[string]BossConfig{
			"panther": {
				Hitbox:                 HitboxConfig{Width: 40, Height: 30},
				MaxHealth:              150,
				Damage:                 15,
				SightRange:             240,
				MeleeRange:             40,
				DashRange:              140,
				WalkSpeed:              0.8,
				RunSpeed:               2.0,
				SlideSpeed:             3.0,
				DashSpeed:              4.5,
				DetectDwellTicks:       30,
				PrepareTicks:           24,
				CooldownTicks:          60,
				ChaseTimeoutTicks:      180,
				RepositionDistance:     96,
				RepositionTimeoutTicks: 120,
				HurtTicks:              12,
				DyingTicks:             60,
				AbortOnLeaveRange:      true,
				MeleeVariants:          []string{"swing", "kick"},
				Attacks: map[string]BossAttackConfig{
					"swing": {Animation: AnimationConfig{Frames: 6, TicksPerFrame: 5}, HitFrame: 2, HitFrameEnd: 3, Damage: 15, Reach: 28},
					"kick":  {Animation: AnimationConfig{Frames: 6, TicksPerFrame: 4}, HitFrame: 3, HitFrameEnd: 4, Damage: 20, Reach: 32},
					"dash":  {Animation: AnimationConfig{Frames: 8, TicksPerFrame: 4}, HitFrame: 2, HitFrameEnd: 6, Damage: 20, Reach: 20},
				},
				Weights: BossWeightsConfig{
					Near:        ActionWeights{Melee: 6, RepositionWalk: 2, RepositionSlide: 2},
					Mid:         ActionWeights{Dash: 5, Walk: 2, Run: 3, RepositionWalk: 1, RepositionSlide: 1},
					Far:         ActionWeights{Walk: 3, Run: 5, RepositionWalk: 1},
					AfterAttack: AfterAttackWeights{Idle: 4, RepositionWalk: 3, RepositionSlide: 3},
				},
				Unlocks: "slide",
			},
			"gorilla": {
				Hitbox:                 HitboxConfig{Width: 48, Height: 44},
				MaxHealth:              220,
				Damage:                 20,
				SightRange:             260,
				MeleeRange:             48,
				DashRange:              160,
				WalkSpeed:              0.6,
				RunSpeed:               1.6,
				SlideSpeed:             2.4,
				DashSpeed:              3.6,
				DetectDwellTicks:       30,
				PrepareTicks:           36,
				CooldownTicks:          80,
				ChaseTimeoutTicks:      200,
				RepositionDistance:     80,
				RepositionTimeoutTicks: 140,
				HurtTicks:              10,
				DyingTicks:             75,
				AbortOnLeaveRange:      false,
				MeleeVariants:          []string{"swing"},
				Attacks: map[string]BossAttackConfig{
					"swing": {Animation: AnimationConfig{Frames: 7, TicksPerFrame: 5}, HitFrame: 3, HitFrameEnd: 4, Damage: 30, Reach: 36},
					"dash":  {Animation: AnimationConfig{Frames: 8, TicksPerFrame: 5}, HitFrame: 2, HitFrameEnd: 6, Damage: 25, Reach: 24},
				},
				Weights: BossWeightsConfig{
					Near:        ActionWeights{Melee: 8, RepositionWalk: 1, RepositionSlide: 1},
					Mid:         ActionWeights{Dash: 4, Walk: 4, Run: 2, RepositionWalk: 1},
					Far:         ActionWeights{Walk: 4, Run: 4},
					AfterAttack: AfterAttackWeights{Idle: 6, RepositionWalk: 3, RepositionSlide: 1},
				},
				Unlocks: "throw",
			},
		},
		Projectile: ProjectileConfig{
			Hitbox: HitboxConfig{Width: 8, Height: 8},
			Speed:  3,
			Damage: 10,
		},
		Gem: GemConfig{
			Hitbox:          HitboxConfig{Width: 10, Height: 10},
			Value:           1,
			FloatSpeed:      0.08,
			FloatAmplitude:  2,
			BreathAmplitude: 0.08,
		},
		Drops: DropsConfig{PickupChance: 0.5},
		Spawn: SpawnConfig{
			ProximityRadius: 320,
			Default:         SpawnAll,
			Levels:          map[int]string{3: SpawnProximity},
		},
		Player: PlayerConfig{
			Hitbox:             HitboxConfig{Width: 14, Height: 22},
			MaxHealth:          100,
			MoveSpeed:          1.6,
			JumpForce:          6.5,
			AttackDamage:       10,
			AttackTicks:        20,
			AttackActiveStart:  6,
			AttackActiveEnd:    11,
			AttackReach:        HitboxConfig{Width: 18, Height: 14},
			ThrowCooldownTicks: 45,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}
