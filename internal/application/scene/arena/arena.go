// Package arena provides the debug scene: the enemy engine running against
// the reference player, with every hitbox drawn as a plain rectangle.
package arena

import (
	"math/rand"

	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"

	"github.com/younwookim/brawl/internal/application/replay"
	"github.com/younwookim/brawl/internal/application/scene"
	"github.com/younwookim/brawl/internal/application/state"
	"github.com/younwookim/brawl/internal/application/system"
	"github.com/younwookim/brawl/internal/domain/entity"
	"github.com/younwookim/brawl/internal/infrastructure/config"
)

// Feedback tuning, presentation only
const (
	hitstopOnPlayerHit = 6
	hitstopOnStrike    = 3
	shakeOnPlayerHit   = 3.0
	shakeDecay         = 0.85
)

// Options wires an Arena. Loader and Watcher enable hot reload; Recorder
// and Replayer are mutually exclusive in practice.
type Options struct {
	Config   *config.EngineConfig
	Stage    *config.StageConfig
	Seed     int64
	Loader   *config.Loader
	Watcher  *config.Watcher
	Recorder *replay.Recorder
	Replayer *replay.Replayer
	Log      *zap.Logger
}

// Stats counts what happened since the last (re)start
type Stats struct {
	Frames    int
	Kills     int
	BossKills int
	Gems      int
	HitsTaken int
}

// Arena is the gameplay scene
type Arena struct {
	cfg   *config.EngineConfig
	level *entity.Level
	seed  int64

	player    *entity.Player
	abilities entity.Abilities
	physics   *system.PhysicsSystem
	input     *system.InputSystem
	enemies   *system.EnemyManager
	state     state.GameState

	loader   *config.Loader
	watcher  *config.Watcher
	recorder *replay.Recorder
	replayer *replay.Replayer
	log      *zap.Logger

	// Feedback
	hitstop  int
	shake    float64
	shakeRNG *rand.Rand

	stats Stats
}

// New builds the arena for one stage. The engine RNG is seeded from
// opts.Seed so a recorded input stream reproduces the run.
func New(opts Options) *Arena {
	log := opts.Log
	if log == nil {
		log = zap.NewNop()
	}
	cfg := opts.Config
	level := system.LoadStage(opts.Stage, log)

	a := &Arena{
		cfg:      cfg,
		level:    level,
		seed:     opts.Seed,
		physics:  system.NewPhysicsSystem(cfg, level.Grid),
		input:    system.NewInputSystem(cfg),
		state:    state.StatePlaying,
		loader:   opts.Loader,
		watcher:  opts.Watcher,
		recorder: opts.Recorder,
		replayer: opts.Replayer,
		log:      log.With(zap.String("stage", opts.Stage.Name)),
		shakeRNG: rand.New(rand.NewSource(opts.Seed + 1)),
	}
	a.enemies = system.NewEnemyManager(cfg, rand.New(rand.NewSource(opts.Seed)), &a.abilities, a.log)
	a.enemies.LoadFromLevel(level, opts.Stage.ID)
	a.player = system.SpawnPlayer(cfg, level)
	return a
}

// Name implements scene.Scene
func (a *Arena) Name() string {
	return "arena"
}

// OnEnter implements scene.Scene
func (a *Arena) OnEnter() {
	a.log.Info("arena started",
		zap.Int64("seed", a.seed),
		zap.Int("remaining", a.enemies.Remaining()),
		zap.Bool("recording", a.recorder != nil),
		zap.Bool("replaying", a.replayer != nil),
	)
}

// OnExit implements scene.Scene
func (a *Arena) OnExit() {
	if a.recorder != nil {
		a.recorder.Stop()
	}
}

// Update reads one tick of input (keyboard or replay) and steps the run.
// A finished replay ends the game loop.
func (a *Arena) Update() (scene.Scene, error) {
	a.pollConfig()

	var in system.InputState
	if a.replayer != nil {
		var ok bool
		in, ok = a.replayer.Next()
		if !ok {
			a.log.Info("replay finished",
				zap.Int("frames", a.replayer.TotalFrames()),
				zap.Stringer("state", a.state),
			)
			return nil, ebiten.Termination
		}
	} else {
		in = system.ReadInput()
	}

	a.Step(in)
	return nil, nil
}

// Step advances the run by one tick of input. It never touches ebiten, so
// it is what the headless runner and the tests drive.
func (a *Arena) Step(in system.InputState) {
	a.stats.Frames++
	if a.recorder != nil {
		a.recorder.RecordFrame(in)
	}
	a.shake *= shakeDecay

	switch {
	case a.state.Finished():
		if in.Attack || in.Jump {
			a.Restart()
		}
		return
	case !a.state.Simulating():
		if in.Pause {
			a.setState(state.StatePlaying)
		}
		return
	}

	if in.Pause {
		a.setState(state.StatePaused)
		return
	}
	if a.hitstop > 0 {
		a.hitstop--
		return
	}

	if a.input.UpdatePlayer(a.player, in, a.abilities) {
		a.throw()
	}
	a.physics.Update(a.player)
	a.enemies.ResolvePlayerAttack(a.player)
	a.enemies.Update(a.player)
	a.handleEvents(a.enemies.DrainEvents())

	switch {
	case a.player.IsDead():
		a.setState(state.StateGameOver)
	case a.enemies.Remaining() == 0:
		a.setState(state.StateStageClear)
	}
}

// throw launches a player projectile from the leading side at mid height
func (a *Arena) throw() {
	half := a.cfg.Projectile.Hitbox.Width / 2
	hb := a.player.Hitbox
	cx := hb.Right() + half
	if a.player.Facing == entity.FacingLeft {
		cx = hb.X - half
	}
	a.enemies.SpawnProjectile(entity.PlayerID, cx, hb.CenterY(), a.player.Facing)
}

func (a *Arena) handleEvents(events []system.Event) {
	for _, ev := range events {
		switch e := ev.(type) {
		case system.PlayerHit:
			a.hitstop = max(a.hitstop, hitstopOnPlayerHit)
			a.shake = shakeOnPlayerHit
			a.stats.HitsTaken++
			a.log.Debug("player hit",
				zap.Uint32("source", uint32(e.Source)),
				zap.Int("damage", e.Damage),
				zap.Int("health", a.player.Health.Current),
			)
		case system.EnemyStruck:
			a.hitstop = max(a.hitstop, hitstopOnStrike)
		case system.EnemyDefeated:
			a.stats.Kills++
		case system.BossDefeated:
			a.stats.BossKills++
			a.log.Info("boss defeated", zap.Stringer("boss", e.Archetype))
		case system.GemCollected:
			a.stats.Gems += e.Value
		}
	}
}

func (a *Arena) setState(s state.GameState) {
	if s == a.state {
		return
	}
	a.log.Info("state changed",
		zap.Stringer("from", a.state),
		zap.Stringer("to", s),
		zap.Int("frame", a.stats.Frames),
	)
	a.state = s
}

// Restart puts the player back on the spawn point and respawns the level.
// Unlocked abilities are lost.
func (a *Arena) Restart() {
	a.level.ClearPickups()
	a.player = system.SpawnPlayer(a.cfg, a.level)
	a.abilities = 0
	a.enemies.ResetAll()
	a.hitstop = 0
	a.shake = 0
	a.stats = Stats{}
	a.setState(state.StatePlaying)
}

// ApplyConfig swaps the tuning of a running arena. Live actors and the
// player keep their health.
func (a *Arena) ApplyConfig(cfg *config.EngineConfig) {
	a.cfg = cfg
	a.physics.SetConfig(cfg)
	a.input.SetConfig(cfg)
	a.enemies.SetConfig(cfg)
	a.player.Stats = system.PlayerStats(cfg)
	a.log.Info("config applied")
}

// pollConfig drains the watcher and reloads the engine file once if
// anything changed. A bad file keeps the current tuning.
func (a *Arena) pollConfig() {
	if a.watcher == nil || a.loader == nil {
		return
	}

	select {
	case err := <-a.watcher.Errors:
		a.log.Warn("config watcher error", zap.Error(err))
	default:
	}

	changed := false
	for {
		name, ok := a.watcher.Poll()
		if !ok {
			break
		}
		a.log.Debug("config file changed", zap.String("file", name))
		changed = true
	}
	if !changed {
		return
	}

	cfg, err := a.loader.LoadEngine()
	if err != nil {
		a.log.Warn("config reload failed, keeping current", zap.Error(err))
		return
	}
	a.ApplyConfig(cfg)
}

// State returns the run state
func (a *Arena) State() state.GameState {
	return a.state
}

// Player returns the reference player
func (a *Arena) Player() *entity.Player {
	return a.player
}

// Enemies returns the engine
func (a *Arena) Enemies() *system.EnemyManager {
	return a.enemies
}

// Level returns the loaded level
func (a *Arena) Level() *entity.Level {
	return a.level
}

// Abilities returns what the player has unlocked this run
func (a *Arena) Abilities() entity.Abilities {
	return a.abilities
}

// Stats returns the counters of the current run
func (a *Arena) Stats() Stats {
	return a.stats
}
