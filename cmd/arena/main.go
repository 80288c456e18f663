// Command arena runs the enemy engine against the reference player.
//
// With a window it is the debug arena: every actor drawn as its hitbox.
// With -headless it steps the simulation without graphics, which is how
// recorded replays are checked in CI.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"

	"github.com/younwookim/brawl/internal/application/game"
	"github.com/younwookim/brawl/internal/application/replay"
	"github.com/younwookim/brawl/internal/application/scene/arena"
	"github.com/younwookim/brawl/internal/application/system"
	"github.com/younwookim/brawl/internal/infrastructure/config"
	"github.com/younwookim/brawl/internal/infrastructure/logging"
)

type options struct {
	configDir string
	stage     string
	seed      int64
	record    string
	replay    string
	watch     bool
	headless  bool
	frames    int
	logLevel  string
	logFormat string
}

func parseFlags(args []string, stderr io.Writer) (options, error) {
	var opts options
	fset := flag.NewFlagSet("arena", flag.ContinueOnError)
	fset.SetOutput(stderr)
	fset.StringVar(&opts.configDir, "config", "", "Config directory (default: embedded configs)")
	fset.StringVar(&opts.stage, "stage", "jungle", "Stage name under <config>/stages")
	fset.Int64Var(&opts.seed, "seed", 0, "RNG seed (default: current time)")
	fset.StringVar(&opts.record, "record", "", "Record input to file (e.g., -record replay.json)")
	fset.StringVar(&opts.replay, "replay", "", "Play back a recorded file")
	fset.BoolVar(&opts.watch, "watch", false, "Reload engine config when files under -config change")
	fset.BoolVar(&opts.headless, "headless", false, "Run without a window")
	fset.IntVar(&opts.frames, "frames", 0, "Frames to simulate headless (0: until the replay ends)")
	fset.StringVar(&opts.logLevel, "log-level", "", "Override logging.level")
	fset.StringVar(&opts.logFormat, "log-format", "", "Override logging.format (json or console)")

	if err := fset.Parse(args); err != nil {
		return options{}, err
	}
	if opts.record != "" && opts.replay != "" {
		return options{}, errors.New("-record and -replay are mutually exclusive")
	}
	if opts.headless && opts.replay == "" && opts.frames <= 0 {
		return options{}, errors.New("-headless without -replay needs -frames")
	}
	if opts.watch && opts.configDir == "" {
		return options{}, errors.New("-watch needs -config, embedded configs cannot change")
	}
	return opts, nil
}

func main() {
	opts, err := parseFlags(os.Args[1:], os.Stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	if _, err := run(opts); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newLoader(dir string) (*config.Loader, error) {
	if dir != "" {
		return config.NewLoader(dir), nil
	}
	fsys, err := fs.Sub(configFS, "configs")
	if err != nil {
		return nil, fmt.Errorf("failed to get config subfs: %w", err)
	}
	return config.NewFSLoader(fsys, "configs"), nil
}

// run loads everything, plays one session and returns its final counters
func run(opts options) (arena.Stats, error) {
	loader, err := newLoader(opts.configDir)
	if err != nil {
		return arena.Stats{}, err
	}
	cfg, err := loader.LoadEngine()
	if err != nil {
		return arena.Stats{}, fmt.Errorf("failed to load config: %w", err)
	}
	if opts.logLevel != "" {
		cfg.Logging.Level = opts.logLevel
	}
	if opts.logFormat != "" {
		cfg.Logging.Format = opts.logFormat
	}

	log, err := logging.New(cfg.Logging)
	if err != nil {
		return arena.Stats{}, fmt.Errorf("failed to build logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	stageName, seed := opts.stage, opts.seed
	var replayer *replay.Replayer
	if opts.replay != "" {
		data, err := replay.LoadReplay(opts.replay)
		if err != nil {
			return arena.Stats{}, err
		}
		if data.Version != replay.Version {
			log.Warn("replay version differs, playback may diverge",
				zap.String("file", data.Version),
				zap.String("current", replay.Version),
			)
		}
		replayer = replay.NewReplayer(*data)
		if replayer.Stage() != "" {
			stageName = replayer.Stage()
		}
		seed = replayer.Seed()
		log.Info("replaying", zap.String("file", opts.replay), zap.Int("frames", replayer.TotalFrames()))
	} else if seed == 0 {
		seed = time.Now().UnixNano()
	}

	stageCfg, err := loader.LoadStage(stageName)
	if err != nil {
		return arena.Stats{}, fmt.Errorf("failed to load stage: %w", err)
	}

	var recorder *replay.Recorder
	if opts.record != "" {
		recorder = replay.NewRecorder(seed, stageName)
		log.Info("recording enabled", zap.String("file", opts.record), zap.Int64("seed", seed))
	}

	var watcher *config.Watcher
	if opts.watch {
		watcher, err = config.NewWatcher(opts.configDir)
		if err != nil {
			return arena.Stats{}, fmt.Errorf("failed to watch %s: %w", opts.configDir, err)
		}
		defer func() { _ = watcher.Close() }()
	}

	a := arena.New(arena.Options{
		Config:   cfg,
		Stage:    stageCfg,
		Seed:     seed,
		Loader:   loader,
		Watcher:  watcher,
		Recorder: recorder,
		Replayer: replayer,
		Log:      log,
	})

	if opts.headless {
		a.OnEnter()
		err = runHeadless(a, replayer, opts.frames)
	} else {
		err = runWindow(a, cfg, log)
	}
	a.OnExit()

	if recorder != nil {
		if serr := recorder.Save(opts.record); serr != nil {
			log.Error("failed to save recording", zap.Error(serr))
		} else {
			log.Info("recording saved", zap.String("file", opts.record), zap.Int("frames", recorder.FrameCount()))
		}
	}

	stats := a.Stats()
	log.Info("session finished",
		zap.Stringer("state", a.State()),
		zap.Int("frames", stats.Frames),
		zap.Int("kills", stats.Kills),
		zap.Int("bossKills", stats.BossKills),
		zap.Int("gems", stats.Gems),
		zap.Int("hitsTaken", stats.HitsTaken),
	)
	return stats, err
}

// runHeadless plays every replay frame (capped by frames when positive),
// or feeds idle input for frames ticks
func runHeadless(a *arena.Arena, replayer *replay.Replayer, frames int) error {
	for i := 0; frames <= 0 || i < frames; i++ {
		if replayer == nil {
			a.Step(system.InputState{})
			continue
		}
		if _, err := a.Update(); err != nil {
			if errors.Is(err, ebiten.Termination) {
				return nil
			}
			return err
		}
	}
	return nil
}

func runWindow(a *arena.Arena, cfg *config.EngineConfig, log *zap.Logger) error {
	sim := cfg.Simulation
	ebiten.SetWindowSize(sim.ScreenWidth*sim.Scale, sim.ScreenHeight*sim.Scale)
	ebiten.SetWindowTitle("Brawl Arena")
	ebiten.SetTPS(sim.TicksPerSecond)

	g := game.New(a, sim.ScreenWidth, sim.ScreenHeight, log)
	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}
