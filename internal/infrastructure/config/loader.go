package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"

	"gopkg.in/yaml.v3"
)

// engineFiles are tried in order; the first one present wins
var engineFiles = []string{"engine.yaml", "engine.yml", "engine.json"}

// Loader loads engine and stage configuration using fs.FS interface
type Loader struct {
	fsys     fs.FS
	basePath string
}

// NewLoader creates a new config loader from filesystem path
func NewLoader(basePath string) *Loader {
	return &Loader{
		fsys:     os.DirFS(basePath),
		basePath: basePath,
	}
}

// NewFSLoader creates a new config loader from fs.FS
func NewFSLoader(fsys fs.FS, basePath string) *Loader {
	return &Loader{
		fsys:     fsys,
		basePath: basePath,
	}
}

// BasePath returns the directory the loader reads from
func (l *Loader) BasePath() string {
	return l.basePath
}

// LoadEngine decodes the engine file on top of Default and validates it.
// A missing engine file is not an error: the defaults are returned.
func (l *Loader) LoadEngine() (*EngineConfig, error) {
	cfg := Default()
	for _, name := range engineFiles {
		data, err := fs.ReadFile(l.fsys, name)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", name, err)
		}
		if err := decode(name, data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", name, err)
		}
		break
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid engine config: %w", err)
	}
	return cfg, nil
}

// LoadStage loads a stage JSON file
func (l *Loader) LoadStage(name string) (*StageConfig, error) {
	p := path.Join("stages", name+".json")
	data, err := fs.ReadFile(l.fsys, p)
	if err != nil {
		return nil, fmt.Errorf("failed to read stage %s: %w", name, err)
	}

	var cfg StageConfig
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse stage %s: %w", name, err)
	}
	if cfg.TileSize <= 0 {
		return nil, fmt.Errorf("stage %s: tileSize must be positive, got %d", name, cfg.TileSize)
	}
	if len(cfg.Rows) == 0 {
		return nil, fmt.Errorf("stage %s: no rows", name)
	}

	return &cfg, nil
}

func decode(name string, data []byte, cfg *EngineConfig) error {
	switch path.Ext(name) {
	case ".yaml", ".yml":
		return yaml.Unmarshal(data, cfg)
	default:
		return json.Unmarshal(data, cfg)
	}
}

// Validate reports every structural problem at once.
// Animation data is not checked here; the engine skips malformed steps at runtime.
func (c *EngineConfig) Validate() error {
	var errs []error
	if c.Simulation.TicksPerSecond <= 0 {
		errs = append(errs, fmt.Errorf("simulation.ticksPerSecond must be positive"))
	}
	if c.Drops.PickupChance < 0 || c.Drops.PickupChance > 1 {
		errs = append(errs, fmt.Errorf("drops.pickupChance %v outside [0, 1]", c.Drops.PickupChance))
	}
	if c.Spawn.Default != "" && c.Spawn.Default != SpawnAll && c.Spawn.Default != SpawnProximity {
		errs = append(errs, fmt.Errorf("spawn.default: unknown policy %q", c.Spawn.Default))
	}
	for id, p := range c.Spawn.Levels {
		if p != SpawnAll && p != SpawnProximity {
			errs = append(errs, fmt.Errorf("spawn.levels[%d]: unknown policy %q", id, p))
		}
	}

	for name, e := range c.Enemies {
		if e.Hitbox.Width <= 0 || e.Hitbox.Height <= 0 {
			errs = append(errs, fmt.Errorf("enemies.%s: hitbox must be positive", name))
		}
		if e.MaxHealth <= 0 {
			errs = append(errs, fmt.Errorf("enemies.%s: maxHealth must be positive", name))
		}
	}

	for name, b := range c.Bosses {
		if b.Hitbox.Width <= 0 || b.Hitbox.Height <= 0 {
			errs = append(errs, fmt.Errorf("bosses.%s: hitbox must be positive", name))
		}
		if b.MaxHealth <= 0 {
			errs = append(errs, fmt.Errorf("bosses.%s: maxHealth must be positive", name))
		}
		if b.MeleeRange > b.DashRange || b.DashRange > b.SightRange {
			errs = append(errs, fmt.Errorf("bosses.%s: ranges must satisfy melee <= dash <= sight", name))
		}
		for _, v := range b.MeleeVariants {
			if _, ok := b.Attacks[v]; !ok {
				errs = append(errs, fmt.Errorf("bosses.%s: melee variant %q has no attack entry", name, v))
			}
		}
	}

	return errors.Join(errs...)
}
