package system

import (
	"go.uber.org/zap"

	"github.com/younwookim/brawl/internal/domain/entity"
	"github.com/younwookim/brawl/internal/infrastructure/config"
)

// fallbackSolidCode replaces characters the stage cannot map
const fallbackSolidCode = 0

// LoadStage converts a StageConfig into a Level. Unknown characters and the
// missing tail of short rows become solid tiles.
func LoadStage(cfg *config.StageConfig, log *zap.Logger) *entity.Level {
	mapping := cfg.Mapping()

	width := 0
	for _, row := range cfg.Rows {
		if n := len([]rune(row)); n > width {
			width = n
		}
	}

	unknown := make(map[string]int)
	short := 0
	codes := make([][]int, len(cfg.Rows))
	for y, row := range cfg.Rows {
		codes[y] = make([]int, width)
		runes := []rune(row)
		if len(runes) < width {
			short++
		}
		for x := range codes[y] {
			if x >= len(runes) {
				codes[y][x] = fallbackSolidCode
				continue
			}
			ch := string(runes[x])
			code, ok := mapping[ch]
			if !ok {
				unknown[ch]++
				code = fallbackSolidCode
			}
			codes[y][x] = code
		}
	}

	for ch, n := range unknown {
		log.Warn("unknown stage character mapped to solid",
			zap.String("stage", cfg.Name),
			zap.String("char", ch),
			zap.Int("count", n),
		)
	}
	if short > 0 {
		log.Warn("short stage rows padded with solid tiles",
			zap.String("stage", cfg.Name),
			zap.Int("rows", short),
		)
	}

	return &entity.Level{
		ID:     cfg.ID,
		Name:   cfg.Name,
		Grid:   entity.NewTileGrid(codes, cfg.TileSize),
		SpawnX: cfg.PlayerSpawn.X,
		SpawnY: cfg.PlayerSpawn.Y,
	}
}
