package system

import (
	"go.uber.org/zap"

	"github.com/younwookim/brawl/internal/domain/entity"
)

// SpawnPoint is a sentinel tile found in the grid. X/Y are the tile's
// top-left corner in world units.
type SpawnPoint struct {
	X, Y      float64
	Code      int
	Archetype entity.Archetype
}

var sentinelArchetypes = map[int]entity.Archetype{
	-2: entity.ArchetypeCrab,
	-3: entity.ArchetypeBoar,
	-4: entity.ArchetypeMonkey,
	-5: entity.ArchetypePanther,
	-6: entity.ArchetypeGorilla,
}

// ArchetypeForCode maps a sentinel code to the archetype it spawns
func ArchetypeForCode(code int) (entity.Archetype, bool) {
	a, ok := sentinelArchetypes[code]
	return a, ok
}

// ExtractSpawnPoints scans the grid row-major for sentinel codes.
// Reserved sentinels with no archetype are logged and dropped.
func ExtractSpawnPoints(grid *entity.TileGrid, log *zap.Logger) []SpawnPoint {
	if !grid.Valid() {
		return nil
	}

	ts := float64(grid.TileSize)
	var points []SpawnPoint
	for ty, row := range grid.Codes {
		for tx, code := range row {
			if !entity.IsSentinelCode(code) {
				continue
			}
			a, ok := ArchetypeForCode(code)
			if !ok {
				log.Warn("unknown spawn sentinel dropped",
					zap.Int("code", code),
					zap.Int("tileX", tx),
					zap.Int("tileY", ty),
				)
				continue
			}
			points = append(points, SpawnPoint{
				X:         float64(tx) * ts,
				Y:         float64(ty) * ts,
				Code:      code,
				Archetype: a,
			})
		}
	}
	return points
}
