package entity

// EntityID is a unique identifier for an actor within one loaded level.
// 0 is reserved for the player.
type EntityID uint32

// PlayerID is the owner ID used for anything the player creates
const PlayerID EntityID = 0

// SolidCodeLimit is the exclusive upper bound of solid tile codes.
// Codes in [0, SolidCodeLimit) block movement, every other code is passable.
const SolidCodeLimit = 96

// CodeEmpty is the conventional passable code for open air
const CodeEmpty = -1

// Spawn sentinel codes occupy [SentinelMin, SentinelMax]
const (
	SentinelMin = -9
	SentinelMax = -2
)

// IsSolidCode reports whether a tile code blocks movement
func IsSolidCode(code int) bool {
	return code >= 0 && code < SolidCodeLimit
}

// IsSentinelCode reports whether a tile code is reserved for spawn markers
func IsSentinelCode(code int) bool {
	return code >= SentinelMin && code <= SentinelMax
}

// TileGrid is the per-level grid of tile codes, indexed [row][column].
// It is owned by the level provider and only read by the engine.
type TileGrid struct {
	Codes    [][]int
	TileSize int
}

// NewTileGrid creates a grid from row-major codes
func NewTileGrid(codes [][]int, tileSize int) *TileGrid {
	return &TileGrid{Codes: codes, TileSize: tileSize}
}

// Valid reports whether the grid can be queried at all.
// An invalid grid is treated as fully solid.
func (g *TileGrid) Valid() bool {
	return g != nil && g.TileSize > 0 && len(g.Codes) > 0 && len(g.Codes[0]) > 0
}

// Width returns the number of columns (taken from the first row)
func (g *TileGrid) Width() int {
	if !g.Valid() {
		return 0
	}
	return len(g.Codes[0])
}

// Height returns the number of rows
func (g *TileGrid) Height() int {
	if !g.Valid() {
		return 0
	}
	return len(g.Codes)
}

// PixelWidth returns the level width in world units
func (g *TileGrid) PixelWidth() float64 {
	if !g.Valid() {
		return 0
	}
	return float64(g.Width() * g.TileSize)
}

// PixelHeight returns the level height in world units
func (g *TileGrid) PixelHeight() float64 {
	if !g.Valid() {
		return 0
	}
	return float64(g.Height() * g.TileSize)
}

// Code returns the tile code at the given tile coordinates.
// ok is false outside the grid, including past the end of a short row.
func (g *TileGrid) Code(tx, ty int) (code int, ok bool) {
	if !g.Valid() || ty < 0 || ty >= len(g.Codes) || tx < 0 || tx >= len(g.Codes[ty]) {
		return 0, false
	}
	return g.Codes[ty][tx], true
}
