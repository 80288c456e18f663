package config

// StageConfig is the root config for stage JSON files.
// Rows are one string per tile row, one character per tile.
type StageConfig struct {
	ID          int            `json:"id"`
	Name        string         `json:"name"`
	TileSize    int            `json:"tileSize"`
	PlayerSpawn PositionConfig `json:"playerSpawn"`
	Rows        []string       `json:"rows"`
	// TileMapping maps a row character to a tile code.
	// Missing mapping falls back to DefaultTileMapping.
	TileMapping map[string]int `json:"tileMapping"`
}

type PositionConfig struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// DefaultTileMapping is the character set used by the bundled stages
func DefaultTileMapping() map[string]int {
	return map[string]int{
		".": -1, // open air
		"#": 0,  // ground
		"=": 1,  // platform block
		"C": -2, // crab
		"B": -3, // boar
		"M": -4, // monkey
		"P": -5, // panther
		"G": -6, // gorilla
	}
}

// Mapping returns the stage's tile mapping, or the default one
func (s *StageConfig) Mapping() map[string]int {
	if len(s.TileMapping) == 0 {
		return DefaultTileMapping()
	}
	return s.TileMapping
}
