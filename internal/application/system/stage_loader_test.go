package system

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/younwookim/brawl/internal/infrastructure/config"
)

func TestLoadStage(t *testing.T) {
	cfg := &config.StageConfig{
		ID:          2,
		Name:        "test",
		TileSize:    16,
		PlayerSpawn: config.PositionConfig{X: 16, Y: 32},
		Rows: []string{
			"#..C",
			"##",
			"#X.X",
		},
	}

	core, logs := observer.New(zapcore.WarnLevel)
	level := LoadStage(cfg, zap.New(core))

	assert.Equal(t, 2, level.ID)
	assert.Equal(t, "test", level.Name)
	assert.Equal(t, 16.0, level.SpawnX)
	assert.Equal(t, 32.0, level.SpawnY)

	require.Equal(t, 4, level.Grid.Width())
	require.Equal(t, 3, level.Grid.Height())
	assert.Equal(t, []int{0, -1, -1, -2}, level.Grid.Codes[0])
	assert.Equal(t, []int{0, 0, 0, 0}, level.Grid.Codes[1], "short row padded solid")
	assert.Equal(t, []int{0, 0, -1, 0}, level.Grid.Codes[2], "unknown character is solid")

	unknown := logs.FilterMessage("unknown stage character mapped to solid").All()
	require.Len(t, unknown, 1)
	assert.Equal(t, "X", unknown[0].ContextMap()["char"])
	assert.Equal(t, int64(2), unknown[0].ContextMap()["count"])
	assert.Equal(t, 1, logs.FilterMessage("short stage rows padded with solid tiles").Len())
}

func TestLoadStage_CustomMapping(t *testing.T) {
	cfg := &config.StageConfig{
		TileSize:    8,
		Rows:        []string{"a b"},
		TileMapping: map[string]int{"a": 5, " ": -1, "b": -3},
	}

	level := LoadStage(cfg, zap.NewNop())
	assert.Equal(t, []int{5, -1, -3}, level.Grid.Codes[0])
	assert.Equal(t, 8, level.Grid.TileSize)
}

func TestLoadStage_SpawnsFromStage(t *testing.T) {
	cfg := &config.StageConfig{
		TileSize: 16,
		Rows:     arena("#.C..M..#"),
	}
	level := LoadStage(cfg, zap.NewNop())

	m := NewEnemyManager(config.Default(), testRNG(), nil, nil)
	m.LoadFromLevel(level, 1)
	assert.Len(t, m.AllEnemies(), 2)
}
