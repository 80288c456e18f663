package replay

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/brawl/internal/application/system"
)

func TestFrameInput_OmitsIdleKeys(t *testing.T) {
	data, err := json.Marshal(FrameInput{F: 3, A: true})
	require.NoError(t, err)
	assert.JSONEq(t, `{"f":3,"a":true}`, string(data))
}

func TestRecorder_RecordFrame(t *testing.T) {
	r := NewRecorder(42, "jungle")
	r.RecordFrame(system.InputState{Left: true})
	r.RecordFrame(system.InputState{Jump: true, Attack: true})

	require.Equal(t, 2, r.FrameCount())
	data := r.Data()
	assert.Equal(t, Version, data.Version)
	assert.Equal(t, int64(42), data.Seed)
	assert.Equal(t, "jungle", data.Stage)
	assert.Equal(t, FrameInput{F: 1, J: true, A: true}, data.Frames[1])

	r.Stop()
	r.RecordFrame(system.InputState{Right: true})
	assert.False(t, r.IsRecording())
	assert.Equal(t, 2, r.FrameCount(), "stopped recorder ignores frames")
}

func TestRecorder_SaveEmpty(t *testing.T) {
	r := NewRecorder(1, "jungle")
	err := r.Save(filepath.Join(t.TempDir(), "empty.json"))
	assert.ErrorIs(t, err, ErrNoFrames)
}

func TestRecorder_SaveAndLoad(t *testing.T) {
	inputs := []system.InputState{
		{Left: true},
		{Right: true, Throw: true},
		{},
		{Pause: true},
	}
	r := NewRecorder(7, "jungle")
	for _, in := range inputs {
		r.RecordFrame(in)
	}

	path := filepath.Join(t.TempDir(), "run.json")
	require.NoError(t, r.Save(path))

	data, err := LoadReplay(path)
	require.NoError(t, err)

	rp := NewReplayer(*data)
	assert.Equal(t, int64(7), rp.Seed())
	assert.Equal(t, "jungle", rp.Stage())
	assert.Equal(t, len(inputs), rp.TotalFrames())

	for i, want := range inputs {
		got, ok := rp.Next()
		require.True(t, ok)
		assert.Equal(t, want, got, "frame %d", i)
	}
	_, ok := rp.Next()
	assert.False(t, ok)
	assert.Equal(t, len(inputs), rp.CurrentFrame())

	rp.Reset()
	first, ok := rp.Next()
	require.True(t, ok)
	assert.True(t, first.Left)
}

func TestLoadReplay_Errors(t *testing.T) {
	dir := t.TempDir()

	_, err := LoadReplay(filepath.Join(dir, "missing.json"))
	assert.Error(t, err)

	garbage := filepath.Join(dir, "garbage.json")
	require.NoError(t, os.WriteFile(garbage, []byte("{frames"), 0o644))
	_, err = LoadReplay(garbage)
	assert.ErrorContains(t, err, "failed to decode replay")

	gap := filepath.Join(dir, "gap.json")
	require.NoError(t, os.WriteFile(gap, []byte(`{"seed": 1, "frames": [{"f": 0}, {"f": 2, "r": true}]}`), 0o644))
	_, err = LoadReplay(gap)
	assert.ErrorIs(t, err, ErrFrameGap)
}

func TestGenerateFilename(t *testing.T) {
	assert.Regexp(t, `^replay_\d{8}_\d{6}\.json$`, GenerateFilename())
}
