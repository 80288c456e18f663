package replay

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/younwookim/brawl/internal/application/system"
)

// Replayer feeds recorded input back frame by frame
type Replayer struct {
	data  ReplayData
	frame int
}

// NewReplayer creates a new replayer from replay data
func NewReplayer(data ReplayData) *Replayer {
	return &Replayer{data: data}
}

// ErrFrameGap is returned for recordings whose frame numbers skip or repeat.
// Playback is positional, so a gap would shift every later input.
var ErrFrameGap = errors.New("replay frames are not contiguous")

// LoadReplay loads replay data from a file
func LoadReplay(filename string) (*ReplayData, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer func() { _ = file.Close() }()

	var data ReplayData
	if err := json.NewDecoder(file).Decode(&data); err != nil {
		return nil, fmt.Errorf("failed to decode replay: %w", err)
	}
	for i, fi := range data.Frames {
		if fi.F != i {
			return nil, fmt.Errorf("%s: frame %d recorded as %d: %w", filename, i, fi.F, ErrFrameGap)
		}
	}
	return &data, nil
}

// Next returns the input for the current frame and advances.
// ok is false once every frame has been played.
func (r *Replayer) Next() (input system.InputState, ok bool) {
	if r.frame >= len(r.data.Frames) {
		return system.InputState{}, false
	}
	fi := r.data.Frames[r.frame]
	r.frame++
	return fi.Input(), true
}

// CurrentFrame returns the current frame number
func (r *Replayer) CurrentFrame() int {
	return r.frame
}

// TotalFrames returns the total number of frames
func (r *Replayer) TotalFrames() int {
	return len(r.data.Frames)
}

// Seed returns the seed used for the recording
func (r *Replayer) Seed() int64 {
	return r.data.Seed
}

// Stage returns the stage the recording was made on
func (r *Replayer) Stage() string {
	return r.data.Stage
}

// Reset rewinds to the first frame
func (r *Replayer) Reset() {
	r.frame = 0
}
