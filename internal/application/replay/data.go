package replay

import "github.com/younwookim/brawl/internal/application/system"

// Version is written into every recording
const Version = "2.0"

// FrameInput records input state for a single frame
type FrameInput struct {
	F int  `json:"f"`           // Frame number
	L bool `json:"l,omitempty"` // Left
	R bool `json:"r,omitempty"` // Right
	J bool `json:"j,omitempty"` // Jump
	A bool `json:"a,omitempty"` // Attack
	T bool `json:"t,omitempty"` // Throw
	P bool `json:"p,omitempty"` // Pause
}

// ReplayData contains all data needed to replay a session.
// Seed feeds the engine RNG, so the same frames reproduce the same run.
type ReplayData struct {
	Version   string       `json:"version"`
	Seed      int64        `json:"seed"`
	Stage     string       `json:"stage"`
	StartTime string       `json:"startTime"`
	Frames    []FrameInput `json:"frames"`
}

func toFrame(f int, in system.InputState) FrameInput {
	return FrameInput{
		F: f,
		L: in.Left,
		R: in.Right,
		J: in.Jump,
		A: in.Attack,
		T: in.Throw,
		P: in.Pause,
	}
}

// Input converts a recorded frame back to engine input
func (fi FrameInput) Input() system.InputState {
	return system.InputState{
		Left:   fi.L,
		Right:  fi.R,
		Jump:   fi.J,
		Attack: fi.A,
		Throw:  fi.T,
		Pause:  fi.P,
	}
}
