package components

// Mode is the match-level state.
type Mode uint8

const (
	ModePlaying  Mode = iota // Normal rally flow
	ModeGameOver             // A side reached the winning score; ball bounces in demo mode
)

func (m Mode) String() string {
	switch m {
	case ModePlaying:
		return "playing"
	case ModeGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// ServeState tracks whether the ball is in play.
type ServeState uint8

const (
	ServeLive           ServeState = iota // Ball in play, collision engine active
	ServeRespawnPending                   // Ball hidden off-board, countdown running
)

func (s ServeState) String() string {
	switch s {
	case ServeLive:
		return "live"
	case ServeRespawnPending:
		return "respawn_pending"
	default:
		return "unknown"
	}
}

// Match is the complete mutable state of one game.
// It is owned by a single frame loop and passed explicitly to every system.
type Match struct {
	Left  Paddle
	Right Paddle
	Ball  Ball

	Serve            ServeState
	RespawnRemaining float64 // ms left before the ball is placed
	LeftServes       bool

	Mode   Mode
	Winner Side // Valid only in ModeGameOver

	// Rally bookkeeping for telemetry
	RallyHits int     // Paddle contacts since the ball was placed
	RallyMS   float64 // Live time since the ball was placed
}

// Paddle returns the paddle for the given side.
func (m *Match) Paddle(s Side) *Paddle {
	if s == SideLeft {
		return &m.Left
	}
	return &m.Right
}

// Server returns the side that owns the next serve.
func (m *Match) Server() Side {
	if m.LeftServes {
		return SideLeft
	}
	return SideRight
}

// Live reports whether the ball is in play.
func (m *Match) Live() bool {
	return m.Serve == ServeLive
}
