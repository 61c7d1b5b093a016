package core

// RuntimeConfig contains configuration passed to a game session at creation.
type RuntimeConfig struct {
	ScreenW int   // Screen width in characters
	ScreenH int   // Screen height in characters
	FPS     int   // Frame messages per second sent by the platform
	Seed    int64 // RNG seed for deterministic play
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW: 80,
		ScreenH: 24,
		FPS:     60,
		Seed:    0, // 0 means use current time in platform layer
	}
}

// GameState represents the current state of a session as seen by the platform.
type GameState struct {
	Score     int    // Score of the current life
	Best      int    // Best life score in this session
	Remaining int    // Collectibles left on the map
	Lives     int    // Lives lost to capture so far
	Ticks     uint64 // Simulation steps run
	Paused    bool
}

// EventKind identifies something that happened during a frame.
type EventKind int

const (
	EventCollected EventKind = iota
	EventCaptured
	EventCleared
)

// String returns a human-readable name for the event kind.
func (k EventKind) String() string {
	switch k {
	case EventCollected:
		return "Collected"
	case EventCaptured:
		return "Captured"
	case EventCleared:
		return "Cleared"
	default:
		return "Unknown"
	}
}

// Event is emitted by a frame for the platform to react to (score
// submission, status lines). Score is the life score for EventCaptured and
// the running score otherwise.
type Event struct {
	Kind  EventKind
	By    string
	Score int
}

// StepResult is returned by Game.Frame after feeding one frame.
type StepResult struct {
	State  GameState
	Ticks  int // Simulation steps run during the frame
	Events []Event
}
