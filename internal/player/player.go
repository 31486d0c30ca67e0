// Package player provides the playback capability interface, a
// controller that reconciles player events into playback state, and an
// oto-backed WAV engine.
package player

import "time"

// EventKind identifies a player event.
type EventKind int

const (
	// EventTimeUpdate reports the current playback position.
	EventTimeUpdate EventKind = iota
	// EventDurationKnown reports the total duration, once per load.
	EventDurationKnown
	// EventBufferedUpdate reports the buffered ranges of the stream.
	EventBufferedUpdate
	// EventStateChange reports the player's actual playing/paused state.
	EventStateChange
)

// String returns a human-readable name for the event kind.
func (k EventKind) String() string {
	switch k {
	case EventTimeUpdate:
		return "TimeUpdate"
	case EventDurationKnown:
		return "DurationKnown"
	case EventBufferedUpdate:
		return "BufferedUpdate"
	case EventStateChange:
		return "StateChange"
	default:
		return "Unknown"
	}
}

// Range is a contiguous buffered span of the stream.
type Range struct {
	Start time.Duration
	End   time.Duration
}

// Event is one player notification. Only the fields relevant to Kind
// are populated.
type Event struct {
	Kind     EventKind
	Time     time.Duration // EventTimeUpdate
	Duration time.Duration // EventDurationKnown
	Buffered []Range       // EventBufferedUpdate, ordered
	Playing  bool          // EventStateChange
}

// Player is the playback capability consumed by the controller.
//
// Commands are fire-and-forget requests: their effects are observed
// through subsequent events on the Events channel, never synchronously.
// A Play request in particular may be deferred or rejected by the
// runtime; the resulting state is confirmed only by an EventStateChange.
type Player interface {
	// Play requests playback to start or resume.
	Play() error
	// Pause requests playback to pause.
	Pause()
	// SeekTo requests a jump to the given position.
	SeekTo(pos time.Duration)
	// SetVolume sets the output volume (0.0 - 1.0).
	SetVolume(vol float64)
	// SetMuted silences output without changing the volume setting.
	SetMuted(muted bool)
	// Events returns the event stream. Closed by Close.
	Events() <-chan Event
	// Close releases all resources.
	Close() error
}
