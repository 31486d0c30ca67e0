package player

import "time"

// State is the controller's view of playback. Duration is 0 until the
// player reports it; position/percent conversions are suppressed until
// then.
type State struct {
	CurrentTime time.Duration
	Duration    time.Duration
	Playing     bool
	Volume      float64
	Muted       bool
	BufferedEnd time.Duration
}

// DurationKnown reports whether the media duration has loaded.
func (s State) DurationKnown() bool {
	return s.Duration > 0
}

// Controller is the facade over the player capability. It issues
// fire-and-forget commands and reconciles the player's events into a
// consistent State.
//
// Every command is a silent no-op while no player is attached; the
// controller tolerates being driven before media metadata has loaded.
type Controller struct {
	player Player
	state  State
}

// NewController creates a controller over the given player. A nil
// player is allowed and makes every command a no-op.
func NewController(p Player) *Controller {
	return &Controller{
		player: p,
		state:  State{Volume: 1.0},
	}
}

// State returns the current playback state.
func (c *Controller) State() State {
	return c.state
}

// TogglePlayback requests the player to flip between playing and
// paused. Playing is not updated here: the player confirms its actual
// state through an EventStateChange, which tolerates play requests
// being deferred or rejected by the runtime.
func (c *Controller) TogglePlayback() {
	if c.player == nil {
		return
	}
	if c.state.Playing {
		c.player.Pause()
	} else {
		// Errors surface as the absence of a state-change event.
		_ = c.player.Play()
	}
}

// Seek requests a jump to pos, clamped to [0, duration]. A no-op while
// the duration is unknown.
func (c *Controller) Seek(pos time.Duration) {
	if c.player == nil || !c.state.DurationKnown() {
		return
	}
	if pos < 0 {
		pos = 0
	}
	if pos > c.state.Duration {
		pos = c.state.Duration
	}
	c.state.CurrentTime = pos
	c.player.SeekTo(pos)
}

// SeekBy requests a jump relative to the current position, with the
// same clamping as Seek.
func (c *Controller) SeekBy(delta time.Duration) {
	c.Seek(c.state.CurrentTime + delta)
}

// SetVolume sets the volume, clamped to [0, 1]. Dragging the volume to
// zero mutes; raising it from zero while muted unmutes. The coupling is
// a deliberate UX contract, not a convenience.
func (c *Controller) SetVolume(vol float64) {
	if c.player == nil {
		return
	}
	if vol < 0 {
		vol = 0
	}
	if vol > 1 {
		vol = 1
	}
	c.state.Volume = vol
	c.player.SetVolume(vol)
	if vol == 0 && !c.state.Muted {
		c.state.Muted = true
		c.player.SetMuted(true)
	} else if vol > 0 && c.state.Muted {
		c.state.Muted = false
		c.player.SetMuted(false)
	}
}

// ToggleMute flips the muted flag without touching the stored volume,
// so unmuting restores the prior level.
func (c *Controller) ToggleMute() {
	if c.player == nil {
		return
	}
	c.state.Muted = !c.state.Muted
	c.player.SetMuted(c.state.Muted)
}

// HandleEvent reconciles one player event into the state.
func (c *Controller) HandleEvent(ev Event) {
	switch ev.Kind {
	case EventTimeUpdate:
		t := ev.Time
		if t < 0 {
			t = 0
		}
		if c.state.DurationKnown() && t > c.state.Duration {
			t = c.state.Duration
		}
		c.state.CurrentTime = t

	case EventDurationKnown:
		// Fires once per media load; later duplicates are ignored.
		if !c.state.DurationKnown() && ev.Duration > 0 {
			c.state.Duration = ev.Duration
		}

	case EventBufferedUpdate:
		if len(ev.Buffered) == 0 {
			c.state.BufferedEnd = 0
			return
		}
		end := ev.Buffered[len(ev.Buffered)-1].End
		if c.state.DurationKnown() && end > c.state.Duration {
			end = c.state.Duration
		}
		c.state.BufferedEnd = end

	case EventStateChange:
		c.state.Playing = ev.Playing
	}
}
