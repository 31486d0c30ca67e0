// Package session tracks transient UI state for the playback timeline:
// the auto-hiding controls overlay and the hover preview over the seek
// bar. It also composes the per-update Snapshot the presentation layer
// renders.
package session

import (
	"time"

	"chaptui/internal/chapters"
	"chaptui/internal/timeline"
)

// HideDelay is how long the controls stay visible after the pointer
// leaves them during playback.
const HideDelay = 2 * time.Second

// Interaction is the transient interaction state machine. Controls
// visibility is derived from pointer and playback transitions, never
// set directly.
//
// The hide countdown is modeled as a generation token: arming returns a
// token, the caller schedules a timer carrying it, and a fired token
// older than the current generation is ignored. Cancelling is bumping
// the generation, so a stale timer can never hide re-engaged controls.
type Interaction struct {
	index *chapters.Index

	playing          bool
	hoveringControls bool
	controlsVisible  bool
	hideArmed        bool
	hideGen          int

	hovering     bool
	hoverTime    time.Duration
	hoverChapter chapters.Chapter
	hoverIndex   int
	hoverOnChap  bool
}

// NewInteraction creates the interaction state machine over the given
// chapter index. Controls start visible.
func NewInteraction(ix *chapters.Index) *Interaction {
	return &Interaction{
		index:           ix,
		controlsVisible: true,
		hoverIndex:      -1,
	}
}

// Index returns the chapter index shared with the compositor.
func (s *Interaction) Index() *chapters.Index {
	return s.index
}

// ControlsVisible reports whether the controls overlay is shown.
func (s *Interaction) ControlsVisible() bool {
	return s.controlsVisible
}

// SetPlaying mirrors the confirmed playback state into the machine.
// Controls never hide while paused, so pausing forces them visible and
// cancels any pending hide.
func (s *Interaction) SetPlaying(playing bool) {
	s.playing = playing
	if !playing {
		s.controlsVisible = true
		s.cancelHide()
	}
}

// PointerEnterControls forces the controls visible and cancels any
// pending hide.
func (s *Interaction) PointerEnterControls() {
	s.hoveringControls = true
	s.controlsVisible = true
	s.cancelHide()
}

// PointerLeaveControls starts the hide countdown if playback is active.
// When armed it returns a token the caller must hand back to
// HideTimerFired when the timer elapses.
func (s *Interaction) PointerLeaveControls() (token int, armed bool) {
	s.hoveringControls = false
	if !s.playing {
		return 0, false
	}
	s.hideGen++
	s.hideArmed = true
	return s.hideGen, true
}

// HideTimerFired handles the countdown elapsing. A token from a
// cancelled or superseded countdown is ignored.
func (s *Interaction) HideTimerFired(token int) {
	if !s.hideArmed || token != s.hideGen {
		return
	}
	s.hideArmed = false
	if s.playing && !s.hoveringControls {
		s.controlsVisible = false
	}
}

func (s *Interaction) cancelHide() {
	s.hideArmed = false
	s.hideGen++
}

// PointerMoveTimeline updates the hover preview from a pointer x offset
// within a seek bar of the given width. Purely derived display state;
// no playback side effects.
func (s *Interaction) PointerMoveTimeline(x, width int, duration time.Duration) {
	s.hovering = true
	s.hoverTime = timeline.PointerXToTime(x, width, duration)
	s.hoverChapter, s.hoverIndex, s.hoverOnChap = s.index.ResolveAt(s.hoverTime, duration)
}

// PointerLeaveTimeline clears the hover preview.
func (s *Interaction) PointerLeaveTimeline() {
	s.hovering = false
	s.hoverTime = 0
	s.hoverChapter = chapters.Chapter{}
	s.hoverIndex = -1
	s.hoverOnChap = false
}

// Hovering reports whether a hover preview is active.
func (s *Interaction) Hovering() bool {
	return s.hovering
}
