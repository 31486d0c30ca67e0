package session

import (
	"time"

	"chaptui/internal/chapters"
	"chaptui/internal/player"
	"chaptui/internal/timeline"
)

// Hover is the derived hover preview: the probed time, its percentage
// offset into the bar, and the chapter under the pointer if any.
type Hover struct {
	Time         time.Duration
	Percent      float64
	Chapter      chapters.Chapter
	ChapterIndex int // -1 when the probe falls before the first chapter
}

// Snapshot is the single consistent set of derived values the
// presentation layer renders per update cycle.
type Snapshot struct {
	CurrentTime time.Duration
	Duration    time.Duration
	Playing     bool
	Volume      float64
	Muted       bool

	ProgressPercent float64
	BufferedPercent float64
	Segments        []timeline.SegmentBox

	// ActiveChapterIndex is -1 while no chapter owns the current time;
	// ActiveChapter is the zero value then.
	ActiveChapterIndex int
	ActiveChapter      chapters.Chapter

	ControlsVisible bool
	Hover           *Hover
}

// Compose combines playback and interaction state into one immutable
// snapshot. Active-chapter resolution shares Index.ResolveAt with the
// hover path so the two can never diverge.
func (s *Interaction) Compose(ps player.State) Snapshot {
	snap := Snapshot{
		CurrentTime:        ps.CurrentTime,
		Duration:           ps.Duration,
		Playing:            ps.Playing,
		Volume:             ps.Volume,
		Muted:              ps.Muted,
		ProgressPercent:    timeline.TimeToPercent(ps.CurrentTime, ps.Duration),
		BufferedPercent:    timeline.BufferedPercent(ps.BufferedEnd, ps.Duration),
		Segments:           timeline.SegmentGeometry(s.index, ps.Duration),
		ActiveChapterIndex: -1,
		ControlsVisible:    s.controlsVisible,
	}

	if ch, idx, ok := s.index.ResolveAt(ps.CurrentTime, ps.Duration); ok {
		snap.ActiveChapterIndex = idx
		snap.ActiveChapter = ch
	}

	if s.hovering {
		h := &Hover{
			Time:         s.hoverTime,
			Percent:      timeline.TimeToPercent(s.hoverTime, ps.Duration),
			ChapterIndex: -1,
		}
		if s.hoverOnChap {
			h.Chapter = s.hoverChapter
			h.ChapterIndex = s.hoverIndex
		}
		snap.Hover = h
	}

	return snap
}
