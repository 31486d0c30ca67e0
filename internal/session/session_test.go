package session

import (
	"math"
	"testing"
	"time"

	"chaptui/internal/chapters"
	"chaptui/internal/player"
)

func testIndex() *chapters.Index {
	return chapters.NewIndex([]chapters.Chapter{
		{Title: "Intro", Start: 0},
		{Title: "Body", Start: 90 * time.Second},
		{Title: "Outro", Start: 240 * time.Second},
	})
}

func playingState() player.State {
	return player.State{
		CurrentTime: 100 * time.Second,
		Duration:    300 * time.Second,
		Playing:     true,
		Volume:      1.0,
		BufferedEnd: 150 * time.Second,
	}
}

func TestControlsHideAfterLeaveWhilePlaying(t *testing.T) {
	s := NewInteraction(testIndex())
	s.SetPlaying(true)

	s.PointerEnterControls()
	token, armed := s.PointerLeaveControls()
	if !armed {
		t.Fatal("leave while playing should arm the hide countdown")
	}
	if !s.ControlsVisible() {
		t.Fatal("controls should stay visible until the countdown elapses")
	}

	s.HideTimerFired(token)
	if s.ControlsVisible() {
		t.Error("controls should hide when the countdown elapses uncancelled")
	}
}

func TestReEntryCancelsPendingHide(t *testing.T) {
	s := NewInteraction(testIndex())
	s.SetPlaying(true)

	token, _ := s.PointerLeaveControls()
	s.PointerEnterControls()

	// The stale countdown fires anyway; it must be ignored.
	s.HideTimerFired(token)
	if !s.ControlsVisible() {
		t.Error("a cancelled countdown must not hide the controls")
	}
}

func TestLeaveSupersedesEarlierCountdown(t *testing.T) {
	s := NewInteraction(testIndex())
	s.SetPlaying(true)

	first, _ := s.PointerLeaveControls()
	s.PointerEnterControls()
	second, _ := s.PointerLeaveControls()

	s.HideTimerFired(first)
	if !s.ControlsVisible() {
		t.Fatal("superseded countdown must not hide the controls")
	}
	s.HideTimerFired(second)
	if s.ControlsVisible() {
		t.Error("current countdown should hide the controls")
	}
}

func TestControlsNeverHideWhilePaused(t *testing.T) {
	s := NewInteraction(testIndex())

	if _, armed := s.PointerLeaveControls(); armed {
		t.Error("leave while paused should not arm a countdown")
	}

	// Pausing mid-countdown forces visible and cancels the timer.
	s.SetPlaying(true)
	token, _ := s.PointerLeaveControls()
	s.SetPlaying(false)
	s.HideTimerFired(token)
	if !s.ControlsVisible() {
		t.Error("controls must stay visible while paused")
	}
}

func TestHoverLifecycle(t *testing.T) {
	s := NewInteraction(testIndex())
	duration := 300 * time.Second

	// Pointer at 1/3 of a 300-cell bar probes t=100s, inside "Body".
	s.PointerMoveTimeline(100, 300, duration)
	snap := s.Compose(player.State{Duration: duration})

	if snap.Hover == nil {
		t.Fatal("hover should be set after a pointer move")
	}
	if snap.Hover.Time != 100*time.Second {
		t.Errorf("hover time = %v, want 100s", snap.Hover.Time)
	}
	if math.Abs(snap.Hover.Percent-100.0/3) > 1e-6 {
		t.Errorf("hover percent = %v, want ~33.3", snap.Hover.Percent)
	}
	if snap.Hover.Chapter.Title != "Body" || snap.Hover.ChapterIndex != 1 {
		t.Errorf("hover chapter = %q/%d, want Body/1", snap.Hover.Chapter.Title, snap.Hover.ChapterIndex)
	}

	s.PointerLeaveTimeline()
	snap = s.Compose(player.State{Duration: duration})
	if snap.Hover != nil {
		t.Error("hover should clear on pointer leave")
	}
}

func TestHoverWithUnknownDuration(t *testing.T) {
	s := NewInteraction(testIndex())

	s.PointerMoveTimeline(100, 300, 0)
	snap := s.Compose(player.State{})

	if snap.Hover == nil {
		t.Fatal("hover state itself is independent of duration")
	}
	if snap.Hover.Time != 0 || snap.Hover.Percent != 0 {
		t.Errorf("hover = %v/%v, want zeros while duration unknown", snap.Hover.Time, snap.Hover.Percent)
	}
	if snap.Hover.ChapterIndex != -1 {
		t.Errorf("hover chapter index = %d, want -1", snap.Hover.ChapterIndex)
	}
}

func TestComposeSnapshot(t *testing.T) {
	s := NewInteraction(testIndex())
	snap := s.Compose(playingState())

	// 100s into a 300s stream sits in "Body" (90s..240s).
	if snap.ActiveChapterIndex != 1 || snap.ActiveChapter.Title != "Body" {
		t.Errorf("active chapter = %q/%d, want Body/1", snap.ActiveChapter.Title, snap.ActiveChapterIndex)
	}
	if math.Abs(snap.ProgressPercent-100.0/3) > 1e-6 {
		t.Errorf("progress = %v, want 33.3", snap.ProgressPercent)
	}
	if math.Abs(snap.BufferedPercent-50) > 1e-6 {
		t.Errorf("buffered = %v, want 50", snap.BufferedPercent)
	}
	if len(snap.Segments) != 3 {
		t.Errorf("segments = %d, want 3", len(snap.Segments))
	}
	if !snap.ControlsVisible {
		t.Error("controls start visible")
	}
}

func TestComposeWithUnknownDuration(t *testing.T) {
	s := NewInteraction(testIndex())
	snap := s.Compose(player.State{CurrentTime: 100 * time.Second})

	if snap.Segments != nil {
		t.Errorf("segments = %v, want nil while duration unknown", snap.Segments)
	}
	if snap.ActiveChapterIndex != -1 {
		t.Errorf("active chapter index = %d, want -1", snap.ActiveChapterIndex)
	}
	if snap.ProgressPercent != 0 || snap.BufferedPercent != 0 {
		t.Errorf("percents = %v/%v, want zeros", snap.ProgressPercent, snap.BufferedPercent)
	}
}
