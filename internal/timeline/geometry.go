// Package timeline provides pure geometry and formatting helpers for
// rendering a playback timeline: pointer-to-time mapping, percentage
// offsets, and chapter segment boxes.
//
// Every function treats a duration <= 0 as "not yet known" and degrades
// to a zero result instead of dividing by it.
package timeline

import (
	"fmt"
	"time"

	"chaptui/internal/chapters"
)

// SegmentBox is the rendered geometry of one chapter segment, as
// percentage offsets into the full bar width.
type SegmentBox struct {
	Left    float64
	Width   float64
	Chapter chapters.Chapter
}

// FormatTime formats a position as M:SS, or H:MM:SS at an hour and up.
func FormatTime(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	total := int(d.Seconds())
	h := total / 3600
	m := total / 60 % 60
	s := total % 60
	if h > 0 {
		return fmt.Sprintf("%d:%02d:%02d", h, m, s)
	}
	return fmt.Sprintf("%d:%02d", m, s)
}

// PointerXToTime maps a pointer x offset within a bar of the given
// width onto a playback time. The offset is clamped to the bar, so any
// x maps into [0, duration]. Returns 0 while the duration is unknown or
// the width is not positive.
func PointerXToTime(x, width int, duration time.Duration) time.Duration {
	if duration <= 0 || width <= 0 {
		return 0
	}
	frac := float64(x) / float64(width)
	if frac < 0 {
		frac = 0
	}
	if frac > 1 {
		frac = 1
	}
	return time.Duration(frac * float64(duration))
}

// TimeToPercent maps a playback time onto a [0, 100] percentage of the
// duration. Returns 0 while the duration is unknown.
func TimeToPercent(t, duration time.Duration) float64 {
	if duration <= 0 {
		return 0
	}
	frac := float64(t) / float64(duration)
	if frac < 0 {
		frac = 0
	}
	if frac > 1 {
		frac = 1
	}
	return frac * 100
}

// BufferedPercent maps the end of the buffered range onto a [0, 100]
// percentage of the duration.
func BufferedPercent(bufferedEnd, duration time.Duration) float64 {
	return TimeToPercent(bufferedEnd, duration)
}

// SegmentGeometry converts the index's segment partition into
// percentage boxes for a chapter-ruled progress bar. For a well-ordered
// chapter list starting at zero the widths sum to 100 within floating
// tolerance. Returns nil while the duration is unknown.
func SegmentGeometry(ix *chapters.Index, duration time.Duration) []SegmentBox {
	segs := ix.Segments(duration)
	if segs == nil {
		return nil
	}
	boxes := make([]SegmentBox, len(segs))
	for i, seg := range segs {
		left := TimeToPercent(seg.Start, duration)
		boxes[i] = SegmentBox{
			Left:    left,
			Width:   TimeToPercent(seg.End, duration) - left,
			Chapter: seg.Chapter,
		}
	}
	return boxes
}
