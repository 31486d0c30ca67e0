// Package chapters maps a continuous playback timeline onto an ordered
// list of named chapter markers.
package chapters

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ErrMalformedTimeLabel is returned when a chapter time label cannot be
// parsed into a timestamp.
var ErrMalformedTimeLabel = errors.New("malformed time label")

// Chapter is a named marker anchored at a point in the timeline. Its
// effective end is the next chapter's start, or the stream duration for
// the last chapter.
type Chapter struct {
	Title string
	Start time.Duration
}

// Marker is a raw title/label pair as supplied by a chapter manifest.
type Marker struct {
	Title string
	Label string
}

// Segment is the [Start, End) interval owned by one chapter.
type Segment struct {
	Start   time.Duration
	End     time.Duration
	Chapter Chapter
}

// ParseTimeLabel parses a colon-separated time label such as "4:00" or
// "1:02:30". Components are ordered major to minor and folded with
// acc = acc*60 + component.
func ParseTimeLabel(label string) (time.Duration, error) {
	var secs float64
	for _, part := range strings.Split(label, ":") {
		v, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
		if err != nil || v < 0 {
			return 0, fmt.Errorf("%w: %q", ErrMalformedTimeLabel, label)
		}
		secs = secs*60 + v
	}
	return time.Duration(secs * float64(time.Second)), nil
}

// Index is an ordered set of chapters over a single timeline.
//
// Chapters must be supplied in non-decreasing Start order. The index
// performs no sorting or validation; unsorted input is a precondition
// violation with undefined resolution results.
type Index struct {
	chapters []Chapter
}

// NewIndex creates an index over the given chapters.
func NewIndex(chs []Chapter) *Index {
	return &Index{chapters: chs}
}

// Build parses raw markers into an Index. A marker whose label fails to
// parse is dropped; the remaining markers are unaffected. Returns the
// number of markers dropped.
func Build(markers []Marker) (*Index, int) {
	chs := make([]Chapter, 0, len(markers))
	dropped := 0
	for _, mk := range markers {
		start, err := ParseTimeLabel(mk.Label)
		if err != nil {
			dropped++
			continue
		}
		chs = append(chs, Chapter{Title: mk.Title, Start: start})
	}
	return NewIndex(chs), dropped
}

// Chapters returns the ordered chapter list.
func (ix *Index) Chapters() []Chapter {
	return ix.chapters
}

// Len returns the number of chapters.
func (ix *Index) Len() int {
	return len(ix.chapters)
}

// ResolveAt returns the chapter owning time t: the last chapter whose
// Start <= t. Resolution is undefined while the duration is unknown
// (<= 0), for an empty chapter list, and for t before the first
// chapter's start; all three report ok == false.
func (ix *Index) ResolveAt(t, duration time.Duration) (Chapter, int, bool) {
	if duration <= 0 || len(ix.chapters) == 0 {
		return Chapter{}, -1, false
	}
	if t < ix.chapters[0].Start {
		return Chapter{}, -1, false
	}
	idx := 0
	for i := 1; i < len(ix.chapters); i++ {
		if ix.chapters[i].Start > t {
			break
		}
		idx = i
	}
	return ix.chapters[idx], idx, true
}

// Segments partitions the timeline into per-chapter intervals. Each
// chapter extends to the next chapter's start, the last to duration.
// Returns nil while the duration is unknown. Segments that would fall
// entirely past the duration are discarded.
func (ix *Index) Segments(duration time.Duration) []Segment {
	if duration <= 0 || len(ix.chapters) == 0 {
		return nil
	}
	segs := make([]Segment, 0, len(ix.chapters))
	for i, ch := range ix.chapters {
		end := duration
		if i+1 < len(ix.chapters) {
			end = ix.chapters[i+1].Start
		}
		if end > duration {
			end = duration
		}
		if ch.Start >= end {
			continue
		}
		segs = append(segs, Segment{Start: ch.Start, End: end, Chapter: ch})
	}
	return segs
}
