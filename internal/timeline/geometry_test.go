package timeline

import (
	"math"
	"testing"
	"time"

	"chaptui/internal/chapters"
)

const tolerance = 1e-9

func TestFormatTime(t *testing.T) {
	tests := []struct {
		d    time.Duration
		want string
	}{
		{0, "0:00"},
		{9 * time.Second, "0:09"},
		{90 * time.Second, "1:30"},
		{600 * time.Second, "10:00"},
		{3750 * time.Second, "1:02:30"},
		{-5 * time.Second, "0:00"},
	}

	for _, tt := range tests {
		if got := FormatTime(tt.d); got != tt.want {
			t.Errorf("FormatTime(%v) = %q, want %q", tt.d, got, tt.want)
		}
	}
}

func TestPointerXToTime(t *testing.T) {
	duration := 300 * time.Second

	tests := []struct {
		name     string
		x, width int
		duration time.Duration
		want     time.Duration
	}{
		{name: "left edge", x: 0, width: 200, duration: duration, want: 0},
		{name: "right edge", x: 200, width: 200, duration: duration, want: duration},
		{name: "midpoint", x: 100, width: 200, duration: duration, want: 150 * time.Second},
		{name: "clamped below", x: -50, width: 200, duration: duration, want: 0},
		{name: "clamped above", x: 500, width: 200, duration: duration, want: duration},
		{name: "unknown duration", x: 100, width: 200, duration: 0, want: 0},
		{name: "zero width", x: 100, width: 0, duration: duration, want: 0},
		{name: "negative width", x: 100, width: -5, duration: duration, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := PointerXToTime(tt.x, tt.width, tt.duration); got != tt.want {
				t.Errorf("PointerXToTime(%d, %d, %v) = %v, want %v", tt.x, tt.width, tt.duration, got, tt.want)
			}
		})
	}
}

func TestTimeToPercent(t *testing.T) {
	duration := 200 * time.Second

	tests := []struct {
		name     string
		t        time.Duration
		duration time.Duration
		want     float64
	}{
		{name: "zero", t: 0, duration: duration, want: 0},
		{name: "half", t: 100 * time.Second, duration: duration, want: 50},
		{name: "full", t: duration, duration: duration, want: 100},
		{name: "past end clamps", t: 500 * time.Second, duration: duration, want: 100},
		{name: "negative clamps", t: -time.Second, duration: duration, want: 0},
		{name: "unknown duration", t: 100 * time.Second, duration: 0, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := TimeToPercent(tt.t, tt.duration); math.Abs(got-tt.want) > tolerance {
				t.Errorf("TimeToPercent(%v, %v) = %v, want %v", tt.t, tt.duration, got, tt.want)
			}
		})
	}
}

// TimeToPercent and PointerXToTime are inverse up to clamping.
func TestPointerTimeRoundTrip(t *testing.T) {
	duration := 300 * time.Second
	width := 160

	for _, x := range []int{-10, 0, 1, 40, 80, 159, 160, 300} {
		frac := float64(x) / float64(width)
		if frac < 0 {
			frac = 0
		}
		if frac > 1 {
			frac = 1
		}
		want := frac * 100

		got := TimeToPercent(PointerXToTime(x, width, duration), duration)
		if math.Abs(got-want) > 1e-6 {
			t.Errorf("x=%d: round trip percent = %v, want %v", x, got, want)
		}
	}
}

func TestSegmentGeometry(t *testing.T) {
	ix := chapters.NewIndex([]chapters.Chapter{
		{Title: "Intro", Start: 0},
		{Title: "Body", Start: 90 * time.Second},
		{Title: "Outro", Start: 240 * time.Second},
	})
	duration := 300 * time.Second

	boxes := SegmentGeometry(ix, duration)
	if len(boxes) != 3 {
		t.Fatalf("len(boxes) = %d, want 3", len(boxes))
	}

	var sum float64
	for _, box := range boxes {
		if box.Width < 0 {
			t.Errorf("segment %q has negative width %v", box.Chapter.Title, box.Width)
		}
		sum += box.Width
	}
	if math.Abs(sum-100) > 1e-6 {
		t.Errorf("widths sum to %v, want 100", sum)
	}

	if boxes[1].Left != 30 {
		t.Errorf("Body left = %v, want 30", boxes[1].Left)
	}
	if math.Abs(boxes[1].Width-50) > tolerance {
		t.Errorf("Body width = %v, want 50", boxes[1].Width)
	}

	if got := SegmentGeometry(ix, 0); got != nil {
		t.Errorf("unknown duration: boxes = %v, want nil", got)
	}
}

func TestBufferedPercent(t *testing.T) {
	if got := BufferedPercent(30*time.Second, 120*time.Second); math.Abs(got-25) > tolerance {
		t.Errorf("BufferedPercent = %v, want 25", got)
	}
	if got := BufferedPercent(30*time.Second, 0); got != 0 {
		t.Errorf("unknown duration: BufferedPercent = %v, want 0", got)
	}
}
