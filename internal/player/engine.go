package player

import (
	"context"
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/ebitengine/oto/v3"
)

const (
	// engineTickInterval is how often the engine reports position and
	// buffered-range updates.
	engineTickInterval = 200 * time.Millisecond

	// engineEventBuffer is the event channel capacity. Events are
	// dropped rather than blocking the render path when full.
	engineEventBuffer = 16
)

// trackingReader wraps the PCM data section and records the furthest
// byte the output has pulled, which is the end of the buffered range.
type trackingReader struct {
	mu  sync.Mutex
	src *io.SectionReader
	off int64
	max int64
}

func (t *trackingReader) Read(p []byte) (int, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	n, err := t.src.Read(p)
	t.off += int64(n)
	if t.off > t.max {
		t.max = t.off
	}
	return n, err
}

func (t *trackingReader) Seek(offset int64, whence int) (int64, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	n, err := t.src.Seek(offset, whence)
	if err == nil {
		t.off = n
		if t.off > t.max {
			t.max = t.off
		}
	}
	return n, err
}

// Offset returns the current read position into the data section.
func (t *trackingReader) Offset() int64 {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.off
}

// MaxOffset returns the furthest read position seen.
func (t *trackingReader) MaxOffset() int64 {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.max
}

// Engine plays a local WAV file through oto and reports position,
// buffered range, and state changes on its event channel.
type Engine struct {
	mu   sync.Mutex
	file *os.File
	info wavInfo
	out  *oto.Player
	src  *trackingReader

	volume float64
	muted  bool

	events chan Event

	ctx    context.Context
	cancel context.CancelFunc
	tickWg sync.WaitGroup
}

// NewEngine opens the WAV file at path and prepares an output player.
// Playback does not start until Play.
func NewEngine(path string) (*Engine, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open media: %w", err)
	}

	info, err := parseWAV(f)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("parse media: %w", err)
	}

	otoCtx, ready, err := oto.NewContext(&oto.NewContextOptions{
		SampleRate:   info.sampleRate,
		ChannelCount: info.channels,
		Format:       oto.FormatSignedInt16LE,
	})
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("open audio output: %w", err)
	}
	<-ready

	src := &trackingReader{src: io.NewSectionReader(f, info.dataOffset, info.dataSize)}

	ctx, cancel := context.WithCancel(context.Background())
	e := &Engine{
		file:   f,
		info:   info,
		out:    otoCtx.NewPlayer(src),
		src:    src,
		volume: 1.0,
		events: make(chan Event, engineEventBuffer),
		ctx:    ctx,
		cancel: cancel,
	}

	e.tickWg.Add(1)
	go e.tickLoop()

	return e, nil
}

// Play starts or resumes playback. The resulting state is reported as
// an EventStateChange reflecting what the output actually did.
func (e *Engine) Play() error {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.out.Play()
	e.emit(Event{Kind: EventStateChange, Playing: e.out.IsPlaying()})
	return nil
}

// Pause pauses playback.
func (e *Engine) Pause() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.out.Pause()
	e.emit(Event{Kind: EventStateChange, Playing: e.out.IsPlaying()})
}

// SeekTo jumps to the given position, aligned to a sample frame.
func (e *Engine) SeekTo(pos time.Duration) {
	e.mu.Lock()
	defer e.mu.Unlock()
	off := e.info.timeToOffset(pos)
	if _, err := e.out.Seek(off, io.SeekStart); err != nil {
		// Ignored request; the next tick reports the real position.
		return
	}
	e.emit(Event{Kind: EventTimeUpdate, Time: e.info.offsetToTime(off)})
}

// SetVolume sets the output volume. While muted only the stored value
// changes; the new level applies on unmute.
func (e *Engine) SetVolume(vol float64) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if vol < 0 {
		vol = 0
	}
	if vol > 1 {
		vol = 1
	}
	e.volume = vol
	if !e.muted {
		e.out.SetVolume(vol)
	}
}

// SetMuted silences the output without touching the stored volume.
func (e *Engine) SetMuted(muted bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.muted = muted
	if muted {
		e.out.SetVolume(0)
	} else {
		e.out.SetVolume(e.volume)
	}
}

// Events returns the engine's event stream.
func (e *Engine) Events() <-chan Event {
	return e.events
}

// position derives the playback position from how far into the data
// section the output has read, minus what it has pulled but not yet
// played.
func (e *Engine) position() time.Duration {
	played := e.src.Offset() - int64(e.out.BufferedSize())
	if played < 0 {
		played = 0
	}
	return e.info.offsetToTime(played)
}

// tickEvents builds the report for one tick. Position and buffered
// range are reported while playing and on a state flip; the confirmed
// playing state is reported every tick, not only on flips, so a state
// change dropped on a full channel heals on the next tick.
func tickEvents(playing, lastPlaying bool, pos, buffered time.Duration) []Event {
	var evs []Event
	if playing || playing != lastPlaying {
		evs = append(evs,
			Event{Kind: EventTimeUpdate, Time: pos},
			Event{Kind: EventBufferedUpdate, Buffered: []Range{{Start: 0, End: buffered}}},
		)
	}
	return append(evs, Event{Kind: EventStateChange, Playing: playing})
}

// tickLoop periodically reports position, buffered range, and the
// playing state (including the natural end of the stream).
func (e *Engine) tickLoop() {
	defer e.tickWg.Done()

	// Metadata is already parsed by construction time; report it once.
	e.emit(Event{Kind: EventDurationKnown, Duration: e.info.duration()})

	ticker := time.NewTicker(engineTickInterval)
	defer ticker.Stop()

	lastPlaying := false
	for {
		select {
		case <-e.ctx.Done():
			return
		case <-ticker.C:
			e.mu.Lock()
			playing := e.out.IsPlaying()
			pos := e.position()
			buffered := e.info.offsetToTime(e.src.MaxOffset())
			for _, ev := range tickEvents(playing, lastPlaying, pos, buffered) {
				e.emit(ev)
			}
			lastPlaying = playing
			e.mu.Unlock()
		}
	}
}

// emit sends an event without blocking, dropping it if the channel is
// full.
func (e *Engine) emit(ev Event) {
	select {
	case e.events <- ev:
	default:
	}
}

// Close stops the tick loop, closes the event channel, and releases the
// output and the media file.
func (e *Engine) Close() error {
	e.cancel()
	e.tickWg.Wait()
	close(e.events)

	e.mu.Lock()
	defer e.mu.Unlock()
	err := e.out.Close()
	if cerr := e.file.Close(); err == nil {
		err = cerr
	}
	return err
}

var _ Player = (*Engine)(nil)
