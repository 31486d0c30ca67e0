package player

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"time"
)

// ErrUnsupportedAudio is returned for WAV files the engine cannot play.
var ErrUnsupportedAudio = errors.New("unsupported audio format")

// wavInfo describes the PCM data section of a RIFF/WAVE file.
type wavInfo struct {
	sampleRate    int
	channels      int
	bitsPerSample int
	dataOffset    int64
	dataSize      int64
}

// byteRate returns the number of PCM bytes per second.
func (w wavInfo) byteRate() int {
	return w.sampleRate * w.channels * w.bitsPerSample / 8
}

// blockAlign returns the size of one sample frame in bytes.
func (w wavInfo) blockAlign() int {
	return w.channels * w.bitsPerSample / 8
}

func (w wavInfo) duration() time.Duration {
	if w.byteRate() == 0 {
		return 0
	}
	return time.Duration(float64(w.dataSize) / float64(w.byteRate()) * float64(time.Second))
}

// timeToOffset converts a position to a byte offset into the data
// section, aligned down to a whole sample frame.
func (w wavInfo) timeToOffset(t time.Duration) int64 {
	if t < 0 {
		t = 0
	}
	off := int64(t.Seconds() * float64(w.byteRate()))
	if align := int64(w.blockAlign()); align > 0 {
		off -= off % align
	}
	if off > w.dataSize {
		off = w.dataSize
	}
	return off
}

// offsetToTime converts a byte offset into the data section to a
// position.
func (w wavInfo) offsetToTime(off int64) time.Duration {
	if off < 0 {
		off = 0
	}
	if w.byteRate() == 0 {
		return 0
	}
	return time.Duration(float64(off) / float64(w.byteRate()) * float64(time.Second))
}

// parseWAV walks the RIFF chunk list and extracts the format and data
// chunk locations. Only uncompressed 16-bit little-endian PCM is
// supported.
func parseWAV(r io.ReadSeeker) (wavInfo, error) {
	var info wavInfo

	var riff [12]byte
	if _, err := io.ReadFull(r, riff[:]); err != nil {
		return info, fmt.Errorf("read RIFF header: %w", err)
	}
	if string(riff[0:4]) != "RIFF" || string(riff[8:12]) != "WAVE" {
		return info, fmt.Errorf("%w: not a RIFF/WAVE file", ErrUnsupportedAudio)
	}

	offset := int64(12)
	haveFmt, haveData := false, false
	for !haveFmt || !haveData {
		var hdr [8]byte
		if _, err := io.ReadFull(r, hdr[:]); err != nil {
			if err == io.EOF || err == io.ErrUnexpectedEOF {
				break
			}
			return info, fmt.Errorf("read chunk header: %w", err)
		}
		offset += 8
		id := string(hdr[0:4])
		size := int64(binary.LittleEndian.Uint32(hdr[4:8]))

		switch id {
		case "fmt ":
			var f [16]byte
			if _, err := io.ReadFull(r, f[:]); err != nil {
				return info, fmt.Errorf("read fmt chunk: %w", err)
			}
			audioFormat := binary.LittleEndian.Uint16(f[0:2])
			info.channels = int(binary.LittleEndian.Uint16(f[2:4]))
			info.sampleRate = int(binary.LittleEndian.Uint32(f[4:8]))
			info.bitsPerSample = int(binary.LittleEndian.Uint16(f[14:16]))
			if audioFormat != 1 || info.bitsPerSample != 16 {
				return info, fmt.Errorf("%w: format %d, %d bits", ErrUnsupportedAudio, audioFormat, info.bitsPerSample)
			}
			haveFmt = true
			if _, err := r.Seek(offset+size+size%2, io.SeekStart); err != nil {
				return info, err
			}
		case "data":
			info.dataOffset = offset
			info.dataSize = size
			haveData = true
			if _, err := r.Seek(offset+size+size%2, io.SeekStart); err != nil {
				return info, err
			}
		default:
			if _, err := r.Seek(offset+size+size%2, io.SeekStart); err != nil {
				return info, err
			}
		}
		offset += size + size%2
	}

	if !haveFmt || !haveData {
		return info, fmt.Errorf("%w: missing fmt or data chunk", ErrUnsupportedAudio)
	}
	if info.sampleRate <= 0 || info.channels <= 0 {
		return info, fmt.Errorf("%w: invalid fmt chunk", ErrUnsupportedAudio)
	}
	return info, nil
}
