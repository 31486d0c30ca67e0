// Package config loads the chapter manifest describing a media source
// and its chapter markers.
package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ErrNoMedia is returned when the manifest names no media source.
var ErrNoMedia = errors.New("manifest has no media source")

// Manifest describes one media source and its chapters.
type Manifest struct {
	// Media is the path to the audio file to play.
	Media string `yaml:"media"`

	// Title is an optional display title for the stream.
	Title string `yaml:"title,omitempty"`

	// Thumbnail is an optional poster image reference, carried through
	// as inert metadata.
	Thumbnail string `yaml:"thumbnail,omitempty"`

	// Chapters are ordered markers with colon-separated time labels
	// ("M:SS" or "H:MM:SS"). Non-decreasing time order is expected.
	Chapters []ChapterEntry `yaml:"chapters"`
}

// ChapterEntry is one raw chapter marker from the manifest.
type ChapterEntry struct {
	Title string `yaml:"title"`
	Time  string `yaml:"time"`
}

// Load reads and parses a manifest from file.
func Load(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read manifest: %w", err)
	}

	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("failed to parse manifest: %w", err)
	}
	if m.Media == "" {
		return nil, ErrNoMedia
	}
	return &m, nil
}
