package main

import (
	"flag"
	"log"

	tea "github.com/charmbracelet/bubbletea"

	"chaptui/internal/chapters"
	"chaptui/internal/config"
	"chaptui/internal/player"
	"chaptui/internal/session"
	"chaptui/internal/ui"
)

var manifestPath = flag.String("manifest", "chapters.yaml", "Path to the chapter manifest")

func main() {
	flag.Parse()

	manifest, err := config.Load(*manifestPath)
	if err != nil {
		log.Fatalf("Failed to load manifest: %v", err)
	}

	markers := make([]chapters.Marker, len(manifest.Chapters))
	for i, entry := range manifest.Chapters {
		markers[i] = chapters.Marker{Title: entry.Title, Label: entry.Time}
	}
	index, dropped := chapters.Build(markers)
	if dropped > 0 {
		log.Printf("Dropped %d chapter(s) with malformed time labels", dropped)
	}

	engine, err := player.NewEngine(manifest.Media)
	if err != nil {
		log.Fatalf("Failed to open media: %v", err)
	}
	defer engine.Close()

	m := ui.New(ui.Config{
		Title:      manifest.Title,
		Thumbnail:  manifest.Thumbnail,
		Controller: player.NewController(engine),
		Session:    session.NewInteraction(index),
		Events:     engine.Events(),
	})

	p := tea.NewProgram(m, ui.ProgramOptions()...)
	if _, err := p.Run(); err != nil {
		log.Fatalf("Error running program: %v", err)
	}
}
