// Package clitest builds command contexts over throwaway data files.
package clitest

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/julianstephens/enduro/internal/cli"
	"github.com/julianstephens/enduro/internal/config"
	"github.com/julianstephens/enduro/internal/models"
	"github.com/julianstephens/enduro/internal/storage"
)

// Now is the fixed clock every test context starts with: Saturday 2026-10-17.
var Now = time.Date(2026, 10, 17, 10, 0, 0, 0, time.UTC)

// Env is a command context plus the buffers wired into it.
type Env struct {
	Ctx  *cli.Context
	Out  *bytes.Buffer
	Path string
}

// New initialises a JSON store in a temp dir with UTC preferences.
func New(t *testing.T) *Env {
	t.Helper()
	return NewWithFile(t, "enduro.json")
}

// NewWithFile is New with a chosen data file name; a non-.json name gives SQLite.
func NewWithFile(t *testing.T, name string) *Env {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)

	store := storage.Open(path)
	if err := store.Init(); err != nil {
		t.Fatalf("failed to init store: %v", err)
	}
	if err := store.SavePreferences(models.Preferences{Timezone: "UTC"}); err != nil {
		t.Fatalf("failed to save preferences: %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })

	cfg := config.Default()
	cfg.DataPath = path
	cfg.LogDir = filepath.Join(filepath.Dir(path), "logs")

	out := &bytes.Buffer{}
	ctx := cli.NewContext(store, cfg)
	ctx.Out = out
	ctx.In = strings.NewReader("")
	ctx.Clock = func() time.Time { return Now }

	return &Env{Ctx: ctx, Out: out, Path: path}
}

// Input replaces what commands read from stdin.
func (e *Env) Input(s string) {
	e.Ctx.In = strings.NewReader(s)
}

// Seed stores events as given.
func (e *Env) Seed(t *testing.T, events ...models.Event) {
	t.Helper()
	for _, ev := range events {
		if err := e.Ctx.Store.AddEvent(ev); err != nil {
			t.Fatalf("failed to seed event %s: %v", ev.ID, err)
		}
	}
}

// Event fetches a stored event.
func (e *Env) Event(t *testing.T, id string) models.Event {
	t.Helper()
	ev, err := e.Ctx.Store.GetEvent(id)
	if err != nil {
		t.Fatalf("failed to get event %s: %v", id, err)
	}
	return ev
}

// Events returns all live events.
func (e *Env) Events(t *testing.T) []models.Event {
	t.Helper()
	events, err := e.Ctx.Store.GetAllEvents()
	if err != nil {
		t.Fatalf("failed to list events: %v", err)
	}
	return events
}

// Output returns and clears what commands printed.
func (e *Env) Output() string {
	s := e.Out.String()
	e.Out.Reset()
	return s
}

// Completed is a finished event fixture.
func Completed(id, name, date string, distance, elevation float64, difficulty int) models.Event {
	return models.Event{
		ID:          id,
		Name:        name,
		Type:        models.EventTypeMountain,
		Status:      models.EventStatusCompleted,
		Distance:    models.Float(distance),
		Elevation:   models.Float(elevation),
		Difficulty:  difficulty,
		Completions: 1,
		Date:        date,
	}
}

// Wishlist is an event someone would like to run.
func Wishlist(id, name string, distance float64, difficulty int) models.Event {
	return models.Event{
		ID:          id,
		Name:        name,
		Type:        models.EventTypeUltra,
		Status:      models.EventStatusWishlist,
		Distance:    models.Float(distance),
		Difficulty:  difficulty,
		Completions: 1,
	}
}
