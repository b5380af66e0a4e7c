package storage

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/julianstephens/enduro/internal/models"
)

// Open picks the backend from the file extension: .json files use JSONStore,
// anything else is treated as a SQLite database. The store is not loaded.
func Open(path string) Provider {
	if strings.EqualFold(filepath.Ext(path), ".json") {
		return NewJSONStore(path)
	}
	return NewSQLiteStore(path)
}

// Backend names the storage backend behind p.
func Backend(p Provider) string {
	switch p.(type) {
	case *JSONStore:
		return "json"
	case *SQLiteStore:
		return "sqlite"
	default:
		return "unknown"
	}
}

// LoadState reads everything the engine works from into one AppState.
func LoadState(p Provider) (*models.AppState, error) {
	prefs, err := p.GetPreferences()
	if err != nil {
		return nil, fmt.Errorf("failed to load preferences: %w", err)
	}
	events, err := p.GetAllEvents()
	if err != nil {
		return nil, fmt.Errorf("failed to load events: %w", err)
	}
	checkins, err := p.GetCheckins()
	if err != nil {
		return nil, fmt.Errorf("failed to load check-ins: %w", err)
	}

	if events == nil {
		events = []models.Event{}
	}
	if checkins == nil {
		checkins = []string{}
	}

	return &models.AppState{
		Events:      events,
		Checkins:    checkins,
		Preferences: prefs,
	}, nil
}
