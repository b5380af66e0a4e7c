package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/julianstephens/enduro/internal/constants"
	apperrors "github.com/julianstephens/enduro/internal/errors"
	"github.com/julianstephens/enduro/internal/models"
)

// Document is the on-disk shape of a JSON data file.
type Document struct {
	Version     int                `json:"version"`
	Preferences models.Preferences `json:"preferences"`
	Events      []models.Event     `json:"events"`
	Checkins    []string           `json:"checkins"`
}

// JSONStore keeps all data in a single JSON file that is rewritten on every change.
type JSONStore struct {
	path string
	doc  *Document
}

func NewJSONStore(path string) *JSONStore {
	return &JSONStore{
		path: path,
	}
}

func (s *JSONStore) Init() error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create data directory: %w", err)
	}

	if _, err := os.Stat(s.path); err == nil {
		return fmt.Errorf("storage already initialized at %s", s.path)
	}

	s.doc = &Document{
		Version:     constants.JSONStoreVersion,
		Preferences: models.Preferences{Timezone: constants.DefaultTimezone},
		Events:      []models.Event{},
		Checkins:    []string{},
	}

	return s.save()
}

func (s *JSONStore) Load() error {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return apperrors.ErrNotInitialized
		}
		return fmt.Errorf("failed to read storage: %w", err)
	}

	doc := &Document{}
	if err := json.Unmarshal(data, doc); err != nil {
		return fmt.Errorf("failed to parse storage: %w", err)
	}
	if doc.Version > constants.JSONStoreVersion {
		return fmt.Errorf("data file version (%d) is newer than supported version (%d) - please upgrade enduro", doc.Version, constants.JSONStoreVersion)
	}

	if doc.Events == nil {
		doc.Events = []models.Event{}
	}
	if doc.Checkins == nil {
		doc.Checkins = []string{}
	}
	s.doc = doc

	return nil
}

func (s *JSONStore) Close() error {
	return nil
}

// save writes to a sibling temp file and renames it over the data file.
func (s *JSONStore) save() error {
	data, err := json.MarshalIndent(s.doc, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize storage: %w", err)
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0600); err != nil {
		return fmt.Errorf("failed to write storage: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("failed to write storage: %w", err)
	}

	return nil
}

func (s *JSONStore) GetPreferences() (models.Preferences, error) {
	if s.doc == nil {
		return models.Preferences{}, apperrors.ErrNotLoaded
	}
	return s.doc.Preferences, nil
}

func (s *JSONStore) SavePreferences(prefs models.Preferences) error {
	if s.doc == nil {
		return apperrors.ErrNotLoaded
	}
	s.doc.Preferences = prefs
	return s.save()
}

// indexOf returns the position of the event with id, deleted or not.
func (s *JSONStore) indexOf(id string) int {
	for i, e := range s.doc.Events {
		if e.ID == id {
			return i
		}
	}
	return -1
}

func (s *JSONStore) AddEvent(event models.Event) error {
	if s.doc == nil {
		return apperrors.ErrNotLoaded
	}
	if s.indexOf(event.ID) >= 0 {
		return fmt.Errorf("event already exists: %s", event.ID)
	}

	s.doc.Events = append(s.doc.Events, event)
	return s.save()
}

func (s *JSONStore) GetEvent(id string) (models.Event, error) {
	if s.doc == nil {
		return models.Event{}, apperrors.ErrNotLoaded
	}

	i := s.indexOf(id)
	if i < 0 || s.doc.Events[i].IsDeleted() {
		return models.Event{}, apperrors.NotFound("event", id)
	}
	return s.doc.Events[i], nil
}

func (s *JSONStore) GetAllEvents() ([]models.Event, error) {
	return s.filterEvents(false)
}

func (s *JSONStore) GetDeletedEvents() ([]models.Event, error) {
	return s.filterEvents(true)
}

func (s *JSONStore) filterEvents(deleted bool) ([]models.Event, error) {
	if s.doc == nil {
		return nil, apperrors.ErrNotLoaded
	}

	events := make([]models.Event, 0, len(s.doc.Events))
	for _, e := range s.doc.Events {
		if e.IsDeleted() == deleted {
			events = append(events, e)
		}
	}
	return events, nil
}

func (s *JSONStore) UpdateEvent(event models.Event) error {
	if s.doc == nil {
		return apperrors.ErrNotLoaded
	}

	i := s.indexOf(event.ID)
	if i < 0 || s.doc.Events[i].IsDeleted() {
		return apperrors.NotFound("event", event.ID)
	}

	s.doc.Events[i] = event
	return s.save()
}

func (s *JSONStore) DeleteEvent(id string) error {
	if s.doc == nil {
		return apperrors.ErrNotLoaded
	}

	i := s.indexOf(id)
	if i < 0 || s.doc.Events[i].IsDeleted() {
		return apperrors.NotFound("event", id)
	}

	now := time.Now().UTC().Format(time.RFC3339)
	s.doc.Events[i].DeletedAt = &now
	return s.save()
}

func (s *JSONStore) RestoreEvent(id string) error {
	if s.doc == nil {
		return apperrors.ErrNotLoaded
	}

	i := s.indexOf(id)
	if i < 0 {
		return apperrors.NotFound("event", id)
	}
	if !s.doc.Events[i].IsDeleted() {
		return fmt.Errorf("cannot restore an event that is not deleted: %s", id)
	}

	s.doc.Events[i].DeletedAt = nil
	return s.save()
}

// AddCheckin is a no-op when the week is already checked in.
func (s *JSONStore) AddCheckin(week string) error {
	if s.doc == nil {
		return apperrors.ErrNotLoaded
	}

	for _, c := range s.doc.Checkins {
		if c == week {
			return nil
		}
	}
	s.doc.Checkins = append(s.doc.Checkins, week)
	sort.Strings(s.doc.Checkins)
	return s.save()
}

func (s *JSONStore) DeleteCheckin(week string) error {
	if s.doc == nil {
		return apperrors.ErrNotLoaded
	}

	for i, c := range s.doc.Checkins {
		if c == week {
			s.doc.Checkins = append(s.doc.Checkins[:i], s.doc.Checkins[i+1:]...)
			return s.save()
		}
	}
	return apperrors.NotFound("check-in", week)
}

func (s *JSONStore) GetCheckins() ([]string, error) {
	if s.doc == nil {
		return nil, apperrors.ErrNotLoaded
	}

	checkins := append([]string(nil), s.doc.Checkins...)
	sort.Strings(checkins)
	return checkins, nil
}

// GetConfigPath returns the path to the underlying data file.
//
// JSONStore is not safe for concurrent use, and two enduro processes sharing
// one data file may lose writes.
func (s *JSONStore) GetConfigPath() string {
	return s.path
}
