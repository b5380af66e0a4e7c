package storage

import "github.com/julianstephens/enduro/internal/models"

type Provider interface {
	// Lifecycle
	Init() error
	Load() error
	Close() error

	// Preferences
	GetPreferences() (models.Preferences, error)
	SavePreferences(models.Preferences) error

	// Events
	AddEvent(models.Event) error
	GetEvent(id string) (models.Event, error)
	// GetAllEvents returns live events in creation order.
	GetAllEvents() ([]models.Event, error)
	GetDeletedEvents() ([]models.Event, error)
	UpdateEvent(models.Event) error
	DeleteEvent(id string) error
	RestoreEvent(id string) error

	// Check-ins are Monday dates (YYYY-MM-DD), returned sorted ascending.
	AddCheckin(week string) error
	DeleteCheckin(week string) error
	GetCheckins() ([]string, error)

	// Utils
	GetConfigPath() string
}
