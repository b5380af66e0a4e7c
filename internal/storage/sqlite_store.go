package storage

import (
	"database/sql"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"time"

	_ "modernc.org/sqlite"

	"github.com/julianstephens/enduro/internal/constants"
	apperrors "github.com/julianstephens/enduro/internal/errors"
	"github.com/julianstephens/enduro/internal/logger"
	"github.com/julianstephens/enduro/internal/migration"
	"github.com/julianstephens/enduro/internal/models"
	"github.com/julianstephens/enduro/migrations"
)

type SQLiteStore struct {
	path string
	db   *sql.DB
}

func NewSQLiteStore(path string) *SQLiteStore {
	return &SQLiteStore{
		path: path,
	}
}

func (s *SQLiteStore) open() error {
	db, err := sql.Open("sqlite", s.path+"?_pragma=busy_timeout(5000)")
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	// One process, one writer.
	db.SetMaxOpenConns(1)
	s.db = db
	return nil
}

func (s *SQLiteStore) Init() error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create data directory: %w", err)
	}

	if s.db == nil {
		if err := s.open(); err != nil {
			return err
		}
	}

	if _, err := s.Migrate(); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	var count int
	if err := s.db.QueryRow("SELECT COUNT(*) FROM preferences").Scan(&count); err != nil {
		return err
	}
	if count == 0 {
		if err := s.SavePreferences(models.Preferences{Timezone: constants.DefaultTimezone}); err != nil {
			return fmt.Errorf("failed to save default preferences: %w", err)
		}
	}

	return nil
}

func (s *SQLiteStore) Load() error {
	if s.db != nil {
		return nil
	}

	if _, err := os.Stat(s.path); os.IsNotExist(err) {
		return apperrors.ErrNotInitialized
	}
	if err := s.open(); err != nil {
		return err
	}

	runner, err := s.runner()
	if err != nil {
		return err
	}
	pending, err := runner.Pending()
	if err != nil {
		return err
	}
	if len(pending) > 0 {
		return fmt.Errorf("database schema is out of date (%d pending migration(s)), run 'enduro migrate'", len(pending))
	}

	return nil
}

func (s *SQLiteStore) Close() error {
	if s.db == nil {
		return nil
	}
	err := s.db.Close()
	s.db = nil
	return err
}

func (s *SQLiteStore) runner() (*migration.Runner, error) {
	sub, err := fs.Sub(migrations.FS, "sqlite")
	if err != nil {
		return nil, fmt.Errorf("failed to access sqlite migrations: %w", err)
	}
	return migration.NewRunner(s.db, sub), nil
}

// Migrate applies any pending embedded migrations and returns how many ran.
func (s *SQLiteStore) Migrate() (int, error) {
	if s.db == nil {
		if _, err := os.Stat(s.path); os.IsNotExist(err) {
			return 0, apperrors.ErrNotInitialized
		}
		if err := s.open(); err != nil {
			return 0, err
		}
	}

	runner, err := s.runner()
	if err != nil {
		return 0, err
	}
	return runner.Apply()
}

// SchemaVersion reports the applied and latest known schema versions.
func (s *SQLiteStore) SchemaVersion() (current, latest int, err error) {
	if s.db == nil {
		return 0, 0, apperrors.ErrNotLoaded
	}
	runner, err := s.runner()
	if err != nil {
		return 0, 0, err
	}
	if current, err = runner.CurrentVersion(); err != nil {
		return 0, 0, err
	}
	latest, err = runner.LatestVersion()
	return current, latest, err
}

const (
	prefBodyWeight = "body_weight"
	prefTimezone   = "timezone"
)

func (s *SQLiteStore) GetPreferences() (models.Preferences, error) {
	if s.db == nil {
		return models.Preferences{}, apperrors.ErrNotLoaded
	}

	rows, err := s.db.Query("SELECT key, value FROM preferences")
	if err != nil {
		return models.Preferences{}, err
	}
	defer rows.Close()

	prefs := models.Preferences{}
	for rows.Next() {
		var key, value string
		if err := rows.Scan(&key, &value); err != nil {
			return models.Preferences{}, err
		}
		switch key {
		case prefBodyWeight:
			w, err := strconv.ParseFloat(value, 64)
			if err != nil {
				return models.Preferences{}, fmt.Errorf("parsing %s: %w", prefBodyWeight, err)
			}
			prefs.BodyWeight = &w
		case prefTimezone:
			prefs.Timezone = value
		default:
			logger.Warn("Ignoring unknown preference", "key", key)
		}
	}

	return prefs, rows.Err()
}

func (s *SQLiteStore) SavePreferences(prefs models.Preferences) error {
	if s.db == nil {
		return apperrors.ErrNotLoaded
	}

	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	upsert := "INSERT OR REPLACE INTO preferences (key, value) VALUES (?, ?)"
	if prefs.BodyWeight != nil {
		if _, err := tx.Exec(upsert, prefBodyWeight, strconv.FormatFloat(*prefs.BodyWeight, 'f', -1, 64)); err != nil {
			return err
		}
	} else if _, err := tx.Exec("DELETE FROM preferences WHERE key = ?", prefBodyWeight); err != nil {
		return err
	}
	if _, err := tx.Exec(upsert, prefTimezone, prefs.Timezone); err != nil {
		return err
	}

	return tx.Commit()
}

func (s *SQLiteStore) AddCheckin(week string) error {
	if s.db == nil {
		return apperrors.ErrNotLoaded
	}
	_, err := s.db.Exec("INSERT OR IGNORE INTO checkins (week, created_at) VALUES (?, ?)",
		week, time.Now().UTC().Format(time.RFC3339))
	return err
}

func (s *SQLiteStore) DeleteCheckin(week string) error {
	if s.db == nil {
		return apperrors.ErrNotLoaded
	}

	res, err := s.db.Exec("DELETE FROM checkins WHERE week = ?", week)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err != nil {
		return err
	} else if n == 0 {
		return apperrors.NotFound("check-in", week)
	}
	return nil
}

func (s *SQLiteStore) GetCheckins() ([]string, error) {
	if s.db == nil {
		return nil, apperrors.ErrNotLoaded
	}

	rows, err := s.db.Query("SELECT week FROM checkins ORDER BY week")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var weeks []string
	for rows.Next() {
		var week string
		if err := rows.Scan(&week); err != nil {
			return nil, err
		}
		weeks = append(weeks, week)
	}
	return weeks, rows.Err()
}

func (s *SQLiteStore) GetConfigPath() string {
	return s.path
}
