package storage

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	apperrors "github.com/julianstephens/enduro/internal/errors"
	"github.com/julianstephens/enduro/internal/models"
)

const eventColumns = `id, name, type, status, distance, elevation, difficulty, finish_time, completions,
	event_date, location, notes, training_plan, training_weeks, phase, week, progress,
	created_at, updated_at, deleted_at`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanEvent(row rowScanner) (models.Event, error) {
	var e models.Event
	var distance, elevation sql.NullFloat64
	var plan, weeks, deletedAt sql.NullString
	var createdAt, updatedAt string

	err := row.Scan(
		&e.ID, &e.Name, &e.Type, &e.Status, &distance, &elevation, &e.Difficulty, &e.Time, &e.Completions,
		&e.Date, &e.Location, &e.Notes, &plan, &weeks, &e.Phase, &e.Week, &e.Progress,
		&createdAt, &updatedAt, &deletedAt,
	)
	if err != nil {
		return models.Event{}, err
	}

	if distance.Valid {
		e.Distance = models.Float(distance.Float64)
	}
	if elevation.Valid {
		e.Elevation = models.Float(elevation.Float64)
	}
	if plan.Valid && plan.String != "" {
		e.TrainingPlan = &models.Plan{}
		if err := json.Unmarshal([]byte(plan.String), e.TrainingPlan); err != nil {
			return models.Event{}, fmt.Errorf("event %s: parsing training plan: %w", e.ID, err)
		}
	}
	if weeks.Valid && weeks.String != "" {
		if err := json.Unmarshal([]byte(weeks.String), &e.TrainingWeeks); err != nil {
			return models.Event{}, fmt.Errorf("event %s: parsing training weeks: %w", e.ID, err)
		}
	}
	if deletedAt.Valid {
		e.DeletedAt = &deletedAt.String
	}
	if e.CreatedAt, err = time.Parse(time.RFC3339Nano, createdAt); err != nil {
		return models.Event{}, fmt.Errorf("event %s: parsing created_at: %w", e.ID, err)
	}
	if e.UpdatedAt, err = time.Parse(time.RFC3339Nano, updatedAt); err != nil {
		return models.Event{}, fmt.Errorf("event %s: parsing updated_at: %w", e.ID, err)
	}

	return e, nil
}

// eventArgs flattens e into the column order of eventColumns, minus deleted_at.
func eventArgs(e models.Event) ([]any, error) {
	var plan, weeks sql.NullString
	if e.TrainingPlan != nil {
		data, err := json.Marshal(e.TrainingPlan)
		if err != nil {
			return nil, fmt.Errorf("serializing training plan: %w", err)
		}
		plan = sql.NullString{String: string(data), Valid: true}
	}
	if e.TrainingWeeks != nil {
		data, err := json.Marshal(e.TrainingWeeks)
		if err != nil {
			return nil, fmt.Errorf("serializing training weeks: %w", err)
		}
		weeks = sql.NullString{String: string(data), Valid: true}
	}

	var distance, elevation sql.NullFloat64
	if e.Distance != nil {
		distance = sql.NullFloat64{Float64: *e.Distance, Valid: true}
	}
	if e.Elevation != nil {
		elevation = sql.NullFloat64{Float64: *e.Elevation, Valid: true}
	}

	return []any{
		e.ID, e.Name, string(e.Type), string(e.Status), distance, elevation, e.Difficulty, e.Time, e.Completions,
		e.Date, e.Location, e.Notes, plan, weeks, e.Phase, e.Week, e.Progress,
		e.CreatedAt.UTC().Format(time.RFC3339Nano), e.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}, nil
}

func (s *SQLiteStore) AddEvent(event models.Event) error {
	if s.db == nil {
		return apperrors.ErrNotLoaded
	}

	var exists int
	if err := s.db.QueryRow("SELECT COUNT(*) FROM events WHERE id = ?", event.ID).Scan(&exists); err != nil {
		return err
	}
	if exists > 0 {
		return fmt.Errorf("event already exists: %s", event.ID)
	}

	args, err := eventArgs(event)
	if err != nil {
		return err
	}
	_, err = s.db.Exec(`
		INSERT INTO events (id, name, type, status, distance, elevation, difficulty, finish_time, completions,
			event_date, location, notes, training_plan, training_weeks, phase, week, progress,
			created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`, args...)
	return err
}

func (s *SQLiteStore) GetEvent(id string) (models.Event, error) {
	if s.db == nil {
		return models.Event{}, apperrors.ErrNotLoaded
	}

	row := s.db.QueryRow("SELECT "+eventColumns+" FROM events WHERE id = ? AND deleted_at IS NULL", id)
	e, err := scanEvent(row)
	if err == sql.ErrNoRows {
		return models.Event{}, apperrors.NotFound("event", id)
	}
	return e, err
}

func (s *SQLiteStore) GetAllEvents() ([]models.Event, error) {
	return s.queryEvents("SELECT " + eventColumns + " FROM events WHERE deleted_at IS NULL ORDER BY rowid")
}

func (s *SQLiteStore) GetDeletedEvents() ([]models.Event, error) {
	return s.queryEvents("SELECT " + eventColumns + " FROM events WHERE deleted_at IS NOT NULL ORDER BY rowid")
}

func (s *SQLiteStore) queryEvents(query string) ([]models.Event, error) {
	if s.db == nil {
		return nil, apperrors.ErrNotLoaded
	}

	rows, err := s.db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	events := []models.Event{}
	for rows.Next() {
		e, err := scanEvent(rows)
		if err != nil {
			return nil, err
		}
		events = append(events, e)
	}
	return events, rows.Err()
}

func (s *SQLiteStore) UpdateEvent(event models.Event) error {
	if s.db == nil {
		return apperrors.ErrNotLoaded
	}

	args, err := eventArgs(event)
	if err != nil {
		return err
	}
	// Move id from the front to the WHERE clause.
	args = append(args[1:], event.ID)

	res, err := s.db.Exec(`
		UPDATE events SET name = ?, type = ?, status = ?, distance = ?, elevation = ?, difficulty = ?,
			finish_time = ?, completions = ?, event_date = ?, location = ?, notes = ?, training_plan = ?,
			training_weeks = ?, phase = ?, week = ?, progress = ?, created_at = ?, updated_at = ?
		WHERE id = ? AND deleted_at IS NULL`, args...)
	if err != nil {
		return err
	}
	return requireRow(res, "event", event.ID)
}

func (s *SQLiteStore) DeleteEvent(id string) error {
	if s.db == nil {
		return apperrors.ErrNotLoaded
	}

	res, err := s.db.Exec("UPDATE events SET deleted_at = ? WHERE id = ? AND deleted_at IS NULL",
		time.Now().UTC().Format(time.RFC3339), id)
	if err != nil {
		return err
	}
	return requireRow(res, "event", id)
}

func (s *SQLiteStore) RestoreEvent(id string) error {
	if s.db == nil {
		return apperrors.ErrNotLoaded
	}

	var deletedAt sql.NullString
	err := s.db.QueryRow("SELECT deleted_at FROM events WHERE id = ?", id).Scan(&deletedAt)
	if err == sql.ErrNoRows {
		return apperrors.NotFound("event", id)
	}
	if err != nil {
		return err
	}
	if !deletedAt.Valid {
		return fmt.Errorf("cannot restore an event that is not deleted: %s", id)
	}

	_, err = s.db.Exec("UPDATE events SET deleted_at = NULL WHERE id = ?", id)
	return err
}

func requireRow(res sql.Result, kind, key string) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return apperrors.NotFound(kind, key)
	}
	return nil
}
