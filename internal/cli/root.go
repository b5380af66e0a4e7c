package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/julianstephens/enduro/internal/backup"
	"github.com/julianstephens/enduro/internal/config"
	"github.com/julianstephens/enduro/internal/constants"
	apperrors "github.com/julianstephens/enduro/internal/errors"
	"github.com/julianstephens/enduro/internal/logger"
	"github.com/julianstephens/enduro/internal/models"
	"github.com/julianstephens/enduro/internal/planner"
	"github.com/julianstephens/enduro/internal/storage"
	"github.com/julianstephens/enduro/internal/utils"
)

// Context is handed to every command's Run method.
type Context struct {
	Store     storage.Provider
	Generator *planner.Generator
	Config    *config.Config

	Out   io.Writer
	In    io.Reader
	Clock func() time.Time
}

func NewContext(store storage.Provider, cfg *config.Config) *Context {
	if cfg == nil {
		cfg = config.Default()
	}
	return &Context{
		Store:     store,
		Generator: planner.New(),
		Config:    cfg,
		Out:       os.Stdout,
		In:        os.Stdin,
		Clock:     time.Now,
	}
}

func (c *Context) Printf(format string, args ...any) {
	fmt.Fprintf(c.Out, format, args...)
}

func (c *Context) Println(args ...any) {
	fmt.Fprintln(c.Out, args...)
}

// Location is the timezone stored in preferences.
func (c *Context) Location() (*time.Location, error) {
	prefs, err := c.Store.GetPreferences()
	if err != nil {
		return nil, fmt.Errorf("failed to load preferences: %w", err)
	}
	loc, err := utils.LoadLocation(prefs.Timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q in preferences: %w", prefs.Timezone, err)
	}
	return loc, nil
}

// Now is the current time in the user's timezone. Every engine call gets its
// clock from here.
func (c *Context) Now() (time.Time, error) {
	loc, err := c.Location()
	if err != nil {
		return time.Time{}, err
	}
	return c.Clock().In(loc), nil
}

// Today is Now formatted as YYYY-MM-DD.
func (c *Context) Today() (string, error) {
	now, err := c.Now()
	if err != nil {
		return "", err
	}
	return now.Format(constants.DateFormat), nil
}

func (c *Context) State() (*models.AppState, error) {
	return storage.LoadState(c.Store)
}

// ResolveEvent finds a live event by exact ID, unique ID prefix or
// case-insensitive name, in that order.
func (c *Context) ResolveEvent(ref string) (models.Event, error) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return models.Event{}, fmt.Errorf("event reference must not be empty")
	}

	if e, err := c.Store.GetEvent(ref); err == nil {
		return e, nil
	} else if !apperrors.IsNotFound(err) {
		return models.Event{}, err
	}

	events, err := c.Store.GetAllEvents()
	if err != nil {
		return models.Event{}, err
	}

	var byPrefix, byName []models.Event
	for _, e := range events {
		if strings.HasPrefix(e.ID, ref) {
			byPrefix = append(byPrefix, e)
		}
		if strings.EqualFold(strings.TrimSpace(e.Name), ref) {
			byName = append(byName, e)
		}
	}

	for _, matches := range [][]models.Event{byPrefix, byName} {
		switch len(matches) {
		case 0:
			continue
		case 1:
			return matches[0], nil
		default:
			return models.Event{}, fmt.Errorf("%q matches %d events, use the full ID", ref, len(matches))
		}
	}
	return models.Event{}, apperrors.NotFound("event", ref)
}

// Confirm asks a yes/no question on Out and reads the answer from In.
func (c *Context) Confirm(prompt string) (bool, error) {
	c.Printf("%s [y/N]: ", prompt)
	response, err := bufio.NewReader(c.In).ReadString('\n')
	if err != nil && err != io.EOF {
		return false, err
	}
	response = strings.TrimSpace(strings.ToLower(response))
	return response == "y" || response == "yes", nil
}

// PerformAutomaticBackup creates an automatic backup and silently handles errors
func (c *Context) PerformAutomaticBackup() {
	mgr := backup.NewManager(c.Store.GetConfigPath())
	if _, err := mgr.CreateBackup(); err != nil {
		logger.Warn("Automatic backup failed", "error", err)
	}
}
