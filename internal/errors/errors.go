package errors

import (
	"errors"
	"fmt"
	"os"

	"github.com/julianstephens/enduro/internal/logger"
)

var (
	// ErrNotFound marks lookups of events, check-ins or backups that don't exist.
	ErrNotFound = errors.New("not found")
	// ErrNotInitialized is returned when the data file has not been created yet.
	ErrNotInitialized = errors.New("storage not initialized, run 'enduro init' first")
	// ErrNotLoaded is returned when a store is used before Load or Init.
	ErrNotLoaded = errors.New("storage not loaded")
)

// NotFound wraps ErrNotFound with the kind and key that were looked up.
func NotFound(kind, key string) error {
	return fmt.Errorf("%s %w: %s", kind, ErrNotFound, key)
}

// IsNotFound reports whether err wraps ErrNotFound.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// Format formats an error message with a consistent "Error: " prefix
func Format(err error) string {
	if err == nil {
		return ""
	}
	return fmt.Sprintf("Error: %v", err)
}

// Formatf formats an error message with a consistent "Error: " prefix using a format string
func Formatf(format string, args ...interface{}) string {
	return fmt.Sprintf("Error: "+format, args...)
}

// Fatal logs an error and exits the program with exit code 1
func Fatal(err error) {
	if err != nil {
		logger.Error("Command execution failed", "error", err)
		fmt.Fprintf(os.Stderr, "%s\n", Format(err))
		os.Exit(1)
	}
}
