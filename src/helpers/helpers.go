// Package helpers contains few helper functions which are used throughout the project.
package helpers

import (
	"fmt"
	"os"
	"path/filepath"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/afero"
)

// GrimoireDir is the name of the Grimoire directory in the user's home directory.
const GrimoireDir = ".grimoire"

// ProjectUserPath returns the directory in which Grimoire stores its configuration
// and logs for the current user.
func ProjectUserPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("finding home directory: %w", err)
	}

	return filepath.Join(home, GrimoireDir), nil
}

// SetLogsFile sets the logfile of the server. All directories leading to the
// file are created when missing.
func SetLogsFile(fs afero.Fs, logFilePath string) error {
	if err := fs.MkdirAll(filepath.Dir(logFilePath), 0755); err != nil {
		return fmt.Errorf("creating log directory: %w", err)
	}

	logFile, err := fs.OpenFile(
		logFilePath,
		os.O_CREATE|os.O_WRONLY|os.O_APPEND,
		0644,
	)
	if err != nil {
		return fmt.Errorf("could not open logfile: %w", err)
	}

	log.SetOutput(logFile)
	return nil
}

// SetLogLevel parses level and sets it as the level of the standard logger.
// An empty level leaves the logger at "info".
func SetLogLevel(level string) error {
	if level == "" {
		level = log.InfoLevel.String()
	}

	parsed, err := log.ParseLevel(level)
	if err != nil {
		return err
	}

	log.SetLevel(parsed)
	return nil
}

// SetUpPidFile writes the PID of the current process in pidFile.
func SetUpPidFile(fs afero.Fs, pidFile string) error {
	fh, err := fs.Create(pidFile)
	if err != nil {
		return fmt.Errorf("creating PID file: %w", err)
	}

	if _, err := fmt.Fprintf(fh, "%d", os.Getpid()); err != nil {
		_ = fh.Close()
		return fmt.Errorf("writing PID file: %w", err)
	}

	return fh.Close()
}

// RemovePidFile removes the PID file created by SetUpPidFile. It only logs
// on failure since it is called at shutdown.
func RemovePidFile(fs afero.Fs, pidFile string) {
	if err := fs.Remove(pidFile); err != nil {
		log.Errorf("removing PID file: %s", err)
	}
}
