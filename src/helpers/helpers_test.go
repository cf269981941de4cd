package helpers

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/afero"
)

// TestProjectUserPath makes sure the user path is rooted and ends with the
// Grimoire directory.
func TestProjectUserPath(t *testing.T) {
	path, err := ProjectUserPath()
	if err != nil {
		t.Skipf("no home directory in this environment: %s", err)
	}

	if !filepath.IsAbs(path) {
		t.Errorf("user path was not rooted: %s", path)
	}

	if filepath.Base(path) != GrimoireDir {
		t.Errorf("expected user path to end with %s but it was %s", GrimoireDir, path)
	}
}

// TestSetLogsFile makes sure that logs will be stored in the expected file after
// logging has been set to it.
func TestSetLogsFile(t *testing.T) {
	testfs := afero.NewMemMapFs()
	logFile := "some/place/grimoire.log"

	if err := SetLogsFile(testfs, logFile); err != nil {
		t.Fatalf("setting log file failed: %s", err)
	}
	defer log.SetOutput(os.Stderr)

	const testLogMessage = "test message"
	log.Println(testLogMessage)

	logData, err := fs.ReadFile(afero.NewIOFS(testfs), logFile)
	if err != nil {
		t.Fatalf("error reading the log file: %s", err)
	}

	if !strings.Contains(string(logData), testLogMessage) {
		t.Errorf(
			"log file did not contain `%s`. It was:\n%s",
			testLogMessage,
			string(logData),
		)
	}

	readOnly := afero.NewReadOnlyFs(afero.NewMemMapFs())
	if err := SetLogsFile(readOnly, "other.log"); err == nil {
		t.Errorf("expected an error for read only FS but got nil")
	}
}

func TestSetLogLevel(t *testing.T) {
	defer log.SetLevel(log.InfoLevel)

	if err := SetLogLevel("debug"); err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if log.GetLevel() != log.DebugLevel {
		t.Errorf("expected debug level but it was %s", log.GetLevel())
	}

	if err := SetLogLevel(""); err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if log.GetLevel() != log.InfoLevel {
		t.Errorf("expected info level but it was %s", log.GetLevel())
	}

	if err := SetLogLevel("loud"); err == nil {
		t.Errorf("expected an error for unknown level")
	}
}

// TestPidFileFunctions makes sure that a PID file is created and then removed as
// expected.
func TestPidFileFunctions(t *testing.T) {
	testfs := afero.NewMemMapFs()
	pidFile := "grimoire.pid"
	expectedPID := os.Getpid()

	if err := SetUpPidFile(testfs, pidFile); err != nil {
		t.Fatalf("error setting up PID file: %s", err)
	}

	pidFileContents, err := fs.ReadFile(afero.NewIOFS(testfs), pidFile)
	if err != nil {
		t.Fatalf("error reading PID file: %s", err)
	}

	var foundPID int
	if _, err := fmt.Sscanf(string(pidFileContents), "%d", &foundPID); err != nil {
		t.Fatalf("error reading int from PID file: %s", err)
	}

	if foundPID != expectedPID {
		t.Errorf("expected PID %d but got %d", expectedPID, foundPID)
	}

	RemovePidFile(testfs, pidFile)
	if exists, _ := afero.Exists(testfs, pidFile); exists {
		t.Errorf("PID file was not removed")
	}

	// Now make sure that when creating a PID file is not possible then the function
	// returns an error.
	readOnly := afero.NewReadOnlyFs(testfs)
	if err := SetUpPidFile(readOnly, pidFile); err == nil {
		t.Errorf("expected an error for read only FS but got nil")
	}
}
