// Package log provides file-backed loggers shared across the application.
// Logging to stdout/stderr would corrupt the alt-screen TUI, so everything
// goes to a log file under the config directory instead.
package log

import (
	"fmt"
	"io"
	stdlog "log"
	"os"
	"path/filepath"

	"github.com/classkit/rollcall/internal/sentry"
)

const logFileName = "rollcall.log"

// Default loggers write to io.Discard until Initialize is called, so packages
// may log at any time without a nil check.
var (
	InfoLog    = stdlog.New(io.Discard, "INFO: ", stdlog.Ldate|stdlog.Ltime|stdlog.Lshortfile)
	WarningLog = stdlog.New(io.Discard, "WARN: ", stdlog.Ldate|stdlog.Ltime|stdlog.Lshortfile)
	ErrorLog   = stdlog.New(io.Discard, "ERROR: ", stdlog.Ldate|stdlog.Ltime|stdlog.Lshortfile)
)

var logFile *os.File

// Initialize opens the log file and points the package loggers at it. When
// telemetryEnabled is true, error and warning output is additionally teed to
// sentry. Failure to open the file leaves the loggers on io.Discard; the app
// must keep working without a log file.
func Initialize(telemetryEnabled bool) {
	dir, err := os.UserHomeDir()
	if err != nil {
		return
	}
	logDir := filepath.Join(dir, ".config", "rollcall")
	if err := os.MkdirAll(logDir, 0755); err != nil {
		return
	}

	f, err := os.OpenFile(filepath.Join(logDir, logFileName), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return
	}
	logFile = f

	var infoW, warnW, errW io.Writer = f, f, f
	if telemetryEnabled {
		infoW = sentry.NewWriter(f, sentry.LevelInfo)
		warnW = sentry.NewWriter(f, sentry.LevelWarning)
		errW = sentry.NewWriter(f, sentry.LevelError)
	}

	InfoLog.SetOutput(infoW)
	WarningLog.SetOutput(warnW)
	ErrorLog.SetOutput(errW)
}

// Path returns the log file location, or an empty string before Initialize.
func Path() string {
	if logFile == nil {
		return ""
	}
	return logFile.Name()
}

// Close detaches the loggers and closes the log file.
func Close() {
	InfoLog.SetOutput(io.Discard)
	WarningLog.SetOutput(io.Discard)
	ErrorLog.SetOutput(io.Discard)
	if logFile != nil {
		if err := logFile.Close(); err != nil {
			fmt.Fprintf(os.Stderr, "failed to close log file: %v\n", err)
		}
		logFile = nil
	}
}
