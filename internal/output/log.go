// Package output provides terminal output utilities.
package output

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
)

// logger is the global logger instance.
var logger = log.NewWithOptions(os.Stderr, log.Options{
	ReportTimestamp: false,
	ReportCaller:    false,
})

// stdout is where reports are written. Tests swap it for a buffer.
var stdout io.Writer = os.Stdout

// stderr is where SetupLogging points the logger.
var stderr io.Writer = os.Stderr

// LogConfig controls logger construction.
type LogConfig struct {
	// Verbose enables debug level, caller reporting and forces timestamps on.
	Verbose bool

	// Timestamps overrides timestamp display. Nil means the default (on).
	Timestamps *bool
}

// BoolPtr returns a pointer to b.
func BoolPtr(b bool) *bool {
	return &b
}

// SetupLogging configures the global logger.
func SetupLogging(cfg LogConfig) {
	level := log.InfoLevel
	if cfg.Verbose {
		level = log.DebugLevel
	}

	timestamps := true
	if cfg.Timestamps != nil {
		timestamps = *cfg.Timestamps
	}
	if cfg.Verbose {
		timestamps = true
	}

	logger = log.NewWithOptions(stderr, log.Options{
		Level:           level,
		ReportTimestamp: timestamps,
		ReportCaller:    cfg.Verbose,
		TimeFormat:      "15:04:05",
	})
}

// SetOutput redirects stdout reports and log output. It returns a function restoring the
// previous writers.
func SetOutput(out, errOut io.Writer) func() {
	prevOut, prevErr, prevLogger := stdout, stderr, logger
	stdout, stderr = out, errOut
	logger = log.NewWithOptions(errOut, log.Options{Level: prevLogger.GetLevel()})
	return func() {
		stdout, stderr = prevOut, prevErr
		logger = prevLogger
	}
}

// ProjectLogger returns a child logger prefixed with the project name.
func ProjectLogger(name string) *log.Logger {
	return logger.WithPrefix(StyleDim.Render("p:") + StyleNoun.Render(name))
}

// Debug logs a debug message.
func Debug(msg string, keyvals ...interface{}) {
	logger.Debug(msg, keyvals...)
}

// Info logs an info message.
func Info(msg string, keyvals ...interface{}) {
	logger.Info(msg, keyvals...)
}

// Warn logs a warning message.
func Warn(msg string, keyvals ...interface{}) {
	logger.Warn(msg, keyvals...)
}

// Error logs an error message.
func Error(msg string, keyvals ...interface{}) {
	logger.Error(msg, keyvals...)
}

// Success prints a checkmarked line to stdout.
func Success(msg string) {
	Println(FormatCheckmark(msg))
}

// Break prints an empty line to stdout.
func Break() {
	Println("")
}

// Print prints a message to stdout without any formatting.
func Print(msg string) {
	fmt.Fprint(stdout, msg)
}

// Println prints a message to stdout with a newline.
func Println(msg string) {
	fmt.Fprintln(stdout, msg)
}
