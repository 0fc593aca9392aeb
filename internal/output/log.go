// Package output provides terminal output utilities.
package output

import (
	"io"
	"os"

	"github.com/charmbracelet/log"
)

// logger is the global logger instance.
var logger *log.Logger

// logOutput is where logger writes; it survives SetupLogging.
var logOutput io.Writer = os.Stderr

func init() {
	logger = log.NewWithOptions(logOutput, log.Options{
		ReportTimestamp: false,
		ReportCaller:    false,
	})
}

// LogConfig controls logger setup.
type LogConfig struct {
	// Verbose enables debug level, caller reporting and timestamps.
	Verbose bool

	// Timestamps controls timestamps in non-verbose mode.
	// nil means off; verbose mode always shows them.
	Timestamps *bool
}

// SetupLogging configures the logger based on verbosity.
func SetupLogging(cfg LogConfig) {
	level := log.InfoLevel
	if cfg.Verbose {
		level = log.DebugLevel
	}

	timestamps := cfg.Verbose
	if !cfg.Verbose && cfg.Timestamps != nil {
		timestamps = *cfg.Timestamps
	}

	logger = log.NewWithOptions(logOutput, log.Options{
		Level:           level,
		ReportTimestamp: timestamps,
		ReportCaller:    cfg.Verbose,
		TimeFormat:      "15:04:05",
	})
}

// SetOutput redirects log output, keeping the current level.
func SetOutput(w io.Writer) {
	logOutput = w
	logger.SetOutput(w)
}

// ModuleLogger returns a sub-logger prefixed with the module identity.
func ModuleLogger(name string) *log.Logger {
	return logger.WithPrefix(StyleDim.Render("m:") + StyleNoun.Render(name))
}

// BoolPtr returns a pointer to b.
func BoolPtr(b bool) *bool {
	return &b
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

// stdout is where payload output goes; tests swap it.
var stdout io.Writer = os.Stdout

// SetStdout redirects payload output and returns the previous writer.
func SetStdout(w io.Writer) io.Writer {
	prev := stdout
	stdout = w
	return prev
}

// Print prints a message to stdout without any formatting.
func Print(msg string) {
	_, _ = io.WriteString(stdout, msg)
}

// Println prints a message to stdout with a newline.
func Println(msg string) {
	_, _ = io.WriteString(stdout, msg+"\n")
}

// Prompt writes a question to the log output without a newline.
func Prompt(msg string) {
	_, _ = io.WriteString(logOutput, msg)
}
