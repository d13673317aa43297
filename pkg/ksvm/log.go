package ksvm

import (
	"io"
	"log"
	"os"
)

var (
	enableLog = false
	logger    = log.New(io.Discard, "", log.LstdFlags)
)

// SetLog enables or disables debug logging to stderr.
func SetLog(enable bool) {
	enableLog = enable
	if enable {
		logger.SetOutput(os.Stderr)
	} else {
		logger.SetOutput(io.Discard)
	}
}

// LogEnabled returns true if debug logging is enabled.
func LogEnabled() bool {
	return enableLog
}

// Log logs the given message if debug logging is enabled.
func Log(f string, args ...interface{}) {
	logger.Printf(f, args...)
}
