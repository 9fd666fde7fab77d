/*
Package xlog provides leveled logging for the commands of this module.

The standard log package has no notion of verbosity. The command line
tools here have to suppress warnings under -q and print debug output
under -v, so this package wraps a log.Logger with a verbosity level.
The default level prints warnings and drops debug messages.
*/
package xlog

import (
	"fmt"
	"log"
	"os"
)

// Verbosity levels in increasing order.
const (
	Quiet = iota
	Warning
	DebugLevel
)

var (
	logger    = log.New(os.Stderr, "", 0)
	verbosity = Warning
)

// SetPrefix sets the prefix for all messages.
func SetPrefix(prefix string) { logger.SetPrefix(prefix) }

// SetVerbosity sets the level below which messages are dropped.
func SetVerbosity(v int) { verbosity = v }

// Warn prints the arguments unless the verbosity is Quiet.
func Warn(v ...interface{}) {
	if verbosity >= Warning {
		logger.Output(2, fmt.Sprint(v...))
	}
}

// Warnf prints the formatted message unless the verbosity is Quiet.
func Warnf(format string, v ...interface{}) {
	if verbosity >= Warning {
		logger.Output(2, fmt.Sprintf(format, v...))
	}
}

// Debug prints the arguments if the verbosity is Debug.
func Debug(v ...interface{}) {
	if verbosity >= DebugLevel {
		logger.Output(2, fmt.Sprint(v...))
	}
}

// Debugf prints the formatted message if the verbosity is Debug.
func Debugf(format string, v ...interface{}) {
	if verbosity >= DebugLevel {
		logger.Output(2, fmt.Sprintf(format, v...))
	}
}
