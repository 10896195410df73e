/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package logging

import (
	"io"
	stdlog "log"
	"os"
	"sync"
	"time"

	"github.com/charmbracelet/log"
)

// Log source tags used in structured logger contexts.
const (
	SourceApp    = "app"
	SourceStore  = "store"
	SourceMenu   = "menu"
	SourceReport = "report"
)

var (
	initOnce   sync.Once
	baseLogger *log.Logger

	mu     sync.Mutex
	issued []*log.Logger
)

// Init configures the base logger and stdlib log output.
//
// Logs go to stderr so they never interleave with the interactive menu on
// stdout.
func Init() {
	initOnce.Do(func() {
		baseLogger = newLogger(os.Stderr)

		stdlog.SetFlags(0)
		stdlog.SetOutput(bridge(baseLogger, SourceApp).Writer())
	})
}

func newLogger(w io.Writer) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		TimeFunction:    log.NowUTC,
		TimeFormat:      time.RFC3339Nano,
		Level:           log.WarnLevel,
		ReportTimestamp: true,
		Formatter:       log.LogfmtFormatter,
	})
}

// Logger returns a logfmt logger tagged with the provided source.
func Logger(source string) *log.Logger {
	Init()

	l := baseLogger.With("source", source)

	mu.Lock()
	issued = append(issued, l)
	mu.Unlock()

	return l
}

// StdLogger returns a stdlib logger that writes logfmt output with a source.
// Its lines are logged at error level so they show at every level setting.
func StdLogger(source string) *stdlog.Logger {
	Init()
	return bridge(baseLogger, source)
}

func bridge(base *log.Logger, source string) *stdlog.Logger {
	return base.With("source", source).StandardLog(log.StandardLogOptions{ForceLevel: log.ErrorLevel})
}

// SetLevel changes the level of the base logger and every logger handed out
// by Logger. Child loggers copy their level when created, so they are
// tracked here.
func SetLevel(level log.Level) {
	Init()

	mu.Lock()
	defer mu.Unlock()

	baseLogger.SetLevel(level)

	for _, l := range issued {
		l.SetLevel(level)
	}
}

// SetVerbose switches between debug and the default warn level.
func SetVerbose(verbose bool) {
	if verbose {
		SetLevel(log.DebugLevel)
		return
	}

	SetLevel(log.WarnLevel)
}
