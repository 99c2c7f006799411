// Package logging is a small leveled logger on top of the standard log
// package with colored level names on terminals.
package logging

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/mgutz/ansi"
)

type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarning
	LevelError
	LevelCritical
)

var levelNames = map[Level]string{
	LevelDebug:    "DEBUG",
	LevelInfo:     "INFO",
	LevelWarning:  "WARNING",
	LevelError:    "ERROR",
	LevelCritical: "CRITICAL",
}

var levelStyles = map[Level]string{
	LevelDebug:    "cyan",
	LevelInfo:     "white",
	LevelWarning:  "yellow",
	LevelError:    "red",
	LevelCritical: "magenta+b",
}

func (l Level) String() string {
	if name, ok := levelNames[l]; ok {
		return name
	}
	return fmt.Sprintf("LEVEL(%d)", int(l))
}

// LevelForVerbosity maps the number of -v flags to the lowest level shown.
// Without flags only warnings and above are shown; two or more show debug.
func LevelForVerbosity(verbosity int) Level {
	switch {
	case verbosity <= 0:
		return LevelWarning
	case verbosity == 1:
		return LevelInfo
	}
	return LevelDebug
}

type Logger struct {
	out   *log.Logger
	level Level
	color bool
}

// New returns a Logger writing to w. Level names are colored when w is a
// terminal.
func New(w io.Writer, level Level) *Logger {
	color := false
	if f, ok := w.(*os.File); ok {
		color = isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
	}

	return &Logger{
		out:   log.New(w, "", log.LstdFlags),
		level: level,
		color: color,
	}
}

func (l *Logger) Enabled(level Level) bool {
	return level >= l.level
}

func (l *Logger) logf(level Level, format string, args ...interface{}) {
	if !l.Enabled(level) {
		return
	}

	name := fmt.Sprintf("%8s", level)
	msg := fmt.Sprintf(format, args...)
	if l.color {
		name = ansi.Color(name, levelStyles[level])
		msg = ansi.Color(msg, levelStyles[level])
	}

	l.out.Printf("[%s]:  %s", name, msg)
}

func (l *Logger) Debugf(format string, args ...interface{}) {
	l.logf(LevelDebug, format, args...)
}

func (l *Logger) Infof(format string, args ...interface{}) {
	l.logf(LevelInfo, format, args...)
}

func (l *Logger) Warningf(format string, args ...interface{}) {
	l.logf(LevelWarning, format, args...)
}

func (l *Logger) Errorf(format string, args ...interface{}) {
	l.logf(LevelError, format, args...)
}

func (l *Logger) Criticalf(format string, args ...interface{}) {
	l.logf(LevelCritical, format, args...)
}
