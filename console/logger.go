package console

import (
	"fmt"
	"io"
	"log"
)

type Level uint8

const (
	INFO Level = iota
	WARN
	ERROR
	SUCCESS
)

var levelnames = map[Level]string{INFO: "INFO", WARN: "WARN", ERROR: "ERROR", SUCCESS: "SUCCESS"}

func (l Level) String() string {
	return levelnames[l]
}

// Each level gets a marker and, on a terminal, an ANSI colour.
var levelmarks = map[Level]struct {
	mark, colour string
}{
	INFO:    {"[-]", "\x1b[34m"},
	WARN:    {"[!]", "\x1b[33m"},
	ERROR:   {"[X]", "\x1b[31m"},
	SUCCESS: {"[+]", "\x1b[32m"},
}

const colourReset = "\x1b[0m"

// Logger writes one marked line per message.
type Logger struct {
	l      *log.Logger
	colour bool
}

func NewLogger(w io.Writer, colour bool) *Logger {
	return &Logger{l: log.New(w, "", 0), colour: colour}
}

// Discard is a Logger that throws everything away.
var Discard = NewLogger(io.Discard, false)

func (lg *Logger) Log(level Level, format string, args ...any) {
	m, ok := levelmarks[level]
	if !ok {
		m = levelmarks[INFO]
	}

	msg := fmt.Sprintf(format, args...)
	if lg.colour {
		lg.l.Printf("%s%s %s%s", m.colour, m.mark, msg, colourReset)
		return
	}
	lg.l.Printf("%s %s", m.mark, msg)
}

func (lg *Logger) Infof(format string, args ...any)    { lg.Log(INFO, format, args...) }
func (lg *Logger) Warnf(format string, args ...any)    { lg.Log(WARN, format, args...) }
func (lg *Logger) Errorf(format string, args ...any)   { lg.Log(ERROR, format, args...) }
func (lg *Logger) Successf(format string, args ...any) { lg.Log(SUCCESS, format, args...) }
