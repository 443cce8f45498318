package logger

import (
	"fmt"
	"log"
)

type Logger struct {
	l     *log.Logger
	scope string
}

func New(l *log.Logger) *Logger {
	//nolint:exhaustruct
	return &Logger{l: l}
}

// WithScope returns a logger tagging every line with the component name.
func (l *Logger) WithScope(scope string) *Logger {
	return &Logger{l: l.l, scope: scope}
}

func (l *Logger) LogErrorf(format string, v ...any) {
	l.printf("Error", format, v...)
}

func (l *Logger) LogInfo(format string, v ...any) {
	l.printf("Info", format, v...)
}

func (l *Logger) printf(level, format string, v ...any) {
	msg := fmt.Sprintf(format, v...)

	if l.scope == "" {
		l.l.Printf("[%s]: %s\n", level, msg)

		return
	}

	l.l.Printf("[%s][%s]: %s\n", level, l.scope, msg)
}
