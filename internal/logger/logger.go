package logger

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog"
)

// Logger is the component-keyed logging surface shared by every package.
type Logger interface {
	Debug(component, message string, fields map[string]interface{})
	Info(component, message string, fields map[string]interface{})
	Warning(component, message string, fields map[string]interface{})
	Error(component string, err error, fields map[string]interface{})
}

// ParseLevel maps a configuration string onto a zerolog level.
func ParseLevel(level string) (zerolog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "", "info":
		return zerolog.InfoLevel, nil
	case "warning":
		return zerolog.WarnLevel, nil
	}

	parsed, err := zerolog.ParseLevel(strings.ToLower(level))
	if err != nil {
		return zerolog.NoLevel, fmt.Errorf("invalid log level %q: %w", level, err)
	}
	return parsed, nil
}

// NoOp discards everything. Used by tests and when logging is disabled.
type NoOp struct{}

func (NoOp) Debug(component, message string, fields map[string]interface{})   {}
func (NoOp) Info(component, message string, fields map[string]interface{})    {}
func (NoOp) Warning(component, message string, fields map[string]interface{}) {}
func (NoOp) Error(component string, err error, fields map[string]interface{})  {}
