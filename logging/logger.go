package logging

import (
	"io"
	"log"
)

// Classification is the level a log entry is written at.
type Classification string

const (
	Warn  Classification = "WARN"
	Debug Classification = "DEBUG"
)

// Logger is an interface for logging entries at certain classifications.
type Logger interface {
	// Logf is expected to support the standard fmt package "verbs".
	Logf(level Classification, format string, v ...interface{})
}

// Noop is a Logger implementation that simply does not perform any logging.
type Noop struct{}

func (n Noop) Logf(Classification, string, ...interface{}) {}

// StandardLogger is a Logger implementation that wraps the standard library
// logger, and delegates logging to its Printf method.
type StandardLogger struct {
	Logger *log.Logger
}

// Logf logs the given classification and message to the underlying logger.
func (s StandardLogger) Logf(classification Classification, format string, v ...interface{}) {
	if len(classification) != 0 {
		format = string(classification) + " " + format
	}

	s.Logger.Printf(format, v...)
}

// NewStandardLogger returns a new StandardLogger writing entries with the
// "PLIST " prefix and no timestamp flags set.
func NewStandardLogger(writer io.Writer) *StandardLogger {
	return &StandardLogger{
		Logger: log.New(writer, "PLIST ", 0),
	}
}

// Mode is a bit set selecting which document operations are logged.
type Mode uint64

const (
	// LogRender logs each render of a document to an element tree.
	LogRender Mode = 1 << iota

	// LogSerialize logs each serialization of a document to text.
	LogSerialize
)

// IsRender returns whether the Render bit is set
func (m Mode) IsRender() bool {
	return m&LogRender != 0
}

// IsSerialize returns whether the Serialize bit is set
func (m Mode) IsSerialize() bool {
	return m&LogSerialize != 0
}

// ClearRender clears the Render bit
func (m *Mode) ClearRender() {
	*m &^= LogRender
}

// ClearSerialize clears the Serialize bit
func (m *Mode) ClearSerialize() {
	*m &^= LogSerialize
}
