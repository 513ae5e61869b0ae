// Package alerts turns background notices and command outcomes into
// short status lines for the terminal.
package alerts

import (
	"fmt"
	"io"

	"github.com/agentstation/utc"

	"github.com/agentstation/quotegen"
)

// Alert represents a status notification.
type Alert struct {
	Level     Level
	Message   string
	Details   []string
	Timestamp utc.Time
	Err       error
}

// New creates a new alert with the given level and message.
func New(level Level, message string) *Alert {
	return &Alert{
		Level:     level,
		Message:   message,
		Timestamp: utc.Now(),
	}
}

// NewError creates a new error alert.
func NewError(message string) *Alert {
	return New(LevelError, message)
}

// NewWarning creates a new warning alert.
func NewWarning(message string) *Alert {
	return New(LevelWarning, message)
}

// NewInfo creates a new info alert.
func NewInfo(message string) *Alert {
	return New(LevelInfo, message)
}

// NewSuccess creates a new success alert.
func NewSuccess(message string) *Alert {
	return New(LevelSuccess, message)
}

// FromNotice converts a client notice into an alert, keeping its time.
func FromNotice(n quotegen.Notice) *Alert {
	level := LevelInfo
	switch n.Level {
	case quotegen.NoticeWarning:
		level = LevelWarning
	case quotegen.NoticeError:
		level = LevelError
	}
	a := New(level, n.Message).WithError(n.Err)
	if !n.At.IsZero() {
		a.Timestamp = n.At
	}
	return a
}

// WithError adds an underlying error to the alert.
func (a *Alert) WithError(err error) *Alert {
	a.Err = err
	return a
}

// WithDetails adds additional context details to the alert.
func (a *Alert) WithDetails(details ...string) *Alert {
	a.Details = append(a.Details, details...)
	return a
}

// String returns the alert as "<icon> <message>[: <error>]".
func (a *Alert) String() string {
	message := fmt.Sprintf("%s %s", a.Level.Icon(), a.Message)
	if a.Err != nil {
		message += fmt.Sprintf(": %v", a.Err)
	}
	return message
}

// Writer handles alert output to different formats and destinations.
type Writer interface {
	WriteAlert(alert *Alert) error
}

// WriterFunc is an adapter to allow functions to be used as Writers.
type WriterFunc func(*Alert) error

// WriteAlert calls the function.
func (f WriterFunc) WriteAlert(alert *Alert) error {
	return f(alert)
}

// MultiWriter creates a writer that writes to multiple writers.
func MultiWriter(writers ...Writer) Writer {
	return WriterFunc(func(alert *Alert) error {
		for _, w := range writers {
			if err := w.WriteAlert(alert); err != nil {
				return err
			}
		}
		return nil
	})
}

// DiscardWriter is a Writer that discards all alerts.
var DiscardWriter Writer = WriterFunc(func(*Alert) error { return nil })

// NewWriterTo creates a Writer that writes plain lines to an io.Writer.
func NewWriterTo(w io.Writer) Writer {
	return WriterFunc(func(alert *Alert) error {
		_, err := fmt.Fprintln(w, alert.String())
		return err
	})
}
