package alerts

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/agentstation/quotegen/internal/cmd/emoji"
)

// Level represents the severity of an alert.
type Level int

const (
	// LevelError indicates a failure or error condition.
	LevelError Level = iota
	// LevelWarning indicates a potential issue or important notice.
	LevelWarning
	// LevelInfo indicates general informational messages.
	LevelInfo
	// LevelSuccess indicates successful completion of an operation.
	LevelSuccess
)

// String returns the string representation of the alert level.
func (l Level) String() string {
	switch l {
	case LevelError:
		return "error"
	case LevelWarning:
		return "warning"
	case LevelInfo:
		return "info"
	case LevelSuccess:
		return "success"
	default:
		return fmt.Sprintf("unknown(%d)", l)
	}
}

// Icon returns the symbol for the alert level.
func (l Level) Icon() string {
	switch l {
	case LevelError:
		return emoji.Error
	case LevelWarning:
		return emoji.Warning
	case LevelInfo:
		return emoji.Info
	case LevelSuccess:
		return emoji.Success
	default:
		return emoji.Unknown
	}
}

// Style returns the terminal style for the alert level.
func (l Level) Style() lipgloss.Style {
	style := lipgloss.NewStyle()
	switch l {
	case LevelError:
		return style.Foreground(lipgloss.Color("#FF5F87")).Bold(true)
	case LevelWarning:
		return style.Foreground(lipgloss.Color("#FFAF00"))
	case LevelInfo:
		return style.Foreground(lipgloss.Color("#5FD7FF"))
	case LevelSuccess:
		return style.Foreground(lipgloss.Color("#43BF6D")).Bold(true)
	default:
		return style
	}
}
