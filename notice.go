package quotegen

import (
	"github.com/agentstation/utc"
)

// NoticeLevel grades a notice.
type NoticeLevel string

// Notice levels
const (
	NoticeInfo    NoticeLevel = "info"
	NoticeWarning NoticeLevel = "warning"
	NoticeError   NoticeLevel = "error"
)

// NoticeOp names the operation a notice came from.
type NoticeOp string

// Notice operations
const (
	OpLoad      NoticeOp = "load"
	OpAdd       NoticeOp = "add"
	OpImport    NoticeOp = "import"
	OpPush      NoticeOp = "push"
	OpPushOnAdd NoticeOp = "push_on_add"
	OpSync      NoticeOp = "sync"
)

// Interactive reports whether the operation returns its error to the caller
// as well, so a host that already shows returned errors can skip it.
func (op NoticeOp) Interactive() bool {
	switch op {
	case OpAdd, OpImport, OpPush:
		return true
	}
	return false
}

// Notice is a transient, user-visible message about something that
// degraded: a sync that changed quotes, a remote that could not be reached,
// rejected input, a snapshot that had to be replaced by seed data.
type Notice struct {
	Op      NoticeOp    `json:"op" yaml:"op"`
	Level   NoticeLevel `json:"level" yaml:"level"`
	Message string      `json:"message" yaml:"message"`
	Err     error       `json:"-" yaml:"-"`
	At      utc.Time    `json:"at" yaml:"at"`
}

func newNotice(op NoticeOp, level NoticeLevel, message string, err error) Notice {
	return Notice{Op: op, Level: level, Message: message, Err: err, At: utc.Now()}
}
