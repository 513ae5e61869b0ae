package alerts

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/agentstation/utc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/quotegen"
	"github.com/agentstation/quotegen/internal/cmd/output"
)

func TestFromNotice(t *testing.T) {
	at := utc.New(time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC))
	cause := errors.New("dial tcp: refused")

	tests := []struct {
		level quotegen.NoticeLevel
		want  Level
	}{
		{quotegen.NoticeInfo, LevelInfo},
		{quotegen.NoticeWarning, LevelWarning},
		{quotegen.NoticeError, LevelError},
	}
	for _, tt := range tests {
		t.Run(string(tt.level), func(t *testing.T) {
			a := FromNotice(quotegen.Notice{Level: tt.level, Message: "Sync failed", Err: cause, At: at})
			assert.Equal(t, tt.want, a.Level)
			assert.Equal(t, "Sync failed", a.Message)
			assert.Equal(t, at, a.Timestamp)
			assert.ErrorIs(t, a.Err, cause)
		})
	}
}

func TestAlertString(t *testing.T) {
	assert.Equal(t, "✓ Quote added", NewSuccess("Quote added").String())
	assert.Equal(t, "✗ Push failed: boom", NewError("Push failed").WithError(errors.New("boom")).String())
}

func TestFormatWriterText(t *testing.T) {
	var buf bytes.Buffer
	w := NewFormatWriter(&buf, output.FormatTable)
	require.NoError(t, w.WriteAlert(NewWarning("Offline").WithDetails("using local quotes")))
	assert.Equal(t, "! Offline\n   using local quotes\n", buf.String())
}

func TestFormatWriterJSON(t *testing.T) {
	var buf bytes.Buffer
	w := NewFormatWriter(&buf, output.FormatJSON)
	require.NoError(t, w.WriteAlert(NewInfo("Quotes synced").WithError(errors.New("partial"))))

	var got map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, "info", got["level"])
	assert.Equal(t, "Quotes synced", got["message"])
	assert.Equal(t, "partial", got["error"])
	assert.NotContains(t, got, "timestamp")
}

func TestFormatWriterYAML(t *testing.T) {
	var buf bytes.Buffer
	w := NewFormatWriter(&buf, output.FormatYAML)
	require.NoError(t, w.WriteAlert(NewSuccess("Imported")))
	assert.Contains(t, buf.String(), "level: success")
	assert.Contains(t, buf.String(), "message: Imported")
}

func TestMultiWriter(t *testing.T) {
	var a, b bytes.Buffer
	w := MultiWriter(NewWriterTo(&a), NewWriterTo(&b), DiscardWriter)
	require.NoError(t, w.WriteAlert(NewInfo("hello")))
	assert.Equal(t, "i hello\n", a.String())
	assert.Equal(t, a.String(), b.String())
}
