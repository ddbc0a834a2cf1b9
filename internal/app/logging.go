package app

import (
	"log/slog"

	"github.com/treykane/cli-assistant/internal/logging"
)

// appLog is the package logger, tagged with component "app".
var appLog = logging.New("app")

// setStatusError shows status in the footer and logs err with the extra
// slog-style key-value attrs.
//
//	m.setStatusError("Clipboard copy failed", err)
//	m.setStatusError("Attach failed", err, "path", path)
func (m *Model) setStatusError(status string, err error, attrs ...any) {
	m.status = status
	fields := make([]any, 0, len(attrs)+2)
	fields = append(fields, slog.Any("error", err))
	fields = append(fields, attrs...)
	appLog.Error(status, fields...)
}
