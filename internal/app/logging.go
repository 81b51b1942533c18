package app

import (
	"log/slog"

	"github.com/treykane/mathmark/internal/logging"
)

// appLog is the package-level structured logger for the editor. Entries go
// through the shared logging handler, so MATHMARK_LOG_FILE keeps them off the
// terminal the editor is drawing on.
var appLog = logging.New("app")

// setStatusError shows status in the footer and logs err with attrs.
//
// Usage:
//
//	m.setStatusError("Clipboard copy failed", err)
//	m.setStatusError("Draft save failed", err, "path", path)
func (m *Model) setStatusError(status string, err error, attrs ...any) {
	m.status = status
	m.statusIsError = true
	fields := make([]any, 0, len(attrs)+2)
	fields = append(fields, slog.Any("error", err))
	fields = append(fields, attrs...)
	appLog.Error(status, fields...)
}

// setStatus shows an informational message in the footer.
func (m *Model) setStatus(status string) {
	m.status = status
	m.statusIsError = false
}
