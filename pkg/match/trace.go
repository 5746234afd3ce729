package match

import (
	"log"

	"github.com/google/uuid"
)

// Trace provides optional, opt-in diagnostic logging for a single
// top-level Match call. A nil *Trace (or one built with a nil logger) is
// the default and logs nothing — the search driver never pays for
// tracing unless a caller asks for it, mirroring the teacher engine's
// nil-safe *log.Logger fields.
type Trace struct {
	id     uuid.UUID
	logger *log.Logger
}

// NewTrace returns a Trace that logs to logger, tagging every line with a
// fresh correlation ID so concurrent callers sharing a log sink can tell
// their lines apart even though any single Match call is itself
// single-threaded.
func NewTrace(logger *log.Logger) *Trace {
	return &Trace{id: uuid.New(), logger: logger}
}

func (t *Trace) logf(format string, args ...any) {
	if t == nil || t.logger == nil {
		return
	}
	t.logger.Printf("[match:%s] "+format, append([]any{t.id}, args...)...)
}
