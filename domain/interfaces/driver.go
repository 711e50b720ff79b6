package interfaces

import (
	"context"

	"pacs_automation/domain/entities"
)

// Session is one live browser plus page, owned by a single extraction
// request. Release tears down the underlying browser process; it is
// idempotent and must run on every exit path.
type Session interface {
	Browser

	Release() error
}

// Driver launches browser sessions. Exactly one session is acquired
// per request; sessions are never pooled or shared.
type Driver interface {
	Acquire(ctx context.Context, viewport entities.ViewportConfig) (Session, error)
}
