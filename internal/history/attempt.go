// Package history journals completed practice attempts in SQLite. The
// journal is append-only bookkeeping behind the history command; the
// authoritative progress record lives elsewhere.
package history

import (
	"context"
	"time"

	"github.com/alexanderramin/dojo/internal/domain"
)

// Attempt is one journaled practice run. For simulator runs Score/Total are
// the executed and total stage counts of the resolved workflow.
type Attempt struct {
	ID          string
	Kind        domain.AttemptKind
	Score       int
	Total       int
	RequestType string
	CreatedAt   time.Time
}

// AttemptRepo stores and lists journaled attempts.
type AttemptRepo interface {
	Create(ctx context.Context, a *Attempt) error
	ListRecent(ctx context.Context, limit int) ([]*Attempt, error)
	ListByKind(ctx context.Context, kind domain.AttemptKind, limit int) ([]*Attempt, error)
	DeleteAll(ctx context.Context) error
}
