// Package bankhistory is the append-only audit sink for account operations.
package bankhistory

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/cashops/cash-bank/internal/domain"
)

// Repo provides data access layer interface needed by the history sink.
//
//go:generate mockgen -source history.go -destination history_mock.go -package bankhistory
type Repo interface {
	CreateOperation(ctx context.Context, op domain.Operation) error
}

// History records every operation outcome, including denied and failed
// ones. Its methods never panic: a failing audit write is logged and
// surfaced as an error, but it must not turn a benign rejection into a
// crash, so callers do not let it override the operation outcome.
type History struct {
	repo Repo
}

// New returns a History over the given operation log.
func New(repo Repo) (*History, error) {
	if repo == nil {
		return nil, domain.ErrConfiguration
	}

	return &History{repo: repo}, nil
}

// LogOperation appends the operation with its final outcome attached.
func (h *History) LogOperation(ctx context.Context, op domain.Operation, succeeded bool) error {
	op.Succeeded = succeeded

	if err := h.repo.CreateOperation(ctx, op); err != nil {
		zerolog.Ctx(ctx).Error().Err(err).
			Str("kind", string(op.Kind)).
			Str("username", op.User.Name).
			Msg("audit log append failed")

		return err
	}

	return nil
}

// LogUnauthorized appends an audit record for a denied operation.
func (h *History) LogUnauthorized(ctx context.Context, op domain.Operation) error {
	return h.LogOperation(ctx, op, false)
}
