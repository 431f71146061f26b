package commands

import (
	"context"
	"time"
)

// EvictExpiredTokensCommandHandler prunes expired entries from the token
// denylist. A denied token past its expiry can no longer pass signature
// verification, so keeping its row serves no purpose.
type EvictExpiredTokensCommandHandler struct {
	uowFactory DenylistUoWFactory
	now        func() time.Time
}

// NewEvictExpiredTokensCommandHandler creates a handler for denylist pruning.
func NewEvictExpiredTokensCommandHandler(uowFactory DenylistUoWFactory) EvictExpiredTokensCommandHandler {
	return EvictExpiredTokensCommandHandler{
		uowFactory: uowFactory,
		now:        time.Now,
	}
}

// Handle removes denylist entries that expired before the current time.
// Returns the number of entries removed.
func (h *EvictExpiredTokensCommandHandler) Handle(ctx context.Context, command EvictExpiredTokensCommand) (int64, error) {
	if err := command.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	removed, err := uow.TokenDenylist().DeleteExpired(ctx, h.now())
	if err != nil {
		return 0, err
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return removed, nil
}
