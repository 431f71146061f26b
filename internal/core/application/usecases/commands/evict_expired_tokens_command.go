package commands

import (
	"errors"

	"watertanker/internal/pkg/guard"
)

var ErrEvictExpiredTokensCommandIsNotConstructed = errors.New(
	"EvictExpiredTokensCommand must be created via NewEvictExpiredTokensCommand constructor",
)

// EvictExpiredTokensCommand triggers removal of denylist entries whose
// tokens have already expired. Expired entries are harmless but accumulate,
// so a scheduled job issues this command periodically.
type EvictExpiredTokensCommand struct {
	guard guard.ConstructorGuard
}

// NewEvictExpiredTokensCommand creates a new command to prune the token denylist.
func NewEvictExpiredTokensCommand() EvictExpiredTokensCommand {
	return EvictExpiredTokensCommand{
		guard: guard.NewConstructorGuard(),
	}
}

// Validate ensures the command was created through the constructor.
func (c *EvictExpiredTokensCommand) Validate() error {
	return c.guard.Validate(
		ErrEvictExpiredTokensCommandIsNotConstructed,
	)
}
