// Package session is the per-user quiz session store. One string value per
// user: "" means no active question, anything else is the question currently
// awaiting an answer. Absence of the key means the user was never seen.
package session

import (
	"context"
	"database/sql"
	"fmt"
)

// ErrNotFound is returned by Get when no session exists for the key.
var ErrNotFound = sql.ErrNoRows

// Store is the key-value surface the session controller needs. Both front ends
// share one store; keys are platform-prefixed (see Key) so they never collide.
type Store interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
}

// Key builds the store key for a platform user, e.g. "tg_123456" or "vk_98765".
// The prefix must be preserved: both bots write into the same store.
func Key(platform string, userID int64) string {
	return fmt.Sprintf("%s_%d", platform, userID)
}
