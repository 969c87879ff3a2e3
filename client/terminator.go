package client

import (
	"context"
	"sync"

	"github.com/rs/zerolog/log"
)

// sessionTerminator serializes session termination. Concurrent failed
// requests queue up behind the first one; no caller returns while the
// credential wipe is still running.
type sessionTerminator struct {
	mu sync.Mutex
}

// terminateSession clears all credential state and emits a single
// session-expired notification. A late trigger blocks until the wipe in
// progress finishes, then finds no session left and returns without doing
// anything, so many concurrent 401s produce exactly one user-facing event
// and every caller observes the credentials already gone.
func (c *Client) terminateSession(ctx context.Context) {
	c.termination.mu.Lock()
	defer c.termination.mu.Unlock()

	if !c.creds.Current().Authenticated() {
		return
	}
	if err := c.creds.Clear(ctx); err != nil {
		log.Error().Err(err).Msg("Failed to clear credentials while terminating session")
	}

	log.Info().Msg("Session terminated, user must sign in again")
	c.notify.SessionExpired()
}
