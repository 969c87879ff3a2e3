package client

import "sync"

// refreshOutcome is the settled result of one token refresh exchange, handed
// to every request that was waiting on it.
type refreshOutcome struct {
	accessToken string
	err         error
}

// refreshCoordinator guarantees that at most one token refresh HTTP call is
// in flight per client, no matter how many requests fail with 401
// concurrently. The first request to observe no refresh in progress becomes
// the leader and performs the exchange; everyone else parks on a oneshot
// channel until the leader settles.
//
// The mutex is required: unlike an event-loop runtime, goroutines really do
// race on the check-then-set of the refreshing flag.
type refreshCoordinator struct {
	mu         sync.Mutex
	refreshing bool
	waiters    []chan refreshOutcome
}

// begin decides this request's role in the current refresh cycle. It returns
// leader=true when the caller must perform the refresh exchange itself.
// Otherwise it returns a channel that receives the in-flight exchange's
// outcome.
func (rc *refreshCoordinator) begin() (leader bool, wait <-chan refreshOutcome) {
	rc.mu.Lock()
	defer rc.mu.Unlock()
	if rc.refreshing {
		// Buffered so the leader never blocks on a waiter that gave up.
		ch := make(chan refreshOutcome, 1)
		rc.waiters = append(rc.waiters, ch)
		return false, ch
	}
	rc.refreshing = true
	return true, nil
}

// settle delivers the outcome to every waiter in FIFO order and resets the
// coordinator for the next cycle. The queue is fully drained before the
// refreshing flag drops, so no waiter can ever straddle two cycles.
func (rc *refreshCoordinator) settle(out refreshOutcome) {
	rc.mu.Lock()
	waiters := rc.waiters
	rc.waiters = nil
	rc.refreshing = false
	rc.mu.Unlock()

	for _, ch := range waiters {
		ch <- out
	}
}
