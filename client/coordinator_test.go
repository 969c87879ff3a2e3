package client

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRefreshCoordinator_FirstCallerLeads(t *testing.T) {
	rc := &refreshCoordinator{}

	leader, wait := rc.begin()

	assert.True(t, leader)
	assert.Nil(t, wait)
}

func TestRefreshCoordinator_LaterCallersWait(t *testing.T) {
	rc := &refreshCoordinator{}

	leader, _ := rc.begin()
	require.True(t, leader)

	follower, wait := rc.begin()
	assert.False(t, follower)
	require.NotNil(t, wait)

	rc.settle(refreshOutcome{accessToken: "A2"})

	select {
	case out := <-wait:
		assert.NoError(t, out.err)
		assert.Equal(t, "A2", out.accessToken)
	case <-time.After(time.Second):
		t.Fatal("waiter was never settled")
	}
}

func TestRefreshCoordinator_SettleDrainsAllWaitersAndResets(t *testing.T) {
	rc := &refreshCoordinator{}
	leader, _ := rc.begin()
	require.True(t, leader)

	const n = 16
	waits := make([]<-chan refreshOutcome, n)
	for i := range waits {
		isLeader, wait := rc.begin()
		require.False(t, isLeader)
		waits[i] = wait
	}

	rc.settle(refreshOutcome{accessToken: "A2"})

	for i, wait := range waits {
		select {
		case out := <-wait:
			assert.Equal(t, "A2", out.accessToken, "waiter %d", i)
		default:
			t.Fatalf("waiter %d not settled before flag reset", i)
		}
	}

	// The next cycle starts from scratch.
	nextLeader, _ := rc.begin()
	assert.True(t, nextLeader)
	rc.settle(refreshOutcome{accessToken: "A3"})
}

func TestRefreshCoordinator_ExactlyOneLeaderUnderRace(t *testing.T) {
	rc := &refreshCoordinator{}

	const n = 32
	var wg sync.WaitGroup
	var mu sync.Mutex
	leaders := 0
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			leader, _ := rc.begin()
			if leader {
				mu.Lock()
				leaders++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, leaders, "exactly one goroutine may perform the refresh")
	rc.settle(refreshOutcome{accessToken: "A2"})
}

func TestTerminateSession_ConcurrentTriggersNotifyOnce(t *testing.T) {
	creds := newFakeCreds("A1", "R1")
	notify := &countingNotifier{}
	c := New("http://127.0.0.1:0", creds, notify, time.Second)

	const n = 16
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			c.terminateSession(context.Background())
		}()
	}
	wg.Wait()

	expired, _, _ := notify.counts()
	assert.Equal(t, 1, expired, "termination must be idempotent")
	assert.False(t, creds.Current().Authenticated())
}

// slowClearCreds stretches the credential wipe so the test can catch a
// termination trigger returning while the wipe is still running.
type slowClearCreds struct {
	*fakeCreds
	delay time.Duration
}

func (s *slowClearCreds) Clear(ctx context.Context) error {
	time.Sleep(s.delay)
	return s.fakeCreds.Clear(ctx)
}

func TestTerminateSession_CallersReturnOnlyAfterClear(t *testing.T) {
	creds := &slowClearCreds{fakeCreds: newFakeCreds("A1", "R1"), delay: 50 * time.Millisecond}
	notify := &countingNotifier{}
	c := New("http://127.0.0.1:0", creds, notify, time.Second)

	const n = 4
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			c.terminateSession(context.Background())
			assert.False(t, creds.Current().Authenticated(),
				"termination returned while the credentials were still present")
		}()
	}
	wg.Wait()

	expired, _, _ := notify.counts()
	assert.Equal(t, 1, expired)
}

func TestTerminateSession_NoSessionNoNotification(t *testing.T) {
	notify := &countingNotifier{}
	c := New("http://127.0.0.1:0", &fakeCreds{}, notify, time.Second)

	c.terminateSession(context.Background())

	expired, _, _ := notify.counts()
	assert.Zero(t, expired, "terminating a non-existent session is silent")
}
