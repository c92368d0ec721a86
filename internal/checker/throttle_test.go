package checker

import (
	"context"
	"domainchecker/pkg/whois"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"golang.org/x/time/rate"
)

func TestThrottle_disabled(t *testing.T) {
	th := NewThrottle(ThrottleOptions{})
	require.Equal(t, rate.Inf, th.Limit())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	require.NoError(t, th.Wait(ctx), "a disabled throttle never blocks")

	th.Observe(whois.NewLookupError(whois.FailureRateLimited, "example.com", "", nil))
	require.Equal(t, rate.Inf, th.Limit())
}

func TestThrottle_backoffAndRecovery(t *testing.T) {
	th := NewThrottle(ThrottleOptions{MinInterval: 100 * time.Millisecond, MaxInterval: time.Second, RecoverySteps: 3})
	now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	th.now = func() time.Time { return now }

	require.InDelta(t, 10.0, float64(th.Limit()), 1e-9)

	limited := whois.NewLookupError(whois.FailureRateLimited, "example.com", "whois.test", nil)
	th.Observe(limited)
	require.InDelta(t, 5.0, float64(th.Limit()), 1e-9)
	require.Equal(t, now.Add(200*time.Millisecond), th.cooldownUntil)

	for range 5 {
		th.Observe(limited)
	}
	require.InDelta(t, 1.0, float64(th.Limit()), 1e-9, "never slower than MaxInterval")

	// other failures count as a served request
	th.Observe(whois.NewLookupError(whois.FailureTimeout, "example.com", "whois.test", nil))
	require.InDelta(t, 4.0, float64(th.Limit()), 1e-9)
	th.Observe(nil)
	th.Observe(errors.New("boom"))
	require.InDelta(t, 10.0, float64(th.Limit()), 1e-9, "never faster than MinInterval")
}

func TestThrottle_waitHonorsCooldownAndContext(t *testing.T) {
	th := NewThrottle(ThrottleOptions{MinInterval: time.Millisecond, MaxInterval: time.Hour})
	th.Observe(whois.NewLookupError(whois.FailureRateLimited, "example.com", "", nil))
	th.mu.Lock()
	th.cooldownUntil = time.Now().Add(time.Hour)
	th.mu.Unlock()

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	err := th.Wait(ctx)
	require.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestKeyLocker(t *testing.T) {
	l := newKeyLocker[string]()

	unlockA := l.Lock("a")
	unlockB := l.Lock("b")
	require.Equal(t, 2, l.size())

	acquired := make(chan struct{})
	go func() {
		unlock := l.Lock("a")
		close(acquired)
		unlock()
	}()

	select {
	case <-acquired:
		t.Fatal("second holder acquired a locked key")
	case <-time.After(20 * time.Millisecond):
	}

	unlockA()
	<-acquired
	unlockB()

	require.Eventually(t, func() bool { return l.size() == 0 }, time.Second, time.Millisecond)
}
