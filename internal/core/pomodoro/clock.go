package pomodoro

import (
	"context"
	"sort"
	"sync"
	"time"
)

// Clock delivers periodic ticks. The returned stop function cancels the
// subscription; it may be called more than once and from inside fn.
type Clock interface {
	Every(interval time.Duration, fn func(time.Time)) (stop func())
}

// SystemClock ticks from time.Ticker on a dedicated goroutine.
type SystemClock struct{}

// Every starts a ticker goroutine that calls fn until stopped.
func (SystemClock) Every(interval time.Duration, fn func(time.Time)) func() {
	if interval <= 0 {
		interval = time.Second
	}
	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case tickTime := <-ticker.C:
				if ctx.Err() != nil {
					return
				}
				fn(tickTime)
			}
		}
	}()
	return cancel
}

// ManualClock fires its subscribers only when told to. Hosts use it in
// tests to step the timer deterministically.
type ManualClock struct {
	mu   sync.Mutex
	now  time.Time
	next int
	subs map[int]*manualSubscription
}

type manualSubscription struct {
	interval time.Duration
	fn       func(time.Time)
}

// NewManualClock creates a ManualClock starting at start.
func NewManualClock(start time.Time) *ManualClock {
	return &ManualClock{
		now:  start,
		subs: make(map[int]*manualSubscription),
	}
}

// Every registers fn. The interval is recorded but Fire drives the pace.
func (clock *ManualClock) Every(interval time.Duration, fn func(time.Time)) func() {
	clock.mu.Lock()
	id := clock.next
	clock.next++
	clock.subs[id] = &manualSubscription{interval: interval, fn: fn}
	clock.mu.Unlock()

	return func() {
		clock.mu.Lock()
		delete(clock.subs, id)
		clock.mu.Unlock()
	}
}

// Fire delivers count ticks, one second apart, to every live subscription.
// A subscription cancelled during a tick receives no further ticks.
func (clock *ManualClock) Fire(count int) {
	for i := 0; i < count; i++ {
		clock.mu.Lock()
		clock.now = clock.now.Add(time.Second)
		now := clock.now
		ids := make([]int, 0, len(clock.subs))
		for id := range clock.subs {
			ids = append(ids, id)
		}
		clock.mu.Unlock()

		sort.Ints(ids)
		for _, id := range ids {
			clock.mu.Lock()
			sub, ok := clock.subs[id]
			clock.mu.Unlock()
			if ok {
				sub.fn(now)
			}
		}
	}
}

// Active returns the number of live subscriptions.
func (clock *ManualClock) Active() int {
	clock.mu.Lock()
	defer clock.mu.Unlock()
	return len(clock.subs)
}

// Now returns the clock's current time.
func (clock *ManualClock) Now() time.Time {
	clock.mu.Lock()
	defer clock.mu.Unlock()
	return clock.now
}
