package pomodoro

import (
	"sync"
	"time"

	"focusdeck/internal/core/model"
)

// RunnerOptions contains runtime options for Runner.
type RunnerOptions struct {
	Clock    Clock
	Interval time.Duration
	Notifier Notifier
	// OnSessionComplete is called while the Runner holds its lock and must
	// not call back into the Runner.
	OnSessionComplete func(workMinutes int)
}

// Runner owns an Engine and the single clock subscription that drives it.
// All commands and ticks are serialized.
type Runner struct {
	mu                sync.Mutex
	engine            *Engine
	clock             Clock
	interval          time.Duration
	stop              func()
	generation        uint64
	events            []chan Event
	onSessionComplete func(workMinutes int)
	closed            bool
}

// NewRunner creates a stopped Runner in the initial work phase.
func NewRunner(config model.Config, options RunnerOptions) *Runner {
	if options.Clock == nil {
		options.Clock = SystemClock{}
	}
	if options.Interval <= 0 {
		options.Interval = time.Second
	}

	runner := &Runner{
		clock:             options.Clock,
		interval:          options.Interval,
		onSessionComplete: options.OnSessionComplete,
	}
	runner.engine = New(config,
		WithNotifier(options.Notifier),
		WithSessionObserver(runner.handleSessionCompleteLocked),
	)
	return runner
}

// Subscribe registers a new observer channel. Slow observers miss events
// rather than block the timer.
func (runner *Runner) Subscribe(buffer int) <-chan Event {
	if buffer <= 0 {
		buffer = 1
	}
	ch := make(chan Event, buffer)
	runner.mu.Lock()
	if runner.closed {
		close(ch)
	} else {
		runner.events = append(runner.events, ch)
	}
	runner.mu.Unlock()
	return ch
}

// StartPause toggles the countdown and starts or stops the clock with it.
func (runner *Runner) StartPause() Snapshot {
	runner.mu.Lock()
	defer runner.mu.Unlock()
	if runner.closed {
		return runner.engine.Snapshot()
	}

	runner.engine.StartPause()
	runner.syncClockLocked()
	snapshot := runner.engine.Snapshot()
	runner.emitLocked(Event{Type: EventToggle, Snapshot: snapshot, At: time.Now()})
	return snapshot
}

// Reset stops the clock and returns the engine to its initial state.
func (runner *Runner) Reset() Snapshot {
	runner.mu.Lock()
	defer runner.mu.Unlock()

	runner.stopClockLocked()
	runner.engine.Reset()
	snapshot := runner.engine.Snapshot()
	runner.emitLocked(Event{Type: EventReset, Snapshot: snapshot, At: time.Now()})
	return snapshot
}

// Reconfigure stops the clock, replaces the configuration and resets.
func (runner *Runner) Reconfigure(config model.Config) Snapshot {
	runner.mu.Lock()
	defer runner.mu.Unlock()

	runner.stopClockLocked()
	runner.engine.Reconfigure(config)
	snapshot := runner.engine.Snapshot()
	runner.emitLocked(Event{Type: EventReset, Snapshot: snapshot, At: time.Now()})
	return snapshot
}

// Snapshot returns the current engine state.
func (runner *Runner) Snapshot() Snapshot {
	runner.mu.Lock()
	defer runner.mu.Unlock()
	return runner.engine.Snapshot()
}

// Config returns the active configuration.
func (runner *Runner) Config() model.Config {
	runner.mu.Lock()
	defer runner.mu.Unlock()
	return runner.engine.Config()
}

// Close stops the clock and closes all observer channels.
func (runner *Runner) Close() {
	runner.mu.Lock()
	if runner.closed {
		runner.mu.Unlock()
		return
	}
	runner.stopClockLocked()
	runner.closed = true
	events := runner.events
	runner.events = nil
	runner.mu.Unlock()

	for _, ch := range events {
		close(ch)
	}
}

func (runner *Runner) tick(generation uint64, tickTime time.Time) {
	runner.mu.Lock()
	defer runner.mu.Unlock()

	// A subscription replaced or cancelled after this tick was queued.
	if runner.closed || runner.stop == nil || generation != runner.generation {
		return
	}

	before := runner.engine.Mode()
	runner.engine.Tick()
	snapshot := runner.engine.Snapshot()

	eventType := EventTick
	if snapshot.Mode != before {
		eventType = EventPhaseChange
	}
	runner.emitLocked(Event{Type: eventType, Snapshot: snapshot, At: tickTime})
	runner.syncClockLocked()
}

// The callback runs before EventSessionComplete is published.
func (runner *Runner) handleSessionCompleteLocked(workMinutes int) {
	if runner.onSessionComplete != nil {
		runner.onSessionComplete(workMinutes)
	}
	runner.emitLocked(Event{
		Type:        EventSessionComplete,
		Snapshot:    runner.engine.Snapshot(),
		WorkMinutes: workMinutes,
		At:          time.Now(),
	})
}

func (runner *Runner) syncClockLocked() {
	running := runner.engine.Running()
	if running && runner.stop == nil {
		runner.startClockLocked()
		return
	}
	if !running && runner.stop != nil {
		runner.stopClockLocked()
	}
}

func (runner *Runner) startClockLocked() {
	runner.stopClockLocked()
	generation := runner.generation
	runner.stop = runner.clock.Every(runner.interval, func(tickTime time.Time) {
		runner.tick(generation, tickTime)
	})
}

func (runner *Runner) stopClockLocked() {
	if runner.stop != nil {
		runner.stop()
		runner.stop = nil
	}
	runner.generation++
}

func (runner *Runner) emitLocked(event Event) {
	for _, ch := range runner.events {
		select {
		case ch <- event:
		default:
		}
	}
}
