// Package app binds the pomodoro runner to the widget's collaborators and
// their persisted state.
package app

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"focusdeck/internal/core/background"
	"focusdeck/internal/core/coffee"
	"focusdeck/internal/core/model"
	"focusdeck/internal/core/pomodoro"
	"focusdeck/internal/core/stats"
	"focusdeck/internal/core/todo"
	"focusdeck/internal/logger"
	"focusdeck/internal/storage"
)

// MusicURL is the lofi stream opened by the music panel.
const MusicURL = "https://www.youtube.com/embed/jfKfPfyJRdk"

// Options configures a Host.
type Options struct {
	Clock    pomodoro.Clock
	Interval time.Duration
	Notifier pomodoro.Notifier
	Logger   *logger.Logger
}

// Host owns the runner and the persisted collaborator state.
// Locks are taken in runner-then-host order; Host never calls the runner
// while holding its own lock.
type Host struct {
	store  storage.Store
	log    *logger.Logger
	runner *pomodoro.Runner

	mu           sync.Mutex
	todos        *todo.List
	stats        *stats.Tracker
	coffee       *coffee.Counter
	background   background.Preset
	musicPlaying bool
}

// New loads persisted state from store. Missing or malformed values fall
// back to defaults and are logged.
func New(store storage.Store, options Options) *Host {
	log := options.Logger
	if log == nil {
		log = logger.Nop()
	}
	host := &Host{store: store, log: log}

	config := load(host, storage.KeyConfig, model.DefaultConfig())
	if err := config.Validate(); err != nil {
		log.Warnw("stored pomodoro config is invalid, normalizing", "error", err)
		config = config.Normalized()
	}
	host.todos = todo.New(load(host, storage.KeyTodos, []model.Todo(nil)))
	host.stats = stats.NewTracker(load(host, storage.KeyStats, model.Stats{}))
	host.coffee = coffee.NewCounter(load(host, storage.KeyCoffee, 0))
	host.background, _ = background.Find(load(host, storage.KeyBackground, background.Default().ID))

	host.runner = pomodoro.NewRunner(config, pomodoro.RunnerOptions{
		Clock:             options.Clock,
		Interval:          options.Interval,
		Notifier:          options.Notifier,
		OnSessionComplete: host.RecordSession,
	})
	return host
}

func load[T any](host *Host, key string, fallback T) T {
	value, err := storage.Value(host.store, key, fallback)
	if err != nil {
		host.log.Warnw("falling back to default", "key", key, "error", err)
	}
	return value
}

// Runner returns the timer driving the widget.
func (host *Host) Runner() *pomodoro.Runner {
	return host.runner
}

// Config returns the active pomodoro configuration.
func (host *Host) Config() model.Config {
	return host.runner.Config()
}

// SaveConfig validates, persists and applies config. Applying it resets the
// timer.
func (host *Host) SaveConfig(config model.Config) error {
	if err := config.Validate(); err != nil {
		return err
	}
	if err := host.persist(storage.KeyConfig, config); err != nil {
		return err
	}
	host.runner.Reconfigure(config)
	host.log.Infow("pomodoro config saved",
		"work", config.WorkDuration,
		"short_break", config.ShortBreakDuration,
		"long_break", config.LongBreakDuration,
		"sessions_until_long_break", config.SessionsUntilLongBreak,
	)
	return nil
}

// RecordSession adds a finished focus session to the statistics and
// persists them. The runner calls it under its lock.
func (host *Host) RecordSession(workMinutes int) {
	host.mu.Lock()
	recorded := host.stats.Record(workMinutes)
	host.mu.Unlock()

	host.log.Infow("focus session complete", "minutes", workMinutes, "total_sessions", recorded.TotalSessions)
	_ = host.persist(storage.KeyStats, recorded)
}

// Todos returns a copy of the todo items.
func (host *Host) Todos() []model.Todo {
	host.mu.Lock()
	defer host.mu.Unlock()
	return host.todos.Items()
}

// RemainingTodos counts open items.
func (host *Host) RemainingTodos() int {
	host.mu.Lock()
	defer host.mu.Unlock()
	return host.todos.Remaining()
}

// AddTodo appends an item. Blank text is ignored and reports false.
func (host *Host) AddTodo(text string) (bool, error) {
	host.mu.Lock()
	_, added := host.todos.Add(text)
	items := host.todos.Items()
	host.mu.Unlock()
	if !added {
		return false, nil
	}
	return true, host.persist(storage.KeyTodos, items)
}

// ToggleTodo flips the completion flag of id.
func (host *Host) ToggleTodo(id string) error {
	return host.mutateTodos(func(list *todo.List) bool { return list.Toggle(id) })
}

// DeleteTodo removes id.
func (host *Host) DeleteTodo(id string) error {
	return host.mutateTodos(func(list *todo.List) bool { return list.Delete(id) })
}

func (host *Host) mutateTodos(mutate func(*todo.List) bool) error {
	host.mu.Lock()
	changed := mutate(host.todos)
	items := host.todos.Items()
	host.mu.Unlock()
	if !changed {
		return nil
	}
	return host.persist(storage.KeyTodos, items)
}

// Stats returns lifetime focus statistics.
func (host *Host) Stats() model.Stats {
	host.mu.Lock()
	defer host.mu.Unlock()
	return host.stats.Stats()
}

// ResetStats clears lifetime statistics.
func (host *Host) ResetStats() error {
	host.mu.Lock()
	cleared := host.stats.Reset()
	host.mu.Unlock()
	return host.persist(storage.KeyStats, cleared)
}

// Coffee returns the cup count.
func (host *Host) Coffee() int {
	host.mu.Lock()
	defer host.mu.Unlock()
	return host.coffee.Count()
}

// CoffeeLabel describes the cup count.
func (host *Host) CoffeeLabel() string {
	host.mu.Lock()
	defer host.mu.Unlock()
	return host.coffee.Label()
}

// IncrementCoffee adds a cup.
func (host *Host) IncrementCoffee() (int, error) {
	host.mu.Lock()
	count := host.coffee.Increment()
	host.mu.Unlock()
	return count, host.persist(storage.KeyCoffee, count)
}

// DecrementCoffee removes a cup, never going below zero.
func (host *Host) DecrementCoffee() (int, error) {
	host.mu.Lock()
	count := host.coffee.Decrement()
	host.mu.Unlock()
	return count, host.persist(storage.KeyCoffee, count)
}

// Background returns the selected gradient.
func (host *Host) Background() background.Preset {
	host.mu.Lock()
	defer host.mu.Unlock()
	return host.background
}

// ErrUnknownBackground is returned for an id outside the preset list.
var ErrUnknownBackground = errors.New("unknown background")

// SelectBackground switches to the preset with id.
func (host *Host) SelectBackground(id string) (background.Preset, error) {
	preset, ok := background.Find(id)
	if !ok {
		return host.Background(), fmt.Errorf("%w: %q", ErrUnknownBackground, id)
	}
	host.mu.Lock()
	host.background = preset
	host.mu.Unlock()
	return preset, host.persist(storage.KeyBackground, preset.ID)
}

// MusicPlaying reports the music toggle.
func (host *Host) MusicPlaying() bool {
	host.mu.Lock()
	defer host.mu.Unlock()
	return host.musicPlaying
}

// ToggleMusic flips the music toggle and returns the new value. It is not
// persisted.
func (host *Host) ToggleMusic() bool {
	host.mu.Lock()
	defer host.mu.Unlock()
	host.musicPlaying = !host.musicPlaying
	return host.musicPlaying
}

// Close stops the timer and closes the store.
func (host *Host) Close() error {
	host.runner.Close()
	if err := host.store.Close(); err != nil {
		return fmt.Errorf("close store: %w", err)
	}
	return nil
}

func (host *Host) persist(key string, value any) error {
	if err := host.store.Set(key, value); err != nil {
		host.log.Errorw("persist state", "key", key, "error", err)
		return fmt.Errorf("persist %s: %w", key, err)
	}
	return nil
}
