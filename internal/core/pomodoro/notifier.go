package pomodoro

import (
	"errors"
	"fmt"
)

// NotifierFunc adapts a function to Notifier.
type NotifierFunc func() error

// Notify calls fn.
func (fn NotifierFunc) Notify() error {
	return fn()
}

// MultiNotifier calls every notifier and joins their errors.
type MultiNotifier []Notifier

// Notify fans out to all notifiers.
func (notifiers MultiNotifier) Notify() error {
	var errs []error
	for _, notifier := range notifiers {
		if notifier == nil {
			continue
		}
		if err := notifier.Notify(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// AsyncNotifier runs the target on its own goroutine so the caller never
// waits on audio or desktop services.
type AsyncNotifier struct {
	Target  Notifier
	OnError func(error)
}

// Notify starts the target and returns immediately.
func (notifier AsyncNotifier) Notify() error {
	if notifier.Target == nil {
		return nil
	}
	go func() {
		defer func() {
			if recovered := recover(); recovered != nil && notifier.OnError != nil {
				notifier.OnError(fmt.Errorf("notifier panic: %v", recovered))
			}
		}()
		if err := notifier.Target.Notify(); err != nil && notifier.OnError != nil {
			notifier.OnError(err)
		}
	}()
	return nil
}
