// Package coffee counts cups of coffee.
package coffee

import "fmt"

// Counter is a non-negative cup counter.
type Counter struct {
	count int
}

// NewCounter creates a counter. Negative starting values become zero.
func NewCounter(count int) *Counter {
	if count < 0 {
		count = 0
	}
	return &Counter{count: count}
}

// Increment adds a cup.
func (counter *Counter) Increment() int {
	counter.count++
	return counter.count
}

// Decrement removes a cup, never going below zero.
func (counter *Counter) Decrement() int {
	if counter.count > 0 {
		counter.count--
	}
	return counter.count
}

// Count returns the number of cups.
func (counter *Counter) Count() int {
	return counter.count
}

// Label describes the count for display.
func (counter *Counter) Label() string {
	switch counter.count {
	case 0:
		return "No coffee yet"
	case 1:
		return "1 cup today"
	default:
		return fmt.Sprintf("%d cups today", counter.count)
	}
}
