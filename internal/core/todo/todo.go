// Package todo holds the task list shown next to the timer.
package todo

import (
	"strings"
	"time"

	"focusdeck/internal/core/model"

	"github.com/google/uuid"
)

// List is an ordered task list. It is not safe for concurrent use.
type List struct {
	items []model.Todo
	now   func() time.Time
	newID func() string
}

// New creates a list seeded with items.
func New(items []model.Todo) *List {
	return &List{
		items: append([]model.Todo(nil), items...),
		now:   time.Now,
		newID: func() string { return uuid.NewString() },
	}
}

// Add appends a task. Surrounding whitespace is trimmed and blank text is
// ignored.
func (list *List) Add(text string) (model.Todo, bool) {
	text = strings.TrimSpace(text)
	if text == "" {
		return model.Todo{}, false
	}
	item := model.Todo{
		ID:        list.newID(),
		Text:      text,
		CreatedAt: list.now().UTC(),
	}
	list.items = append(list.items, item)
	return item, true
}

// Toggle flips the completion flag of the task with id.
func (list *List) Toggle(id string) bool {
	for index := range list.items {
		if list.items[index].ID == id {
			list.items[index].Completed = !list.items[index].Completed
			return true
		}
	}
	return false
}

// Delete removes the task with id.
func (list *List) Delete(id string) bool {
	for index := range list.items {
		if list.items[index].ID == id {
			list.items = append(list.items[:index], list.items[index+1:]...)
			return true
		}
	}
	return false
}

// Items returns a copy of the tasks in insertion order.
func (list *List) Items() []model.Todo {
	return append([]model.Todo(nil), list.items...)
}

// Len returns the number of tasks.
func (list *List) Len() int {
	return len(list.items)
}

// Remaining counts tasks that are not completed.
func (list *List) Remaining() int {
	count := 0
	for _, item := range list.items {
		if !item.Completed {
			count++
		}
	}
	return count
}
