// Package panels holds the side panels of the main window. Each panel reads
// and mutates state through a narrow source interface and reports
// persistence failures through onError.
package panels

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"focusdeck/internal/core/model"
)

// TodoSource is the todo state behind TodoPanel.
type TodoSource interface {
	Todos() []model.Todo
	RemainingTodos() int
	AddTodo(text string) (bool, error)
	ToggleTodo(id string) error
	DeleteTodo(id string) error
}

// TodoPanel lists todos with an entry for new ones.
type TodoPanel struct {
	source  TodoSource
	onError func(error)
	items   []model.Todo
	entry   *widget.Entry
	add     *widget.Button
	list    *widget.List
	summary *widget.Label
	content fyne.CanvasObject
}

// NewTodoPanel builds the panel from source.
func NewTodoPanel(source TodoSource, onError func(error)) *TodoPanel {
	panel := &TodoPanel{
		source:  source,
		onError: onError,
		entry:   widget.NewEntry(),
		summary: widget.NewLabel(""),
	}
	panel.entry.SetPlaceHolder("Add a task...")
	panel.entry.OnSubmitted = func(string) { panel.submit() }
	panel.add = widget.NewButtonWithIcon("", theme.ContentAddIcon(), panel.submit)

	panel.list = widget.NewList(
		func() int { return len(panel.items) },
		func() fyne.CanvasObject {
			check := widget.NewCheck("", nil)
			remove := widget.NewButtonWithIcon("", theme.DeleteIcon(), nil)
			remove.Importance = widget.LowImportance
			return container.NewBorder(nil, nil, nil, remove, check)
		},
		panel.bindItem,
	)

	input := container.NewBorder(nil, nil, nil, panel.add, panel.entry)
	panel.content = container.NewBorder(input, panel.summary, nil, nil, panel.list)
	panel.Refresh()
	return panel
}

// Content returns the root object.
func (panel *TodoPanel) Content() fyne.CanvasObject {
	return panel.content
}

// Refresh reloads the items from source.
func (panel *TodoPanel) Refresh() {
	panel.items = panel.source.Todos()
	panel.summary.SetText(fmt.Sprintf("%d of %d open", panel.source.RemainingTodos(), len(panel.items)))
	panel.list.Refresh()
}

func (panel *TodoPanel) submit() {
	added, err := panel.source.AddTodo(panel.entry.Text)
	if err != nil {
		report(panel.onError, err)
	}
	if added {
		panel.entry.SetText("")
	}
	panel.Refresh()
}

func (panel *TodoPanel) bindItem(id widget.ListItemID, object fyne.CanvasObject) {
	if id < 0 || id >= len(panel.items) {
		return
	}
	item := panel.items[id]
	row := object.(*fyne.Container)
	check := row.Objects[0].(*widget.Check)
	remove := row.Objects[1].(*widget.Button)

	check.OnChanged = nil
	check.SetText(item.Text)
	check.SetChecked(item.Completed)
	check.OnChanged = func(bool) {
		report(panel.onError, panel.source.ToggleTodo(item.ID))
		panel.Refresh()
	}
	remove.OnTapped = func() {
		report(panel.onError, panel.source.DeleteTodo(item.ID))
		panel.Refresh()
	}
}

func report(onError func(error), err error) {
	if err != nil && onError != nil {
		onError(err)
	}
}
