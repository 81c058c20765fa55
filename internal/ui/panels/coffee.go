package panels

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

// CoffeeSource is the cup counter behind CoffeePanel.
type CoffeeSource interface {
	CoffeeLabel() string
	IncrementCoffee() (int, error)
	DecrementCoffee() (int, error)
}

// CoffeePanel shows the cup count with +/- buttons.
type CoffeePanel struct {
	source  CoffeeSource
	onError func(error)
	label   *widget.Label
	more    *widget.Button
	less    *widget.Button
	content fyne.CanvasObject
}

// NewCoffeePanel builds the panel from source.
func NewCoffeePanel(source CoffeeSource, onError func(error)) *CoffeePanel {
	panel := &CoffeePanel{
		source:  source,
		onError: onError,
		label:   widget.NewLabelWithStyle("", fyne.TextAlignCenter, fyne.TextStyle{Bold: true}),
	}
	panel.less = widget.NewButtonWithIcon("", theme.ContentRemoveIcon(), func() {
		_, err := panel.source.DecrementCoffee()
		report(panel.onError, err)
		panel.Refresh()
	})
	panel.more = widget.NewButtonWithIcon("", theme.ContentAddIcon(), func() {
		_, err := panel.source.IncrementCoffee()
		report(panel.onError, err)
		panel.Refresh()
	})
	panel.content = container.NewHBox(panel.less, layout.NewSpacer(), panel.label, layout.NewSpacer(), panel.more)
	panel.Refresh()
	return panel
}

// Content returns the root object.
func (panel *CoffeePanel) Content() fyne.CanvasObject {
	return panel.content
}

// Refresh reloads the label from source.
func (panel *CoffeePanel) Refresh() {
	panel.label.SetText(panel.source.CoffeeLabel())
}
