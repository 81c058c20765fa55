package panels

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/widget"

	"focusdeck/internal/core/background"
)

// SceneSource is the background selection behind ScenePanel.
type SceneSource interface {
	Background() background.Preset
	SelectBackground(id string) (background.Preset, error)
}

// ScenePanel picks the window gradient.
type ScenePanel struct {
	source   SceneSource
	onError  func(error)
	onChange func(background.Preset)
	selector *widget.Select
}

// NewScenePanel builds the selector. onChange receives the applied preset.
func NewScenePanel(source SceneSource, onChange func(background.Preset), onError func(error)) *ScenePanel {
	panel := &ScenePanel{source: source, onError: onError, onChange: onChange}
	panel.selector = widget.NewSelect(background.Names(), nil)
	panel.selector.SetSelected(source.Background().Name)
	panel.selector.OnChanged = panel.handleSelect
	return panel
}

// Content returns the root object.
func (panel *ScenePanel) Content() fyne.CanvasObject {
	return panel.selector
}

func (panel *ScenePanel) handleSelect(name string) {
	preset, ok := background.FindByName(name)
	if !ok {
		return
	}
	applied, err := panel.source.SelectBackground(preset.ID)
	report(panel.onError, err)
	if panel.onChange != nil {
		panel.onChange(applied)
	}
}
