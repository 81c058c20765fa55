// Package background lists the gradient presets used behind the widget.
package background

import "image/color"

// Preset is a named two-colour gradient.
type Preset struct {
	ID   string
	Name string
	From color.NRGBA
	To   color.NRGBA
}

var presets = []Preset{
	{ID: "city", Name: "City", From: color.NRGBA{R: 24, G: 32, B: 72, A: 255}, To: color.NRGBA{R: 120, G: 60, B: 140, A: 255}},
	{ID: "lofi", Name: "Lofi", From: color.NRGBA{R: 58, G: 36, B: 80, A: 255}, To: color.NRGBA{R: 230, G: 140, B: 110, A: 255}},
	{ID: "retro", Name: "Retro", From: color.NRGBA{R: 20, G: 20, B: 40, A: 255}, To: color.NRGBA{R: 240, G: 70, B: 150, A: 255}},
	{ID: "dusk", Name: "Dusk", From: color.NRGBA{R: 40, G: 48, B: 90, A: 255}, To: color.NRGBA{R: 250, G: 180, B: 90, A: 255}},
	{ID: "forest", Name: "Forest", From: color.NRGBA{R: 16, G: 44, B: 32, A: 255}, To: color.NRGBA{R: 90, G: 150, B: 100, A: 255}},
}

// Presets returns all presets in display order.
func Presets() []Preset {
	return append([]Preset(nil), presets...)
}

// Default returns the first preset.
func Default() Preset {
	return presets[0]
}

// Find returns the preset with id, or the default preset.
func Find(id string) (Preset, bool) {
	for _, preset := range presets {
		if preset.ID == id {
			return preset, true
		}
	}
	return Default(), false
}

// FindByName returns the preset with name, or the default preset.
func FindByName(name string) (Preset, bool) {
	for _, preset := range presets {
		if preset.Name == name {
			return preset, true
		}
	}
	return Default(), false
}

// Names returns preset names in display order.
func Names() []string {
	names := make([]string, 0, len(presets))
	for _, preset := range presets {
		names = append(names, preset.Name)
	}
	return names
}
