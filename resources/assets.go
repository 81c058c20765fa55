// Package resources embeds the application and tray icons.
package resources

import (
	"embed"
	"fmt"
	"sync"

	"fyne.io/fyne/v2"
)

const logoDir = "logo/"

// Icon file names.
const (
	AppIcon         = "focusdeck.png"
	TrayRunningIcon = "tray_running.png"
	TrayPausedIcon  = "tray_paused.png"
	TrayBreakIcon   = "tray_break.png"
)

//go:embed logo/*.png
var logoFS embed.FS

var logoCache sync.Map

// Logo returns a Fyne resource for the given logo file.
func Logo(fileName string) (fyne.Resource, error) {
	path := logoDir + fileName
	if cached, ok := logoCache.Load(path); ok {
		return cached.(fyne.Resource), nil
	}

	data, err := logoFS.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load resource %s: %w", path, err)
	}

	resource := fyne.NewStaticResource(fileName, data)
	actual, _ := logoCache.LoadOrStore(path, resource)
	return actual.(fyne.Resource), nil
}

// MustLogo returns a Fyne resource or panics on error.
func MustLogo(fileName string) fyne.Resource {
	resource, err := Logo(fileName)
	if err != nil {
		panic(err)
	}
	return resource
}
