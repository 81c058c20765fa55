package platform

import (
	"errors"
	"fmt"
	"os/exec"
)

// ErrChimeUnavailable is returned when no sound player was found.
var ErrChimeUnavailable = errors.New("no sound player available")

// soundCommand is one candidate player invocation.
type soundCommand struct {
	name string
	args []string
}

// Chime plays the phase-boundary sound through a system player.
type Chime struct {
	play func() error
}

// NewChime returns the chime for the current OS.
func NewChime() *Chime {
	return newChime()
}

// Notify plays the sound and waits for the player to exit.
func (chime *Chime) Notify() error {
	if chime == nil || chime.play == nil {
		return ErrChimeUnavailable
	}
	return chime.play()
}

// commandChime picks the first candidate found on PATH.
func commandChime(candidates []soundCommand, lookPath func(string) (string, error)) *Chime {
	for _, candidate := range candidates {
		path, err := lookPath(candidate.name)
		if err != nil {
			continue
		}
		args := candidate.args
		return &Chime{play: func() error {
			if err := exec.Command(path, args...).Run(); err != nil {
				return fmt.Errorf("play chime with %s: %w", candidate.name, err)
			}
			return nil
		}}
	}
	return &Chime{}
}
