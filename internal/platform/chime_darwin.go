package platform

import "os/exec"

func newChime() *Chime {
	return commandChime([]soundCommand{
		{name: "afplay", args: []string{"/System/Library/Sounds/Glass.aiff"}},
	}, exec.LookPath)
}
