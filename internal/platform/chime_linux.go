package platform

import "os/exec"

func newChime() *Chime {
	return commandChime([]soundCommand{
		{name: "canberra-gtk-play", args: []string{"--id", "complete", "--description", "FocusDeck"}},
		{name: "paplay", args: []string{"/usr/share/sounds/freedesktop/stereo/complete.oga"}},
		{name: "aplay", args: []string{"-q", "/usr/share/sounds/alsa/Front_Center.wav"}},
	}, exec.LookPath)
}
