package platform

import (
	"fmt"
	"syscall"
)

// MB_ICONASTERISK
const messageBeepAsterisk = 0x40

func newChime() *Chime {
	user32 := syscall.NewLazyDLL("user32.dll")
	messageBeep := user32.NewProc("MessageBeep")
	return &Chime{play: func() error {
		if err := messageBeep.Find(); err != nil {
			return fmt.Errorf("message beep: %w", err)
		}
		result, _, err := messageBeep.Call(uintptr(messageBeepAsterisk))
		if result == 0 {
			return fmt.Errorf("message beep: %w", err)
		}
		return nil
	}}
}
