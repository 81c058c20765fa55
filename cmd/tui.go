package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"focusdeck/internal/app"
	"focusdeck/internal/core/pomodoro"
	"focusdeck/internal/logger"
	"focusdeck/internal/platform"
	"focusdeck/internal/tui"
)

const tuiLogFileName = "focusdeck-tui.log"

func newTUICmd(rt *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Run the timer in the terminal",
		RunE: func(cmd *cobra.Command, args []string) error {
			// The terminal belongs to the UI; logs go to a file next to the state.
			if err := os.MkdirAll(rt.options.DataDir, 0o755); err != nil {
				return fmt.Errorf("create data dir: %w", err)
			}
			logPath := filepath.Join(rt.options.DataDir, tuiLogFileName)
			logFile, err := os.OpenFile(logPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
			if err != nil {
				return fmt.Errorf("open tui log: %w", err)
			}
			defer logFile.Close()
			log := logger.New(rt.options.LogLevel, logFile)
			defer func() {
				_ = log.Sync()
			}()

			host, err := openHost(rt, app.Options{Logger: log})
			if err != nil {
				return err
			}
			defer func() {
				_ = host.Close()
			}()

			engine := pomodoro.New(host.Config(),
				pomodoro.WithNotifier(pomodoro.AsyncNotifier{
					Target: platform.NewChime(),
					OnError: func(err error) {
						log.Debugw("chime failed", "error", err)
					},
				}),
				pomodoro.WithSessionObserver(host.RecordSession),
			)
			return tui.Run(engine, tui.WithFooter("state: "+rt.options.DataDir))
		},
	}
}
