package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"focusdeck/internal/app"
	"focusdeck/internal/config"
	"focusdeck/internal/logger"
	"focusdeck/internal/storage"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// cli carries the resolved options to the subcommands.
type cli struct {
	options config.Options
	log     *logger.Logger
}

func newRootCmd() *cobra.Command {
	rt := &cli{}
	v := viper.New()

	rootCmd := &cobra.Command{
		Use:   "focusdeck",
		Short: "Pomodoro focus widget",
		Long: `FocusDeck is a desktop pomodoro timer with a task list, focus
statistics, a coffee counter and a lofi music toggle.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			options, err := config.Load(v, cmd.Flags())
			if err != nil {
				return err
			}
			rt.options = options
			if rt.log == nil {
				rt.log = logger.Get(options.LogLevel)
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDesktop(rt)
		},
	}
	config.RegisterFlags(rootCmd.PersistentFlags())

	rootCmd.AddCommand(newTUICmd(rt))
	rootCmd.AddCommand(newStatsCmd(rt))
	return rootCmd
}

// openHost opens the configured store and loads the widget state from it.
func openHost(rt *cli, options app.Options) (*app.Host, error) {
	store, err := storage.Open(rt.options.Store, rt.options.DataDir)
	if err != nil {
		if store == nil || !errors.Is(err, storage.ErrCorruptState) {
			return nil, fmt.Errorf("open %s store: %w", rt.options.Store, err)
		}
		rt.log.Warnw("state file is corrupt, starting from defaults", "error", err)
	}
	rt.log.Debugw("store opened", "backend", rt.options.Store, "data_dir", rt.options.DataDir)

	if options.Logger == nil {
		options.Logger = rt.log
	}
	return app.New(store, options), nil
}
