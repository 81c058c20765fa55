package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"focusdeck/internal/app"
	"focusdeck/internal/core/stats"
)

func newStatsCmd(rt *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Print focus statistics, coffee count and open tasks",
		RunE: func(cmd *cobra.Command, args []string) error {
			host, err := openHost(rt, app.Options{})
			if err != nil {
				return err
			}
			defer func() {
				_ = host.Close()
			}()
			return printStats(cmd.OutOrStdout(), host)
		},
	}
}

func printStats(out io.Writer, host *app.Host) error {
	current := host.Stats()
	last := "never"
	if !current.LastSessionAt.IsZero() {
		last = current.LastSessionAt.Local().Format("2006-01-02 15:04")
	}
	config := host.Config()

	writer := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(writer, "Sessions:\t%d\n", current.TotalSessions)
	fmt.Fprintf(writer, "Focus time:\t%s\n", stats.FormatMinutes(current.TotalFocusMinutes))
	fmt.Fprintf(writer, "Last session:\t%s\n", last)
	fmt.Fprintf(writer, "Coffee:\t%s\n", host.CoffeeLabel())
	fmt.Fprintf(writer, "Scene:\t%s\n", host.Background().Name)
	fmt.Fprintf(writer, "Timer:\t%d/%d/%d min, long break every %d\n",
		config.WorkDuration, config.ShortBreakDuration, config.LongBreakDuration, config.SessionsUntilLongBreak)
	fmt.Fprintf(writer, "Open tasks:\t%d\n", host.RemainingTodos())
	if err := writer.Flush(); err != nil {
		return fmt.Errorf("write stats: %w", err)
	}

	for _, item := range host.Todos() {
		if item.Completed {
			continue
		}
		if _, err := fmt.Fprintf(out, "  - %s\n", item.Text); err != nil {
			return fmt.Errorf("write stats: %w", err)
		}
	}
	return nil
}
