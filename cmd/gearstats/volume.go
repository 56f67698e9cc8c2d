package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

var (
	weeks     int
	weekStart string
)

var volumeCmd = &cobra.Command{
	Use:   "volume",
	Short: "Training volume (sum of weight x reps)",
}

var weeklyVolumeCmd = &cobra.Command{
	Use:   "weekly",
	Short: "Volume per Monday-based week, oldest first",
	Example: `  gearstats volume weekly -u 6f1c... --weeks 12
  gearstats volume weekly -u 6f1c... --json`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := commandContext(cmd)
		defer cancel()

		e, err := newAnalyzerEnv(ctx)
		if err != nil {
			return err
		}
		defer e.Close()

		volumes, err := e.analyzer.WeeklyVolume(ctx, e.userID, weeks)
		if err != nil {
			return err
		}
		if jsonOutput {
			return printJSON(cmd, volumes)
		}

		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
		_, _ = fmt.Fprintln(w, "WEEK START\tWEEK END\tVOLUME")
		for _, v := range volumes {
			_, _ = fmt.Fprintf(w, "%s\t%s\t%s\n", v.WeekStart, v.WeekEnd, v.TotalVolume)
		}
		return w.Flush()
	},
}

var dailyVolumeCmd = &cobra.Command{
	Use:   "daily",
	Short: "Volume per day over the last N calendar weeks",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := commandContext(cmd)
		defer cancel()

		e, err := newAnalyzerEnv(ctx)
		if err != nil {
			return err
		}
		defer e.Close()

		volumes, err := e.analyzer.DailyVolume(ctx, e.userID, weeks, weekStart)
		if err != nil {
			return err
		}
		if jsonOutput {
			return printJSON(cmd, volumes)
		}

		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
		_, _ = fmt.Fprintln(w, "DATE\tVOLUME")
		for _, v := range volumes {
			_, _ = fmt.Fprintf(w, "%s\t%s\n", v.Date, v.TotalVolume)
		}
		return w.Flush()
	},
}

func init() {
	volumeCmd.PersistentFlags().IntVarP(&weeks, "weeks", "w", 12, "number of weeks")
	dailyVolumeCmd.Flags().StringVar(&weekStart, "week-start", "", "first day of the week, e.g. SUNDAY or MON (config default when empty)")

	volumeCmd.AddCommand(weeklyVolumeCmd)
	volumeCmd.AddCommand(dailyVolumeCmd)
}
