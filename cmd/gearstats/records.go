package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

var recordsCmd = &cobra.Command{
	Use:   "records",
	Short: "Personal records for the tracked lifts",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := commandContext(cmd)
		defer cancel()

		e, err := newAnalyzerEnv(ctx)
		if err != nil {
			return err
		}
		defer e.Close()

		records, err := e.analyzer.PersonalRecords(ctx, e.userID)
		if err != nil {
			return err
		}
		if jsonOutput {
			return printJSON(cmd, records)
		}

		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
		_, _ = fmt.Fprintln(w, "EXERCISE\tWEIGHT (LBS)\tREPS\tDATE\tWORKOUT")
		for _, r := range records {
			date, workout := "-", "-"
			if r.DatePerformed != nil {
				date = r.DatePerformed.String()
			}
			if r.WorkoutName != nil {
				workout = *r.WorkoutName
			}
			_, _ = fmt.Fprintf(w, "%s\t%s\t%d\t%s\t%s\n", r.ExerciseName, r.WeightLbs, r.Reps, date, workout)
		}
		return w.Flush()
	},
}
