package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/abhisek/mltply/internal/session"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show scores, totals and unlocked achievements",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctrl, done, err := openController(cmd)
		if err != nil {
			return err
		}
		defer done()
		printStats(cmd.OutOrStdout(), ctrl)
		return nil
	},
}

func printStats(w io.Writer, ctrl *session.Controller) {
	st := ctrl.Stats()
	fmt.Fprintf(w, "Answered:       %d\n", st.Answered)
	fmt.Fprintf(w, "Correct:        %d (%.0f%%)\n", st.Correct, st.Accuracy*100)
	fmt.Fprintf(w, "Current streak: %d\n", st.CurrentStreak)
	fmt.Fprintf(w, "Longest streak: %d\n", st.LongestStreak)
	fmt.Fprintf(w, "Personal best:  %d\n", st.PersonalBest)

	fmt.Fprintln(w)
	fmt.Fprintln(w, "Top scores:")
	board := ctrl.Leaderboard(0)
	if len(board) == 0 {
		fmt.Fprintln(w, "  none yet")
	}
	for i, sc := range board {
		fmt.Fprintf(w, "  %2d. %5d  %s\n", i+1, sc.Value, sc.CompletedAt.Local().Format("2006-01-02 15:04"))
	}

	fmt.Fprintln(w)
	fmt.Fprintf(w, "Achievements (%d/%d):\n", st.Unlocked, st.Achievements)
	for _, a := range ctrl.Achievements() {
		if !a.State.Unlocked {
			continue
		}
		when := ""
		if a.State.UnlockedAt != nil {
			when = a.State.UnlockedAt.Local().Format("2006-01-02")
		}
		fmt.Fprintf(w, "  %s %-20s %s\n", a.Category.Icon(), a.Title, when)
	}
}
