package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/mltply/internal/session"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Clear stored progress",
	Long: "Clear stored progress. --history empties the answer history, --scores the scoreboard, " +
		"--achievements locks every achievement again (and clears the history they are earned from), " +
		"--all removes every stored record including settings.",
	RunE: func(cmd *cobra.Command, args []string) error {
		flags := cmd.Flags()
		history, _ := flags.GetBool("history")
		scores, _ := flags.GetBool("scores")
		achievements, _ := flags.GetBool("achievements")
		all, _ := flags.GetBool("all")
		if !history && !scores && !achievements && !all {
			return errors.New("nothing to reset: pass --history, --scores, --achievements or --all")
		}

		if all {
			kv, err := openStore(cmd)
			if err != nil {
				return err
			}
			defer kv.Close()
			for _, key := range session.AllKeys {
				if err := kv.Delete(cmd.Context(), key); err != nil {
					return fmt.Errorf("delete %s: %w", key, err)
				}
			}
			fmt.Fprintln(cmd.OutOrStdout(), "All progress and settings removed.")
			return nil
		}

		ctrl, done, err := openController(cmd)
		if err != nil {
			return err
		}
		defer done()
		out := cmd.OutOrStdout()
		if history {
			ctrl.RequestClearHistory()
			fmt.Fprintln(out, "Answer history cleared.")
		}
		if scores {
			ctrl.RequestClearScores()
			fmt.Fprintln(out, "Scoreboard cleared.")
		}
		if achievements {
			ctrl.RequestClearAchievements()
			fmt.Fprintln(out, "Achievements reset.")
		}
		return nil
	},
}

func init() {
	resetCmd.Flags().Bool("history", false, "Clear the answer history")
	resetCmd.Flags().Bool("scores", false, "Clear the scoreboard")
	resetCmd.Flags().Bool("achievements", false, "Lock all achievements")
	resetCmd.Flags().Bool("all", false, "Remove all stored records")
}
