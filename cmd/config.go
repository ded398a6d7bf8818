package cmd

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/mltply/internal/problemgen"
	"github.com/abhisek/mltply/internal/session"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show stored settings",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctrl, done, err := openController(cmd)
		if err != nil {
			return err
		}
		defer done()
		printConfig(cmd.OutOrStdout(), ctrl.State())
		return nil
	},
}

var configSetCmd = &cobra.Command{
	Use:   "set KEY VALUE",
	Short: "Change a stored setting",
	Long: `Change a stored setting. Keys:
  operations   comma list of addition,subtraction,multiplication,division,square,square_root
  numbers      comma list of 1-12, "all" or "none"
  difficulty   starter, explorer, champion or goat
  ordering     random or sequential
  timer        round length in minutes
  continuous   true or false
  sound        true or false`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctrl, done, err := openController(cmd)
		if err != nil {
			return err
		}
		defer done()
		if err := applySetting(ctrl, args[0], args[1]); err != nil {
			return err
		}
		printConfig(cmd.OutOrStdout(), ctrl.State())
		return nil
	},
}

func init() {
	configCmd.AddCommand(configSetCmd)
}

func applySetting(ctrl *session.Controller, key, value string) error {
	switch key {
	case "operations", "ops":
		var ops problemgen.Operations
		for _, part := range splitList(value) {
			op, err := problemgen.ParseOperation(part)
			if err != nil {
				return err
			}
			ops.Set(op, true)
		}
		ctrl.SetOperations(ops)
	case "numbers":
		p := ctrl.State().Practice
		switch value {
		case "all":
			p.SelectAll()
		case "none":
			p.ClearAll()
		default:
			p.Numbers = nil
			for _, part := range splitList(value) {
				n, err := strconv.Atoi(part)
				if err != nil || n < 1 || n > problemgen.MaxNumber {
					return fmt.Errorf("invalid number %q: want 1-%d", part, problemgen.MaxNumber)
				}
				p.Numbers = append(p.Numbers, n)
			}
		}
		ctrl.SetPractice(p)
	case "difficulty":
		d, err := problemgen.ParseDifficulty(value)
		if err != nil {
			return err
		}
		ctrl.SetDifficulty(d)
	case "ordering":
		o, err := problemgen.ParseOrdering(value)
		if err != nil {
			return err
		}
		ctrl.SetOrdering(o)
	case "timer":
		m, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("invalid timer %q: %w", value, err)
		}
		ctrl.SetTimerDuration(m)
	case "continuous":
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("invalid continuous %q: %w", value, err)
		}
		ctrl.SetContinuousMode(b)
	case "sound":
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("invalid sound %q: %w", value, err)
		}
		ctrl.SetSoundEnabled(b)
	default:
		return fmt.Errorf("unknown setting %q", key)
	}
	return nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func printConfig(w io.Writer, st session.State) {
	var ops []string
	for _, op := range st.Operations.List() {
		ops = append(ops, string(op))
	}
	var nums []string
	for _, n := range st.Practice.Numbers {
		nums = append(nums, strconv.Itoa(n))
	}
	fmt.Fprintf(w, "operations:  %s\n", strings.Join(ops, ","))
	fmt.Fprintf(w, "numbers:     %s\n", strings.Join(nums, ","))
	fmt.Fprintf(w, "difficulty:  %s\n", st.Practice.Difficulty)
	fmt.Fprintf(w, "ordering:    %s\n", st.Prefs.Ordering)
	fmt.Fprintf(w, "timer:       %d min\n", st.Prefs.TimerMinutes)
	fmt.Fprintf(w, "continuous:  %t\n", st.Prefs.Continuous)
	fmt.Fprintf(w, "sound:       %t\n", st.Prefs.Sound)
}
