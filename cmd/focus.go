package cmd

import (
	"github.com/mj1618/a11ytree/internal/output"
	"github.com/spf13/cobra"
)

// FocusResult is the output of the focus command.
type FocusResult struct {
	OK      bool   `yaml:"ok"      json:"ok"`
	Focused string `yaml:"focused" json:"focused"`
}

var focusCmd = &cobra.Command{
	Use:   "focus [element]",
	Short: "Show or move keyboard focus",
	Long: `Without an argument, print the focused element ("root" when nothing has focus).
With an element, move focus to it first. Only text and button elements are focusable.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runFocus,
}

func init() {
	rootCmd.AddCommand(focusCmd)
}

func runFocus(cmd *cobra.Command, args []string) error {
	session, err := openSession(false)
	if err != nil {
		return err
	}
	if len(args) == 1 {
		e, err := session.Target(args[0])
		if err != nil {
			return err
		}
		if err := session.Host.SetFocus(e); err != nil {
			return err
		}
	}
	return output.Print(FocusResult{OK: true, Focused: session.Host.Focus().String()})
}
