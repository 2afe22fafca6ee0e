package cmd

import (
	"github.com/mj1618/a11ytree/internal/a11y"
	"github.com/mj1618/a11ytree/internal/output"
	"github.com/spf13/cobra"
)

// NavResult is the output of the nav command.
type NavResult struct {
	From      string `yaml:"from"              json:"from"`
	Direction string `yaml:"direction"         json:"direction"`
	Found     bool   `yaml:"found"             json:"found"`
	Element   string `yaml:"element,omitempty" json:"element,omitempty"`
}

var navCmd = &cobra.Command{
	Use:   "nav <element> <direction>",
	Short: "Step from an element to a structural neighbour",
	Long: `Navigate the tree the way an accessibility client does.

<element> is "root", a hex id or "@ref". <direction> is one of parent,
next, prev, first or last. A step off the edge of the tree reports found: false.`,
	Args: cobra.ExactArgs(2),
	RunE: runNav,
}

func init() {
	rootCmd.AddCommand(navCmd)
}

func runNav(cmd *cobra.Command, args []string) error {
	session, err := openSession(false)
	if err != nil {
		return err
	}
	e, err := session.Target(args[0])
	if err != nil {
		return err
	}
	dir, err := a11y.ParseDirection(args[1])
	if err != nil {
		return err
	}

	next, ok, err := session.Host.Navigate(e, dir)
	if err != nil {
		return err
	}
	res := NavResult{From: e.String(), Direction: args[1], Found: ok}
	if ok {
		res.Element = next.String()
	}
	return output.Print(res)
}
