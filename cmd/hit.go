package cmd

import (
	"fmt"
	"strconv"

	"github.com/mj1618/a11ytree/internal/output"
	"github.com/mj1618/a11ytree/internal/uitree"
	"github.com/spf13/cobra"
)

// HitResult is the output of the hit command.
type HitResult struct {
	X       int    `yaml:"x"             json:"x"`
	Y       int    `yaml:"y"             json:"y"`
	Element string `yaml:"element"       json:"element"`
	Ref     string `yaml:"ref,omitempty" json:"ref,omitempty"`
}

var hitCmd = &cobra.Command{
	Use:   "hit <x> <y>",
	Short: "Find the element at a screen point",
	Long: `Hit-test the described layout at screen coordinates. The deepest element whose
rectangle contains the point wins; points outside every element report "root".`,
	Args: cobra.ExactArgs(2),
	RunE: runHit,
}

func init() {
	rootCmd.AddCommand(hitCmd)
}

func runHit(cmd *cobra.Command, args []string) error {
	x, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("invalid x coordinate %q", args[0])
	}
	y, err := strconv.Atoi(args[1])
	if err != nil {
		return fmt.Errorf("invalid y coordinate %q", args[1])
	}

	session, err := openSession(false)
	if err != nil {
		return err
	}
	e := session.Host.HitTest(uitree.Point{X: x, Y: y})
	res := HitResult{X: x, Y: y, Element: e.String()}
	if !e.IsRoot() {
		if el := findElementByID(session.Elements(), e.String()); el != nil {
			res.Ref = el.Ref
		}
	}
	return output.Print(res)
}
