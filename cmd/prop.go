package cmd

import (
	"github.com/mj1618/a11ytree/internal/a11y"
	"github.com/mj1618/a11ytree/internal/output"
	"github.com/spf13/cobra"
)

var propCmd = &cobra.Command{
	Use:   "prop <element> [property]",
	Short: "Read accessibility properties of an element",
	Long: `Print one property of an element, or all of them when no property is named.

Properties: name, control-type, is-control-element, is-content-element, is-enabled,
is-keyboard-focusable, has-keyboard-focus, labeled-by, class-name,
provider-description, automation-id, runtime-id and text-length. Snake and camel
case spellings are accepted too. Use --patterns to list control patterns instead.`,
	Args: cobra.RangeArgs(1, 2),
	RunE: runProp,
}

func init() {
	rootCmd.AddCommand(propCmd)
	propCmd.Flags().Bool("patterns", false, "List supported control patterns")
	propCmd.Flags().Bool("rect", false, "Print the bounding rectangle in screen coordinates")
	propCmd.Flags().Bool("pretty", false, "Pretty-print JSON")
}

func runProp(cmd *cobra.Command, args []string) error {
	session, err := openSession(false)
	if err != nil {
		return err
	}
	e, err := session.Target(args[0])
	if err != nil {
		return err
	}

	if patterns, _ := cmd.Flags().GetBool("patterns"); patterns {
		ps, err := session.Host.Patterns(e)
		if err != nil {
			return err
		}
		names := make([]string, len(ps))
		for i, p := range ps {
			names[i] = p.String()
		}
		return output.Print(map[string]interface{}{"element": e.String(), "patterns": names})
	}
	if rect, _ := cmd.Flags().GetBool("rect"); rect {
		r, err := session.Host.BoundingRect(e)
		if err != nil {
			return err
		}
		return output.Print(toRectResult(r))
	}

	props := a11y.Properties()
	if len(args) == 2 {
		p, err := a11y.ParseProperty(args[1])
		if err != nil {
			return err
		}
		props = []a11y.PropertyID{p}
	}
	out := make(map[string]interface{}, len(props))
	for _, p := range props {
		v, err := session.Host.Property(e, p)
		if err != nil {
			return err
		}
		out[p.String()] = v.Any()
	}
	return output.Print(out)
}
