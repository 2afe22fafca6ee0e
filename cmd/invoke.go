package cmd

import (
	"github.com/mj1618/a11ytree/internal/model"
	"github.com/mj1618/a11ytree/internal/output"
	"github.com/spf13/cobra"
)

// InvokeResult is the output of the invoke command.
type InvokeResult struct {
	OK         bool             `yaml:"ok"                json:"ok"`
	Invoked    string           `yaml:"invoked"           json:"invoked"`
	Generation uint64           `yaml:"generation"        json:"generation"`
	Changes    []model.UIChange `yaml:"changes,omitempty" json:"changes,omitempty"`
}

var invokeCmd = &cobra.Command{
	Use:   "invoke <element>",
	Short: "Activate a button and report what changed",
	Long: `Invoke an element's action through the client contract. Stateful scenes are
re-described until they settle, and the differences against the previous tree are
reported as added, removed and changed elements.`,
	Args: cobra.ExactArgs(1),
	RunE: runInvoke,
}

func init() {
	rootCmd.AddCommand(invokeCmd)
	invokeCmd.Flags().Bool("pretty", false, "Pretty-print JSON")
}

func runInvoke(cmd *cobra.Command, args []string) error {
	session, err := openSession(true)
	if err != nil {
		return err
	}
	e, err := session.Target(args[0])
	if err != nil {
		return err
	}

	before := model.FlattenElements(session.Elements())
	if err := session.Invoke(e); err != nil {
		return err
	}
	return output.Print(InvokeResult{
		OK:         true,
		Invoked:    e.String(),
		Generation: session.Tree.Snapshot().Generation(),
		Changes:    model.DiffElements(before, model.FlattenElements(session.Elements())),
	})
}
