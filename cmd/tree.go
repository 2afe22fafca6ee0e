package cmd

import (
	"strings"

	"github.com/mj1618/a11ytree/internal/model"
	"github.com/mj1618/a11ytree/internal/output"
	"github.com/mj1618/a11ytree/internal/platform"
	"github.com/mj1618/a11ytree/internal/uitree"
	"github.com/spf13/cobra"
)

var treeCmd = &cobra.Command{
	Use:   "tree",
	Short: "Describe the scene and print its element tree",
	Long: `Run one describe pass over the configured scene and print the resulting tree.

Each element shows its id, role, name, screen bounds and text length. Elements
worth addressing get a ref (e.g. "main/ok") that any command accepts as "@main/ok".`,
	RunE: runTree,
}

func init() {
	rootCmd.AddCommand(treeCmd)
	treeCmd.Flags().String("scope", "", "Only print the subtree of this element (id, root or @ref)")
	treeCmd.Flags().String("roles", "", "Comma-separated roles to include (e.g. \"btn,txt\" or \"interactive\")")
	treeCmd.Flags().String("bbox", "", "Only include elements within bounding box (x,y,w,h)")
	treeCmd.Flags().String("text", "", "Only include elements whose name contains this text")
	treeCmd.Flags().Bool("focused", false, "Only include the focused element and its ancestors")
	treeCmd.Flags().Bool("prune", false, "Drop unnamed containers with no matching descendants")
	treeCmd.Flags().Bool("flat", false, "Flatten the tree into a list with paths")
	treeCmd.Flags().Bool("pretty", false, "Pretty-print JSON")
}

func runTree(cmd *cobra.Command, args []string) error {
	session, err := openSession(false)
	if err != nil {
		return err
	}

	scope, _ := cmd.Flags().GetString("scope")
	rolesStr, _ := cmd.Flags().GetString("roles")
	bboxStr, _ := cmd.Flags().GetString("bbox")
	text, _ := cmd.Flags().GetString("text")
	focused, _ := cmd.Flags().GetBool("focused")
	prune, _ := cmd.Flags().GetBool("prune")
	flat, _ := cmd.Flags().GetBool("flat")

	elements, err := selectElements(session, scope, rolesStr, bboxStr)
	if err != nil {
		return err
	}
	if text != "" {
		elements = model.FilterByText(elements, text)
	}
	if focused {
		elements = model.FilterByFocused(elements)
	}
	if prune {
		elements = model.PruneEmptyContainers(elements)
	}

	focusedID := ""
	if f := session.Tree.Focused(); f != uitree.RootID {
		focusedID = f.String()
	}
	generation := session.Tree.Snapshot().Generation()
	if flat {
		return output.Print(output.TreeFlatResult{
			Scene:      session.Scene.Name(),
			Generation: generation,
			Focused:    focusedID,
			Elements:   model.FlattenElements(elements),
		})
	}
	return output.Print(output.TreeResult{
		Scene:      session.Scene.Name(),
		Generation: generation,
		Focused:    focusedID,
		Elements:   elements,
	})
}

// selectElements applies the scope, role and bounding box selectors.
func selectElements(session *platform.Session, scope, rolesStr, bboxStr string) ([]model.Element, error) {
	elements := session.Elements()
	if scope != "" {
		scoped, err := session.Scope(scope)
		if err != nil {
			return nil, err
		}
		elements = scoped
	}

	var roles []string
	if rolesStr != "" {
		roles = model.ExpandRoles(splitList(rolesStr))
	}
	var bbox *[4]int
	if bboxStr != "" {
		r, err := platform.ParseBBox(bboxStr)
		if err != nil {
			return nil, err
		}
		b := r.XYWH()
		bbox = &b
	}
	if len(roles) > 0 || bbox != nil {
		elements = model.FilterElements(elements, roles, bbox)
	}
	return elements, nil
}

// splitList splits a comma-separated flag value, dropping blanks.
func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
