package cmd

import (
	"github.com/mj1618/a11ytree/internal/describe"
	"github.com/mj1618/a11ytree/internal/output"
	"github.com/spf13/cobra"
)

// sceneEntry is one line of the scenes output.
type sceneEntry struct {
	Name    string `yaml:"name"    json:"name"`
	Current bool   `yaml:"current" json:"current"`
}

var scenesCmd = &cobra.Command{
	Use:   "scenes",
	Short: "List built-in scenes",
	Long:  "List the scenes that --scene accepts. Use --file to describe a .yaml, .md or .html file instead.",
	Args:  cobra.NoArgs,
	RunE:  runScenes,
}

func init() {
	rootCmd.AddCommand(scenesCmd)
}

func runScenes(cmd *cobra.Command, args []string) error {
	names := describe.Names()
	entries := make([]sceneEntry, len(names))
	for i, name := range names {
		entries[i] = sceneEntry{Name: name, Current: cfg.File == "" && name == cfg.Scene}
	}
	return output.Print(entries)
}
