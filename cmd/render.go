package cmd

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"os"

	"github.com/mj1618/a11ytree/internal/platform"
	"github.com/spf13/cobra"
)

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Render the element layout to a PNG",
	Long: `Draw every element's screen rectangle into a PNG of the viewport. Buttons are
outlined in a different color and the focused element gets an inner outline.
This is the geometry the hit tester and text-range rectangles work from.`,
	RunE: runRender,
}

func init() {
	rootCmd.AddCommand(renderCmd)
	renderCmd.Flags().StringP("output", "o", "", "Output file path (default: stdout as base64)")
	renderCmd.Flags().String("labels", "names", "Label each element with its names or ids")
}

func runRender(cmd *cobra.Command, args []string) error {
	outPath, _ := cmd.Flags().GetString("output")
	labels, _ := cmd.Flags().GetString("labels")
	mode, err := platform.ParseLabelMode(labels)
	if err != nil {
		return err
	}

	session, err := openSession(false)
	if err != nil {
		return err
	}
	session.Provider.Screenshotter = platform.NewRenderer(mode)

	img, err := session.Provider.Screenshotter.Capture(session.Elements(), session.Provider.Window.Viewport())
	if err != nil {
		return err
	}
	var buf bytes.Buffer
	if err := platform.WritePNG(&buf, img); err != nil {
		return err
	}

	if outPath != "" {
		return os.WriteFile(outPath, buf.Bytes(), 0644)
	}

	// Default: write to stdout as base64 for easy agent consumption
	encoder := base64.NewEncoder(base64.StdEncoding, os.Stdout)
	if _, err := encoder.Write(buf.Bytes()); err != nil {
		return err
	}
	if err := encoder.Close(); err != nil {
		return err
	}
	fmt.Println()
	return nil
}
