package cmd

import (
	"fmt"
	"os"

	"github.com/mj1618/a11ytree/internal/config"
	"github.com/mj1618/a11ytree/internal/logger"
	"github.com/mj1618/a11ytree/internal/output"
	"github.com/mj1618/a11ytree/internal/platform"
	"github.com/mj1618/a11ytree/internal/version"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "a11ytree",
	Short: "Describe a UI scene and query it like an accessibility client",
	Long: `A headless accessibility tree engine. A scene is described into an immutable
snapshot of panes, documents, text and buttons; commands then query it the way a
screen reader would: navigation, properties, hit testing, focus and text ranges.`,
	SilenceUsage: true,
}

// cfg is the loaded configuration with command-line overrides applied.
var cfg *config.Config

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.Version = fmt.Sprintf("%s (commit: %s, built: %s)", version.Version, version.Commit, version.BuildDate)
	rootCmd.PersistentFlags().String("config", "", "Config file (default: ~/.config/a11ytree/config.toml)")
	rootCmd.PersistentFlags().String("scene", "", "Built-in scene to describe (see 'a11ytree scenes')")
	rootCmd.PersistentFlags().String("file", "", "Scene file to describe: .yaml, .md or .html")
	rootCmd.PersistentFlags().String("format", "", "Output format: yaml, json, tree (default: tree on a terminal, yaml when piped)")
	rootCmd.PersistentFlags().String("log", "", "Enable logging at this level: debug, info, warn, error")
	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		loaded, err := loadConfig()
		if err != nil {
			return err
		}
		cfg = loaded

		if err := initLogger(cfg); err != nil {
			return err
		}
		output.SetAccent(cfg.UI.Accent)

		// Use the root persistent flag directly to avoid conflicts with
		// subcommand local flags.
		format, _ := rootCmd.PersistentFlags().GetString("format")
		if format == "" {
			if output.IsOutputPiped() {
				format = string(output.FormatYAML)
			} else {
				format = string(output.FormatTree)
			}
		}
		f, err := output.ParseFormat(format)
		if err != nil {
			return err
		}
		output.OutputFormat = f
		if prettyFlag := cmd.Flags().Lookup("pretty"); prettyFlag != nil {
			if pretty, err := cmd.Flags().GetBool("pretty"); err == nil && pretty {
				output.PrettyOutput = true
			}
		}
		return nil
	}
}

// loadConfig reads the config file and applies --scene and --file.
func loadConfig() (*config.Config, error) {
	path, _ := rootCmd.PersistentFlags().GetString("config")
	var (
		c   *config.Config
		err error
	)
	if path != "" {
		c, err = config.LoadFrom(path)
	} else {
		c, err = config.Load()
	}
	if err != nil {
		return nil, err
	}

	if scene, _ := rootCmd.PersistentFlags().GetString("scene"); scene != "" {
		c.Scene = scene
		c.File = ""
	}
	if file, _ := rootCmd.PersistentFlags().GetString("file"); file != "" {
		c.File = file
	}
	if level, _ := rootCmd.PersistentFlags().GetString("log"); level != "" {
		c.Log.Enabled = true
		c.Log.Level = level
	}
	return c, nil
}

func initLogger(c *config.Config) error {
	level, err := logger.ParseLevel(c.Log.Level)
	if err != nil {
		return err
	}
	return logger.Init(logger.Options{
		Enabled: c.Log.Enabled,
		Path:    c.Log.Path,
		Level:   level,
	})
}

// openSession describes the configured scene.
func openSession(listening bool) (*platform.Session, error) {
	scene, err := platform.OpenScene(cfg)
	if err != nil {
		return nil, err
	}
	return platform.NewSession(cfg, scene, listening)
}
