package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/oakwood-commons/cxcomplete/internal/config"
	"github.com/oakwood-commons/cxcomplete/internal/formatter"
	"github.com/oakwood-commons/cxcomplete/pkg/settings"
)

// resolveConfigPath returns the config file to load. An explicit path wins;
// otherwise the XDG location is used when it exists.
func resolveConfigPath(explicit string) (string, error) {
	if explicit != "" {
		return explicit, nil
	}

	base := os.Getenv("XDG_CONFIG_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", nil
		}
		base = filepath.Join(home, ".config")
	}

	path := filepath.Join(base, settings.CliBinaryName, "config.yaml")
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", nil
		}
		return "", fmt.Errorf("stat config %s: %w", path, err)
	}
	return path, nil
}

// loadConfig loads the config file and applies the flags the user set
// explicitly on top of it.
func loadConfig(cmd *cobra.Command) (config.Config, string, error) {
	path, err := resolveConfigPath(configFile)
	if err != nil {
		return config.Config{}, "", err
	}
	cfg, err := config.Load(path)
	if err != nil {
		return config.Config{}, "", err
	}

	if flagChanged(cmd, "extra-space") {
		cfg.Render.ExtraSpace = extraSpace
	}
	if flagChanged(cmd, "workers") {
		cfg.Render.Workers = workers
	}
	if flagChanged(cmd, "dedupe") {
		cfg.Render.Dedupe = dedupe
	}
	if flagChanged(cmd, "output") {
		cfg.Output.Format = outputFormat
	}
	if flagChanged(cmd, "snippets") {
		cfg.Output.Snippets = snippets
	}
	if flagChanged(cmd, "no-color") {
		cfg.Output.NoColor = noColor
	}
	if flagChanged(cmd, "log-format") {
		cfg.Log.Format = logFormat
	}
	if debugLog {
		cfg.Log.Level = "debug"
	}

	if err := cfg.Validate(); err != nil {
		return config.Config{}, "", err
	}
	return cfg, path, nil
}

// runSettings turns the effective config and positional args into the
// settings for this execution.
func runSettings(cfg config.Config, path string, args []string) *settings.Run {
	run := settings.NewCliParams()
	run.MinLogLevel = cfg.LogLevel()
	run.ExtraSpace = cfg.Render.ExtraSpace
	run.Workers = cfg.Render.Workers
	run.Dedupe = cfg.Render.Dedupe
	run.OutputFormat = cfg.Output.Format
	run.Snippets = cfg.Output.Snippets
	run.NoColor = cfg.Output.NoColor
	run.ConfigFile = path
	run.Expression = expression
	run.TerminalWidth = widthFlag
	if run.TerminalWidth <= 0 {
		run.TerminalWidth = formatter.TerminalWidth()
	}

	if len(args) > 0 && args[0] != "-" {
		run.Input = settings.InputSettings{Path: args[0]}
	}
	return run
}

func flagChanged(cmd *cobra.Command, name string) bool {
	f := cmd.Flags().Lookup(name)
	return f != nil && f.Changed
}
