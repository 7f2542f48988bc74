package cli

import (
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/dataportal/pkg/buildinfo"
	"github.com/matzehuels/dataportal/pkg/errors"
	"github.com/matzehuels/dataportal/pkg/portal"

	// Registers the "dat" data manager.
	_ "github.com/matzehuels/dataportal/pkg/portal/datacmd"
)

// =============================================================================
// Constants
// =============================================================================

const (
	// appName is the application name used for directories and display.
	appName = "dataportal"

	// optionsFile is the default options file name inside the config directory.
	optionsFile = "options.toml"
)

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger   *log.Logger
	Registry *portal.Registry

	// Processor executes include directives for the load command.
	// The dataportal binary leaves it nil; embedding programs set it.
	// Without one, load stops after checking the file.
	Processor portal.IncludeProcessor

	out        io.Writer
	configPath string
}

// New creates a new CLI instance writing command output to out and logs to logw.
func New(out, logw io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger:   newLogger(logw, level),
		Registry: portal.Default,
		out:      out,
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          appName,
		Short:        "dataportal reads and writes model data files",
		Long:         `dataportal loads set and parameter data for optimization models from data command files and writes set data back in the same format.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.SetOut(c.out)
	root.PersistentFlags().StringVar(&c.configPath, "config", "", "options file (default: $XDG_CONFIG_HOME/dataportal/options.toml)")

	root.AddCommand(c.formatsCommand())
	root.AddCommand(c.checkCommand())
	root.AddCommand(c.loadCommand())
	root.AddCommand(c.writeCommand())
	root.AddCommand(c.serveCommand())

	return root
}

// =============================================================================
// Manager Factory
// =============================================================================

// newManager creates a data manager for path and initializes it with the
// configured options plus extra. The format is taken from format when set,
// otherwise from the file extension.
func (c *CLI) newManager(path, format string, extra portal.Options) (portal.DataManager, error) {
	cfg := portal.Config{Processor: c.Processor, Logger: c.Logger}

	var m portal.DataManager
	var err error
	if format != "" {
		m, err = c.Registry.New(format, cfg)
	} else {
		m, err = c.Registry.ForFile(path, cfg)
	}
	if err != nil {
		return nil, err
	}

	opts, err := c.options()
	if err != nil {
		return nil, err
	}
	opts.Merge(extra)
	opts[portal.OptionFilename] = path

	if !m.Available() {
		return nil, errors.New(errors.ErrCodeUnsupported, "data manager for %q is not available", path)
	}
	if err := m.Initialize(opts); err != nil {
		return nil, err
	}
	return m, nil
}

// formatName returns format, or the format implied by path when empty.
func formatName(path, format string) string {
	if format != "" {
		return format
	}
	return portal.FormatOf(path)
}

// =============================================================================
// Paths
// =============================================================================

// configDir returns the config directory using XDG standard (~/.config/dataportal/).
func configDir() (string, error) {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appName), nil
}
