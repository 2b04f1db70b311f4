// Package cli implements the depscout command-line interface.
package cli

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/mhuels/depscout/pkg/buildinfo"
)

// appName is the application name used for display and config files.
const appName = "depscout"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          appName,
		Short:        "Depscout finds outdated npm dependencies and ranks the updates",
		Long:         `Depscout inspects a project's package.json and package-lock.json, asks the npm registry which dependencies have newer versions, resolves a release-notes link for each, and prints a ranked, priority-aware report.`,
		Version:       buildinfo.Version,
		SilenceUsage:  true,
		SilenceErrors: true, // main prints the returned error once
	}

	root.SetVersionTemplate(buildinfo.Template())

	root.AddCommand(c.checkCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.completionCommand())

	return root
}
