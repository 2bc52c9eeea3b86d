// Package cli implements the floatpos command-line interface.
package cli

import (
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/floatpos/pkg/buildinfo"
)

// =============================================================================
// Constants
// =============================================================================

// appName is the binary name used in help and completion text.
const appName = "floatpos"

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
	Logger *log.Logger

	// out receives command output; logs go to the logger's writer.
	out io.Writer
}

// New creates a CLI that logs to w and prints results to stdout.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: newLogger(w, level),
		out:    os.Stdout,
	}
}

// SetOutput redirects command output.
func (c *CLI) SetOutput(w io.Writer) {
	c.out = w
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   appName,
		Short: "floatpos positions floating elements next to their anchors",
		Long: `floatpos computes where a floating element (tooltip, popover, menu) goes
next to a reference element, running the same middleware pipeline a host
application would: offset, flip, shift, size, arrow, autoPlacement, hide
and inline. Geometry is read from scene files (TOML, YAML or JSON).`,
		Version:       buildinfo.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.SetOut(c.out)

	root.AddCommand(c.computeCommand())
	root.AddCommand(c.placementsCommand())
	root.AddCommand(c.playgroundCommand())
	root.AddCommand(c.completionCommand())

	return root
}
