package cli

import (
	"context"

	"github.com/spf13/cobra"
)

// Execute runs the command tree with args.
//
// Logging:
//   - Default: info level
//   - With --verbose (-v): debug level, including one line per pipeline
//     step and reset
//
// The logger is attached to the command context and reachable from every
// subcommand via loggerFromContext.
func (c *CLI) Execute(ctx context.Context, args []string) error {
	var verbose bool

	root := c.RootCommand()
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
	root.PersistentPreRunE = func(cmd *cobra.Command, _ []string) error {
		level := LogInfo
		if verbose {
			level = LogDebug
		}
		c.SetLogLevel(level)
		cmd.SetContext(withLogger(cmd.Context(), c.Logger))
		return nil
	}

	root.SetArgs(args)
	return root.ExecuteContext(ctx)
}
