package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"slices"

	"github.com/spf13/cobra"

	"github.com/matzehuels/floatpos/pkg/middleware"
	"github.com/matzehuels/floatpos/pkg/position"
	"github.com/matzehuels/floatpos/pkg/scene"
)

// computeOpts holds the flags of the compute command.
type computeOpts struct {
	json      bool   // print the result as JSON instead of styled text
	output    string // also write the JSON result to this file
	placement string // override the scene's placement
	strategy  string // override the scene's strategy
}

func (c *CLI) computeCommand() *cobra.Command {
	var opts computeOpts

	cmd := &cobra.Command{
		Use:   "compute <scene>",
		Short: "Compute the floating element's position for a scene file",
		Long: `Compute loads a scene file (.toml, .yaml, .yml or .json), runs its
middleware pipeline and prints the final coordinates, placement and the
data every middleware recorded.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runCompute(cmd.Context(), args[0], opts)
		},
	}

	cmd.Flags().BoolVar(&opts.json, "json", false, "print the result as JSON")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "write the JSON result to a file")
	cmd.Flags().StringVarP(&opts.placement, "placement", "p", "", "override the scene placement")
	cmd.Flags().StringVar(&opts.strategy, "strategy", "", "override the scene strategy (absolute, fixed)")

	return cmd
}

func (c *CLI) runCompute(ctx context.Context, path string, opts computeOpts) error {
	logger := loggerFromContext(ctx)
	prog := newProgress(logger)

	s, err := scene.Load(path)
	if err != nil {
		return err
	}
	if opts.placement != "" {
		s.Placement = opts.placement
	}
	if opts.strategy != "" {
		s.Strategy = opts.strategy
	}

	built, err := s.Build()
	if err != nil {
		return err
	}
	built.Config.Logger = logger

	res, err := built.Compute()
	if err != nil {
		return err
	}
	prog.done("Computed position")

	if opts.output != "" {
		if err := scene.ExportResult(res, opts.output); err != nil {
			return err
		}
	}
	if opts.json {
		return scene.WriteResult(res, c.out)
	}

	printResult(c.out, path, res, s.Middleware)
	if opts.output != "" {
		printSuccess(c.out, "Exported result")
		printFile(c.out, opts.output)
	}
	return nil
}

// printResult writes the result as styled key/value lines. Middleware data
// is listed in pipeline order.
func printResult(w io.Writer, title string, res position.Result, specs []scene.MiddlewareSpec) {
	fmt.Fprintln(w, StyleTitle.Render(title))
	printKeyValue(w, "placement", string(res.Placement))
	printKeyValue(w, "strategy", string(res.Strategy))
	printKeyValue(w, "x", StyleNumber.Render(formatNumber(res.X)))
	printKeyValue(w, "y", StyleNumber.Render(formatNumber(res.Y)))
	printKeyValue(w, "resets", StyleNumber.Render(formatNumber(float64(res.Resets))))

	var names []string
	for _, spec := range specs {
		if !slices.Contains(names, spec.Name) {
			names = append(names, spec.Name)
		}
	}
	for _, name := range names {
		data, ok := res.MiddlewareData[name]
		if !ok {
			continue
		}
		raw, err := json.Marshal(data)
		if err != nil {
			printKeyValue(w, name, StyleDim.Render(err.Error()))
			continue
		}
		printKeyValue(w, name, StyleDim.Render(string(raw)))
	}

	if hide, ok := middleware.HideDataOf(res.MiddlewareData); ok {
		if hide.ReferenceHidden {
			printWarning(w, "reference is clipped; hosts usually hide the floating element")
		}
		if hide.Escaped {
			printWarning(w, "floating element escaped the reference's clipping context")
		}
	}
}
