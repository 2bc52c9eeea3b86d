package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/matzehuels/floatpos/pkg/geom"
)

func (c *CLI) placementsCommand() *cobra.Command {
	var rtl bool

	cmd := &cobra.Command{
		Use:   "placements",
		Short: "List the placements with their axes and flip fallbacks",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(c.out, renderPlacements(rtl))
			return nil
		},
	}
	cmd.Flags().BoolVar(&rtl, "rtl", false, "derive perpendicular fallbacks for right-to-left text")

	return cmd
}

// renderPlacements draws one row per placement with the fallbacks flip
// derives for it by default and the perpendicular candidates it adds when
// fallback_axis_side_direction is "start".
func renderPlacements(rtl bool) string {
	rows := make([][]string, 0, len(geom.AllPlacements))
	for _, p := range geom.AllPlacements {
		align := string(p.Alignment())
		if align == "" {
			align = "center"
		}
		fallbacks := []geom.Placement{p.Opposite()}
		if !p.IsBase() {
			fallbacks = geom.ExpandedPlacements(p)
		}
		crossAxis := geom.OppositeAxisPlacements(p, true, geom.DirectionStart, rtl)

		rows = append(rows, []string{
			string(p),
			string(p.Side()),
			align,
			string(p.SideAxis()) + "/" + string(p.AlignmentAxis()),
			string(p.Opposite()),
			joinPlacements(fallbacks),
			joinPlacements(crossAxis),
		})
	}

	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("Placement", "Side", "Alignment", "Axes", "Opposite", "Flip fallbacks", "Cross axis (start)").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == -1:
				return headerStyle
			case col == 0:
				return lipgloss.NewStyle().Foreground(colorCyan)
			case col >= 5:
				return lipgloss.NewStyle().Foreground(colorDim)
			}
			return lipgloss.NewStyle()
		})

	return t.Render()
}

func joinPlacements(ps []geom.Placement) string {
	names := make([]string, len(ps))
	for i, p := range ps {
		names[i] = string(p)
	}
	return strings.Join(names, ", ")
}
