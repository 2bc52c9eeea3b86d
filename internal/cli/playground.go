package cli

import (
	"fmt"
	"math"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/matzehuels/floatpos/pkg/buildinfo"
	"github.com/matzehuels/floatpos/pkg/geom"
	"github.com/matzehuels/floatpos/pkg/middleware"
	"github.com/matzehuels/floatpos/pkg/platform"
	"github.com/matzehuels/floatpos/pkg/position"
	"github.com/matzehuels/floatpos/pkg/scene"
)

// Grid glyphs. Later boxes are drawn over earlier ones.
const (
	glyphReference = '#'
	glyphFloating  = '+'
	glyphHidden    = '.'
)

var (
	gridFrameStyle     = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(colorDim)
	gridReferenceStyle = lipgloss.NewStyle().Foreground(colorBlue)
	gridFloatingStyle  = lipgloss.NewStyle().Foreground(colorYellow)
	gridArrowStyle     = lipgloss.NewStyle().Foreground(colorYellow).Bold(true)
	statusErrorStyle   = lipgloss.NewStyle().Foreground(colorRed)
)

func (c *CLI) playgroundCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "playground [scene]",
		Short: "Move a reference around the terminal and watch the floating element follow",
		Long: `Playground draws the scene's viewport on a character grid with the
reference (#) and the floating element (+). Arrow keys or hjkl move the
reference one cell, p and P cycle the requested placement. The pipeline
reruns on every key press, so flip, shift and hide are visible as they
happen. Without a scene file a demo scene is used.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())

			s := demoScene()
			if len(args) == 1 {
				loaded, err := scene.Load(args[0])
				if err != nil {
					return err
				}
				s = loaded
			}
			built, err := s.Build()
			if err != nil {
				return err
			}

			logger.Debug("Starting playground", "middleware", len(built.Config.Middleware))
			_, err = tea.NewProgram(NewPlaygroundModel(built), tea.WithAltScreen(), tea.WithContext(cmd.Context())).Run()
			return err
		},
	}
	return cmd
}

// demoScene is a tooltip with the usual offset/flip/shift/arrow/hide chain.
func demoScene() *scene.Scene {
	gap, pad, arrowPad := 12.0, 10.0, 4.0
	return &scene.Scene{
		Placement: string(geom.Top),
		Viewport:  geom.Rect{Width: 640, Height: 240},
		Reference: scene.Element{X: 290, Y: 108, Width: 60, Height: 24},
		Floating:  scene.Element{Width: 160, Height: 48},
		Arrow:     &scene.Element{Width: 10, Height: 10},
		Middleware: []scene.MiddlewareSpec{
			{Name: middleware.NameOffset, MainAxis: gap},
			{Name: middleware.NameFlip},
			{Name: middleware.NameShift, Padding: &pad, Limit: true},
			{Name: middleware.NameArrow, Padding: &arrowPad},
			{Name: middleware.NameHide},
		},
	}
}

// =============================================================================
// PlaygroundModel
// =============================================================================

// PlaygroundModel is the bubbletea model of the playground.
type PlaygroundModel struct {
	built *scene.Built
	index int // into geom.AllPlacements

	cols, rows int

	result position.Result
	err    error
}

// NewPlaygroundModel creates the model and runs the first computation.
func NewPlaygroundModel(b *scene.Built) PlaygroundModel {
	m := PlaygroundModel{built: b, cols: 64, rows: 20}
	requested := b.Config.Placement
	if requested == "" {
		requested = position.DefaultPlacement
	}
	for i, p := range geom.AllPlacements {
		if p == requested {
			m.index = i
		}
	}
	m.recompute()
	return m
}

func (m PlaygroundModel) Init() tea.Cmd {
	return nil
}

func (m PlaygroundModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			m.move(0, -1)
		case "down", "j":
			m.move(0, 1)
		case "left", "h":
			m.move(-1, 0)
		case "right", "l":
			m.move(1, 0)
		case "p":
			m.index = (m.index + 1) % len(geom.AllPlacements)
			m.recompute()
		case "P":
			m.index = (m.index + len(geom.AllPlacements) - 1) % len(geom.AllPlacements)
			m.recompute()
		}
	case tea.WindowSizeMsg:
		m.cols = max(16, msg.Width-4)
		m.rows = max(6, msg.Height-8)
	}
	return m, nil
}

// move shifts the reference by whole grid cells.
func (m *PlaygroundModel) move(dx, dy float64) {
	vp := m.built.Platform.Viewport
	m.built.Reference.Rect.X += dx * vp.Width / float64(m.cols)
	m.built.Reference.Rect.Y += dy * vp.Height / float64(m.rows)
	m.recompute()
}

func (m *PlaygroundModel) recompute() {
	m.built.Config.Placement = geom.AllPlacements[m.index]
	m.result, m.err = m.built.Compute()
}

// Requested returns the placement the pipeline starts from.
func (m PlaygroundModel) Requested() geom.Placement {
	return geom.AllPlacements[m.index]
}

// Result returns the latest computation.
func (m PlaygroundModel) Result() (position.Result, error) {
	return m.result, m.err
}

func (m PlaygroundModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("floatpos playground"))
	b.WriteString(" " + StyleDim.Render(buildinfo.Short()))
	b.WriteString("\n")
	b.WriteString(StyleDim.Render("←↑↓→/hjkl move reference  p/P placement  q quit"))
	b.WriteString("\n")

	lines := renderGrid(m.built.Platform.Viewport, m.cols, m.rows, m.boxes())
	b.WriteString(gridFrameStyle.Render(colorizeGrid(lines)))
	b.WriteString("\n")
	b.WriteString(m.status())

	return b.String()
}

func (m PlaygroundModel) status() string {
	if m.err != nil {
		return statusErrorStyle.Render(iconError + " " + m.err.Error())
	}
	res := m.result
	parts := []string{
		fmt.Sprintf("requested %s", m.Requested()),
		fmt.Sprintf("placed %s", StyleNumber.Render(string(res.Placement))),
		fmt.Sprintf("x %s y %s", formatNumber(res.X), formatNumber(res.Y)),
		fmt.Sprintf("resets %d", res.Resets),
	}
	if shift, ok := middleware.ShiftDataOf(res.MiddlewareData); ok && (shift.X != 0 || shift.Y != 0) {
		parts = append(parts, fmt.Sprintf("shifted %s,%s", formatNumber(shift.X), formatNumber(shift.Y)))
	}
	if hide, ok := middleware.HideDataOf(res.MiddlewareData); ok && hide.ReferenceHidden {
		parts = append(parts, StyleWarning.Render("reference hidden"))
	}
	return strings.Join(parts, StyleDim.Render(" · "))
}

// boxes returns the viewport-space rects to draw, reference first.
func (m PlaygroundModel) boxes() []gridBox {
	boxes := []gridBox{{rect: m.built.Reference.Rect, glyph: glyphReference}}
	if m.err != nil {
		return boxes
	}

	var parent platform.Element
	if op := m.built.Floating.OffsetParent; op != nil {
		parent = op
	}
	size := m.built.Floating.Rect.Size()
	floating := m.built.Platform.ToViewportRect(platform.ConvertRectArgs{
		Rect:         geom.Rect{X: m.result.X, Y: m.result.Y, Width: size.Width, Height: size.Height},
		OffsetParent: parent,
	})

	glyph := glyphFloating
	if hide, ok := middleware.HideDataOf(m.result.MiddlewareData); ok && hide.ReferenceHidden {
		glyph = glyphHidden
	}
	boxes = append(boxes, gridBox{rect: floating, glyph: glyph})

	if arrow, ok := arrowBox(m.result, floating); ok {
		boxes = append(boxes, arrow)
	}
	return boxes
}

// arrowBox places the arrow on the floating edge that faces the reference.
func arrowBox(res position.Result, floating geom.Rect) (gridBox, bool) {
	data, ok := middleware.ArrowDataOf(res.MiddlewareData)
	if !ok {
		return gridBox{}, false
	}
	r := geom.Rect{X: floating.X, Y: floating.Y, Width: 1, Height: 1}
	glyph := '^'
	switch res.Placement.Side() {
	case geom.SideTop:
		r.Y = floating.Bottom()
		glyph = 'v'
	case geom.SideBottom:
		r.Y = floating.Y - 1
	case geom.SideLeft:
		r.X = floating.Right()
		glyph = '>'
	case geom.SideRight:
		r.X = floating.X - 1
		glyph = '<'
	}
	if data.X != nil {
		r.X = floating.X + *data.X
	}
	if data.Y != nil {
		r.Y = floating.Y + *data.Y
	}
	return gridBox{rect: r, glyph: glyph}, true
}

// =============================================================================
// Grid
// =============================================================================

type gridBox struct {
	rect  geom.Rect
	glyph rune
}

// renderGrid rasterizes boxes onto a cols x rows grid covering viewport.
// Cells a box touches at all are filled; anything outside is clipped.
func renderGrid(viewport geom.Rect, cols, rows int, boxes []gridBox) []string {
	grid := make([][]rune, rows)
	for y := range grid {
		grid[y] = []rune(strings.Repeat(" ", cols))
	}

	sx := viewport.Width / float64(cols)
	sy := viewport.Height / float64(rows)
	for _, b := range boxes {
		x0, x1 := cellSpan(b.rect.X, b.rect.Width, viewport.X, sx, cols)
		y0, y1 := cellSpan(b.rect.Y, b.rect.Height, viewport.Y, sy, rows)
		for y := y0; y < y1; y++ {
			for x := x0; x < x1; x++ {
				grid[y][x] = b.glyph
			}
		}
	}

	lines := make([]string, rows)
	for y, row := range grid {
		lines[y] = string(row)
	}
	return lines
}

func cellSpan(start, length, origin, scale float64, n int) (int, int) {
	lo := int(math.Floor((start - origin) / scale))
	hi := int(math.Ceil((start + length - origin) / scale))
	if hi <= lo {
		hi = lo + 1
	}
	return max(lo, 0), min(hi, n)
}

func colorizeGrid(lines []string) string {
	var b strings.Builder
	for i, line := range lines {
		if i > 0 {
			b.WriteByte('\n')
		}
		for _, r := range line {
			s := string(r)
			switch r {
			case glyphReference:
				b.WriteString(gridReferenceStyle.Render(s))
			case glyphFloating, glyphHidden:
				b.WriteString(gridFloatingStyle.Render(s))
			case '^', 'v', '<', '>':
				b.WriteString(gridArrowStyle.Render(s))
			default:
				b.WriteString(s)
			}
		}
	}
	return b.String()
}
