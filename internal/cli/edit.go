package cli

import (
	"fmt"
	"path"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/tileforge/mosaic/pkg/canvas"
	"github.com/tileforge/mosaic/pkg/tile"
	"github.com/tileforge/mosaic/pkg/tile/compat"
)

// Editor styles
var (
	editCursorStyle = lipgloss.NewStyle().Reverse(true).Bold(true)
	editTileStyle   = lipgloss.NewStyle().Foreground(colorGreen)
	editDecorStyle  = lipgloss.NewStyle().Foreground(colorYellow)
	editEmptyStyle  = lipgloss.NewStyle().Foreground(colorDim)
)

// editCommand creates the interactive canvas editor command.
func (c *CLI) editCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "edit [canvas.json]",
		Short: "Edit a canvas interactively",
		Long: `Edit a canvas interactively.

The editor shows the grid with one glyph per cell and, for the cell under
the cursor, every palette variant whose connectors agree with the already
placed neighbors. Placing from that list always yields a locally
consistent mosaic.

Keys: arrows/hjkl move, tab/shift+tab cycle compatible variants,
enter place, x clear, w write, q quit.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cv, err := canvas.ImportJSON(args[0])
			if err != nil {
				return err
			}

			model := NewEditModel(cv, args[0])
			final, err := tea.NewProgram(model).Run()
			if err != nil {
				return fmt.Errorf("run editor: %w", err)
			}

			m, ok := final.(EditModel)
			if ok && m.Dirty {
				printWarning("Unsaved changes discarded (use w to write)")
			}
			return nil
		},
	}
}

// =============================================================================
// EditModel - Interactive canvas editing
// =============================================================================

// EditModel is the bubbletea model for the canvas editor.
type EditModel struct {
	Canvas *canvas.Canvas
	Table  *compat.Table
	Path   string
	Row    int
	Col    int
	Dirty  bool

	hints   []compat.Variant
	hintIdx int
	status  string
}

// NewEditModel creates an editor over the given canvas.
func NewEditModel(cv *canvas.Canvas, filePath string) EditModel {
	m := EditModel{
		Canvas: cv,
		Table:  cv.Table(nil),
		Path:   filePath,
	}
	m.refreshHints()
	return m
}

func (m EditModel) Init() tea.Cmd {
	return nil
}

func (m EditModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch key.String() {
	case "q", "ctrl+c", "esc":
		return m, tea.Quit
	case "up", "k":
		if m.Row > 0 {
			m.Row--
			m.refreshHints()
		}
	case "down", "j":
		if m.Row < m.Canvas.Geometry.Rows-1 {
			m.Row++
			m.refreshHints()
		}
	case "left", "h":
		if m.Col > 0 {
			m.Col--
			m.refreshHints()
		}
	case "right", "l":
		if m.Col < m.Canvas.Geometry.Columns-1 {
			m.Col++
			m.refreshHints()
		}
	case "tab":
		if len(m.hints) > 0 {
			m.hintIdx = (m.hintIdx + 1) % len(m.hints)
		}
	case "shift+tab":
		if len(m.hints) > 0 {
			m.hintIdx = (m.hintIdx + len(m.hints) - 1) % len(m.hints)
		}
	case "enter", " ":
		if len(m.hints) == 0 {
			m.status = "no compatible variant for this cell"
			break
		}
		v := m.hints[m.hintIdx]
		if err := m.Canvas.Set(m.cursorIndex(), v.Placement()); err != nil {
			m.status = err.Error()
			break
		}
		m.Dirty = true
		m.status = fmt.Sprintf("placed %s", m.variantLabel(v))
		m.refreshHints()
	case "x", "backspace":
		_ = m.Canvas.Set(m.cursorIndex(), tile.Empty)
		m.Dirty = true
		m.status = "cleared"
		m.refreshHints()
	case "w":
		if err := canvas.ExportJSON(m.Canvas, m.Path); err != nil {
			m.status = err.Error()
			break
		}
		m.Dirty = false
		m.status = fmt.Sprintf("wrote %s", m.Path)
	}

	return m, nil
}

func (m EditModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render(fmt.Sprintf("%s  %dx%d", m.Canvas.Name,
		m.Canvas.Geometry.Columns, m.Canvas.Geometry.Rows)))
	b.WriteString("\n")
	b.WriteString(editEmptyStyle.Render("↑/↓/←/→ move  ⇥ cycle  ⏎ place  x clear  w write  q quit"))
	b.WriteString("\n\n")

	for row := 0; row < m.Canvas.Geometry.Rows; row++ {
		b.WriteString("  ")
		for col := 0; col < m.Canvas.Geometry.Columns; col++ {
			glyph, style := m.cellGlyph(row, col)
			if row == m.Row && col == m.Col {
				style = editCursorStyle
			}
			b.WriteString(style.Render(glyph))
			b.WriteString(" ")
		}
		b.WriteString("\n")
	}
	b.WriteString("\n")

	index := m.cursorIndex()
	p := m.Canvas.At(index)
	if p.IsEmpty() {
		b.WriteString(fmt.Sprintf("  cell %d: %s\n", index, editEmptyStyle.Render("vacant")))
	} else {
		label := path.Base(m.Table.Identity(p.Tile))
		b.WriteString(fmt.Sprintf("  cell %d: %s rot=%d mx=%v my=%v\n",
			index, StyleValue.Render(label), p.Rotation, p.MirrorX, p.MirrorY))
	}

	if len(m.hints) == 0 {
		b.WriteString("  " + StyleWarning.Render("no compatible variants") + "\n")
	} else {
		v := m.hints[m.hintIdx]
		b.WriteString(fmt.Sprintf("  [%d/%d] %s  %s\n", m.hintIdx+1, len(m.hints),
			StyleValue.Render(m.variantLabel(v)), editEmptyStyle.Render(v.Mask.Key())))
	}

	if m.status != "" {
		b.WriteString("\n  " + editEmptyStyle.Render(m.status) + "\n")
	}
	if m.Dirty {
		b.WriteString("  " + StyleWarning.Render("unsaved changes") + "\n")
	}

	return b.String()
}

func (m EditModel) cursorIndex() int {
	return m.Canvas.Geometry.CellIndex(m.Row, m.Col)
}

func (m *EditModel) refreshHints() {
	m.hints = m.Canvas.CompatibleVariants(m.Table, m.cursorIndex())
	m.hintIdx = 0
}

// cellGlyph picks a letter per palette tile; vacant cells draw a dot and
// decorative tiles are highlighted separately.
func (m EditModel) cellGlyph(row, col int) (string, lipgloss.Style) {
	p := m.Canvas.At(m.Canvas.Geometry.CellIndex(row, col))
	if p.IsEmpty() {
		return "·", editEmptyStyle
	}
	glyph := string(rune('A' + p.Tile%26))
	if _, ok := m.Table.BaseMask(p.Tile); !ok {
		return glyph, editDecorStyle
	}
	return glyph, editTileStyle
}

func (m EditModel) variantLabel(v compat.Variant) string {
	return fmt.Sprintf("%s rot=%d mx=%v my=%v",
		path.Base(m.Table.Identity(v.Tile)), v.Rotation, v.MirrorX, v.MirrorY)
}
