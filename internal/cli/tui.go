package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/tileforge/mosaic/pkg/tile"
	"github.com/tileforge/mosaic/pkg/tile/compat"
)

// List styles
var (
	listDimStyle = lipgloss.NewStyle().Foreground(colorDim)
)

// browseCommand creates the interactive palette browser command.
func (c *CLI) browseCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "browse [dir|file]",
		Short: "Browse a palette's tiles interactively",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			pal, err := loadPalette(args[0])
			if err != nil {
				return fmt.Errorf("load palette %s: %w", args[0], err)
			}

			model := NewTileListModel(pal.Table())
			final, err := tea.NewProgram(model).Run()
			if err != nil {
				return fmt.Errorf("run browser: %w", err)
			}

			m, ok := final.(TileListModel)
			if !ok || m.Selected == nil {
				return nil
			}
			printTileVariants(m.Table, *m.Selected)
			return nil
		},
	}
}

// printTileVariants lists the orientation variants of the chosen tile.
func printTileVariants(tab *compat.Table, index int) {
	fmt.Println(StyleTitle.Render(tab.Identity(index)))
	variants := tab.Variants(index)
	if variants == nil {
		printInfo("Decorative tile, no connection mask")
		return
	}
	for _, v := range variants {
		label := fmt.Sprintf("rot=%d mx=%v my=%v", v.Rotation, v.MirrorX, v.MirrorY)
		printKeyValue(label, v.Mask.Key())
	}
}

// =============================================================================
// TileListModel - Interactive tile selection
// =============================================================================

// TileListModel is the bubbletea model for interactive tile browsing.
type TileListModel struct {
	Table    *compat.Table
	Cursor   int
	Selected *int
	Height   int
	Offset   int
}

// NewTileListModel creates a new tile list model.
func NewTileListModel(tab *compat.Table) TileListModel {
	return TileListModel{
		Table:  tab,
		Cursor: 0,
		Height: 15,
		Offset: 0,
	}
}

func (m TileListModel) Init() tea.Cmd {
	return nil
}

func (m TileListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.Cursor > 0 {
				m.Cursor--
				if m.Cursor < m.Offset {
					m.Offset = m.Cursor
				}
			}
		case "down", "j":
			if m.Cursor < m.Table.Size()-1 {
				m.Cursor++
				if m.Cursor >= m.Offset+m.Height {
					m.Offset = m.Cursor - m.Height + 1
				}
			}
		case "enter":
			selected := m.Cursor
			m.Selected = &selected
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.Height = msg.Height - 6
		if m.Height < 5 {
			m.Height = 5
		}
	}
	return m, nil
}

func (m TileListModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Select Tile"))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  ⏎ select  q quit"))
	b.WriteString("\n\n")

	end := m.Offset + m.Height
	if end > m.Table.Size() {
		end = m.Table.Size()
	}

	rows := [][]string{}
	for i := m.Offset; i < end; i++ {
		cursor := "  "
		if i == m.Cursor {
			cursor = "▸ "
		}

		identity := m.Table.Identity(i)
		mask := "—"
		connectors := "—"
		if base, ok := m.Table.BaseMask(i); ok {
			mask = base.Key()
			n, _ := tile.ConnectionCount(identity)
			connectors = fmt.Sprintf("%d", n)
		}

		rows = append(rows, []string{cursor, identity, mask, connectors})
	}

	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("", "Tile", "Mask", "Conn").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return headerStyle
			}

			actualIdx := m.Offset + row
			if actualIdx >= m.Table.Size() {
				return lipgloss.NewStyle()
			}
			_, derivable := m.Table.BaseMask(actualIdx)
			isCurrent := actualIdx == m.Cursor

			base := lipgloss.NewStyle()
			if isCurrent {
				if derivable {
					return base.Foreground(colorGreen).Bold(true)
				}
				return base.Foreground(colorDim).Bold(true)
			}
			if !derivable {
				return base.Foreground(colorDim)
			}
			return base.Foreground(colorWhite)
		})

	b.WriteString(t.Render())
	b.WriteString("\n\n")
	b.WriteString(listDimStyle.Render(fmt.Sprintf("  [%d/%d]", m.Cursor+1, m.Table.Size())))

	return b.String()
}
