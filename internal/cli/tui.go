package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/jwinther/homeplan/pkg/plan"
)

// List styles
var (
	listSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	listDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
)

// RoomListModel is the bubbletea model for browsing a generated plan's
// rooms interactively.
type RoomListModel struct {
	Plan   plan.Plan
	Cursor int
	Height int
	Offset int
}

// NewRoomListModel creates a room list model for the plan.
func NewRoomListModel(p plan.Plan) RoomListModel {
	return RoomListModel{Plan: p, Height: 15}
}

func (m RoomListModel) Init() tea.Cmd {
	return nil
}

func (m RoomListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc", "enter":
			return m, tea.Quit
		case "up", "k":
			if m.Cursor > 0 {
				m.Cursor--
				if m.Cursor < m.Offset {
					m.Offset = m.Cursor
				}
			}
		case "down", "j":
			if m.Cursor < len(m.Plan.Rooms)-1 {
				m.Cursor++
				if m.Cursor >= m.Offset+m.Height {
					m.Offset = m.Cursor - m.Height + 1
				}
			}
		}
	case tea.WindowSizeMsg:
		m.Height = msg.Height - 8
		if m.Height < 5 {
			m.Height = 5
		}
	}
	return m, nil
}

func (m RoomListModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render(fmt.Sprintf("%s · %.0f sqft", m.Plan.Style, m.Plan.TotalArea)))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  q quit"))
	b.WriteString("\n\n")

	end := m.Offset + m.Height
	if end > len(m.Plan.Rooms) {
		end = len(m.Plan.Rooms)
	}

	rows := [][]string{}
	for i := m.Offset; i < end; i++ {
		r := m.Plan.Rooms[i]

		cursor := "  "
		if i == m.Cursor {
			cursor = "▸ "
		}

		rows = append(rows, []string{
			cursor,
			r.Name,
			string(r.Category),
			fmt.Sprintf("%.0f", r.TargetArea),
			fmt.Sprintf("%.1f x %.1f", float64(r.Length)/1000, float64(r.Width)/1000),
			fmt.Sprintf("(%d, %d)", r.X, r.Y),
		})
	}

	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("", "Room", "Category", "Sqft", "Size (m)", "Position (mm)").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return headerStyle
			}
			if m.Offset+row == m.Cursor {
				return listSelectedStyle
			}
			if col <= 1 {
				return StyleValue
			}
			return StyleDim
		})

	b.WriteString(t.Render())
	b.WriteString("\n\n")
	b.WriteString(listDimStyle.Render(fmt.Sprintf("  [%d/%d]  footprint %.1fm x %.1fm",
		m.Cursor+1, len(m.Plan.Rooms),
		float64(m.Plan.Footprint.Length)/1000, float64(m.Plan.Footprint.Width)/1000)))

	return b.String()
}
