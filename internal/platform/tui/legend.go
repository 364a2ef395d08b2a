package tui

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/crossing/internal/games/crossing"
)

// newLegendTable lists every bonus kind and what collecting it is worth.
func newLegendTable(height int) table.Model {
	columns := []table.Column{
		{Title: "Bonus", Width: 12},
		{Title: "Shown", Width: 7},
		{Title: "Score", Width: 7},
		{Title: "Mult", Width: 6},
		{Title: "Lives", Width: 6},
	}

	rows := make([]table.Row, len(crossing.Kinds))
	for i, k := range crossing.Kinds {
		rows[i] = table.Row{
			k.Name,
			fmt.Sprintf("%.1fs", k.DisplayLife),
			signed(k.Effect.Score),
			signed(k.Effect.Multiplier),
			signed(k.Effect.Lives),
		}
	}

	// Header plus one line per kind, capped by the screen
	h := min(len(rows)+1, max(height-6, 2))

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(h),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

func signed(v int) string {
	if v == 0 {
		return "-"
	}
	return "+" + strconv.Itoa(v)
}
