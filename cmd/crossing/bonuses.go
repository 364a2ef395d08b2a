package main

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/crossing/internal/games/crossing"
)

var bonusesCmd = &cobra.Command{
	Use:   "bonuses",
	Short: "Show the bonus table",
	Long:  `Lists every bonus kind, how long it stays on the board and what it adds to the pending bonus.`,
	Args:  cobra.NoArgs,
	Run:   runBonuses,
}

var headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229")).Padding(0, 1)

func runBonuses(_ *cobra.Command, _ []string) {
	fmt.Println(bonusTable())
	fmt.Println()
	fmt.Println("Pending bonuses pay score x multiplier (+1) when you reach the water,")
	fmt.Println("and are dropped when you step back onto the grass.")
}

func bonusTable() string {
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("240"))).
		Headers("BONUS", "SHOWN", "SCORE", "MULT", "LIVES").
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return lipgloss.NewStyle().Padding(0, 1)
		})

	for _, k := range crossing.Kinds {
		t.Row(
			k.Name,
			fmt.Sprintf("%.1fs", k.DisplayLife),
			strconv.Itoa(k.Effect.Score),
			strconv.Itoa(k.Effect.Multiplier),
			strconv.Itoa(k.Effect.Lives),
		)
	}
	return t.Render()
}
