// Package tui provides the Bubble Tea integration for the crossing game.
// It handles the terminal UI loop, input mapping and the SSH server.
package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/crossing/internal/assets"
	"github.com/vovakirdan/crossing/internal/config"
)

// TickMsg is sent to trigger a game simulation tick.
type TickMsg time.Time

// AssetsReadyMsg reports that the sprite catalog finished loading.
type AssetsReadyMsg struct {
	Err error
}

// ConfigReloadedMsg carries a configuration reloaded from disk.
type ConfigReloadedMsg struct {
	Config config.CrossingConfig
}

// tickCmd returns a Bubble Tea command that sends tick messages at the specified rate.
func tickCmd(tickRate int) tea.Cmd {
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// waitForAssets blocks in a command goroutine until the catalog is ready
// or the timeout expires.
func waitForAssets(c *assets.Catalog, timeout time.Duration) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		return AssetsReadyMsg{Err: c.Wait(ctx)}
	}
}

// waitForConfig delivers the next reloaded config. It returns nil once the
// channel is closed, which ends the wait loop.
func waitForConfig(reloads <-chan config.CrossingConfig) tea.Cmd {
	return func() tea.Msg {
		cfg, ok := <-reloads
		if !ok {
			return nil
		}
		return ConfigReloadedMsg{Config: cfg}
	}
}
