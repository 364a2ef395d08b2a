package tui

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/crossing/internal/assets"
	"github.com/vovakirdan/crossing/internal/config"
	"github.com/vovakirdan/crossing/internal/core"
	"github.com/vovakirdan/crossing/internal/games/crossing"
)

const (
	helpRows         = 1
	assetLoadTimeout = 10 * time.Second
)

var (
	helpStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229")).MarginBottom(1)
	boxStyle   = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("240")).Padding(0, 1)
)

// Model is the Bubble Tea model for one crossing session. The game is
// created only once the sprite catalog is ready; ticks start after that.
type Model struct {
	catalog *assets.Catalog
	cfg     config.CrossingConfig
	runtime core.RuntimeConfig
	logger  *log.Logger

	reloads <-chan config.CrossingConfig

	game       *crossing.Game
	screen     *core.Screen
	keys       KeyMap
	help       help.Model
	legend     table.Model
	showLegend bool
	err        error
	quitting   bool
}

// NewModel creates a model that loads sprites from catalog and then runs
// a game configured by cfg.
func NewModel(catalog *assets.Catalog, cfg config.CrossingConfig, runtime core.RuntimeConfig, logger *log.Logger) Model {
	// Use time-based seed if not specified
	if runtime.Seed == 0 {
		runtime.Seed = time.Now().UnixNano()
	}
	if runtime.TickRate <= 0 {
		runtime.TickRate = core.DefaultConfig().TickRate
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}

	h := help.New()
	h.Width = runtime.ScreenW

	return Model{
		catalog: catalog,
		cfg:     cfg,
		runtime: runtime,
		logger:  logger,
		screen:  core.NewScreen(runtime.ScreenW, max(runtime.ScreenH-helpRows, 1)),
		keys:    DefaultKeyMap(),
		help:    h,
		legend:  newLegendTable(runtime.ScreenH),
	}
}

// WithConfigReloads makes the model apply every config received on reloads
// at the next restart.
func (m Model) WithConfigReloads(reloads <-chan config.CrossingConfig) Model {
	m.reloads = reloads
	return m
}

// Init starts loading sprites and waits for them off the UI goroutine.
func (m Model) Init() tea.Cmd {
	m.catalog.Load(context.Background())
	if m.reloads == nil {
		return waitForAssets(m.catalog, assetLoadTimeout)
	}
	return tea.Batch(waitForAssets(m.catalog, assetLoadTimeout), waitForConfig(m.reloads))
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case AssetsReadyMsg:
		return m.handleAssets(msg)

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(msg)

	case ConfigReloadedMsg:
		return m.handleReload(msg)
	}

	return m, nil
}

// handleAssets starts the game once every sprite it needs is available.
func (m Model) handleAssets(msg AssetsReadyMsg) (tea.Model, tea.Cmd) {
	err := msg.Err
	if err == nil {
		err = m.catalog.Require(crossing.RequiredSprites()...)
	}
	if err != nil {
		m.err = fmt.Errorf("tui: sprites unavailable: %w", err)
		m.logger.Error("sprite catalog failed", "err", err)
		m.quitting = true
		return m, tea.Quit
	}

	m.game = crossing.New(m.cfg, m.catalog, m.logger)
	m.game.Reset(m.runtime)
	return m, tickCmd(m.runtime.TickRate)
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.keys.Action(msg)

	switch {
	case action == core.ActionQuit:
		m.quitting = true
		return m, tea.Quit
	case action == core.ActionLegend:
		m.showLegend = !m.showLegend
		return m, nil
	case m.showLegend:
		if key.Matches(msg, m.keys.Close) {
			m.showLegend = false
			return m, nil
		}
		var cmd tea.Cmd
		m.legend, cmd = m.legend.Update(msg)
		return m, cmd
	}

	// Keys pressed while sprites load are dropped
	if m.game != nil && action != core.ActionNone {
		m.game.HandleInput(action)
	}
	return m, nil
}

// handleResize processes window resize events. The simulation runs in
// canvas pixels, so only the projection changes.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.runtime.ScreenW = msg.Width
	m.runtime.ScreenH = msg.Height
	m.screen.Resize(msg.Width, max(msg.Height-helpRows, 1))
	m.help.Width = msg.Width
	m.legend = newLegendTable(msg.Height)
	return m, nil
}

// handleTick feeds the wall clock to the game. The next tick is always
// scheduled, whether or not this one ran a step.
func (m Model) handleTick(msg TickMsg) (tea.Model, tea.Cmd) {
	if m.game != nil {
		m.game.Tick(time.Time(msg))
	}
	return m, tickCmd(m.runtime.TickRate)
}

// handleReload queues a reloaded config and waits for the next one.
func (m Model) handleReload(msg ConfigReloadedMsg) (tea.Model, tea.Cmd) {
	m.cfg = msg.Config
	if m.game != nil {
		m.game.Reconfigure(msg.Config)
	}
	m.logger.Info("config reloaded; applies on restart")
	return m, waitForConfig(m.reloads)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	if m.game == nil {
		return lipgloss.Place(m.runtime.ScreenW, m.runtime.ScreenH,
			lipgloss.Center, lipgloss.Center, helpStyle.Render("Loading sprites..."))
	}

	if m.showLegend {
		return m.legendView()
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen) + "\n" + helpStyle.Render(m.help.View(m.keys))
}

func (m Model) legendView() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("BONUSES"))
	b.WriteString("\n")
	b.WriteString(boxStyle.Render(m.legend.View()))
	b.WriteString("\n")
	b.WriteString(helpStyle.Render("Pending bonuses pay score x mult when you reach the water."))
	b.WriteString("\n")
	b.WriteString(helpStyle.Render(m.help.ShortHelpView([]key.Binding{m.keys.Close, m.keys.Quit})))
	return lipgloss.Place(m.runtime.ScreenW, m.runtime.ScreenH, lipgloss.Center, lipgloss.Center, b.String())
}

// Err returns the error that ended the session, if any.
func (m Model) Err() error {
	return m.err
}

// Game returns the running game, or nil while sprites load.
func (m Model) Game() *crossing.Game {
	return m.game
}

// Run starts the Bubble Tea program with a new model. A nil reloads
// channel disables config reloading.
func Run(catalog *assets.Catalog, cfg config.CrossingConfig, runtime core.RuntimeConfig, logger *log.Logger, reloads <-chan config.CrossingConfig) error {
	model := NewModel(catalog, cfg, runtime, logger).WithConfigReloads(reloads)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	final, err := p.Run()
	if err != nil {
		return err
	}
	if fm, ok := final.(Model); ok && fm.Err() != nil {
		return fm.Err()
	}
	return nil
}
