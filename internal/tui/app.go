package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/emilianohg/devboard/internal/catalog"
	"github.com/emilianohg/devboard/internal/config"
	"github.com/emilianohg/devboard/internal/engine"
	"github.com/emilianohg/devboard/internal/models"
	"github.com/emilianohg/devboard/internal/settings"
	"github.com/emilianohg/devboard/internal/tui/screens"
	"github.com/emilianohg/devboard/internal/workspace"
)

type Screen int

const (
	ScreenDashboard Screen = iota
	ScreenProjects
	ScreenDetail
	ScreenTeam
	ScreenSettings
)

type App struct {
	ws            *workspace.Workspace
	profile       *settings.Store
	registry      *catalog.Registry
	cfg           *config.Config
	username      string
	currentScreen Screen
	width         int
	height        int

	// Screen models
	dashboard *screens.Dashboard
	projects  *screens.Projects
	detail    *screens.Detail
	team      *screens.Team
	settings  *screens.Settings
}

func NewApp(ws *workspace.Workspace, profile *settings.Store, registry *catalog.Registry, cfg *config.Config) *App {
	a := &App{
		ws:            ws,
		profile:       profile,
		registry:      registry,
		cfg:           cfg,
		username:      profile.Profile().Username,
		currentScreen: ScreenDashboard,
	}
	// listeners run inside Update, on the program goroutine
	profile.OnChange(func(p models.Profile) { a.username = p.Username })
	return a
}

func (a *App) Init() tea.Cmd {
	a.dashboard = screens.NewDashboard(a.ws, a.profile, a.registry)
	a.projects = screens.NewProjects(a.ws, a.registry, engine.ParseSortOption(a.cfg.DefaultSort))
	a.detail = screens.NewDetail(a.ws)
	a.team = screens.NewTeam(a.ws, a.cfg.CurrentMember)
	a.settings = screens.NewSettings(a.profile)

	return a.dashboard.Init()
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return a, tea.Quit
		case "q":
			if a.currentScreen == ScreenDashboard {
				return a, tea.Quit
			}
			// Let individual screens handle 'q' for going back
		}

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.dashboard.SetSize(msg.Width, msg.Height)
		a.projects.SetSize(msg.Width, msg.Height)
		a.detail.SetSize(msg.Width, msg.Height)
		a.team.SetSize(msg.Width, msg.Height)
		a.settings.SetSize(msg.Width, msg.Height)

	case screens.NavigateMsg:
		return a.handleNavigation(msg)
	}

	// Update current screen
	var cmd tea.Cmd
	switch a.currentScreen {
	case ScreenDashboard:
		cmd = a.dashboard.Update(msg)
	case ScreenProjects:
		cmd = a.projects.Update(msg)
	case ScreenDetail:
		cmd = a.detail.Update(msg)
	case ScreenTeam:
		cmd = a.team.Update(msg)
	case ScreenSettings:
		cmd = a.settings.Update(msg)
	}

	return a, cmd
}

func (a *App) handleNavigation(msg screens.NavigateMsg) (tea.Model, tea.Cmd) {
	switch msg.Screen {
	case "dashboard":
		a.currentScreen = ScreenDashboard
		return a, a.dashboard.Init()
	case "projects":
		a.currentScreen = ScreenProjects
		if msg.Mode == "add" {
			a.projects.OpenAdd()
		}
		return a, a.projects.Init()
	case "detail":
		a.currentScreen = ScreenDetail
		a.detail.SetProject(msg.ProjectID)
		return a, a.detail.Init()
	case "team":
		a.currentScreen = ScreenTeam
		return a, a.team.Init()
	case "settings":
		a.currentScreen = ScreenSettings
		return a, a.settings.Init()
	}
	return a, nil
}

func (a *App) View() string {
	var content string

	switch a.currentScreen {
	case ScreenDashboard:
		content = a.dashboard.View()
	case ScreenProjects:
		content = a.projects.View()
	case ScreenDetail:
		content = a.detail.View()
	case ScreenTeam:
		content = a.team.View()
	case ScreenSettings:
		content = a.settings.View()
	}

	header := screens.DimStyle.Render("devboard · " + a.username)

	return lipgloss.NewStyle().
		Width(a.width).
		Height(a.height).
		Render(lipgloss.JoinVertical(lipgloss.Left, header, content))
}

func Run(ws *workspace.Workspace, profile *settings.Store, registry *catalog.Registry, cfg *config.Config) error {
	app := NewApp(ws, profile, registry, cfg)
	p := tea.NewProgram(app, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
