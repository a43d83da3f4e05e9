package screens

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/emilianohg/devboard/internal/catalog"
	"github.com/emilianohg/devboard/internal/engine"
	"github.com/emilianohg/devboard/internal/models"
	"github.com/emilianohg/devboard/internal/repository"
	"github.com/emilianohg/devboard/internal/settings"
	"github.com/emilianohg/devboard/internal/workspace"
)

type Dashboard struct {
	ws       *workspace.Workspace
	registry *catalog.Registry
	username string
	width    int
	height   int

	metrics    engine.Metrics
	lastChange string
	recent     []repository.Activity
	loading    bool
	err        error
}

func NewDashboard(ws *workspace.Workspace, profile *settings.Store, registry *catalog.Registry) *Dashboard {
	d := &Dashboard{
		ws:       ws,
		registry: registry,
		username: profile.Profile().Username,
		loading:  true,
	}
	profile.OnChange(func(p models.Profile) { d.username = p.Username })
	return d
}

func (d *Dashboard) SetSize(width, height int) {
	d.width = width
	d.height = height
}

type dashboardDataMsg struct {
	metrics    engine.Metrics
	lastChange string
	recent     []repository.Activity
	err        error
}

func (d *Dashboard) Init() tea.Cmd {
	d.loading = true
	return d.loadData
}

func (d *Dashboard) loadData() tea.Msg {
	metrics, err := d.ws.Summary()
	if err != nil {
		return dashboardDataMsg{err: err}
	}

	activity := d.ws.ActivityRepo()
	lastTime, err := activity.LastChange()
	if err != nil {
		return dashboardDataMsg{err: err}
	}

	lastChange := "Never"
	if lastTime != nil {
		lastChange = lastTime.Local().Format("Jan 02, 2006 15:04")
	}

	recent, err := activity.Recent(5)
	if err != nil {
		return dashboardDataMsg{err: err}
	}

	return dashboardDataMsg{
		metrics:    metrics,
		lastChange: lastChange,
		recent:     recent,
	}
}

func (d *Dashboard) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case dashboardDataMsg:
		d.loading = false
		d.err = msg.err
		d.metrics = msg.metrics
		d.lastChange = msg.lastChange
		d.recent = msg.recent
		return nil

	case RefreshMsg:
		return d.Init()

	case tea.KeyMsg:
		switch msg.String() {
		case "p":
			return Navigate("projects")
		case "n":
			return NavigateWithMode("projects", "add")
		case "t":
			return Navigate("team")
		case "s":
			return Navigate("settings")
		case "enter":
			if d.metrics.MostPopular != nil {
				return NavigateWithProject("detail", d.metrics.MostPopular.ID)
			}
		}
	}

	return nil
}

func (d *Dashboard) View() string {
	var b strings.Builder

	b.WriteString(TitleStyle.Render("PROJECTS DASHBOARD"))
	b.WriteString("\n")
	b.WriteString(SubtitleStyle.Render(fmt.Sprintf("Welcome back, %s. Manage and explore your coding projects.", d.username)))
	b.WriteString("\n\n")

	if d.loading {
		b.WriteString("Loading...\n")
		return b.String()
	}

	if d.err != nil {
		b.WriteString(ErrorStyle.Render(fmt.Sprintf("Error: %v", d.err)))
		b.WriteString("\n")
		return b.String()
	}

	m := d.metrics
	statsContent := fmt.Sprintf(
		"Projects: %d\nTotal views: %d\nTotal likes: %d\nLast change: %s",
		m.TotalProjects,
		m.TotalViews,
		m.TotalLikes,
		d.lastChange,
	)
	b.WriteString(BoxStyle.Render(statsContent))
	b.WriteString("\n\n")

	if m.MostPopular != nil {
		b.WriteString(SubtitleStyle.Render("Most popular"))
		b.WriteString("\n")
		b.WriteString(fmt.Sprintf("  %s %s - %d likes\n",
			NormalStyle.Render(m.MostPopular.Title),
			CategoryBadge(m.MostPopular.Category),
			m.MostPopular.Likes,
		))
		b.WriteString("\n")
	}

	if len(m.Featured) > 0 {
		b.WriteString(SubtitleStyle.Render("Featured"))
		b.WriteString("\n")
		for _, p := range m.Featured {
			b.WriteString(fmt.Sprintf("  ★ %s %s\n", NormalStyle.Render(p.Title), DimStyle.Render(truncate(p.Description, 50))))
		}
		b.WriteString("\n")
	}

	if len(m.Categories) > 0 {
		b.WriteString(SubtitleStyle.Render("By category"))
		b.WriteString("\n")
		for _, c := range m.Ordered(d.registry) {
			b.WriteString(fmt.Sprintf("  %-18s %s %d\n",
				CategoryBadge(c.Category),
				SelectedStyle.Render(strings.Repeat("▇", c.Count)),
				c.Count,
			))
		}
		b.WriteString("\n")
	} else {
		b.WriteString(DimStyle.Render("No projects yet. Press 'n' to create one."))
		b.WriteString("\n\n")
	}

	if len(d.recent) > 0 {
		b.WriteString(SubtitleStyle.Render("Recent activity"))
		b.WriteString("\n")
		for _, a := range d.recent {
			b.WriteString(DimStyle.Render(fmt.Sprintf("  %s  %s %s %s",
				a.CreatedAt.Local().Format("Jan 02 15:04"), a.Slot, a.Action, a.SubjectID)))
			b.WriteString("\n")
		}
	}

	help := "[p] Projects  [n] New project  [t] Team  [s] Settings  [enter] Open most popular  [q] Quit"
	b.WriteString(HelpStyle.Render(help))

	return b.String()
}
