package screens

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/emilianohg/devboard/internal/catalog"
	"github.com/emilianohg/devboard/internal/models"
)

// NavigateMsg is sent when navigation to another screen is requested
type NavigateMsg struct {
	Screen    string
	ProjectID string
	// Mode lets a caller open a screen in a sub-mode, e.g. the add form.
	Mode string
}

func Navigate(screen string) tea.Cmd {
	return func() tea.Msg {
		return NavigateMsg{Screen: screen}
	}
}

func NavigateWithProject(screen string, projectID string) tea.Cmd {
	return func() tea.Msg {
		return NavigateMsg{Screen: screen, ProjectID: projectID}
	}
}

func NavigateWithMode(screen, mode string) tea.Cmd {
	return func() tea.Msg {
		return NavigateMsg{Screen: screen, Mode: mode}
	}
}

// RefreshMsg is sent when data should be refreshed
type RefreshMsg struct{}

func Refresh() tea.Cmd {
	return func() tea.Msg {
		return RefreshMsg{}
	}
}

// Styles
var (
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("99")).
			MarginBottom(1)

	SubtitleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			MarginBottom(1)

	HelpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			MarginTop(1)

	SelectedStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("141"))

	NormalStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252"))

	DimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	SuccessStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42"))

	WarningStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("214"))

	ErrorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))

	BoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("99")).
			Padding(1, 2)

	ColumnStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("238")).
			Padding(0, 1).
			Width(30)

	ActiveColumnStyle = ColumnStyle.
				BorderForeground(lipgloss.Color("141"))
)

var categoryColors = map[catalog.Category]lipgloss.Color{
	catalog.WebDevelopment: lipgloss.Color("33"),
	catalog.AppDevelopment: lipgloss.Color("99"),
	catalog.AIML:           lipgloss.Color("63"),
	catalog.DataScience:    lipgloss.Color("35"),
	catalog.DevOps:         lipgloss.Color("214"),
	catalog.Blockchain:     lipgloss.Color("204"),
}

// CategoryBadge renders a category label in its card color.
func CategoryBadge(c catalog.Category) string {
	color, ok := categoryColors[c]
	if !ok {
		color = lipgloss.Color("245")
	}
	return lipgloss.NewStyle().Foreground(color).Render(string(c))
}

var statusColors = map[models.TaskStatus]lipgloss.Color{
	models.StatusPending:   lipgloss.Color("214"),
	models.StatusCompleted: lipgloss.Color("42"),
	models.StatusRejected:  lipgloss.Color("196"),
}

func StatusLabel(s models.TaskStatus) string {
	if s == "" {
		return ""
	}
	label := strings.ToUpper(string(s[:1])) + string(s[1:])
	return lipgloss.NewStyle().Foreground(statusColors[s]).Render(label)
}

// ProgressBar draws a fixed-width bar for a 0-100 percentage.
func ProgressBar(percent, width int) string {
	if percent < 0 {
		percent = 0
	}
	if percent > 100 {
		percent = 100
	}
	filled := percent * width / 100
	bar := SelectedStyle.Render(strings.Repeat("█", filled)) +
		DimStyle.Render(strings.Repeat("░", width-filled))
	return fmt.Sprintf("%s %3d%%", bar, percent)
}

// truncate shortens s to n runes with an ellipsis.
func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	if n <= 1 {
		return string(r[:n])
	}
	return string(r[:n-1]) + "…"
}

func cursorPrefix(selected bool) (string, lipgloss.Style) {
	if selected {
		return "> ", SelectedStyle
	}
	return "  ", NormalStyle
}
