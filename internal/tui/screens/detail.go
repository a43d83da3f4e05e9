package screens

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/emilianohg/devboard/internal/models"
	"github.com/emilianohg/devboard/internal/workspace"
)

// Detail shows one project. Opening it counts as a view.
type Detail struct {
	ws     *workspace.Workspace
	width  int
	height int

	projectID string
	project   models.Project
	confirm   bool
	loading   bool
	err       error
	message   string
}

func NewDetail(ws *workspace.Workspace) *Detail {
	return &Detail{ws: ws}
}

func (d *Detail) SetSize(width, height int) {
	d.width = width
	d.height = height
}

func (d *Detail) SetProject(id string) {
	d.projectID = id
}

type detailDataMsg struct {
	project models.Project
	err     error
}

func (d *Detail) Init() tea.Cmd {
	d.loading = true
	d.confirm = false
	d.message = ""
	return d.loadData
}

func (d *Detail) loadData() tea.Msg {
	p, err := d.ws.ViewProject(d.projectID)
	return detailDataMsg{project: p, err: err}
}

func (d *Detail) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case detailDataMsg:
		d.loading = false
		d.err = msg.err
		d.project = msg.project
		return nil

	case RefreshMsg:
		return d.Init()

	case tea.KeyMsg:
		if d.confirm {
			return d.handleDeleteKey(msg)
		}
		switch msg.String() {
		case "l":
			if d.err != nil {
				return nil
			}
			p, err := d.ws.LikeProject(d.projectID)
			if err != nil {
				d.err = err
				return nil
			}
			d.project = p
			d.message = "Liked!"
		case "d":
			if d.err == nil {
				d.confirm = true
			}
		case "q", "esc":
			return Navigate("projects")
		}
	}
	return nil
}

func (d *Detail) handleDeleteKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "y", "Y":
		d.confirm = false
		if _, err := d.ws.DeleteProject(d.projectID); err != nil {
			d.err = err
			return nil
		}
		return Navigate("projects")
	case "n", "N", "esc":
		d.confirm = false
	}
	return nil
}

func (d *Detail) View() string {
	var b strings.Builder

	if d.loading {
		b.WriteString("Loading...\n")
		return b.String()
	}

	if d.err != nil {
		b.WriteString(TitleStyle.Render("PROJECT"))
		b.WriteString("\n\n")
		b.WriteString(ErrorStyle.Render(fmt.Sprintf("Error: %v", d.err)))
		b.WriteString("\n")
		b.WriteString(HelpStyle.Render("[q] Back"))
		return b.String()
	}

	p := d.project
	title := strings.ToUpper(p.Title)
	if p.Featured {
		title += " ★"
	}
	b.WriteString(TitleStyle.Render(title))
	b.WriteString("\n")
	b.WriteString(CategoryBadge(p.Category))
	b.WriteString("\n\n")

	if d.message != "" {
		b.WriteString(SuccessStyle.Render(d.message))
		b.WriteString("\n\n")
	}

	var body strings.Builder
	body.WriteString(p.Description)
	body.WriteString("\n\n")
	fmt.Fprintf(&body, "Tech: %s\n", strings.Join(p.TechStack, ", "))
	fmt.Fprintf(&body, "Likes: %d   Views: %d\n", p.Likes, p.Views)
	if p.Link != "" {
		fmt.Fprintf(&body, "Link: %s\n", p.Link)
	}
	if p.Image != "" {
		fmt.Fprintf(&body, "Image: %s\n", p.Image)
	}
	if !p.CreatedAt.IsZero() {
		fmt.Fprintf(&body, "Created: %s", p.CreatedAt.Local().Format("Jan 02, 2006"))
	}
	b.WriteString(BoxStyle.Render(strings.TrimRight(body.String(), "\n")))
	b.WriteString("\n")

	if d.confirm {
		b.WriteString(WarningStyle.Render(fmt.Sprintf("Delete project '%s'? (y/n)", p.Title)))
		b.WriteString("\n")
		return b.String()
	}

	b.WriteString(HelpStyle.Render("[l] Like  [d] Delete  [q] Back"))
	return b.String()
}
