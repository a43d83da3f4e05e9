package screens

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/emilianohg/devboard/internal/engine"
	"github.com/emilianohg/devboard/internal/models"
	"github.com/emilianohg/devboard/internal/workspace"
)

type teamMode int

const (
	teamModeList teamMode = iota
	teamModeBoard
	teamModeComment
	teamModeAddTask
	teamModeAddMember
)

const (
	taskFieldTitle = iota
	taskFieldDescription
	taskFieldDue
	taskFieldAssignee
	taskFieldCount
)

type Team struct {
	ws       *workspace.Workspace
	memberID string
	width    int
	height   int

	projects []models.TeamProject
	current  models.TeamProject
	cursor   int
	column   int
	row      int
	mode     teamMode
	comment  textinput.Model
	task     []textinput.Model
	member   []textinput.Model
	focus    int
	loading  bool
	err      error
	message  string
}

// NewTeam builds the team screen. Comments are authored as memberID.
func NewTeam(ws *workspace.Workspace, memberID string) *Team {
	comment := textinput.New()
	comment.Placeholder = "Write a comment"
	comment.CharLimit = 500
	comment.Width = 60

	return &Team{
		ws:       ws,
		memberID: memberID,
		comment:  comment,
		task:     newInputs(50, "Title", "Description", "Due date (YYYY-MM-DD)", "Assignee member id"),
		member:   newInputs(40, "Name", "Role"),
	}
}

func newInputs(width int, placeholders ...string) []textinput.Model {
	inputs := make([]textinput.Model, len(placeholders))
	for i, ph := range placeholders {
		ti := textinput.New()
		ti.Placeholder = ph
		ti.CharLimit = 200
		ti.Width = width
		inputs[i] = ti
	}
	return inputs
}

func (t *Team) SetSize(width, height int) {
	t.width = width
	t.height = height
}

type teamDataMsg struct {
	projects []models.TeamProject
	err      error
}

func (t *Team) Init() tea.Cmd {
	t.loading = true
	t.mode = teamModeList
	t.message = ""
	return t.loadData
}

func (t *Team) loadData() tea.Msg {
	projects, err := t.ws.TeamProjects()
	return teamDataMsg{projects: projects, err: err}
}

func (t *Team) Update(msg tea.Msg) tea.Cmd {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch t.mode {
		case teamModeComment:
			return t.handleCommentKey(keyMsg)
		case teamModeAddTask:
			return t.handleFormKey(keyMsg, t.task, t.submitTask)
		case teamModeAddMember:
			return t.handleFormKey(keyMsg, t.member, t.submitMember)
		}
	}

	switch msg := msg.(type) {
	case teamDataMsg:
		t.loading = false
		t.err = msg.err
		t.projects = msg.projects
		if t.cursor >= len(t.projects) {
			t.cursor = max(0, len(t.projects)-1)
		}
		return nil

	case RefreshMsg:
		return t.Init()

	case tea.KeyMsg:
		switch t.mode {
		case teamModeList:
			return t.handleListKey(msg)
		case teamModeBoard:
			return t.handleBoardKey(msg)
		}
	}
	return nil
}

func (t *Team) handleListKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "up", "k":
		if t.cursor > 0 {
			t.cursor--
		}
	case "down", "j":
		if t.cursor < len(t.projects)-1 {
			t.cursor++
		}
	case "enter":
		if len(t.projects) > 0 {
			t.current = t.projects[t.cursor]
			t.column, t.row = 0, 0
			t.mode = teamModeBoard
		}
	case "q", "esc":
		return Navigate("dashboard")
	}
	return nil
}

func (t *Team) handleBoardKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "left", "h":
		if t.column > 0 {
			t.column--
			t.row = 0
		}
	case "right", "l":
		if t.column < len(models.Statuses)-1 {
			t.column++
			t.row = 0
		}
	case "up", "k":
		if t.row > 0 {
			t.row--
		}
	case "down", "j":
		if t.row < len(t.columnTasks())-1 {
			t.row++
		}
	case "1", "2", "3":
		if task, ok := t.selectedTask(); ok {
			status := models.Statuses[msg.String()[0]-'1']
			t.apply(t.ws.SetTaskStatus(t.current.ID, task.ID, status))
			t.clampRow()
		}
	case "c":
		if _, ok := t.selectedTask(); ok {
			t.mode = teamModeComment
			t.comment.SetValue("")
			t.comment.Focus()
		}
	case "a":
		t.mode = teamModeAddTask
		t.openForm(t.task)
	case "m":
		t.mode = teamModeAddMember
		t.openForm(t.member)
	case "q", "esc":
		t.mode = teamModeList
		return t.loadData
	}
	return nil
}

func (t *Team) handleCommentKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "esc":
		t.mode = teamModeBoard
		t.comment.Blur()
		return nil
	case "enter":
		task, _ := t.selectedTask()
		if t.apply(t.ws.AddComment(t.current.ID, task.ID, t.memberID, t.comment.Value())) {
			t.message = "Comment added"
		}
		t.mode = teamModeBoard
		t.comment.Blur()
		return nil
	}
	var cmd tea.Cmd
	t.comment, cmd = t.comment.Update(msg)
	return cmd
}

func (t *Team) openForm(inputs []textinput.Model) {
	for i := range inputs {
		inputs[i].SetValue("")
		inputs[i].Blur()
	}
	t.focus = 0
	inputs[0].Focus()
}

func (t *Team) handleFormKey(msg tea.KeyMsg, inputs []textinput.Model, submit func()) tea.Cmd {
	switch msg.String() {
	case "esc":
		inputs[t.focus].Blur()
		t.mode = teamModeBoard
		return nil
	case "tab", "down":
		inputs[t.focus].Blur()
		t.focus = (t.focus + 1) % len(inputs)
		inputs[t.focus].Focus()
		return nil
	case "shift+tab", "up":
		inputs[t.focus].Blur()
		t.focus = (t.focus - 1 + len(inputs)) % len(inputs)
		inputs[t.focus].Focus()
		return nil
	case "enter":
		if t.focus < len(inputs)-1 {
			inputs[t.focus].Blur()
			t.focus++
			inputs[t.focus].Focus()
			return nil
		}
		submit()
		return nil
	}
	var cmd tea.Cmd
	inputs[t.focus], cmd = inputs[t.focus].Update(msg)
	return cmd
}

func (t *Team) submitTask() {
	in := engine.NewTaskInput{
		Title:       t.task[taskFieldTitle].Value(),
		Description: t.task[taskFieldDescription].Value(),
		DueDate:     strings.TrimSpace(t.task[taskFieldDue].Value()),
		AssignedTo:  strings.TrimSpace(t.task[taskFieldAssignee].Value()),
	}
	if !t.apply(t.ws.AddTask(t.current.ID, in)) {
		return
	}
	t.message = fmt.Sprintf("Added task: %s", in.Title)
	t.task[t.focus].Blur()
	t.mode = teamModeBoard
}

func (t *Team) submitMember() {
	name := t.member[0].Value()
	if !t.apply(t.ws.AddMember(t.current.ID, name, t.member[1].Value())) {
		return
	}
	t.message = fmt.Sprintf("Added member: %s", strings.TrimSpace(name))
	t.member[t.focus].Blur()
	t.mode = teamModeBoard
}

// apply stores the result of a board mutation and reports success.
func (t *Team) apply(p models.TeamProject, err error) bool {
	if err != nil {
		t.err = err
		return false
	}
	t.current = p
	return true
}

func (t *Team) columnTasks() []models.Task {
	return engine.GroupByStatus(t.current.Tasks).Column(models.Statuses[t.column])
}

func (t *Team) selectedTask() (models.Task, bool) {
	tasks := t.columnTasks()
	if t.row < 0 || t.row >= len(tasks) {
		return models.Task{}, false
	}
	return tasks[t.row], true
}

func (t *Team) clampRow() {
	if n := len(t.columnTasks()); t.row >= n {
		t.row = max(0, n-1)
	}
}

func (t *Team) View() string {
	var b strings.Builder

	title := "TEAM PROJECTS"
	if t.mode != teamModeList {
		title = strings.ToUpper(t.current.Title)
	}
	b.WriteString(TitleStyle.Render(title))
	b.WriteString("\n\n")

	if t.loading {
		b.WriteString("Loading...\n")
		return b.String()
	}

	if t.err != nil {
		b.WriteString(ErrorStyle.Render(fmt.Sprintf("Error: %v", t.err)))
		b.WriteString("\n\n")
		t.err = nil
	}

	if t.message != "" {
		b.WriteString(SuccessStyle.Render(t.message))
		b.WriteString("\n\n")
	}

	switch t.mode {
	case teamModeList:
		b.WriteString(t.listView())
	case teamModeAddTask:
		b.WriteString("New task:\n\n")
		for _, f := range t.task {
			b.WriteString(f.View())
			b.WriteString("\n")
		}
		b.WriteString(DimStyle.Render("Members: " + t.memberIDs()))
		b.WriteString("\n")
		b.WriteString(HelpStyle.Render("[tab] Next field  [enter] Save on last field  [esc] Cancel"))
	case teamModeAddMember:
		b.WriteString("New member:\n\n")
		for _, f := range t.member {
			b.WriteString(f.View())
			b.WriteString("\n")
		}
		b.WriteString(HelpStyle.Render("[tab] Next field  [enter] Save on last field  [esc] Cancel"))
	default:
		b.WriteString(t.boardView())
	}

	return b.String()
}

func (t *Team) listView() string {
	var b strings.Builder
	if len(t.projects) == 0 {
		b.WriteString(DimStyle.Render("No team projects yet."))
		b.WriteString("\n\n")
	} else {
		for i, p := range t.projects {
			cursor, style := cursorPrefix(i == t.cursor)
			b.WriteString(style.Render(fmt.Sprintf("%s%-30s", cursor, truncate(p.Title, 30))))
			b.WriteString(" ")
			b.WriteString(ProgressBar(p.Progress, 20))
			b.WriteString(DimStyle.Render(fmt.Sprintf("  %d members, %d tasks", len(p.Members), len(p.Tasks))))
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}
	b.WriteString(HelpStyle.Render("[enter] Open board  [q] Back"))
	return b.String()
}

func (t *Team) boardView() string {
	var b strings.Builder
	p := t.current

	b.WriteString(DimStyle.Render(p.Description))
	b.WriteString("\n")
	b.WriteString(ProgressBar(p.Progress, 30))
	b.WriteString("\n\n")

	groups := engine.GroupByStatus(p.Tasks)
	columns := make([]string, len(models.Statuses))
	for ci, status := range models.Statuses {
		tasks := groups.Column(status)
		var col strings.Builder
		col.WriteString(StatusLabel(status))
		col.WriteString(DimStyle.Render(fmt.Sprintf(" (%d)", len(tasks))))
		col.WriteString("\n")
		for ri, task := range tasks {
			cursor, style := cursorPrefix(ci == t.column && ri == t.row)
			col.WriteString(style.Render(cursor + truncate(task.Title, 24)))
			col.WriteString("\n")
			col.WriteString(DimStyle.Render(fmt.Sprintf("  %s · %s", engine.MemberName(p, task.AssignedTo), task.DueDate)))
			col.WriteString("\n")
		}
		style := ColumnStyle
		if ci == t.column {
			style = ActiveColumnStyle
		}
		columns[ci] = style.Render(strings.TrimRight(col.String(), "\n"))
	}
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, columns...))
	b.WriteString("\n")

	if task, ok := t.selectedTask(); ok {
		b.WriteString("\n")
		b.WriteString(SelectedStyle.Render(task.Title))
		b.WriteString("\n")
		b.WriteString(task.Description)
		b.WriteString("\n")
		for _, c := range task.Comments {
			b.WriteString(DimStyle.Render(fmt.Sprintf("  %s (%s): ",
				engine.MemberName(p, c.Author), c.Timestamp.Local().Format("Jan 02 15:04"))))
			b.WriteString(c.Text)
			b.WriteString("\n")
		}
	}

	if t.mode == teamModeComment {
		b.WriteString("\n")
		b.WriteString(t.comment.View())
		b.WriteString("\n")
		b.WriteString(HelpStyle.Render("[enter] Post  [esc] Cancel"))
		return b.String()
	}

	help := "[←/→] Column  [↑/↓] Task  [1] Pending  [2] Completed  [3] Rejected  [c] Comment  [a] Add task  [m] Add member  [q] Back"
	b.WriteString(HelpStyle.Render(help))
	return b.String()
}

func (t *Team) memberIDs() string {
	parts := make([]string, len(t.current.Members))
	for i, m := range t.current.Members {
		parts[i] = fmt.Sprintf("%s=%s", m.ID, m.Name)
	}
	return strings.Join(parts, ", ")
}
