package screens

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/emilianohg/devboard/internal/catalog"
	"github.com/emilianohg/devboard/internal/engine"
	"github.com/emilianohg/devboard/internal/models"
	"github.com/emilianohg/devboard/internal/workspace"
)

type projectsMode int

const (
	projectsModeList projectsMode = iota
	projectsModeSearch
	projectsModeAdd
	projectsModeDelete
)

const (
	fieldTitle = iota
	fieldDescription
	fieldCategory
	fieldLink
	// fieldTech is the tag picker after the text inputs; enter there saves.
	fieldTech
	fieldCount
)

type Projects struct {
	ws       *workspace.Workspace
	registry *catalog.Registry
	width    int
	height   int

	all      []models.Project
	visible  []models.Project
	filter   engine.Filter
	cursor   int
	mode     projectsMode
	search   textinput.Model
	form     []textinput.Model
	focus    int
	tags     []string
	tagIndex int
	stack    []string
	featured bool
	loading  bool
	err      error
	message  string
}

func NewProjects(ws *workspace.Workspace, registry *catalog.Registry, sort engine.SortOption) *Projects {
	search := textinput.New()
	search.Placeholder = "Search title or description"
	search.CharLimit = 100
	search.Width = 40

	return &Projects{
		ws:       ws,
		registry: registry,
		filter:   engine.Filter{Sort: sort},
		search:   search,
		form:     newProjectForm(),
	}
}

func newProjectForm() []textinput.Model {
	placeholders := [fieldTech]string{
		fieldTitle:       "Title",
		fieldDescription: "Description",
		fieldCategory:    "Category (e.g. Web Development)",
		fieldLink:        "Link (optional)",
	}
	form := make([]textinput.Model, fieldTech)
	for i := range form {
		ti := textinput.New()
		ti.Placeholder = placeholders[i]
		ti.CharLimit = 200
		ti.Width = 50
		form[i] = ti
	}
	return form
}

func (p *Projects) SetSize(width, height int) {
	p.width = width
	p.height = height
}

// OpenAdd makes the next Init start in the create form.
func (p *Projects) OpenAdd() {
	p.mode = projectsModeAdd
}

type projectsDataMsg struct {
	projects []models.Project
	err      error
}

func (p *Projects) Init() tea.Cmd {
	p.loading = true
	p.message = ""
	if p.mode == projectsModeAdd {
		p.resetForm()
	} else {
		p.mode = projectsModeList
	}
	return p.loadData
}

func (p *Projects) loadData() tea.Msg {
	projects, err := p.ws.Projects()
	return projectsDataMsg{projects: projects, err: err}
}

func (p *Projects) Update(msg tea.Msg) tea.Cmd {
	switch p.mode {
	case projectsModeSearch:
		if keyMsg, ok := msg.(tea.KeyMsg); ok {
			switch keyMsg.String() {
			case "enter", "esc":
				p.mode = projectsModeList
				p.search.Blur()
				return nil
			}
			var cmd tea.Cmd
			p.search, cmd = p.search.Update(msg)
			p.filter.Search = p.search.Value()
			p.applyFilter()
			return cmd
		}
	case projectsModeAdd:
		if keyMsg, ok := msg.(tea.KeyMsg); ok {
			return p.handleFormKey(keyMsg)
		}
	}

	switch msg := msg.(type) {
	case projectsDataMsg:
		p.loading = false
		p.err = msg.err
		p.all = msg.projects
		p.applyFilter()
		return nil

	case RefreshMsg:
		return p.Init()

	case tea.KeyMsg:
		switch p.mode {
		case projectsModeList:
			return p.handleListKey(msg)
		case projectsModeDelete:
			return p.handleDeleteKey(msg)
		}
	}

	return nil
}

func (p *Projects) applyFilter() {
	p.visible = engine.Apply(p.all, p.filter)
	if p.cursor >= len(p.visible) {
		p.cursor = max(0, len(p.visible)-1)
	}
}

func (p *Projects) handleListKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "up", "k":
		if p.cursor > 0 {
			p.cursor--
		}
	case "down", "j":
		if p.cursor < len(p.visible)-1 {
			p.cursor++
		}
	case "/":
		p.mode = projectsModeSearch
		p.search.Focus()
	case "c":
		p.filter.Category = nextCategory(p.registry.Categories(), p.filter.Category)
		p.applyFilter()
	case "t":
		p.filter.Tech = nextTag(engine.TechTags(p.all), p.filter.Tech)
		p.applyFilter()
	case "s":
		p.filter.Sort = nextSort(p.filter.Sort)
		p.applyFilter()
	case "x":
		p.filter = engine.Filter{Sort: p.filter.Sort}
		p.search.SetValue("")
		p.applyFilter()
	case "a":
		p.mode = projectsModeAdd
		p.resetForm()
	case "d":
		if len(p.visible) > 0 {
			p.mode = projectsModeDelete
		}
	case "enter":
		if len(p.visible) > 0 {
			return NavigateWithProject("detail", p.visible[p.cursor].ID)
		}
	case "q", "esc":
		return Navigate("dashboard")
	}
	return nil
}

func (p *Projects) resetForm() {
	for i := range p.form {
		p.form[i].SetValue("")
		p.form[i].Blur()
	}
	p.featured = false
	p.tags = p.registry.TechTags()
	p.tagIndex = 0
	p.stack = nil
	p.focus = fieldTitle
	p.form[p.focus].Focus()
}

func (p *Projects) handleFormKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "esc":
		p.mode = projectsModeList
		p.blurField()
		return nil
	case "tab", "down":
		p.moveFocus(1)
		return nil
	case "shift+tab", "up":
		p.moveFocus(-1)
		return nil
	case "ctrl+f":
		p.featured = !p.featured
		return nil
	case "enter":
		if p.focus < fieldCount-1 {
			p.moveFocus(1)
			return nil
		}
		return p.submitForm()
	}

	if p.focus == fieldTech {
		p.handlePickerKey(msg)
		return nil
	}
	var cmd tea.Cmd
	p.form[p.focus], cmd = p.form[p.focus].Update(msg)
	return cmd
}

func (p *Projects) moveFocus(delta int) {
	p.blurField()
	p.focus = (p.focus + delta + fieldCount) % fieldCount
	if p.focus < fieldTech {
		p.form[p.focus].Focus()
	}
}

func (p *Projects) blurField() {
	if p.focus < fieldTech {
		p.form[p.focus].Blur()
	}
}

// handlePickerKey moves through the registered tech tags and toggles the
// highlighted one.
func (p *Projects) handlePickerKey(msg tea.KeyMsg) {
	if len(p.tags) == 0 {
		return
	}
	switch msg.String() {
	case "left", "h":
		p.tagIndex = (p.tagIndex - 1 + len(p.tags)) % len(p.tags)
	case "right", "l":
		p.tagIndex = (p.tagIndex + 1) % len(p.tags)
	case " ", "x":
		p.stack = engine.ToggleTech(p.stack, p.tags[p.tagIndex])
	}
}

func (p *Projects) submitForm() tea.Cmd {
	category, ok := p.registry.ParseCategory(p.form[fieldCategory].Value())
	if !ok {
		p.err = fmt.Errorf("unknown category %q", p.form[fieldCategory].Value())
		return nil
	}

	created, err := p.ws.AddProject(engine.NewProjectInput{
		Title:       p.form[fieldTitle].Value(),
		Description: p.form[fieldDescription].Value(),
		Category:    category,
		TechStack:   p.stack,
		Link:        strings.TrimSpace(p.form[fieldLink].Value()),
		Featured:    p.featured,
	})
	if err != nil {
		p.err = err
		return nil
	}

	p.message = fmt.Sprintf("Created project: %s", created.Title)
	p.mode = projectsModeList
	p.blurField()
	p.cursor = 0
	return p.loadData
}

func (p *Projects) handleDeleteKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "y", "Y":
		target := p.visible[p.cursor]
		if _, err := p.ws.DeleteProject(target.ID); err != nil {
			p.err = err
		} else {
			p.message = fmt.Sprintf("Deleted project: %s", target.Title)
		}
		p.mode = projectsModeList
		return p.loadData

	case "n", "N", "esc":
		p.mode = projectsModeList
	}
	return nil
}

// nextCategory cycles "All Projects" followed by every registered category.
func nextCategory(categories []catalog.Category, current catalog.Category) catalog.Category {
	if current == "" {
		if len(categories) == 0 {
			return ""
		}
		return categories[0]
	}
	for i, c := range categories {
		if c == current && i+1 < len(categories) {
			return categories[i+1]
		}
	}
	return ""
}

func nextTag(tags []string, current string) string {
	if current == "" {
		if len(tags) == 0 {
			return ""
		}
		return tags[0]
	}
	for i, t := range tags {
		if t == current && i+1 < len(tags) {
			return tags[i+1]
		}
	}
	return ""
}

func nextSort(current engine.SortOption) engine.SortOption {
	for i, o := range engine.SortOptions {
		if o == current {
			return engine.SortOptions[(i+1)%len(engine.SortOptions)]
		}
	}
	return engine.SortOptions[0]
}

func (p *Projects) filterLine() string {
	category := catalog.AllLabel
	if p.filter.Category != "" {
		category = string(p.filter.Category)
	}
	tech := "Any tech"
	if p.filter.Tech != "" {
		tech = p.filter.Tech
	}
	return fmt.Sprintf("Category: %s | Tech: %s | Sort: %s", category, tech, p.filter.Sort.Label())
}

func (p *Projects) View() string {
	var b strings.Builder

	b.WriteString(TitleStyle.Render("PROJECTS"))
	b.WriteString("\n\n")

	if p.loading {
		b.WriteString("Loading...\n")
		return b.String()
	}

	if p.err != nil {
		b.WriteString(ErrorStyle.Render(fmt.Sprintf("Error: %v", p.err)))
		b.WriteString("\n\n")
		p.err = nil
	}

	if p.message != "" {
		b.WriteString(SuccessStyle.Render(p.message))
		b.WriteString("\n\n")
	}

	if p.mode == projectsModeAdd {
		b.WriteString("New project:\n\n")
		for _, f := range p.form {
			b.WriteString(f.View())
			b.WriteString("\n")
		}
		featured := "no"
		if p.featured {
			featured = "yes"
		}
		b.WriteString(DimStyle.Render("Featured: " + featured))
		b.WriteString("\n")
		b.WriteString(p.pickerView())
		b.WriteString("\n")
		b.WriteString(DimStyle.Render("Categories: " + joinCategories(p.registry.Categories())))
		b.WriteString("\n")
		b.WriteString(HelpStyle.Render("[tab] Next field  [←/→] Pick tech  [space] Toggle tech  [ctrl+f] Toggle featured  [enter] Save on tech field  [esc] Cancel"))
		return b.String()
	}

	if p.mode == projectsModeDelete && len(p.visible) > 0 {
		b.WriteString(WarningStyle.Render(fmt.Sprintf(
			"Delete project '%s'? (y/n)",
			p.visible[p.cursor].Title,
		)))
		b.WriteString("\n")
		return b.String()
	}

	b.WriteString(p.search.View())
	b.WriteString("\n")
	b.WriteString(DimStyle.Render(p.filterLine()))
	b.WriteString("\n\n")

	if len(p.visible) == 0 {
		if len(p.all) == 0 {
			b.WriteString(DimStyle.Render("No projects yet."))
		} else {
			b.WriteString(DimStyle.Render("No projects match the current filters."))
		}
		b.WriteString("\n\n")
	} else {
		for i, proj := range p.visible {
			cursor, style := cursorPrefix(i == p.cursor)
			star := ""
			if proj.Featured {
				star = " ★"
			}
			line := fmt.Sprintf("%s%s%s - %d likes, %d views",
				cursor,
				truncate(proj.Title, 40),
				star,
				proj.Likes,
				proj.Views,
			)
			b.WriteString(style.Render(line))
			b.WriteString(" ")
			b.WriteString(CategoryBadge(proj.Category))
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	help := "[/] Search  [c] Category  [t] Tech  [s] Sort  [x] Clear  [a] Add  [d] Delete  [enter] Details  [q] Back"
	b.WriteString(HelpStyle.Render(help))

	return b.String()
}

func joinCategories(cs []catalog.Category) string {
	names := make([]string, len(cs))
	for i, c := range cs {
		names[i] = string(c)
	}
	return strings.Join(names, ", ")
}

func (p *Projects) pickerView() string {
	var b strings.Builder
	b.WriteString("Tech: ")
	if len(p.stack) == 0 {
		b.WriteString(DimStyle.Render("none"))
	} else {
		b.WriteString(strings.Join(p.stack, ", "))
	}
	if len(p.tags) == 0 {
		return b.String()
	}
	b.WriteString("\n")
	style := DimStyle
	if p.focus == fieldTech {
		style = SelectedStyle
	}
	mark := "[ ]"
	tag := p.tags[p.tagIndex]
	for _, t := range p.stack {
		if t == tag {
			mark = "[x]"
		}
	}
	b.WriteString(style.Render(fmt.Sprintf("< %s %s >", mark, tag)))
	return b.String()
}
