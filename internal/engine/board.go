package engine

import (
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/emilianohg/devboard/internal/models"
)

// UnassignedName is shown for tasks whose assignee is not a member.
const UnassignedName = "Unassigned"

// Board applies task board changes to team projects. Every method returns a
// fresh copy of the project; the argument is never modified.
type Board struct {
	now   func() time.Time
	newID func() string
}

type BoardOption func(*Board)

// WithClock sets the time source used for comment timestamps.
func WithClock(now func() time.Time) BoardOption {
	return func(b *Board) { b.now = now }
}

// WithIDs sets the id generator for tasks, comments and members.
func WithIDs(newID func() string) BoardOption {
	return func(b *Board) { b.newID = newID }
}

func NewBoard(opts ...BoardOption) *Board {
	b := &Board{
		now:   time.Now,
		newID: uuid.NewString,
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

type NewTaskInput struct {
	Title       string
	Description string
	DueDate     string
	AssignedTo  string
}

func (in NewTaskInput) valid() bool {
	return !blank(in.Title) && !blank(in.Description) && !blank(in.DueDate) && !blank(in.AssignedTo)
}

// StatusGroups is the three-column board view of a task list.
type StatusGroups struct {
	Pending   []models.Task
	Completed []models.Task
	Rejected  []models.Task
}

// Column returns the group for status, or nil for an unknown status.
func (g StatusGroups) Column(status models.TaskStatus) []models.Task {
	switch status {
	case models.StatusPending:
		return g.Pending
	case models.StatusCompleted:
		return g.Completed
	case models.StatusRejected:
		return g.Rejected
	}
	return nil
}

// GroupByStatus partitions tasks by status, keeping input order in each group.
// Tasks with an unknown status are left out.
func GroupByStatus(tasks []models.Task) StatusGroups {
	var g StatusGroups
	for _, t := range tasks {
		switch t.Status {
		case models.StatusPending:
			g.Pending = append(g.Pending, t)
		case models.StatusCompleted:
			g.Completed = append(g.Completed, t)
		case models.StatusRejected:
			g.Rejected = append(g.Rejected, t)
		}
	}
	return g
}

// Progress is the rounded percentage of completed tasks, 0 with no tasks.
func Progress(tasks []models.Task) int {
	total := len(tasks)
	if total == 0 {
		return 0
	}
	completed := 0
	for _, t := range tasks {
		if t.Status == models.StatusCompleted {
			completed++
		}
	}
	// round half up without floats
	return (200*completed + total) / (2 * total)
}

// SetTaskStatus moves a task to status and recomputes progress. An unknown
// task or status yields an unchanged copy.
func (b *Board) SetTaskStatus(p models.TeamProject, taskID string, status models.TaskStatus) models.TeamProject {
	out := p.Clone()
	if !status.Valid() {
		return out
	}
	i := taskIndex(out.Tasks, taskID)
	if i < 0 {
		return out
	}
	out.Tasks[i].Status = status
	out.Progress = Progress(out.Tasks)
	return out
}

// AddComment appends a comment to a task. Blank text or an unknown task
// yields an unchanged copy.
func (b *Board) AddComment(p models.TeamProject, taskID, authorID, text string) models.TeamProject {
	out := p.Clone()
	if blank(text) {
		return out
	}
	i := taskIndex(out.Tasks, taskID)
	if i < 0 {
		return out
	}

	ts := b.now()
	comments := out.Tasks[i].Comments
	if n := len(comments); n > 0 && !ts.After(comments[n-1].Timestamp) {
		ts = comments[n-1].Timestamp.Add(time.Millisecond)
	}
	out.Tasks[i].Comments = append(comments, models.Comment{
		ID:        b.newID(),
		Author:    authorID,
		Text:      text,
		Timestamp: ts,
	})
	return out
}

// AddTask appends a pending task. All input fields are required; a missing
// one yields an unchanged copy.
func (b *Board) AddTask(p models.TeamProject, in NewTaskInput) models.TeamProject {
	out := p.Clone()
	if !in.valid() {
		return out
	}
	out.Tasks = append(out.Tasks, models.Task{
		ID:          b.newID(),
		Title:       in.Title,
		Description: in.Description,
		AssignedTo:  in.AssignedTo,
		Status:      models.StatusPending,
		DueDate:     in.DueDate,
		Comments:    []models.Comment{},
	})
	out.Progress = Progress(out.Tasks)
	return out
}

// AddMember appends a member whose avatar is the first letter of name.
func (b *Board) AddMember(p models.TeamProject, name, role string) models.TeamProject {
	out := p.Clone()
	name = strings.TrimSpace(name)
	if name == "" {
		return out
	}
	out.Members = append(out.Members, models.TeamMember{
		ID:     b.newID(),
		Name:   name,
		Avatar: Avatar(name),
		Role:   strings.TrimSpace(role),
	})
	return out
}

// Avatar returns the uppercased first letter of name.
func Avatar(name string) string {
	r, _ := utf8.DecodeRuneInString(strings.TrimSpace(name))
	if r == utf8.RuneError {
		return ""
	}
	return string(unicode.ToUpper(r))
}

// Member looks up a member by id.
func Member(p models.TeamProject, id string) (models.TeamMember, bool) {
	for _, m := range p.Members {
		if m.ID == id {
			return m, true
		}
	}
	return models.TeamMember{}, false
}

// MemberName returns the member's name or UnassignedName.
func MemberName(p models.TeamProject, id string) string {
	if m, ok := Member(p, id); ok {
		return m.Name
	}
	return UnassignedName
}

// FindTask returns the task with id.
func FindTask(p models.TeamProject, id string) (models.Task, bool) {
	if i := taskIndex(p.Tasks, id); i >= 0 {
		return p.Tasks[i], true
	}
	return models.Task{}, false
}

// FindTeamProject returns the team project with id.
func FindTeamProject(projects []models.TeamProject, id string) (models.TeamProject, bool) {
	for _, p := range projects {
		if p.ID == id {
			return p, true
		}
	}
	return models.TeamProject{}, false
}

// ReplaceTeamProject swaps in p by id and reports whether a match existed.
func ReplaceTeamProject(projects []models.TeamProject, p models.TeamProject) ([]models.TeamProject, bool) {
	out := make([]models.TeamProject, len(projects))
	found := false
	for i, existing := range projects {
		if existing.ID == p.ID {
			out[i] = p.Clone()
			found = true
			continue
		}
		out[i] = existing
	}
	return out, found
}

func taskIndex(tasks []models.Task, id string) int {
	if id == "" {
		return -1
	}
	for i, t := range tasks {
		if t.ID == id {
			return i
		}
	}
	return -1
}

func blank(s string) bool {
	return strings.TrimSpace(s) == ""
}
