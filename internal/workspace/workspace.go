// Package workspace ties the engines to storage. Each mutation loads the
// current snapshot, applies an engine operation and writes the result back,
// so the CLI and the TUI share one code path.
package workspace

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/emilianohg/devboard/internal/engine"
	"github.com/emilianohg/devboard/internal/models"
	"github.com/emilianohg/devboard/internal/repository"
)

var (
	ErrProjectNotFound     = errors.New("project not found")
	ErrTeamProjectNotFound = errors.New("team project not found")
	ErrTaskNotFound        = errors.New("task not found")
	ErrInvalidStatus       = errors.New("invalid task status")
	ErrEmptyComment        = errors.New("comment text is empty")
	ErrIncompleteTask      = errors.New("title, description, due date and assignee are required")
)

type Workspace struct {
	projects *repository.ProjectRepo
	teams    *repository.TeamRepo
	activity *repository.ActivityRepo
	board    *engine.Board
	ids      *engine.IDSource
	log      *zap.Logger
}

type Option func(*Workspace)

func WithBoard(b *engine.Board) Option {
	return func(w *Workspace) { w.board = b }
}

func WithIDSource(ids *engine.IDSource) Option {
	return func(w *Workspace) { w.ids = ids }
}

func New(db *sql.DB, log *zap.Logger, opts ...Option) *Workspace {
	if log == nil {
		log = zap.NewNop()
	}
	slots := repository.NewSlotStore(db, log)
	w := &Workspace{
		projects: repository.NewProjectRepo(slots),
		teams:    repository.NewTeamRepo(slots),
		activity: repository.NewActivityRepo(db),
		board:    engine.NewBoard(),
		ids:      engine.NewIDSource(nil),
		log:      log,
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

func (w *Workspace) ProjectRepo() *repository.ProjectRepo   { return w.projects }
func (w *Workspace) TeamRepo() *repository.TeamRepo         { return w.teams }
func (w *Workspace) ActivityRepo() *repository.ActivityRepo { return w.activity }

func (w *Workspace) Projects() ([]models.Project, error) {
	projects, err := w.projects.Load()
	if err != nil {
		return nil, err
	}
	w.ids.Observe(projects)
	return projects, nil
}

// List loads the projects and applies f.
func (w *Workspace) List(f engine.Filter) ([]models.Project, error) {
	projects, err := w.Projects()
	if err != nil {
		return nil, err
	}
	return engine.Apply(projects, f), nil
}

func (w *Workspace) Summary() (engine.Metrics, error) {
	projects, err := w.Projects()
	if err != nil {
		return engine.Metrics{}, err
	}
	return engine.Summarize(projects), nil
}

func (w *Workspace) Project(id string) (models.Project, error) {
	projects, err := w.Projects()
	if err != nil {
		return models.Project{}, err
	}
	p, ok := engine.FindProject(projects, id)
	if !ok {
		return models.Project{}, fmt.Errorf("%w: %s", ErrProjectNotFound, id)
	}
	return p, nil
}

func (w *Workspace) AddProject(in engine.NewProjectInput) (*models.Project, error) {
	projects, err := w.Projects()
	if err != nil {
		return nil, err
	}
	updated, p, err := engine.AddProject(projects, in, w.ids)
	if err != nil {
		return nil, err
	}
	if err := w.saveProjects(updated, "create", p.ID); err != nil {
		return nil, err
	}
	w.log.Info("project created", zap.String("project_id", p.ID), zap.String("title", p.Title))
	return p, nil
}

// DeleteProject removes the project and reports whether it existed.
func (w *Workspace) DeleteProject(id string) (bool, error) {
	projects, err := w.Projects()
	if err != nil {
		return false, err
	}
	updated, found := engine.DeleteProject(projects, id)
	if !found {
		return false, nil
	}
	if err := w.saveProjects(updated, "delete", id); err != nil {
		return false, err
	}
	w.log.Info("project deleted", zap.String("project_id", id))
	return true, nil
}

// UpdateProject replaces a stored project wholesale.
func (w *Workspace) UpdateProject(p models.Project) error {
	projects, err := w.Projects()
	if err != nil {
		return err
	}
	updated, found := engine.ReplaceProject(projects, p)
	if !found {
		return fmt.Errorf("%w: %s", ErrProjectNotFound, p.ID)
	}
	return w.saveProjects(updated, "update", p.ID)
}

func (w *Workspace) LikeProject(id string) (models.Project, error) {
	return w.bump(id, "like", engine.Like)
}

func (w *Workspace) ViewProject(id string) (models.Project, error) {
	return w.bump(id, "view", engine.View)
}

func (w *Workspace) bump(id, action string, fn func(models.Project) models.Project) (models.Project, error) {
	p, err := w.Project(id)
	if err != nil {
		return models.Project{}, err
	}
	p = fn(p)
	if err := w.UpdateProject(p); err != nil {
		return models.Project{}, err
	}
	w.log.Debug("project "+action, zap.String("project_id", id))
	return p, nil
}

func (w *Workspace) TeamProjects() ([]models.TeamProject, error) {
	return w.teams.Load()
}

func (w *Workspace) TeamProject(id string) (models.TeamProject, error) {
	projects, err := w.teams.Load()
	if err != nil {
		return models.TeamProject{}, err
	}
	p, ok := engine.FindTeamProject(projects, id)
	if !ok {
		return models.TeamProject{}, fmt.Errorf("%w: %s", ErrTeamProjectNotFound, id)
	}
	return p, nil
}

// SetTaskStatus moves a task on the board of team project projectID.
func (w *Workspace) SetTaskStatus(projectID, taskID string, status models.TaskStatus) (models.TeamProject, error) {
	if !status.Valid() {
		return models.TeamProject{}, fmt.Errorf("%w: %q", ErrInvalidStatus, status)
	}
	return w.mutateTask(projectID, taskID, "status", func(p models.TeamProject) models.TeamProject {
		return w.board.SetTaskStatus(p, taskID, status)
	})
}

func (w *Workspace) AddComment(projectID, taskID, authorID, text string) (models.TeamProject, error) {
	if strings.TrimSpace(text) == "" {
		return models.TeamProject{}, ErrEmptyComment
	}
	return w.mutateTask(projectID, taskID, "comment", func(p models.TeamProject) models.TeamProject {
		return w.board.AddComment(p, taskID, authorID, text)
	})
}

func (w *Workspace) AddTask(projectID string, in engine.NewTaskInput) (models.TeamProject, error) {
	before, err := w.TeamProject(projectID)
	if err != nil {
		return models.TeamProject{}, err
	}
	after := w.board.AddTask(before, in)
	if len(after.Tasks) == len(before.Tasks) {
		return before, ErrIncompleteTask
	}
	newTask := after.Tasks[len(after.Tasks)-1]
	if err := w.saveTeamProject(after, "add_task", newTask.ID); err != nil {
		return models.TeamProject{}, err
	}
	w.log.Info("task added", zap.String("project_id", projectID), zap.String("task_id", newTask.ID))
	return after, nil
}

func (w *Workspace) AddMember(projectID, name, role string) (models.TeamProject, error) {
	before, err := w.TeamProject(projectID)
	if err != nil {
		return models.TeamProject{}, err
	}
	after := w.board.AddMember(before, name, role)
	if len(after.Members) == len(before.Members) {
		return before, nil
	}
	member := after.Members[len(after.Members)-1]
	if err := w.saveTeamProject(after, "add_member", member.ID); err != nil {
		return models.TeamProject{}, err
	}
	return after, nil
}

func (w *Workspace) mutateTask(projectID, taskID, action string, fn func(models.TeamProject) models.TeamProject) (models.TeamProject, error) {
	p, err := w.TeamProject(projectID)
	if err != nil {
		return models.TeamProject{}, err
	}
	if _, ok := engine.FindTask(p, taskID); !ok {
		return models.TeamProject{}, fmt.Errorf("%w: %s", ErrTaskNotFound, taskID)
	}
	updated := fn(p)
	if err := w.saveTeamProject(updated, action, taskID); err != nil {
		return models.TeamProject{}, err
	}
	w.log.Info("task updated",
		zap.String("action", action),
		zap.String("project_id", projectID),
		zap.String("task_id", taskID),
		zap.Int("progress", updated.Progress),
	)
	return updated, nil
}

func (w *Workspace) saveProjects(projects []models.Project, action, subjectID string) error {
	if err := w.projects.Save(projects); err != nil {
		return err
	}
	w.record(repository.KeyProjects, action, subjectID)
	return nil
}

func (w *Workspace) saveTeamProject(p models.TeamProject, action, subjectID string) error {
	projects, err := w.teams.Load()
	if err != nil {
		return err
	}
	updated, found := engine.ReplaceTeamProject(projects, p)
	if !found {
		return fmt.Errorf("%w: %s", ErrTeamProjectNotFound, p.ID)
	}
	if err := w.teams.Save(updated); err != nil {
		return err
	}
	w.record(repository.KeyTeamProjects, action, subjectID)
	return nil
}

// record is best effort: the change is already saved.
func (w *Workspace) record(slot, action, subjectID string) {
	if err := w.activity.Record(slot, action, subjectID); err != nil {
		w.log.Warn("record activity failed", zap.Error(err), zap.String("action", action))
	}
}
