package workspace

import (
	"fmt"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/emilianohg/devboard/internal/catalog"
	"github.com/emilianohg/devboard/internal/db"
	"github.com/emilianohg/devboard/internal/engine"
	"github.com/emilianohg/devboard/internal/models"
	"github.com/emilianohg/devboard/internal/seed"
)

func newTestWorkspace(t *testing.T) (*Workspace, *observer.ObservedLogs) {
	t.Helper()
	conn, err := db.OpenAt(filepath.Join(t.TempDir(), "ws.sqlite"))
	require.NoError(t, err)
	require.NoError(t, db.RunMigrations())
	t.Cleanup(func() { db.Close() })

	core, logs := observer.New(zapcore.DebugLevel)

	n := 0
	board := engine.NewBoard(
		engine.WithClock(func() time.Time { return time.Date(2025, 4, 2, 10, 0, 0, 0, time.UTC) }),
		engine.WithIDs(func() string {
			n++
			return fmt.Sprintf("gen-%d", n)
		}),
	)
	ids := engine.NewIDSource(func() time.Time { return time.UnixMilli(1_750_000_000_000) })

	w := New(conn, zap.New(core), WithBoard(board), WithIDSource(ids))
	_, err = seed.Apply(w.ProjectRepo(), w.TeamRepo(), false)
	require.NoError(t, err)
	return w, logs
}

func TestWorkspace_ListAndSummary(t *testing.T) {
	w, _ := newTestWorkspace(t)

	list, err := w.List(engine.Filter{Tech: "Python", Sort: engine.SortMostLiked})
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "2", list[0].ID)
	assert.Equal(t, "5", list[1].ID)

	m, err := w.Summary()
	require.NoError(t, err)
	assert.Equal(t, 6, m.TotalProjects)
	assert.Equal(t, "2", m.MostPopular.ID)
}

func TestWorkspace_AddAndDeleteProject(t *testing.T) {
	w, logs := newTestWorkspace(t)

	p, err := w.AddProject(engine.NewProjectInput{
		Title:       "Task Tracker",
		Description: "Kanban boards",
		Category:    catalog.WebDevelopment,
		TechStack:   []string{"Go"},
	})
	require.NoError(t, err)
	assert.Equal(t, "1750000000000", p.ID)
	assert.Equal(t, 1, logs.FilterMessage("project created").Len())

	latest, err := w.List(engine.Filter{})
	require.NoError(t, err)
	assert.Equal(t, p.ID, latest[0].ID)

	found, err := w.DeleteProject(p.ID)
	require.NoError(t, err)
	assert.True(t, found)

	found, err = w.DeleteProject(p.ID)
	require.NoError(t, err)
	assert.False(t, found)

	projects, err := w.Projects()
	require.NoError(t, err)
	assert.Len(t, projects, 6)

	count, err := w.ActivityRepo().Count()
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}

func TestWorkspace_AddProjectValidation(t *testing.T) {
	w, _ := newTestWorkspace(t)

	_, err := w.AddProject(engine.NewProjectInput{Title: "x", Category: catalog.DevOps})
	assert.ErrorIs(t, err, engine.ErrDescriptionRequired)
}

func TestWorkspace_LikeAndView(t *testing.T) {
	w, _ := newTestWorkspace(t)

	p, err := w.LikeProject("3")
	require.NoError(t, err)
	assert.Equal(t, 37, p.Likes)

	p, err = w.ViewProject("3")
	require.NoError(t, err)
	assert.Equal(t, 216, p.Views)
	assert.Equal(t, 37, p.Likes)

	_, err = w.LikeProject("missing")
	assert.ErrorIs(t, err, ErrProjectNotFound)
}

func TestWorkspace_TaskBoard(t *testing.T) {
	w, logs := newTestWorkspace(t)

	p, err := w.SetTaskStatus("1", "2", models.StatusCompleted)
	require.NoError(t, err)
	assert.Equal(t, 100, p.Progress)

	stored, err := w.TeamProject("1")
	require.NoError(t, err)
	assert.Equal(t, 100, stored.Progress)
	assert.Equal(t, 1, logs.FilterMessage("task updated").Len())

	p, err = w.AddComment("1", "2", "3", "Shipped on mobile too")
	require.NoError(t, err)
	task, ok := engine.FindTask(p, "2")
	require.True(t, ok)
	require.Len(t, task.Comments, 1)
	assert.Equal(t, "gen-1", task.Comments[0].ID)

	p, err = w.AddTask("1", engine.NewTaskInput{Title: "QA", Description: "Cross-browser pass", DueDate: "2025-04-20", AssignedTo: "3"})
	require.NoError(t, err)
	assert.Len(t, p.Tasks, 3)
	assert.Equal(t, 67, p.Progress)
}

func TestWorkspace_TaskBoardErrors(t *testing.T) {
	w, _ := newTestWorkspace(t)

	_, err := w.SetTaskStatus("1", "2", "done")
	assert.ErrorIs(t, err, ErrInvalidStatus)

	_, err = w.SetTaskStatus("9", "2", models.StatusCompleted)
	assert.ErrorIs(t, err, ErrTeamProjectNotFound)

	_, err = w.SetTaskStatus("1", "99", models.StatusCompleted)
	assert.ErrorIs(t, err, ErrTaskNotFound)

	_, err = w.AddComment("1", "2", "1", "   ")
	assert.ErrorIs(t, err, ErrEmptyComment)

	before, err := w.TeamProject("1")
	require.NoError(t, err)
	_, err = w.AddTask("1", engine.NewTaskInput{Title: "QA", Description: "x", AssignedTo: "3"})
	assert.ErrorIs(t, err, ErrIncompleteTask)

	after, err := w.TeamProject("1")
	require.NoError(t, err)
	assert.Equal(t, before, after)
}

func TestWorkspace_AddMember(t *testing.T) {
	w, _ := newTestWorkspace(t)

	p, err := w.AddMember("2", "riley park", "QA")
	require.NoError(t, err)
	require.Len(t, p.Members, 4)
	assert.Equal(t, "R", p.Members[3].Avatar)

	p, err = w.AddMember("2", "", "QA")
	require.NoError(t, err)
	assert.Len(t, p.Members, 4)
}
