package repository

import (
	"database/sql"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/emilianohg/devboard/internal/catalog"
	"github.com/emilianohg/devboard/internal/db"
	"github.com/emilianohg/devboard/internal/models"
)

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()
	conn, err := db.OpenAt(filepath.Join(t.TempDir(), "repo.sqlite"))
	require.NoError(t, err)
	require.NoError(t, db.RunMigrations())
	t.Cleanup(func() { db.Close() })
	return conn
}

func TestProjectRepo_EmptySlot(t *testing.T) {
	repo := NewProjectRepo(NewSlotStore(openTestDB(t), zap.NewNop()))

	empty, err := repo.Empty()
	require.NoError(t, err)
	assert.True(t, empty)

	projects, err := repo.Load()
	require.NoError(t, err)
	assert.NotNil(t, projects)
	assert.Empty(t, projects)
}

func TestProjectRepo_SaveLoad(t *testing.T) {
	repo := NewProjectRepo(NewSlotStore(openTestDB(t), nil))
	created := time.Date(2025, 3, 30, 14, 30, 0, 0, time.UTC)

	projects := []models.Project{
		{ID: "2", Title: "AI Image Generator", Category: catalog.AIML, TechStack: []string{"Python"}, Likes: 89, Views: 423},
		{ID: "1", Title: "E-Commerce Platform", Category: catalog.WebDevelopment, TechStack: []string{"React", "Node.js"}, Featured: true, Link: "https://example.com", CreatedAt: created},
	}
	require.NoError(t, repo.Save(projects))

	loaded, err := repo.Load()
	require.NoError(t, err)
	assert.Equal(t, projects, loaded)

	// overwrite replaces the whole slot
	require.NoError(t, repo.Save(projects[:1]))
	loaded, err = repo.Load()
	require.NoError(t, err)
	assert.Len(t, loaded, 1)

	empty, err := repo.Empty()
	require.NoError(t, err)
	assert.False(t, empty)
}

func TestProjectRepo_SaveNil(t *testing.T) {
	slots := NewSlotStore(openTestDB(t), nil)
	repo := NewProjectRepo(slots)

	require.NoError(t, repo.Save(nil))

	raw, ok, err := slots.Get(KeyProjects)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "[]", string(raw))
}

func TestProjectRepo_CorruptSlot(t *testing.T) {
	slots := NewSlotStore(openTestDB(t), nil)
	require.NoError(t, slots.Put(KeyProjects, []byte("{not json")))

	_, err := NewProjectRepo(slots).Load()
	assert.ErrorContains(t, err, `decode slot "projects"`)
}

func TestTeamRepo_SaveLoad(t *testing.T) {
	repo := NewTeamRepo(NewSlotStore(openTestDB(t), nil))
	ts := time.Date(2025, 4, 1, 9, 15, 0, 0, time.UTC)

	projects := []models.TeamProject{{
		ID:      "1",
		Title:   "Marketing Website Redesign",
		Members: []models.TeamMember{{ID: "1", Name: "Alex Johnson", Avatar: "A", Role: "Project Lead"}},
		Tasks: []models.Task{{
			ID:         "1",
			Title:      "Create wireframes",
			AssignedTo: "1",
			Status:     models.StatusCompleted,
			DueDate:    "2025-04-02",
			Comments:   []models.Comment{{ID: "1", Author: "1", Text: "Looking good!", Timestamp: ts}},
		}},
		Progress: 100,
	}}
	require.NoError(t, repo.Save(projects))

	loaded, err := repo.Load()
	require.NoError(t, err)
	assert.Equal(t, projects, loaded)
}

func TestProfileRepo(t *testing.T) {
	repo := NewProfileRepo(NewSlotStore(openTestDB(t), nil))

	profile, err := repo.Load()
	require.NoError(t, err)
	assert.Equal(t, models.DefaultProfile(), profile)

	require.NoError(t, repo.Save(models.Profile{Username: "Sam Lee", Email: "sam@example.com"}))

	profile, err = repo.Load()
	require.NoError(t, err)
	assert.Equal(t, "Sam Lee", profile.Username)
	assert.Equal(t, "sam@example.com", profile.Email)
}

func TestSlotStore_PutOverwrites(t *testing.T) {
	slots := NewSlotStore(openTestDB(t), nil)
	require.NoError(t, slots.Put("k", []byte("v1")))
	require.NoError(t, slots.Put("k", []byte("v2")))

	raw, ok, err := slots.Get("k")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "v2", string(raw))
}

func TestActivityRepo(t *testing.T) {
	repo := NewActivityRepo(openTestDB(t))

	last, err := repo.LastChange()
	require.NoError(t, err)
	assert.Nil(t, last)

	require.NoError(t, repo.Record(KeyProjects, "create", "1"))
	require.NoError(t, repo.Record(KeyTeamProjects, "comment", "t1"))

	count, err := repo.Count()
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	recent, err := repo.Recent(1)
	require.NoError(t, err)
	require.Len(t, recent, 1)
	assert.Equal(t, "comment", recent[0].Action)
	assert.Equal(t, "t1", recent[0].SubjectID)

	last, err = repo.LastChange()
	require.NoError(t, err)
	require.NotNil(t, last)
	assert.WithinDuration(t, time.Now(), *last, time.Minute)
}
