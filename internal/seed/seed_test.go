package seed

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/emilianohg/devboard/internal/engine"
	"github.com/emilianohg/devboard/internal/models"
)

type fakeProjects struct {
	empty bool
	saved []models.Project
}

func (f *fakeProjects) Empty() (bool, error) { return f.empty, nil }
func (f *fakeProjects) Save(p []models.Project) error {
	f.saved = p
	return nil
}

type fakeTeams struct {
	empty bool
	saved []models.TeamProject
}

func (f *fakeTeams) Empty() (bool, error) { return f.empty, nil }
func (f *fakeTeams) Save(p []models.TeamProject) error {
	f.saved = p
	return nil
}

func TestTeamProjects_ProgressIsDerived(t *testing.T) {
	for _, p := range TeamProjects() {
		assert.Equal(t, engine.Progress(p.Tasks), p.Progress, p.Title)
	}
	assert.Equal(t, 50, TeamProjects()[0].Progress)
	assert.Equal(t, 0, TeamProjects()[1].Progress)
}

func TestProjects_UniqueIDs(t *testing.T) {
	seen := map[string]bool{}
	for _, p := range Projects() {
		assert.False(t, seen[p.ID], p.ID)
		seen[p.ID] = true
	}
}

func TestApply_OnlyEmptySlots(t *testing.T) {
	projects := &fakeProjects{empty: true}
	teams := &fakeTeams{empty: false}

	result, err := Apply(projects, teams, false)
	require.NoError(t, err)

	assert.Equal(t, 6, result.Projects)
	assert.Zero(t, result.TeamProjects)
	assert.Len(t, projects.saved, 6)
	assert.Nil(t, teams.saved)
}

func TestApply_Force(t *testing.T) {
	projects := &fakeProjects{}
	teams := &fakeTeams{}

	result, err := Apply(projects, teams, true)
	require.NoError(t, err)

	assert.Equal(t, 6, result.Projects)
	assert.Equal(t, 2, result.TeamProjects)
}
