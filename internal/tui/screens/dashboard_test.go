package screens

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/emilianohg/devboard/internal/catalog"
)

func TestDashboard_FollowsProfileChanges(t *testing.T) {
	ws, store := seededWorkspace(t)
	d := NewDashboard(ws, store, catalog.NewRegistry(nil, nil))
	send(d.Update, d.Init()())
	require.Contains(t, d.View(), "Welcome back, User Name.")

	s := NewSettings(store)
	s.Init()
	s.inputs[0].SetValue("Riley")
	s.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NoError(t, s.err)

	assert.Contains(t, d.View(), "Welcome back, Riley.")
	assert.Equal(t, "Riley", store.Profile().Username)
}

func TestDashboard_InvalidProfileKeepsName(t *testing.T) {
	ws, store := seededWorkspace(t)
	d := NewDashboard(ws, store, catalog.NewRegistry(nil, nil))

	s := NewSettings(store)
	s.Init()
	s.inputs[0].SetValue("Riley")
	s.inputs[1].SetValue("not-an-email")
	s.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.Error(t, s.err)

	assert.Equal(t, "User Name", d.username)
}

func TestDashboard_Metrics(t *testing.T) {
	ws, store := seededWorkspace(t)
	d := NewDashboard(ws, store, catalog.NewRegistry(nil, nil))
	send(d.Update, d.Init()())

	require.NoError(t, d.err)
	assert.Equal(t, 6, d.metrics.TotalProjects)
	require.NotNil(t, d.metrics.MostPopular)
	assert.Equal(t, "2", d.metrics.MostPopular.ID)
	assert.Equal(t, "Never", d.lastChange)

	cmd := d.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	assert.Equal(t, NavigateMsg{Screen: "detail", ProjectID: "2"}, cmd())
}
