package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/emilianohg/devboard/internal/catalog"
	"github.com/emilianohg/devboard/internal/config"
	"github.com/emilianohg/devboard/internal/models"
	"github.com/emilianohg/devboard/internal/settings"
)

type profileMem struct{ profile models.Profile }

func (m *profileMem) Load() (models.Profile, error) { return m.profile, nil }

func (m *profileMem) Save(p models.Profile) error {
	m.profile = p
	return nil
}

func TestApp_HeaderFollowsProfile(t *testing.T) {
	store, err := settings.NewStore(&profileMem{profile: models.DefaultProfile()}, nil)
	require.NoError(t, err)

	a := NewApp(nil, store, catalog.NewRegistry(nil, nil), config.DefaultConfig())
	assert.Equal(t, "User Name", a.username)

	require.NoError(t, store.Update(models.Profile{Username: "Riley", Email: "riley@example.com"}))
	assert.Equal(t, "Riley", a.username)
}
