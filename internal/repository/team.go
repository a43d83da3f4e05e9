package repository

import (
	"github.com/emilianohg/devboard/internal/models"
)

// TeamRepo persists team projects under KeyTeamProjects.
type TeamRepo struct {
	slots *SlotStore
}

func NewTeamRepo(slots *SlotStore) *TeamRepo {
	return &TeamRepo{slots: slots}
}

func (r *TeamRepo) Load() ([]models.TeamProject, error) {
	projects := []models.TeamProject{}
	if _, err := r.slots.getJSON(KeyTeamProjects, &projects); err != nil {
		return nil, err
	}
	return projects, nil
}

func (r *TeamRepo) Save(projects []models.TeamProject) error {
	if projects == nil {
		projects = []models.TeamProject{}
	}
	return r.slots.putJSON(KeyTeamProjects, projects)
}

func (r *TeamRepo) Empty() (bool, error) {
	_, ok, err := r.slots.Get(KeyTeamProjects)
	return !ok, err
}
