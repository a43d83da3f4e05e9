package repository

import (
	"github.com/emilianohg/devboard/internal/models"
)

// ProjectRepo persists the whole project list under KeyProjects.
type ProjectRepo struct {
	slots *SlotStore
}

func NewProjectRepo(slots *SlotStore) *ProjectRepo {
	return &ProjectRepo{slots: slots}
}

// Load returns the saved list, or an empty list if nothing was saved yet.
func (r *ProjectRepo) Load() ([]models.Project, error) {
	projects := []models.Project{}
	if _, err := r.slots.getJSON(KeyProjects, &projects); err != nil {
		return nil, err
	}
	return projects, nil
}

func (r *ProjectRepo) Save(projects []models.Project) error {
	if projects == nil {
		projects = []models.Project{}
	}
	return r.slots.putJSON(KeyProjects, projects)
}

// Empty reports whether the projects slot has never been written.
func (r *ProjectRepo) Empty() (bool, error) {
	_, ok, err := r.slots.Get(KeyProjects)
	return !ok, err
}
