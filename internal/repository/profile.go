package repository

import (
	"github.com/emilianohg/devboard/internal/models"
)

// ProfileRepo persists the single user profile under KeyProfile.
type ProfileRepo struct {
	slots *SlotStore
}

func NewProfileRepo(slots *SlotStore) *ProfileRepo {
	return &ProfileRepo{slots: slots}
}

// Load returns the saved profile, or the default profile when none exists.
func (r *ProfileRepo) Load() (models.Profile, error) {
	profile := models.DefaultProfile()
	if _, err := r.slots.getJSON(KeyProfile, &profile); err != nil {
		return models.Profile{}, err
	}
	return profile, nil
}

func (r *ProfileRepo) Save(profile models.Profile) error {
	return r.slots.putJSON(KeyProfile, profile)
}
