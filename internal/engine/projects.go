package engine

import (
	"errors"
	"strings"

	"github.com/emilianohg/devboard/internal/catalog"
	"github.com/emilianohg/devboard/internal/models"
)

var (
	ErrTitleRequired       = errors.New("title is required")
	ErrDescriptionRequired = errors.New("description is required")
	ErrCategoryRequired    = errors.New("category is required")
)

// NewProjectInput is what the create form submits.
type NewProjectInput struct {
	Title       string
	Description string
	Category    catalog.Category
	TechStack   []string
	Link        string
	Image       string
	Featured    bool
}

func (in NewProjectInput) Validate() error {
	switch {
	case blank(in.Title):
		return ErrTitleRequired
	case blank(in.Description):
		return ErrDescriptionRequired
	case blank(string(in.Category)):
		return ErrCategoryRequired
	}
	return nil
}

// AddProject builds a project from in and prepends it to projects.
func AddProject(projects []models.Project, in NewProjectInput, ids *IDSource) ([]models.Project, *models.Project, error) {
	if err := in.Validate(); err != nil {
		return projects, nil, err
	}

	var stack []string
	for _, tag := range in.TechStack {
		tag = strings.TrimSpace(tag)
		if tag != "" && !hasTag(stack, tag) {
			stack = append(stack, tag)
		}
	}

	p := models.Project{
		ID:          ids.Next(),
		Title:       strings.TrimSpace(in.Title),
		Description: strings.TrimSpace(in.Description),
		Image:       strings.TrimSpace(in.Image),
		Category:    in.Category,
		TechStack:   stack,
		Featured:    in.Featured,
		Link:        strings.TrimSpace(in.Link),
		CreatedAt:   ids.now().UTC(),
	}
	if p.TechStack == nil {
		p.TechStack = []string{}
	}

	out := make([]models.Project, 0, len(projects)+1)
	out = append(out, p)
	out = append(out, projects...)
	return out, &p, nil
}

// DeleteProject drops the project with id and reports whether it was there.
// Callers holding that project as the current selection should clear it.
func DeleteProject(projects []models.Project, id string) ([]models.Project, bool) {
	out := make([]models.Project, 0, len(projects))
	found := false
	for _, p := range projects {
		if p.ID == id {
			found = true
			continue
		}
		out = append(out, p)
	}
	return out, found
}

// ReplaceProject swaps in p by id and reports whether a match existed.
func ReplaceProject(projects []models.Project, p models.Project) ([]models.Project, bool) {
	out := make([]models.Project, len(projects))
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

// FindProject returns the project with id.
func FindProject(projects []models.Project, id string) (models.Project, bool) {
	for _, p := range projects {
		if p.ID == id {
			return p, true
		}
	}
	return models.Project{}, false
}

// ToggleTech removes tag from stack if present, otherwise appends it.
func ToggleTech(stack []string, tag string) []string {
	out := make([]string, 0, len(stack)+1)
	removed := false
	for _, t := range stack {
		if t == tag {
			removed = true
			continue
		}
		out = append(out, t)
	}
	if !removed {
		out = append(out, tag)
	}
	return out
}

// Like and View bump the engagement counters on a copy.
func Like(p models.Project) models.Project {
	c := p.Clone()
	c.Likes++
	return c
}

func View(p models.Project) models.Project {
	c := p.Clone()
	c.Views++
	return c
}
