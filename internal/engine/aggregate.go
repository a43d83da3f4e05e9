package engine

import (
	"github.com/emilianohg/devboard/internal/catalog"
	"github.com/emilianohg/devboard/internal/models"
)

type CategoryCount struct {
	Category catalog.Category
	Count    int
}

// Metrics is the dashboard summary of a project list.
type Metrics struct {
	TotalProjects int
	TotalViews    int
	TotalLikes    int
	Featured      []models.Project
	MostPopular   *models.Project // nil for an empty list
	Categories    []CategoryCount // first-seen order
}

// Summarize computes the dashboard metrics for projects.
func Summarize(projects []models.Project) Metrics {
	m := Metrics{TotalProjects: len(projects)}
	index := make(map[catalog.Category]int)

	for i, p := range projects {
		m.TotalViews += p.Views
		m.TotalLikes += p.Likes

		if p.Featured {
			m.Featured = append(m.Featured, p.Clone())
		}

		if m.MostPopular == nil || p.Likes > m.MostPopular.Likes {
			top := projects[i].Clone()
			m.MostPopular = &top
		}

		if n, ok := index[p.Category]; ok {
			m.Categories[n].Count++
		} else {
			index[p.Category] = len(m.Categories)
			m.Categories = append(m.Categories, CategoryCount{Category: p.Category, Count: 1})
		}
	}
	return m
}

// Ordered returns the category histogram in registry order.
func (m Metrics) Ordered(reg *catalog.Registry) []CategoryCount {
	cats := make([]catalog.Category, len(m.Categories))
	counts := make(map[catalog.Category]int, len(m.Categories))
	for i, c := range m.Categories {
		cats[i] = c.Category
		counts[c.Category] = c.Count
	}
	reg.SortCategories(cats)

	out := make([]CategoryCount, len(cats))
	for i, c := range cats {
		out[i] = CategoryCount{Category: c, Count: counts[c]}
	}
	return out
}
