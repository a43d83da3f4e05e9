// Package seed provides the sample projects loaded on first run or by
// `devboard seed`.
package seed

import (
	"time"

	"github.com/emilianohg/devboard/internal/catalog"
	"github.com/emilianohg/devboard/internal/engine"
	"github.com/emilianohg/devboard/internal/models"
)

func Projects() []models.Project {
	return []models.Project{
		{
			ID:          "1",
			Title:       "E-Commerce Platform",
			Description: "A full-stack e-commerce platform with admin panel",
			Image:       "https://images.unsplash.com/photo-1593508512255-86ab42a8e620",
			Category:    catalog.WebDevelopment,
			TechStack:   []string{"React", "Node.js", "MongoDB"},
			Likes:       47,
			Views:       320,
			Featured:    true,
			Link:        "https://example.com/project1",
		},
		{
			ID:          "2",
			Title:       "AI Image Generator",
			Description: "Generate images using AI and machine learning",
			Image:       "https://images.unsplash.com/photo-1677442136019-21780ecad995",
			Category:    catalog.AIML,
			TechStack:   []string{"Python", "TensorFlow", "React"},
			Likes:       89,
			Views:       423,
		},
		{
			ID:          "3",
			Title:       "Food Delivery App",
			Description: "Mobile app for food ordering and delivery",
			Image:       "https://images.unsplash.com/photo-1512941937669-90a1b58e7e9c",
			Category:    catalog.AppDevelopment,
			TechStack:   []string{"React Native", "Firebase"},
			Likes:       36,
			Views:       215,
		},
		{
			ID:          "4",
			Title:       "Data Visualization Dashboard",
			Description: "Interactive dashboard for data analysis",
			Image:       "https://images.unsplash.com/photo-1551288049-bebda4e38f71",
			Category:    catalog.DataScience,
			TechStack:   []string{"D3.js", "React", "Node.js"},
			Likes:       28,
			Views:       175,
		},
		{
			ID:          "5",
			Title:       "Smart Home IoT System",
			Description: "Control your home with voice commands and automation",
			Image:       "https://images.unsplash.com/photo-1558346490-a72e53ae2d4f",
			Category:    catalog.DevOps,
			TechStack:   []string{"Python", "Arduino", "MQTT"},
			Likes:       52,
			Views:       286,
		},
		{
			ID:          "6",
			Title:       "Cryptocurrency Tracker",
			Description: "Track and analyze cryptocurrency prices",
			Image:       "https://images.unsplash.com/photo-1621761191319-c6fb62004040",
			Category:    catalog.Blockchain,
			TechStack:   []string{"Vue.js", "Node.js", "Express"},
			Likes:       47,
			Views:       198,
			Featured:    true,
		},
	}
}

func TeamProjects() []models.TeamProject {
	at := func(s string) time.Time {
		t, _ := time.Parse("2006-01-02T15:04:05", s)
		return t
	}

	projects := []models.TeamProject{
		{
			ID:          "1",
			Title:       "Marketing Website Redesign",
			Description: "Collaborative project to redesign the company marketing website",
			Image:       "https://images.unsplash.com/photo-1552664730-d307ca884978",
			Members: []models.TeamMember{
				{ID: "1", Name: "Alex Johnson", Avatar: "A", Role: "Project Lead"},
				{ID: "2", Name: "Taylor Swift", Avatar: "T", Role: "Designer"},
				{ID: "3", Name: "Sam Lee", Avatar: "S", Role: "Developer"},
			},
			Tasks: []models.Task{
				{
					ID:          "1",
					Title:       "Create wireframes",
					Description: "Design initial wireframes for homepage and product pages",
					AssignedTo:  "2",
					Status:      models.StatusCompleted,
					DueDate:     "2025-04-02",
					Comments: []models.Comment{
						{ID: "1", Author: "1", Text: "Looking good! Can you add more details to the hero section?", Timestamp: at("2025-03-30T14:30:00")},
					},
				},
				{
					ID:          "2",
					Title:       "Implement responsive design",
					Description: "Make sure the website works well on all devices",
					AssignedTo:  "3",
					Status:      models.StatusPending,
					DueDate:     "2025-04-10",
					Comments:    []models.Comment{},
				},
			},
		},
		{
			ID:          "2",
			Title:       "E-commerce Platform",
			Description: "Team project to build an e-commerce platform with inventory management",
			Image:       "https://images.unsplash.com/photo-1661956602868-6ae368943878",
			Members: []models.TeamMember{
				{ID: "1", Name: "Alex Johnson", Avatar: "A", Role: "Backend Developer"},
				{ID: "4", Name: "Jamie Davis", Avatar: "J", Role: "Frontend Developer"},
				{ID: "5", Name: "Morgan Chen", Avatar: "M", Role: "UX Designer"},
			},
			Tasks: []models.Task{
				{
					ID:          "3",
					Title:       "Set up payment gateway",
					Description: "Integrate Stripe for payment processing",
					AssignedTo:  "1",
					Status:      models.StatusPending,
					DueDate:     "2025-04-15",
					Comments:    []models.Comment{},
				},
				{
					ID:          "4",
					Title:       "Design checkout flow",
					Description: "Create a seamless checkout experience",
					AssignedTo:  "5",
					Status:      models.StatusRejected,
					DueDate:     "2025-04-05",
					Comments: []models.Comment{
						{ID: "2", Author: "4", Text: "This needs more work, the user flow is confusing", Timestamp: at("2025-04-01T09:15:00")},
					},
				},
			},
		},
	}

	for i := range projects {
		projects[i].Progress = engine.Progress(projects[i].Tasks)
	}
	return projects
}

// ProjectStore and TeamStore are the slices of the repositories seeding needs.
type ProjectStore interface {
	Empty() (bool, error)
	Save([]models.Project) error
}

type TeamStore interface {
	Empty() (bool, error)
	Save([]models.TeamProject) error
}

type Result struct {
	Projects     int
	TeamProjects int
}

// Apply writes the sample data into empty slots. With force, existing data
// is replaced.
func Apply(projects ProjectStore, teams TeamStore, force bool) (*Result, error) {
	result := &Result{}

	empty, err := projects.Empty()
	if err != nil {
		return nil, err
	}
	if empty || force {
		list := Projects()
		if err := projects.Save(list); err != nil {
			return nil, err
		}
		result.Projects = len(list)
	}

	empty, err = teams.Empty()
	if err != nil {
		return nil, err
	}
	if empty || force {
		list := TeamProjects()
		if err := teams.Save(list); err != nil {
			return nil, err
		}
		result.TeamProjects = len(list)
	}

	return result, nil
}
