package models

import (
	"slices"
	"time"

	"github.com/emilianohg/devboard/internal/catalog"
)

type Project struct {
	ID          string           `json:"id"`
	Title       string           `json:"title"`
	Description string           `json:"description"`
	Image       string           `json:"image"`
	Category    catalog.Category `json:"category"`
	TechStack   []string         `json:"techStack"`
	Likes       int              `json:"likes"`
	Views       int              `json:"views"`
	Featured    bool             `json:"featured,omitempty"`
	Link        string           `json:"link,omitempty"`
	CreatedAt   time.Time        `json:"createdAt,omitzero"`
}

type TaskStatus string

const (
	StatusPending   TaskStatus = "pending"
	StatusCompleted TaskStatus = "completed"
	StatusRejected  TaskStatus = "rejected"
)

// Statuses lists the board columns in display order.
var Statuses = []TaskStatus{StatusPending, StatusCompleted, StatusRejected}

func (s TaskStatus) Valid() bool {
	switch s {
	case StatusPending, StatusCompleted, StatusRejected:
		return true
	}
	return false
}

type TeamMember struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Avatar string `json:"avatar"`
	Role   string `json:"role"`
}

type Comment struct {
	ID        string    `json:"id"`
	Author    string    `json:"author"` // member id
	Text      string    `json:"text"`
	Timestamp time.Time `json:"timestamp"`
}

type Task struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	AssignedTo  string     `json:"assignedTo"` // member id, may dangle
	Status      TaskStatus `json:"status"`
	DueDate     string     `json:"dueDate"` // YYYY-MM-DD
	Comments    []Comment  `json:"comments"`
}

type TeamProject struct {
	ID          string       `json:"id"`
	Title       string       `json:"title"`
	Description string       `json:"description"`
	Image       string       `json:"image"`
	Members     []TeamMember `json:"members"`
	Tasks       []Task       `json:"tasks"`
	Progress    int          `json:"progress"` // derived from Tasks, 0-100
}

// Clone returns a deep copy so callers can mutate it without touching p.
func (p TeamProject) Clone() TeamProject {
	c := p
	c.Members = slices.Clone(p.Members)
	c.Tasks = slices.Clone(p.Tasks)
	for i := range c.Tasks {
		c.Tasks[i].Comments = slices.Clone(c.Tasks[i].Comments)
	}
	return c
}

// Clone returns a copy of p with its own TechStack slice.
func (p Project) Clone() Project {
	c := p
	c.TechStack = slices.Clone(p.TechStack)
	return c
}

type Profile struct {
	Username string `json:"username"`
	Email    string `json:"email"`
}

func DefaultProfile() Profile {
	return Profile{
		Username: "User Name",
		Email:    "user@example.com",
	}
}
