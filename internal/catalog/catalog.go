package catalog

import (
	"sort"
	"strings"
)

// Category is the project category shown as a filter chip and a card badge.
type Category string

const (
	WebDevelopment Category = "Web Development"
	AppDevelopment Category = "App Development"
	AIML           Category = "AI/ML"
	DataScience    Category = "Data Science"
	DevOps         Category = "DevOps"
	Blockchain     Category = "Blockchain"
)

// AllLabel is the filter label that clears the category filter.
const AllLabel = "All Projects"

var builtinCategories = []Category{
	WebDevelopment,
	AppDevelopment,
	AIML,
	DataScience,
	DevOps,
	Blockchain,
}

var builtinTechTags = []string{
	"React", "Angular", "Vue.js", "Node.js", "Express", "Django", "Flask",
	"Laravel", "Spring Boot", "ASP.NET", "MongoDB", "PostgreSQL", "MySQL",
	"Firebase", "AWS", "Docker", "Kubernetes", "TypeScript", "JavaScript",
	"Python", "Java", "C#", "PHP", "Go", "Rust", "TensorFlow", "PyTorch",
	"React Native", "Flutter", "Swift", "Kotlin",
}

// Registry holds the categories and tech tags offered by forms and filters.
// The built-in set is always present; extras come from config.
type Registry struct {
	categories []Category
	techTags   []string
}

// NewRegistry returns a registry with the built-in categories and tech tags
// followed by any extras not already present.
func NewRegistry(extraCategories, extraTechTags []string) *Registry {
	r := &Registry{
		categories: append([]Category(nil), builtinCategories...),
		techTags:   append([]string(nil), builtinTechTags...),
	}
	for _, c := range extraCategories {
		r.AddCategory(Category(c))
	}
	for _, t := range extraTechTags {
		r.AddTechTag(t)
	}
	return r
}

// AddCategory registers a category. Blank or duplicate names are ignored.
func (r *Registry) AddCategory(c Category) bool {
	c = Category(strings.TrimSpace(string(c)))
	if c == "" || r.HasCategory(c) {
		return false
	}
	r.categories = append(r.categories, c)
	return true
}

// AddTechTag registers a tech tag. Blank or duplicate tags are ignored.
func (r *Registry) AddTechTag(tag string) bool {
	tag = strings.TrimSpace(tag)
	if tag == "" || r.HasTechTag(tag) {
		return false
	}
	r.techTags = append(r.techTags, tag)
	return true
}

func (r *Registry) Categories() []Category {
	return append([]Category(nil), r.categories...)
}

func (r *Registry) TechTags() []string {
	return append([]string(nil), r.techTags...)
}

func (r *Registry) HasCategory(c Category) bool {
	return r.categoryIndex(c) >= 0
}

func (r *Registry) HasTechTag(tag string) bool {
	for _, t := range r.techTags {
		if t == tag {
			return true
		}
	}
	return false
}

// ParseCategory resolves user input to a registered category, ignoring case.
// The "All Projects" label and the empty string resolve to the empty category.
func (r *Registry) ParseCategory(s string) (Category, bool) {
	s = strings.TrimSpace(s)
	if s == "" || strings.EqualFold(s, AllLabel) {
		return "", true
	}
	for _, c := range r.categories {
		if strings.EqualFold(string(c), s) {
			return c, true
		}
	}
	return "", false
}

// ResolveTechTag maps user input to a registered tech tag, ignoring case.
func (r *Registry) ResolveTechTag(s string) (string, bool) {
	s = strings.TrimSpace(s)
	for _, t := range r.techTags {
		if strings.EqualFold(t, s) {
			return t, true
		}
	}
	return "", false
}

// SortCategories orders categories by registry position. Unregistered
// categories go last in their original order.
func (r *Registry) SortCategories(cs []Category) {
	sort.SliceStable(cs, func(i, j int) bool {
		ii, jj := r.categoryIndex(cs[i]), r.categoryIndex(cs[j])
		if ii < 0 {
			return false
		}
		if jj < 0 {
			return true
		}
		return ii < jj
	})
}

func (r *Registry) categoryIndex(c Category) int {
	for i, existing := range r.categories {
		if existing == c {
			return i
		}
	}
	return -1
}
