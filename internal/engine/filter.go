// Package engine holds the pure transformations behind every project view:
// filtering and sorting, dashboard aggregates, the team task board and the
// project list mutations. Functions take snapshots and return new values;
// nothing here keeps a reference to its input.
package engine

import (
	"sort"
	"strconv"
	"strings"

	"github.com/emilianohg/devboard/internal/catalog"
	"github.com/emilianohg/devboard/internal/models"
)

type SortOption string

const (
	SortLatest     SortOption = "latest"
	SortMostLiked  SortOption = "most-liked"
	SortMostViewed SortOption = "most-viewed"
)

// SortOptions lists the options in the order the sort picker cycles them.
var SortOptions = []SortOption{SortLatest, SortMostLiked, SortMostViewed}

// ParseSortOption maps s to a known option, falling back to SortLatest.
func ParseSortOption(s string) SortOption {
	switch SortOption(strings.ToLower(strings.TrimSpace(s))) {
	case SortMostLiked:
		return SortMostLiked
	case SortMostViewed:
		return SortMostViewed
	default:
		return SortLatest
	}
}

func (o SortOption) Label() string {
	switch o {
	case SortMostLiked:
		return "Most liked"
	case SortMostViewed:
		return "Most viewed"
	default:
		return "Latest"
	}
}

// Filter is the set of list controls. Zero values match everything.
type Filter struct {
	Search   string
	Category catalog.Category
	Tech     string
	Sort     SortOption
}

// Matches reports whether p satisfies the search, category and tech
// predicates of f.
func Matches(p models.Project, f Filter) bool {
	return matchesSearch(p, f.Search) &&
		(f.Category == "" || p.Category == f.Category) &&
		(f.Tech == "" || hasTag(p.TechStack, f.Tech))
}

// Apply returns the projects matching f, ordered by f.Sort. The input slice is
// left untouched.
func Apply(projects []models.Project, f Filter) []models.Project {
	out := make([]models.Project, 0, len(projects))
	for _, p := range projects {
		if Matches(p, f) {
			out = append(out, p.Clone())
		}
	}

	switch ParseSortOption(string(f.Sort)) {
	case SortMostLiked:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Likes > out[j].Likes })
	case SortMostViewed:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Views > out[j].Views })
	default:
		sort.SliceStable(out, func(i, j int) bool { return newerID(out[i].ID, out[j].ID) })
	}
	return out
}

// TechTags returns the distinct tech tags used across projects, sorted.
func TechTags(projects []models.Project) []string {
	seen := make(map[string]struct{})
	var tags []string
	for _, p := range projects {
		for _, t := range p.TechStack {
			if _, ok := seen[t]; ok {
				continue
			}
			seen[t] = struct{}{}
			tags = append(tags, t)
		}
	}
	sort.Strings(tags)
	return tags
}

func matchesSearch(p models.Project, search string) bool {
	if search == "" {
		return true
	}
	q := strings.ToLower(search)
	return strings.Contains(strings.ToLower(p.Title), q) ||
		strings.Contains(strings.ToLower(p.Description), q)
}

func hasTag(stack []string, tag string) bool {
	for _, t := range stack {
		if t == tag {
			return true
		}
	}
	return false
}

// newerID orders ids by descending integer value. Ids that are not integers
// sort after all numeric ids and compare equal to each other.
func newerID(a, b string) bool {
	na, errA := strconv.ParseInt(a, 10, 64)
	nb, errB := strconv.ParseInt(b, 10, 64)
	switch {
	case errA != nil:
		return false
	case errB != nil:
		return true
	default:
		return na > nb
	}
}
