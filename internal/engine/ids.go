package engine

import (
	"strconv"
	"sync"
	"time"

	"github.com/emilianohg/devboard/internal/models"
)

// IDSource hands out project ids as decimal Unix-millisecond stamps. Ids are
// strictly increasing: when the clock has not moved past the last id, the
// next id is last+1.
type IDSource struct {
	mu   sync.Mutex
	now  func() time.Time
	last int64
}

func NewIDSource(now func() time.Time) *IDSource {
	if now == nil {
		now = time.Now
	}
	return &IDSource{now: now}
}

// Observe raises the floor to the largest numeric id in projects so new ids
// sort as latest against loaded data.
func (s *IDSource) Observe(projects []models.Project) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, p := range projects {
		if n, err := strconv.ParseInt(p.ID, 10, 64); err == nil && n > s.last {
			s.last = n
		}
	}
}

func (s *IDSource) Next() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	n := s.now().UnixMilli()
	if n <= s.last {
		n = s.last + 1
	}
	s.last = n
	return strconv.FormatInt(n, 10)
}
