package lookup

import (
	"career-companion-be/pkg/records"
)

// Service composes the per-kind record stores behind one query surface.
type Service struct {
	careers  *records.Store
	courses  *records.Store
	pathways *records.Store
}

func NewService(careers, courses, pathways *records.Store) *Service {
	return &Service{careers: careers, courses: courses, pathways: pathways}
}

func (s *Service) ListCareers() ([]string, error) { return s.careers.List() }
func (s *Service) ListCourses() ([]string, error) { return s.courses.List() }

func (s *Service) CareerDetails(name string) (string, bool, error) {
	return s.careers.Details(name)
}

func (s *Service) CourseDetails(name string) (string, bool, error) {
	return s.courses.Details(name)
}

func (s *Service) PathwayDetails(name string) (string, bool, error) {
	return s.pathways.Details(name)
}

// Reload refreshes every store, returning the first failure.
func (s *Service) Reload() error {
	for _, store := range []*records.Store{s.careers, s.courses, s.pathways} {
		if err := store.Reload(); err != nil {
			return err
		}
	}
	return nil
}

// ResolveFreeText tries the text as a career name, then a course name, then a
// pathway, and returns the first detail hit. Load errors on one store do not
// block the others; a "not found" result is the normal miss outcome.
func (s *Service) ResolveFreeText(text string) (string, bool) {
	for _, store := range []*records.Store{s.careers, s.courses, s.pathways} {
		if detail, ok, err := store.Details(text); err == nil && ok {
			return detail, true
		}
	}
	return "", false
}
