package store

// Session is the per-user conversation state held in memory. The web surface
// only reads LastQuery; Mode and ShownOptions drive the numbered-menu surface.
type Session struct {
	ID           string   `json:"id"` // web user id or webhook phone number
	Mode         string   `json:"mode"`
	ShownOptions []string `json:"shown_options"` // names listed in the last menu
	LastQuery    string   `json:"last_query"`
}

const (
	ModeNone                    = "NONE"
	ModeAwaitingCareerSelection = "AWAITING_CAREER_SELECTION"
	ModeAwaitingCourseSelection = "AWAITING_COURSE_SELECTION"
)

// Reset clears any pending selection.
func (s *Session) Reset() {
	s.Mode = ModeNone
	s.ShownOptions = nil
}
