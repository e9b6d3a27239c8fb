package records

import (
	"fmt"
	"strings"
)

// Kind selects the key column and the label used when rendering details.
type Kind string

const (
	KindCareer  Kind = "career"
	KindCourse  Kind = "course"
	KindPathway Kind = "pathway"
)

// KeyColumn returns the CSV column holding the record name for this kind.
func (k Kind) KeyColumn() string {
	if k == KindPathway {
		// Pathway rows are keyed by the career they lead to.
		return "career"
	}
	return string(k)
}

// Label returns the title used in the rendered detail block.
func (k Kind) Label() string {
	switch k {
	case KindCareer:
		return "Career"
	case KindCourse:
		return "Course"
	case KindPathway:
		return "Pathway"
	}
	return string(k)
}

// Record is one career/course/pathway row after normalization.
type Record struct {
	Name        string
	Description string
	Skills      []string
	Subjects    []string
	Steps       string
}

// Details renders the WhatsApp-friendly bullet block for a record. Sections
// whose source field is empty are omitted entirely.
func (r Record) Details(kind Kind) string {
	var parts []string
	if r.Name != "" {
		parts = append(parts, fmt.Sprintf("*%s:* %s", kind.Label(), r.Name))
	}
	if r.Description != "" {
		parts = append(parts, fmt.Sprintf("*Summary:* %s", r.Description))
	}
	if len(r.Skills) > 0 {
		parts = append(parts, "*Skills:*\n- "+strings.Join(r.Skills, "\n- "))
	}
	if len(r.Subjects) > 0 {
		parts = append(parts, "*Subjects:*\n- "+strings.Join(r.Subjects, "\n- "))
	}
	if r.Steps != "" {
		parts = append(parts, fmt.Sprintf("*Steps:* %s", r.Steps))
	}
	if len(parts) == 0 {
		return "No details available."
	}
	return strings.Join(parts, "\n")
}
