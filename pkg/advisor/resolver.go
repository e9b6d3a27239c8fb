package advisor

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"career-companion-be/internal/constant"
	"career-companion-be/internal/pkg/logger"
	"career-companion-be/pkg/clarify"
	"career-companion-be/pkg/lookup"
	"career-companion-be/pkg/store"
)

// Reply is the structured outcome of one resolver turn. Options is only
// populated on the web surface, where the client renders clickable choices.
type Reply struct {
	Text    string
	Options []string
}

// Resolver classifies incoming text and drives the lookup service and the
// clarification gateway. It owns all session state transitions; callers load
// and persist the session around each turn.
type Resolver struct {
	lookup  *lookup.Service
	clarify *clarify.Gateway
	log     logger.ILogger
}

func NewResolver(lookup *lookup.Service, clarify *clarify.Gateway, log logger.ILogger) *Resolver {
	return &Resolver{lookup: lookup, clarify: clarify, log: log}
}

// Chat handles the stateless web surface. Keyword listings return the raw
// option names for the client to render; the next message is expected to be
// the exact chosen name, so no pending-selection state is kept.
func (r *Resolver) Chat(ctx context.Context, session *store.Session, text string) Reply {
	text = strings.TrimSpace(text)
	low := strings.ToLower(text)
	session.LastQuery = text

	if question, ok := clarifyQuestion(text); ok {
		return Reply{Text: r.askClarify(ctx, question)}
	}

	switch low {
	case "career", "careers":
		items, err := r.lookup.ListCareers()
		if err != nil {
			return Reply{Text: fmt.Sprintf("Error loading careers: %v", err)}
		}
		return Reply{Text: constant.MsgWebCareersHeader, Options: items}
	case "course", "courses":
		items, err := r.lookup.ListCourses()
		if err != nil {
			return Reply{Text: fmt.Sprintf("Error loading courses: %v", err)}
		}
		return Reply{Text: constant.MsgWebCoursesHeader, Options: items}
	}

	if name, ok := pathwayQuery(low); ok {
		return Reply{Text: r.pathwayReply(name)}
	}

	if detail, ok := r.lookup.ResolveFreeText(low); ok {
		return Reply{Text: detail}
	}
	return Reply{Text: constant.MsgWebFallback}
}

// Menu handles the numbered-menu surface. Transition priority: numeric reply
// inside a menu, clarify trigger, career keyword, course keyword, pathway
// query, free-text fallback, help.
func (r *Resolver) Menu(ctx context.Context, session *store.Session, text string) Reply {
	text = strings.TrimSpace(text)
	low := strings.ToLower(text)
	session.LastQuery = text

	if session.Mode != store.ModeNone && len(session.ShownOptions) > 0 {
		if n, err := strconv.Atoi(low); err == nil {
			return r.selectOption(session, n)
		}
	}

	// Clarify is deliberately stateless so users can ask questions mid-menu.
	if question, ok := clarifyQuestion(text); ok {
		return Reply{Text: r.askClarify(ctx, question)}
	}

	switch low {
	case "career", "careers":
		return r.showMenu(session, store.ModeAwaitingCareerSelection)
	case "course", "courses":
		return r.showMenu(session, store.ModeAwaitingCourseSelection)
	}

	if name, ok := pathwayQuery(low); ok {
		return Reply{Text: r.pathwayReply(name)}
	}

	if detail, ok := r.lookup.ResolveFreeText(low); ok {
		session.Reset()
		return Reply{Text: detail}
	}
	return Reply{Text: constant.MsgMenuHelp}
}

// selectOption resolves a 1-indexed numeric reply against the last listing.
// An out-of-range number re-prompts and leaves the menu standing.
func (r *Resolver) selectOption(session *store.Session, n int) Reply {
	if n < 1 || n > len(session.ShownOptions) {
		return Reply{Text: constant.MsgInvalidSelection}
	}
	name := session.ShownOptions[n-1]

	var detail string
	var found bool
	var err error
	switch session.Mode {
	case store.ModeAwaitingCareerSelection:
		detail, found, err = r.lookup.CareerDetails(name)
	case store.ModeAwaitingCourseSelection:
		detail, found, err = r.lookup.CourseDetails(name)
	}
	if err != nil {
		r.log.Error("advisor", "detail lookup failed", map[string]interface{}{
			"name":  name,
			"error": err.Error(),
		})
		session.Reset()
		return Reply{Text: fmt.Sprintf("Error loading details for %s: %v", name, err)}
	}

	session.Reset()
	if !found {
		// The listing and the store disagree, likely a reload in between.
		return Reply{Text: fmt.Sprintf("Sorry, I no longer have details for %s.", name)}
	}
	return Reply{Text: detail}
}

// showMenu lists names in a numbered block and commits the pending-selection
// state. A load error leaves the session untouched.
func (r *Resolver) showMenu(session *store.Session, mode string) Reply {
	var items []string
	var err error
	var header string
	switch mode {
	case store.ModeAwaitingCareerSelection:
		header = constant.MsgMenuCareersHeader
		items, err = r.lookup.ListCareers()
		if err != nil {
			return Reply{Text: fmt.Sprintf("Error loading careers: %v", err)}
		}
	case store.ModeAwaitingCourseSelection:
		header = constant.MsgMenuCoursesHeader
		items, err = r.lookup.ListCourses()
		if err != nil {
			return Reply{Text: fmt.Sprintf("Error loading courses: %v", err)}
		}
	}

	if len(items) > constant.MenuOptionLimit {
		items = items[:constant.MenuOptionLimit]
	}

	var b strings.Builder
	b.WriteString(header)
	for i, name := range items {
		b.WriteString(fmt.Sprintf("\n%d. %s", i+1, name))
	}
	b.WriteString("\n\n" + constant.MsgMenuFooter)

	session.Mode = mode
	session.ShownOptions = items
	return Reply{Text: b.String()}
}

func (r *Resolver) pathwayReply(name string) string {
	if name == "" {
		return "Tell me which career, e.g. 'pathway for doctor'."
	}
	detail, found, err := r.lookup.PathwayDetails(name)
	if err != nil {
		return fmt.Sprintf("Error loading pathways: %v", err)
	}
	if !found {
		return "Pathway not found."
	}
	return detail
}

func (r *Resolver) askClarify(ctx context.Context, question string) string {
	answer, err := r.clarify.Ask(ctx, question)
	if err != nil {
		return constant.MsgClarifyFailed
	}
	return answer
}

// clarifyQuestion extracts the question from a clarify-triggering message:
// a "clarify:" prefix (case-insensitive) or a trailing question mark.
func clarifyQuestion(text string) (string, bool) {
	low := strings.ToLower(text)
	if strings.HasPrefix(low, constant.ClarifyPrefix) {
		return strings.TrimSpace(text[len(constant.ClarifyPrefix):]), true
	}
	if strings.HasSuffix(text, "?") {
		return text, true
	}
	return "", false
}

// pathwayQuery matches "pathway <career>" style messages, tolerating the
// fillers the original data invites ("pathway for doctor", "pathways: doctor").
func pathwayQuery(low string) (string, bool) {
	if !strings.HasPrefix(low, "pathway") {
		return "", false
	}
	rest := strings.TrimPrefix(low, "pathways")
	rest = strings.TrimPrefix(rest, "pathway")
	rest = strings.TrimLeft(rest, " :-")
	rest = strings.TrimSpace(strings.TrimPrefix(rest, "for "))
	return rest, true
}
