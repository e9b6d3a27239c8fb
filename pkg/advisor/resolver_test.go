package advisor

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"career-companion-be/internal/constant"
	"career-companion-be/internal/pkg/logger"
	"career-companion-be/pkg/clarify"
	"career-companion-be/pkg/llm"
	"career-companion-be/pkg/lookup"
	"career-companion-be/pkg/records"
	"career-companion-be/pkg/store"
)

type fakeProvider struct {
	calls    int
	lastUser string
	reply    string
	err      error
}

func (f *fakeProvider) Chat(ctx context.Context, history []llm.Message, options ...llm.Option) (string, error) {
	f.calls++
	for _, m := range history {
		if m.Role == constant.ChatRoleUser {
			f.lastUser = m.Content
		}
	}
	return f.reply, f.err
}

func (f *fakeProvider) Generate(ctx context.Context, prompt string, options ...llm.Option) (string, error) {
	return f.Chat(ctx, []llm.Message{{Role: constant.ChatRoleUser, Content: prompt}}, options...)
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func newTestLookup(t *testing.T) *lookup.Service {
	t.Helper()
	dir := t.TempDir()
	careers := writeFile(t, dir, "careers.csv",
		"career,description,skills\nDoctor,Treats patients,Biology;Empathy\nEngineer,Builds things,Math\nPilot,Flies planes,Focus\n")
	courses := writeFile(t, dir, "courses.csv",
		"course,description\nMBBS,Medicine degree\nBTech,Engineering degree\n")
	pathways := writeFile(t, dir, "pathways.csv",
		"career,steps\nDoctor,MBBS then residency\n")
	return lookup.NewService(
		records.NewStore(records.KindCareer, careers),
		records.NewStore(records.KindCourse, courses),
		records.NewStore(records.KindPathway, pathways),
	)
}

func newTestResolver(t *testing.T, provider llm.Provider) *Resolver {
	t.Helper()
	gateway := clarify.NewGateway(provider, 0, 1, logger.NewNopLogger())
	return NewResolver(newTestLookup(t), gateway, logger.NewNopLogger())
}

func newSession() *store.Session {
	return &store.Session{ID: "+911234567890", Mode: store.ModeNone}
}

func TestMenuCareerRoundTrip(t *testing.T) {
	resolver := newTestResolver(t, &fakeProvider{})
	ctx := context.Background()

	session := newSession()
	reply := resolver.Menu(ctx, session, "career")
	if session.Mode != store.ModeAwaitingCareerSelection {
		t.Fatalf("Mode after keyword = %q", session.Mode)
	}
	if len(session.ShownOptions) != 3 {
		t.Fatalf("ShownOptions = %v", session.ShownOptions)
	}
	if !strings.Contains(reply.Text, "1. Doctor") || !strings.Contains(reply.Text, "3. Pilot") {
		t.Fatalf("menu text = %q", reply.Text)
	}

	// Selecting option k always returns details for ShownOptions[k-1].
	for k := 1; k <= len(session.ShownOptions); k++ {
		s := newSession()
		resolver.Menu(ctx, s, "careers")
		want := s.ShownOptions[k-1]
		got := resolver.Menu(ctx, s, fmt.Sprintf("%d", k))
		if !strings.Contains(got.Text, "*Career:* "+want) {
			t.Errorf("selection %d = %q, want details for %q", k, got.Text, want)
		}
		if s.Mode != store.ModeNone || len(s.ShownOptions) != 0 {
			t.Errorf("session not reset after selection %d: mode=%q options=%v", k, s.Mode, s.ShownOptions)
		}
	}
}

func TestMenuOutOfRangeSelection(t *testing.T) {
	resolver := newTestResolver(t, &fakeProvider{})
	ctx := context.Background()

	for _, input := range []string{"0", "4", "99", "-1"} {
		session := newSession()
		resolver.Menu(ctx, session, "career")
		shown := append([]string(nil), session.ShownOptions...)

		reply := resolver.Menu(ctx, session, input)
		if reply.Text != constant.MsgInvalidSelection {
			t.Errorf("Menu(%q) = %q, want re-prompt", input, reply.Text)
		}
		if session.Mode != store.ModeAwaitingCareerSelection {
			t.Errorf("Menu(%q) changed mode to %q", input, session.Mode)
		}
		if len(session.ShownOptions) != len(shown) {
			t.Errorf("Menu(%q) changed shown options", input)
		}
	}
}

func TestMenuCourseSelection(t *testing.T) {
	resolver := newTestResolver(t, &fakeProvider{})
	ctx := context.Background()

	session := newSession()
	resolver.Menu(ctx, session, "courses")
	if session.Mode != store.ModeAwaitingCourseSelection {
		t.Fatalf("Mode = %q", session.Mode)
	}
	reply := resolver.Menu(ctx, session, "2")
	if !strings.Contains(reply.Text, "*Course:* BTech") {
		t.Errorf("course selection = %q", reply.Text)
	}
}

func TestClarifyBypassesRecordStore(t *testing.T) {
	provider := &fakeProvider{reply: "* Data scientists analyze data"}
	dir := t.TempDir()
	// Every store points at a missing file; any record access would error.
	missing := lookup.NewService(
		records.NewStore(records.KindCareer, filepath.Join(dir, "none1.csv")),
		records.NewStore(records.KindCourse, filepath.Join(dir, "none2.csv")),
		records.NewStore(records.KindPathway, filepath.Join(dir, "none3.csv")),
	)
	gateway := clarify.NewGateway(provider, 0, 0, logger.NewNopLogger())
	resolver := NewResolver(missing, gateway, logger.NewNopLogger())
	ctx := context.Background()

	for _, mode := range []string{store.ModeNone, store.ModeAwaitingCareerSelection} {
		session := newSession()
		session.Mode = mode
		reply := resolver.Menu(ctx, session, "clarify: what is a data scientist?")
		if reply.Text != provider.reply {
			t.Errorf("clarify reply = %q", reply.Text)
		}
	}
	if provider.calls != 2 {
		t.Errorf("provider calls = %d, want 2", provider.calls)
	}
	if provider.lastUser != "what is a data scientist?" {
		t.Errorf("question forwarded = %q", provider.lastUser)
	}
}

func TestQuestionMarkTriggersClarify(t *testing.T) {
	provider := &fakeProvider{reply: "answer"}
	resolver := newTestResolver(t, provider)

	reply := resolver.Chat(context.Background(), newSession(), "should I become a pilot?")
	if reply.Text != "answer" {
		t.Errorf("Chat = %q", reply.Text)
	}
	if provider.lastUser != "should I become a pilot?" {
		t.Errorf("question forwarded = %q", provider.lastUser)
	}
}

func TestClarifyWithoutCredential(t *testing.T) {
	resolver := newTestResolver(t, nil)

	session := newSession()
	reply := resolver.Menu(context.Background(), session, "clarify: help me choose a course")
	if reply.Text != constant.MsgMissingCredential {
		t.Errorf("reply = %q, want missing-credential message", reply.Text)
	}
	if session.Mode != store.ModeNone {
		t.Errorf("mode changed to %q", session.Mode)
	}
}

func TestClarifyFailureSurfacesFriendlyMessage(t *testing.T) {
	provider := &fakeProvider{err: fmt.Errorf("upstream down")}
	resolver := newTestResolver(t, provider)

	reply := resolver.Menu(context.Background(), newSession(), "clarify: anything")
	if reply.Text != constant.MsgClarifyFailed {
		t.Errorf("reply = %q", reply.Text)
	}
}

func TestMenuLoadErrorDoesNotCommitState(t *testing.T) {
	dir := t.TempDir()
	// Header-only careers source: zero usable rows.
	careers := writeFile(t, dir, "careers.csv", "career,description\n")
	courses := writeFile(t, dir, "courses.csv", "course,description\nMBBS,Medicine degree\n")
	pathways := writeFile(t, dir, "pathways.csv", "career,steps\nDoctor,Steps\n")
	svc := lookup.NewService(
		records.NewStore(records.KindCareer, careers),
		records.NewStore(records.KindCourse, courses),
		records.NewStore(records.KindPathway, pathways),
	)
	resolver := NewResolver(svc, clarify.NewGateway(nil, 0, 0, logger.NewNopLogger()), logger.NewNopLogger())

	session := newSession()
	reply := resolver.Menu(context.Background(), session, "career")
	if !strings.Contains(reply.Text, "Error loading careers") {
		t.Errorf("reply = %q", reply.Text)
	}
	if session.Mode != store.ModeNone || len(session.ShownOptions) != 0 {
		t.Errorf("state committed on load error: mode=%q options=%v", session.Mode, session.ShownOptions)
	}
}

func TestChatKeywordReturnsRawOptions(t *testing.T) {
	resolver := newTestResolver(t, &fakeProvider{})

	reply := resolver.Chat(context.Background(), newSession(), "Careers")
	if reply.Text != constant.MsgWebCareersHeader {
		t.Errorf("text = %q", reply.Text)
	}
	want := []string{"Doctor", "Engineer", "Pilot"}
	if len(reply.Options) != len(want) {
		t.Fatalf("options = %v", reply.Options)
	}
	for i := range want {
		if reply.Options[i] != want[i] {
			t.Errorf("options[%d] = %q, want %q", i, reply.Options[i], want[i])
		}
	}
}

func TestChatExactNameLookup(t *testing.T) {
	resolver := newTestResolver(t, &fakeProvider{})

	reply := resolver.Chat(context.Background(), newSession(), "  DOCTOR ")
	for _, line := range []string{"*Career:* Doctor", "*Summary:* Treats patients", "- Biology", "- Empathy"} {
		if !strings.Contains(reply.Text, line) {
			t.Errorf("detail missing %q in %q", line, reply.Text)
		}
	}
	if strings.Contains(reply.Text, "*Subjects:*") {
		t.Errorf("unexpected Subjects section in %q", reply.Text)
	}
}

func TestChatFallbackHelp(t *testing.T) {
	resolver := newTestResolver(t, &fakeProvider{})

	reply := resolver.Chat(context.Background(), newSession(), "banana")
	if reply.Text != constant.MsgWebFallback {
		t.Errorf("fallback = %q", reply.Text)
	}
}

func TestPathwayQueries(t *testing.T) {
	resolver := newTestResolver(t, &fakeProvider{})
	ctx := context.Background()

	tests := []struct {
		input string
		want  string
	}{
		{input: "pathway for doctor", want: "*Steps:* MBBS then residency"},
		{input: "pathway doctor", want: "*Steps:* MBBS then residency"},
		{input: "pathway for astronaut", want: "Pathway not found."},
	}
	for _, tt := range tests {
		reply := resolver.Menu(ctx, newSession(), tt.input)
		if !strings.Contains(reply.Text, tt.want) {
			t.Errorf("Menu(%q) = %q, want %q", tt.input, reply.Text, tt.want)
		}
	}
}

func TestMenuHelpFallback(t *testing.T) {
	resolver := newTestResolver(t, &fakeProvider{})

	reply := resolver.Menu(context.Background(), newSession(), "hello there")
	if reply.Text != constant.MsgMenuHelp {
		t.Errorf("help = %q", reply.Text)
	}
}

func TestNumericOutsideMenuFallsThrough(t *testing.T) {
	resolver := newTestResolver(t, &fakeProvider{})

	// "1" with no menu shown is not a selection; it lands on help.
	reply := resolver.Menu(context.Background(), newSession(), "1")
	if reply.Text != constant.MsgMenuHelp {
		t.Errorf("Menu(1) without menu = %q", reply.Text)
	}
}
