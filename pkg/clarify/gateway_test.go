package clarify

import (
	"context"
	"fmt"
	"testing"

	"career-companion-be/internal/constant"
	"career-companion-be/internal/pkg/logger"
	"career-companion-be/pkg/llm"
)

type scriptedProvider struct {
	calls   int
	replies []string
	errs    []error
}

func (p *scriptedProvider) Chat(ctx context.Context, history []llm.Message, options ...llm.Option) (string, error) {
	i := p.calls
	p.calls++
	if i >= len(p.replies) {
		i = len(p.replies) - 1
	}
	return p.replies[i], p.errs[i]
}

func (p *scriptedProvider) Generate(ctx context.Context, prompt string, options ...llm.Option) (string, error) {
	return p.Chat(ctx, []llm.Message{{Role: constant.ChatRoleUser, Content: prompt}}, options...)
}

func TestAskWithoutProvider(t *testing.T) {
	gateway := NewGateway(nil, 0, 1, logger.NewNopLogger())

	answer, err := gateway.Ask(context.Background(), "anything")
	if err != nil {
		t.Fatalf("Ask() error = %v", err)
	}
	if answer != constant.MsgMissingCredential {
		t.Errorf("Ask() = %q, want missing-credential message", answer)
	}
	if gateway.Configured() {
		t.Error("Configured() = true with nil provider")
	}
}

func TestAskTrimsAnswer(t *testing.T) {
	provider := &scriptedProvider{replies: []string{"  * Do this\n"}, errs: []error{nil}}
	gateway := NewGateway(provider, 0, 0, logger.NewNopLogger())

	answer, err := gateway.Ask(context.Background(), "  what now?  ")
	if err != nil {
		t.Fatalf("Ask() error = %v", err)
	}
	if answer != "* Do this" {
		t.Errorf("Ask() = %q", answer)
	}
}

func TestAskRetriesOnceThenSucceeds(t *testing.T) {
	provider := &scriptedProvider{
		replies: []string{"", "recovered"},
		errs:    []error{fmt.Errorf("transient"), nil},
	}
	gateway := NewGateway(provider, 0, 1, logger.NewNopLogger())

	answer, err := gateway.Ask(context.Background(), "q")
	if err != nil {
		t.Fatalf("Ask() error = %v", err)
	}
	if answer != "recovered" {
		t.Errorf("Ask() = %q", answer)
	}
	if provider.calls != 2 {
		t.Errorf("provider calls = %d, want 2", provider.calls)
	}
}

func TestAskExhaustedRetriesReturnsError(t *testing.T) {
	provider := &scriptedProvider{
		replies: []string{"", ""},
		errs:    []error{fmt.Errorf("down"), fmt.Errorf("still down")},
	}
	gateway := NewGateway(provider, 0, 1, logger.NewNopLogger())

	if _, err := gateway.Ask(context.Background(), "q"); err == nil {
		t.Error("Ask() should surface the provider error after retries")
	}
	if provider.calls != 2 {
		t.Errorf("provider calls = %d, want 2", provider.calls)
	}
}
