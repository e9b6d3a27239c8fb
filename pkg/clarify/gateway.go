package clarify

import (
	"context"
	"strings"
	"time"

	"career-companion-be/internal/constant"
	"career-companion-be/internal/pkg/logger"
	"career-companion-be/pkg/llm"
)

// Gateway forwards free-text questions to the configured LLM provider. A nil
// provider (no credential) short-circuits to a fixed instructional message.
type Gateway struct {
	provider llm.Provider
	timeout  time.Duration
	retries  int
	log      logger.ILogger
}

func NewGateway(provider llm.Provider, timeout time.Duration, retries int, log logger.ILogger) *Gateway {
	if timeout <= 0 {
		timeout = 20 * time.Second
	}
	if retries < 0 {
		retries = 0
	}
	return &Gateway{provider: provider, timeout: timeout, retries: retries, log: log}
}

// Configured reports whether an outbound call can be attempted at all.
func (g *Gateway) Configured() bool {
	return g.provider != nil
}

// Ask sends one question to the provider and returns the trimmed answer.
// Transport failures are retried once within the same deadline, then surfaced
// to the caller, which owns the user-visible wording.
func (g *Gateway) Ask(ctx context.Context, question string) (string, error) {
	if g.provider == nil {
		return constant.MsgMissingCredential, nil
	}

	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	history := []llm.Message{
		{Role: constant.ChatRoleSystem, Content: constant.ClarifySystemPrompt},
		{Role: constant.ChatRoleUser, Content: strings.TrimSpace(question)},
	}

	var answer string
	var err error
	for attempt := 0; attempt <= g.retries; attempt++ {
		answer, err = g.provider.Chat(ctx, history,
			llm.WithTemperature(constant.ClarifyTemperature),
			llm.WithMaxTokens(constant.ClarifyMaxTokens),
		)
		if err == nil {
			return strings.TrimSpace(answer), nil
		}
		if ctx.Err() != nil {
			break
		}
		g.log.Warn("clarify", "retrying after provider error", map[string]interface{}{
			"attempt": attempt + 1,
			"error":   err.Error(),
		})
	}

	g.log.Error("clarify", "provider call failed", map[string]interface{}{"error": err.Error()})
	return "", err
}
