package service

import (
	"context"
	"strings"

	"career-companion-be/internal/dto"
	"career-companion-be/internal/pkg/logger"
	"career-companion-be/internal/repository/memory"
	"career-companion-be/pkg/advisor"
	"career-companion-be/pkg/store"

	"github.com/google/uuid"
)

// IAdvisorService is the application layer over the conversation resolver.
// It owns session identity and persistence around each turn.
type IAdvisorService interface {
	// Chat serves the web widget: one stateless turn per request.
	Chat(ctx context.Context, userID, message string) *dto.ChatResponse

	// Menu serves the messaging webhook: one stateful numbered-menu turn,
	// keyed by the sender's phone number.
	Menu(ctx context.Context, from, body string) string
}

type advisorService struct {
	resolver    *advisor.Resolver
	sessionRepo *memory.SessionRepository
	log         logger.ILogger
}

func NewAdvisorService(resolver *advisor.Resolver, sessionRepo *memory.SessionRepository, log logger.ILogger) IAdvisorService {
	return &advisorService{resolver: resolver, sessionRepo: sessionRepo, log: log}
}

func (s *advisorService) Chat(ctx context.Context, userID, message string) *dto.ChatResponse {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		userID = uuid.New().String()
	}

	var reply advisor.Reply
	s.sessionRepo.Update(userID, func(session *store.Session) {
		reply = s.resolver.Chat(ctx, session, message)
	})

	s.log.Info("advisor", "web chat turn", map[string]interface{}{
		"user_id": userID,
		"options": len(reply.Options),
	})

	return &dto.ChatResponse{Response: reply.Text, Options: reply.Options}
}

func (s *advisorService) Menu(ctx context.Context, from, body string) string {
	from = strings.TrimSpace(from)
	if from == "" {
		from = "anonymous"
	}

	var reply advisor.Reply
	var mode string
	s.sessionRepo.Update(from, func(session *store.Session) {
		reply = s.resolver.Menu(ctx, session, body)
		mode = session.Mode
	})

	s.log.Info("advisor", "webhook turn", map[string]interface{}{
		"from": from,
		"mode": mode,
	})

	return reply.Text
}
