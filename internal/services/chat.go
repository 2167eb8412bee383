package services

import (
	"context"
	"fmt"

	"github.com/yungbote/learnsphere-backend/internal/logger"
)

type ChatTurn struct {
	Author  string `json:"author"`
	Content string `json:"content"`
}

type ChatService interface {
	// Reply answers the latest student message with the lesson as context.
	// It never surfaces provider errors; failures read as a fixed apology.
	Reply(ctx context.Context, lessonContent string, messages []ChatTurn, language string) string
}

type chatService struct {
	log *logger.Logger
	ai  OpenRouterClient
}

func NewChatService(log *logger.Logger, ai OpenRouterClient) ChatService {
	serviceLog := log.With("service", "ChatService")
	return &chatService{log: serviceLog, ai: ai}
}

func (cs *chatService) Reply(ctx context.Context, lessonContent string, messages []ChatTurn, language string) string {
	if cs.ai == nil {
		return chatUnavailableReply
	}

	lastMsg := "Hello"
	if len(messages) > 0 {
		lastMsg = messages[len(messages)-1].Content
	}

	lessonContext := lessonContent
	if lessonContext == "" {
		lessonContext = "No specific lesson context provided."
	}

	prompt := fmt.Sprintf(`
You are a friendly and helpful tutor. Use this lesson for context:
%s

Student's message: "%s"
Language: %s

Provide a helpful, educational response. Keep it clear and engaging.
`, lessonContext, lastMsg, language)

	reply, err := cs.ai.Complete(ctx, "You are a friendly educational tutor.", prompt, CompletionOptions{
		Temperature: 0.7,
	})
	if err != nil {
		cs.log.Warn("Chat reply failed, serving apology", "error", err)
		return chatErrorReply
	}
	return reply
}
