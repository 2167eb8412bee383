package services

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/yungbote/learnsphere-backend/internal/logger"
)

type TriviaService interface {
	// Generate returns five four-option trivia questions. It never fails:
	// provider problems yield the hardcoded set for the language.
	Generate(ctx context.Context, language string) []QuizItem
}

type triviaService struct {
	log *logger.Logger
	ai  OpenRouterClient
}

func NewTriviaService(log *logger.Logger, ai OpenRouterClient) TriviaService {
	serviceLog := log.With("service", "TriviaService")
	return &triviaService{log: serviceLog, ai: ai}
}

const triviaPromptArabic = `أنشئ 5 أسئلة trivial ممتعة وتعليمية.

أعد JSON فقط:
{
  "quiz": [
    {
      "q": "السؤال 1؟",
      "options": ["الخيار أ", "الخيار ب", "الخيار ج", "الخيار د"],
      "answer": "الخيار أ"
    }
    // 4 أسئلة أخرى
  ]
}`

func triviaPrompt(language string) string {
	if strings.EqualFold(language, "arabic") {
		return triviaPromptArabic
	}
	return fmt.Sprintf(`Generate 5 trivia questions in %s.

Return ONLY JSON:
{
  "quiz": [
    {
      "q": "Question 1?",
      "options": ["Option A", "Option B", "Option C", "Option D"],
      "answer": "Option A"
    }
    // 4 more questions
  ]
}`, language)
}

func (ts *triviaService) Generate(ctx context.Context, language string) []QuizItem {
	if ts.ai == nil {
		return fallbackTrivia(language)
	}

	reply, err := ts.ai.Complete(ctx, "You output only valid JSON.", triviaPrompt(language), CompletionOptions{
		Temperature:  0.7,
		JSONResponse: true,
	})
	if err != nil {
		ts.log.Warn("Trivia generation failed, serving fallback", "language", language, "error", err)
		return fallbackTrivia(language)
	}

	var result struct {
		Quiz []QuizItem `json:"quiz"`
	}
	if err := json.Unmarshal([]byte(reply), &result); err != nil || len(result.Quiz) == 0 {
		ts.log.Warn("Trivia reply was not valid JSON, serving fallback", "language", language, "error", err)
		return fallbackTrivia(language)
	}
	return result.Quiz
}
