package services

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/yungbote/learnsphere-backend/internal/testutil"
)

func TestTriviaWithoutClientEnglish(t *testing.T) {
	svc := NewTriviaService(testutil.Logger(t), nil)

	quiz := svc.Generate(context.Background(), "english")
	if len(quiz) != 5 {
		t.Fatalf("fallback quiz has %d items, want 5", len(quiz))
	}
	if quiz[0].Q != "What is the capital of France?" || quiz[0].Answer != "Paris" {
		t.Fatalf("unexpected first fallback question: %+v", quiz[0])
	}
}

func TestTriviaWithoutClientArabic(t *testing.T) {
	svc := NewTriviaService(testutil.Logger(t), nil)

	quiz := svc.Generate(context.Background(), "arabic")
	if len(quiz) != 5 {
		t.Fatalf("fallback quiz has %d items, want 5", len(quiz))
	}
	if quiz[0].Q != "ما هي عاصمة فرنسا؟" || quiz[0].Answer != "باريس" {
		t.Fatalf("unexpected first Arabic fallback question: %+v", quiz[0])
	}
	if quiz[4].Answer != "ليوناردو دافنشي" {
		t.Fatalf("unexpected last Arabic fallback answer: %+v", quiz[4])
	}
}

func TestTriviaCallFailureFallsBack(t *testing.T) {
	ai := &fakeAI{err: errors.New("unreachable")}
	svc := NewTriviaService(testutil.Logger(t), ai)

	quiz := svc.Generate(context.Background(), "english")
	if len(quiz) != 5 || quiz[0].Answer != "Paris" {
		t.Fatalf("expected the hardcoded set on call failure, got %+v", quiz)
	}
}

func TestTriviaBadJSONFallsBack(t *testing.T) {
	ai := &fakeAI{reply: "not json"}
	svc := NewTriviaService(testutil.Logger(t), ai)

	quiz := svc.Generate(context.Background(), "english")
	if len(quiz) != 5 || quiz[0].Answer != "Paris" {
		t.Fatalf("expected the hardcoded set on parse failure, got %+v", quiz)
	}
}

func TestTriviaParsesReply(t *testing.T) {
	ai := &fakeAI{reply: `{"quiz": [
		{"q": "Q1?", "options": ["A", "B", "C", "D"], "answer": "A"},
		{"q": "Q2?", "options": ["A", "B", "C", "D"], "answer": "B"},
		{"q": "Q3?", "options": ["A", "B", "C", "D"], "answer": "C"},
		{"q": "Q4?", "options": ["A", "B", "C", "D"], "answer": "D"},
		{"q": "Q5?", "options": ["A", "B", "C", "D"], "answer": "A"}
	]}`}
	svc := NewTriviaService(testutil.Logger(t), ai)

	quiz := svc.Generate(context.Background(), "english")
	if len(quiz) != 5 || quiz[3].Answer != "D" {
		t.Fatalf("unexpected quiz: %+v", quiz)
	}
	if !ai.lastOpts.JSONResponse {
		t.Fatalf("trivia should request a JSON response")
	}
	if !strings.Contains(ai.lastUser, "english") {
		t.Fatalf("English prompt should carry the language, got %q", ai.lastUser)
	}
}

func TestTriviaArabicPromptVariant(t *testing.T) {
	ai := &fakeAI{reply: "not json"}
	svc := NewTriviaService(testutil.Logger(t), ai)

	svc.Generate(context.Background(), "arabic")
	if !strings.Contains(ai.lastUser, "أنشئ") {
		t.Fatalf("expected the Arabic prompt variant, got %q", ai.lastUser)
	}
}
