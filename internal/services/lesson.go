package services

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/yungbote/learnsphere-backend/internal/logger"
)

type QuizItem struct {
	Q       string   `json:"q"`
	Options []string `json:"options"`
	Answer  string   `json:"answer"`
}

type AssistedLesson struct {
	Lesson string     `json:"lesson"`
	Quiz   []QuizItem `json:"quiz"`
}

type LessonService interface {
	// GenerateAssisted returns a short lesson plus exactly three quiz
	// questions. Errors out when the AI client is missing or the call fails;
	// an unparseable reply degrades to templated fallback content instead.
	GenerateAssisted(ctx context.Context, topic, language, rank string, level int) (*AssistedLesson, error)
	// GenerateSelfStudy returns a long-form study guide and never fails:
	// any problem yields the pre-written guide for the language.
	GenerateSelfStudy(ctx context.Context, topic, language, rank string, level int) string
}

type lessonService struct {
	log *logger.Logger
	ai  OpenRouterClient
}

func NewLessonService(log *logger.Logger, ai OpenRouterClient) LessonService {
	serviceLog := log.With("service", "LessonService")
	return &lessonService{log: serviceLog, ai: ai}
}

func (ls *lessonService) GenerateAssisted(ctx context.Context, topic, language, rank string, level int) (*AssistedLesson, error) {
	if ls.ai == nil {
		return nil, ErrAIUnavailable
	}

	prompt := fmt.Sprintf(`You are an educational AI tutor. Create a short lesson about '%s' for a %s level student.

LESSON REQUIREMENTS:
- Create a brief, engaging lesson (2-3 paragraphs)
- Include exactly 3 multiple-choice questions about the lesson
- Difficulty level: %d
- Language: %s

RESPONSE FORMAT - RETURN ONLY VALID JSON, NO OTHER TEXT:
{
  "lesson": "Lesson content here...",
  "quiz": [
    {
      "q": "Question 1?",
      "options": ["Option A", "Option B", "Option C", "Option D"],
      "answer": "Option A"
    },
    {
      "q": "Question 2?",
      "options": ["Option A", "Option B", "Option C", "Option D"],
      "answer": "Option B"
    },
    {
      "q": "Question 3?",
      "options": ["Option A", "Option B", "Option C", "Option D"],
      "answer": "Option C"
    }
  ]
}

IMPORTANT: Return ONLY the JSON object, no additional text or explanations.`, topic, rank, level, language)

	reply, err := ls.ai.Complete(ctx, "You are an educational AI tutor that outputs only valid JSON.", prompt, CompletionOptions{
		Temperature:  0.7,
		JSONResponse: true,
	})
	if err != nil {
		return nil, fmt.Errorf("AI service error: %w", err)
	}

	var result AssistedLesson
	if err := json.Unmarshal([]byte(reply), &result); err != nil {
		ls.log.Warn("Assisted lesson reply was not valid JSON, serving fallback", "topic", topic, "error", err)
		return fallbackAssistedLesson(topic), nil
	}
	return &result, nil
}

func (ls *lessonService) GenerateSelfStudy(ctx context.Context, topic, language, rank string, level int) string {
	if ls.ai == nil {
		return fallbackSelfStudyLesson(topic, language)
	}

	prompt := fmt.Sprintf(`
Create an engaging, interactive self-study lesson about '%[1]s' in %[2]s.

STUDENT PROFILE:
- Level: %[3]s
- Difficulty: %[4]d
- Language: %[2]s

LESSON REQUIREMENTS:
1. Use RICH MARKDOWN formatting with headers, bullet points, tables, and emphasis
2. Include interactive elements like "Try It Yourself" sections
3. Add practical examples and real-world applications
4. Include knowledge checks and reflection questions
5. Make it visually appealing and easy to follow

FORMAT USING THIS MARKDOWN STRUCTURE:
# 🎯 %[1]s: Comprehensive Guide

## 📖 Introduction
[Engaging introduction with emojis]

## 🎓 Key Concepts
### 🔍 Main Idea 1
- **Explanation**: [Clear description]
- **Example**: [Practical example]
- **💡 Pro Tip**: [Helpful hint]

### 🔍 Main Idea 2
- **Explanation**: [Clear description]
- **Example**: [Practical example]
- **💡 Pro Tip**: [Helpful hint]

## 🛠️ Practical Application
### 🎯 Try It Yourself
[Interactive exercise or thought experiment]

### 🌍 Real-World Example
[How this is used in real life]

## 📊 Quick Reference
| Concept | Definition | Example |
|---------|------------|---------|
[Table with key concepts]

## 🤔 Knowledge Check
### ❓ Reflection Questions
1. [Thought-provoking question 1]
2. [Thought-provoking question 2]

### 🎯 Self-Assessment
- [ ] I understand the basic concepts
- [ ] I can explain it to someone else
- [ ] I can apply it in practice

## 🚀 Next Steps
[Suggestions for further learning]

Make the lesson engaging, use emojis appropriately, and include interactive elements throughout.
`, topic, language, rank, level)

	reply, err := ls.ai.Complete(ctx, "You are an educational AI tutor that creates engaging lessons.", prompt, CompletionOptions{
		Temperature: 0.8,
	})
	if err != nil {
		ls.log.Warn("Self-study lesson generation failed, serving fallback", "topic", topic, "error", err)
		return fallbackSelfStudyLesson(topic, language)
	}
	return reply
}
