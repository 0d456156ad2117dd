package services

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/sashabaranov/go-openai"
)

// SuggestionService turns free text (meeting notes, a brief) into task
// drafts using the OpenAI API.
type SuggestionService struct {
	client *openai.Client
}

// TaskDraft is a suggested task the caller may choose to create.
type TaskDraft struct {
	Name        string     `json:"name"`
	Description string     `json:"description"`
	Deadline    *time.Time `json:"deadline"`
}

// NewSuggestionService creates a new SuggestionService.
func NewSuggestionService(apiKey string) *SuggestionService {
	return &SuggestionService{
		client: openai.NewClient(apiKey),
	}
}

// DraftTasksFromText extracts actionable tasks from the given text.
func (s *SuggestionService) DraftTasksFromText(ctx context.Context, text string) ([]TaskDraft, error) {
	if s.client == nil {
		return nil, fmt.Errorf("OpenAI client not initialized")
	}

	currentTime := time.Now().Format("2006-01-02 15:04:05")
	prompt := fmt.Sprintf(`You are a task extraction assistant. Extract concrete, actionable tasks from the text below.

Current time: %s

Text:
%s

Return a JSON array of the extracted tasks in this exact shape:
[
  {
    "name": "short task name",
    "description": "detailed description of the task",
    "deadline": "deadline in ISO8601 form, e.g. 2025-10-28T23:59:59Z, or null if none is stated"
  }
]

Rules:
- Return an empty array [] when the text contains no tasks
- Resolve relative dates ("tomorrow", "next week") to concrete dates
- deadline must be an ISO8601 string or null
- Return only the JSON, no surrounding prose`, currentTime, text)

	resp, err := s.client.CreateChatCompletion(
		ctx,
		openai.ChatCompletionRequest{
			Model: openai.GPT4o,
			Messages: []openai.ChatCompletionMessage{
				{
					Role:    openai.ChatMessageRoleUser,
					Content: prompt,
				},
			},
			Temperature: 0.3,
		},
	)

	if err != nil {
		return nil, fmt.Errorf("OpenAI API error: %w", err)
	}

	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("no response from OpenAI")
	}

	content := resp.Choices[0].Message.Content

	var drafts []TaskDraft
	if err := json.Unmarshal([]byte(content), &drafts); err != nil {
		return nil, fmt.Errorf("failed to parse suggestion response: %w (response: %s)", err, content)
	}

	return drafts, nil
}
