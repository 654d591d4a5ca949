package services

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/sashabaranov/go-openai"
	"github.com/volunteerhub/volunteer-hub-api/internal/constants"
	"github.com/volunteerhub/volunteer-hub-api/internal/skills"
)

type AIService struct {
	client *openai.Client
}

func NewAIService(apiKey string) *AIService {
	return &AIService{
		client: openai.NewClient(apiKey),
	}
}

// SuggestSkills asks OpenAI which skill tags fit a task description. Tags
// outside the known vocabulary are dropped, so a confused model can never
// introduce new ones.
func (s *AIService) SuggestSkills(ctx context.Context, text string) ([]string, error) {
	if s.client == nil {
		return nil, fmt.Errorf("OpenAI client not initialized")
	}

	prompt := fmt.Sprintf(`You are a skill tagging assistant for a volunteer task board. Pick the skill tags that fit the task below.

Task:
%s

Allowed tags (use these exact strings, nothing else):
%s

Return a JSON array of the matching tags, for example ["Gardening", "Cleaning"].

Notes:
- Return at most %d tags
- Return an empty array [] when no tag fits
- Return only JSON, no explanation`, text, strings.Join(skills.Vocabulary(), ", "), constants.MaxAISuggestedSkills)

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

	var tags []string
	if err := json.Unmarshal([]byte(content), &tags); err != nil {
		return nil, fmt.Errorf("failed to parse AI response: %w (response: %s)", err, content)
	}

	out := make([]string, 0, len(tags))
	for _, tag := range tags {
		if skills.IsValidTag(tag) {
			out = append(out, tag)
		}
		if len(out) == constants.MaxAISuggestedSkills {
			break
		}
	}
	return out, nil
}
