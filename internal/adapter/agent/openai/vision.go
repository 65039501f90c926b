package openai

import (
	"context"
	"encoding/base64"
	"fmt"
)

const visionMaxTokens = 300

// Vision answers one-shot questions about a camera frame. It shares the
// agent's endpoint and credentials but carries no history; every Ask is
// independent.
type Vision struct {
	agent *Agent
}

func NewVision(cfg Config) (*Vision, error) {
	cfg.JSONReply = false
	agent, err := NewAgent(cfg)
	if err != nil {
		return nil, err
	}
	return &Vision{agent: agent}, nil
}

// Ask sends the frame inline as a data URI alongside the question and
// returns the model's plain-text answer.
func (v *Vision) Ask(ctx context.Context, image []byte, question string) (string, error) {
	dataURI := "data:image/jpeg;base64," + base64.StdEncoding.EncodeToString(image)

	payload := map[string]any{
		"model": v.agent.model,
		"messages": []chatMessage{
			{
				Role: "user",
				Content: []map[string]any{
					{"type": "text", "text": question},
					{"type": "image_url", "image_url": map[string]string{"url": dataURI}},
				},
			},
		},
		"max_tokens": visionMaxTokens,
	}

	answer, err := v.agent.complete(ctx, payload)
	if err != nil {
		return "", fmt.Errorf("vision query: %w", err)
	}
	return answer, nil
}
