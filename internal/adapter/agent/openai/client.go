package openai

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"
	"time"
)

const (
	defaultBaseURL = "https://api.openai.com/v1"
	defaultModel   = "gpt-4o"
	defaultTimeout = 60 * time.Second
)

// Config carries everything needed to talk to a chat-completions endpoint.
// BaseURL may point at any OpenAI-compatible server.
type Config struct {
	APIKey  string
	BaseURL string
	Model   string
	Timeout time.Duration
	// JSONReply asks the server to constrain output to a JSON object.
	JSONReply bool
}

// Agent is a stateful conversational agent over the chat-completions API.
// It keeps the running message history so every Send sees the full
// conversation so far.
type Agent struct {
	apiKey    string
	baseURL   string
	model     string
	jsonReply bool
	client    *http.Client

	mu       sync.Mutex
	system   string
	messages []chatMessage
}

type chatMessage struct {
	Role    string `json:"role"`
	Content any    `json:"content"`
}

func NewAgent(cfg Config) (*Agent, error) {
	apiKey := strings.TrimSpace(cfg.APIKey)
	if apiKey == "" {
		return nil, errors.New("openai: missing API key")
	}

	baseURL := strings.TrimSpace(cfg.BaseURL)
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	baseURL = strings.TrimRight(baseURL, "/")

	model := strings.TrimSpace(cfg.Model)
	if model == "" {
		model = defaultModel
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	return &Agent{
		apiKey:    apiKey,
		baseURL:   baseURL,
		model:     model,
		jsonReply: cfg.JSONReply,
		client:    &http.Client{Timeout: timeout},
	}, nil
}

// Configure installs the role prompt and discards any accumulated history.
func (a *Agent) Configure(rolePrompt string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.system = rolePrompt
	a.messages = nil
}

// ResetHistory drops the conversation but keeps the role prompt.
func (a *Agent) ResetHistory() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.messages = nil
}

// Send appends the text as a user turn, runs one completion, records the
// assistant turn and returns its content. On failure the user turn is
// rolled back so a retry does not duplicate it.
func (a *Agent) Send(ctx context.Context, text string) (string, error) {
	a.mu.Lock()
	a.messages = append(a.messages, chatMessage{Role: "user", Content: text})
	payload := a.buildPayload()
	a.mu.Unlock()

	content, err := a.complete(ctx, payload)
	if err != nil {
		a.mu.Lock()
		if n := len(a.messages); n > 0 {
			a.messages = a.messages[:n-1]
		}
		a.mu.Unlock()
		return "", err
	}

	a.mu.Lock()
	a.messages = append(a.messages, chatMessage{Role: "assistant", Content: content})
	a.mu.Unlock()
	return content, nil
}

func (a *Agent) buildPayload() map[string]any {
	messages := make([]chatMessage, 0, len(a.messages)+1)
	if a.system != "" {
		messages = append(messages, chatMessage{Role: "system", Content: a.system})
	}
	messages = append(messages, a.messages...)

	body := map[string]any{
		"model":    a.model,
		"messages": messages,
	}
	if a.jsonReply {
		body["response_format"] = map[string]string{"type": "json_object"}
	}
	return body
}

func (a *Agent) complete(ctx context.Context, payload map[string]any) (string, error) {
	encoded, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("openai: encode request: %w", err)
	}

	endpoint := a.baseURL + "/chat/completions"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(encoded))
	if err != nil {
		return "", fmt.Errorf("openai: build request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+a.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := a.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("openai: request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
		return "", fmt.Errorf("openai: status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var decoded struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return "", fmt.Errorf("openai: decode response: %w", err)
	}
	if len(decoded.Choices) == 0 {
		return "", errors.New("openai: response has no choices")
	}

	content := strings.TrimSpace(decoded.Choices[0].Message.Content)
	if content == "" {
		return "", errors.New("openai: empty completion content")
	}
	return content, nil
}
