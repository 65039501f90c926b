package scripted

import (
	"context"
	"fmt"
)

// Agent replays a fixed list of replies in order and records everything it
// was asked. It stands in for a live model in tests and offline runs.
type Agent struct {
	Prompt  string
	Replies []string
	Err     error

	Sent   []string
	Resets int
	next   int
}

func (a *Agent) Configure(rolePrompt string) {
	a.Prompt = rolePrompt
}

func (a *Agent) Send(_ context.Context, text string) (string, error) {
	if a.Err != nil {
		return "", a.Err
	}
	a.Sent = append(a.Sent, text)
	if a.next >= len(a.Replies) {
		return "", fmt.Errorf("scripted agent exhausted after %d replies", a.next)
	}
	reply := a.Replies[a.next]
	a.next++
	return reply, nil
}

func (a *Agent) ResetHistory() {
	a.Resets++
}
