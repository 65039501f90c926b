package orchestrate

import "armbridge/internal/domain/robot"

type Kind string

const (
	KindRequest  Kind = "Request"
	KindFeedback Kind = "Feedback"
)

// Request is one caller-submitted exchange. Immutable once created.
type Request struct {
	Kind  Kind
	Text  string
	State string
}

// Outcome is the structured result of one pipeline run. Every path through
// the orchestrator yields a well-formed Outcome; there is no error return.
type Outcome struct {
	Reply  string       `json:"reply"`
	Action robot.Action `json:"action"`
	State  string       `json:"state"`
	Score  int          `json:"score"`
	// Corrected marks outcomes that went through a corrective round.
	Corrected bool `json:"corrected,omitempty"`
	// Failed marks error-shaped outcomes.
	Failed bool `json:"failed,omitempty"`
}

// Agent-boundary JSON envelopes. The shapes are a fixed contract with the
// role prompts below and must match them exactly.

type inputPayload struct {
	Type string `json:"Type"`
	Data string `json:"Data"`
}

type inputEnvelope struct {
	IP    inputPayload `json:"IP"`
	State string       `json:"State"`
}

type outputPayload struct {
	Reply    string       `json:"Reply"`
	Function robot.Action `json:"Function"`
}

type outputEnvelope struct {
	OP    outputPayload `json:"OP"`
	State string        `json:"State,omitempty"`
}

type validationInput struct {
	IP inputPayload  `json:"IP"`
	OP outputPayload `json:"OP"`
}

type verdictEnvelope struct {
	FeedbackScore int    `json:"Feedback_score"`
	Feedback      string `json:"Feedback"`
	State         string `json:"State,omitempty"`
}
