package orchestrate

import (
	"context"
	"encoding/json"
	"fmt"

	"armbridge/internal/app/ports"
	"armbridge/internal/domain/robot"

	"github.com/cloudwego/hertz/pkg/common/hlog"
)

const (
	// ScoreMax is the sentinel for trusted outcomes: validation disabled,
	// feedback-kind input, or a corrected response.
	ScoreMax = 10
	// scoreNeutral is assumed when the validation agent's verdict cannot
	// be parsed.
	scoreNeutral = 5
	// Verdicts in (0, correctionThreshold) trigger exactly one corrective
	// round. A zero score means the verdict itself is not actionable.
	correctionThreshold = 5
)

const defaultState = "NULL"

const fallbackReply = "Internal error processing response"

type UseCase struct {
	Main       ports.ConversationalAgent
	Validator  ports.ConversationalAgent
	Validation bool
}

// ConfigureAgents installs the role prompts. Both agents drop any prior
// conversation history.
func (u UseCase) ConfigureAgents() {
	u.Main.Configure(MainAgentPrompt)
	if u.Validator != nil {
		u.Validator.Configure(ValidationAgentPrompt)
	}
}

// Execute runs one request through the dual-agent pipeline. It always
// returns a well-formed Outcome: internal failures collapse into an
// error-shaped reply with the no-op action and score zero.
func (u UseCase) Execute(ctx context.Context, req Request) Outcome {
	state := req.State
	if state == "" {
		state = defaultState
	}
	if req.Kind == "" {
		req.Kind = KindRequest
	}

	input := inputEnvelope{
		IP:    inputPayload{Type: string(req.Kind), Data: req.Text},
		State: state,
	}

	response, err := u.queryMain(ctx, input)
	if err != nil {
		return errorOutcome(state, err)
	}

	score := ScoreMax
	wasCorrected := false
	if u.Validation && u.Validator != nil && req.Kind != KindFeedback {
		verdict, err := u.validate(ctx, input.IP, response.OP)
		if err != nil {
			return errorOutcome(state, err)
		}
		score = verdict.FeedbackScore

		if score > 0 && score < correctionThreshold {
			corrected, err := u.queryMain(ctx, inputEnvelope{
				IP:    inputPayload{Type: string(KindFeedback), Data: verdict.Feedback},
				State: state,
			})
			if err != nil {
				return errorOutcome(state, err)
			}
			response = corrected
			wasCorrected = true
			// The corrected response is not re-validated; its score is
			// forced to the trusted sentinel to bound the loop.
			score = ScoreMax
		}
	}

	finalState := state
	if response.State != "" {
		finalState = response.State
	}

	action := response.OP.Function
	if action.IsNoop() {
		action = robot.NoopAction()
	}

	return Outcome{
		Reply:     response.OP.Reply,
		Action:    action,
		State:     finalState,
		Score:     score,
		Corrected: wasCorrected,
	}
}

// queryMain sends one serialized envelope to the task agent. A reply that is
// not the expected JSON shape degrades to a fallback response rather than an
// error; only transport-level failures propagate.
func (u UseCase) queryMain(ctx context.Context, input inputEnvelope) (outputEnvelope, error) {
	payload, err := json.Marshal(input)
	if err != nil {
		return outputEnvelope{}, fmt.Errorf("serialize request: %w", err)
	}

	raw, err := u.Main.Send(ctx, string(payload))
	if err != nil {
		return outputEnvelope{}, fmt.Errorf("task agent: %w", err)
	}

	var response outputEnvelope
	if err := json.Unmarshal([]byte(raw), &response); err != nil {
		hlog.Warnf("task agent returned malformed response: %v", err)
		return outputEnvelope{OP: outputPayload{
			Reply:    fallbackReply,
			Function: robot.NoopAction(),
		}}, nil
	}
	return response, nil
}

// validate grades the task agent's output against the original request. A
// malformed verdict degrades to the neutral score; only transport-level
// failures propagate.
func (u UseCase) validate(ctx context.Context, ip inputPayload, op outputPayload) (verdictEnvelope, error) {
	payload, err := json.Marshal(validationInput{IP: ip, OP: op})
	if err != nil {
		return verdictEnvelope{}, fmt.Errorf("serialize validation input: %w", err)
	}

	raw, err := u.Validator.Send(ctx, string(payload))
	if err != nil {
		return verdictEnvelope{}, fmt.Errorf("validation agent: %w", err)
	}

	var verdict verdictEnvelope
	if err := json.Unmarshal([]byte(raw), &verdict); err != nil {
		hlog.Warnf("validation agent returned malformed verdict: %v", err)
		return verdictEnvelope{FeedbackScore: scoreNeutral}, nil
	}
	return verdict, nil
}

func errorOutcome(state string, err error) Outcome {
	return Outcome{
		Reply:  fmt.Sprintf("Error processing request: %v", err),
		Action: robot.NoopAction(),
		State:  state,
		Score:  0,
		Failed: true,
	}
}
