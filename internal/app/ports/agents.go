package ports

import "context"

// ConversationalAgent is one stateful conversation with a language model.
// Configure installs a role prompt and clears history; Send advances the
// conversation by one exchange. Implementations must support a mode that
// constrains replies to a single well-formed JSON object.
type ConversationalAgent interface {
	Configure(rolePrompt string)
	Send(ctx context.Context, text string) (string, error)
	ResetHistory()
}

// VisionProvider answers a free-form question about an image.
type VisionProvider interface {
	Ask(ctx context.Context, image []byte, question string) (string, error)
}

// FrameSource captures one camera frame as encoded image bytes.
type FrameSource interface {
	Capture(ctx context.Context) ([]byte, error)
}
