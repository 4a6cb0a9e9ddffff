package recap

import "context"

// Generator produces recap text from a prompt.
type Generator interface {
	Generate(ctx context.Context, prompt Prompt) (Completion, error)
}
