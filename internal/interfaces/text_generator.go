package interfaces

import "context"

// TextGenerator produces free text for a short natural-language prompt.
// Implementations may fail; callers that must not propagate failures wrap a
// TextGenerator in a fail-soft layer.
type TextGenerator interface {
	GenerateText(ctx context.Context, prompt string) (string, error)
	ProviderName() string
}
