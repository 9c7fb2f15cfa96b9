package llm

import (
	"fmt"
	"strings"

	"github.com/ternarybob/arbor"
	"github.com/ternarybob/orbit/internal/common"
	"github.com/ternarybob/orbit/internal/interfaces"
)

// ProviderType represents the AI provider type
type ProviderType string

const (
	// ProviderGemini uses Google Gemini API
	ProviderGemini ProviderType = "gemini"
	// ProviderClaude uses Anthropic Claude API
	ProviderClaude ProviderType = "claude"
)

// NewProvider creates the configured text-generation provider. An unknown
// provider name is an error; a missing API key is also an error, and callers
// that want degraded-but-running behavior handle it (see NewInsightService).
func NewProvider(config *common.LLMConfig, logger arbor.ILogger) (interfaces.TextGenerator, error) {
	switch ProviderType(strings.ToLower(config.Provider)) {
	case ProviderGemini, "":
		return NewGeminiService(config, logger)
	case ProviderClaude:
		return NewClaudeService(config, logger)
	default:
		return nil, fmt.Errorf("unknown llm provider %q (want gemini or claude)", config.Provider)
	}
}
