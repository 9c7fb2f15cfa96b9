package llm

import (
	"testing"

	"github.com/ternarybob/arbor"
	"github.com/ternarybob/orbit/internal/common"
)

func TestNewProviderUnknown(t *testing.T) {
	_, err := NewProvider(&common.LLMConfig{Provider: "copilot"}, arbor.NewLogger())
	if err == nil {
		t.Fatalf("expected error for unknown provider")
	}
}

func TestNewProviderRequiresAPIKey(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "")
	t.Setenv("ANTHROPIC_API_KEY", "")

	cfg := &common.LLMConfig{Provider: "gemini", Timeout: "15s"}
	if _, err := NewProvider(cfg, arbor.NewLogger()); err == nil {
		t.Errorf("gemini without a key should fail")
	}

	cfg = &common.LLMConfig{Provider: "claude", Timeout: "15s"}
	if _, err := NewProvider(cfg, arbor.NewLogger()); err == nil {
		t.Errorf("claude without a key should fail")
	}
}

func TestNewProviderRejectsBadTimeout(t *testing.T) {
	cfg := &common.LLMConfig{Provider: "claude", APIKey: "test-key", Timeout: "soon"}
	if _, err := NewProvider(cfg, arbor.NewLogger()); err == nil {
		t.Errorf("invalid timeout should fail")
	}
}
