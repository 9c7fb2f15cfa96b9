package llm

import (
	"context"
	"fmt"
	"strings"

	"github.com/ternarybob/arbor"
	"github.com/ternarybob/orbit/internal/interfaces"
	"github.com/ternarybob/orbit/internal/models"
)

// Fixed fallback strings. The insight layer is advisory only: any provider
// failure degrades to these, is never retried, and never propagates.
const (
	FallbackAnalysis = "AI is currently offline. Please try again later."
	FallbackPulse    = "Market data unavailable."
)

// InsightService wraps a text-generation provider behind operations that
// cannot fail. A nil provider (no API key configured) is valid and yields the
// fallbacks immediately.
type InsightService struct {
	generator interfaces.TextGenerator
	logger    arbor.ILogger
}

// NewInsightService creates the fail-soft advisory layer.
func NewInsightService(generator interfaces.TextGenerator, logger arbor.ILogger) *InsightService {
	return &InsightService{
		generator: generator,
		logger:    logger,
	}
}

// Enabled reports whether a live provider is configured.
func (s *InsightService) Enabled() bool {
	return s.generator != nil
}

// AnalyzeSignal returns a short educational rationale for a trade call, or
// the fixed fallback on any failure.
func (s *InsightService) AnalyzeSignal(ctx context.Context, signal models.Signal) string {
	prompt := fmt.Sprintf(
		"You are a senior financial analyst. Provide a concise, 2-sentence rationale for a %s trade on %s. "+
			"Entry: %.2f, Stop Loss: %.2f, Take Profit: %.2f. "+
			"Focus on technical reasoning (e.g., support/resistance, trend) or macro sentiment suitable for a beginner trader. "+
			"Do not give financial advice, just the educational rationale.",
		signal.Direction, signal.Asset, signal.EntryPrice, signal.StopLoss, signal.TakeProfit1,
	)
	return s.generate(ctx, prompt, FallbackAnalysis)
}

// MarketPulse returns a short market blurb suitable for a notification, or
// the fixed fallback on any failure.
func (s *InsightService) MarketPulse(ctx context.Context) string {
	prompt := "Give a very short, futuristic style 'Market Pulse' update (max 30 words) about global markets " +
		"(Crypto/Forex) suitable for a trading app notification."
	return s.generate(ctx, prompt, FallbackPulse)
}

func (s *InsightService) generate(ctx context.Context, prompt, fallback string) string {
	if s.generator == nil {
		return fallback
	}
	text, err := s.generator.GenerateText(ctx, prompt)
	if err != nil {
		s.logger.Warn().
			Str("provider", s.generator.ProviderName()).
			Err(err).
			Msg("Advisory text generation failed, using fallback")
		return fallback
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return fallback
	}
	return text
}
