package llm

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/ternarybob/arbor"
	"github.com/ternarybob/orbit/internal/common"
	"google.golang.org/genai"
)

// GeminiService generates advisory text using the Google Gemini API.
type GeminiService struct {
	client      *genai.Client
	model       string
	temperature float32
	timeout     time.Duration
	logger      arbor.ILogger
}

// NewGeminiService creates a new Gemini text-generation service. The API key
// is resolved from config with a GEMINI_API_KEY environment fallback.
func NewGeminiService(config *common.LLMConfig, logger arbor.ILogger) (*GeminiService, error) {
	apiKey := config.APIKey
	if apiKey == "" {
		apiKey = os.Getenv("GEMINI_API_KEY")
	}
	if apiKey == "" {
		return nil, fmt.Errorf("Google API key is required for Gemini (set llm.api_key or GEMINI_API_KEY)")
	}

	model := config.Model
	if model == "" {
		model = "gemini-2.5-flash"
	}

	timeout, err := time.ParseDuration(config.Timeout)
	if err != nil {
		return nil, fmt.Errorf("invalid timeout duration '%s': %w", config.Timeout, err)
	}

	client, err := genai.NewClient(context.Background(), &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize genai client: %w", err)
	}

	logger.Debug().Str("model", model).Msg("Gemini text-generation service initialized")

	return &GeminiService{
		client:      client,
		model:       model,
		temperature: config.Temperature,
		timeout:     timeout,
		logger:      logger,
	}, nil
}

// ProviderName identifies this provider in logs.
func (s *GeminiService) ProviderName() string {
	return string(ProviderGemini)
}

// GenerateText produces free text for a short prompt.
func (s *GeminiService) GenerateText(ctx context.Context, prompt string) (string, error) {
	if strings.TrimSpace(prompt) == "" {
		return "", fmt.Errorf("prompt cannot be empty")
	}

	timeoutCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	genConfig := &genai.GenerateContentConfig{}
	if s.temperature > 0 {
		genConfig.Temperature = genai.Ptr(s.temperature)
	}

	contents := []*genai.Content{
		{
			Role:  genai.RoleUser,
			Parts: []*genai.Part{genai.NewPartFromText(prompt)},
		},
	}

	resp, err := s.client.Models.GenerateContent(timeoutCtx, s.model, contents, genConfig)
	if err != nil {
		return "", fmt.Errorf("gemini generation failed: %w", err)
	}

	var response strings.Builder
	if resp != nil {
		for _, candidate := range resp.Candidates {
			if candidate.Content == nil {
				continue
			}
			for _, part := range candidate.Content.Parts {
				if part.Text != "" {
					response.WriteString(part.Text)
				}
			}
			if response.Len() > 0 {
				break
			}
		}
	}

	if response.Len() == 0 {
		return "", fmt.Errorf("no response generated from gemini")
	}
	return response.String(), nil
}
