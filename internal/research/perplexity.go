// ABOUTME: Perplexity client used as a research fallback when CourtListener is unavailable
// ABOUTME: Speaks the OpenAI-compatible chat completions API with retry and backoff
package research

import (
	"context"
	"fmt"
	"time"

	"github.com/openclerk/dccourt/internal/util"
	openai "github.com/sashabaranov/go-openai"
)

const (
	// perplexityBaseURL is the OpenAI-compatible API root.
	perplexityBaseURL = "https://api.perplexity.ai"
	// DefaultModel is the Perplexity online search model.
	DefaultModel = "sonar"
)

const systemPrompt = `You are a legal research assistant specializing in U.S. federal court cases,
particularly the U.S. District Court for the District of Columbia.
Provide accurate, well-sourced information about court cases.
Always include case names, docket numbers, judges, and filing dates when available.
Format your response with clear sections for each case found.`

// searchTypeContext maps a CourtListener search-type discriminator to a
// human description used in the research prompt.
var searchTypeContext = map[string]string{
	"o": "court opinions and case law",
	"d": "court dockets and case filings",
	"r": "PACER/RECAP court documents",
}

// ClientConfig holds configuration for the Perplexity client.
type ClientConfig struct {
	APIKey     string
	BaseURL    string // defaults to the Perplexity API root
	Model      string
	MaxRetries int
	RetryDelay time.Duration
}

// DefaultConfig returns the default client configuration.
func DefaultConfig(apiKey string) *ClientConfig {
	return &ClientConfig{
		APIKey:     apiKey,
		BaseURL:    perplexityBaseURL,
		Model:      DefaultModel,
		MaxRetries: 3,
		RetryDelay: time.Second * 2,
	}
}

// PerplexityClient wraps the Perplexity chat API with retry logic.
type PerplexityClient struct {
	client     *openai.Client
	model      string
	maxRetries int
	retryDelay time.Duration
}

// NewPerplexityClient creates a client with the default configuration.
func NewPerplexityClient(apiKey string) (*PerplexityClient, error) {
	return NewPerplexityClientWithConfig(DefaultConfig(apiKey))
}

// NewPerplexityClientWithConfig creates a client with custom configuration.
func NewPerplexityClientWithConfig(cfg *ClientConfig) (*PerplexityClient, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("Perplexity API key is required")
	}

	openaiCfg := openai.DefaultConfig(cfg.APIKey)
	openaiCfg.BaseURL = cfg.BaseURL
	if openaiCfg.BaseURL == "" {
		openaiCfg.BaseURL = perplexityBaseURL
	}

	model := cfg.Model
	if model == "" {
		model = DefaultModel
	}

	return &PerplexityClient{
		client:     openai.NewClientWithConfig(openaiCfg),
		model:      model,
		maxRetries: cfg.MaxRetries,
		retryDelay: cfg.RetryDelay,
	}, nil
}

// SearchCases asks Perplexity for court cases matching the query.
// searchType takes the same discriminator as the CourtListener search
// endpoint ("o", "d", "r"); unknown values get a generic prompt.
func (c *PerplexityClient) SearchCases(ctx context.Context, query, searchType string) (string, error) {
	typeContext, ok := searchTypeContext[searchType]
	if !ok {
		typeContext = "court cases"
	}

	userPrompt := fmt.Sprintf(`Search for %s related to: %s

Focus on DC District Court (U.S. District Court for the District of Columbia) cases when possible.
For each relevant case found, provide:
- Case name (e.g., Smith v. Jones)
- Docket number if available
- Judge name
- Filing date or decision date
- Brief summary of what the case is about

Search sources like CourtListener, Justia, and official court records.`, typeContext, query)

	var lastErr error

	for attempt := 0; attempt <= c.maxRetries; attempt++ {
		if attempt > 0 {
			time.Sleep(util.CalculateBackoff(c.retryDelay, attempt))
		}

		reqCtx, cancel := context.WithTimeout(ctx, 30*time.Second)

		resp, err := c.client.CreateChatCompletion(reqCtx, openai.ChatCompletionRequest{
			Model: c.model,
			Messages: []openai.ChatCompletionMessage{
				{
					Role:    openai.ChatMessageRoleSystem,
					Content: systemPrompt,
				},
				{
					Role:    openai.ChatMessageRoleUser,
					Content: userPrompt,
				},
			},
			MaxTokens:   1500,
			Temperature: 0.1,
		})

		if err != nil {
			cancel()
			lastErr = fmt.Errorf("attempt %d: %w", attempt+1, err)
			continue
		}

		if len(resp.Choices) == 0 {
			cancel()
			lastErr = fmt.Errorf("attempt %d: no completion choices returned", attempt+1)
			continue
		}

		cancel()
		return resp.Choices[0].Message.Content, nil
	}

	return "", fmt.Errorf("research search failed after %d attempts: %w", c.maxRetries+1, lastErr)
}
