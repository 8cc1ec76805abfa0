// Package review implements the optional LLM review pass that polishes
// engine output against the curated quality patterns.
package review

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/sashabaranov/go-openai"

	"github.com/frndlabs/gobhasha"
)

// Reviewer improves a candidate translation using an OpenAI chat model.
// It is best-effort: any failure returns the candidate unchanged with a
// note, never an error.
type Reviewer struct {
	client      *openai.Client
	model       string
	temperature float32
	timeout     time.Duration
}

// Config holds configuration for the Reviewer.
type Config struct {
	APIKey      string        // OpenAI API key (required)
	Model       string        // Model to use (default: "gpt-4o-mini")
	Temperature float32       // Temperature for generation (default: 0.1)
	Timeout     time.Duration // Per-call timeout (default: 30s)
	BaseURL     string        // Custom base URL (optional)
}

// NewReviewer creates a new Reviewer.
func NewReviewer(cfg Config) *Reviewer {
	config := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		config.BaseURL = cfg.BaseURL
	}

	model := cfg.Model
	if model == "" {
		model = "gpt-4o-mini"
	}

	temperature := cfg.Temperature
	if temperature == 0 {
		temperature = 0.1
	}

	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 30 * time.Second
	}

	return &Reviewer{
		client:      openai.NewClientWithConfig(config),
		model:       model,
		temperature: temperature,
		timeout:     timeout,
	}
}

// Review sends the candidate to the model and returns the improved
// text. On any failure, or when the model returns commentary instead of
// a translation, the candidate comes back unchanged with a note.
func (r *Reviewer) Review(ctx context.Context, req gobhasha.ReviewRequest) (string, string) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	prompt := buildPrompt(req)

	resp, err := r.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: r.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
		Temperature: r.temperature,
	})
	if err != nil {
		return req.Candidate, fmt.Sprintf("review skipped: %v", err)
	}
	if len(resp.Choices) == 0 {
		return req.Candidate, "review skipped: no choices in response"
	}

	improved := strings.TrimSpace(resp.Choices[0].Message.Content)
	if improved == "" {
		return req.Candidate, "review skipped: empty response"
	}
	if isMetaCommentary(improved) {
		return req.Candidate, "review made no changes"
	}

	improved = gobhasha.CleanInstructionLeaks(improved)
	improved = gobhasha.CollapseBrandBrackets(improved)
	improved = gobhasha.TidyWhitespace(improved)

	if improved == req.Candidate {
		return req.Candidate, "review made no changes"
	}
	return improved, ""
}

// metaPhrases mark responses that talk about the translation instead of
// returning it.
var metaPhrases = []string{
	"the translation is already",
	"no improvements needed",
	"no changes needed",
	"this translation is correct",
	"looks good as is",
	"as an ai",
}

func isMetaCommentary(text string) bool {
	lower := strings.ToLower(text)
	for _, phrase := range metaPhrases {
		if strings.Contains(lower, phrase) {
			return true
		}
	}
	return false
}

// Verify Reviewer implements the pipeline interface
var _ gobhasha.ReviewService = (*Reviewer)(nil)
