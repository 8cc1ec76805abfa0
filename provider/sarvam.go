package provider

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/frndlabs/gobhasha"
)

const defaultSarvamBaseURL = "https://api.sarvam.ai"

// SarvamProvider implements Provider using the Sarvam translation API.
type SarvamProvider struct {
	apiKey  string
	baseURL string
	client  *http.Client
}

// SarvamConfig holds configuration for the Sarvam provider.
type SarvamConfig struct {
	APIKey  string        // Sarvam API subscription key (required)
	BaseURL string        // Custom base URL (optional)
	Timeout time.Duration // HTTP timeout (default: no timeout, rely on ctx)
}

// NewSarvamProvider creates a new Sarvam provider.
func NewSarvamProvider(cfg SarvamConfig) *SarvamProvider {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = defaultSarvamBaseURL
	}

	return &SarvamProvider{
		apiKey:  cfg.APIKey,
		baseURL: baseURL,
		client:  &http.Client{Timeout: cfg.Timeout},
	}
}

type sarvamPayload struct {
	Input               string `json:"input"`
	SourceLanguageCode  string `json:"source_language_code"`
	TargetLanguageCode  string `json:"target_language_code"`
	Mode                string `json:"mode"`
	SpeakerGender       string `json:"speaker_gender"`
	EnablePreprocessing bool   `json:"enable_preprocessing"`
	NumeralsFormat      string `json:"numerals_format"`
	OutputScript        string `json:"output_script,omitempty"`
}

type sarvamResponse struct {
	TranslatedText string `json:"translated_text"`
}

// Translate sends one text to the Sarvam translate endpoint.
func (p *SarvamProvider) Translate(ctx context.Context, req Request) (string, error) {
	gender := req.Gender
	if gender == "" {
		gender = gobhasha.GenderFemale
	}

	payload := sarvamPayload{
		Input:               req.Input,
		SourceLanguageCode:  req.SourceLang,
		TargetLanguageCode:  req.TargetLang,
		Mode:                string(req.Mode),
		SpeakerGender:       string(gender),
		EnablePreprocessing: true,
		NumeralsFormat:      "international",
		OutputScript:        string(req.OutputScript),
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return "", &gobhasha.ProviderError{
			Message: "failed to encode request",
			Cause:   err,
		}
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, p.baseURL+"/translate", bytes.NewReader(body))
	if err != nil {
		return "", &gobhasha.ProviderError{
			Message: "failed to build request",
			Cause:   err,
		}
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("api-subscription-key", p.apiKey)
	httpReq.Header.Set("User-Agent", gobhasha.UserAgent())

	resp, err := p.client.Do(httpReq)
	if err != nil {
		return "", &gobhasha.ProviderError{
			Message: "Sarvam API call failed",
			Cause:   err,
		}
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", &gobhasha.ProviderError{
			Message: "failed to read response",
			Cause:   err,
		}
	}

	if resp.StatusCode != http.StatusOK {
		return "", &gobhasha.ProviderError{
			Message:    "Sarvam API returned an error",
			StatusCode: resp.StatusCode,
			Body:       string(respBody),
		}
	}

	var parsed sarvamResponse
	if err := json.Unmarshal(respBody, &parsed); err != nil {
		return "", &gobhasha.ProviderError{
			Message: fmt.Sprintf("failed to parse response: %s", truncate(string(respBody), 200)),
			Cause:   err,
		}
	}

	if parsed.TranslatedText == "" {
		return "", &gobhasha.ProviderError{
			Message: "Sarvam API returned no translation",
			Body:    string(respBody),
		}
	}

	return parsed.TranslatedText, nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}

// Verify SarvamProvider implements Provider
var _ Provider = (*SarvamProvider)(nil)
