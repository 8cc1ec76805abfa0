package provider

import (
	"context"
	"fmt"
)

// MockProvider is a mock translation engine for testing.
type MockProvider struct {
	Translations map[string]string // Map of input text to translation
	Err          error             // Error to return, if any
	CallCount    int               // Number of times Translate was called
	LastRequest  *Request          // Last request received
}

// NewMockProvider creates a new mock provider with default translations.
func NewMockProvider() *MockProvider {
	return &MockProvider{
		Translations: map[string]string{
			"Hello team":         "Hello team doston",
			"Good morning":       "Suprabhat",
			"Join the live show": "Live show join karo",
		},
	}
}

// Translate returns mock translations.
func (m *MockProvider) Translate(ctx context.Context, req Request) (string, error) {
	m.CallCount++
	reqCopy := req
	m.LastRequest = &reqCopy

	if m.Err != nil {
		return "", m.Err
	}
	if translation, ok := m.Translations[req.Input]; ok {
		return translation, nil
	}
	// Echo unknown inputs with a marker so tests can spot them
	return fmt.Sprintf("<%s>", req.Input), nil
}

// Reset resets the call count and last request.
func (m *MockProvider) Reset() {
	m.CallCount = 0
	m.LastRequest = nil
}

// Verify MockProvider implements Provider
var _ Provider = (*MockProvider)(nil)
