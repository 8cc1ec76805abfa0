package gobhasha

import "fmt"

// ErrorMark prefixes every user-facing failure string. Downstream
// stages recognize it and skip further processing.
const ErrorMark = "❌"

// FailureText renders an error as the display string shown in place of
// a translation.
func FailureText(err error) string {
	return fmt.Sprintf("%s Error: %v", ErrorMark, err)
}

// IsFailureText reports whether a candidate string is an error marker
// rather than a translation.
func IsFailureText(s string) bool {
	return len(s) >= len(ErrorMark) && s[:len(ErrorMark)] == ErrorMark
}

// TranslationError is the base error type for pipeline failures.
type TranslationError struct {
	Message string
	Cause   error
}

func (e *TranslationError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *TranslationError) Unwrap() error {
	return e.Cause
}

// ProviderError indicates a translation engine failure (non-200 status,
// transport error, malformed body). Terminal for the request: no retry.
type ProviderError struct {
	Message    string
	StatusCode int // HTTP status, 0 for transport errors
	Body       string
	Cause      error
}

func (e *ProviderError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("provider error: %s: %d - %s", e.Message, e.StatusCode, e.Body)
	}
	if e.Cause != nil {
		return fmt.Sprintf("provider error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("provider error: %s", e.Message)
}

func (e *ProviderError) Unwrap() error {
	return e.Cause
}

// ReviewError describes a failure on the LLM review path. It is never
// returned to the pipeline caller, only reported as a note alongside
// the pre-review candidate.
type ReviewError struct {
	Message string
	Cause   error
}

func (e *ReviewError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("review error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("review error: %s", e.Message)
}

func (e *ReviewError) Unwrap() error {
	return e.Cause
}

// CacheError indicates a cache operation failure.
type CacheError struct {
	Message string
	Cause   error
}

func (e *CacheError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("cache error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("cache error: %s", e.Message)
}

func (e *CacheError) Unwrap() error {
	return e.Cause
}

// LogError indicates a failure appending to the translation log. It is
// surfaced as an advisory, never a pipeline failure.
type LogError struct {
	Message string
	Cause   error
}

func (e *LogError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("log error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("log error: %s", e.Message)
}

func (e *LogError) Unwrap() error {
	return e.Cause
}
