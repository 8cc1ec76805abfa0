package gobhasha

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Translator runs the full translation pipeline: normalize → enhance →
// remote call → restore/clean → optional review → score → log.
type Translator struct {
	provider Provider
	reviewer ReviewService
	cache    TranslationCache
	logger   Logger
	terms    []string
	detect   func(string) string
}

// Provider is the interface for translation engine backends.
type Provider interface {
	Translate(ctx context.Context, req ProviderRequest) (string, error)
}

// ProviderRequest contains the parameters for one engine call.
type ProviderRequest struct {
	Input        string
	SourceLang   string
	TargetLang   string
	Mode         StyleMode
	Gender       SpeakerGender
	OutputScript ScriptPreference // empty when the script is left to the engine
}

// ReviewService is the interface for the optional LLM review pass.
// Review always returns a usable text: the improved candidate on
// success, the unchanged candidate otherwise, plus an informational
// note. It never fails the pipeline.
type ReviewService interface {
	Review(ctx context.Context, req ReviewRequest) (text string, note string)
}

// ReviewRequest carries the material the reviewer needs.
type ReviewRequest struct {
	Original       string
	Candidate      string
	TargetLang     string
	Mode           StyleMode
	ContextType    string
	Audience       string
	FormalityLevel int
}

// TranslationCache is the interface for caching engine responses.
type TranslationCache interface {
	Get(key string) (string, bool)
	Set(key string, value string) error
}

// Logger is the interface for the append-only translation log.
type Logger interface {
	Append(rec LogRecord) error
}

// TranslatorOption is a functional option for configuring the Translator.
type TranslatorOption func(*Translator)

// WithReviewer enables the LLM review pass.
func WithReviewer(r ReviewService) TranslatorOption {
	return func(t *Translator) {
		t.reviewer = r
	}
}

// WithCache sets the engine-response cache.
func WithCache(cache TranslationCache) TranslatorOption {
	return func(t *Translator) {
		t.cache = cache
	}
}

// WithLogger sets the translation log.
func WithLogger(l Logger) TranslatorOption {
	return func(t *Translator) {
		t.logger = l
	}
}

// WithPreservedTerms sets the brand vocabulary protected across the
// round trip.
func WithPreservedTerms(terms []string) TranslatorOption {
	return func(t *Translator) {
		t.terms = terms
	}
}

// WithDetector overrides the source-language detector used when a
// request asks for "auto".
func WithDetector(detect func(text string) string) TranslatorOption {
	return func(t *Translator) {
		t.detect = detect
	}
}

// NewTranslator creates a Translator backed by the given provider.
func NewTranslator(provider Provider, opts ...TranslatorOption) *Translator {
	t := &Translator{provider: provider, detect: DetectSourceLang}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// PreservedTerms returns the protected brand vocabulary.
func (t *Translator) PreservedTerms() []string {
	return t.terms
}

// Translate runs one submission through the pipeline.
//
// The returned Result is displayable even on failure: when the engine
// call fails, Result.Text carries the error-marked string, Confidence
// is zero and the error is returned alongside. Review and logging
// failures never fail the call; they surface as notes and advisories.
func (t *Translator) Translate(ctx context.Context, req Request) (*Result, error) {
	start := time.Now()

	text := strings.TrimSpace(req.Text)
	if text == "" {
		return nil, &TranslationError{Message: "empty input: nothing to translate"}
	}

	src := req.SourceLang
	if src == "" || src == AutoLang {
		src = t.detect(text)
	}
	tgt := NormalizeTag(req.TargetLang)

	pattern := PatternFor(tgt)
	mode := req.Mode
	if mode == "" || mode == ModeModernColloquial {
		mode = pattern.Mode
	}
	script := pattern.Script
	if script == ScriptMixed {
		script = ""
	}

	joined := JoinLines(text)
	tagged := TagPreservedTerms(joined, t.terms)
	enhanced := EnhanceInput(tagged, tgt)

	res := &Result{
		RequestID:  uuid.NewString(),
		Advisories: SensitivityWarnings(text),
	}

	var raw string
	key := CacheKey(HashText(enhanced), tgt, mode)
	if t.cache != nil {
		if cached, ok := t.cache.Get(key); ok {
			raw = cached
			res.Cached = true
		}
	}

	if !res.Cached {
		var err error
		raw, err = t.provider.Translate(ctx, ProviderRequest{
			Input:        enhanced,
			SourceLang:   src,
			TargetLang:   tgt,
			Mode:         mode,
			Gender:       req.Gender,
			OutputScript: script,
		})
		if err != nil {
			res.Text = FailureText(err)
			res.Confidence = 0.0
			res.Elapsed = time.Since(start)
			return res, err
		}
		if t.cache != nil {
			_ = t.cache.Set(key, raw) // Ignore cache set errors
		}
	}

	res.RawText = raw

	cleaned := UntagPreservedTerms(raw)
	cleaned = RestoreLines(cleaned, text)
	cleaned = CleanInstructionLeaks(cleaned)
	cleaned = CollapseBrandBrackets(cleaned)
	cleaned = TidyWhitespace(cleaned)
	cleaned = ApplyPostFixes(cleaned, tgt)

	if t.reviewer != nil {
		reviewed, note := t.reviewer.Review(ctx, ReviewRequest{
			Original:       text,
			Candidate:      cleaned,
			TargetLang:     tgt,
			Mode:           mode,
			ContextType:    req.ContextType,
			Audience:       req.Audience,
			FormalityLevel: req.FormalityLevel,
		})
		if reviewed != "" {
			cleaned = reviewed
		}
		res.Reviewed = true
		res.ReviewNote = note
	}

	res.Text = cleaned
	res.Flags, res.Confidence = AnalyzeQuality(text, cleaned, src, tgt)

	if t.logger != nil {
		if err := t.logger.Append(LogRecord{
			SourceLang: src,
			TargetLang: tgt,
			Input:      text,
			Output:     cleaned,
			Timestamp:  time.Now(),
		}); err != nil {
			res.Advisories = append(res.Advisories, "translation log not updated: "+err.Error())
		}
	}

	res.Elapsed = time.Since(start)
	return res, nil
}
