// Command gobhasha translates promotional messages into Indian languages.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/frndlabs/gobhasha"
	"github.com/frndlabs/gobhasha/cache"
	"github.com/frndlabs/gobhasha/provider"
	"github.com/frndlabs/gobhasha/review"
	"github.com/frndlabs/gobhasha/server"
	"github.com/frndlabs/gobhasha/translog"
)

// Build-time variables (can be overridden with ldflags)
var (
	version   = gobhasha.Version
	commit    = gobhasha.GitCommit
	buildDate = gobhasha.BuildDate
)

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("gobhasha", flag.ContinueOnError)
	fs.SetOutput(stderr)

	// Flags
	targetLang := fs.String("to", "", "Target language tag (e.g., hi-IN, ta-IN) or name (e.g., Hindi)")
	sourceLang := fs.String("from", "en-IN", "Source language tag, or 'auto' to detect")
	mode := fs.String("mode", "", "Style mode: modern-colloquial, formal, classic-colloquial, code-mixed")
	gender := fs.String("gender", "Female", "Speaker gender hint: Male or Female")
	contextType := fs.String("context", "", "Message context (e.g., 'Marketing/Promotional')")
	formality := fs.Int("formality", 3, "Formality level 1 (very casual) to 5 (very formal)")
	output := fs.String("output", "", "Output file (default: stdout)")
	outputShort := fs.String("o", "", "Output file (short for --output)")
	apiKey := fs.String("api-key", "", "Sarvam API key (default: SARVAM_API_KEY env)")
	termsPath := fs.String("terms", "", "File with preserved terms, one per line")
	logPath := fs.String("log", "", "CSV translation log path (disabled when empty)")
	withReview := fs.Bool("review", false, "Run the LLM review pass (requires OPENAI_API_KEY)")
	cacheTTL := fs.Duration("cache-ttl", 0, "In-memory cache TTL (0 disables caching)")
	serve := fs.Bool("serve", false, "Run the HTTP API server")
	configPath := fs.String("config", "", "Server config file (YAML)")
	jsonOutput := fs.Bool("json", false, "Output result as JSON")
	showVersion := fs.Bool("version", false, "Show version")
	quiet := fs.Bool("quiet", false, "Suppress progress output")

	if err := fs.Parse(args); err != nil {
		return err
	}

	if *showVersion {
		fmt.Fprintf(stdout, "%s %s\n", gobhasha.Name, version)
		if commit != "unknown" && commit != "" {
			fmt.Fprintf(stdout, "  commit:  %s\n", commit)
		}
		if buildDate != "unknown" && buildDate != "" {
			fmt.Fprintf(stdout, "  built:   %s\n", buildDate)
		}
		return nil
	}

	if *serve {
		return runServe(*configPath, stderr)
	}

	// Handle -o alias for --output
	if *outputShort != "" && *output == "" {
		*output = *outputShort
	}

	if *targetLang == "" {
		fs.Usage()
		return fmt.Errorf("--to is required")
	}
	target := resolveLang(*targetLang)

	// Get input
	var text string
	if fs.NArg() == 0 {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return fmt.Errorf("reading stdin: %w", err)
		}
		text = string(data)
	} else {
		data, err := os.ReadFile(fs.Arg(0)) // #nosec G304 - CLI tool reads user-specified files
		if err != nil {
			return fmt.Errorf("reading file: %w", err)
		}
		text = string(data)
	}

	// Get API key
	key := *apiKey
	if key == "" {
		key = os.Getenv("SARVAM_API_KEY")
	}
	if key == "" {
		return fmt.Errorf("Sarvam API key required (--api-key or SARVAM_API_KEY env)")
	}

	p := provider.NewSarvamProvider(provider.SarvamConfig{APIKey: key})

	var opts []gobhasha.TranslatorOption

	if *termsPath != "" {
		terms, err := gobhasha.LoadPreservedTerms(*termsPath)
		if err != nil {
			return fmt.Errorf("loading preserved terms: %w", err)
		}
		opts = append(opts, gobhasha.WithPreservedTerms(terms))
	}

	if *logPath != "" {
		opts = append(opts, gobhasha.WithLogger(translog.NewCSVLogger(*logPath)))
	}

	if *cacheTTL > 0 {
		opts = append(opts, gobhasha.WithCache(cache.NewMemoryCache(*cacheTTL)))
	}

	if *withReview {
		openaiKey := os.Getenv("OPENAI_API_KEY")
		if openaiKey == "" {
			return fmt.Errorf("--review requires OPENAI_API_KEY env")
		}
		opts = append(opts, gobhasha.WithReviewer(review.NewReviewer(review.Config{APIKey: openaiKey})))
	}

	translator := gobhasha.NewTranslator(p, opts...)

	if !*quiet {
		fmt.Fprintf(stderr, "Translating to %s...\n", target)
	}

	result, err := translator.Translate(context.Background(), gobhasha.Request{
		SourceLang:     *sourceLang,
		TargetLang:     target,
		Text:           text,
		Mode:           gobhasha.StyleMode(*mode),
		Gender:         gobhasha.SpeakerGender(*gender),
		ContextType:    *contextType,
		FormalityLevel: *formality,
	})
	if err != nil {
		if result != nil {
			// Engine failures still render the marked error string.
			fmt.Fprintln(stdout, result.Text)
		}
		return fmt.Errorf("translation failed: %w", err)
	}

	var out io.Writer = stdout
	if *output != "" {
		f, err := os.Create(*output)
		if err != nil {
			return fmt.Errorf("creating output file: %w", err)
		}
		defer f.Close()
		out = f
	}

	if *jsonOutput {
		return outputJSON(out, result)
	}

	fmt.Fprintln(out, result.Text)

	if !*quiet {
		fmt.Fprintf(stderr, "\nDone in %v\n", result.Elapsed.Round(time.Millisecond))
		fmt.Fprintf(stderr, "  Confidence: %.2f\n", result.Confidence)
		for _, warn := range result.Flags {
			fmt.Fprintf(stderr, "  Flag:       %s\n", warn)
		}
		for _, adv := range result.Advisories {
			fmt.Fprintf(stderr, "  Advisory:   %s\n", adv)
		}
		if result.Reviewed && result.ReviewNote != "" {
			fmt.Fprintf(stderr, "  Review:     %s\n", result.ReviewNote)
		}
	}

	return nil
}

// resolveLang accepts either a language tag or a display name.
func resolveLang(s string) string {
	return gobhasha.TagForName(s)
}

func runServe(configPath string, stderr io.Writer) error {
	cfg, err := server.LoadConfig(configPath)
	if err != nil {
		return err
	}

	srv, err := server.New(cfg)
	if err != nil {
		return err
	}

	fmt.Fprintf(stderr, "Listening on %s\n", cfg.ListenAddr)
	return http.ListenAndServe(cfg.ListenAddr, srv)
}

func outputJSON(out io.Writer, result *gobhasha.Result) error {
	type jsonResult struct {
		RequestID  string   `json:"request_id"`
		Text       string   `json:"text"`
		RawText    string   `json:"raw_text"`
		Confidence float64  `json:"confidence"`
		Flags      []string `json:"flags,omitempty"`
		Advisories []string `json:"advisories,omitempty"`
		Reviewed   bool     `json:"reviewed"`
		ReviewNote string   `json:"review_note,omitempty"`
		Cached     bool     `json:"cached"`
		ElapsedMS  int64    `json:"elapsed_ms"`
	}

	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(jsonResult{
		RequestID:  result.RequestID,
		Text:       result.Text,
		RawText:    result.RawText,
		Confidence: result.Confidence,
		Flags:      result.Flags,
		Advisories: result.Advisories,
		Reviewed:   result.Reviewed,
		ReviewNote: result.ReviewNote,
		Cached:     result.Cached,
		ElapsedMS:  result.Elapsed.Milliseconds(),
	})
}
