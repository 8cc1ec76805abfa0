package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestRun_Version(t *testing.T) {
	var stdout, stderr bytes.Buffer
	err := run([]string{"--version"}, &stdout, &stderr)

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !strings.Contains(stdout.String(), "gobhasha") {
		t.Errorf("expected version output, got: %s", stdout.String())
	}
}

func TestRun_MissingTarget(t *testing.T) {
	var stdout, stderr bytes.Buffer
	err := run([]string{}, &stdout, &stderr)

	if err == nil {
		t.Fatal("expected error for missing --to")
	}

	if !strings.Contains(err.Error(), "--to is required") {
		t.Errorf("expected '--to is required' error, got: %v", err)
	}
}

func TestRun_MissingAPIKey(t *testing.T) {
	t.Setenv("SARVAM_API_KEY", "")

	tmpDir := t.TempDir()
	inputFile := filepath.Join(tmpDir, "msg.txt")
	os.WriteFile(inputFile, []byte("Hello team"), 0644)

	var stdout, stderr bytes.Buffer
	err := run([]string{"--to", "hi-IN", inputFile}, &stdout, &stderr)

	if err == nil {
		t.Fatal("expected error for missing API key")
	}

	if !strings.Contains(err.Error(), "API key required") {
		t.Errorf("expected API key error, got: %v", err)
	}
}

func TestRun_UnreadableInput(t *testing.T) {
	var stdout, stderr bytes.Buffer
	err := run([]string{"--to", "hi-IN", "/nonexistent/input.txt"}, &stdout, &stderr)

	if err == nil {
		t.Fatal("expected error for missing input file")
	}
}

func TestResolveLang(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Hindi", "hi-IN"},
		{"hi-IN", "hi-IN"},
		{"Tamil", "ta-IN"},
		{"xx-YY", "xx-YY"},
	}

	for _, tt := range tests {
		if got := resolveLang(tt.in); got != tt.want {
			t.Errorf("resolveLang(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestRun_ReviewRequiresOpenAIKey(t *testing.T) {
	t.Setenv("SARVAM_API_KEY", "k")
	t.Setenv("OPENAI_API_KEY", "")

	tmpDir := t.TempDir()
	inputFile := filepath.Join(tmpDir, "msg.txt")
	os.WriteFile(inputFile, []byte("Hello team"), 0644)

	var stdout, stderr bytes.Buffer
	err := run([]string{"--to", "hi-IN", "--review", inputFile}, &stdout, &stderr)

	if err == nil {
		t.Fatal("expected error when --review is set without OPENAI_API_KEY")
	}
	if !strings.Contains(err.Error(), "OPENAI_API_KEY") {
		t.Errorf("expected OPENAI_API_KEY error, got: %v", err)
	}
}
