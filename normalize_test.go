package gobhasha

import (
	"os"
	"path/filepath"
	"testing"
)

func TestJoinLines(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "single line",
			input: "Hello team",
			want:  "Hello team",
		},
		{
			name:  "two lines",
			input: "We're LIVE!\nJoin now!",
			want:  "We're LIVE! <LINEBREAK> Join now!",
		},
		{
			name:  "blank lines dropped",
			input: "First\n\n\n  \nSecond",
			want:  "First <LINEBREAK> Second",
		},
		{
			name:  "lines trimmed",
			input: "  padded  \n\ttabbed\t",
			want:  "padded <LINEBREAK> tabbed",
		},
		{
			name:  "all blank",
			input: "  \n \n",
			want:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := JoinLines(tt.input); got != tt.want {
				t.Errorf("JoinLines(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestTagPreservedTerms(t *testing.T) {
	terms := []string{"FRND", "Team FRND"}

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "whole word tagged",
			input: "Join the FRND app",
			want:  "Join the [[[FRND]]] app",
		},
		{
			name:  "embedded occurrence untouched",
			input: "True FRNDship lasts",
			want:  "True FRNDship lasts",
		},
		{
			name:  "case-insensitive, canonical casing wins",
			input: "join frnd now",
			want:  "join [[[FRND]]] now",
		},
		{
			name:  "no terms present",
			input: "Hello world",
			want:  "Hello world",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := TagPreservedTerms(tt.input, terms); got != tt.want {
				t.Errorf("TagPreservedTerms(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestTagPreservedTerms_NoTerms(t *testing.T) {
	if got := TagPreservedTerms("FRND rocks", nil); got != "FRND rocks" {
		t.Errorf("Expected input unchanged with no terms, got %q", got)
	}
}

func TestUntagPreservedTerms(t *testing.T) {
	in := "[[[FRND]]] app mein [[[Team FRND]]] se milo"
	want := "FRND app mein Team FRND se milo"
	if got := UntagPreservedTerms(in); got != want {
		t.Errorf("UntagPreservedTerms = %q, want %q", got, want)
	}
}

func TestTagUntagRoundTrip(t *testing.T) {
	input := "FRND pe aao, frnd ke saath raho"
	tagged := TagPreservedTerms(input, []string{"FRND"})
	got := UntagPreservedTerms(tagged)
	want := "FRND pe aao, FRND ke saath raho"
	if got != want {
		t.Errorf("Round trip = %q, want %q", got, want)
	}
}

func TestLoadPreservedTerms(t *testing.T) {
	path := filepath.Join(t.TempDir(), "terms.txt")
	content := "FRND\n\nTeam FRND\n  Yellow Roses  \n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("Failed to write terms file: %v", err)
	}

	terms, err := LoadPreservedTerms(path)
	if err != nil {
		t.Fatalf("LoadPreservedTerms failed: %v", err)
	}
	want := []string{"FRND", "Team FRND", "Yellow Roses"}
	if len(terms) != len(want) {
		t.Fatalf("Expected %d terms, got %d: %v", len(want), len(terms), terms)
	}
	for i := range want {
		if terms[i] != want[i] {
			t.Errorf("terms[%d] = %q, want %q", i, terms[i], want[i])
		}
	}
}

func TestLoadPreservedTerms_MissingFile(t *testing.T) {
	terms, err := LoadPreservedTerms(filepath.Join(t.TempDir(), "absent.txt"))
	if err != nil {
		t.Fatalf("Missing file should not be an error: %v", err)
	}
	if terms != nil {
		t.Errorf("Expected nil terms for missing file, got %v", terms)
	}
}
