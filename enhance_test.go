package gobhasha

import (
	"strings"
	"testing"
)

func TestDetectContext(t *testing.T) {
	tests := []struct {
		name string
		text string
		want ContextCategory
	}{
		{"rakhi", "Make this Rakhi extra special", ContextRakhi},
		{"holiday", "It's a holiday today!", ContextHoliday},
		{"gift", "Gift a hamper to your friends", ContextGift},
		{"competition", "The challenge is ON", ContextCompetition},
		{"time promo", "Tonight's the night, grab the bonus", ContextTimePromo},
		{"whatsapp", "Join our new WhatsApp Channel", ContextWhatsApp},
		{"meeting", "We're LIVE! Join the session", ContextMeeting},
		{"earnings", "Earn real money every day", ContextEarnings},
		{"onboarding", "Welcome to the app", ContextOnboarding},
		{"app features", "Tap here to go online", ContextAppFeatures},
		{"privacy", "Your number stays private", ContextPrivacy},
		{"general", "Good morning everyone", ContextGeneral},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DetectContext(tt.text); got != tt.want {
				t.Errorf("DetectContext(%q) = %q, want %q", tt.text, got, tt.want)
			}
		})
	}
}

func TestDetectContext_PriorityOrder(t *testing.T) {
	// Rakhi outranks everything, including LIVE and earnings keywords.
	text := "We're LIVE: earn money and gift your brother this Rakhi"
	if got := DetectContext(text); got != ContextRakhi {
		t.Errorf("Expected rakhi to win, got %q", got)
	}

	// Holiday outranks the later whatsapp category.
	text = "Weekend plans? Join the channel"
	if got := DetectContext(text); got != ContextHoliday {
		t.Errorf("Expected holiday to win, got %q", got)
	}
}

func TestApplyContextRules(t *testing.T) {
	// WhatsApp rule set for Hindi rewrites the join call.
	got := ApplyContextRules("WhatsApp Channel ready, join now", "hi-IN")
	if !strings.Contains(got, "abhi join karo") {
		t.Errorf("Expected 'abhi join karo', got %q", got)
	}
	if !strings.Contains(got, "WhatsApp Channel") {
		t.Errorf("Expected 'WhatsApp Channel' kept, got %q", got)
	}
}

func TestApplyContextRules_UnknownLanguageNoOp(t *testing.T) {
	text := "Join now for the session"
	if got := ApplyContextRules(text, "fr-FR"); got != text {
		t.Errorf("Expected no-op for unsupported language, got %q", got)
	}
}

func TestApplyContextRules_NoDoubleSubstitution(t *testing.T) {
	// "join" -> "join karo" must not reapply to its own output.
	once := ApplyContextRules("Please join the live session", "hi-IN")
	if strings.Contains(once, "karo karo") {
		t.Errorf("Rule output fed back into itself: %q", once)
	}
}

func TestContextHints(t *testing.T) {
	hint := ContextHints("We're LIVE! Don't miss it", "hi-IN")
	if !strings.HasPrefix(hint, "[Context: ") {
		t.Fatalf("Expected bracketed hint prefix, got %q", hint)
	}
	if !strings.Contains(hint, "LIVE should stay in caps") {
		t.Errorf("Expected LIVE hint, got %q", hint)
	}
	if !strings.Contains(hint, "miss mat karna pattern") {
		t.Errorf("Expected don't-miss hint for Hindi, got %q", hint)
	}
	if !strings.HasSuffix(hint, "] ") {
		t.Errorf("Hint should end with a bracket and space, got %q", hint)
	}
}

func TestContextHints_NoneApplies(t *testing.T) {
	if hint := ContextHints("Good morning everyone", "hi-IN"); hint != "" {
		t.Errorf("Expected no hint, got %q", hint)
	}
}

func TestEnhanceInput_PrefixesHint(t *testing.T) {
	got := EnhanceInput("We're LIVE now", "hi-IN")
	if !strings.HasPrefix(got, "[Context: ") {
		t.Errorf("Expected hint prefix, got %q", got)
	}
	if !strings.Contains(got, "LIVE now") {
		t.Errorf("Expected enhanced text after hint, got %q", got)
	}
}

func TestApplyPostFixes(t *testing.T) {
	tests := []struct {
		name  string
		input string
		lang  string
		want  string
	}{
		{
			name:  "locale phrase fix",
			input: "We're LIVE abhi",
			lang:  "hi-IN",
			want:  "Hum LIVE hain abhi",
		},
		{
			name:  "live forced to caps",
			input: "Hum live hain",
			lang:  "hi-IN",
			want:  "Hum LIVE hain",
		},
		{
			name:  "pm spacing",
			input: "Aaj raat 9PM baje",
			lang:  "hi-IN",
			want:  "Aaj raat 9 PM baje",
		},
		{
			name:  "rupee spacing",
			input: "₹ 500 jeeto aaj",
			lang:  "hi-IN",
			want:  "₹500 jeeto aaj",
		},
		{
			name:  "join gets exclamation",
			input: "Abhi join karo",
			lang:  "hi-IN",
			want:  "Abhi join karo!",
		},
		{
			name:  "join with question kept",
			input: "Join karoge kya?",
			lang:  "hi-IN",
			want:  "Join karoge kya?",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ApplyPostFixes(tt.input, tt.lang); got != tt.want {
				t.Errorf("ApplyPostFixes(%q, %q) = %q, want %q", tt.input, tt.lang, got, tt.want)
			}
		})
	}
}

func TestApplyPostFixes_UnknownLocaleStillTouchesFormat(t *testing.T) {
	got := ApplyPostFixes("Hum live hain", "fr-FR")
	if got != "Hum LIVE hain" {
		t.Errorf("Expected format touch-ups without locale rules, got %q", got)
	}
}
