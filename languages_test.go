package gobhasha

import "testing"

func TestPatternFor(t *testing.T) {
	tests := []struct {
		tag        string
		wantScript ScriptPreference
		wantMode   StyleMode
	}{
		{"hi-IN", ScriptRoman, ModeCodeMixed},
		{"te-IN", ScriptRoman, ModeCodeMixed},
		{"ta-IN", ScriptMixed, ModeModernColloquial},
		{"ml-IN", ScriptFullyNative, ModeFormal},
		{"kn-IN", ScriptFullyNative, ModeFormal},
		{"bn-IN", ScriptRoman, ModeModernColloquial}, // default
		{"xx-YY", ScriptRoman, ModeModernColloquial}, // default
	}

	for _, tt := range tests {
		t.Run(tt.tag, func(t *testing.T) {
			p := PatternFor(tt.tag)
			if p.Script != tt.wantScript {
				t.Errorf("Script = %q, want %q", p.Script, tt.wantScript)
			}
			if p.Mode != tt.wantMode {
				t.Errorf("Mode = %q, want %q", p.Mode, tt.wantMode)
			}
		})
	}
}

func TestTagForName(t *testing.T) {
	if got := TagForName("Hindi"); got != "hi-IN" {
		t.Errorf("TagForName(Hindi) = %q", got)
	}
	// Unknown names pass through so callers can hand tags directly.
	if got := TagForName("hi-IN"); got != "hi-IN" {
		t.Errorf("TagForName(hi-IN) = %q", got)
	}
}

func TestNameForTag(t *testing.T) {
	if got := NameForTag("ta-IN"); got != "Tamil" {
		t.Errorf("NameForTag(ta-IN) = %q", got)
	}
}

func TestBaseLang(t *testing.T) {
	tests := []struct {
		tag  string
		want string
	}{
		{"hi-IN", "hi"},
		{"en-IN", "en"},
		{"ta", "ta"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := BaseLang(tt.tag); got != tt.want {
			t.Errorf("BaseLang(%q) = %q, want %q", tt.tag, got, tt.want)
		}
	}
}

func TestProfileFor(t *testing.T) {
	if profile, ok := ProfileFor("hi-IN"); !ok || profile != MixingHeavy {
		t.Errorf("ProfileFor(hi-IN) = %q, %v", profile, ok)
	}
	if profile, ok := ProfileFor("ta-IN"); !ok || profile != MixingModerate {
		t.Errorf("ProfileFor(ta-IN) = %q, %v", profile, ok)
	}
	if _, ok := ProfileFor("bn-IN"); ok {
		t.Error("ProfileFor(bn-IN) should report no profile")
	}
}
