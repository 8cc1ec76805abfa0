package review

import (
	"fmt"
	"strings"

	"github.com/frndlabs/gobhasha"
)

// langInstructions describes the expected script and mixing style per
// target language.
var langInstructions = map[string]string{
	"hi-IN": "Hindi with Roman script (Hinglish) and English code-mixing. Example: 'weekend ON ho gaya hai'",
	"ta-IN": "Tamil script with selective English words preserved. Example: 'Saturday – weekend OFFICIALLY ON!'",
	"te-IN": "Telugu with Roman script and English code-mixing. Example: 'weekend officially ON lo undhi'",
	"ml-IN": "Malayalam script with simple English terms preserved where natural",
	"kn-IN": "Kannada script with simple English terms preserved where natural",
	"or-IN": "Odia script with simple English terms preserved where natural",
}

var modeInstructions = map[gobhasha.StyleMode]string{
	gobhasha.ModeModernColloquial:  "modern, casual, conversational style",
	gobhasha.ModeFormal:            "formal, professional, respectful tone",
	gobhasha.ModeClassicColloquial: "literal, word-for-word accuracy prioritized",
	gobhasha.ModeCodeMixed:         "heavy English-local language mixing, trendy expressions",
}

var formalityDescriptions = map[int]string{
	1: "very casual, informal",
	2: "casual, friendly",
	3: "neutral, balanced",
	4: "respectful, semi-formal",
	5: "very formal, professional",
}

func buildPrompt(req gobhasha.ReviewRequest) string {
	langLine, ok := langInstructions[req.TargetLang]
	if !ok {
		langLine = "the target language"
	}
	modeLine, ok := modeInstructions[req.Mode]
	if !ok {
		modeLine = string(req.Mode)
	}
	formalityLine, ok := formalityDescriptions[req.FormalityLevel]
	if !ok {
		formalityLine = "balanced"
	}

	var context strings.Builder
	fmt.Fprintf(&context, "Language Target: %s\n", langLine)
	fmt.Fprintf(&context, "Style Mode: %s\n", modeLine)
	fmt.Fprintf(&context, "Formality Level: %s\n", formalityLine)
	if req.ContextType != "" {
		fmt.Fprintf(&context, "Message Context: %s\n", req.ContextType)
	}
	if req.Audience != "" {
		fmt.Fprintf(&context, "Audience: %s\n", req.Audience)
	}

	return fmt.Sprintf(`TASK: Fix and improve this translation following the quality patterns shown in ALL training examples.

ORIGINAL ENGLISH:
%s

TRANSLATION TO FIX:
%s

REQUIREMENTS:
%s
%s

CRITICAL RULES:
1. Follow the EXACT patterns shown in ALL training examples above (all 3 layers)
2. Fix any bracket issues around brand names (FRND}}]], Team FRND}}]] should be FRND, Team FRND)
3. Complete any incomplete sentences
4. Use the same mixing patterns as training examples
5. Keep exact same script (Roman/Native) and formality level
6. Preserve all emojis and formatting
7. Apply festival/holiday context if relevant
8. Apply WhatsApp channel context if relevant
9. Apply meeting/live session context if relevant
10. DO NOT add explanations or comments
11. ONLY return the corrected translation text

CORRECTED TRANSLATION:`, req.Original, req.Candidate, context.String(), trainingExamples(req.TargetLang))
}

// trainingExamples returns the curated before/after pairs for the
// target language, grouped by campaign layer. Languages without a
// curated set get none.
func trainingExamples(targetLang string) string {
	switch gobhasha.BaseLang(targetLang) {
	case "hi":
		return hindiTraining
	case "ta":
		return tamilTraining
	case "te":
		return teluguTraining
	}
	return ""
}

const hindiTraining = `TRAINING EXAMPLES (follow these patterns exactly):

LAYER 1 - Meeting/Live patterns:
English: "We're LIVE! Join now!"
Quality Hindi: "Hum LIVE hain! Abhi join karo!"

English: "Don't miss it!"
Quality Hindi: "Miss mat karna!"

LAYER 2 - WhatsApp Channel patterns:
English: "Join our new WhatsApp Channel"
Quality Hindi: "Naya WhatsApp Channel join karo"

English: "Tired of small earnings? Let's fix that"
Quality Hindi: "Kam earnings se thak gaye hoge na? Chinta mat karo"

LAYER 3 - Festival patterns:
English: "Gift Your Bhai ₹1000 Hamper"
Quality Hindi: "Apne Bhai ko do ₹1000 ka Hamper"

English: "Just by Being Online earn real money"
Quality Hindi: "Sirf Online aakar kamao real money"

English: "Tonight's the Night! Why wait?"
Quality Hindi: "Aaj ki raat hai khaas! Toh phir rukna kyu?"`

const tamilTraining = `TRAINING EXAMPLES (follow these patterns exactly):

LAYER 1 - Meeting/Live patterns:
English: "We're LIVE! Join now!"
Quality Tamil: "நாங்க LIVE ஆ இருக்கோம்! இப்போவே join பண்ணுங்க!"

English: "Really helpful session"
Quality Tamil: "session definitely உங்களுக்கு help ஆகும்!"

LAYER 2 - WhatsApp Channel patterns:
English: "New here? You're not alone"
Quality Tamil: "இது உங்க first time-a? நீங்கள் தனியா இல்ல"

LAYER 3 - Festival patterns:
English: "Just by Being Online earn real money"
Quality Tamil: "FRND-ல Onlineல இருந்தாலே போதும் நேரடி பணம் சேரும்"

English: "Make this Rakhi extra special"
Quality Tamil: "இந்த Rakhi-யை Special-aa ஆக்குங்க"`

const teluguTraining = `TRAINING EXAMPLES (follow these patterns exactly):

LAYER 1 - Meeting/Live patterns:
English: "We're LIVE! Join now!"
Quality Telugu: "Manam LIVE lo unnam! Ipude join avvandi!"

LAYER 2 - WhatsApp Channel patterns:
English: "New here?"
Quality Telugu: "App ki new ah?"

LAYER 3 - Festival patterns:
English: "Gift Your Bhai ₹1000 Hamper"
Quality Telugu: "మీ బ్రదర్ కి Gift చేయొచ్చు ₹1000 హ్యాంపర్"`
