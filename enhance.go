package gobhasha

import (
	"fmt"
	"regexp"
	"strings"
)

// ContextCategory is the detected intent of a message. Exactly one
// category wins per message; detection is a priority list, not a
// multi-label classifier.
type ContextCategory string

const (
	ContextRakhi       ContextCategory = "rakhi-festival"
	ContextHoliday     ContextCategory = "holiday-celebration"
	ContextGift        ContextCategory = "gift-giving"
	ContextCompetition ContextCategory = "festival-competition"
	ContextTimePromo   ContextCategory = "time-sensitive-promo"
	ContextWhatsApp    ContextCategory = "whatsapp-promotion"
	ContextMeeting     ContextCategory = "meeting-live"
	ContextEarnings    ContextCategory = "earnings-focused"
	ContextOnboarding  ContextCategory = "welcome-onboarding"
	ContextAppFeatures ContextCategory = "app-features"
	ContextPrivacy     ContextCategory = "privacy-safety"
	ContextGeneral     ContextCategory = "general"
)

// contextKeywords are checked in this exact order; the first category
// with a keyword hit wins.
var contextKeywords = []struct {
	category ContextCategory
	words    []string
}{
	{ContextRakhi, []string{"rakhi", "raksha bandhan", "brother", "bhai"}},
	{ContextHoliday, []string{"holiday", "weekend", "vacation"}},
	{ContextGift, []string{"gift", "hamper", "surprise"}},
	{ContextCompetition, []string{"challenge", "top earner", "rank", "spotlight"}},
	{ContextTimePromo, []string{"tonight", "peak time", "4am", "bonus"}},
	{ContextWhatsApp, []string{"whatsapp channel", "channel"}},
	{ContextMeeting, []string{"meeting", "live", "session"}},
	{ContextEarnings, []string{"earn", "₹", "money", "income", "salary"}},
	{ContextOnboarding, []string{"welcome", "new here", "first time"}},
	{ContextAppFeatures, []string{"tap here", "click", "go online", "badge", "level up"}},
	{ContextPrivacy, []string{"private", "privacy", "safe", "secure"}},
}

// DetectContext classifies a message into exactly one context category.
func DetectContext(text string) ContextCategory {
	lower := strings.ToLower(text)
	for _, entry := range contextKeywords {
		for _, word := range entry.words {
			if strings.Contains(lower, word) {
				return entry.category
			}
		}
	}
	return ContextGeneral
}

// ruleCategoriesFor maps a detected category to the rule groups applied
// for it. Exhaustive over ContextCategory so a new category cannot
// silently no-op.
func ruleCategoriesFor(category ContextCategory) []ContextCategory {
	switch category {
	case ContextRakhi:
		return []ContextCategory{ContextRakhi}
	case ContextHoliday:
		return []ContextCategory{ContextHoliday}
	case ContextGift:
		return []ContextCategory{ContextGift}
	case ContextCompetition:
		return []ContextCategory{ContextCompetition}
	case ContextTimePromo:
		// Urgent promos borrow both the holiday and encouragement sets.
		return []ContextCategory{ContextHoliday, ContextCompetition}
	case ContextWhatsApp:
		return []ContextCategory{ContextWhatsApp}
	case ContextMeeting:
		return []ContextCategory{ContextMeeting}
	case ContextEarnings:
		return []ContextCategory{ContextEarnings}
	case ContextOnboarding, ContextGeneral:
		return []ContextCategory{ContextOnboarding}
	case ContextAppFeatures:
		return []ContextCategory{ContextAppFeatures}
	case ContextPrivacy:
		// Privacy messages rely on context hints only.
		return nil
	default:
		return nil
	}
}

// ApplyContextRules applies the phrase dictionary for the message's
// detected context and the target language, in table order. Absence of
// a rule set for the language or category is a no-op.
func ApplyContextRules(text, targetLang string) string {
	byCategory, ok := contextRules[BaseLang(targetLang)]
	if !ok {
		return text
	}
	for _, cat := range ruleCategoriesFor(DetectContext(text)) {
		for i := range byCategory[cat] {
			text = byCategory[cat][i].Apply(text)
		}
	}
	return text
}

// ContextHints builds the bracketed hint prefix sent to the engine for
// a message, or "" when no hint applies. The Output Restorer strips any
// hint text that leaks into the translation.
func ContextHints(text, targetLang string) string {
	lower := strings.ToLower(text)
	lang := BaseLang(targetLang)
	category := DetectContext(text)
	var hints []string

	switch category {
	case ContextRakhi:
		switch lang {
		case "hi":
			hints = append(hints, "Rakhi context - use 'apne bhai ko' and keep 'Raksha Bandhan' in English")
		case "ta":
			hints = append(hints, "Rakhi context - Tamil mixing with 'அண்ணன்/தம்பிக்கு' pattern")
		}
	case ContextHoliday:
		hints = append(hints, "Holiday context - keep casual excitement, use mixed patterns")
	case ContextGift:
		switch lang {
		case "hi":
			hints = append(hints, "Gift context - use 'sirf online aakar' pattern")
		case "ta":
			hints = append(hints, "Gift context - use 'போதும்/சேரும்' patterns")
		}
	case ContextCompetition:
		hints = append(hints, "Competition context - use encouraging, competitive language")
	case ContextTimePromo:
		hints = append(hints, "Urgent promo - use time pressure language, keep 'peak time' in English")
	case ContextWhatsApp:
		switch lang {
		case "hi":
			hints = append(hints, "WhatsApp Channel promotion - keep 'Channel' in English, use 'abhi join karo'")
		case "ta":
			hints = append(hints, "WhatsApp Channel promotion - Tamil mixing with 'join பண்ணுங்க' pattern")
		}
	case ContextEarnings:
		switch lang {
		case "hi":
			hints = append(hints, "earnings context - use 'kamai/kamao' patterns")
		case "ta":
			hints = append(hints, "earnings context - use Tamil-English mixing for money terms")
		}
	case ContextPrivacy:
		hints = append(hints, "privacy messaging - keep 'Privacy' and '100%' in English")
	}

	if strings.Contains(lower, "live") {
		hints = append(hints, "LIVE should stay in caps")
	}
	if strings.Contains(lower, "don't miss") {
		switch lang {
		case "hi":
			hints = append(hints, "miss mat karna pattern")
		case "ta":
			hints = append(hints, "miss பண்ணாதீங்க pattern")
		}
	}

	if len(hints) == 0 {
		return ""
	}
	return fmt.Sprintf("[Context: %s, Apply: %s] ", category, strings.Join(hints, ", "))
}

// EnhanceInput runs the full pre-translation enhancement: context-rule
// substitution followed by the hint prefix.
func EnhanceInput(text, targetLang string) string {
	enhanced := ApplyContextRules(text, targetLang)
	return ContextHints(enhanced, targetLang) + enhanced
}

var (
	liveCapsRE     = regexp.MustCompile(`(?i)\blive\b`)
	pmSpacingRE    = regexp.MustCompile(`(\d+)\s*PM`)
	rupeeSpacingRE = regexp.MustCompile(`₹\s*(\d+)`)
)

// ApplyPostFixes re-applies the training-derived phrase fixes for the
// target locale on the cleaned translation, then the formatting
// touch-ups observed in approved copy (LIVE in caps, tight ₹ and PM
// spacing, exclamation on join calls).
func ApplyPostFixes(text, targetLang string) string {
	for i := range postFixes[targetLang] {
		text = postFixes[targetLang][i].Apply(text)
	}

	text = liveCapsRE.ReplaceAllLiteralString(text, "LIVE")
	text = pmSpacingRE.ReplaceAllString(text, "$1 PM")
	text = rupeeSpacingRE.ReplaceAllString(text, "₹$1")

	if strings.Contains(strings.ToLower(text), "join") {
		trimmed := strings.TrimSpace(text)
		if !strings.HasSuffix(trimmed, "!") && !strings.HasSuffix(trimmed, "?") {
			text = trimmed + "!"
		}
	}
	return text
}
