package gobhasha

import "regexp"

// PhraseRule is one (source phrase → preferred phrasing) substitution.
// Rules are applied case-insensitively in table order; phrases that
// start and end on word characters match whole words only.
type PhraseRule struct {
	From string
	To   string

	re *regexp.Regexp
}

// Apply performs the substitution on text.
func (r *PhraseRule) Apply(text string) string {
	return r.re.ReplaceAllLiteralString(text, r.To)
}

func compileRules(rules []PhraseRule) {
	isWord := func(b byte) bool {
		return b == '_' || (b >= '0' && b <= '9') || (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
	}
	for i := range rules {
		pat := regexp.QuoteMeta(rules[i].From)
		if len(rules[i].From) > 0 && isWord(rules[i].From[0]) && isWord(rules[i].From[len(rules[i].From)-1]) {
			pat = `\b` + pat + `\b`
		}
		rules[i].re = regexp.MustCompile(`(?i)` + pat)
	}
}

func init() {
	for _, byCategory := range contextRules {
		for _, rules := range byCategory {
			compileRules(rules)
		}
	}
	for _, rules := range postFixes {
		compileRules(rules)
	}
}

// contextRules holds the pre-translation phrase dictionaries, grouped
// by base language and detected message context. The pairs come from
// reviewed campaign copy; they bias the engine toward phrasing that has
// already passed human review.
var contextRules = map[string]map[ContextCategory][]PhraseRule{
	"hi": {
		ContextMeeting: {
			{From: "meeting", To: "meeting"}, {From: "join", To: "join karo"},
			{From: "live", To: "LIVE"}, {From: "tips", To: "tips"},
			{From: "call", To: "call"}, {From: "earnings", To: "earnings"},
			{From: "update", To: "update"}, {From: "session", To: "session"},
		},
		ContextWhatsApp: {
			{From: "WhatsApp Channel", To: "WhatsApp Channel"}, {From: "join now", To: "abhi join karo"},
			{From: "click to join", To: "click karke join karo"}, {From: "all tips", To: "saare tips"},
			{From: "pro tips", To: "pro tips"}, {From: "100% Private", To: "100% Private"},
			{From: "Number Privacy", To: "Number Privacy"},
		},
		ContextEarnings: {
			{From: "₹40K/month", To: "mahine ka ₹40K"}, {From: "big earnings", To: "achhi kamai"},
			{From: "earn smarter", To: "kamao smarter"}, {From: "small earnings", To: "kam earnings"},
			{From: "more money", To: "zyada kamaai"}, {From: "start earning", To: "kamai shuru karo"},
		},
		ContextOnboarding: {
			{From: "Hey!", To: "Hey!"}, {From: "Tired of", To: "thak gaye hoge na"},
			{From: "Let's fix that", To: "Chinta mat karo"}, {From: "ready to level up", To: "ready for level up"},
			{From: "You're not alone", To: "Don't worry, hum hai na"}, {From: "New here?", To: "Naye ho?"},
		},
		ContextAppFeatures: {
			{From: "audio & video calls", To: "audio & video calls"}, {From: "badge", To: "badge"},
			{From: "level up", To: "level up"}, {From: "go online", To: "online jao"},
			{From: "tap here", To: "tap karo"}, {From: "click here", To: "click karo"},
		},
		ContextRakhi: {
			{From: "Raksha Bandhan", To: "Raksha Bandhan"}, {From: "Rakhi", To: "Rakhi"},
			{From: "your brother", To: "apne bhai ko"}, {From: "Gift Your Bhai", To: "Apne Bhai ko do"},
			{From: "Protection", To: "Protection"}, {From: "₹1000 Hamper", To: "₹1000 ka Hamper"},
			{From: "₹1000 Gift", To: "₹1000 ka Gift"},
		},
		ContextHoliday: {
			{From: "Holiday", To: "Holiday"}, {From: "It's a holiday", To: "Aaj chhutti hai"},
			{From: "Holiday =", To: "Holiday ="}, {From: "time to earn", To: "kamaane ka time"},
			{From: "peak time", To: "peak time"}, {From: "long weekend", To: "lamba weekend"},
			{From: "Good Morning", To: "Good Morning"}, {From: "Happy Raksha Bandhan", To: "Happy Raksha Bandhan"},
		},
		ContextGift: {
			{From: "Just by being online", To: "Sirf Online aakar"}, {From: "earn real money", To: "kamao real money"},
			{From: "in your wallet", To: "apne wallet mein"}, {From: "More time = More", To: "Jitna zyada time = Utne zyada"},
			{From: "Make this Rakhi extra special", To: "Iss Rakhi ko banao extra special"},
			{From: "Your time = Your earnings", To: "Tumhara time = Tumhari earning"},
		},
		ContextCompetition: {
			{From: "Tonight's the Night", To: "Aaj ki raat hai khaas"}, {From: "Beautiful!", To: "Beautiful!"},
			{From: "Don't miss out", To: "Miss mat karo"}, {From: "Why wait?", To: "Toh phir rukna kyu?"},
			{From: "Go online now", To: "Abhi online jao"}, {From: "Let the spotlight find YOU", To: "spotlight aap tak khud aa jaayegi"},
		},
	},
	"ta": {
		ContextMeeting: {
			{From: "meeting", To: "meeting"}, {From: "live", To: "LIVE"},
			{From: "tips", To: "tips"}, {From: "call", To: "call"},
			{From: "join", To: "join பண்ணுங்க"}, {From: "miss", To: "miss பண்ணாதீங்க"},
			{From: "update", To: "update"}, {From: "session", To: "session"},
		},
		ContextWhatsApp: {
			{From: "WhatsApp Channel", To: "WhatsApp Channel"}, {From: "join now", To: "இப்போவே join பண்ணுங்க"},
			{From: "click to join", To: "Click பண்ணி join பண்ணுங்க"}, {From: "all tips", To: "எல்லா tips-உம்"},
			{From: "pro tips", To: "pro tips"}, {From: "100% Private", To: "100% Private & Safe"},
			{From: "Number Privacy", To: "Number Privacy assured"},
		},
		ContextEarnings: {
			{From: "₹40K/month", To: "₹40K/month"}, {From: "big earnings", To: "பெரிய income"},
			{From: "earn smarter", To: "smarter earn பண்ண"}, {From: "small earnings", To: "கம்மி earnings"},
			{From: "more money", To: "more money"}, {From: "start earning", To: "earn பண்ண ஆரம்பிக்கலாம்"},
		},
		ContextOnboarding: {
			{From: "Hey!", To: "Hey!"}, {From: "Tired of", To: "bore ஆகிட்டீங்களா"},
			{From: "Let's fix that", To: "இப்போ fix பண்ணலாம்"}, {From: "ready to level up", To: "next level போக தயாரா"},
			{From: "You're not alone", To: "நீங்கள் தனியா இல்ல"}, {From: "New here?", To: "இது உங்க first time-a?"},
		},
		ContextAppFeatures: {
			{From: "audio & video calls", To: "Audio & Video calls"}, {From: "badge", To: "Badge"},
			{From: "level up", To: "level up"}, {From: "go online", To: "Go Online போங்க"},
			{From: "tap here", To: "இங்கே tap பண்ணுங்க"},
		},
		ContextRakhi: {
			{From: "Raksha Bandhan", To: "Raksha Bandhan"}, {From: "Rakhi", To: "Rakhi"},
			{From: "your brother", To: "உங்க அண்ணன்/தம்பிக்கு"}, {From: "₹1000 Gift", To: "₹1000 Gift"},
			{From: "₹1000 Hamper", To: "₹1000 Gift"}, {From: "Protection", To: "பாதுகாப்பு"},
		},
		ContextHoliday: {
			{From: "Holiday", To: "Holiday"}, {From: "It's a holiday", To: "இன்று விடுமுறை"},
			{From: "Holiday =", To: "Holiday ="}, {From: "time to earn", To: "earn பண்ண நேரம்"},
			{From: "peak time", To: "Peak Time"}, {From: "Good Morning", To: "Good Morning"},
			{From: "Happy Raksha Bandhan", To: "Happy Raksha Bandhan"},
		},
		ContextGift: {
			{From: "Just by being online", To: "FRND-ல Onlineல இருந்தாலே போதும்"}, {From: "earn real money", To: "நேரடி பணம் சேரும்"},
			{From: "in your wallet", To: "Wallet-ல"}, {From: "More time = More", To: "அதிக நேரம் = அதிக"},
			{From: "Make this Rakhi extra special", To: "இந்த Rakhi-யை Special-aa ஆக்குங்க"},
			{From: "Your time = Your earnings", To: "உங்க நேரம் = உங்க சம்பாதிப்பு"},
		},
		ContextCompetition: {
			{From: "Tonight's the Night", To: "இன்று இரவு தான் உங்களுக்கு வாய்ப்பு"}, {From: "Beautiful!", To: "Beautiful!"},
			{From: "Don't miss out", To: "Miss பண்ணாதீங்க"}, {From: "Why wait?", To: "Why Wait?"},
			{From: "Go online now", To: "இப்போதே Online போங்க"}, {From: "Let the spotlight find YOU", To: "உங்களை spotlight find பண்ண விடுங்க"},
		},
	},
	"te": {
		ContextMeeting: {
			{From: "meeting", To: "meeting"}, {From: "live", To: "LIVE"},
			{From: "tips", To: "tips"}, {From: "call", To: "call"},
			{From: "join", To: "join avvandi"}, {From: "miss", To: "miss avvakandi"},
			{From: "update", To: "update"},
		},
		ContextWhatsApp: {
			{From: "WhatsApp Channel", To: "WhatsApp Channel"}, {From: "join now", To: "ipude join avvandi"},
			{From: "click to join", To: "Click chesi join avvandi"}, {From: "all tips", To: "All tips"},
			{From: "100% Private", To: "100% Private"},
		},
		ContextEarnings: {
			{From: "₹40K/month", To: "₹40K/month"}, {From: "start earning", To: "earning start cheyyali"},
			{From: "level up", To: "level up"},
		},
		ContextOnboarding: {
			{From: "New here?", To: "App ki new ah?"}, {From: "ready to level up", To: "ready to level up?"},
			{From: "few days", To: "Few days aiyayi kadha"},
		},
		ContextAppFeatures: {
			{From: "go online", To: "online vellandi"}, {From: "audio & video calls", To: "audio & video calls"},
			{From: "badge", To: "badge"},
		},
		ContextRakhi: {
			{From: "Raksha Bandhan", To: "Raksha Bandhan"}, {From: "your brother", To: "మీ బ్రదర్ కి"},
			{From: "₹1000 Hamper", To: "₹1000 హ్యాంపర్"}, {From: "Protection", To: "రక్షణ"},
		},
		ContextHoliday: {
			{From: "Holiday", To: "Holiday"}, {From: "It's a holiday", To: "ఇవాళ హాలిడే"},
			{From: "time to earn", To: "సంపాదించే సమయం"}, {From: "peak time", To: "Peak Time"},
		},
		ContextGift: {
			{From: "Just by being online", To: "FRND యాప్ లో ఆన్లైన్ ఉండడం ద్వారా"},
			{From: "earn real money", To: "నిజమైన డబ్బు సంపాదించుకోవచ్చు"},
			{From: "Your time = Your earnings", To: "మీ సమయం = మీ సంపాదన"},
		},
		ContextCompetition: {
			{From: "Don't miss out", To: "Miss avvakandi"}, {From: "Go online now", To: "ఇప్పుడే ఆన్లైన్ వెళ్ళండి"},
		},
	},
	"ml": {
		ContextMeeting: {
			{From: "meeting", To: "മീറ്റിംഗ്"}, {From: "live", To: "ലൈവ്"},
			{From: "tips", To: "ടിപ്പുകൾ"}, {From: "call", To: "കോൾ"},
			{From: "join", To: "ജോയിൻ ചെയ്യൂ"}, {From: "update", To: "അപ്ഡേറ്റ്"},
		},
		ContextWhatsApp: {
			{From: "WhatsApp Channel", To: "WhatsApp ചാനൽ"}, {From: "join now", To: "ഇപ്പോൾ ജോയിൻ ചെയ്യൂ"},
			{From: "click to join", To: "ജോയിൻ ചെയ്യാൻ ക്ലിക്ക് ചെയ്യൂ"}, {From: "all tips", To: "എല്ലാ ടിപ്പുകളും"},
			{From: "pro tips", To: "പ്രൊ ടിപ്പുകൾ"}, {From: "100% Private", To: "100% സ്വകാര്യവും സുരക്ഷിതവുമാണ്"},
		},
		ContextEarnings: {
			{From: "₹40K/month", To: "മാസം 40K"}, {From: "big earnings", To: "വലിയ വരുമാനം"},
			{From: "small earnings", To: "ചെറിയ വരുമാനം"}, {From: "start earning", To: "സമ്പാദിക്കാൻ ആരംഭിക്കാം"},
		},
		ContextOnboarding: {
			{From: "New here?", To: "പുതിയ ആളാണോ?"}, {From: "You're not alone", To: "നിങ്ങൾ ഒറ്റയ്ക്കല്ല"},
			{From: "ready to level up", To: "ലെവൽ അപ്പ് ചെയ്യണ്ടേ"},
		},
		ContextRakhi: {
			{From: "Raksha Bandhan", To: "രക്ഷാ ബന്ധൻ"}, {From: "your brother", To: "നിങ്ങളുടെ സഹോദരന്"},
			{From: "Protection", To: "പ്രൊട്ടക്ഷൻ"},
		},
		ContextHoliday: {
			{From: "Holiday", To: "ഹോളിഡേ"}, {From: "time to earn", To: "സമ്പാദിക്കാനുള്ള സമയം"},
			{From: "peak time", To: "പീക്ക് സമയം"},
		},
		ContextGift: {
			{From: "earn real money", To: "റിയൽ പണം സമ്പാദിക്കൂ"}, {From: "in your wallet", To: "നിങ്ങളുടെ വാലറ്റിൽ"},
		},
		ContextCompetition: {
			{From: "Don't miss out", To: "നഷ്ടപ്പെടുത്തരുത്"}, {From: "Go online now", To: "ഇപ്പോൾ ഓൺലൈനിൽ പോകൂ"},
		},
	},
	"kn": {
		ContextMeeting: {
			{From: "meeting", To: "ಮೀಟಿಂಗ್"}, {From: "live", To: "ಲೈವ್"},
			{From: "tips", To: "ಸಲಹೆಗಳು"}, {From: "call", To: "ಕರೆ"},
			{From: "join", To: "ಸೇರಿ"}, {From: "update", To: "ಅಪ್ಡೇಟ್"},
		},
		ContextWhatsApp: {
			{From: "WhatsApp Channel", To: "WhatsApp ಚಾನಲ್"}, {From: "join now", To: "ಈಗಲೇ ಸೇರಿ"},
			{From: "all tips", To: "ಎಲ್ಲಾ ಟಿಪ್ಸ್"}, {From: "pro tips", To: "ಪ್ರೊ ಟಿಪ್ ಗಳು"},
			{From: "100% Private", To: "100% ಪ್ರೈವೇಟ್"},
		},
		ContextEarnings: {
			{From: "₹40K/month", To: "ತಿಂಗಳಿಗೆ ₹40K"}, {From: "small earnings", To: "ಸಣ್ಣ ಗಳಿಕೆ"},
			{From: "start earning", To: "ಗಳಿಸಲು ಪ್ರಾರಂಭಿಸಿ"},
		},
		ContextOnboarding: {
			{From: "New here?", To: "ಇಲ್ಲಿ ಹೊಸಬರೇ?"}, {From: "You're not alone", To: "ನೀವು ಒಬ್ಬಂಟಿಯಲ್ಲ"},
			{From: "ready to level up", To: "ಮುಂದಿನ ಹಂತಕ್ಕೆ ಹೋಗಲು ಸಿದ್ಧರಿದ್ದೀರಾ"},
		},
		ContextRakhi: {
			{From: "Raksha Bandhan", To: "ರಕ್ಷಾ ಬಂಧನ"}, {From: "your brother", To: "ನಿಮ್ಮ ಸಹೋದರನಿಗೆ"},
			{From: "Protection", To: "ರಕ್ಷಣೆ"},
		},
		ContextHoliday: {
			{From: "Holiday", To: "ಹಾಲಿಡೇ"}, {From: "time to earn", To: "ಗಳಿಸುವ ಸಮಯ"},
			{From: "peak time", To: "ಪೀಕ್ ಟೈಮ್"},
		},
		ContextGift: {
			{From: "earn real money", To: "ನಿಜವಾದ ಹಣವನ್ನು ಗಳಿಸಿ"}, {From: "in your wallet", To: "ನಿಮ್ಮ ವ್ಯಾಲೆಟ್ನಲ್ಲಿ"},
		},
		ContextCompetition: {
			{From: "Don't miss out", To: "ತಪ್ಪಿಸಿಕೊಳ್ಳಬೇಡಿ"}, {From: "Go online now", To: "ಈಗಲೇ ಆನ್ಲೈನ್ಗೆ ಹೋಗಿ"},
		},
	},
	"or": {
		ContextRakhi: {
			{From: "Raksha Bandhan", To: "Raksha Bandhan"}, {From: "your brother", To: "ତୁମ ଭାଇଙ୍କୁ"},
			{From: "Protection", To: "ସୁରକ୍ଷା"},
		},
		ContextHoliday: {
			{From: "Holiday", To: "ହଲିଡେ"}, {From: "time to earn", To: "କମେଇବାର ସମୟ"},
		},
		ContextGift: {
			{From: "earn real money", To: "ଟଙ୍କା କମାନ୍ତୁ"}, {From: "Go online now", To: "ଏବେ ଅନଲାଇନ୍ ଆସନ୍ତୁ"},
		},
	},
}

// postFixes holds the post-translation fixes per full locale tag. They
// repair phrasings the engine keeps getting wrong, using wordings taken
// from approved translations. Applied after restoration and cleanup.
var postFixes = map[string][]PhraseRule{
	"hi-IN": {
		{From: "We're LIVE", To: "Hum LIVE hain"}, {From: "Join now", To: "Abhi join karo"},
		{From: "Don't miss", To: "Miss mat karna"}, {From: "Click & Join", To: "Click karo aur join karo"},
		{From: "Let's talk", To: "Chalo baat karte hain"}, {From: "Really help", To: "Bohot kaam aayega"},
		{From: "Amazing session", To: "Amazing session tha"}, {From: "We're waiting", To: "Hum wait kar rahe hain"},
		{From: "Want to earn ₹40K/month", To: "₹40K/month kamaana hai"},
		{From: "Join our new WhatsApp Channel", To: "Naya WhatsApp Channel join karo"},
		{From: "All tips here", To: "Saare tips yahin milenge"}, {From: "Click to join", To: "Click karke join karo"},
		{From: "100% Number Privacy", To: "100% Number Privacy Guarantee"},
		{From: "Tired of small earnings", To: "Kam earnings se thak gaye hoge na"},
		{From: "Let's fix that", To: "Chinta mat karo"},
		{From: "New here? You're not alone", To: "Naye ho? Don't worry, hum hai na"},
		{From: "Ready to level up", To: "Ready for level up"},
		{From: "Few days in now", To: "Ab toh kuch din hogaye hai"},
		{From: "Gift Your Bhai", To: "Apne Bhai ko do"}, {From: "₹1000 Hamper", To: "₹1000 ka Hamper"},
		{From: "Just by Being Online", To: "Sirf Online aakar"}, {From: "Yes, really!", To: "Haan, sach mein!"},
		{From: "earn real money in your wallet", To: "apne wallet mein kamao real money"},
		{From: "More time = More Yellow Roses", To: "Jitna zyada time = Utne zyada Yellow Roses"},
		{From: "Make this Rakhi extra special", To: "Iss Rakhi ko banao extra special"},
		{From: "It's a holiday today", To: "Aaj chhutti hai"},
		{From: "Holiday = Time to Earn", To: "Holiday = kamaane ka time"},
		{From: "Tonight's the Night", To: "Aaj ki raat hai khaas"},
		{From: "Why wait?", To: "Toh phir rukna kyu?"},
		{From: "Challenge is ON", To: "Challenge shuru ho chuka hai"},
		{From: "Let the spotlight find YOU", To: "spotlight aap tak khud aa jaayegi"},
	},
	"ta-IN": {
		{From: "We're LIVE", To: "நாங்க LIVE ஆ இருக்கோம்"}, {From: "Join now", To: "இப்போவே join பண்ணுங்க"},
		{From: "Don't miss", To: "miss பண்ணாதீங்க"}, {From: "Let's talk", To: "பேசலாம்"},
		{From: "Really help", To: "definitely உங்களுக்கு help ஆகும்"},
		{From: "Amazing session", To: "session awesome ஆக்கிச்சு"},
		{From: "We're waiting", To: "உங்களுக்காக wait பண்ணிட்டு இருக்காங்க"},
		{From: "₹40K/month FRND", To: "₹40K/month FRND-ல"},
		{From: "join new WhatsApp Channel", To: "New WhatsApp Channel-la join பண்ணுங்க"},
		{From: "All pro tips here", To: "Pro tips-லாம் இங்க இருக்கு"},
		{From: "Click to join", To: "Click பண்ணி join பண்ணுங்க"},
		{From: "100% Number Privacy", To: "100% Number Privacy Guarantee!"},
		{From: "Tired of small earnings", To: "கம்மி earnings-ல bore ஆகிட்டீங்களா"},
		{From: "Let's fix that", To: "இப்போ fix பண்ணலாம்"},
		{From: "New here? You're not alone", To: "இது உங்க first time-a? நீங்கள் தனியா இல்ல"},
		{From: "Ready to level up", To: "next level போக தயாரா"},
		{From: "Few days in now", To: "இப்போ உங்கள் journey start ஆகிவிட்டது"},
		{From: "Gift Your Bhai", To: "உங்க அண்ணன்/தம்பிக்கு Gift கொடுக்கலாமா"},
		{From: "Just by Being Online", To: "FRND-ல Onlineல இருந்தாலே போதும்"},
		{From: "earn real money", To: "நேரடி பணம் சேரும்"}, {From: "in your wallet", To: "Wallet-ல"},
		{From: "More time = More", To: "அதிக நேரம் = அதிக"},
		{From: "Make this Rakhi extra special", To: "இந்த Rakhi-யை Special-aa ஆக்குங்க"},
		{From: "It's a holiday today", To: "இன்று விடுமுறை"},
		{From: "Holiday = Extra Earnings", To: "Holiday = Extra Earnings Time"},
		{From: "Tonight's the Night", To: "இன்று இரவு தான் உங்களுக்கு வாய்ப்பு"},
		{From: "Why wait?", To: "Why Wait?"},
		{From: "Challenge is ON", To: "Challenge ஆரம்பம் ஆகி இருக்கு"},
		{From: "Let the spotlight find YOU", To: "உங்களை spotlight find பண்ண விடுங்க"},
	},
	"te-IN": {
		{From: "We're LIVE", To: "Manam LIVE lo unnam"}, {From: "Join now", To: "Ipude join avvandi"},
		{From: "Don't miss", To: "Miss avvakandi"}, {From: "Let's talk", To: "Maatladukundam"},
		{From: "Really help", To: "Chala useful ga untundi"}, {From: "We're waiting", To: "Meeku wait chesthunnaru"},
		{From: "₹40K/month", To: "₹40K/month sampadinchala"},
		{From: "join new WhatsApp Channel", To: "kotha WhatsApp Channel join avvandi"},
		{From: "New here?", To: "App ki new ah?"}, {From: "Ready to level up", To: "ready to level up?"},
		{From: "Few days in now", To: "Few days aiyayi kadha"},
		{From: "Gift Your Bhai", To: "మీ బ్రదర్ కి Gift చేయొచ్చు"}, {From: "₹1000 Hamper", To: "₹1000 హ్యాంపర్"},
		{From: "Just by Being Online", To: "FRND యాప్ లో ఆన్లైన్ ఉండడం ద్వారా"},
		{From: "earn real money", To: "నిజమైన డబ్బు సంపాదించుకోవచ్చు"}, {From: "in your wallet", To: "మీ వాలెట్లో"},
		{From: "It's a holiday", To: "ఇవాళ హాలిడే"}, {From: "peak time", To: "Peak Time"},
		{From: "Why wait?", To: "ఎందుకు వెయిట్ చేస్తున్నారూ?"},
	},
	"ml-IN": {
		{From: "We're LIVE", To: "ഞങ്ങൾ ലൈവാണ്"}, {From: "Join now", To: "ഇപ്പോൾ ജോയിൻ ചെയ്യൂ"},
		{From: "Don't miss", To: "നഷ്ടപ്പെടുത്തരുത്"}, {From: "Let's talk", To: "നമുക്ക് സംസാരിക്കാം"},
		{From: "Really help", To: "ശരിക്കും സഹായിക്കും"},
		{From: "Want to earn ₹40K/month", To: "മാസം 40K സമ്പാദിക്കാൻ ആഗ്രഹിക്കുന്നുണ്ടോ"},
		{From: "join new WhatsApp Channel", To: "പുതിയ WhatsApp ചാനലിൽ ചേരാൻ"},
		{From: "New here? You're not alone", To: "പുതിയ ആളാണോ? നിങ്ങൾ ഒറ്റയ്ക്കല്ല"},
		{From: "Raksha Bandhan", To: "രക്ഷാ ബന്ധൻ"}, {From: "your brother", To: "നിങ്ങളുടെ സഹോദരന്"},
		{From: "earn real money", To: "റിയൽ പണം സമ്പാദിക്കൂ"}, {From: "in your wallet", To: "നിങ്ങളുടെ വാലറ്റിൽ"},
		{From: "Why wait?", To: "എന്തിന് കാത്തിരിക്കണം?"},
	},
	"kn-IN": {
		{From: "We're LIVE", To: "ನಾವು ಲೈವ್ ಆಗಿದ್ದೇವೆ"}, {From: "Join now", To: "ಈಗಲೇ ಸೇರಿ"},
		{From: "Don't miss", To: "ತಪ್ಪಿಸಿಕೊಳ್ಳಬೇಡಿ"}, {From: "Let's talk", To: "ಮಾತನಾಡೋಣ"},
		{From: "Really help", To: "ನಿಜವಾಗಿಯೂ ಸಹಾಯ ಮಾಡುತ್ತದೆ"},
		{From: "Want to earn ₹40K/month", To: "ತಿಂಗಳಿಗೆ ₹40K ಗಳಿಸಲು ಬಯಸುವಿರಾ"},
		{From: "join new WhatsApp Channel", To: "ಹೊಸ WhatsApp ಚಾನಲ್‌ಗೆ ಸೇರಲು"},
		{From: "New here? You're not alone", To: "ಇಲ್ಲಿ ಹೊಸಬರೇ? ನೀವು ಒಬ್ಬಂಟಿಯಲ್ಲ"},
		{From: "Raksha Bandhan", To: "ರಕ್ಷಾ ಬಂಧನ"}, {From: "your brother", To: "ನಿಮ್ಮ ಸಹೋದರನಿಗೆ"},
		{From: "earn real money", To: "ನಿಜವಾದ ಹಣವನ್ನು ಗಳಿಸಿ"}, {From: "in your wallet", To: "ನಿಮ್ಮ ವ್ಯಾಲೆಟ್ನಲ್ಲಿ"},
		{From: "Why wait?", To: "ಏಕೆ ಕಾಯಬೇಕು?"},
	},
	"or-IN": {
		{From: "Raksha Bandhan", To: "Raksha Bandhan"}, {From: "your brother", To: "ତୁମ ଭାଇଙ୍କୁ"},
		{From: "earn real money", To: "ଟଙ୍କା କମାନ୍ତୁ"}, {From: "Go online now", To: "ଏବେ ଅନଲାଇନ୍ ଆସନ୍ତୁ"},
		{From: "peak time", To: "peak time"},
	},
}
