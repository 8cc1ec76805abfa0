// Package gobhasha is a translation assistant for Indian-language
// promotional and community messages.
//
// Gobhasha wraps a remote Indic translation API with pre- and
// post-processing that biases the output toward previously approved
// phrasing: phrase dictionaries selected by message context, preserved
// brand terms, line-break restoration across the API round trip, an
// optional LLM review pass, and a heuristic confidence score with
// human-readable quality flags.
//
// Basic usage:
//
//	import (
//	    "context"
//	    "github.com/frndlabs/gobhasha"
//	    "github.com/frndlabs/gobhasha/provider"
//	    "github.com/frndlabs/gobhasha/translog"
//	)
//
//	func main() {
//	    p := provider.NewSarvamProvider(provider.SarvamConfig{
//	        APIKey: os.Getenv("SARVAM_API_KEY"),
//	    })
//
//	    t := gobhasha.NewTranslator(p,
//	        gobhasha.WithPreservedTerms([]string{"FRND"}),
//	        gobhasha.WithLogger(translog.NewCSVLogger("translations.csv")),
//	    )
//
//	    res, err := t.Translate(context.Background(), gobhasha.Request{
//	        SourceLang: "en-IN",
//	        TargetLang: "hi-IN",
//	        Text:       "We're LIVE!\nJoin now!",
//	        Mode:       gobhasha.ModeModernColloquial,
//	        Gender:     gobhasha.GenderFemale,
//	    })
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    fmt.Println(res.Text)
//	    fmt.Printf("confidence: %.0f%%\n", res.Confidence*100)
//	}
package gobhasha
