package langdetect

import (
	"strings"

	"github.com/pemistahl/lingua-go"
)

// DefaultCode is returned for empty input and whenever classification fails.
const DefaultCode = "en"

// Detector maps free text to a lowercase two-letter language code. It is
// used only to pick a TTS voice, so it is restricted to the languages the
// application actually offers.
type Detector struct {
	detector lingua.LanguageDetector
}

func NewDetector() *Detector {
	languages := []lingua.Language{
		lingua.English,
		lingua.Spanish,
		lingua.French,
		lingua.German,
		lingua.Italian,
		lingua.Portuguese,
		lingua.Russian,
		lingua.Japanese,
		lingua.Chinese,
		lingua.Arabic,
		lingua.Hindi,
		lingua.Marathi,
		lingua.Bengali,
		lingua.Telugu,
		lingua.Tamil,
		lingua.Gujarati,
		lingua.Urdu,
		lingua.Punjabi,
		lingua.Turkish,
		lingua.Thai,
		lingua.Dutch,
		lingua.Korean,
		lingua.Indonesian,
	}

	return &Detector{
		detector: lingua.NewLanguageDetectorBuilder().
			FromLanguages(languages...).
			Build(),
	}
}

// Detect returns the ISO 639-1 code of the most likely language of text.
// Empty or whitespace-only input returns the default code without invoking
// the classifier, and so does an inconclusive classification.
func (d *Detector) Detect(text string) string {
	if strings.TrimSpace(text) == "" {
		return DefaultCode
	}
	language, ok := d.detector.DetectLanguageOf(text)
	if !ok {
		return DefaultCode
	}
	return strings.ToLower(language.IsoCode639_1().String())
}
