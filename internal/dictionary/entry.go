package dictionary

import (
	"fmt"

	"github.com/epikoding/lexigraph/internal/llm"
)

// RelatedWord is one related-word row of an entry.
type RelatedWord struct {
	Word     string `json:"word"`
	Sentence string `json:"sentence"`
}

// Entry is one parsed dictionary/translation result. It lives only for the
// duration of a single request.
type Entry struct {
	Word                 string        `json:"word"`
	TranslatedWord       string        `json:"translated_word,omitempty"`
	Language             string        `json:"language"`
	Pronunciation        string        `json:"pronunciation,omitempty"`
	Definition           string        `json:"definition"`
	TranslatedDefinition string        `json:"translated_definition,omitempty"`
	SentenceTranslation  string        `json:"sentence_translation,omitempty"`
	Example              string        `json:"example,omitempty"`
	Etymology            string        `json:"etymology,omitempty"`
	Correction           string        `json:"correction,omitempty"`
	Synonyms             []string      `json:"synonyms,omitempty"`
	Antonyms             []string      `json:"antonyms,omitempty"`
	RelatedWords         []RelatedWord `json:"related_words,omitempty"`
}

// IsForeign reports whether the entry targets a language other than English.
// A missing language means English.
func (e *Entry) IsForeign() bool {
	return e.Language != "" && e.Language != "English"
}

// ImageQuery is the term used for the photo search: the LLM's correction of
// the input when present, otherwise the word itself.
func (e *Entry) ImageQuery() string {
	if e.Correction != "" {
		return e.Correction
	}
	return e.Word
}

type lookupPayload struct {
	Results []Entry `json:"results"`
}

// ParseResults extracts the results array from a raw LLM reply and validates
// each entry at the parse boundary. Entries missing the required word or
// definition fields are rejected rather than propagated into rendering.
func ParseResults(content string) ([]Entry, error) {
	var payload lookupPayload
	if err := llm.DecodeJSON(content, &payload); err != nil {
		return nil, err
	}
	if len(payload.Results) == 0 {
		return nil, fmt.Errorf("reply contained no results")
	}
	for i := range payload.Results {
		e := &payload.Results[i]
		if e.Word == "" {
			return nil, fmt.Errorf("result %d is missing the word field", i)
		}
		if e.Definition == "" {
			return nil, fmt.Errorf("result %d is missing the definition field", i)
		}
	}
	return payload.Results, nil
}

// Analysis is the parsed reply of the linguistic-analysis prompt.
type Analysis struct {
	AnalysisParagraphs []string            `json:"analysis_paragraphs"`
	PronunciationGuide []PronunciationItem `json:"pronunciation_guide"`
}

// PronunciationItem is one word/IPA pair of a pronunciation guide.
type PronunciationItem struct {
	Word string `json:"word"`
	IPA  string `json:"ipa"`
}
