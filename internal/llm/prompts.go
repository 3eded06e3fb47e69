package llm

import "fmt"

// ChatPersona is the fixed system message that fronts every conversation
// window sent to the chat endpoint.
const ChatPersona = "You are Andy, the dictionary spirit. Witty, loves words. Concise answers."

// dictionaryPrompt accepts the target language name. The embedded JSON schema
// is the contract the response parser validates against.
const dictionaryPrompt = `Act as a smart dictionary backend. Target Language: "%[1]s". Analyze Input.

If the input is a SENTENCE or PHRASE (contains multiple words or is a question):
   - "word": The original sentence.
   - "translated_word": The sentence translated into %[1]s (if target is not English).
   - "definition": A brief explanation or grammatical breakdown in %[1]s.
   - "sentence_translation": The direct full translation of the sentence into %[1]s.
   - "translated_definition": Explanation in English.
   - "example": Another similar usage example.

If the input is a SINGLE WORD:
   - "word": The original search term.
   - "translated_word": The search term translated into %[1]s.
   - "definition" field MUST contain the definition written in %[1]s.
   - "translated_definition" field MUST contain the definition written in English.
   - "sentence_translation": null.
   - "example" field should be in %[1]s if possible.

Return ONLY raw JSON (wrap in 'results' array).
Structure: { "results": [ { "word": "...", "translated_word": "...", "sentence_translation": "...", "pronunciation": "/.../", "definition": "...", "translated_definition": "...", "example": "...", "etymology": "...", "related_words": [{"word": "...", "sentence": "..."}], "synonyms": [...], "antonyms": [...], "language": "%[1]s" } ] }`

// wordOfDayPrompt shares the dictionary schema but carries explicit bilingual
// rules so a random English term still comes back with target-language fields.
const wordOfDayPrompt = `Act as a smart dictionary backend. Target Language: "%[1]s". Analyze Input.
If the input contains multiple words (comma separated or list), return an array of result objects for each word.

CRITICAL INSTRUCTION FOR TRANSLATION:
1. If the Target Language is "%[1]s" (and it is NOT English):
   - "word": The original search term.
   - "translated_word": The search term translated into %[1]s.
   - "definition" field MUST contain the definition written in %[1]s.
   - "translated_definition" field MUST contain the definition written in English.
   - "example" field should be in %[1]s if possible.

2. If the Target Language is English:
   - "word": The original search term.
   - "translated_word": null or same as word.
   - "definition" field MUST be in English.
   - "translated_definition" can be null or empty string.

Return ONLY raw JSON (wrap in 'results' array).
Structure: { "results": [ { "word": "Word", "translated_word": "TransWord", "pronunciation": "/IPA/", "definition": "Def", "translated_definition": "Def in English", "example": "Sentence...", "etymology": "Origin", "related_words": [{"word": "R1", "sentence": "S1"}], "synonyms": ["s1"], "antonyms": ["a1"], "language": "%[1]s" } ] }`

const analysisPrompt = `Act as a linguistics expert. Target: "%s". Analyze text. Return ONLY JSON: { "analysis_paragraphs": ["Para 1"], "pronunciation_guide": [ { "word": "ex", "ipa": "/ex/" } ] }`

const grammarPrompt = `Act as a strict grammar corrector. Fix all grammatical, spelling, and punctuation errors in the user's text. Return ONLY the corrected text. Do not add conversational filler.`

// DictionaryMessages builds the system+user pair for a lookup of term in the
// given target language.
func DictionaryMessages(language, term string) []Message {
	return []Message{
		{Role: RoleSystem, Content: fmt.Sprintf(dictionaryPrompt, language)},
		{Role: RoleUser, Content: "Define: " + term},
	}
}

// WordOfDayMessages builds the system+user pair for the word-of-the-day
// lookup of term in the given target language.
func WordOfDayMessages(language, term string) []Message {
	return []Message{
		{Role: RoleSystem, Content: fmt.Sprintf(wordOfDayPrompt, language)},
		{Role: RoleUser, Content: "Define: " + term},
	}
}

// AnalysisMessages builds the system+user pair for free-text linguistic
// analysis.
func AnalysisMessages(language, text string) []Message {
	return []Message{
		{Role: RoleSystem, Content: fmt.Sprintf(analysisPrompt, language)},
		{Role: RoleUser, Content: "Analyze: " + text},
	}
}

// GrammarMessages builds the system+user pair for grammar correction. The
// reply is plain text, not JSON.
func GrammarMessages(text string) []Message {
	return []Message{
		{Role: RoleSystem, Content: grammarPrompt},
		{Role: RoleUser, Content: text},
	}
}
