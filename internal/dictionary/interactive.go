package dictionary

import (
	"html/template"
	"strings"
	"unicode"
)

// Punctuation stripped from a token before it becomes a lookup trigger. The
// visible token keeps its punctuation; only the onclick argument is cleaned.
const tokenPunctuation = ".,/#!$%^&*;:{}=-_`~()?\"'"

// splitSegments splits text into alternating whitespace and token segments,
// preserving every character so the concatenation of all segments is the
// original text.
func splitSegments(text string) []string {
	if text == "" {
		return nil
	}
	var segments []string
	var current strings.Builder
	currentIsSpace := unicode.IsSpace(rune(text[0]))
	for _, r := range text {
		isSpace := unicode.IsSpace(r)
		if isSpace != currentIsSpace {
			segments = append(segments, current.String())
			current.Reset()
			currentIsSpace = isSpace
		}
		current.WriteRune(r)
	}
	segments = append(segments, current.String())
	return segments
}

func stripTokenPunctuation(token string) string {
	return strings.Map(func(r rune) rune {
		if strings.ContainsRune(tokenPunctuation, r) {
			return -1
		}
		return r
	}, token)
}

// InteractiveText wraps every whitespace-delimited token of text in a span
// that triggers a lookup of the cleaned token on click. Whitespace is
// preserved exactly; all interpolated text is HTML- and JS-escaped.
func InteractiveText(text string) template.HTML {
	if text == "" {
		return ""
	}
	var b strings.Builder
	for _, seg := range splitSegments(text) {
		if strings.TrimSpace(seg) == "" {
			b.WriteString(seg)
			continue
		}
		clean := stripTokenPunctuation(seg)
		if clean == "" {
			b.WriteString(template.HTMLEscapeString(seg))
			continue
		}
		b.WriteString(`<span class="cursor-pointer hover:bg-orange-100 dark:hover:bg-orange-900/50 rounded transition-colors" onclick="defineWord('`)
		b.WriteString(template.JSEscapeString(clean))
		b.WriteString(`')">`)
		b.WriteString(template.HTMLEscapeString(seg))
		b.WriteString(`</span>`)
	}
	return template.HTML(b.String())
}
