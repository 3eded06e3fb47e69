package dictionary

import (
	"embed"
	"fmt"
	"html/template"
	"strings"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

var templates = template.Must(template.ParseFS(templateFS, "templates/*.tmpl"))

// PlaceholderImage is shown as the featured image when the photo search
// returned nothing.
const PlaceholderImage = "https://placehold.co/512x512/orange/white?text=No+Image"

// Image is one gallery image of a rendered card.
type Image struct {
	Medium string
	Large  string
}

type relatedView struct {
	Word         string
	Sentence     string
	SentenceHTML template.HTML
}

type wordCardView struct {
	Language            string
	Word                string
	DisplayWord         string
	SubWord             string
	Pronunciation       string
	EnglishDefText      string
	EnglishDefHTML      template.HTML
	TargetDefText       string
	TargetDefHTML       template.HTML
	SentenceTranslation string
	Example             string
	ExampleHTML         template.HTML
	EtymologyHTML       template.HTML
	Related             []relatedView
	Images              []Image
	FeaturedImage       string
}

// RenderWordCard emits the complete HTML fragment for one entry and its
// fetched images. All interpolated text is escaped by the template engine;
// interactive-text fields are pre-escaped by InteractiveText.
func RenderWordCard(e Entry, images []Image) (string, error) {
	language := e.Language
	if language == "" {
		language = "English"
	}
	foreign := language != "English"

	displayWord := e.Word
	if foreign && e.TranslatedWord != "" {
		displayWord = e.TranslatedWord
	}

	subWord := ""
	if foreign && e.TranslatedWord != "" && !strings.EqualFold(e.TranslatedWord, e.Word) {
		subWord = e.Word
	}

	englishDef := e.Definition
	targetDef := ""
	if foreign {
		englishDef = e.TranslatedDefinition
		targetDef = e.Definition
		if englishDef == "" && targetDef != "" {
			englishDef = "Translation not available."
		}
	}

	view := wordCardView{
		Language:            language,
		Word:                e.Word,
		DisplayWord:         displayWord,
		SubWord:             subWord,
		Pronunciation:       e.Pronunciation,
		EnglishDefText:      englishDef,
		EnglishDefHTML:      InteractiveText(englishDef),
		TargetDefText:       targetDef,
		TargetDefHTML:       InteractiveText(targetDef),
		SentenceTranslation: e.SentenceTranslation,
		Example:             e.Example,
		ExampleHTML:         InteractiveText(e.Example),
		EtymologyHTML:       InteractiveText(e.Etymology),
		FeaturedImage:       PlaceholderImage,
	}

	if len(images) > 4 {
		images = images[:4]
	}
	view.Images = images
	if len(images) > 0 {
		view.FeaturedImage = images[0].Large
	}

	for _, rw := range e.RelatedWords {
		view.Related = append(view.Related, relatedView{
			Word:         rw.Word,
			Sentence:     rw.Sentence,
			SentenceHTML: InteractiveText(rw.Sentence),
		})
	}

	var b strings.Builder
	if err := templates.ExecuteTemplate(&b, "word_card", view); err != nil {
		return "", fmt.Errorf("failed to render word card: %w", err)
	}
	return b.String(), nil
}

type chatMessageView struct {
	Role     string
	Text     string
	TextHTML template.HTML
}

// RenderChatMessage emits the HTML bubble for one chat message.
func RenderChatMessage(role, text string) (string, error) {
	view := chatMessageView{
		Role:     role,
		Text:     strings.ReplaceAll(text, "\n", " "),
		TextHTML: InteractiveText(text),
	}
	var b strings.Builder
	if err := templates.ExecuteTemplate(&b, "chat_message", view); err != nil {
		return "", fmt.Errorf("failed to render chat message: %w", err)
	}
	return b.String(), nil
}

type analysisParagraphView struct {
	Text     string
	TextHTML template.HTML
}

type analysisView struct {
	Paragraphs []analysisParagraphView
	Guide      []PronunciationItem
}

// RenderAnalysis emits the HTML fragment for a linguistic analysis.
func RenderAnalysis(a Analysis) (string, error) {
	view := analysisView{Guide: a.PronunciationGuide}
	for _, p := range a.AnalysisParagraphs {
		view.Paragraphs = append(view.Paragraphs, analysisParagraphView{
			Text:     p,
			TextHTML: InteractiveText(p),
		})
	}
	var b strings.Builder
	if err := templates.ExecuteTemplate(&b, "analysis", view); err != nil {
		return "", fmt.Errorf("failed to render analysis: %w", err)
	}
	return b.String(), nil
}
