package wordlist

import (
	"bufio"
	"log"
	"math/rand"
	"os"
	"strings"
)

// Words ranked 0..rankFloor are too common to make an interesting word of
// the day; everything past rankCeil is too obscure.
const (
	rankFloor = 2000
	rankCeil  = 8000
)

// fallbackWords is used when no frequency-ranked list file is available.
var fallbackWords = []string{
	"Serendipity", "Petrichor", "Ineffable", "Ephemeral", "Limerence", "Sonder", "Vellichor", "Solitude", "Aurora", "Euphoria", "Eloquence", "Mellifluous",
	"Sesquipedalian", "Perspicacious", "Obfuscate", "Esoteric", "Pulchritudinous", "Quixotic", "Recalcitrant", "Sycophant", "Ubiquitous", "Vicarious",
	"Cacophony", "Ennui", "Halcyon", "Idyllic", "Juxtaposition", "Kaleidoscope", "Lackadaisical", "Magnanimous", "Nefarious", "Onomatopoeia",
	"Panacea", "Quintessential", "Rambunctious", "Sagacious", "Taciturn", "Umbrage", "Vacillate", "Wanderlust", "Xenophobia", "Zephyr",
	"Absquatulate", "Bamboozle", "Canoodle", "Discombobulate", "Flummox", "Gobbledygook", "Hodgepodge", "Kerfuffle", "Lollygag", "Malarkey",
	"Nincompoop", "Skedaddle", "Shenanigans", "Whippersnapper",
}

// List picks random word-of-the-day candidates, preferring the interesting
// band of a frequency-ranked word list over the static fallback.
type List struct {
	ranked []string
}

// Load reads a rank-ordered word list (one word per line, most frequent
// first). A missing or unreadable file is not fatal: the static fallback
// list serves instead.
func Load(path string) *List {
	file, err := os.Open(path)
	if err != nil {
		log.Printf("Warning: Failed to open word list %s: %v, using static fallback", path, err)
		return &List{}
	}
	defer file.Close()

	var words []string
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		word := strings.TrimSpace(scanner.Text())
		if word != "" {
			words = append(words, word)
		}
	}
	if err := scanner.Err(); err != nil {
		log.Printf("Warning: Error reading word list %s: %v, using static fallback", path, err)
		return &List{}
	}

	return &List{ranked: words}
}

// Pick returns a random term. Selection is not reproducible across runs.
func (l *List) Pick() string {
	if len(l.ranked) > rankFloor {
		ceil := rankCeil
		if ceil > len(l.ranked) {
			ceil = len(l.ranked)
		}
		band := l.ranked[rankFloor:ceil]
		return band[rand.Intn(len(band))]
	}
	return fallbackWords[rand.Intn(len(fallbackWords))]
}
