package textproc

import (
	"strings"

	"github.com/kljensen/snowball"
)

// Config bounds the alphabet and filtering rules of the normalizer. The
// defaults target Russian retail chat; everything is injectable so tests and
// other deployments can run isolated instances.
type Config struct {
	// Language is the snowball stemmer language. An unsupported value is
	// not an error: every word degrades to the suffix fallback.
	Language string
	// Alphabet lists the runes kept by ClearPhrase. Hyphen and space must
	// be included for word segmentation to work.
	Alphabet string
	// MinTokenLen drops lemmas of this length or shorter.
	MinTokenLen int
	StopWords   []string
}

func DefaultConfig() Config {
	return Config{
		Language:    "russian",
		Alphabet:    "абвгдеёжзийклмнопрстуфхцчшщъыьэюя- ",
		MinTokenLen: 2,
		StopWords: []string{
			"а", "в", "во", "не", "что", "он", "на", "я", "с", "со", "как", "к", "по",
			"из", "за", "от", "до", "при", "о", "об", "для", "или", "и", "но", "да",
			"нет", "это", "то", "же", "ли", "бы", "был", "была", "было", "были",
		},
	}
}

type Normalizer struct {
	cfg      Config
	alphabet map[rune]struct{}
	stop     map[string]struct{}
}

// New builds a normalizer, filling any zero-valued Config field from
// DefaultConfig. Set fields are kept as given.
func New(cfg Config) *Normalizer {
	def := DefaultConfig()
	if cfg.Language == "" {
		cfg.Language = def.Language
	}
	if cfg.Alphabet == "" {
		cfg.Alphabet = def.Alphabet
	}
	if cfg.MinTokenLen == 0 {
		cfg.MinTokenLen = def.MinTokenLen
	}
	if cfg.StopWords == nil {
		cfg.StopWords = def.StopWords
	}
	alphabet := make(map[rune]struct{}, len(cfg.Alphabet))
	for _, r := range cfg.Alphabet {
		alphabet[r] = struct{}{}
	}
	stop := make(map[string]struct{}, len(cfg.StopWords))
	for _, w := range cfg.StopWords {
		stop[w] = struct{}{}
	}
	return &Normalizer{cfg: cfg, alphabet: alphabet, stop: stop}
}

// ClearPhrase lowercases, strips everything outside the configured alphabet
// and collapses hyphen/whitespace runs into single spaces.
func (n *Normalizer) ClearPhrase(phrase string) string {
	if phrase == "" {
		return ""
	}
	lowered := strings.ToLower(strings.TrimSpace(phrase))

	var b strings.Builder
	b.Grow(len(lowered))
	lastSpace := true
	for _, r := range lowered {
		if _, ok := n.alphabet[r]; !ok {
			r = ' '
		}
		if r == ' ' || r == '-' {
			if !lastSpace {
				b.WriteRune(' ')
			}
			lastSpace = true
			continue
		}
		b.WriteRune(r)
		lastSpace = false
	}
	return strings.TrimSpace(b.String())
}

// Normalize reduces raw text to a sequence of filtered lemmas. Empty and
// whitespace-only input yields an empty sequence.
func (n *Normalizer) Normalize(raw string) []string {
	cleaned := n.ClearPhrase(raw)
	if cleaned == "" {
		return nil
	}

	words := strings.Fields(cleaned)
	lemmas := make([]string, 0, len(words))
	for _, word := range words {
		if len([]rune(word)) < 2 {
			continue
		}
		lemma := n.lemma(word)
		if len([]rune(lemma)) <= n.cfg.MinTokenLen {
			continue
		}
		if _, skip := n.stop[lemma]; skip {
			continue
		}
		lemmas = append(lemmas, lemma)
	}
	return lemmas
}

// NormalizeJoined is Normalize rendered as a single space-joined string,
// the form the intent classifier consumes.
func (n *Normalizer) NormalizeJoined(raw string) string {
	return strings.Join(n.Normalize(raw), " ")
}

func (n *Normalizer) lemma(word string) string {
	stemmed, err := snowball.Stem(word, n.cfg.Language, false)
	if err != nil || stemmed == "" {
		return fallbackLemma(word)
	}
	return stemmed
}

// Endings tried by the degraded per-word path, longest first.
var fallbackSuffixes = []string{
	"иями", "ями", "ами", "иях", "ого", "его", "ому", "ему",
	"ыми", "ими", "ует", "уют", "ать", "ять", "ить", "еть", "ый", "ий",
	"ая", "яя", "ое", "ее", "ов", "ев", "ам", "ям", "ах", "ях", "ом", "ем",
	"ет", "ут", "ют", "ит", "ат", "ят",
}

// fallbackLemma strips one common inflectional ending. It is deliberately
// much weaker than the stemmer; it only has to keep morphological variants
// of the same word close enough to collide in the lexicons.
func fallbackLemma(word string) string {
	runes := []rune(word)
	for _, suffix := range fallbackSuffixes {
		sr := []rune(suffix)
		if len(runes)-len(sr) < 3 {
			continue
		}
		if strings.HasSuffix(word, suffix) {
			return string(runes[:len(runes)-len(sr)])
		}
	}
	return word
}
