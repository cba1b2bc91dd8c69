package dialogue

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/pmezard/go-difflib/difflib"

	"aroma/internal/domain"
)

type Config struct {
	// ShortThreshold accepts looser matches for short queries,
	// LongThreshold demands precision once a query exceeds LongQueryLen
	// characters.
	ShortThreshold float64
	LongThreshold  float64
	LongQueryLen   int
}

func DefaultConfig() Config {
	return Config{
		ShortThreshold: 0.35,
		LongThreshold:  0.45,
		LongQueryLen:   20,
	}
}

type Matcher struct {
	cfg Config
}

func NewMatcher(cfg Config) *Matcher {
	if cfg.LongQueryLen == 0 {
		cfg = DefaultConfig()
	}
	return &Matcher{cfg: cfg}
}

// Match looks the query up against the corpus. Exact or containment matches
// on normalized text win immediately; otherwise the best character-level
// similarity ratio wins if it strictly exceeds the length-dependent
// threshold. The second return is false when nothing clears the bar.
func (m *Matcher) Match(raw string, entries []domain.DialogueEntry) (string, bool) {
	query := normalizeForMatch(raw)
	if query == "" || len(entries) == 0 {
		return "", false
	}

	threshold := m.cfg.ShortThreshold
	if utf8.RuneCountInString(query) > m.cfg.LongQueryLen {
		threshold = m.cfg.LongThreshold
	}

	queryChars := splitChars(query)
	bestScore := 0.0
	bestAnswer := ""
	found := false
	for _, entry := range entries {
		question := normalizeForMatch(entry.Question)
		if question == "" {
			continue
		}
		if query == question || strings.Contains(question, query) || strings.Contains(query, question) {
			return entry.Answer, true
		}
		ratio := difflib.NewMatcher(queryChars, splitChars(question)).Ratio()
		if ratio > threshold && ratio > bestScore {
			bestScore = ratio
			bestAnswer = entry.Answer
			found = true
		}
	}
	return bestAnswer, found
}

// normalizeForMatch lowercases and collapses every run of punctuation,
// underscores and other separators into a single space.
func normalizeForMatch(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	lastSpace := true
	for _, r := range strings.ToLower(s) {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
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

func splitChars(s string) []string {
	out := make([]string, 0, utf8.RuneCountInString(s))
	for _, r := range s {
		out = append(out, string(r))
	}
	return out
}
