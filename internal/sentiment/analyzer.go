package sentiment

import (
	"aroma/internal/domain"
)

type Config struct {
	PositiveThreshold float64
	NegativeThreshold float64
}

func DefaultConfig() Config {
	return Config{
		PositiveThreshold: 0.1,
		NegativeThreshold: -0.1,
	}
}

// Lemmatizer is the slice of the text normalizer the analyzer needs to
// re-key its lexicon into the same form runtime tokens arrive in.
type Lemmatizer interface {
	Normalize(raw string) []string
}

type Analyzer struct {
	cfg     Config
	lexicon map[string]float64
}

// New builds an analyzer over the given word->polarity lexicon. Lexicon keys
// are dictionary forms; each is passed through the normalizer so that the
// stored key matches what Normalize produces for the same word at runtime.
// Keys the normalizer filters out entirely stay under their original
// spelling and simply never match.
func New(cfg Config, lexicon map[string]float64, norm Lemmatizer) *Analyzer {
	keyed := make(map[string]float64, len(lexicon))
	for word, score := range lexicon {
		key := word
		if norm != nil {
			if tokens := norm.Normalize(word); len(tokens) == 1 {
				key = tokens[0]
			}
		}
		keyed[key] = score
	}
	return &Analyzer{cfg: cfg, lexicon: keyed}
}

// Score averages lexicon polarity over matched tokens. Confidence is the
// matched fraction of all tokens, capped at 1. No matches means a neutral
// zero result.
func (a *Analyzer) Score(tokens []string) domain.SentimentResult {
	if len(tokens) == 0 {
		return domain.SentimentResult{Label: domain.SentimentNeutral}
	}

	var total float64
	matched := make([]domain.SentimentWord, 0, 2)
	for _, tok := range tokens {
		score, ok := a.lexicon[tok]
		if !ok {
			continue
		}
		total += score
		matched = append(matched, domain.SentimentWord{Word: tok, Score: score})
	}

	if len(matched) == 0 {
		return domain.SentimentResult{Label: domain.SentimentNeutral}
	}

	avg := total / float64(len(matched))
	confidence := float64(len(matched)) / float64(len(tokens))
	if confidence > 1.0 {
		confidence = 1.0
	}

	label := domain.SentimentNeutral
	switch {
	case avg > a.cfg.PositiveThreshold:
		label = domain.SentimentPositive
	case avg < a.cfg.NegativeThreshold:
		label = domain.SentimentNegative
	}

	return domain.SentimentResult{
		Score:        avg,
		Label:        label,
		Confidence:   confidence,
		MatchedWords: matched,
	}
}

// DefaultLexicon is the built-in perfume-retail polarity dictionary,
// dictionary-form keys in [-1, 1].
func DefaultLexicon() map[string]float64 {
	return map[string]float64{
		"хороший": 0.7, "отличный": 0.9, "прекрасный": 0.8, "замечательный": 0.8,
		"нравиться": 0.6, "любить": 0.8, "восхитительный": 0.9, "классный": 0.6,
		"красивый": 0.7, "приятный": 0.6, "качественный": 0.7, "роскошный": 0.8,
		"элегантный": 0.7, "стильный": 0.6, "модный": 0.5, "популярный": 0.4,
		"известный": 0.3, "брендовый": 0.4, "престижный": 0.6,
		"соблазнительный": 0.7, "притягательный": 0.6, "чувственный": 0.7,
		"свежий": 0.5, "легкий": 0.4, "долгий": 0.5, "стойкий": 0.6,

		"плохой": -0.7, "ужасный": -0.9, "отвратительный": -0.9, "некачественный": -0.8,
		"дешевый": -0.5, "дорогой": -0.3, "странный": -0.4, "неприятный": -0.6,
		"невкусный": -0.7, "резкий": -0.5, "химический": -0.6, "искусственный": -0.4,
		"слабый": -0.4, "короткий": -0.3, "не": -0.5, "нет": -0.3,
		"ненавидеть": -0.8, "разочаровать": -0.6, "расстроить": -0.5,

		"обычный": 0.0, "нормальный": 0.0, "средний": 0.0, "простой": 0.0,
		"покупать": 0.1, "выбирать": 0.0, "искать": 0.0, "нужный": 0.1,
		"подходить": 0.2, "рекомендовать": 0.3, "советовать": 0.2,
	}
}
