package topic

import (
	"strings"

	"aroma/internal/domain"
)

// Topic is one labeled keyword set. Detection iterates topics in declaration
// order; on equal scores the earlier topic wins, keeping tie-breaking
// deterministic across platforms.
type Topic struct {
	Name     string
	Keywords []string
}

type Lemmatizer interface {
	Normalize(raw string) []string
}

type Detector struct {
	topics []Topic
}

// New builds a detector over the given topic table. Keywords are passed
// through the normalizer so they live in the same lemma space as runtime
// tokens; keywords the normalizer drops entirely keep their spelling.
func New(topics []Topic, norm Lemmatizer) *Detector {
	keyed := make([]Topic, 0, len(topics))
	for _, t := range topics {
		keywords := make([]string, 0, len(t.Keywords))
		for _, kw := range t.Keywords {
			key := kw
			if norm != nil {
				if tokens := norm.Normalize(kw); len(tokens) > 0 {
					key = strings.Join(tokens, " ")
				}
			}
			keywords = append(keywords, key)
		}
		keyed = append(keyed, Topic{Name: t.Name, Keywords: keywords})
	}
	return &Detector{topics: keyed}
}

// Detect scores every topic by keyword overlap: 1.0 for an exact token
// match, 0.5 for substring containment in either direction, normalized by
// the token count. Returns the zero result when nothing matches.
func (d *Detector) Detect(tokens []string) domain.TopicResult {
	if len(tokens) == 0 {
		return domain.TopicResult{}
	}

	best := domain.TopicResult{}
	for _, t := range d.topics {
		var score float64
		for _, tok := range tokens {
			for _, kw := range t.Keywords {
				switch {
				case tok == kw:
					score += 1.0
				case strings.Contains(tok, kw) || strings.Contains(kw, tok):
					score += 0.5
				}
			}
		}
		if score == 0 {
			continue
		}
		normalized := score / float64(len(tokens))
		if normalized > best.Score {
			best = domain.TopicResult{Topic: t.Name, Score: normalized}
		}
	}
	return best
}

// DefaultTopics is the built-in perfume-retail topic table. Order matters
// for tie-breaking.
func DefaultTopics() []Topic {
	return []Topic{
		{Name: "greeting", Keywords: []string{"привет", "здравствовать", "добрый", "день", "утро", "вечер", "салют"}},
		{Name: "goodbye", Keywords: []string{"пока", "свидание", "встреча", "прощать"}},
		{Name: "perfume_interest", Keywords: []string{"духи", "аромат", "парфюм", "запах", "нота", "композиция", "флакон"}},
		{Name: "price_inquiry", Keywords: []string{"цена", "стоимость", "стоить", "деньги", "рубль", "дорогой", "дешевый", "скидка"}},
		{Name: "recommendation", Keywords: []string{"посоветовать", "рекомендовать", "подобрать", "выбрать", "подходить"}},
		{Name: "brand_inquiry", Keywords: []string{"бренд", "марка", "фирма", "производитель", "chanel", "dior", "ysl"}},
		{Name: "gender_preference", Keywords: []string{"мужской", "женский", "унисекс", "мужчина", "женщина", "девушка", "парень"}},
		{Name: "occasion", Keywords: []string{"работа", "свидание", "вечер", "день", "праздник", "офис", "клуб", "встреча"}},
		{Name: "season", Keywords: []string{"весна", "лето", "осень", "зима", "холодный", "теплый", "жаркий"}},
		{Name: "purchase", Keywords: []string{"купить", "заказать", "приобрести", "взять", "покупка", "оформить"}},
		{Name: "complaint", Keywords: []string{"жалоба", "проблема", "не работать", "плохой", "ужасный", "некачественный"}},
		{Name: "compliment", Keywords: []string{"спасибо", "благодарить", "отличный", "хороший", "замечательный", "помочь"}},
	}
}
