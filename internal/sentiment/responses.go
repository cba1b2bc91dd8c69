package sentiment

import "aroma/internal/domain"

var (
	strongPositiveResponses = []string{
		"Отлично! Вижу, вы цените качественные ароматы!",
		"Замечательно! У нас есть именно то, что вам понравится!",
		"Прекрасно! Давайте найдем для вас идеальный аромат!",
	}
	mildPositiveResponses = []string{
		"Хорошо! Расскажу вам о наших лучших предложениях!",
		"Понимаю! У нас много интересных вариантов!",
		"Отлично! Помогу подобрать что-то подходящее!",
	}
	strongNegativeResponses = []string{
		"Понимаю ваши сомнения. Позвольте показать вам что-то особенное!",
		"Не переживайте! У нас есть ароматы на любой вкус!",
		"Давайте найдем то, что вам точно понравится!",
	}
	mildNegativeResponses = []string{
		"Понимаю. Возможно, стоит рассмотреть другие варианты?",
		"Хорошо, давайте поищем что-то более подходящее!",
		"Не проблема! У нас широкий выбор!",
	}
	neutralResponses = []string{
		"Понятно. Расскажите больше о ваших предпочтениях!",
		"Хорошо. Что вас интересует в ароматах?",
		"Отлично! Давайте подберем что-то специально для вас!",
	}
)

// EmotionResponses returns the canned phrase pool matching the message
// polarity. Selection among the pool is the caller's (seed-injectable)
// random choice.
func EmotionResponses(s domain.SentimentResult) []string {
	switch s.Label {
	case domain.SentimentPositive:
		if s.Score > 0.6 {
			return strongPositiveResponses
		}
		return mildPositiveResponses
	case domain.SentimentNegative:
		if s.Score < -0.6 {
			return strongNegativeResponses
		}
		return mildNegativeResponses
	default:
		return neutralResponses
	}
}
