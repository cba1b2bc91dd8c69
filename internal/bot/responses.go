package bot

var transitionPhrases = []string{
	"\n\nКстати, а вы любите ароматы? У меня есть несколько интересных предложений!",
	"\n\nА знаете, раз мы так хорошо общаемся... Может, расскажу вам о чудесных ароматах?",
	"\n\nЗдорово пообщались! А не хотели бы узнать о прекрасных парфюмах?",
	"\n\nКстати, а как относитесь к парфюмерии? Могу показать что-то особенное!",
}

var greetingFollowUps = []string{
	" Как прошел день?",
	" Что интересного?",
	" Как настроение?",
	" Что нового?",
}

var positiveAdditions = []string{
	"Вы точно не пожалеете!",
	"Это будет отличный выбор!",
	"Уверен, вам понравится!",
}

var negativeConsolations = []string{
	"Понимаю ваши сомнения. Давайте найдем то, что вам точно понравится!",
	"Не переживайте! У нас есть ароматы на любой вкус!",
	"Позвольте предложить вам что-то особенное!",
}

var friendlyResponses = []string{
	"Отлично! Готов помочь вам с выбором прекрасных ароматов!",
	"Прекрасно! Давайте подберем вам идеальный аромат!",
	"Замечательно! Расскажите, что вас интересует в мире парфюмерии?",
}

var topicResponses = map[string][]string{
	"perfume_interest": {
		"Отлично! Расскажите, какой стиль ароматов предпочитаете?",
		"Прекрасно! Для кого подбираем аромат?",
	},
	"price_inquiry": {
		"Конечно! Покажу наши цены...",
		"С радостью расскажу о ценах!",
	},
	"recommendation": {
		"Обязательно помогу с выбором! Расскажите о предпочтениях",
		"Подберу идеальный аромат! Какой стиль нравится?",
	},
}

const defaultTopicResponse = "Интересная тема! Расскажите подробнее"

const genericAcknowledgment = "С удовольствием!"

const recommendHelp = "С удовольствием помогу с выбором!\n\nРасскажите:\n• Для кого аромат?\n• На какой случай?\n• Какие ароматы нравятся?"

const purchaseHelp = "🛒 Замечательно! Какой именно аромат вас заинтересовал?\nИли хотите, чтобы я что-то порекомендовал?"
