package domain

type ChatRequest struct {
	SessionID string `json:"session_id,omitempty"`
	UserID    string `json:"user_id,omitempty"`
	Text      string `json:"text"`
}

type ChatResponse struct {
	SessionID string `json:"session_id"`
	Reply     string `json:"reply"`
	Stage     string `json:"stage"`
	Intent    string `json:"intent,omitempty"`
}

// SentimentResult is the lexicon polarity of one message. Score is the
// average over matched tokens only; Confidence is the matched fraction of
// all tokens.
type SentimentResult struct {
	Score        float64         `json:"score"`
	Label        string          `json:"label"`
	Confidence   float64         `json:"confidence"`
	MatchedWords []SentimentWord `json:"matched_words,omitempty"`
}

type SentimentWord struct {
	Word  string  `json:"word"`
	Score float64 `json:"score"`
}

const (
	SentimentPositive = "positive"
	SentimentNegative = "negative"
	SentimentNeutral  = "neutral"
)

// TopicResult carries the best keyword-overlap topic, empty when nothing
// matched.
type TopicResult struct {
	Topic string  `json:"topic,omitempty"`
	Score float64 `json:"score"`
}

// IntentPrediction is the classifier top-1 label with its class
// probability. An untrained or failed prediction is the zero value.
type IntentPrediction struct {
	Intent     string  `json:"intent,omitempty"`
	Confidence float64 `json:"confidence"`
}

// Conversation stages, in escalation order.
const (
	StageCasual    = "casual"
	StageWarmingUp = "warming_up"
	StageBusiness  = "business"
)

// DialogueEntry is one question/answer pair from the fallback corpus.
type DialogueEntry struct {
	Question string
	Answer   string
}
