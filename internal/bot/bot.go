package bot

import (
	"log/slog"
	"math/rand"
	"strings"
	"sync"
	"time"

	"aroma/internal/domain"
	"aroma/internal/intents"
	"aroma/internal/sentiment"
)

type Normalizer interface {
	Normalize(raw string) []string
}

type SentimentScorer interface {
	Score(tokens []string) domain.SentimentResult
}

type TopicDetector interface {
	Detect(tokens []string) domain.TopicResult
}

type IntentPredictor interface {
	Predict(normalizedText string) domain.IntentPrediction
}

// FallbackMatcher is the dialogue-corpus lookup used when intent
// classification is inconclusive.
type FallbackMatcher interface {
	Match(raw string) (string, bool)
}

// CatalogService produces fully formatted business response text keyed by
// an intent's action.
type CatalogService interface {
	ShowCatalog() string
	ShowPrices() string
	RecommendByGender(gender string) string
	RecommendByCriteria(criteria string) string
	ShowPromotions() string
	ShowBrand(brand string) string
	ProcessPurchase(text string) string
}

// Components collects the pipeline pieces the orchestrator drives.
type Components struct {
	Normalizer Normalizer
	Sentiment  SentimentScorer
	Topics     TopicDetector
	Intents    IntentPredictor
	Dialogues  FallbackMatcher
	Service    CatalogService
	Brands     []Brand
	// Rand makes response selection reproducible in tests; nil seeds from
	// the clock.
	Rand *rand.Rand
}

// Stats counts which response path handled each message.
type Stats struct {
	Intent   int `json:"intent"`
	Generate int `json:"generate"`
	Failure  int `json:"failure"`
	Casual   int `json:"casual"`
}

// Reply is one orchestrator turn.
type Reply struct {
	Text   string
	Intent string
	Stage  string
}

// Bot is the conversation orchestrator: per message it runs the analyzers,
// applies the fixed policy order and picks the response strategy. The Bot
// itself is shared across sessions; all per-conversation memory lives in
// the State passed to Respond.
type Bot struct {
	cfg      Config
	catalog  *intents.Catalog
	comp     Components
	business map[string]struct{}
	casual   map[string]struct{}
	failures []string
	logger   *slog.Logger

	randMu sync.Mutex
	rand   *rand.Rand

	statsMu sync.Mutex
	stats   Stats
}

func New(cfg Config, catalog *intents.Catalog, comp Components, logger *slog.Logger) *Bot {
	if logger == nil {
		logger = slog.Default()
	}
	rng := comp.Rand
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if comp.Brands == nil {
		comp.Brands = DefaultBrands()
	}
	return &Bot{
		cfg:      cfg,
		catalog:  catalog,
		comp:     comp,
		business: toSet(cfg.BusinessIntents),
		casual:   toSet(cfg.CasualIntents),
		failures: intents.FailurePhrases(),
		logger:   logger,
		rand:     rng,
	}
}

// Respond processes one message against the given conversation state and
// returns the reply. Empty input returns a failure phrase without touching
// the message counters.
func (b *Bot) Respond(state *State, text string) Reply {
	if strings.TrimSpace(text) == "" {
		return Reply{Text: b.pick(b.failures), Stage: state.Stage}
	}

	state.MessageCount++

	tokens := b.comp.Normalizer.Normalize(text)
	processed := strings.Join(tokens, " ")

	sent := b.comp.Sentiment.Score(tokens)
	top := b.comp.Topics.Detect(tokens)
	prediction := b.comp.Intents.Predict(processed)

	b.logger.Debug("message analyzed",
		"intent", prediction.Intent, "confidence", prediction.Confidence,
		"topic", top.Topic, "topic_score", top.Score,
		"sentiment", sent.Label, "tokens", len(tokens))

	if prediction.Intent != "" && prediction.Confidence >= b.cfg.IntentConfidenceMin {
		b.updateStreak(state, prediction.Intent)
		response := b.contextualResponse(state, text, prediction, sent, top)
		return Reply{Text: response, Intent: prediction.Intent, Stage: state.Stage}
	}

	if handled, ok := b.keywordResponse(text); ok {
		return Reply{Text: handled, Stage: state.Stage}
	}

	if brand, ok := detectBrand(strings.ToLower(text), b.comp.Brands); ok {
		prediction = domain.IntentPrediction{Intent: brand.Intent, Confidence: b.cfg.BrandFallbackConfidence}
		b.updateStreak(state, prediction.Intent)
		response := b.contextualResponse(state, text, prediction, sent, top)
		return Reply{Text: response, Intent: prediction.Intent, Stage: state.Stage}
	}

	if answer, ok := b.comp.Dialogues.Match(text); ok {
		b.count(func(s *Stats) { s.Generate++ })
		return Reply{Text: answer, Stage: state.Stage}
	}

	b.count(func(s *Stats) { s.Failure++ })
	return Reply{Text: b.pick(b.failures), Stage: state.Stage}
}

// Stats returns a copy of the response-path counters.
func (b *Bot) Stats() Stats {
	b.statsMu.Lock()
	defer b.statsMu.Unlock()
	return b.stats
}

func (b *Bot) updateStreak(state *State, intent string) {
	switch {
	case b.isCasual(intent):
		state.CasualMessageCount++
	case b.isBusiness(intent):
		state.CasualMessageCount = 0
	}
}

func (b *Bot) contextualResponse(state *State, text string, p domain.IntentPrediction, sent domain.SentimentResult, top domain.TopicResult) string {
	if b.isBusiness(p.Intent) {
		state.Stage = domain.StageBusiness
		b.count(func(s *Stats) { s.Intent++ })
		return b.intentResponse(p.Intent, text, sent)
	}

	if b.isCasual(p.Intent) {
		response := b.casualResponse(state, p, sent)

		if p.Intent == "goodbye" {
			state.Reset()
			return response
		}
		if state.CasualMessageCount >= b.cfg.CasualThreshold &&
			!state.OfferMade && state.Stage == domain.StageCasual {
			response += b.pick(transitionPhrases)
			state.Stage = domain.StageWarmingUp
			state.OfferMade = true
		}
		return response
	}

	// Recognized but outside both partitions.
	if answer, ok := b.comp.Dialogues.Match(text); ok {
		b.count(func(s *Stats) { s.Generate++ })
		return answer
	}
	if p.Confidence > b.cfg.DirectIntentMin {
		b.count(func(s *Stats) { s.Intent++ })
		return b.intentResponse(p.Intent, text, sent)
	}
	if top.Topic != "" && sent.Label != domain.SentimentNegative {
		if responses, ok := topicResponses[top.Topic]; ok {
			return b.pick(responses)
		}
		return defaultTopicResponse
	}
	if sent.Label == domain.SentimentNegative && sent.Confidence > b.cfg.NegativeConfidenceMin {
		return b.pick(negativeConsolations)
	}

	b.count(func(s *Stats) { s.Failure++ })
	return b.pick(b.failures)
}

// intentResponse prefers an intent's declared action over its static
// responses.
func (b *Bot) intentResponse(intent, text string, sent domain.SentimentResult) string {
	data, ok := b.catalog.Get(intent)
	if !ok {
		return b.pick(b.failures)
	}
	if data.Action != "" {
		return b.executeAction(data.Action, text)
	}
	if len(data.Responses) > 0 {
		response := b.pick(data.Responses)
		if sent.Label == domain.SentimentPositive {
			return response + " " + b.pick(positiveAdditions)
		}
		return response
	}
	return b.pick(b.failures)
}

// executeAction dispatches a known action identifier to the catalog
// service. Unrecognized identifiers fall back to the first intent declaring
// that action, else a generic acknowledgment.
func (b *Bot) executeAction(action, text string) string {
	switch action {
	case "show_catalog":
		return b.comp.Service.ShowCatalog()
	case "show_prices":
		return b.comp.Service.ShowPrices()
	case "recommend_male":
		return b.comp.Service.RecommendByGender("мужской")
	case "recommend_female":
		return b.comp.Service.RecommendByGender("женский")
	case "show_promotions":
		return b.comp.Service.ShowPromotions()
	case "show_chanel":
		return b.comp.Service.ShowBrand("Chanel")
	case "show_dior":
		return b.comp.Service.ShowBrand("Dior")
	case "process_purchase":
		return b.comp.Service.ProcessPurchase(text)
	}
	if criteria, ok := strings.CutPrefix(action, "recommend_"); ok {
		return b.comp.Service.RecommendByCriteria(criteria)
	}
	if responses := b.catalog.FirstResponsesForAction(action); len(responses) > 0 {
		return b.pick(responses)
	}
	b.logger.Warn("unknown intent action", "action", action)
	return genericAcknowledgment
}

func (b *Bot) casualResponse(state *State, p domain.IntentPrediction, sent domain.SentimentResult) string {
	b.count(func(s *Stats) { s.Casual++ })
	state.CasualTopicsDiscussed[p.Intent] = struct{}{}

	data, _ := b.catalog.Get(p.Intent)
	if len(data.Responses) > 0 && p.Confidence > b.cfg.IntentConfidenceMin {
		response := b.pick(data.Responses)
		if p.Intent == "greeting" && state.MessageCount > 1 {
			response += b.pick(greetingFollowUps)
		}
		return response
	}
	return b.pick(sentiment.EmotionResponses(sent))
}

// keywordResponse runs the direct keyword handlers in their fixed order.
func (b *Bot) keywordResponse(text string) (string, bool) {
	lowered := strings.ToLower(text)
	switch {
	case containsAny(lowered, recommendKeywords):
		return recommendHelp, true
	case containsAny(lowered, purchaseKeywords):
		return purchaseHelp, true
	case containsAny(lowered, catalogKeywords):
		return b.comp.Service.ShowCatalog(), true
	case containsAny(lowered, priceKeywords):
		return b.comp.Service.ShowPrices(), true
	case containsAny(lowered, maleKeywords):
		return b.comp.Service.RecommendByGender("мужской"), true
	case containsAny(lowered, femaleKeywords):
		return b.comp.Service.RecommendByGender("женский"), true
	case containsAny(lowered, friendlyKeywords):
		return b.pick(friendlyResponses), true
	}
	return "", false
}

func (b *Bot) isBusiness(intent string) bool {
	_, ok := b.business[intent]
	return ok
}

func (b *Bot) isCasual(intent string) bool {
	_, ok := b.casual[intent]
	return ok
}

func (b *Bot) pick(options []string) string {
	if len(options) == 0 {
		return ""
	}
	b.randMu.Lock()
	defer b.randMu.Unlock()
	return options[b.rand.Intn(len(options))]
}

func (b *Bot) count(update func(*Stats)) {
	b.statsMu.Lock()
	defer b.statsMu.Unlock()
	update(&b.stats)
}

func toSet(items []string) map[string]struct{} {
	set := make(map[string]struct{}, len(items))
	for _, item := range items {
		set[item] = struct{}{}
	}
	return set
}
