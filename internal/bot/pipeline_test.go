package bot

import (
	"math/rand"
	"path/filepath"
	"strings"
	"testing"

	"aroma/internal/classifier"
	"aroma/internal/dialogue"
	"aroma/internal/domain"
	"aroma/internal/intents"
	"aroma/internal/perfume"
	"aroma/internal/sentiment"
	"aroma/internal/textproc"
	"aroma/internal/topic"
)

// newPipelineBot assembles the full production pipeline over the shipped
// intent catalog with fixed seeds, the way cmd/aroma-server wires it. The
// dialogue corpus is left empty so every reply comes from a deterministic
// strategy.
func newPipelineBot(t *testing.T) (*Bot, *intents.Catalog, *perfume.Service) {
	t.Helper()

	catalog, err := intents.Load(filepath.Join("..", "..", "configs", "intents.json"))
	if err != nil {
		t.Fatalf("load intent catalog: %v", err)
	}

	norm := textproc.New(textproc.DefaultConfig())
	clf := classifier.New(classifier.DefaultConfig(), norm,
		filepath.Join(t.TempDir(), "intent-model.json"), rand.New(rand.NewSource(1)), nil)
	if _, err := clf.Train(catalog.Examples()); err != nil {
		t.Fatalf("train on shipped catalog: %v", err)
	}

	svc := perfume.NewService()
	bot := New(DefaultConfig(), catalog, Components{
		Normalizer: norm,
		Sentiment:  sentiment.New(sentiment.DefaultConfig(), sentiment.DefaultLexicon(), norm),
		Topics:     topic.New(topic.DefaultTopics(), norm),
		Intents:    clf,
		Dialogues: dialogue.NewFallback(
			dialogue.NewSource(filepath.Join(t.TempDir(), "absent.txt"), nil),
			dialogue.NewMatcher(dialogue.DefaultConfig())),
		Service: svc,
		Rand:    rand.New(rand.NewSource(1)),
	}, nil)
	return bot, catalog, svc
}

func oneOf(text string, options []string) bool {
	for _, opt := range options {
		if text == opt {
			return true
		}
	}
	return false
}

func TestPipelineGreeting(t *testing.T) {
	bot, catalog, _ := newPipelineBot(t)
	state := NewState()

	reply := bot.Respond(state, "привет")
	if reply.Intent != "greeting" {
		t.Fatalf("Respond(привет)=%+v, want greeting intent", reply)
	}
	if reply.Stage != domain.StageCasual {
		t.Fatalf("stage=%q, want %q", reply.Stage, domain.StageCasual)
	}
	if state.CasualMessageCount != 1 || state.MessageCount != 1 {
		t.Fatalf("state=%+v, want one casual message counted", state)
	}
	greeting, _ := catalog.Get("greeting")
	if !oneOf(reply.Text, greeting.Responses) {
		t.Fatalf("reply=%q, want one of the greeting responses", reply.Text)
	}
}

func TestPipelineCasualStreakWarmsUp(t *testing.T) {
	bot, _, _ := newPipelineBot(t)
	state := NewState()

	for i := 0; i < 3; i++ {
		if reply := bot.Respond(state, "привет"); strings.Contains(reply.Text, "\n\n") {
			t.Fatalf("message %d already carries the business offer: %q", i+1, reply.Text)
		}
	}
	fourth := bot.Respond(state, "привет")
	if !strings.Contains(fourth.Text, "\n\n") {
		t.Fatalf("fourth casual reply=%q, want appended business offer", fourth.Text)
	}
	if fourth.Stage != domain.StageWarmingUp || !state.OfferMade {
		t.Fatalf("stage=%q offerMade=%v, want warming up after the streak", fourth.Stage, state.OfferMade)
	}

	fifth := bot.Respond(state, "привет")
	if strings.Contains(fifth.Text, "\n\n") {
		t.Fatalf("fifth reply=%q, offer must not repeat", fifth.Text)
	}
	if fifth.Stage != domain.StageWarmingUp {
		t.Fatalf("stage=%q, want %q retained", fifth.Stage, domain.StageWarmingUp)
	}
}

func TestPipelinePriceQuestionWithLatinBrand(t *testing.T) {
	bot, _, svc := newPipelineBot(t)
	state := NewState()

	bot.Respond(state, "привет")
	reply := bot.Respond(state, "сколько стоит Dior Sauvage?")
	if reply.Intent != "price_inquiry" {
		t.Fatalf("Respond(price question)=%+v, want price_inquiry", reply)
	}
	if reply.Stage != domain.StageBusiness {
		t.Fatalf("stage=%q, want %q", reply.Stage, domain.StageBusiness)
	}
	if state.CasualMessageCount != 0 {
		t.Fatalf("casual streak=%d, want reset by a business intent", state.CasualMessageCount)
	}
	if reply.Text != svc.ShowPrices() {
		t.Fatalf("reply=%q, want the price listing", reply.Text)
	}
}

func TestPipelineGoodbyeResets(t *testing.T) {
	bot, catalog, _ := newPipelineBot(t)
	state := NewState()

	bot.Respond(state, "привет")
	bot.Respond(state, "сколько стоит Dior Sauvage?")
	reply := bot.Respond(state, "пока")
	if reply.Intent != "goodbye" {
		t.Fatalf("Respond(пока)=%+v, want goodbye intent", reply)
	}
	goodbye, _ := catalog.Get("goodbye")
	if !oneOf(reply.Text, goodbye.Responses) {
		t.Fatalf("reply=%q, want one of the goodbye responses", reply.Text)
	}
	if state.Stage != domain.StageCasual || state.MessageCount != 0 {
		t.Fatalf("state=%+v, want fully reset after goodbye", state)
	}
}

func TestPipelineBrandFallback(t *testing.T) {
	bot, _, svc := newPipelineBot(t)
	state := NewState()

	reply := bot.Respond(state, "интересует chanel")
	if reply.Intent != "brand_chanel" {
		t.Fatalf("Respond(интересует chanel)=%+v, want brand fallback", reply)
	}
	if reply.Stage != domain.StageBusiness {
		t.Fatalf("stage=%q, want %q", reply.Stage, domain.StageBusiness)
	}
	if reply.Text != svc.ShowBrand("Chanel") {
		t.Fatalf("reply=%q, want the Chanel overview", reply.Text)
	}
}

func TestPipelineEmptyInput(t *testing.T) {
	bot, _, _ := newPipelineBot(t)
	state := NewState()

	bot.Respond(state, "привет")
	reply := bot.Respond(state, "   ")
	if !oneOf(reply.Text, intents.FailurePhrases()) {
		t.Fatalf("reply=%q, want a failure phrase", reply.Text)
	}
	if state.MessageCount != 1 {
		t.Fatalf("messageCount=%d, empty input must not be counted", state.MessageCount)
	}
}
