package classifier

import (
	"errors"
	"log/slog"
	"math/rand"
	"sort"
	"strings"
	"sync"
	"time"

	"aroma/internal/domain"
)

var ErrNotEnoughData = errors.New("not enough training data")

type Config struct {
	NGramMin    int
	NGramMax    int
	MaxFeatures int
	MinDF       int
	MaxDF       float64
	Alpha       float64
	// AugmentBelow oversamples intents with fewer examples than this.
	AugmentBelow int
	// AugmentChance is the per-word probability of a synonym substitution.
	AugmentChance float64
	// HoldoutAbove enables the stratified 80/20 split once the corpus
	// exceeds this many examples; below it, accuracy is evaluated on the
	// training set itself.
	HoldoutAbove int
	TestFraction float64
	MinExamples  int
}

func DefaultConfig() Config {
	return Config{
		NGramMin:      1,
		NGramMax:      2,
		MaxFeatures:   1000,
		MinDF:         1,
		MaxDF:         0.95,
		Alpha:         1.0,
		AugmentBelow:  15,
		AugmentChance: 0.3,
		HoldoutAbove:  20,
		TestFraction:  0.2,
		MinExamples:   10,
	}
}

type Normalizer interface {
	NormalizeJoined(raw string) string
}

// TrainingReport is diagnostic output only; accuracy on a small corpus is
// evaluated on the training set and therefore optimistic.
type TrainingReport struct {
	Samples  int      `json:"samples"`
	Accuracy float64  `json:"accuracy"`
	Classes  []string `json:"classes"`
	HeldOut  bool     `json:"held_out"`
}

type model struct {
	vectorizer *Vectorizer
	bayes      *MultinomialNB
}

// Classifier predicts the intent of a normalized message. It stays usable
// untrained: predictions then are always the zero value. The trained model
// is swapped as one unit under the lock, so retraining is safe against
// concurrent predictions.
type Classifier struct {
	cfg      Config
	norm     Normalizer
	path     string
	rng      *rand.Rand
	rngMu    sync.Mutex
	logger   *slog.Logger
	synonyms map[string][]string

	mu    sync.RWMutex
	model *model
}

func New(cfg Config, norm Normalizer, modelPath string, rng *rand.Rand, logger *slog.Logger) *Classifier {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if logger == nil {
		logger = slog.Default()
	}
	c := &Classifier{
		cfg:    cfg,
		norm:   norm,
		path:   modelPath,
		rng:    rng,
		logger: logger,
	}
	c.synonyms = rekeySynonyms(defaultSynonyms(), norm)
	return c
}

// Trained reports whether a model pair is loaded.
func (c *Classifier) Trained() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.model != nil
}

// Train fits a fresh vectorizer+classifier pair from intent examples and
// swaps it in. Examples are lemmatized through the normalizer so the model
// input distribution matches runtime messages.
func (c *Classifier) Train(examples map[string][]string) (TrainingReport, error) {
	docs, labels := c.prepareTrainingData(examples)
	if len(docs) < c.cfg.MinExamples {
		return TrainingReport{}, ErrNotEnoughData
	}

	vec := NewVectorizer(c.cfg.NGramMin, c.cfg.NGramMax, c.cfg.MaxFeatures, c.cfg.MinDF, c.cfg.MaxDF)
	vec.Fit(docs)

	x := make([][]float64, len(docs))
	for i, doc := range docs {
		x[i] = vec.Transform(doc)
	}

	trainIdx, testIdx, heldOut := c.split(labels)
	nb := NewMultinomialNB(c.cfg.Alpha)
	nb.Fit(pick(x, trainIdx), pickLabels(labels, trainIdx))

	correct := 0
	for _, i := range testIdx {
		predicted, _ := nb.Predict(x[i])
		if predicted == labels[i] {
			correct++
		}
	}
	accuracy := 0.0
	if len(testIdx) > 0 {
		accuracy = float64(correct) / float64(len(testIdx))
	}

	// The split model exists only for the accuracy estimate. The model that
	// serves predictions is fitted on every example, so no intent loses its
	// rare phrasings to the held-out set.
	if heldOut {
		nb = NewMultinomialNB(c.cfg.Alpha)
		nb.Fit(x, labels)
	}

	c.mu.Lock()
	c.model = &model{vectorizer: vec, bayes: nb}
	c.mu.Unlock()

	report := TrainingReport{
		Samples:  len(docs),
		Accuracy: accuracy,
		Classes:  nb.Classes,
		HeldOut:  heldOut,
	}
	c.logger.Info("intent model trained",
		"samples", report.Samples, "classes", len(report.Classes),
		"accuracy", report.Accuracy, "held_out", report.HeldOut)
	return report, nil
}

// Predict returns the top intent and its probability for pre-normalized
// text. Untrained model, empty text, or an internal inconsistency all
// reduce to the zero prediction; the caller must not be able to tell these
// apart from a low-confidence result.
func (c *Classifier) Predict(normalizedText string) domain.IntentPrediction {
	if strings.TrimSpace(normalizedText) == "" {
		return domain.IntentPrediction{}
	}

	c.mu.RLock()
	m := c.model
	c.mu.RUnlock()
	if m == nil {
		return domain.IntentPrediction{}
	}

	x := m.vectorizer.Transform(normalizedText)
	if len(x) != m.bayes.Features() {
		c.logger.Warn("intent model feature space mismatch",
			"vectorizer", len(x), "classifier", m.bayes.Features())
		return domain.IntentPrediction{}
	}

	intent, confidence := m.bayes.Predict(x)
	if intent == "" {
		return domain.IntentPrediction{}
	}
	return domain.IntentPrediction{Intent: intent, Confidence: confidence}
}

func (c *Classifier) prepareTrainingData(examples map[string][]string) ([]string, []string) {
	intents := make([]string, 0, len(examples))
	for intent := range examples {
		intents = append(intents, intent)
	}
	sort.Strings(intents)

	var docs, labels []string
	for _, intent := range intents {
		small := len(examples[intent]) < c.cfg.AugmentBelow
		for _, example := range examples[intent] {
			doc := c.norm.NormalizeJoined(example)
			if doc == "" {
				continue
			}
			docs = append(docs, doc)
			labels = append(labels, intent)

			if small {
				if augmented := c.augment(doc); augmented != doc {
					docs = append(docs, augmented)
					labels = append(labels, intent)
				}
			}
		}
	}
	return docs, labels
}

// augment probabilistically rewrites words through the synonym table. It is
// best effort: when no substitution fires the document is returned as-is
// and no extra pair is produced.
func (c *Classifier) augment(doc string) string {
	words := strings.Fields(doc)
	changed := false
	for i, word := range words {
		alts, ok := c.synonyms[word]
		if !ok || len(alts) == 0 {
			continue
		}
		c.rngMu.Lock()
		fire := c.rng.Float64() < c.cfg.AugmentChance
		var pickIdx int
		if fire {
			pickIdx = c.rng.Intn(len(alts))
		}
		c.rngMu.Unlock()
		if fire {
			words[i] = alts[pickIdx]
			changed = true
		}
	}
	if !changed {
		return doc
	}
	return strings.Join(words, " ")
}

// split returns train/test index sets, stratified by label once the corpus
// is large enough; otherwise both sets are the whole corpus.
func (c *Classifier) split(labels []string) (train, test []int, heldOut bool) {
	if len(labels) <= c.cfg.HoldoutAbove {
		all := make([]int, len(labels))
		for i := range labels {
			all[i] = i
		}
		return all, all, false
	}

	byLabel := make(map[string][]int)
	for i, label := range labels {
		byLabel[label] = append(byLabel[label], i)
	}
	keys := make([]string, 0, len(byLabel))
	for k := range byLabel {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		idx := byLabel[k]
		c.rngMu.Lock()
		c.rng.Shuffle(len(idx), func(i, j int) { idx[i], idx[j] = idx[j], idx[i] })
		c.rngMu.Unlock()
		nTest := int(float64(len(idx)) * c.cfg.TestFraction)
		if nTest == 0 && len(idx) > 1 {
			nTest = 1
		}
		test = append(test, idx[:nTest]...)
		train = append(train, idx[nTest:]...)
	}
	sort.Ints(train)
	sort.Ints(test)
	return train, test, true
}

func pick(x [][]float64, idx []int) [][]float64 {
	out := make([][]float64, len(idx))
	for i, j := range idx {
		out[i] = x[j]
	}
	return out
}

func pickLabels(labels []string, idx []int) []string {
	out := make([]string, len(idx))
	for i, j := range idx {
		out[i] = labels[j]
	}
	return out
}

func defaultSynonyms() map[string][]string {
	return map[string][]string{
		"духи":   {"парфюм", "аромат", "запах"},
		"покажи": {"продемонстрируй", "представь", "покажите"},
		"хочу":   {"желаю", "нужно", "планирую"},
		"купить": {"приобрести", "заказать", "взять"},
		"цена":   {"стоимость", "ценник", "прайс"},
		"привет": {"здравствуй", "добрый день", "салют"},
		"пока":   {"до свидания", "прощай", "всего хорошего"},
	}
}

// rekeySynonyms moves both keys and replacements into lemma space so the
// table applies to already-normalized training documents.
func rekeySynonyms(raw map[string][]string, norm Normalizer) map[string][]string {
	out := make(map[string][]string, len(raw))
	for word, alts := range raw {
		key := norm.NormalizeJoined(word)
		if key == "" || strings.Contains(key, " ") {
			continue
		}
		kept := make([]string, 0, len(alts))
		for _, alt := range alts {
			if n := norm.NormalizeJoined(alt); n != "" {
				kept = append(kept, n)
			}
		}
		if len(kept) > 0 {
			out[key] = kept
		}
	}
	return out
}
