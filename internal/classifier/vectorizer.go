package classifier

import (
	"math"
	"sort"
	"strings"
)

// Vectorizer is a word n-gram tf-idf vectorizer with a bounded vocabulary.
// Input documents are expected to be pre-normalized, space-joined lemmas.
// All fields are exported for the versioned model artifact.
type Vectorizer struct {
	NGramMin    int            `json:"ngram_min"`
	NGramMax    int            `json:"ngram_max"`
	MaxFeatures int            `json:"max_features"`
	MinDF       int            `json:"min_df"`
	MaxDF       float64        `json:"max_df"`
	Vocabulary  map[string]int `json:"vocabulary"`
	IDF         []float64      `json:"idf"`
}

func NewVectorizer(ngramMin, ngramMax, maxFeatures, minDF int, maxDF float64) *Vectorizer {
	if ngramMin < 1 {
		ngramMin = 1
	}
	if ngramMax < ngramMin {
		ngramMax = ngramMin
	}
	return &Vectorizer{
		NGramMin:    ngramMin,
		NGramMax:    ngramMax,
		MaxFeatures: maxFeatures,
		MinDF:       minDF,
		MaxDF:       maxDF,
	}
}

func (v *Vectorizer) ngrams(doc string) []string {
	words := strings.Fields(doc)
	var grams []string
	for n := v.NGramMin; n <= v.NGramMax; n++ {
		for i := 0; i+n <= len(words); i++ {
			grams = append(grams, strings.Join(words[i:i+n], " "))
		}
	}
	return grams
}

// Fit builds the vocabulary and idf table from the corpus. Terms outside
// the document-frequency bounds are discarded; when more terms survive than
// MaxFeatures, the most frequent ones are kept. Vocabulary order is
// alphabetical, so fitting the same corpus always yields the same feature
// space.
func (v *Vectorizer) Fit(docs []string) {
	df := make(map[string]int)
	tf := make(map[string]int)
	for _, doc := range docs {
		seen := make(map[string]struct{})
		for _, g := range v.ngrams(doc) {
			tf[g]++
			seen[g] = struct{}{}
		}
		for g := range seen {
			df[g]++
		}
	}

	maxDocs := int(v.MaxDF * float64(len(docs)))
	if maxDocs < v.MinDF {
		maxDocs = len(docs)
	}
	terms := make([]string, 0, len(df))
	for term, count := range df {
		if count < v.MinDF || count > maxDocs {
			continue
		}
		terms = append(terms, term)
	}

	if v.MaxFeatures > 0 && len(terms) > v.MaxFeatures {
		sort.Slice(terms, func(i, j int) bool {
			if tf[terms[i]] != tf[terms[j]] {
				return tf[terms[i]] > tf[terms[j]]
			}
			return terms[i] < terms[j]
		})
		terms = terms[:v.MaxFeatures]
	}
	sort.Strings(terms)

	v.Vocabulary = make(map[string]int, len(terms))
	v.IDF = make([]float64, len(terms))
	n := float64(len(docs))
	for i, term := range terms {
		v.Vocabulary[term] = i
		v.IDF[i] = math.Log((1+n)/(1+float64(df[term]))) + 1
	}
}

// Transform maps one document into the fitted feature space, l2-normalized.
func (v *Vectorizer) Transform(doc string) []float64 {
	x := make([]float64, len(v.IDF))
	for _, g := range v.ngrams(doc) {
		if idx, ok := v.Vocabulary[g]; ok {
			x[idx]++
		}
	}
	var norm float64
	for i := range x {
		if x[i] == 0 {
			continue
		}
		x[i] *= v.IDF[i]
		norm += x[i] * x[i]
	}
	if norm > 0 {
		norm = math.Sqrt(norm)
		for i := range x {
			x[i] /= norm
		}
	}
	return x
}

// Features is the dimensionality of the fitted feature space.
func (v *Vectorizer) Features() int {
	return len(v.IDF)
}
