package classifier

import (
	"math"
	"sort"
)

// MultinomialNB is a multinomial naive Bayes classifier over non-negative
// feature vectors. Fields are exported for the versioned model artifact.
type MultinomialNB struct {
	Alpha          float64     `json:"alpha"`
	Classes        []string    `json:"classes"`
	ClassLogPrior  []float64   `json:"class_log_prior"`
	FeatureLogProb [][]float64 `json:"feature_log_prob"`
}

func NewMultinomialNB(alpha float64) *MultinomialNB {
	if alpha <= 0 {
		alpha = 1.0
	}
	return &MultinomialNB{Alpha: alpha}
}

// Fit estimates class priors and smoothed per-class feature likelihoods.
func (nb *MultinomialNB) Fit(x [][]float64, y []string) {
	classSet := make(map[string]struct{}, len(y))
	for _, label := range y {
		classSet[label] = struct{}{}
	}
	classes := make([]string, 0, len(classSet))
	for label := range classSet {
		classes = append(classes, label)
	}
	sort.Strings(classes)

	classIdx := make(map[string]int, len(classes))
	for i, label := range classes {
		classIdx[label] = i
	}

	features := 0
	if len(x) > 0 {
		features = len(x[0])
	}

	counts := make([]float64, len(classes))
	featureSums := make([][]float64, len(classes))
	for i := range featureSums {
		featureSums[i] = make([]float64, features)
	}
	for i, row := range x {
		c := classIdx[y[i]]
		counts[c]++
		for j, val := range row {
			featureSums[c][j] += val
		}
	}

	nb.Classes = classes
	nb.ClassLogPrior = make([]float64, len(classes))
	nb.FeatureLogProb = make([][]float64, len(classes))
	total := float64(len(y))
	for c := range classes {
		nb.ClassLogPrior[c] = math.Log(counts[c] / total)
		var classTotal float64
		for _, s := range featureSums[c] {
			classTotal += s
		}
		denom := classTotal + nb.Alpha*float64(features)
		nb.FeatureLogProb[c] = make([]float64, features)
		for j := range nb.FeatureLogProb[c] {
			nb.FeatureLogProb[c][j] = math.Log((featureSums[c][j] + nb.Alpha) / denom)
		}
	}
}

// PredictProba returns the normalized class posterior for one vector, in
// the order of Classes.
func (nb *MultinomialNB) PredictProba(x []float64) []float64 {
	joint := make([]float64, len(nb.Classes))
	for c := range nb.Classes {
		ll := nb.ClassLogPrior[c]
		probs := nb.FeatureLogProb[c]
		for j, val := range x {
			if val != 0 {
				ll += val * probs[j]
			}
		}
		joint[c] = ll
	}

	// Log-sum-exp normalization.
	maxLL := math.Inf(-1)
	for _, ll := range joint {
		if ll > maxLL {
			maxLL = ll
		}
	}
	var sum float64
	out := make([]float64, len(joint))
	for c, ll := range joint {
		out[c] = math.Exp(ll - maxLL)
		sum += out[c]
	}
	if sum > 0 {
		for c := range out {
			out[c] /= sum
		}
	}
	return out
}

// Predict returns the argmax class with its posterior probability.
func (nb *MultinomialNB) Predict(x []float64) (string, float64) {
	if len(nb.Classes) == 0 {
		return "", 0
	}
	probs := nb.PredictProba(x)
	best := 0
	for c := range probs {
		if probs[c] > probs[best] {
			best = c
		}
	}
	return nb.Classes[best], probs[best]
}

// Features is the dimensionality the classifier was fitted on.
func (nb *MultinomialNB) Features() int {
	if len(nb.FeatureLogProb) == 0 {
		return 0
	}
	return len(nb.FeatureLogProb[0])
}
