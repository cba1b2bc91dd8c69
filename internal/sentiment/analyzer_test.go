package sentiment

import (
	"testing"

	"aroma/internal/domain"
	"aroma/internal/textproc"
)

func newTestAnalyzer() *Analyzer {
	return New(DefaultConfig(), DefaultLexicon(), textproc.New(textproc.DefaultConfig()))
}

func TestScoreEmptyTokens(t *testing.T) {
	a := newTestAnalyzer()
	got := a.Score(nil)
	if got.Label != domain.SentimentNeutral || got.Score != 0 || got.Confidence != 0 {
		t.Fatalf("result=%+v, want neutral zero", got)
	}
}

func TestScoreNeutralVocabulary(t *testing.T) {
	a := newTestAnalyzer()
	got := a.Score([]string{"стол", "окно", "дорога"})
	if got.Label != domain.SentimentNeutral {
		t.Fatalf("label=%s, want neutral", got.Label)
	}
	if got.Score != 0 || got.Confidence != 0 {
		t.Fatalf("score=%.2f confidence=%.2f, want zeros", got.Score, got.Confidence)
	}
}

func TestScorePositivePhrase(t *testing.T) {
	norm := textproc.New(textproc.DefaultConfig())
	a := New(DefaultConfig(), DefaultLexicon(), norm)
	got := a.Score(norm.Normalize("отличный прекрасный аромат"))
	if got.Label != domain.SentimentPositive {
		t.Fatalf("label=%s score=%.2f, want positive", got.Label, got.Score)
	}
	if got.Score <= 0.1 {
		t.Fatalf("score=%.2f, want > 0.1", got.Score)
	}
}

func TestScoreNegativePhrase(t *testing.T) {
	norm := textproc.New(textproc.DefaultConfig())
	a := New(DefaultConfig(), DefaultLexicon(), norm)
	got := a.Score(norm.Normalize("ужасный резкий неприятный запах"))
	if got.Label != domain.SentimentNegative {
		t.Fatalf("label=%s score=%.2f, want negative", got.Label, got.Score)
	}
}

func TestScoreWithinBounds(t *testing.T) {
	norm := textproc.New(textproc.DefaultConfig())
	a := New(DefaultConfig(), DefaultLexicon(), norm)
	for _, phrase := range []string{
		"восхитительный роскошный отличный",
		"отвратительный ужасный плохой",
		"обычный нормальный средний",
	} {
		got := a.Score(norm.Normalize(phrase))
		if got.Score < -1 || got.Score > 1 {
			t.Fatalf("phrase=%q score=%.2f, want within [-1,1]", phrase, got.Score)
		}
		if got.Confidence < 0 || got.Confidence > 1 {
			t.Fatalf("phrase=%q confidence=%.2f, want within [0,1]", phrase, got.Confidence)
		}
	}
}

func TestConfidenceGrowsWithMatchedFraction(t *testing.T) {
	norm := textproc.New(textproc.DefaultConfig())
	a := New(DefaultConfig(), DefaultLexicon(), norm)

	few := append(norm.Normalize("отличный"), "стол", "окно", "дорога")
	many := norm.Normalize("отличный прекрасный замечательный")

	low := a.Score(few)
	high := a.Score(many)
	if low.Confidence >= high.Confidence {
		t.Fatalf("low=%.2f high=%.2f, want confidence increasing with matched fraction",
			low.Confidence, high.Confidence)
	}
}

func TestEmotionResponsesBuckets(t *testing.T) {
	cases := []struct {
		result domain.SentimentResult
		want   []string
	}{
		{domain.SentimentResult{Label: domain.SentimentPositive, Score: 0.8}, strongPositiveResponses},
		{domain.SentimentResult{Label: domain.SentimentPositive, Score: 0.3}, mildPositiveResponses},
		{domain.SentimentResult{Label: domain.SentimentNegative, Score: -0.8}, strongNegativeResponses},
		{domain.SentimentResult{Label: domain.SentimentNegative, Score: -0.3}, mildNegativeResponses},
		{domain.SentimentResult{Label: domain.SentimentNeutral}, neutralResponses},
	}
	for _, tc := range cases {
		got := EmotionResponses(tc.result)
		if len(got) == 0 || got[0] != tc.want[0] {
			t.Fatalf("label=%s score=%.2f: wrong pool", tc.result.Label, tc.result.Score)
		}
	}
}
