package dialogue

import (
	"os"
	"path/filepath"
	"testing"

	"aroma/internal/domain"
)

const sampleCorpus = `
Q: как тебя зовут
A: Меня зовут Ароматик, я помогаю выбирать духи.

Q: что ты умеешь
А: Я рассказываю об ароматах, ценах и акциях.

Q: вопрос без ответа

Q: где вы находитесь
A: Мы онлайн-магазин, доставляем по всей стране.
`

func TestParseCorpusPairsAndDiscards(t *testing.T) {
	entries := ParseCorpus(sampleCorpus)
	if len(entries) != 3 {
		t.Fatalf("entries=%d, want 3 (unanswered question discarded)", len(entries))
	}
	if entries[0].Question != "как тебя зовут" {
		t.Fatalf("question=%q, want %q", entries[0].Question, "как тебя зовут")
	}
	// Cyrillic answer marker accepted.
	if entries[1].Answer != "Я рассказываю об ароматах, ценах и акциях." {
		t.Fatalf("answer=%q, wrong pair for Cyrillic marker", entries[1].Answer)
	}
}

func TestMatchExactQuestion(t *testing.T) {
	m := NewMatcher(DefaultConfig())
	entries := ParseCorpus(sampleCorpus)
	got, ok := m.Match("как тебя зовут", entries)
	if !ok {
		t.Fatalf("no match for exact question")
	}
	if got != entries[0].Answer {
		t.Fatalf("answer=%q, want %q", got, entries[0].Answer)
	}
}

func TestMatchIgnoresPunctuationAndCase(t *testing.T) {
	m := NewMatcher(DefaultConfig())
	entries := ParseCorpus(sampleCorpus)
	got, ok := m.Match("Как тебя зовут???", entries)
	if !ok || got != entries[0].Answer {
		t.Fatalf("answer=%q ok=%v, want exact-match behavior through normalization", got, ok)
	}
}

func TestMatchTreatsUnderscoresAsSeparators(t *testing.T) {
	m := NewMatcher(DefaultConfig())
	entries := ParseCorpus(sampleCorpus)
	got, ok := m.Match("как_тебя_зовут", entries)
	if !ok || got != entries[0].Answer {
		t.Fatalf("answer=%q ok=%v, want underscores collapsed like punctuation", got, ok)
	}
}

func TestMatchApproximate(t *testing.T) {
	m := NewMatcher(DefaultConfig())
	entries := []domain.DialogueEntry{
		{Question: "как тебя зовут дружок", Answer: "Ароматик!"},
	}
	got, ok := m.Match("как тебя завут дружок", entries)
	if !ok || got != "Ароматик!" {
		t.Fatalf("answer=%q ok=%v, want fuzzy match over a typo", got, ok)
	}
}

func TestMatchRejectsUnrelated(t *testing.T) {
	m := NewMatcher(DefaultConfig())
	entries := ParseCorpus(sampleCorpus)
	if got, ok := m.Match("расскажи пожалуйста про погоду в африке прямо сейчас же", entries); ok {
		t.Fatalf("answer=%q, want no match for unrelated long query", got)
	}
}

func TestMatchEmptyInputs(t *testing.T) {
	m := NewMatcher(DefaultConfig())
	if _, ok := m.Match("", ParseCorpus(sampleCorpus)); ok {
		t.Fatalf("matched empty query")
	}
	if _, ok := m.Match("как тебя зовут", nil); ok {
		t.Fatalf("matched against empty corpus")
	}
}

func TestSourceMissingFile(t *testing.T) {
	s := NewSource(filepath.Join(t.TempDir(), "absent.txt"), nil)
	if got := s.Entries(); len(got) != 0 {
		t.Fatalf("entries=%v, want none for missing file", got)
	}
}

func TestSourceRefresh(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dialogues.txt")
	if err := os.WriteFile(path, []byte("Q: раз\nA: один\n"), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	s := NewSource(path, nil)
	if got := s.Entries(); len(got) != 1 {
		t.Fatalf("entries=%d, want 1", len(got))
	}

	if err := os.WriteFile(path, []byte("Q: раз\nA: один\nQ: два\nA: два ответ\n"), 0o644); err != nil {
		t.Fatalf("rewrite fixture: %v", err)
	}
	s.Refresh()
	if got := s.Entries(); len(got) != 2 {
		t.Fatalf("entries=%d after refresh, want 2", len(got))
	}
}
