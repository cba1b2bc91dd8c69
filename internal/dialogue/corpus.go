package dialogue

import (
	"log/slog"
	"os"
	"strings"
	"sync"

	"aroma/internal/domain"
)

// ParseCorpus reads alternating "Q:"/"A:" lines into question/answer pairs.
// Both the Latin "A:" and the Cyrillic "А:" answer markers are accepted. A
// question without an answer before the next question is discarded.
func ParseCorpus(content string) []domain.DialogueEntry {
	var entries []domain.DialogueEntry
	var question string
	haveQuestion := false

	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		switch {
		case strings.HasPrefix(line, "Q:"):
			question = strings.TrimSpace(line[2:])
			haveQuestion = question != ""
		case strings.HasPrefix(line, "A:") && haveQuestion:
			answer := strings.TrimSpace(line[2:])
			if answer != "" {
				entries = append(entries, domain.DialogueEntry{Question: question, Answer: answer})
			}
			haveQuestion = false
		case strings.HasPrefix(line, "А:") && haveQuestion:
			answer := strings.TrimSpace(line[len("А:"):])
			if answer != "" {
				entries = append(entries, domain.DialogueEntry{Question: question, Answer: answer})
			}
			haveQuestion = false
		}
	}
	return entries
}

// Source lazily loads and caches the corpus file. A read failure is not an
// error to callers: the corpus is simply empty and fallback matching finds
// nothing. Refresh re-reads the file when the host replaces it.
type Source struct {
	path   string
	logger *slog.Logger

	mu      sync.RWMutex
	entries []domain.DialogueEntry
	loaded  bool
}

func NewSource(path string, logger *slog.Logger) *Source {
	if logger == nil {
		logger = slog.Default()
	}
	return &Source{path: path, logger: logger}
}

func (s *Source) Entries() []domain.DialogueEntry {
	s.mu.RLock()
	if s.loaded {
		defer s.mu.RUnlock()
		return s.entries
	}
	s.mu.RUnlock()

	s.Refresh()

	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.entries
}

func (s *Source) Refresh() {
	data, err := os.ReadFile(s.path)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.loaded = true
	if err != nil {
		if !os.IsNotExist(err) {
			s.logger.Warn("read dialogue corpus failed", "path", s.path, "error", err)
		}
		s.entries = nil
		return
	}
	s.entries = ParseCorpus(string(data))
}
