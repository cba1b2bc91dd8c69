package classifier

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// FormatVersion guards the persisted artifact. A mismatch on load fails
// closed to the untrained state rather than pairing a vectorizer with a
// classifier from a different feature space.
const FormatVersion = 1

type savedModel struct {
	FormatVersion int            `json:"format_version"`
	Trained       bool           `json:"trained"`
	Vectorizer    *Vectorizer    `json:"vectorizer"`
	Classifier    *MultinomialNB `json:"classifier"`
}

// Save persists the vectorizer+classifier pair and the trained flag as one
// atomic artifact.
func (c *Classifier) Save() error {
	c.mu.RLock()
	m := c.model
	c.mu.RUnlock()

	artifact := savedModel{FormatVersion: FormatVersion}
	if m != nil {
		artifact.Trained = true
		artifact.Vectorizer = m.vectorizer
		artifact.Classifier = m.bayes
	}

	data, err := json.Marshal(artifact)
	if err != nil {
		return fmt.Errorf("encode intent model: %w", err)
	}

	dir := filepath.Dir(c.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create model dir: %w", err)
	}
	tmp, err := os.CreateTemp(dir, ".intent-model-*")
	if err != nil {
		return fmt.Errorf("create temp model file: %w", err)
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("write intent model: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("close intent model: %w", err)
	}
	if err := os.Rename(tmpName, c.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("replace intent model: %w", err)
	}
	return nil
}

// Load reads the persisted pair. Absent, corrupt, incompatible or untrained
// artifacts all leave the classifier in the untrained state; none of them
// is an error to the caller, the pipeline keeps running on fallbacks.
func (c *Classifier) Load() {
	data, err := os.ReadFile(c.path)
	if err != nil {
		if !os.IsNotExist(err) {
			c.logger.Warn("read intent model failed", "path", c.path, "error", err)
		}
		return
	}

	var artifact savedModel
	if err := json.Unmarshal(data, &artifact); err != nil {
		c.logger.Warn("decode intent model failed, staying untrained", "path", c.path, "error", err)
		return
	}
	if artifact.FormatVersion != FormatVersion {
		c.logger.Warn("intent model format mismatch, staying untrained",
			"path", c.path, "got", artifact.FormatVersion, "want", FormatVersion)
		return
	}
	if !artifact.Trained || artifact.Vectorizer == nil || artifact.Classifier == nil {
		return
	}
	if artifact.Vectorizer.Features() != artifact.Classifier.Features() {
		c.logger.Warn("intent model feature space mismatch, staying untrained",
			"vectorizer", artifact.Vectorizer.Features(),
			"classifier", artifact.Classifier.Features())
		return
	}

	c.mu.Lock()
	c.model = &model{vectorizer: artifact.Vectorizer, bayes: artifact.Classifier}
	c.mu.Unlock()
	c.logger.Info("intent model loaded", "path", c.path,
		"classes", len(artifact.Classifier.Classes),
		"features", artifact.Vectorizer.Features())
}
