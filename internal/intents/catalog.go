package intents

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"
)

// Intent is one catalog entry: training examples plus either static
// responses, a business action, or both.
type Intent struct {
	Examples  []string `json:"examples"`
	Responses []string `json:"responses,omitempty"`
	Action    string   `json:"action,omitempty"`
}

// Catalog is the read-only intent table loaded once at startup.
type Catalog struct {
	intents map[string]Intent
}

// Load reads and validates the catalog file. A catalog that fails
// validation is rejected outright; a broken catalog must not be silently
// accepted.
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read intent catalog: %w", err)
	}
	var raw map[string]Intent
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("decode intent catalog: %w", err)
	}
	return FromMap(raw)
}

// FromMap validates and wraps an already-decoded intent table.
func FromMap(raw map[string]Intent) (*Catalog, error) {
	c := &Catalog{intents: raw}
	if problems := c.validate(); len(problems) > 0 {
		return nil, fmt.Errorf("invalid intent catalog: %s", strings.Join(problems, "; "))
	}
	return c, nil
}

func (c *Catalog) validate() []string {
	var problems []string
	seen := make(map[string]string)
	for _, name := range c.Names() {
		intent := c.intents[name]
		if len(intent.Examples) == 0 {
			problems = append(problems, fmt.Sprintf("intent %q has no examples", name))
		}
		for _, example := range intent.Examples {
			if other, dup := seen[example]; dup && other != name {
				problems = append(problems, fmt.Sprintf("example %q appears in both %q and %q", example, other, name))
			}
			seen[example] = name
		}
		if len(intent.Responses) == 0 && intent.Action == "" {
			problems = append(problems, fmt.Sprintf("intent %q has neither responses nor action", name))
		}
	}
	return problems
}

func (c *Catalog) Get(name string) (Intent, bool) {
	intent, ok := c.intents[name]
	return intent, ok
}

// Names returns intent names in sorted order.
func (c *Catalog) Names() []string {
	names := make([]string, 0, len(c.intents))
	for name := range c.intents {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Examples returns the intent->examples table the classifier trains on.
func (c *Catalog) Examples() map[string][]string {
	out := make(map[string][]string, len(c.intents))
	for name, intent := range c.intents {
		out[name] = append([]string(nil), intent.Examples...)
	}
	return out
}

// FirstResponsesForAction returns the static responses of the first intent
// (in name order) declaring the given action. Used as the dispatch fallback
// for action identifiers without a dedicated handler.
func (c *Catalog) FirstResponsesForAction(action string) []string {
	for _, name := range c.Names() {
		intent := c.intents[name]
		if intent.Action == action && len(intent.Responses) > 0 {
			return intent.Responses
		}
	}
	return nil
}

func (c *Catalog) Count() int {
	return len(c.intents)
}

func (c *Catalog) ExampleCount() int {
	total := 0
	for _, intent := range c.intents {
		total += len(intent.Examples)
	}
	return total
}

// FailurePhrases is the fixed pool of generic clarification responses every
// unresolvable message falls back to. Internal error text never reaches the
// user.
func FailurePhrases() []string {
	return []string{
		"Извините, не совсем понял. Можете перефразировать?",
		"Не уловил смысл. Расскажите подробнее о том, что вас интересует?",
		"Хм, интересно... А можете объяснить по-другому?",
		"Давайте начнем сначала. Что именно вы ищете?",
	}
}
