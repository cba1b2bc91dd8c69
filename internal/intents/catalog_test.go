package intents

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func validTable() map[string]Intent {
	return map[string]Intent{
		"greeting": {
			Examples:  []string{"привет", "добрый день"},
			Responses: []string{"Привет!"},
		},
		"price_inquiry": {
			Examples: []string{"сколько стоит", "какая цена"},
			Action:   "show_prices",
		},
	}
}

func TestFromMapValid(t *testing.T) {
	c, err := FromMap(validTable())
	if err != nil {
		t.Fatalf("valid catalog rejected: %v", err)
	}
	if c.Count() != 2 || c.ExampleCount() != 4 {
		t.Fatalf("count=%d examples=%d, want 2/4", c.Count(), c.ExampleCount())
	}
}

func TestFromMapRejectsEmptyExamples(t *testing.T) {
	table := validTable()
	table["broken"] = Intent{Responses: []string{"ответ"}}
	if _, err := FromMap(table); err == nil {
		t.Fatalf("catalog with empty examples accepted")
	}
}

func TestFromMapRejectsDuplicateExamples(t *testing.T) {
	table := validTable()
	table["copycat"] = Intent{Examples: []string{"привет"}, Responses: []string{"хай"}}
	_, err := FromMap(table)
	if err == nil {
		t.Fatalf("duplicate example across intents accepted")
	}
	if !strings.Contains(err.Error(), "привет") {
		t.Fatalf("err=%v, want duplicate example named", err)
	}
}

func TestFromMapRejectsIntentWithoutOutput(t *testing.T) {
	table := validTable()
	table["mute"] = Intent{Examples: []string{"что-то"}}
	if _, err := FromMap(table); err == nil {
		t.Fatalf("intent without responses or action accepted")
	}
}

func TestFirstResponsesForAction(t *testing.T) {
	table := validTable()
	table["alt_prices"] = Intent{
		Examples:  []string{"почем"},
		Responses: []string{"Цены на сайте!"},
		Action:    "show_prices",
	}
	c, err := FromMap(table)
	if err != nil {
		t.Fatalf("catalog rejected: %v", err)
	}
	got := c.FirstResponsesForAction("show_prices")
	// alt_prices sorts before price_inquiry and carries responses.
	if len(got) != 1 || got[0] != "Цены на сайте!" {
		t.Fatalf("responses=%v, want alt_prices responses", got)
	}
	if got := c.FirstResponsesForAction("no_such_action"); got != nil {
		t.Fatalf("responses=%v, want nil for unknown action", got)
	}
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "intents.json")
	payload := `{
		"greeting": {"examples": ["привет"], "responses": ["Здравствуйте!"]},
		"perfume_catalog": {"examples": ["покажи каталог"], "action": "show_catalog"}
	}`
	if err := os.WriteFile(path, []byte(payload), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	c, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	intent, ok := c.Get("perfume_catalog")
	if !ok || intent.Action != "show_catalog" {
		t.Fatalf("intent=%+v ok=%v, want perfume_catalog with action", intent, ok)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.json")); err == nil {
		t.Fatalf("missing catalog file accepted")
	}
}
