package conversation

import (
	_ "embed"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed intents.yaml
var intentsYAML []byte

type intentRule struct {
	Name      string   `yaml:"name"`
	Keywords  []string `yaml:"keywords"`
	Responses []string `yaml:"responses"`
}

type intentTable struct {
	Completed     []intentRule `yaml:"completed"`
	FieldKeywords []string     `yaml:"fieldKeywords"`
	Default       string       `yaml:"default"`
}

var intents = loadIntentTable()

func loadIntentTable() intentTable {
	var t intentTable
	if err := yaml.Unmarshal(intentsYAML, &t); err != nil {
		panic("conversation: bad embedded intent table: " + err.Error())
	}
	return t
}

// classify returns the first rule whose keywords match the lowercased
// message, or nil for the default response. Matching is plain substring
// search in table order, so rule order is part of the behavior.
func (t intentTable) classify(lower string) *intentRule {
	for i := range t.Completed {
		for _, kw := range t.Completed[i].Keywords {
			if strings.Contains(lower, kw) {
				return &t.Completed[i]
			}
		}
	}
	return nil
}

func (t intentTable) mentionsTripField(lower string) bool {
	for _, kw := range t.FieldKeywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}
