package app

import (
	"encoding/json"
)

// ParseDisplayConfig decodes a component-level display-options blob.
// Malformed JSON is silently replaced with an empty configuration
// object and never propagated.
func ParseDisplayConfig(raw string) map[string]any {
	if raw == "" {
		return map[string]any{}
	}
	var cfg map[string]any
	if err := json.Unmarshal([]byte(raw), &cfg); err != nil || cfg == nil {
		return map[string]any{}
	}
	return cfg
}
