package sharestate

import (
	"encoding/json"

	"devcanvas/internal/portfolio"
)

// ToOverrides converts a decoded share state into a typed override layer.
// Fields absent from the state stay nil. A nil or unusable state yields nil.
func ToOverrides(state map[string]any) *portfolio.Overrides {
	if state == nil {
		return nil
	}
	raw, err := json.Marshal(state)
	if err != nil {
		return nil
	}
	var ov portfolio.Overrides
	if err := json.Unmarshal(raw, &ov); err != nil {
		return nil
	}
	return &ov
}
