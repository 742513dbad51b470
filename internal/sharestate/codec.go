// Package sharestate encodes user edits into a compact URL-safe string and
// decodes them back. Keys are minified through a fixed table before JSON
// serialization and Base64 encoding, keeping share links short.
package sharestate

import (
	"encoding/base64"
	"encoding/json"
	"log/slog"
)

// keyMap is the single source of truth for key minification. The reverse
// table is derived from it so the two directions can never drift. Unknown
// keys pass through unchanged in both directions.
var keyMap = map[string]string{
	"name":         "n",
	"title":        "t",
	"bio":          "b",
	"experience":   "e",
	"githubSkills": "s",
	"email":        "m",
	"summary":      "u",

	"role":        "r",
	"company":     "c",
	"duration":    "d",
	"description": "x",

	"percentage": "p",
}

var reverseKeyMap = func() map[string]string {
	m := make(map[string]string, len(keyMap))
	for long, short := range keyMap {
		m[short] = long
	}
	return m
}()

// Encode minifies the keys of state, serializes to JSON, and Base64-encodes
// the result. Returns an empty string if state cannot be serialized.
func Encode(state map[string]any) string {
	minified := rewriteKeys(state, keyMap)
	raw, err := json.Marshal(minified)
	if err != nil {
		slog.Error("encode share state", "error", err)
		return ""
	}
	return base64.StdEncoding.EncodeToString(raw)
}

// Decode is the exact inverse of Encode. Any failure, whether in Base64
// decoding, JSON parsing, or a non-object top level, yields nil rather than
// an error so a broken share link renders as if no edits were present.
func Decode(encoded string) map[string]any {
	if encoded == "" {
		return nil
	}

	raw, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		// Browsers sometimes strip trailing padding from URLs.
		raw, err = base64.RawStdEncoding.DecodeString(encoded)
		if err != nil {
			slog.Warn("decode share state: bad base64", "error", err)
			return nil
		}
	}

	var minified any
	if err := json.Unmarshal(raw, &minified); err != nil {
		slog.Warn("decode share state: bad json", "error", err)
		return nil
	}

	state, ok := rewriteKeys(minified, reverseKeyMap).(map[string]any)
	if !ok {
		slog.Warn("decode share state: top level is not an object")
		return nil
	}
	return state
}

// rewriteKeys walks the value recursively, mapping object keys through table.
// Arrays are mapped element-wise; scalars are returned as is.
func rewriteKeys(value any, table map[string]string) any {
	switch v := value.(type) {
	case map[string]any:
		out := make(map[string]any, len(v))
		for key, inner := range v {
			if mapped, ok := table[key]; ok {
				key = mapped
			}
			out[key] = rewriteKeys(inner, table)
		}
		return out
	case []any:
		out := make([]any, len(v))
		for i, inner := range v {
			out[i] = rewriteKeys(inner, table)
		}
		return out
	default:
		return value
	}
}
