package sharestate

import (
	"encoding/base64"
	"reflect"
	"strings"
	"testing"
)

func TestEncodeDecodeRoundTrip(t *testing.T) {
	state := map[string]any{
		"name": "Ada Lovelace",
		"bio":  "Analyst & metaphysician",
		"experience": []any{
			map[string]any{
				"role":        "Engine Designer",
				"company":     "Analytical Engines Ltd",
				"duration":    "1842 - 1843",
				"description": []any{"Wrote the first program"},
			},
		},
	}

	decoded := Decode(Encode(state))
	if !reflect.DeepEqual(decoded, state) {
		t.Fatalf("round trip mismatch:\n got  %#v\n want %#v", decoded, state)
	}
}

func TestEncodeMinifiesKeys(t *testing.T) {
	encoded := Encode(map[string]any{"name": "Ada", "summary": "Pioneer"})

	raw, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		t.Fatalf("output is not base64: %v", err)
	}
	payload := string(raw)
	if !strings.Contains(payload, `"n":"Ada"`) || !strings.Contains(payload, `"u":"Pioneer"`) {
		t.Errorf("keys not minified: %s", payload)
	}
	if strings.Contains(payload, `"name"`) || strings.Contains(payload, `"summary"`) {
		t.Errorf("long keys leaked: %s", payload)
	}
}

func TestDecodeUnknownKeysPassThrough(t *testing.T) {
	state := map[string]any{"name": "Ada", "customField": "kept"}
	decoded := Decode(Encode(state))
	if decoded["customField"] != "kept" {
		t.Errorf("unknown key lost: %#v", decoded)
	}
}

func TestDecodeInvalidInputYieldsNil(t *testing.T) {
	cases := map[string]string{
		"empty":          "",
		"not base64":     "!!!not-base64!!!",
		"not json":       base64.StdEncoding.EncodeToString([]byte("not json")),
		"not an object":  base64.StdEncoding.EncodeToString([]byte(`[1,2,3]`)),
		"scalar payload": base64.StdEncoding.EncodeToString([]byte(`42`)),
	}

	for name, input := range cases {
		if got := Decode(input); got != nil {
			t.Errorf("%s: Decode(%q) = %#v, want nil", name, input, got)
		}
	}
}

func TestDecodeAcceptsStrippedPadding(t *testing.T) {
	encoded := Encode(map[string]any{"name": "Ada"})
	trimmed := strings.TrimRight(encoded, "=")
	if trimmed == encoded {
		t.Skip("encoded form carries no padding")
	}

	decoded := Decode(trimmed)
	if decoded == nil || decoded["name"] != "Ada" {
		t.Errorf("padding-stripped decode failed: %#v", decoded)
	}
}

func TestReverseMapCoversEveryKey(t *testing.T) {
	if len(reverseKeyMap) != len(keyMap) {
		t.Fatalf("short-code collision: %d keys map to %d codes", len(keyMap), len(reverseKeyMap))
	}
	for long, short := range keyMap {
		if reverseKeyMap[short] != long {
			t.Errorf("reverse mapping broken for %q", long)
		}
	}
}

func TestToOverrides(t *testing.T) {
	ov := ToOverrides(map[string]any{
		"name": "Ada",
		"bio":  "Pioneer",
		"experience": []any{
			map[string]any{"role": "Designer", "description": []any{"x"}},
		},
	})
	if ov == nil {
		t.Fatal("overrides should decode")
	}
	if ov.Name == nil || *ov.Name != "Ada" {
		t.Errorf("name = %v", ov.Name)
	}
	if ov.Email != nil {
		t.Errorf("absent field should stay nil, got %v", *ov.Email)
	}
	if ov.Experience == nil || (*ov.Experience)[0].Role != "Designer" {
		t.Errorf("experience = %v", ov.Experience)
	}

	if ToOverrides(nil) != nil {
		t.Error("nil state should yield nil overrides")
	}
}
