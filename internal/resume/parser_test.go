package resume

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func modelServer(t *testing.T, responseText string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !strings.Contains(r.URL.Path, ":generateContent") {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if r.URL.Query().Get("key") == "" {
			t.Error("api key missing from request")
		}
		fmt.Fprintf(w, `{"candidates":[{"content":{"parts":[{"text":%s}]}}]}`, mustJSON(responseText))
	}))
}

func mustJSON(s string) string {
	b, _ := json.Marshal(s)
	return string(b)
}

func TestParseExtractsStructuredData(t *testing.T) {
	server := modelServer(t, `{"name":"Jane Smith","title":"Backend Engineer","summary":"Builds APIs.","email":"jane@example.com","experience":[{"role":"Engineer","company":"Acme","duration":"2020 - Present","description":["Shipped things"]}],"education":[],"skills":["Go","Redis"]}`)
	defer server.Close()

	parser := NewParser(NewLLMClient("test-key", "test-model", server.URL), nil)
	data, fallbackUsed := parser.Parse(context.Background(), []byte("%PDF-1.4 fake"), "jane.pdf")

	if fallbackUsed {
		t.Fatal("fallback used on a good response")
	}
	if data.Name != "Jane Smith" || data.Title != "Backend Engineer" {
		t.Errorf("identity = %q / %q", data.Name, data.Title)
	}
	if data.Contact.Email != "jane@example.com" {
		t.Errorf("flat email not lifted into contact: %+v", data.Contact)
	}
	if len(data.Experience) != 1 || data.Experience[0].Company != "Acme" {
		t.Errorf("experience = %+v", data.Experience)
	}
	if len(data.Skills) != 2 {
		t.Errorf("skills = %v", data.Skills)
	}
}

func TestParseStripsMarkdownFences(t *testing.T) {
	server := modelServer(t, "```json\n{\"name\":\"Jane Smith\",\"title\":\"Engineer\"}\n```")
	defer server.Close()

	parser := NewParser(NewLLMClient("test-key", "test-model", server.URL), nil)
	data, fallbackUsed := parser.Parse(context.Background(), []byte("%PDF-1.4 fake"), "jane.pdf")

	if fallbackUsed {
		t.Fatal("fenced JSON should still parse")
	}
	if data.Name != "Jane Smith" {
		t.Errorf("name = %q", data.Name)
	}
}

func TestParseNestedContactShape(t *testing.T) {
	server := modelServer(t, `{"name":"Jane","contact":{"email":"nested@example.com","phone":"555"}}`)
	defer server.Close()

	parser := NewParser(NewLLMClient("test-key", "test-model", server.URL), nil)
	data, _ := parser.Parse(context.Background(), []byte("%PDF-1.4 fake"), "jane.pdf")

	if data.Contact.Email != "nested@example.com" || data.Contact.Phone != "555" {
		t.Errorf("contact = %+v", data.Contact)
	}
}

func TestParseMalformedModelOutputFallsBack(t *testing.T) {
	server := modelServer(t, "I could not parse this resume, sorry!")
	defer server.Close()

	parser := NewParser(NewLLMClient("test-key", "test-model", server.URL), nil)
	data, fallbackUsed := parser.Parse(context.Background(), []byte("%PDF-1.4 fake"), "John_Doe_Resume.pdf")

	if !fallbackUsed {
		t.Fatal("garbage output should trigger the fallback")
	}
	if data.Name != "John Doe" {
		t.Errorf("fallback name = %q", data.Name)
	}
}

func TestParseModelErrorFallsBack(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	parser := NewParser(NewLLMClient("test-key", "test-model", server.URL), nil)
	_, fallbackUsed := parser.Parse(context.Background(), []byte("%PDF-1.4 fake"), "jane.pdf")

	if !fallbackUsed {
		t.Fatal("model failure should trigger the fallback")
	}
}

func TestParseWithoutModelFallsBack(t *testing.T) {
	parser := NewParser(nil, nil)
	data, fallbackUsed := parser.Parse(context.Background(), []byte("anything"), "jane-smith.pdf")

	if !fallbackUsed {
		t.Fatal("no model configured must mean fallback")
	}
	if data.IsEmpty() {
		t.Error("fallback record should carry data")
	}
}

func TestParseNeverReturnsEmptyRecord(t *testing.T) {
	server := modelServer(t, `{}`)
	defer server.Close()

	parser := NewParser(NewLLMClient("test-key", "test-model", server.URL), nil)
	data, _ := parser.Parse(context.Background(), []byte("%PDF-1.4 fake"), "jane.pdf")

	if data.Name == "" || data.Title == "" {
		t.Errorf("defaults missing: %+v", data)
	}
	if data.Experience == nil || data.Education == nil || data.Skills == nil {
		t.Error("sequences should be empty, not nil")
	}
}

func TestExtractJSON(t *testing.T) {
	cases := map[string]string{
		"```json\n{\"a\":1}\n```": `{"a":1}`,
		"{\"a\":1}":               `{"a":1}`,
		"```\n{\"a\":1}\n```":     `{"a":1}`,
	}
	for in, want := range cases {
		if got := extractJSON(in); got != want {
			t.Errorf("extractJSON(%q) = %q, want %q", in, got, want)
		}
	}
}
