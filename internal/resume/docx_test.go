package resume

import (
	"archive/zip"
	"bytes"
	"strings"
	"testing"
	"unicode/utf8"
)

func buildDocx(t *testing.T, documentXML string) []byte {
	t.Helper()
	var buf bytes.Buffer
	w := zip.NewWriter(&buf)

	f, err := w.Create("word/document.xml")
	if err != nil {
		t.Fatalf("create entry: %v", err)
	}
	if _, err := f.Write([]byte(documentXML)); err != nil {
		t.Fatalf("write entry: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("close zip: %v", err)
	}
	return buf.Bytes()
}

const sampleDocumentXML = `<?xml version="1.0" encoding="UTF-8"?>
<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">
  <w:body>
    <w:p><w:r><w:t>Jane Smith</w:t></w:r></w:p>
    <w:p><w:r><w:t>Backend </w:t></w:r><w:r><w:t>Engineer</w:t></w:r></w:p>
  </w:body>
</w:document>`

func TestExtractDocxText(t *testing.T) {
	data := buildDocx(t, sampleDocumentXML)

	text, err := ExtractDocxText(data)
	if err != nil {
		t.Fatalf("ExtractDocxText: %v", err)
	}
	if !strings.Contains(text, "Jane Smith") {
		t.Errorf("text = %q", text)
	}
	if !strings.Contains(text, "Backend Engineer") {
		t.Errorf("split runs not joined: %q", text)
	}
	if !strings.Contains(text, "Jane Smith\n") {
		t.Errorf("paragraph boundary missing: %q", text)
	}
}

func TestExtractDocxTextRejectsNonArchive(t *testing.T) {
	if _, err := ExtractDocxText([]byte("plain old text")); err == nil {
		t.Error("expected error for non-zip input")
	}
}

func TestExtractDocxTextRejectsArchiveWithoutDocument(t *testing.T) {
	var buf bytes.Buffer
	w := zip.NewWriter(&buf)
	f, _ := w.Create("unrelated.txt")
	f.Write([]byte("hi"))
	w.Close()

	if _, err := ExtractDocxText(buf.Bytes()); err == nil {
		t.Error("expected error when document.xml is absent")
	}
}

func TestExtractDocxTextTruncates(t *testing.T) {
	long := strings.Repeat("a", maxExtractedChars+500)
	data := buildDocx(t, `<w:document xmlns:w="ns"><w:body><w:p><w:r><w:t>`+long+`</w:t></w:r></w:p></w:body></w:document>`)

	text, err := ExtractDocxText(data)
	if err != nil {
		t.Fatalf("ExtractDocxText: %v", err)
	}
	if len(text) > maxExtractedChars {
		t.Errorf("len = %d, want <= %d", len(text), maxExtractedChars)
	}
}

func TestExtractDocxTextTruncatesOnRuneBoundary(t *testing.T) {
	// Place a two-byte rune straddling the truncation point.
	long := strings.Repeat("a", maxExtractedChars-1) + strings.Repeat("é", 300)
	data := buildDocx(t, `<w:document xmlns:w="ns"><w:body><w:p><w:r><w:t>`+long+`</w:t></w:r></w:p></w:body></w:document>`)

	text, err := ExtractDocxText(data)
	if err != nil {
		t.Fatalf("ExtractDocxText: %v", err)
	}
	if len(text) > maxExtractedChars {
		t.Errorf("len = %d, want <= %d", len(text), maxExtractedChars)
	}
	if !utf8.ValidString(text) {
		t.Error("truncated text is not valid UTF-8")
	}
}
