package service

import (
	"archive/zip"
	"bytes"
	"strings"
	"testing"
)

func TestExtractText_PlainText(t *testing.T) {
	svc := NewParseService()

	text, err := svc.ExtractText("notes.txt", []byte("line one\r\n\r\n\r\nline two  \n"))
	if err != nil {
		t.Fatalf("ExtractText failed: %v", err)
	}
	if text != "line one\n\nline two" {
		t.Errorf("Unexpected normalized text: %q", text)
	}
}

func TestExtractText_Markdown(t *testing.T) {
	svc := NewParseService()

	text, err := svc.ExtractText("brief.md", []byte("# Heading\n\nBody text"))
	if err != nil {
		t.Fatalf("ExtractText failed: %v", err)
	}
	if !strings.Contains(text, "Body text") {
		t.Errorf("Expected markdown content preserved, got %q", text)
	}
}

func TestExtractText_EmptyTextFile(t *testing.T) {
	svc := NewParseService()

	if _, err := svc.ExtractText("empty.txt", []byte("   \n  \n")); err == nil {
		t.Error("Expected an error for an empty text file")
	}
}

func TestExtractText_UnsupportedExtension(t *testing.T) {
	svc := NewParseService()

	if _, err := svc.ExtractText("image.png", []byte{0x89, 0x50}); err == nil {
		t.Error("Expected an error for unsupported file types")
	}
}

func TestExtractText_DOCX(t *testing.T) {
	svc := NewParseService()

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	w, err := zw.Create("word/document.xml")
	if err != nil {
		t.Fatalf("zip create failed: %v", err)
	}
	w.Write([]byte(`<w:document><w:body><w:p><w:r><w:t>First paragraph &amp; more</w:t></w:r></w:p><w:p><w:r><w:t>Second paragraph</w:t></w:r></w:p></w:body></w:document>`))
	zw.Close()

	text, err := svc.ExtractText("pleading.docx", buf.Bytes())
	if err != nil {
		t.Fatalf("ExtractText failed: %v", err)
	}
	if !strings.Contains(text, "First paragraph & more") {
		t.Errorf("Expected entity-decoded paragraph text, got %q", text)
	}
	if !strings.Contains(text, "Second paragraph") {
		t.Errorf("Expected the second paragraph, got %q", text)
	}
}

func TestExtractText_DOCXWithoutDocumentXML(t *testing.T) {
	svc := NewParseService()

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	w, _ := zw.Create("word/styles.xml")
	w.Write([]byte("<w:styles/>"))
	zw.Close()

	if _, err := svc.ExtractText("broken.docx", buf.Bytes()); err == nil {
		t.Error("Expected an error when document.xml is missing")
	}
}

func TestExtractText_CorruptPDF(t *testing.T) {
	svc := NewParseService()

	if _, err := svc.ExtractText("bad.pdf", []byte("not a pdf at all")); err == nil {
		t.Error("Expected an error for corrupt PDF data")
	}
}
