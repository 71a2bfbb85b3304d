package extract

import (
	"archive/zip"
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestFromBytesTxtVerbatim(t *testing.T) {
	text, err := FromBytes([]byte("plain resume text\nwith two lines"), "resume.txt")
	if err != nil {
		t.Fatalf("txt extract: %v", err)
	}
	if text != "plain resume text\nwith two lines" {
		t.Fatalf("unexpected text: %q", text)
	}
}

func TestFromBytesDocxParagraphs(t *testing.T) {
	data := buildDocx(t, `<?xml version="1.0"?>
<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">
  <w:body>
    <w:p><w:r><w:t>First paragraph</w:t></w:r></w:p>
    <w:p><w:r><w:t>Second paragraph</w:t></w:r></w:p>
  </w:body>
</w:document>`)

	text, err := FromBytes(data, "resume.docx")
	if err != nil {
		t.Fatalf("docx extract: %v", err)
	}
	if !strings.Contains(text, "First paragraph\n") {
		t.Fatalf("expected newline after paragraph, got %q", text)
	}
	if !strings.Contains(text, "Second paragraph") {
		t.Fatalf("missing second paragraph: %q", text)
	}
}

func TestFromBytesDocxMissingDocumentXML(t *testing.T) {
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	w, err := zw.Create("notes.txt")
	if err != nil {
		t.Fatalf("create zip entry: %v", err)
	}
	if _, err := w.Write([]byte("hello")); err != nil {
		t.Fatalf("write zip entry: %v", err)
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("close zip: %v", err)
	}

	if _, err := FromBytes(buf.Bytes(), "resume.docx"); err == nil {
		t.Fatal("expected error for docx without document.xml")
	}
}

func TestFromBytesCorruptPDF(t *testing.T) {
	if _, err := FromBytes([]byte("not really a pdf"), "resume.pdf"); err == nil {
		t.Fatal("expected error for corrupt pdf")
	}
}

func TestFromBytesUnsupportedExtension(t *testing.T) {
	_, err := FromBytes([]byte("whatever"), "resume.xyz")
	if !errors.Is(err, ErrUnsupportedFormat) {
		t.Fatalf("expected ErrUnsupportedFormat, got %v", err)
	}
}

func TestSupported(t *testing.T) {
	for _, name := range []string{"a.pdf", "b.docx", "c.txt", "UPPER.PDF"} {
		if !Supported(name) {
			t.Fatalf("expected %s to be supported", name)
		}
	}
	for _, name := range []string{"a.xyz", "b.doc", "noext", ""} {
		if Supported(name) {
			t.Fatalf("expected %s to be unsupported", name)
		}
	}
}

func TestFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "resume.txt")
	if err := os.WriteFile(path, []byte("file contents"), 0o644); err != nil {
		t.Fatalf("write temp file: %v", err)
	}

	text, err := FromFile(path, "resume.txt")
	if err != nil {
		t.Fatalf("extract from file: %v", err)
	}
	if text != "file contents" {
		t.Fatalf("unexpected text: %q", text)
	}

	if _, err := FromFile(filepath.Join(t.TempDir(), "missing.txt"), "missing.txt"); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func buildDocx(t *testing.T, documentXML string) []byte {
	t.Helper()
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	w, err := zw.Create("word/document.xml")
	if err != nil {
		t.Fatalf("create document.xml: %v", err)
	}
	if _, err := w.Write([]byte(documentXML)); err != nil {
		t.Fatalf("write document.xml: %v", err)
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("close zip: %v", err)
	}
	return buf.Bytes()
}
