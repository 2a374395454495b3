package filehash

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeTemp(t *testing.T, content []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "doc.pdf")
	if err := os.WriteFile(path, content, 0o644); err != nil {
		t.Fatalf("failed to write temp file: %v", err)
	}
	return path
}

func TestSumFileDeterministic(t *testing.T) {
	path := writeTemp(t, []byte("certificate body"))

	first, err := SumFile(path)
	if err != nil {
		t.Fatalf("first hash failed: %v", err)
	}
	second, err := SumFile(path)
	if err != nil {
		t.Fatalf("second hash failed: %v", err)
	}

	if first != second {
		t.Fatalf("hashing the same content produced %s and %s", first, second)
	}
	if len(first) != 64 {
		t.Fatalf("expected 64 hex chars, got %d", len(first))
	}
	if first != strings.ToLower(first) {
		t.Fatalf("digest must be lowercase hex, got %s", first)
	}
}

func TestSumFileDifferentContent(t *testing.T) {
	a, err := SumFile(writeTemp(t, []byte("document A")))
	if err != nil {
		t.Fatalf("hash A failed: %v", err)
	}
	b, err := SumFile(writeTemp(t, []byte("document B")))
	if err != nil {
		t.Fatalf("hash B failed: %v", err)
	}
	if a == b {
		t.Fatalf("different contents produced identical digest %s", a)
	}
}

func TestSumFileKnownVector(t *testing.T) {
	// sha256("") is a fixed vector
	path := writeTemp(t, nil)
	got, err := SumFile(path)
	if err != nil {
		t.Fatalf("hash failed: %v", err)
	}
	want := "e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855"
	if got != want {
		t.Fatalf("expected %s, got %s", want, got)
	}
}

func TestSumFileMissing(t *testing.T) {
	if _, err := SumFile(filepath.Join(t.TempDir(), "missing.pdf")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestSumFileEmptyPath(t *testing.T) {
	if _, err := SumFile(""); err == nil {
		t.Fatal("expected error for empty path")
	}
}

func TestSumReaderMatchesSumFile(t *testing.T) {
	content := []byte("stream me")
	path := writeTemp(t, content)

	fromFile, err := SumFile(path)
	if err != nil {
		t.Fatalf("file hash failed: %v", err)
	}
	fromReader, err := SumReader(strings.NewReader(string(content)))
	if err != nil {
		t.Fatalf("reader hash failed: %v", err)
	}
	if fromFile != fromReader {
		t.Fatalf("file and reader digests differ: %s vs %s", fromFile, fromReader)
	}
}
