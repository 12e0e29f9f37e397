package testutil

import (
	"os"
	"path/filepath"
	"testing"
)

// TextDictPath returns a path for a throwaway text dictionary file. The file
// is not created; stores treat a missing file as an empty dictionary.
func TextDictPath(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "user_dict.json")
}

// BinaryDictPath returns a path for a throwaway binary dictionary file.
func BinaryDictPath(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "user.dic")
}

// CreateTestFile creates a test file with content
func CreateTestFile(t *testing.T, path string, content []byte) {
	t.Helper()

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatalf("Failed to create directory for test file: %v", err)
	}

	if err := os.WriteFile(path, content, 0644); err != nil {
		t.Fatalf("Failed to create test file %s: %v", path, err)
	}
}
