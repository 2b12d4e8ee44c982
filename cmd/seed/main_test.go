package main

import (
	"os"
	"path/filepath"
	"testing"
)

func writeWarmList(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "warm-list.yaml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write warm list: %v", err)
	}
	return path
}

func TestLoadWarmList(t *testing.T) {
	t.Parallel()

	path := writeWarmList(t, `
articles:
  - title: Albert Einstein
    language: en
  - title: Photosynthèse
    language: fr
`)

	list, err := loadWarmList(path)
	if err != nil {
		t.Fatalf("loadWarmList() error = %v", err)
	}
	if len(list.Articles) != 2 {
		t.Fatalf("len(Articles) = %d, want 2", len(list.Articles))
	}
	if list.Articles[0].Title != "Albert Einstein" || list.Articles[0].Language != "en" {
		t.Fatalf("unexpected first entry: %+v", list.Articles[0])
	}
	if list.Articles[1].Title != "Photosynthèse" {
		t.Fatalf("unexpected second entry: %+v", list.Articles[1])
	}
}

func TestLoadWarmListMissingFile(t *testing.T) {
	t.Parallel()

	if _, err := loadWarmList(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Fatal("loadWarmList() with missing file: want error, got nil")
	}
}

func TestLoadWarmListInvalidYAML(t *testing.T) {
	t.Parallel()

	path := writeWarmList(t, "articles: [title: {")
	if _, err := loadWarmList(path); err == nil {
		t.Fatal("loadWarmList() with invalid YAML: want error, got nil")
	}
}

func TestLoadWarmListEmpty(t *testing.T) {
	t.Parallel()

	path := writeWarmList(t, "articles: []\n")
	list, err := loadWarmList(path)
	if err != nil {
		t.Fatalf("loadWarmList() error = %v", err)
	}
	if len(list.Articles) != 0 {
		t.Fatalf("len(Articles) = %d, want 0", len(list.Articles))
	}
}
