package site

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"testing/fstest"

	"stackguides/internal/content"
	"stackguides/internal/progress"
)

func testCatalog(t *testing.T) *content.Catalog {
	t.Helper()

	fsys := fstest.MapFS{
		"welcome/overview.md": &fstest.MapFile{Data: []byte(`---
title: Welcome
category: welcome
slug: overview
order: 1
---

The landing page.

## What This Is

A guide hub.
`)},
		"web/overview.md": &fstest.MapFile{Data: []byte(`---
title: Web Overview
category: web
slug: overview
order: 1
---

## Rendering Models

Compared.
`)},
		"articles/hello.md": &fstest.MapFile{Data: []byte(`---
title: Hello World
category: articles
slug: hello
description: A first article.
---

## Why Hello

Because.
`)},
	}
	cat, err := content.Load(fsys, []string{"**/*.md"}, nil)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	return cat
}

func generate(t *testing.T) (string, int) {
	t.Helper()

	outputDir := t.TempDir()
	gen := NewGenerator(testCatalog(t), outputDir, "Stack Guides")
	gen.Reporter = progress.Silent{}

	count, err := gen.Generate()
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	return outputDir, count
}

func TestFullSiteGeneration(t *testing.T) {
	outputDir, count := generate(t)

	if count != 3 {
		t.Errorf("page count = %d, want 3", count)
	}

	for _, f := range []string{
		"index.html",
		"style.css",
		"script.js",
		"search-index.json",
		"welcome/overview.html",
		"web/overview.html",
		"articles/hello.html",
		"articles/index.html",
	} {
		path := filepath.Join(outputDir, filepath.FromSlash(f))
		if _, err := os.Stat(path); os.IsNotExist(err) {
			t.Errorf("expected file %s does not exist", f)
		}
	}
}

func TestGeneratedPageContents(t *testing.T) {
	outputDir, _ := generate(t)

	data, err := os.ReadFile(filepath.Join(outputDir, "web", "overview.html"))
	if err != nil {
		t.Fatalf("reading web/overview.html: %v", err)
	}
	page := string(data)

	if !strings.Contains(page, "Web Overview") {
		t.Error("page missing its title")
	}
	if !strings.Contains(page, `../style.css`) {
		t.Error("nested page should reference ../style.css")
	}
	if !strings.Contains(page, `data-section-id="rendering-models"`) {
		t.Error("page missing section anchor")
	}
	if strings.Contains(page, "feedback-widget") {
		t.Error("guide page should not carry the feedback widget")
	}

	data, err = os.ReadFile(filepath.Join(outputDir, "articles", "hello.html"))
	if err != nil {
		t.Fatalf("reading articles/hello.html: %v", err)
	}
	if !strings.Contains(string(data), `data-article-id="hello"`) {
		t.Error("article page missing feedback widget")
	}
}

func TestIndexIsLandingPage(t *testing.T) {
	outputDir, _ := generate(t)

	data, err := os.ReadFile(filepath.Join(outputDir, "index.html"))
	if err != nil {
		t.Fatalf("reading index.html: %v", err)
	}
	page := string(data)

	if !strings.Contains(page, "Welcome") {
		t.Error("index should render the welcome page")
	}
	if !strings.Contains(page, `href="style.css"`) {
		t.Error("root page should reference style.css without a prefix")
	}
}

func TestSearchIndex(t *testing.T) {
	entries := BuildSearchIndex(testCatalog(t))

	if len(entries) != 3 {
		t.Fatalf("entries = %d, want 3", len(entries))
	}
	// Guide pages come before articles.
	if entries[0].Path != "welcome/overview.html" {
		t.Errorf("first entry = %q", entries[0].Path)
	}
	last := entries[len(entries)-1]
	if last.Path != "articles/hello.html" {
		t.Errorf("last entry = %q", last.Path)
	}
	if last.Summary != "A first article." {
		t.Errorf("article summary = %q", last.Summary)
	}
	if !strings.Contains(entries[0].Content, "guide hub") {
		t.Errorf("welcome content = %q", entries[0].Content)
	}

	// The written index round-trips as JSON.
	outPath := filepath.Join(t.TempDir(), "search-index.json")
	if err := WriteSearchIndex(entries, outPath); err != nil {
		t.Fatalf("WriteSearchIndex: %v", err)
	}
	data, err := os.ReadFile(outPath)
	if err != nil {
		t.Fatal(err)
	}
	var parsed []SearchEntry
	if err := json.Unmarshal(data, &parsed); err != nil {
		t.Fatalf("parsing index: %v", err)
	}
	if len(parsed) != 3 {
		t.Errorf("parsed entries = %d, want 3", len(parsed))
	}
}

func TestGenerateEmptyCatalogFails(t *testing.T) {
	gen := NewGenerator(nil, t.TempDir(), "test")
	gen.Reporter = progress.Silent{}
	if _, err := gen.Generate(); err == nil {
		t.Error("Generate should fail with no pages")
	}
}
