package site

import (
	"encoding/json"
	"os"
	"strings"

	"stackguides/internal/content"
)

// SearchEntry represents a single searchable page in the generated site.
type SearchEntry struct {
	Path    string `json:"path"`
	Title   string `json:"title"`
	Summary string `json:"summary"`
	Content string `json:"content"`
}

// BuildSearchIndex flattens the catalog into search entries, guide pages
// first in category order, then articles.
func BuildSearchIndex(catalog *content.Catalog) []SearchEntry {
	var entries []SearchEntry

	appendPage := func(p *content.Page, path string) {
		summary := p.Description
		if summary == "" {
			summary = firstLine(p.Text)
		}
		body := strings.Join(strings.Fields(p.Text), " ")
		if len(body) > 2000 {
			body = body[:2000]
		}
		entries = append(entries, SearchEntry{
			Path:    path,
			Title:   p.Title,
			Summary: summary,
			Content: body,
		})
	}

	for _, ci := range content.Categories {
		for _, p := range catalog.PagesIn(ci.Slug) {
			appendPage(p, p.Category+"/"+p.Slug+".html")
		}
	}
	for _, p := range catalog.Articles() {
		appendPage(p, content.ArticlesCategory+"/"+p.Slug+".html")
	}

	return entries
}

// firstLine returns the first non-empty, non-heading line of a markdown body.
func firstLine(text string) string {
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		return line
	}
	return ""
}

// WriteSearchIndex writes the search index as JSON to the given path.
func WriteSearchIndex(entries []SearchEntry, outputPath string) error {
	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(outputPath, data, 0o644)
}
