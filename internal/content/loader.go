package content

import (
	"bytes"
	"fmt"
	"html/template"
	"io/fs"
	"os"
	"path"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer/html"
	"github.com/yuin/goldmark/text"
	"gopkg.in/yaml.v3"

	"stackguides/internal/sections"
)

// markdown is the shared goldmark instance for all content rendering.
var markdown = goldmark.New(
	goldmark.WithExtensions(
		extension.GFM,
		highlighting.NewHighlighting(
			highlighting.WithStyle("github"),
		),
	),
	goldmark.WithParserOptions(
		parser.WithAutoHeadingID(),
	),
	goldmark.WithRendererOptions(
		html.WithUnsafe(),
	),
)

// frontMatter is the YAML header of a content file.
type frontMatter struct {
	Title       string `yaml:"title"`
	Category    string `yaml:"category"`
	Slug        string `yaml:"slug"`
	Order       int    `yaml:"order"`
	Description string `yaml:"description"`
}

// LoadDir loads a catalog from markdown files under dir.
func LoadDir(dir string, include, exclude []string) (*Catalog, error) {
	return Load(os.DirFS(dir), include, exclude)
}

// Load walks fsys for markdown files matching the include globs (and none
// of the exclude globs) and builds the page catalog.
func Load(fsys fs.FS, include, exclude []string) (*Catalog, error) {
	cat := newCatalog()

	err := fs.WalkDir(fsys, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !matches(p, include, exclude) {
			return nil
		}

		data, err := fs.ReadFile(fsys, p)
		if err != nil {
			return fmt.Errorf("reading %s: %w", p, err)
		}
		page, err := buildPage(p, data)
		if err != nil {
			return fmt.Errorf("loading %s: %w", p, err)
		}
		cat.add(page)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walking content: %w", err)
	}

	if cat.Len() == 0 {
		return nil, fmt.Errorf("no content pages found")
	}
	return cat, nil
}

func matches(p string, include, exclude []string) bool {
	included := len(include) == 0
	for _, pattern := range include {
		if ok, _ := doublestar.Match(pattern, p); ok {
			included = true
			break
		}
	}
	if !included {
		return false
	}
	for _, pattern := range exclude {
		if ok, _ := doublestar.Match(pattern, p); ok {
			return false
		}
	}
	return true
}

// buildPage parses front matter, renders the markdown body, and extracts
// the page's section list from its level-2 headings.
func buildPage(srcPath string, data []byte) (*Page, error) {
	meta, body, err := splitFrontMatter(data)
	if err != nil {
		return nil, err
	}

	// Fall back to the file location for missing front-matter fields.
	if meta.Category == "" {
		meta.Category = path.Base(path.Dir(srcPath))
	}
	if meta.Slug == "" {
		meta.Slug = strings.TrimSuffix(path.Base(srcPath), path.Ext(srcPath))
	}
	if meta.Title == "" {
		meta.Title = titleFromSlug(meta.Slug)
	}

	doc := markdown.Parser().Parse(text.NewReader(body))

	secs := sections.WithTop(meta.Title, extractSections(doc, body))

	var buf bytes.Buffer
	if err := markdown.Renderer().Render(&buf, body, doc); err != nil {
		return nil, fmt.Errorf("rendering markdown: %w", err)
	}

	return &Page{
		Category:    meta.Category,
		Slug:        meta.Slug,
		Title:       meta.Title,
		Description: meta.Description,
		Order:       meta.Order,
		Source:      srcPath,
		Text:        string(body),
		HTML:        template.HTML(buf.String()),
		Sections:    secs,
	}, nil
}

// splitFrontMatter separates the leading YAML block from the markdown body.
// Files without a front-matter block are all body.
func splitFrontMatter(data []byte) (frontMatter, []byte, error) {
	var meta frontMatter

	if !bytes.HasPrefix(data, []byte("---\n")) {
		return meta, data, nil
	}
	rest := data[4:]
	end := bytes.Index(rest, []byte("\n---"))
	if end < 0 {
		return meta, data, nil
	}

	if err := yaml.Unmarshal(rest[:end], &meta); err != nil {
		return meta, nil, fmt.Errorf("parsing front matter: %w", err)
	}

	body := rest[end+4:]
	body = bytes.TrimPrefix(body, []byte("\n"))
	return meta, body, nil
}

// extractSections collects the document's level-2 headings, in document
// order, as the page's navigable sections.
func extractSections(doc ast.Node, src []byte) []sections.Section {
	var secs []sections.Section

	ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		h, ok := n.(*ast.Heading)
		if !ok || h.Level != 2 {
			return ast.WalkContinue, nil
		}

		id := ""
		if v, ok := h.AttributeString("id"); ok {
			if b, ok := v.([]byte); ok {
				id = string(b)
			}
		}
		if id == "" {
			return ast.WalkContinue, nil
		}

		secs = append(secs, sections.Section{ID: id, Title: headingText(h, src)})
		return ast.WalkContinue, nil
	})

	return secs
}

func headingText(n ast.Node, src []byte) string {
	var b strings.Builder
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		switch t := c.(type) {
		case *ast.Text:
			b.Write(t.Segment.Value(src))
		case *ast.CodeSpan:
			for cc := t.FirstChild(); cc != nil; cc = cc.NextSibling() {
				if tt, ok := cc.(*ast.Text); ok {
					b.Write(tt.Segment.Value(src))
				}
			}
		}
	}
	return b.String()
}

func titleFromSlug(slug string) string {
	words := strings.FieldsFunc(slug, func(c rune) bool {
		return c == '-' || c == '_'
	})
	for i, w := range words {
		if len(w) > 0 {
			words[i] = strings.ToUpper(w[:1]) + w[1:]
		}
	}
	return strings.Join(words, " ")
}
