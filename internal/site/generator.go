package site

import (
	"fmt"
	"html/template"
	"os"
	"path/filepath"

	"stackguides/internal/content"
	"stackguides/internal/progress"
	"stackguides/internal/sections"
)

// Generator exports a loaded catalog as a static HTML site. The output can
// be served by any file server; the page script falls back to local section
// tracking when no sync endpoint is reachable.
type Generator struct {
	Catalog   *content.Catalog
	OutputDir string
	SiteName  string
	Reporter  progress.Reporter
}

// NewGenerator creates a Generator over the given catalog.
func NewGenerator(catalog *content.Catalog, outputDir, siteName string) *Generator {
	return &Generator{
		Catalog:   catalog,
		OutputDir: outputDir,
		SiteName:  siteName,
		Reporter:  progress.NewReporter(),
	}
}

// pageData holds the data passed to the HTML template for each page.
type pageData struct {
	Title     string
	SiteName  string
	Content   template.HTML
	Nav       template.HTML
	BasePath  string
	IsArticle bool
	ArticleID string
	Sentinel  string
	Sections  []sections.Section
}

// Generate writes the full static site. Returns the number of pages written.
func (g *Generator) Generate() (int, error) {
	if g.Catalog == nil || g.Catalog.Len() == 0 {
		return 0, fmt.Errorf("no pages loaded")
	}

	if err := os.MkdirAll(g.OutputDir, 0o755); err != nil {
		return 0, err
	}

	entries := BuildSearchIndex(g.Catalog)
	if err := WriteSearchIndex(entries, filepath.Join(g.OutputDir, "search-index.json")); err != nil {
		return 0, fmt.Errorf("writing search index: %w", err)
	}

	if err := os.WriteFile(filepath.Join(g.OutputDir, "style.css"), []byte(cssContent), 0o644); err != nil {
		return 0, err
	}
	if err := os.WriteFile(filepath.Join(g.OutputDir, "script.js"), []byte(jsContent), 0o644); err != nil {
		return 0, err
	}

	tmpl, err := template.New("page").Parse(staticPageTemplate)
	if err != nil {
		return 0, fmt.Errorf("parsing page template: %w", err)
	}
	hubTmpl, err := template.New("hub").Parse(staticHubTemplate)
	if err != nil {
		return 0, fmt.Errorf("parsing hub template: %w", err)
	}

	var pages []*content.Page
	for _, ci := range content.Categories {
		pages = append(pages, g.Catalog.PagesIn(ci.Slug)...)
	}
	pages = append(pages, g.Catalog.Articles()...)

	reporter := g.Reporter
	if reporter == nil {
		reporter = progress.Silent{}
	}
	reporter.Start(len(pages))

	count := 0
	for _, p := range pages {
		if err := g.renderPage(tmpl, p); err != nil {
			return count, fmt.Errorf("rendering %s/%s: %w", p.Category, p.Slug, err)
		}
		count++
		reporter.Update(count, p.Category+"/"+p.Slug)
	}
	reporter.Finish()

	if err := g.renderHub(hubTmpl); err != nil {
		return count, fmt.Errorf("rendering articles hub: %w", err)
	}

	if err := g.writeIndex(tmpl); err != nil {
		return count, fmt.Errorf("writing index: %w", err)
	}

	return count, nil
}

// renderPage writes one page to {category}/{slug}.html.
func (g *Generator) renderPage(tmpl *template.Template, p *content.Page) error {
	outPath := filepath.Join(g.OutputDir, p.Category, p.Slug+".html")
	if err := os.MkdirAll(filepath.Dir(outPath), 0o755); err != nil {
		return err
	}

	data := g.pageData(p, "../")
	f, err := os.Create(outPath)
	if err != nil {
		return err
	}
	defer f.Close()
	return tmpl.Execute(f, data)
}

func (g *Generator) pageData(p *content.Page, basePath string) pageData {
	isArticle := p.Category == content.ArticlesCategory
	return pageData{
		Title:     p.Title,
		SiteName:  g.SiteName,
		Content:   p.HTML,
		Nav:       g.navHTML(p, basePath),
		BasePath:  basePath,
		IsArticle: isArticle,
		ArticleID: p.Slug,
		Sentinel:  sections.TopSentinel,
		Sections:  p.Sections,
	}
}

// navHTML builds the sidebar list: every category links to its default
// section, the active category expands its pages, and the active page
// carries its section anchors.
func (g *Generator) navHTML(active *content.Page, basePath string) template.HTML {
	esc := template.HTMLEscapeString

	var b []byte
	add := func(s string) { b = append(b, s...) }

	add(`<ul class="nav-categories">`)
	for _, ci := range content.Categories {
		slug, ok := g.Catalog.DefaultSectionFor(ci.Slug)
		if !ok {
			continue
		}
		activeCat := active != nil && active.Category == ci.Slug
		if activeCat {
			add(`<li class="nav-category active">`)
		} else {
			add(`<li class="nav-category">`)
		}
		add(fmt.Sprintf(`<a href="%s%s/%s.html">%s</a>`, basePath, ci.Slug, slug, esc(ci.Name)))

		if activeCat {
			add(`<ul class="nav-pages">`)
			for _, p := range g.Catalog.PagesIn(ci.Slug) {
				if p.Slug == active.Slug {
					add(`<li class="nav-page active">`)
				} else {
					add(`<li class="nav-page">`)
				}
				add(fmt.Sprintf(`<a href="%s%s/%s.html">%s</a>`, basePath, ci.Slug, p.Slug, esc(p.Title)))
				if p.Slug == active.Slug {
					add(`<ul class="nav-sections" id="section-nav">`)
					for _, sec := range p.Sections {
						add(fmt.Sprintf(`<li><a href="#%s" class="section-link" data-section-id="%s">%s</a></li>`,
							esc(sec.ID), esc(sec.ID), esc(sec.Title)))
					}
					add(`</ul>`)
				}
				add(`</li>`)
			}
			add(`</ul>`)
		}
		add(`</li>`)
	}
	add(fmt.Sprintf(`<li class="nav-category"><a href="%sarticles/index.html">Articles</a></li>`, basePath))
	add(`</ul>`)

	return template.HTML(b)
}

// renderHub writes the articles hub to articles/index.html.
func (g *Generator) renderHub(tmpl *template.Template) error {
	outPath := filepath.Join(g.OutputDir, content.ArticlesCategory, "index.html")
	if err := os.MkdirAll(filepath.Dir(outPath), 0o755); err != nil {
		return err
	}

	data := struct {
		SiteName string
		Nav      template.HTML
		BasePath string
		Articles []*content.Page
	}{
		SiteName: g.SiteName,
		Nav:      g.navHTML(nil, "../"),
		BasePath: "../",
		Articles: g.Catalog.Articles(),
	}

	f, err := os.Create(outPath)
	if err != nil {
		return err
	}
	defer f.Close()
	return tmpl.Execute(f, data)
}

// writeIndex renders the welcome landing page again at the site root so the
// bare output directory has an entry point.
func (g *Generator) writeIndex(tmpl *template.Template) error {
	var landing *content.Page
	for _, ci := range content.Categories {
		if slug, ok := g.Catalog.DefaultSectionFor(ci.Slug); ok {
			landing, _ = g.Catalog.Page(ci.Slug, slug)
			break
		}
	}
	if landing == nil {
		return fmt.Errorf("no landing page")
	}

	data := g.pageData(landing, "")
	f, err := os.Create(filepath.Join(g.OutputDir, "index.html"))
	if err != nil {
		return err
	}
	defer f.Close()
	return tmpl.Execute(f, data)
}
