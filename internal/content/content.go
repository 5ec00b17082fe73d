package content

import (
	"html/template"
	"sort"

	"stackguides/internal/sections"
)

// ArticlesCategory is the category slug for marketing-style articles. It is
// addressed through the articles hub rather than the guide categories.
const ArticlesCategory = "articles"

// DefaultSection is the canonical landing section of every guide category.
const DefaultSection = "overview"

// CategoryInfo names one guide category in its canonical sidebar order.
type CategoryInfo struct {
	Slug string `json:"slug"`
	Name string `json:"name"`
}

// Categories is the canonical ordered list of guide categories.
var Categories = []CategoryInfo{
	{Slug: "welcome", Name: "Welcome"},
	{Slug: "web", Name: "Web Development"},
	{Slug: "mobile", Name: "Mobile Development"},
	{Slug: "desktop", Name: "Desktop Development"},
	{Slug: "cloud", Name: "Cloud"},
	{Slug: "backend", Name: "Backend"},
	{Slug: "deployment", Name: "Deployment"},
	{Slug: "data-analytics", Name: "Data Analytics"},
}

// Page is one rendered content page: a guide section or an article.
type Page struct {
	Category    string
	Slug        string
	Title       string
	Description string
	Order       int
	Source      string // path relative to the content root
	Text        string // raw markdown body, kept for search
	HTML        template.HTML
	// Sections is the page's ordered heading list, top-of-page sentinel
	// first. It is built once at load time and immutable afterwards.
	Sections []sections.Section
}

// Catalog holds every loaded page, grouped by category.
type Catalog struct {
	pages map[string]map[string]*Page // category -> slug -> page
}

func newCatalog() *Catalog {
	return &Catalog{pages: make(map[string]map[string]*Page)}
}

func (c *Catalog) add(p *Page) {
	if c.pages[p.Category] == nil {
		c.pages[p.Category] = make(map[string]*Page)
	}
	c.pages[p.Category][p.Slug] = p
}

// Page returns the page for a category and section slug.
func (c *Catalog) Page(category, slug string) (*Page, bool) {
	p, ok := c.pages[category][slug]
	return p, ok
}

// HasCategory reports whether any page was loaded for the category.
func (c *Catalog) HasCategory(category string) bool {
	return len(c.pages[category]) > 0
}

// PagesIn returns the category's pages ordered by their front-matter order,
// ties broken by slug.
func (c *Catalog) PagesIn(category string) []*Page {
	var out []*Page
	for _, p := range c.pages[category] {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Order != out[j].Order {
			return out[i].Order < out[j].Order
		}
		return out[i].Slug < out[j].Slug
	})
	return out
}

// Articles returns the articles-hub pages in order.
func (c *Catalog) Articles() []*Page {
	return c.PagesIn(ArticlesCategory)
}

// DefaultSectionFor returns the slug a category root should land on: the
// canonical overview section when present, otherwise the category's first
// page. ok is false for categories with no content.
func (c *Catalog) DefaultSectionFor(category string) (string, bool) {
	if _, ok := c.pages[category][DefaultSection]; ok {
		return DefaultSection, true
	}
	pages := c.PagesIn(category)
	if len(pages) == 0 {
		return "", false
	}
	return pages[0].Slug, true
}

// Sections resolves a page's section list, sentinel first. It satisfies
// sections.ListFunc for the scroll-sync endpoint.
func (c *Catalog) Sections(category, slug string) ([]sections.Section, bool) {
	p, ok := c.Page(category, slug)
	if !ok {
		return nil, false
	}
	return p.Sections, true
}

// Len returns the total number of loaded pages.
func (c *Catalog) Len() int {
	n := 0
	for _, m := range c.pages {
		n += len(m)
	}
	return n
}
