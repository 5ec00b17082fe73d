package server

import (
	"html/template"
	"log"
	"net/http"

	"stackguides/internal/content"
	"stackguides/internal/sections"
)

var (
	pageTmpl       = template.Must(template.New("page").Parse(pageTemplate))
	hubTmpl        = template.Must(template.New("hub").Parse(hubTemplate))
	comingSoonTmpl = template.Must(template.New("comingsoon").Parse(comingSoonTemplate))
)

// navCategory is one sidebar category with its pages when active.
type navCategory struct {
	Slug   string
	Name   string
	Active bool
	Pages  []navPage
}

// navPage is one page link in the sidebar, with its section anchors when
// it is the page being viewed.
type navPage struct {
	Slug     string
	Title    string
	Active   bool
	Sections []sections.Section
}

// pageData is the data passed to the page template.
type pageData struct {
	SiteName  string
	Title     string
	Category  string
	Section   string
	Content   template.HTML
	Nav       []navCategory
	IsArticle bool
	ArticleID string
	Sentinel  string
}

func (s *Server) buildNav(active *content.Page) []navCategory {
	var nav []navCategory
	for _, ci := range content.Categories {
		if !s.catalog.HasCategory(ci.Slug) {
			continue
		}
		nc := navCategory{Slug: ci.Slug, Name: ci.Name, Active: active != nil && active.Category == ci.Slug}
		if nc.Active {
			for _, p := range s.catalog.PagesIn(ci.Slug) {
				np := navPage{Slug: p.Slug, Title: p.Title, Active: p.Slug == active.Slug}
				if np.Active {
					np.Sections = p.Sections
				}
				nc.Pages = append(nc.Pages, np)
			}
		}
		nav = append(nav, nc)
	}
	return nav
}

func (s *Server) renderPage(w http.ResponseWriter, page *content.Page, isArticle bool) {
	data := pageData{
		SiteName:  s.cfg.SiteName,
		Title:     page.Title,
		Category:  page.Category,
		Section:   page.Slug,
		Content:   page.HTML,
		IsArticle: isArticle,
		ArticleID: page.Slug,
		Sentinel:  sections.TopSentinel,
	}
	if !isArticle {
		data.Nav = s.buildNav(page)
	} else {
		data.Nav = s.buildNav(nil)
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := pageTmpl.Execute(w, data); err != nil {
		log.Printf("server: rendering %s/%s: %v", page.Category, page.Slug, err)
	}
}

// hubData is the data passed to the articles hub template.
type hubData struct {
	SiteName string
	Nav      []navCategory
	Articles []*content.Page
}

func (s *Server) renderHub(w http.ResponseWriter, articles []*content.Page) {
	data := hubData{
		SiteName: s.cfg.SiteName,
		Nav:      s.buildNav(nil),
		Articles: articles,
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := hubTmpl.Execute(w, data); err != nil {
		log.Printf("server: rendering articles hub: %v", err)
	}
}

// comingSoonData is the data passed to the placeholder page template.
type comingSoonData struct {
	SiteName string
	Nav      []navCategory
	Title    string
	Message  string
}

func (s *Server) renderComingSoon(w http.ResponseWriter, title, message string) {
	data := comingSoonData{
		SiteName: s.cfg.SiteName,
		Nav:      s.buildNav(nil),
		Title:    title,
		Message:  message,
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := comingSoonTmpl.Execute(w, data); err != nil {
		log.Printf("server: rendering %s: %v", title, err)
	}
}
