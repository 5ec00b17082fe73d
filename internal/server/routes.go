package server

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"stackguides/internal/content"
)

func (s *Server) registerPageRoutes(r chi.Router) {
	r.Get("/", func(w http.ResponseWriter, req *http.Request) {
		http.Redirect(w, req, "/welcome/overview", http.StatusFound)
	})

	r.Get("/static/style.css", serveAsset("text/css; charset=utf-8", styleCSS))
	r.Get("/static/script.js", serveAsset("application/javascript; charset=utf-8", scriptJS))

	r.Get("/articles", s.handleArticlesHub)
	r.Get("/articles/{article}", s.handleArticle)
	r.Get("/api-finder", s.comingSoon("API Finder",
		"Describe what you are building and get matching API recommendations. Coming soon."))
	r.Get("/planning-agent", s.comingSoon("Planning Agent",
		"A conversational assistant that plans your tech stack with you. Coming soon."))

	r.Get("/{category}", s.handleCategoryRoot)
	r.Get("/{category}/{section}", s.handleGuidePage)
}

func (s *Server) registerAPIRoutes(r chi.Router) {
	r.Get("/api/sections/{category}/{section}", s.handleSectionList)
	r.Post("/api/search", s.handleSearch)
}

func serveAsset(contentType, body string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", contentType)
		w.Write([]byte(body))
	}
}

// handleCategoryRoot redirects a bare category path to its default section.
func (s *Server) handleCategoryRoot(w http.ResponseWriter, r *http.Request) {
	category := chi.URLParam(r, "category")

	slug, ok := s.catalog.DefaultSectionFor(category)
	if !ok {
		http.NotFound(w, r)
		return
	}
	http.Redirect(w, r, fmt.Sprintf("/%s/%s", category, slug), http.StatusFound)
}

// handleGuidePage renders one guide section. Unrecognized sections redirect
// to the category default instead of erroring.
func (s *Server) handleGuidePage(w http.ResponseWriter, r *http.Request) {
	category := chi.URLParam(r, "category")
	section := chi.URLParam(r, "section")

	page, ok := s.catalog.Page(category, section)
	if !ok {
		slug, haveDefault := s.catalog.DefaultSectionFor(category)
		if !haveDefault {
			http.NotFound(w, r)
			return
		}
		http.Redirect(w, r, fmt.Sprintf("/%s/%s", category, slug), http.StatusFound)
		return
	}

	s.renderPage(w, page, false)
}

func (s *Server) handleArticlesHub(w http.ResponseWriter, r *http.Request) {
	s.renderHub(w, s.catalog.Articles())
}

func (s *Server) handleArticle(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "article")

	page, ok := s.catalog.Page(content.ArticlesCategory, slug)
	if !ok {
		http.NotFound(w, r)
		return
	}

	s.renderPage(w, page, true)
}

func (s *Server) comingSoon(title, message string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s.renderComingSoon(w, title, message)
	}
}

// handleSectionList serves a page's section list, sentinel first, for the
// page script.
func (s *Server) handleSectionList(w http.ResponseWriter, r *http.Request) {
	category := chi.URLParam(r, "category")
	section := chi.URLParam(r, "section")

	secs, ok := s.catalog.Sections(category, section)
	if !ok {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "unknown page"})
		return
	}
	writeJSON(w, http.StatusOK, secs)
}

// searchRequest is the JSON body for the /api/search endpoint.
type searchRequest struct {
	Query string `json:"query"`
	Limit int    `json:"limit,omitempty"`
}

// searchResult is one hit in the /api/search response.
type searchResult struct {
	Category string `json:"category"`
	Slug     string `json:"slug"`
	Title    string `json:"title"`
	Path     string `json:"path"`
	Snippet  string `json:"snippet"`
}

func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	var req searchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}

	query := strings.TrimSpace(req.Query)
	if query == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "query is required"})
		return
	}

	limit := req.Limit
	if limit <= 0 || limit > 20 {
		limit = 8
	}

	results := s.searchCatalog(query, limit)
	if results == nil {
		results = []searchResult{}
	}
	writeJSON(w, http.StatusOK, map[string][]searchResult{"results": results})
}

// searchCatalog does a case-insensitive substring scan over every page,
// title matches ranked before body matches.
func (s *Server) searchCatalog(query string, limit int) []searchResult {
	needle := strings.ToLower(query)

	var titleHits, bodyHits []searchResult
	scan := func(p *content.Page, pagePath string) {
		if strings.Contains(strings.ToLower(p.Title), needle) {
			titleHits = append(titleHits, searchResult{
				Category: p.Category, Slug: p.Slug, Title: p.Title,
				Path: pagePath, Snippet: snippet(p.Text, needle),
			})
			return
		}
		if strings.Contains(strings.ToLower(p.Text), needle) {
			bodyHits = append(bodyHits, searchResult{
				Category: p.Category, Slug: p.Slug, Title: p.Title,
				Path: pagePath, Snippet: snippet(p.Text, needle),
			})
		}
	}

	for _, ci := range content.Categories {
		for _, p := range s.catalog.PagesIn(ci.Slug) {
			scan(p, fmt.Sprintf("/%s/%s", p.Category, p.Slug))
		}
	}
	for _, p := range s.catalog.Articles() {
		scan(p, "/articles/"+p.Slug)
	}

	results := append(titleHits, bodyHits...)
	if len(results) > limit {
		results = results[:limit]
	}
	return results
}

// snippet returns a short window of text around the first match.
func snippet(text, needle string) string {
	lower := strings.ToLower(text)
	idx := strings.Index(lower, needle)
	if idx < 0 {
		idx = 0
	}

	start := idx - 60
	if start < 0 {
		start = 0
	}
	end := idx + len(needle) + 120
	if end > len(text) {
		end = len(text)
	}

	snip := strings.Join(strings.Fields(text[start:end]), " ")
	if len(snip) > 160 {
		snip = snip[:160]
	}
	return snip
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
