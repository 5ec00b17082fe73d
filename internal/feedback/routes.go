package feedback

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
)

// RegisterRoutes mounts the feedback service endpoints on the given router.
func RegisterRoutes(r chi.Router, store *Store) {
	r.Route("/article", func(r chi.Router) {
		r.Get("/stats", handleStats(store))
		r.Post("/counter", handleCounter(store))
	})
}

func handleStats(store *Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		articleID := r.URL.Query().Get("articleId")
		if articleID == "" {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "articleId is required"})
			return
		}

		counts, err := store.Stats(r.Context(), articleID)
		if err != nil {
			writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
			return
		}
		writeJSON(w, http.StatusOK, counts)
	}
}

// counterRequest is the JSON body for the vote submission endpoint.
type counterRequest struct {
	ArticleID string `json:"articleId"`
	Action    Action `json:"action"`
}

func handleCounter(store *Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req counterRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
			return
		}
		if req.ArticleID == "" {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "articleId is required"})
			return
		}
		if !req.Action.Valid() {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "action must be like or dislike"})
			return
		}

		counts, err := store.Apply(r.Context(), req.ArticleID, req.Action)
		if err != nil {
			writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
			return
		}
		writeJSON(w, http.StatusOK, counts)
	}
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
