package api

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/S3b4sB0t3r0/evg-server/internal/listview"
)

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}

// writeJSONStatus sets Content-Type before WriteHeader flushes the header
// block; headers added afterwards are dropped.
func writeJSONStatus(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func writeErr(w http.ResponseWriter, code int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": msg})
}

func idParam(r *http.Request) int64 {
	id, _ := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	return id
}

// parseViewState maps list query params onto a ViewState. Absent params
// leave zero values, which the pipeline normalizes to the defaults.
func parseViewState(r *http.Request) listview.ViewState {
	q := r.URL.Query()
	return listview.ViewState{
		Search:     q.Get("search"),
		Category:   q.Get("categoria"),
		Status:     q.Get("estado"),
		DateBucket: q.Get("fecha"),
		SortKey:    q.Get("orden"),
	}
}
