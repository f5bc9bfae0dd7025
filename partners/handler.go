package partners

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
)

// Lister is the read side of Store.
type Lister interface {
	ListPartners(ctx context.Context) ([]Partner, error)
	ListScoop(ctx context.Context) ([]Scoop, error)
}

// NewHandler serves GET /api/partners and GET /api/scoop as JSON arrays.
func NewHandler(store Lister) http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/partners", func(w http.ResponseWriter, r *http.Request) {
		items, err := store.ListPartners(r.Context())
		writeJSON(w, items, err)
	})
	mux.HandleFunc("GET /api/scoop", func(w http.ResponseWriter, r *http.Request) {
		items, err := store.ListScoop(r.Context())
		writeJSON(w, items, err)
	})
	return mux
}

func writeJSON(w http.ResponseWriter, v any, err error) {
	if err != nil {
		log.Printf("partners: %v", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("partners: encode response: %v", err)
	}
}
