package partners

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

type stubLister struct {
	partners []Partner
	scoop    []Scoop
	err      error
}

func (s stubLister) ListPartners(context.Context) ([]Partner, error) { return s.partners, s.err }
func (s stubLister) ListScoop(context.Context) ([]Scoop, error)      { return s.scoop, s.err }

func TestHandlerRoutes(t *testing.T) {
	h := NewHandler(stubLister{
		partners: []Partner{{ID: 1, Name: "alpro"}},
		scoop:    []Scoop{{ID: 1, Title: "t"}, {ID: 2, Title: "u"}},
	})

	tests := []struct {
		path string
		want int
	}{
		{"/api/partners", 1},
		{"/api/scoop", 2},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, tt.path, nil))
			if rec.Code != http.StatusOK {
				t.Fatalf("status = %d", rec.Code)
			}
			if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
				t.Errorf("content type = %q", ct)
			}
			var items []map[string]any
			if err := json.Unmarshal(rec.Body.Bytes(), &items); err != nil {
				t.Fatalf("decode: %v", err)
			}
			if len(items) != tt.want {
				t.Errorf("len = %d, want %d", len(items), tt.want)
			}
		})
	}
}

func TestHandlerPartnerFields(t *testing.T) {
	h := NewHandler(stubLister{partners: []Partner{{ID: 3, Name: "biscoff", VideoURL: "v", ClientURL: "#"}}})
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/partners", nil))
	var items []map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &items); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if items[0]["videoUrl"] != "v" || items[0]["clientUrl"] != "#" || items[0]["name"] != "biscoff" {
		t.Errorf("item = %v", items[0])
	}
}

func TestHandlerMethodNotAllowed(t *testing.T) {
	h := NewHandler(stubLister{})
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/partners", nil))
	if rec.Code != http.StatusMethodNotAllowed {
		t.Errorf("status = %d, want 405", rec.Code)
	}
}

func TestHandlerStoreError(t *testing.T) {
	h := NewHandler(stubLister{err: errors.New("boom")})
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/scoop", nil))
	if rec.Code != http.StatusInternalServerError {
		t.Errorf("status = %d, want 500", rec.Code)
	}
}

func TestHandlerWithStore(t *testing.T) {
	s, _ := openTestStore(t)
	srv := httptest.NewServer(NewHandler(s))
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/api/partners")
	if err != nil {
		t.Fatalf("GET: %v", err)
	}
	defer resp.Body.Close()
	var items []Partner
	if err := json.NewDecoder(resp.Body).Decode(&items); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(items) != len(DefaultPartners) {
		t.Errorf("len = %d, want %d", len(items), len(DefaultPartners))
	}
}
