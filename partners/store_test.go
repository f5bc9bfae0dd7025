package partners

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
)

func openTestStore(t *testing.T) (*Store, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "agency.db")
	s, err := Open(context.Background(), path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { _ = s.Close() })
	return s, path
}

func TestOpenSeedsPartners(t *testing.T) {
	s, _ := openTestStore(t)
	got, err := s.ListPartners(context.Background())
	if err != nil {
		t.Fatalf("ListPartners: %v", err)
	}
	if len(got) != len(DefaultPartners) {
		t.Fatalf("len = %d, want %d", len(got), len(DefaultPartners))
	}
	for i, p := range got {
		if p.Name != DefaultPartners[i].Name {
			t.Errorf("partner %d = %q, want %q", i, p.Name, DefaultPartners[i].Name)
		}
		if p.ID != int64(i+1) {
			t.Errorf("partner %d id = %d", i, p.ID)
		}
	}
}

func TestOpenSeedsScoop(t *testing.T) {
	s, _ := openTestStore(t)
	got, err := s.ListScoop(context.Background())
	if err != nil {
		t.Fatalf("ListScoop: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("len = %d, want 3", len(got))
	}
	if got[0].Title != "The Future of Social" || got[0].Date != "Feb 22, 2026" {
		t.Errorf("first = %+v", got[0])
	}
}

func TestReopenDoesNotReseed(t *testing.T) {
	s, path := openTestStore(t)
	if err := s.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	s2, err := Open(context.Background(), path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer s2.Close()
	got, err := s2.ListPartners(context.Background())
	if err != nil {
		t.Fatalf("ListPartners: %v", err)
	}
	if len(got) != len(DefaultPartners) {
		t.Errorf("len after reopen = %d, want %d", len(got), len(DefaultPartners))
	}
}

func TestOpenEmptyPath(t *testing.T) {
	if _, err := Open(context.Background(), "  "); err == nil {
		t.Fatal("expected error for empty path")
	}
}

func TestClosedStore(t *testing.T) {
	s, _ := openTestStore(t)
	_ = s.Close()
	if _, err := s.ListPartners(context.Background()); !errors.Is(err, ErrNotConfigured) {
		t.Errorf("err = %v, want ErrNotConfigured", err)
	}
	var nilStore *Store
	if _, err := nilStore.ListScoop(context.Background()); !errors.Is(err, ErrNotConfigured) {
		t.Errorf("nil store err = %v", err)
	}
}
