// Package partners stores the agency's partner reels and news items in
// SQLite and serves them as JSON. The hero gallery is sized from the
// partner list.
package partners

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	_ "modernc.org/sqlite"
)

// Partner is one client reel shown in the hero gallery.
type Partner struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	VideoURL  string `json:"videoUrl"`
	ClientURL string `json:"clientUrl"`
}

// Scoop is one news item in the trends section.
type Scoop struct {
	ID           int64  `json:"id"`
	Title        string `json:"title"`
	Date         string `json:"date"`
	ThumbnailURL string `json:"thumbnailUrl"`
	Link         string `json:"link"`
}

// ErrNotConfigured is returned by methods on a nil or closed store.
var ErrNotConfigured = errors.New("partners: storage is not configured")

const schema = `
CREATE TABLE IF NOT EXISTS partners (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	name TEXT NOT NULL,
	video_url TEXT NOT NULL,
	client_url TEXT NOT NULL
);
CREATE TABLE IF NOT EXISTS scoop (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	title TEXT NOT NULL,
	date TEXT NOT NULL,
	thumbnail_url TEXT NOT NULL,
	link TEXT NOT NULL
);`

// DefaultPartners seeds an empty partners table.
var DefaultPartners = []Partner{
	{Name: "alpro", VideoURL: "https://assets.mixkit.co/videos/preview/mixkit-waterfall-in-forest-2213-large.mp4", ClientURL: "#"},
	{Name: "action", VideoURL: "https://assets.mixkit.co/videos/preview/mixkit-tree-branches-in-the-breeze-1188-large.mp4", ClientURL: "#"},
	{Name: "gall & gall", VideoURL: "https://assets.mixkit.co/videos/preview/mixkit-forest-stream-in-the-sunlight-529-large.mp4", ClientURL: "#"},
	{Name: "hornbach", VideoURL: "https://assets.mixkit.co/videos/preview/mixkit-stars-in-space-1610-large.mp4", ClientURL: "#"},
	{Name: "jägermeister", VideoURL: "https://assets.mixkit.co/videos/preview/mixkit-waterfall-in-forest-2213-large.mp4", ClientURL: "#"},
	{Name: "biscoff", VideoURL: "https://assets.mixkit.co/videos/preview/mixkit-tree-branches-in-the-breeze-1188-large.mp4", ClientURL: "#"},
}

// DefaultScoop seeds an empty scoop table.
var DefaultScoop = []Scoop{
	{Title: "The Future of Social", Date: "Feb 22, 2026", ThumbnailURL: "https://picsum.photos/seed/social/400/600", Link: "#"},
	{Title: "AI in Content Creation", Date: "Feb 20, 2026", ThumbnailURL: "https://picsum.photos/seed/ai/400/600", Link: "#"},
	{Title: "Viral Marketing Secrets", Date: "Feb 18, 2026", ThumbnailURL: "https://picsum.photos/seed/viral/400/600", Link: "#"},
}

// Store persists partners and scoop items in SQLite.
type Store struct {
	sqlDB *sql.DB
}

// Open opens (creating if needed) the database at path, applies the schema
// and seeds empty tables.
func Open(ctx context.Context, path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("storage path is required")
	}
	dsn := filepath.Clean(path) + "?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)"
	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	sqlDB.SetMaxOpenConns(1)
	if err := sqlDB.PingContext(ctx); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}
	s := &Store{sqlDB: sqlDB}
	if _, err := sqlDB.ExecContext(ctx, schema); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("apply schema: %w", err)
	}
	if err := s.seed(ctx); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("seed: %w", err)
	}
	return s, nil
}

// Close closes the SQLite handle.
func (s *Store) Close() error {
	if s == nil || s.sqlDB == nil {
		return nil
	}
	err := s.sqlDB.Close()
	s.sqlDB = nil
	return err
}

func (s *Store) seed(ctx context.Context) error {
	tx, err := s.sqlDB.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	var n int
	if err := tx.QueryRowContext(ctx, `SELECT COUNT(*) FROM partners`).Scan(&n); err != nil {
		return fmt.Errorf("count partners: %w", err)
	}
	if n == 0 {
		for _, p := range DefaultPartners {
			if _, err := tx.ExecContext(ctx,
				`INSERT INTO partners (name, video_url, client_url) VALUES (?, ?, ?)`,
				p.Name, p.VideoURL, p.ClientURL,
			); err != nil {
				return fmt.Errorf("insert partner %q: %w", p.Name, err)
			}
		}
	}

	if err := tx.QueryRowContext(ctx, `SELECT COUNT(*) FROM scoop`).Scan(&n); err != nil {
		return fmt.Errorf("count scoop: %w", err)
	}
	if n == 0 {
		for _, sc := range DefaultScoop {
			if _, err := tx.ExecContext(ctx,
				`INSERT INTO scoop (title, date, thumbnail_url, link) VALUES (?, ?, ?, ?)`,
				sc.Title, sc.Date, sc.ThumbnailURL, sc.Link,
			); err != nil {
				return fmt.Errorf("insert scoop %q: %w", sc.Title, err)
			}
		}
	}
	return tx.Commit()
}

// ListPartners returns every partner in insertion order.
func (s *Store) ListPartners(ctx context.Context) ([]Partner, error) {
	if s == nil || s.sqlDB == nil {
		return nil, ErrNotConfigured
	}
	rows, err := s.sqlDB.QueryContext(ctx,
		`SELECT id, name, video_url, client_url FROM partners ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list partners: %w", err)
	}
	defer rows.Close()

	out := []Partner{}
	for rows.Next() {
		var p Partner
		if err := rows.Scan(&p.ID, &p.Name, &p.VideoURL, &p.ClientURL); err != nil {
			return nil, fmt.Errorf("scan partner: %w", err)
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list partners: %w", err)
	}
	return out, nil
}

// ListScoop returns every scoop item in insertion order.
func (s *Store) ListScoop(ctx context.Context) ([]Scoop, error) {
	if s == nil || s.sqlDB == nil {
		return nil, ErrNotConfigured
	}
	rows, err := s.sqlDB.QueryContext(ctx,
		`SELECT id, title, date, thumbnail_url, link FROM scoop ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list scoop: %w", err)
	}
	defer rows.Close()

	out := []Scoop{}
	for rows.Next() {
		var sc Scoop
		if err := rows.Scan(&sc.ID, &sc.Title, &sc.Date, &sc.ThumbnailURL, &sc.Link); err != nil {
			return nil, fmt.Errorf("scan scoop: %w", err)
		}
		out = append(out, sc)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list scoop: %w", err)
	}
	return out, nil
}
