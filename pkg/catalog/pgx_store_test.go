package catalog

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

// Runs against a real Postgres when CATALOG_TEST_POSTGRES_URL is set.
func TestPgxStore_NewestFirst(t *testing.T) {
	dsn := os.Getenv("CATALOG_TEST_POSTGRES_URL")
	if dsn == "" {
		t.Skip("CATALOG_TEST_POSTGRES_URL not set")
	}
	ctx := context.Background()

	conn, err := pgx.Connect(ctx, dsn)
	if err != nil {
		t.Fatalf("connect: %v", err)
	}
	defer conn.Close(ctx)

	// A temp table shadows any real videos table for this session only.
	_, err = conn.Exec(ctx, `
		CREATE TEMP TABLE videos (
			id TEXT PRIMARY KEY,
			title TEXT NOT NULL,
			description TEXT,
			thumbnail TEXT,
			video_url TEXT,
			price NUMERIC(10,2),
			created_at TIMESTAMPTZ NOT NULL,
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`)
	if err != nil {
		t.Fatalf("create temp table: %v", err)
	}

	base := time.Date(2024, 2, 10, 8, 0, 0, 0, time.UTC)
	for i, title := range []string{"old", "new", "mid"} {
		created := base
		switch title {
		case "new":
			created = base.Add(2 * time.Hour)
		case "mid":
			created = base.Add(time.Hour)
		}
		_, err := conn.Exec(ctx,
			`INSERT INTO videos (id, title, price, created_at) VALUES ($1, $2, $3, $4)`,
			string(rune('a'+i)), title, 7.25, created)
		if err != nil {
			t.Fatalf("insert %s: %v", title, err)
		}
	}

	got, err := NewPgxStore(conn).FindMany(ctx, IntroVideoQuery())
	if err != nil {
		t.Fatalf("FindMany: %v", err)
	}
	if len(got) != 1 || got[0].Title != "new" || got[0].Price != 7.25 {
		t.Fatalf("got %+v, want the newest row", got)
	}

	// Newest row now has no description, media or price.
	_, err = conn.Exec(ctx,
		`INSERT INTO videos (id, title, created_at) VALUES ('z', 'bare', $1)`,
		base.Add(3*time.Hour))
	if err != nil {
		t.Fatalf("insert bare row: %v", err)
	}

	got, err = NewPgxStore(conn).FindMany(ctx, IntroVideoQuery())
	if err != nil {
		t.Fatalf("FindMany with NULL columns: %v", err)
	}
	if len(got) != 1 || got[0].ID != "z" || got[0].Title != "bare" {
		t.Fatalf("got %+v, want the bare row", got)
	}
	if got[0].Description != "" || got[0].Thumbnail != "" || got[0].VideoURL != "" || got[0].Price != 0 {
		t.Errorf("NULL columns not read as zero values: %+v", got[0])
	}
}

func TestPgxRow_ScansNullColumns(t *testing.T) {
	m := pgtype.NewMap()
	columns := []struct {
		name string
		oid  uint32
	}{
		{"id", pgtype.TextOID},
		{"title", pgtype.TextOID},
		{"description", pgtype.TextOID},
		{"thumbnail", pgtype.TextOID},
		{"video_url", pgtype.TextOID},
		{"price", pgtype.NumericOID},
		{"created_at", pgtype.TimestamptzOID},
	}

	var row pgxRow
	targets := row.targets(IntroVideoColumns)
	if len(targets) != len(columns) {
		t.Fatalf("got %d scan targets, want %d", len(targets), len(columns))
	}
	for i, c := range columns {
		if err := m.Scan(c.oid, pgtype.TextFormatCode, nil, targets[i]); err != nil {
			t.Errorf("scan NULL %s: %v", c.name, err)
		}
	}
	if v := row.video(); v != (IntroVideo{}) {
		t.Errorf("NULL row = %+v, want zero value", v)
	}
}

func TestPgxRow_ScansValues(t *testing.T) {
	m := pgtype.NewMap()
	var row pgxRow
	targets := row.targets([]string{"thumbnail", "price", "created_at"})

	if err := m.Scan(pgtype.TextOID, pgtype.TextFormatCode, []byte("thumbs/a.jpg"), targets[0]); err != nil {
		t.Fatalf("scan thumbnail: %v", err)
	}
	if err := m.Scan(pgtype.NumericOID, pgtype.TextFormatCode, []byte("12.50"), targets[1]); err != nil {
		t.Fatalf("scan price: %v", err)
	}
	if err := m.Scan(pgtype.TimestamptzOID, pgtype.TextFormatCode, []byte("2024-02-10 08:00:00+00"), targets[2]); err != nil {
		t.Fatalf("scan created_at: %v", err)
	}

	v := row.video()
	if v.Thumbnail != "thumbs/a.jpg" || v.Price != 12.5 {
		t.Errorf("unexpected video: %+v", v)
	}
	if !v.CreatedAt.Equal(time.Date(2024, 2, 10, 8, 0, 0, 0, time.UTC)) {
		t.Errorf("createdAt = %s", v.CreatedAt)
	}
}

func TestPgxStore_InvalidQuerySendsNothing(t *testing.T) {
	store := NewPgxStore(nil)
	if _, err := store.FindMany(context.Background(), Query{Fields: []string{"secret"}, Limit: 1}); err == nil {
		t.Fatalf("expected validation error")
	}
}
