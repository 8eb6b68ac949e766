package storage

import (
	"context"
	"testing"
	"time"
)

func openMemDB(t *testing.T) *DB {
	t.Helper()
	db, err := Open(":memory:")
	if err != nil {
		t.Fatalf("open in-memory db: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func TestCacheSetGet(t *testing.T) {
	db := openMemDB(t)
	ctx := context.Background()
	c := db.Cache(10 * time.Minute)

	if _, ok, err := c.Get(ctx, "csc:players"); err != nil || ok {
		t.Fatalf("empty cache Get = ok:%v err:%v, want miss", ok, err)
	}
	if err := c.Set(ctx, "csc:players", []byte(`[1,2]`)); err != nil {
		t.Fatalf("Set: %v", err)
	}
	v, ok, err := c.Get(ctx, "csc:players")
	if err != nil || !ok {
		t.Fatalf("Get after Set = ok:%v err:%v", ok, err)
	}
	if string(v) != `[1,2]` {
		t.Errorf("value = %s", v)
	}

	// Overwrite keeps a single row.
	if err := c.Set(ctx, "csc:players", []byte(`[3]`)); err != nil {
		t.Fatalf("Set: %v", err)
	}
	v, _, _ = c.Get(ctx, "csc:players")
	if string(v) != `[3]` {
		t.Errorf("value after overwrite = %s", v)
	}
}

func TestCacheExpiry(t *testing.T) {
	db := openMemDB(t)
	ctx := context.Background()
	c := db.Cache(10 * time.Minute)
	now := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)
	c.now = func() time.Time { return now }

	if err := c.Set(ctx, "k", []byte("v")); err != nil {
		t.Fatal(err)
	}
	now = now.Add(9 * time.Minute)
	if _, ok, _ := c.Get(ctx, "k"); !ok {
		t.Error("expected hit before TTL")
	}
	now = now.Add(time.Minute)
	if _, ok, _ := c.Get(ctx, "k"); ok {
		t.Error("expected miss at TTL")
	}
}

func TestCacheInvalidate(t *testing.T) {
	db := openMemDB(t)
	ctx := context.Background()
	c := db.Cache(time.Hour)
	c.Set(ctx, "a", []byte("1"))
	c.Set(ctx, "b", []byte("2"))
	if err := c.Invalidate(ctx); err != nil {
		t.Fatal(err)
	}
	for _, k := range []string{"a", "b"} {
		if _, ok, _ := c.Get(ctx, k); ok {
			t.Errorf("%s still cached after Invalidate", k)
		}
	}
}

func TestLastTeam(t *testing.T) {
	db := openMemDB(t)

	name, err := db.LastTeam()
	if err != nil {
		t.Fatalf("LastTeam: %v", err)
	}
	if name != "" {
		t.Errorf("expected empty last team, got %q", name)
	}

	for _, team := range []string{"Wyrms", "Drakes"} {
		if err := db.SetLastTeam(team); err != nil {
			t.Fatalf("SetLastTeam: %v", err)
		}
	}
	name, _ = db.LastTeam()
	if name != "Drakes" {
		t.Errorf("LastTeam = %q, want Drakes", name)
	}
}

func TestQueryRaw(t *testing.T) {
	db := openMemDB(t)
	db.SetPreference("theme", "dark")

	cols, rows, err := db.QueryRaw("SELECT key, value, NULL AS missing FROM preferences")
	if err != nil {
		t.Fatalf("QueryRaw: %v", err)
	}
	if len(cols) != 3 || cols[0] != "key" {
		t.Errorf("cols = %v", cols)
	}
	if len(rows) != 1 || rows[0][1] != "dark" || rows[0][2] != "NULL" {
		t.Errorf("rows = %v", rows)
	}

	if _, _, err := db.QueryRaw("SELECT * FROM nope"); err == nil {
		t.Error("expected error for unknown table")
	}
}
