// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"database/sql"
	"testing"

	_ "modernc.org/sqlite"
)

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()
	conn, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("Failed to open database: %v", err)
	}
	conn.SetMaxOpenConns(1)
	return conn
}

func TestCreateSchemaIsIdempotent(t *testing.T) {
	conn := openTestDB(t)
	defer conn.Close()

	for i := 0; i < 2; i++ {
		if err := CreateSchema(conn); err != nil {
			t.Fatalf("CreateSchema run %d failed: %v", i+1, err)
		}
	}

	for _, table := range []string{"people", "sections", "questions", "answers", "tasks"} {
		var count int
		if err := conn.QueryRow(`SELECT COUNT(*) FROM ` + table).Scan(&count); err != nil {
			t.Errorf("Expected table %s to exist: %v", table, err)
		}
	}
}

func TestSeedSections(t *testing.T) {
	conn := openTestDB(t)
	defer conn.Close()

	if err := CreateSchema(conn); err != nil {
		t.Fatalf("CreateSchema failed: %v", err)
	}

	// seeding twice must not duplicate rows
	for i := 0; i < 2; i++ {
		if err := SeedSections(conn); err != nil {
			t.Fatalf("SeedSections run %d failed: %v", i+1, err)
		}
	}

	rows, err := conn.Query(`SELECT key FROM sections ORDER BY sort_order`)
	if err != nil {
		t.Fatalf("Failed to query sections: %v", err)
	}
	defer rows.Close()

	var keys []string
	for rows.Next() {
		var key string
		if err := rows.Scan(&key); err != nil {
			t.Fatalf("Failed to scan section: %v", err)
		}
		keys = append(keys, key)
	}

	expected := []string{"routine", "wellbeing", "reflection"}
	if len(keys) != len(expected) {
		t.Fatalf("Expected %d sections, got %v", len(expected), keys)
	}
	for i, key := range expected {
		if keys[i] != key {
			t.Errorf("Expected section %d to be %s, got %s", i, key, keys[i])
		}
	}
}
