// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"database/sql"
	"fmt"

	"github.com/danielhkuo/dayline/cliparse"
)

// Open connects to the configured database. The driver is chosen by
// cfg.DatabaseType: "postgres" (lib/pq) or "sqlite" (modernc.org/sqlite,
// the default). Callers must blank-import the driver they need.
func Open(cfg cliparse.Config) (*sql.DB, error) {
	driver := "sqlite"
	if cfg.DatabaseType == "postgres" {
		driver = "postgres"
	}

	conn, err := sql.Open(driver, cfg.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := conn.Ping(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return conn, nil
}

// CreateSchema creates all tables needed for the application.
// Safe to call multiple times - uses IF NOT EXISTS. The DDL sticks to
// the dialect subset shared by Postgres and SQLite.
func CreateSchema(db *sql.DB) error {
	_, err := db.Exec(schema)
	if err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}

// SeedSections inserts the default section rows. Existing rows (matched
// by key) are left untouched, so this is also safe to call on every start.
func SeedSections(db *sql.DB) error {
	sections := []struct {
		id    string
		key   string
		title string
		sort  int
	}{
		{"routine", "routine", "Daily Routine", 1},
		{"wellbeing", "wellbeing", "Wellbeing", 2},
		{"reflection", "reflection", "Reflection", 3},
	}

	for _, s := range sections {
		_, err := db.Exec(`
			INSERT INTO sections (id, key, title, sort_order)
			VALUES ($1, $2, $3, $4)
			ON CONFLICT (key) DO NOTHING
		`, s.id, s.key, s.title, s.sort)
		if err != nil {
			return fmt.Errorf("failed to seed section %q: %w", s.key, err)
		}
	}

	return nil
}

const schema = `
-- People
CREATE TABLE IF NOT EXISTS people (
    id TEXT PRIMARY KEY,
    display_name TEXT NOT NULL,
    created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
);

-- Sections (question grouping buckets)
CREATE TABLE IF NOT EXISTS sections (
    id TEXT PRIMARY KEY,
    key TEXT NOT NULL UNIQUE,
    title TEXT NOT NULL,
    sort_order INTEGER NOT NULL DEFAULT 0
);

-- Questions
CREATE TABLE IF NOT EXISTS questions (
    id TEXT PRIMARY KEY,
    person_id TEXT NOT NULL REFERENCES people(id) ON DELETE CASCADE,
    section_id TEXT NOT NULL REFERENCES sections(id),
    prompt TEXT NOT NULL,
    type TEXT NOT NULL,
    options TEXT NOT NULL DEFAULT '{}',
    sort_order INTEGER NOT NULL DEFAULT 0,
    is_active BOOLEAN NOT NULL DEFAULT TRUE
);

CREATE INDEX IF NOT EXISTS idx_questions_person ON questions(person_id, section_id, sort_order);

-- Answers: one row per (person, question, date); dates are YYYY-MM-DD text
CREATE TABLE IF NOT EXISTS answers (
    person_id TEXT NOT NULL REFERENCES people(id) ON DELETE CASCADE,
    question_id TEXT NOT NULL REFERENCES questions(id) ON DELETE CASCADE,
    answer_date TEXT NOT NULL,
    value_bool BOOLEAN,
    value_num DOUBLE PRECISION,
    value_text TEXT,
    value_json TEXT,
    updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
    PRIMARY KEY (person_id, question_id, answer_date)
);

CREATE INDEX IF NOT EXISTS idx_answers_person_date ON answers(person_id, answer_date);
CREATE INDEX IF NOT EXISTS idx_answers_question ON answers(question_id, answer_date);

-- Tasks
CREATE TABLE IF NOT EXISTS tasks (
    id TEXT PRIMARY KEY,
    person_id TEXT NOT NULL REFERENCES people(id) ON DELETE CASCADE,
    title TEXT NOT NULL,
    due_date TEXT NOT NULL,
    status TEXT NOT NULL DEFAULT 'todo' CHECK (status IN ('todo', 'done')),
    created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE INDEX IF NOT EXISTS idx_tasks_person_due ON tasks(person_id, due_date);
`
