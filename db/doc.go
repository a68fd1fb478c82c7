// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db provides database connection and schema management.

# Opening a Connection

	conn, err := db.Open(cfg)

The driver is selected by the DATABASE_TYPE config value: "sqlite"
(default, pure-Go via modernc.org/sqlite) or "postgres" (lib/pq).
Queries throughout the codebase use $N placeholders numbered in order of
appearance, which bind identically on both backends.

# Schema

	err := db.CreateSchema(conn)
	err = db.SeedSections(conn)

CreateSchema is idempotent (IF NOT EXISTS everywhere). SeedSections
inserts the three default sections and skips keys that already exist.

Calendar dates (answer_date, due_date) are stored as YYYY-MM-DD text so
lexicographic comparison equals chronological comparison on both
backends.
*/
package db
