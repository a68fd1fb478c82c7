// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	_ "modernc.org/sqlite"

	"github.com/danielhkuo/dayline/auth"
	"github.com/danielhkuo/dayline/cliparse"
	"github.com/danielhkuo/dayline/db"
)

// SetupTestDB creates a fresh in-memory sqlite database with the full
// schema and seeded sections. A single connection keeps the in-memory
// database alive for the test's duration.
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	conn, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	conn.SetMaxOpenConns(1)

	if err := db.CreateSchema(conn); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}
	if err := db.SeedSections(conn); err != nil {
		t.Fatalf("Failed to seed sections: %v", err)
	}

	return conn
}

// GetTestConfig returns a standard test configuration
func GetTestConfig() cliparse.Config {
	return cliparse.Config{
		Port:         3324,
		DatabaseURL:  ":memory:",
		DatabaseType: "sqlite",
	}
}

// CreateTestPerson inserts a person and returns its ID
func CreateTestPerson(t *testing.T, conn *sql.DB, name string) string {
	t.Helper()

	id := auth.NewID()
	_, err := conn.Exec(`
		INSERT INTO people (id, display_name) VALUES ($1, $2)
	`, id, name)
	if err != nil {
		t.Fatalf("Failed to create test person: %v", err)
	}

	return id
}

// CreateTestQuestion inserts an active question and returns its ID.
// options is a raw JSON string; pass "{}" for none.
func CreateTestQuestion(t *testing.T, conn *sql.DB, personID, sectionID, prompt, questionType, options string, sortOrder int) string {
	t.Helper()

	id := auth.NewID()
	_, err := conn.Exec(`
		INSERT INTO questions (id, person_id, section_id, prompt, type, options, sort_order, is_active)
		VALUES ($1, $2, $3, $4, $5, $6, $7, TRUE)
	`, id, personID, sectionID, prompt, questionType, options, sortOrder)
	if err != nil {
		t.Fatalf("Failed to create test question: %v", err)
	}

	return id
}

// InsertTestAnswer writes one answer row with the given slots; nil
// slots store NULL.
func InsertTestAnswer(t *testing.T, conn *sql.DB, personID, questionID, date string, valueBool *bool, valueNum *float64, valueText *string) {
	t.Helper()

	_, err := conn.Exec(`
		INSERT INTO answers (person_id, question_id, answer_date, value_bool, value_num, value_text, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`, personID, questionID, date, valueBool, valueNum, valueText, time.Now().UTC())
	if err != nil {
		t.Fatalf("Failed to create test answer: %v", err)
	}
}

// CreateTestTask inserts a task and returns its ID
func CreateTestTask(t *testing.T, conn *sql.DB, personID, title, dueDate, status string) string {
	t.Helper()

	id := auth.NewID()
	_, err := conn.Exec(`
		INSERT INTO tasks (id, person_id, title, due_date, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`, id, personID, title, dueDate, status, time.Now().UTC())
	if err != nil {
		t.Fatalf("Failed to create test task: %v", err)
	}

	return id
}

// MakeRequest creates an HTTP test request. A non-empty personID is
// attached as the active-person cookie.
func MakeRequest(method, path string, body interface{}, personID string) *http.Request {
	var req *http.Request
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	if personID != "" {
		req.AddCookie(&http.Cookie{Name: auth.ActivePersonCookie, Value: personID})
	}

	return req
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}

// Pointer helpers for answer slots

func Bool(v bool) *bool        { return &v }
func Float(v float64) *float64 { return &v }
func Str(v string) *string     { return &v }
