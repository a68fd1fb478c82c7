// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"log/slog"
	"net/http"
	"strings"

	"github.com/danielhkuo/dayline/auth"
	"github.com/danielhkuo/dayline/cliparse"
	"github.com/danielhkuo/dayline/middleware"
	"github.com/danielhkuo/dayline/models"
)

type PeopleHandler struct {
	db  *sql.DB
	cfg cliparse.Config
}

func NewPeopleHandler(db *sql.DB, cfg cliparse.Config) *PeopleHandler {
	return &PeopleHandler{db: db, cfg: cfg}
}

// List handles GET /people
func (h *PeopleHandler) List(w http.ResponseWriter, r *http.Request) {
	rows, err := h.db.Query(`
		SELECT id, display_name
		FROM people
		ORDER BY display_name
	`)
	if err != nil {
		slog.Error("failed to query people", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}
	defer rows.Close()

	people := []models.Person{}
	for rows.Next() {
		var p models.Person
		if err := rows.Scan(&p.ID, &p.DisplayName); err != nil {
			slog.Error("failed to scan person", "error", err)
			middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
			return
		}
		people = append(people, p)
	}

	middleware.JSONResponse(w, http.StatusOK, models.PeopleResponse{People: people})
}

// Create handles POST /people
func (h *PeopleHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req models.CreatePersonRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}

	name := strings.TrimSpace(req.DisplayName)
	if name == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "display_name required")
		return
	}

	person := models.Person{ID: auth.NewID(), DisplayName: name}
	_, err := h.db.Exec(`
		INSERT INTO people (id, display_name)
		VALUES ($1, $2)
	`, person.ID, person.DisplayName)
	if err != nil {
		slog.Error("failed to insert person", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	middleware.JSONResponse(w, http.StatusCreated, models.PersonResponse{Person: person})
}
