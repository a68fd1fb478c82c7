// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"log/slog"
	"net/http"

	"github.com/danielhkuo/dayline/auth"
	"github.com/danielhkuo/dayline/cliparse"
	"github.com/danielhkuo/dayline/middleware"
	"github.com/danielhkuo/dayline/models"
)

type SessionHandler struct {
	db  *sql.DB
	cfg cliparse.Config
}

func NewSessionHandler(db *sql.DB, cfg cliparse.Config) *SessionHandler {
	return &SessionHandler{db: db, cfg: cfg}
}

// Set handles POST /session
// Validates the person exists, then stores the selection in the cookie.
func (h *SessionHandler) Set(w http.ResponseWriter, r *http.Request) {
	var req models.SetSessionRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}

	if req.PersonID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "person_id required")
		return
	}

	var id string
	err := h.db.QueryRow(`
		SELECT id FROM people WHERE id = $1
	`, req.PersonID).Scan(&id)

	if err == sql.ErrNoRows {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid person")
		return
	}
	if err != nil {
		slog.Error("failed to query person", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	auth.SetActivePerson(w, id)
	middleware.JSONResponse(w, http.StatusOK, models.OKResponse{OK: true})
}

// Clear handles POST /session/clear
func (h *SessionHandler) Clear(w http.ResponseWriter, r *http.Request) {
	auth.ClearActivePerson(w)
	middleware.JSONResponse(w, http.StatusOK, models.OKResponse{OK: true})
}
