// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/danielhkuo/dayline/auth"
	"github.com/danielhkuo/dayline/cliparse"
	"github.com/danielhkuo/dayline/insights"
	"github.com/danielhkuo/dayline/middleware"
	"github.com/danielhkuo/dayline/models"
)

type TasksHandler struct {
	db  *sql.DB
	cfg cliparse.Config
}

func NewTasksHandler(db *sql.DB, cfg cliparse.Config) *TasksHandler {
	return &TasksHandler{db: db, cfg: cfg}
}

// Create handles POST /tasks
func (h *TasksHandler) Create(w http.ResponseWriter, r *http.Request) {
	personID, ok := auth.ActivePersonID(r)
	if !ok {
		middleware.ErrorResponse(w, http.StatusUnauthorized, "No active person")
		return
	}

	var req models.CreateTaskRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}

	title := strings.TrimSpace(req.Title)
	if title == "" || req.DueDate == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Missing fields")
		return
	}
	if _, err := insights.ParseDate(req.DueDate); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid due_date")
		return
	}

	task := models.Task{
		ID:      auth.NewID(),
		Title:   title,
		DueDate: req.DueDate,
		Status:  models.TaskStatusTodo,
	}

	_, err := h.db.Exec(`
		INSERT INTO tasks (id, person_id, title, due_date, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`, task.ID, personID, task.Title, task.DueDate, task.Status, time.Now().UTC())
	if err != nil {
		slog.Error("failed to insert task", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	middleware.JSONResponse(w, http.StatusCreated, models.TaskResponse{Task: task})
}

// Toggle handles POST /tasks/{id}/toggle
func (h *TasksHandler) Toggle(w http.ResponseWriter, r *http.Request) {
	personID, ok := auth.ActivePersonID(r)
	if !ok {
		middleware.ErrorResponse(w, http.StatusUnauthorized, "No active person")
		return
	}

	id := r.PathValue("id")
	if id == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "id is required")
		return
	}

	var req models.ToggleTaskRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}
	if req.Status != models.TaskStatusTodo && req.Status != models.TaskStatusDone {
		middleware.ErrorResponse(w, http.StatusBadRequest, "status must be todo or done")
		return
	}

	result, err := h.db.Exec(`
		UPDATE tasks SET status = $1 WHERE id = $2 AND person_id = $3
	`, req.Status, id, personID)
	if err != nil {
		slog.Error("failed to update task", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	affected, _ := result.RowsAffected()
	if affected == 0 {
		middleware.ErrorResponse(w, http.StatusNotFound, "Task not found")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.OKResponse{OK: true})
}
