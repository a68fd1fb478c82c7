// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/danielhkuo/dayline/auth"
	"github.com/danielhkuo/dayline/cliparse"
	"github.com/danielhkuo/dayline/middleware"
	"github.com/danielhkuo/dayline/models"
)

type QuestionsHandler struct {
	db  *sql.DB
	cfg cliparse.Config
}

func NewQuestionsHandler(db *sql.DB, cfg cliparse.Config) *QuestionsHandler {
	return &QuestionsHandler{db: db, cfg: cfg}
}

// List handles GET /questions?include_inactive=1
func (h *QuestionsHandler) List(w http.ResponseWriter, r *http.Request) {
	personID, ok := auth.ActivePersonID(r)
	if !ok {
		middleware.ErrorResponse(w, http.StatusUnauthorized, "No active person")
		return
	}

	query := `
		SELECT id, person_id, section_id, prompt, type, options, sort_order, is_active
		FROM questions
		WHERE person_id = $1
		ORDER BY sort_order
	`
	if r.URL.Query().Get("include_inactive") != "1" {
		query = `
			SELECT id, person_id, section_id, prompt, type, options, sort_order, is_active
			FROM questions
			WHERE person_id = $1 AND is_active = TRUE
			ORDER BY sort_order
		`
	}

	questions, err := queryQuestions(h.db, query, personID)
	if err != nil {
		slog.Error("failed to query questions", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.QuestionsResponse{Questions: questions})
}

// Create handles POST /questions
// A missing sort_order places the question after the section's current
// last question.
func (h *QuestionsHandler) Create(w http.ResponseWriter, r *http.Request) {
	personID, ok := auth.ActivePersonID(r)
	if !ok {
		middleware.ErrorResponse(w, http.StatusUnauthorized, "No active person")
		return
	}

	var req models.CreateQuestionRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}

	if req.SectionID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "section_id required")
		return
	}

	prompt := strings.TrimSpace(req.Prompt)
	if prompt == "" {
		prompt = "New question"
	}
	questionType := req.Type
	if questionType == "" {
		questionType = models.TypeCheckbox
	}
	options := "{}"
	if len(req.Options) > 0 {
		options = string(req.Options)
	}

	sortOrder := 0
	if req.SortOrder != nil {
		sortOrder = *req.SortOrder
	} else {
		var maxSort int
		err := h.db.QueryRow(`
			SELECT COALESCE(MAX(sort_order), 0)
			FROM questions
			WHERE person_id = $1 AND section_id = $2
		`, personID, req.SectionID).Scan(&maxSort)
		if err != nil {
			slog.Error("failed to query max sort order", "error", err)
			middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
			return
		}
		sortOrder = maxSort + 1
	}

	question := models.Question{
		ID:        auth.NewID(),
		PersonID:  personID,
		SectionID: req.SectionID,
		Prompt:    prompt,
		Type:      questionType,
		Options:   []byte(options),
		SortOrder: sortOrder,
		IsActive:  true,
	}

	_, err := h.db.Exec(`
		INSERT INTO questions (id, person_id, section_id, prompt, type, options, sort_order, is_active)
		VALUES ($1, $2, $3, $4, $5, $6, $7, TRUE)
	`, question.ID, question.PersonID, question.SectionID, question.Prompt, question.Type, options, question.SortOrder)
	if err != nil {
		slog.Error("failed to insert question", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	middleware.JSONResponse(w, http.StatusCreated, models.QuestionResponse{Question: question})
}

// Update handles PATCH /questions/{id}
// Only fields present in the body are changed.
func (h *QuestionsHandler) Update(w http.ResponseWriter, r *http.Request) {
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

	var req models.UpdateQuestionRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}

	sets := []string{}
	args := []any{}
	place := func(v any) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}

	if req.Prompt != nil {
		prompt := strings.TrimSpace(*req.Prompt)
		if prompt == "" {
			prompt = "Untitled question"
		}
		sets = append(sets, "prompt = "+place(prompt))
	}
	if req.Type != nil {
		sets = append(sets, "type = "+place(*req.Type))
	}
	if len(req.Options) > 0 {
		sets = append(sets, "options = "+place(string(req.Options)))
	}
	if req.IsActive != nil {
		sets = append(sets, "is_active = "+place(*req.IsActive))
	}
	if req.SortOrder != nil {
		sets = append(sets, "sort_order = "+place(*req.SortOrder))
	}
	if req.SectionID != nil {
		sets = append(sets, "section_id = "+place(*req.SectionID))
	}

	if len(sets) > 0 {
		query := fmt.Sprintf(
			"UPDATE questions SET %s WHERE id = %s AND person_id = %s",
			strings.Join(sets, ", "), place(id), place(personID),
		)
		result, err := h.db.Exec(query, args...)
		if err != nil {
			slog.Error("failed to update question", "error", err)
			middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
			return
		}
		affected, _ := result.RowsAffected()
		if affected == 0 {
			middleware.ErrorResponse(w, http.StatusNotFound, "Question not found")
			return
		}
	}

	questions, err := queryQuestions(h.db, `
		SELECT id, person_id, section_id, prompt, type, options, sort_order, is_active
		FROM questions
		WHERE id = $1 AND person_id = $2
	`, id, personID)
	if err != nil {
		slog.Error("failed to query question", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}
	if len(questions) == 0 {
		middleware.ErrorResponse(w, http.StatusNotFound, "Question not found")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.QuestionResponse{Question: questions[0]})
}

// Delete handles DELETE /questions/{id}
// The question's answers go with it.
func (h *QuestionsHandler) Delete(w http.ResponseWriter, r *http.Request) {
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

	tx, err := h.db.Begin()
	if err != nil {
		slog.Error("failed to begin transaction", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}
	defer tx.Rollback()

	// explicit answer delete so sqlite does not depend on FK pragma state
	if _, err := tx.Exec(`
		DELETE FROM answers WHERE question_id = $1 AND person_id = $2
	`, id, personID); err != nil {
		slog.Error("failed to delete answers", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	result, err := tx.Exec(`
		DELETE FROM questions WHERE id = $1 AND person_id = $2
	`, id, personID)
	if err != nil {
		slog.Error("failed to delete question", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}
	affected, _ := result.RowsAffected()
	if affected == 0 {
		middleware.ErrorResponse(w, http.StatusNotFound, "Question not found")
		return
	}

	if err := tx.Commit(); err != nil {
		slog.Error("failed to commit delete", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.OKResponse{OK: true})
}

// Reorder handles POST /questions/reorder
// Swaps sort keys with the neighbor in the same section. Moving past
// either end is a no-op success.
func (h *QuestionsHandler) Reorder(w http.ResponseWriter, r *http.Request) {
	personID, ok := auth.ActivePersonID(r)
	if !ok {
		middleware.ErrorResponse(w, http.StatusUnauthorized, "No active person")
		return
	}

	var req models.ReorderQuestionRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}

	if req.QuestionID == "" || (req.Direction != "up" && req.Direction != "down") {
		middleware.ErrorResponse(w, http.StatusBadRequest, "question_id and direction required")
		return
	}

	var sectionID string
	err := h.db.QueryRow(`
		SELECT section_id FROM questions WHERE id = $1 AND person_id = $2
	`, req.QuestionID, personID).Scan(&sectionID)

	if err == sql.ErrNoRows {
		middleware.ErrorResponse(w, http.StatusNotFound, "Question not found")
		return
	}
	if err != nil {
		slog.Error("failed to query question", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	type item struct {
		id   string
		sort int
	}
	rows, err := h.db.Query(`
		SELECT id, sort_order
		FROM questions
		WHERE person_id = $1 AND section_id = $2
		ORDER BY sort_order
	`, personID, sectionID)
	if err != nil {
		slog.Error("failed to query section questions", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}
	defer rows.Close()

	items := []item{}
	for rows.Next() {
		var it item
		if err := rows.Scan(&it.id, &it.sort); err != nil {
			slog.Error("failed to scan question", "error", err)
			middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
			return
		}
		items = append(items, it)
	}
	if err := rows.Err(); err != nil {
		slog.Error("failed to read section questions", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	index := -1
	for i, it := range items {
		if it.id == req.QuestionID {
			index = i
			break
		}
	}
	if index == -1 {
		middleware.ErrorResponse(w, http.StatusNotFound, "Question not found")
		return
	}

	target := index - 1
	if req.Direction == "down" {
		target = index + 1
	}
	if target < 0 || target >= len(items) {
		middleware.JSONResponse(w, http.StatusOK, models.OKResponse{OK: true})
		return
	}

	tx, err := h.db.Begin()
	if err != nil {
		slog.Error("failed to begin transaction", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}
	defer tx.Rollback()

	for _, swap := range []struct {
		id   string
		sort int
	}{
		{items[index].id, items[target].sort},
		{items[target].id, items[index].sort},
	} {
		if _, err := tx.Exec(`
			UPDATE questions SET sort_order = $1 WHERE id = $2 AND person_id = $3
		`, swap.sort, swap.id, personID); err != nil {
			slog.Error("failed to swap sort order", "error", err)
			middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
			return
		}
	}

	if err := tx.Commit(); err != nil {
		slog.Error("failed to commit reorder", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.OKResponse{OK: true})
}
