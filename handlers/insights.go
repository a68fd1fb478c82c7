// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"log/slog"
	"net/http"
	"time"

	"github.com/danielhkuo/dayline/auth"
	"github.com/danielhkuo/dayline/cliparse"
	"github.com/danielhkuo/dayline/insights"
	"github.com/danielhkuo/dayline/middleware"
	"github.com/danielhkuo/dayline/models"
)

type InsightsHandler struct {
	db  *sql.DB
	cfg cliparse.Config
}

func NewInsightsHandler(db *sql.DB, cfg cliparse.Config) *InsightsHandler {
	return &InsightsHandler{db: db, cfg: cfg}
}

// Get handles GET /insights?range=week&anchor=YYYY-MM-DD
// Fetches the full snapshot for the resolved window, then hands it to
// the pure aggregation engine. Any failed read aborts the request; no
// partial report is ever produced.
func (h *InsightsHandler) Get(w http.ResponseWriter, r *http.Request) {
	personID, ok := auth.ActivePersonID(r)
	if !ok {
		middleware.ErrorResponse(w, http.StatusUnauthorized, "No active person")
		return
	}

	rangeParam := r.URL.Query().Get("range")
	if rangeParam == "" {
		rangeParam = string(insights.RangeWeek)
	}
	if !insights.ValidRange(rangeParam) {
		middleware.ErrorResponse(w, http.StatusBadRequest, "range must be week, month, or year")
		return
	}

	anchorParam := r.URL.Query().Get("anchor")
	if anchorParam == "" {
		anchorParam = time.Now().Format(insights.DateLayout)
	}
	anchor, err := insights.ParseDate(anchorParam)
	if err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid anchor date")
		return
	}

	window := insights.Resolve(insights.Range(rangeParam), anchor)

	person, err := getPerson(h.db, personID)
	if err == sql.ErrNoRows {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid person")
		return
	}
	if err != nil {
		slog.Error("failed to query person", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	questions, err := getActiveQuestions(h.db, personID)
	if err != nil {
		slog.Error("failed to query questions", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	answers, err := getAnswersInRange(h.db, personID, window.StartDate(), window.EndDate())
	if err != nil {
		slog.Error("failed to query answers", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	tasks, err := getTasksInRange(h.db, personID, window.StartDate(), window.EndDate())
	if err != nil {
		slog.Error("failed to query tasks", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	// The water chart reads its own fixed 10-day window, independent of
	// the selected range.
	var waterAnswers []models.Answer
	if wq := insights.FindWaterQuestion(questions); wq != nil {
		start := anchor.AddDate(0, 0, -9).Format(insights.DateLayout)
		waterAnswers, err = getQuestionAnswersInRange(h.db, personID, wq.ID, start, anchor.Format(insights.DateLayout))
		if err != nil {
			slog.Error("failed to query water answers", "error", err)
			middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
			return
		}
	}

	report := insights.BuildReport(insights.Range(rangeParam), anchor, window, insights.Snapshot{
		Person:       person,
		Questions:    questions,
		Answers:      answers,
		Tasks:        tasks,
		WaterAnswers: waterAnswers,
	})

	middleware.JSONResponse(w, http.StatusOK, report)
}
