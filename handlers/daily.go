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

type DailyHandler struct {
	db  *sql.DB
	cfg cliparse.Config
}

func NewDailyHandler(db *sql.DB, cfg cliparse.Config) *DailyHandler {
	return &DailyHandler{db: db, cfg: cfg}
}

// Get handles GET /daily?date=YYYY-MM-DD
// Returns everything the daily page needs: sections, the person's active
// questions, their projected answers for the date, tasks due that day
// and the next, and routine completion counts.
func (h *DailyHandler) Get(w http.ResponseWriter, r *http.Request) {
	personID, ok := auth.ActivePersonID(r)
	if !ok {
		middleware.ErrorResponse(w, http.StatusUnauthorized, "No active person")
		return
	}

	date := r.URL.Query().Get("date")
	if date == "" {
		date = time.Now().Format(insights.DateLayout)
	}
	day, err := insights.ParseDate(date)
	if err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid date")
		return
	}
	tomorrow := day.AddDate(0, 0, 1).Format(insights.DateLayout)

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

	sections, err := getSections(h.db)
	if err != nil {
		slog.Error("failed to query sections", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	questions, err := getActiveQuestions(h.db, personID)
	if err != nil {
		slog.Error("failed to query questions", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	answers, err := getAnswersForDate(h.db, personID, date)
	if err != nil {
		slog.Error("failed to query answers", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	tasksToday, err := getTasksForDate(h.db, personID, date)
	if err != nil {
		slog.Error("failed to query tasks", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	tasksTomorrow, err := getTasksForDate(h.db, personID, tomorrow)
	if err != nil {
		slog.Error("failed to query tasks", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	// Project each raw answer row through its question's declared type
	typeByQuestion := make(map[string]string, len(questions))
	for _, q := range questions {
		typeByQuestion[q.ID] = q.Type
	}
	answerMap := make(map[string]any, len(answers))
	for _, a := range answers {
		answerMap[a.QuestionID] = insights.ProjectValue(typeByQuestion[a.QuestionID], a)
	}

	routine := routineCompletion(sections, questions, answerMap)

	middleware.JSONResponse(w, http.StatusOK, models.DailyResponse{
		Person:            person,
		Sections:          sections,
		Questions:         questions,
		Answers:           answerMap,
		TasksToday:        tasksToday,
		TasksTomorrow:     tasksTomorrow,
		TomorrowDate:      tomorrow,
		RoutineCompletion: routine,
	})
}

// routineCompletion counts checked checkbox questions in the routine
// section against the section's checkbox total.
func routineCompletion(sections []models.Section, questions []models.Question, answerMap map[string]any) models.RoutineCompletion {
	var routineID string
	for _, s := range sections {
		if s.Key == "routine" {
			routineID = s.ID
			break
		}
	}

	var rc models.RoutineCompletion
	if routineID == "" {
		return rc
	}

	for _, q := range questions {
		if q.SectionID != routineID || q.Type != models.TypeCheckbox {
			continue
		}
		rc.Total++
		if checked, ok := answerMap[q.ID].(bool); ok && checked {
			rc.Done++
		}
	}

	return rc
}
