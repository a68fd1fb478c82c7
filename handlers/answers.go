// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/danielhkuo/dayline/auth"
	"github.com/danielhkuo/dayline/cliparse"
	"github.com/danielhkuo/dayline/insights"
	"github.com/danielhkuo/dayline/middleware"
	"github.com/danielhkuo/dayline/models"
)

var errInvalidValue = errors.New("value does not fit the question type")

type AnswersHandler struct {
	db  *sql.DB
	cfg cliparse.Config
}

func NewAnswersHandler(db *sql.DB, cfg cliparse.Config) *AnswersHandler {
	return &AnswersHandler{db: db, cfg: cfg}
}

// Upsert handles POST /answers/upsert
// The untyped value is routed into the slot matching the question's
// declared type; the other slots are cleared, so an answer row never
// holds more than one value.
func (h *AnswersHandler) Upsert(w http.ResponseWriter, r *http.Request) {
	personID, ok := auth.ActivePersonID(r)
	if !ok {
		middleware.ErrorResponse(w, http.StatusUnauthorized, "No active person")
		return
	}

	var req models.UpsertAnswerRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}

	if req.Date == "" || req.QuestionID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Missing fields")
		return
	}
	if _, err := insights.ParseDate(req.Date); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid date")
		return
	}

	var questionType string
	err := h.db.QueryRow(`
		SELECT type FROM questions WHERE id = $1 AND person_id = $2
	`, req.QuestionID, personID).Scan(&questionType)

	if err == sql.ErrNoRows {
		middleware.ErrorResponse(w, http.StatusNotFound, "Question not found")
		return
	}
	if err != nil {
		slog.Error("failed to query question", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	valueBool, valueNum, valueText, valueJSON, err := answerSlots(questionType, req.Value)
	if err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	_, err = h.db.Exec(`
		INSERT INTO answers (person_id, question_id, answer_date, value_bool, value_num, value_text, value_json, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (person_id, question_id, answer_date)
		DO UPDATE SET value_bool = excluded.value_bool,
		              value_num = excluded.value_num,
		              value_text = excluded.value_text,
		              value_json = excluded.value_json,
		              updated_at = excluded.updated_at
	`, personID, req.QuestionID, req.Date, valueBool, valueNum, valueText, valueJSON, time.Now().UTC())
	if err != nil {
		slog.Error("failed to upsert answer", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.OKResponse{OK: true})
}

// answerSlots maps the raw JSON value to the one storage slot matching
// the question type. All returns are nullable so unset slots store NULL.
func answerSlots(questionType string, raw json.RawMessage) (*bool, *float64, *string, *string, error) {
	var value any
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &value); err != nil {
			return nil, nil, nil, nil, errInvalidValue
		}
	}

	switch questionType {
	case models.TypeCheckbox:
		b := truthy(value)
		return &b, nil, nil, nil, nil

	case models.TypeNumber, models.TypeRating:
		switch v := value.(type) {
		case nil:
			return nil, nil, nil, nil, nil
		case float64:
			return nil, &v, nil, nil, nil
		case string:
			if v == "" {
				return nil, nil, nil, nil, nil
			}
			n, err := strconv.ParseFloat(v, 64)
			if err != nil {
				return nil, nil, nil, nil, errInvalidValue
			}
			return nil, &n, nil, nil, nil
		default:
			return nil, nil, nil, nil, errInvalidValue
		}

	case models.TypeSelect, models.TypeTextShort, models.TypeTextLong:
		s := stringify(value, raw)
		return nil, nil, &s, nil, nil

	default:
		if value == nil {
			return nil, nil, nil, nil, nil
		}
		j := string(raw)
		return nil, nil, nil, &j, nil
	}
}

// truthy mirrors loose boolean coercion for checkbox writes: false for
// null, false, zero, and empty string.
func truthy(value any) bool {
	switch v := value.(type) {
	case nil:
		return false
	case bool:
		return v
	case float64:
		return v != 0
	case string:
		return v != ""
	default:
		return true
	}
}

// stringify renders the value for a text slot; nulls become "".
func stringify(value any, raw json.RawMessage) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(v)
	default:
		return string(raw)
	}
}
