// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

import "encoding/json"

// Question type constants
const (
	TypeCheckbox  = "checkbox"
	TypeNumber    = "number"
	TypeRating    = "rating"
	TypeSelect    = "select"
	TypeTextShort = "text_short"
	TypeTextLong  = "text_long"
)

// Task status constants
const (
	TaskStatusTodo = "todo"
	TaskStatusDone = "done"
)

// Request types

type CreatePersonRequest struct {
	DisplayName string `json:"display_name"`
}

type SetSessionRequest struct {
	PersonID string `json:"person_id"`
}

// Value is untyped on the wire; the handler routes it into the slot
// matching the question's declared type.
type UpsertAnswerRequest struct {
	Date       string          `json:"date"`
	QuestionID string          `json:"question_id"`
	Value      json.RawMessage `json:"value"`
}

type CreateQuestionRequest struct {
	SectionID string          `json:"section_id"`
	Prompt    string          `json:"prompt"`
	Type      string          `json:"type"`
	Options   json.RawMessage `json:"options"`
	SortOrder *int            `json:"sort_order"`
}

type UpdateQuestionRequest struct {
	Prompt    *string         `json:"prompt"`
	Type      *string         `json:"type"`
	Options   json.RawMessage `json:"options"`
	IsActive  *bool           `json:"is_active"`
	SortOrder *int            `json:"sort_order"`
	SectionID *string         `json:"section_id"`
}

type ReorderQuestionRequest struct {
	QuestionID string `json:"question_id"`
	Direction  string `json:"direction"` // "up" or "down"
}

type CreateTaskRequest struct {
	Title   string `json:"title"`
	DueDate string `json:"due_date"`
}

type ToggleTaskRequest struct {
	Status string `json:"status"`
}

// Response types

type OKResponse struct {
	OK bool `json:"ok"`
}

type PeopleResponse struct {
	People []Person `json:"people"`
}

type PersonResponse struct {
	Person Person `json:"person"`
}

type QuestionsResponse struct {
	Questions []Question `json:"questions"`
}

type QuestionResponse struct {
	Question Question `json:"question"`
}

type TaskResponse struct {
	Task Task `json:"task"`
}

type RoutineCompletion struct {
	Done  int `json:"done"`
	Total int `json:"total"`
}

type DailyResponse struct {
	Person            Person            `json:"person"`
	Sections          []Section         `json:"sections"`
	Questions         []Question        `json:"questions"`
	Answers           map[string]any    `json:"answers"`
	TasksToday        []Task            `json:"tasks_today"`
	TasksTomorrow     []Task            `json:"tasks_tomorrow"`
	TomorrowDate      string            `json:"tomorrow_date"`
	RoutineCompletion RoutineCompletion `json:"routine_completion"`
}

// Domain types

type Person struct {
	ID          string `json:"id"`
	DisplayName string `json:"display_name"`
}

type Section struct {
	ID        string `json:"id"`
	Key       string `json:"key"`
	Title     string `json:"title"`
	SortOrder int    `json:"sort_order"`
}

// Question options are an opaque JSON bag; semantics depend on Type
// (rating reads {min,max,labels}, select reads {choices}).
type Question struct {
	ID        string          `json:"id"`
	PersonID  string          `json:"person_id"`
	SectionID string          `json:"section_id"`
	Prompt    string          `json:"prompt"`
	Type      string          `json:"type"`
	Options   json.RawMessage `json:"options"`
	SortOrder int             `json:"sort_order"`
	IsActive  bool            `json:"is_active"`
}

// Answer ties (person, question, date) to one stored value. At most one
// slot is populated, chosen by the owning question's type. Unanswered
// days have no row.
type Answer struct {
	PersonID   string          `json:"person_id"`
	QuestionID string          `json:"question_id"`
	AnswerDate string          `json:"answer_date"`
	ValueBool  *bool           `json:"value_bool,omitempty"`
	ValueNum   *float64        `json:"value_num,omitempty"`
	ValueText  *string         `json:"value_text,omitempty"`
	ValueJSON  json.RawMessage `json:"value_json,omitempty"`
}

type Task struct {
	ID      string `json:"id"`
	Title   string `json:"title"`
	DueDate string `json:"due_date"`
	Status  string `json:"status"`
}

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
