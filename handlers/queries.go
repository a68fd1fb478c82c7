// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"encoding/json"

	"github.com/danielhkuo/dayline/models"
)

// Snapshot read helpers shared by the daily and insights handlers. Each
// returns plain rows; the callers decide how to project or aggregate.

func getPerson(db *sql.DB, personID string) (models.Person, error) {
	var p models.Person
	err := db.QueryRow(`
		SELECT id, display_name FROM people WHERE id = $1
	`, personID).Scan(&p.ID, &p.DisplayName)
	return p, err
}

func getSections(db *sql.DB) ([]models.Section, error) {
	rows, err := db.Query(`
		SELECT id, key, title, sort_order
		FROM sections
		ORDER BY sort_order
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	sections := []models.Section{}
	for rows.Next() {
		var s models.Section
		if err := rows.Scan(&s.ID, &s.Key, &s.Title, &s.SortOrder); err != nil {
			return nil, err
		}
		sections = append(sections, s)
	}

	return sections, rows.Err()
}

func getActiveQuestions(db *sql.DB, personID string) ([]models.Question, error) {
	return queryQuestions(db, `
		SELECT id, person_id, section_id, prompt, type, options, sort_order, is_active
		FROM questions
		WHERE person_id = $1 AND is_active = TRUE
		ORDER BY sort_order
	`, personID)
}

func queryQuestions(db *sql.DB, query string, args ...any) ([]models.Question, error) {
	rows, err := db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	questions := []models.Question{}
	for rows.Next() {
		q, err := scanQuestion(rows)
		if err != nil {
			return nil, err
		}
		questions = append(questions, q)
	}

	return questions, rows.Err()
}

func scanQuestion(rows *sql.Rows) (models.Question, error) {
	var q models.Question
	var options []byte
	err := rows.Scan(&q.ID, &q.PersonID, &q.SectionID, &q.Prompt, &q.Type, &options, &q.SortOrder, &q.IsActive)
	if err != nil {
		return q, err
	}
	if len(options) == 0 {
		options = []byte("{}")
	}
	q.Options = json.RawMessage(options)
	return q, nil
}

// queryAnswers runs any answers SELECT that yields the five standard
// columns (question_id, answer_date, and the three scalar slots plus
// value_json).
func queryAnswers(db *sql.DB, personID, query string, args ...any) ([]models.Answer, error) {
	rows, err := db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	answers := []models.Answer{}
	for rows.Next() {
		var a models.Answer
		var vb sql.NullBool
		var vn sql.NullFloat64
		var vt sql.NullString
		var vj []byte
		if err := rows.Scan(&a.QuestionID, &a.AnswerDate, &vb, &vn, &vt, &vj); err != nil {
			return nil, err
		}
		a.PersonID = personID
		if vb.Valid {
			a.ValueBool = &vb.Bool
		}
		if vn.Valid {
			a.ValueNum = &vn.Float64
		}
		if vt.Valid {
			a.ValueText = &vt.String
		}
		if len(vj) > 0 {
			a.ValueJSON = json.RawMessage(vj)
		}
		answers = append(answers, a)
	}

	return answers, rows.Err()
}

func getAnswersForDate(db *sql.DB, personID, date string) ([]models.Answer, error) {
	return queryAnswers(db, personID, `
		SELECT question_id, answer_date, value_bool, value_num, value_text, value_json
		FROM answers
		WHERE person_id = $1 AND answer_date = $2
	`, personID, date)
}

func getAnswersInRange(db *sql.DB, personID, start, end string) ([]models.Answer, error) {
	return queryAnswers(db, personID, `
		SELECT question_id, answer_date, value_bool, value_num, value_text, value_json
		FROM answers
		WHERE person_id = $1 AND answer_date >= $2 AND answer_date <= $3
	`, personID, start, end)
}

func getQuestionAnswersInRange(db *sql.DB, personID, questionID, start, end string) ([]models.Answer, error) {
	return queryAnswers(db, personID, `
		SELECT question_id, answer_date, value_bool, value_num, value_text, value_json
		FROM answers
		WHERE person_id = $1 AND question_id = $2 AND answer_date >= $3 AND answer_date <= $4
	`, personID, questionID, start, end)
}

func queryTasks(db *sql.DB, query string, args ...any) ([]models.Task, error) {
	rows, err := db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	tasks := []models.Task{}
	for rows.Next() {
		var t models.Task
		if err := rows.Scan(&t.ID, &t.Title, &t.DueDate, &t.Status); err != nil {
			return nil, err
		}
		tasks = append(tasks, t)
	}

	return tasks, rows.Err()
}

func getTasksForDate(db *sql.DB, personID, date string) ([]models.Task, error) {
	return queryTasks(db, `
		SELECT id, title, due_date, status
		FROM tasks
		WHERE person_id = $1 AND due_date = $2
		ORDER BY created_at
	`, personID, date)
}

func getTasksInRange(db *sql.DB, personID, start, end string) ([]models.Task, error) {
	return queryTasks(db, `
		SELECT id, title, due_date, status
		FROM tasks
		WHERE person_id = $1 AND due_date >= $2 AND due_date <= $3
		ORDER BY due_date, created_at
	`, personID, start, end)
}
