// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package insights

import (
	"time"

	"github.com/danielhkuo/dayline/models"
)

// Snapshot is the complete set of datastore reads the report is built
// from. Answers and Tasks must be restricted to the window; WaterAnswers
// is the fixed 10-day read for the water question and may be nil when no
// water question exists.
type Snapshot struct {
	Person       models.Person
	Questions    []models.Question
	Answers      []models.Answer
	Tasks        []models.Task
	WaterAnswers []models.Answer
}

// WindowBounds is the window as it appears on the wire.
type WindowBounds struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// Report is the full insights payload.
type Report struct {
	Person     models.Person `json:"person"`
	Range      string        `json:"range"`
	Anchor     string        `json:"anchor"`
	Window     WindowBounds  `json:"window"`
	WaterTrend *WaterTrend   `json:"waterTrend"`
	Questions  []any         `json:"questions"`
	Tasks      TaskSummary   `json:"tasks"`
}

// BuildReport computes every derived view from the snapshot: per-question
// stats and trends, the water trend, and the task summary. Pure over its
// inputs — identical snapshots produce identical reports.
func BuildReport(r Range, anchor time.Time, w Window, snap Snapshot) Report {
	anchorStr := dateOnly(anchor).Format(DateLayout)

	byQuestion := make(map[string][]models.Answer, len(snap.Questions))
	for _, a := range snap.Answers {
		byQuestion[a.QuestionID] = append(byQuestion[a.QuestionID], a)
	}

	questions := make([]any, 0, len(snap.Questions))
	for _, q := range snap.Questions {
		answers := byQuestion[q.ID]
		stats := AggregateQuestion(q, answers, w, anchorStr)

		switch s := stats.(type) {
		case CheckboxStats:
			s.Trend = BuildQuestionTrend(q, answers, w)
			questions = append(questions, s)
		case NumberStats:
			s.Trend = BuildQuestionTrend(q, answers, w)
			questions = append(questions, s)
		case DistributionStats:
			s.Trend = BuildQuestionTrend(q, answers, w)
			questions = append(questions, s)
		default:
			questions = append(questions, stats)
		}
	}

	var water *WaterTrend
	if wq := FindWaterQuestion(snap.Questions); wq != nil {
		water = BuildWaterTrend(*wq, snap.WaterAnswers, anchor)
	}

	return Report{
		Person:     snap.Person,
		Range:      string(r),
		Anchor:     anchorStr,
		Window:     WindowBounds{Start: w.StartDate(), End: w.EndDate()},
		WaterTrend: water,
		Questions:  questions,
		Tasks:      SummarizeTasks(snap.Tasks),
	}
}
