// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package insights

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/danielhkuo/dayline/models"
)

func testSnapshot(t *testing.T) Snapshot {
	t.Helper()

	checkbox := question("q1", models.TypeCheckbox, "{}")
	checkbox.Prompt = "Did you exercise?"
	water := question("q2", models.TypeNumber, "{}")
	water.Prompt = "Glasses of water"

	return Snapshot{
		Person:    models.Person{ID: "p1", DisplayName: "Avery"},
		Questions: []models.Question{checkbox, water},
		Answers: []models.Answer{
			answer("2024-03-05", boolPtr(true), nil, nil),
			answer("2024-03-06", boolPtr(true), nil, nil),
			{PersonID: "p1", QuestionID: "q2", AnswerDate: "2024-03-06", ValueNum: floatPtr(8)},
		},
		Tasks: []models.Task{
			{ID: "t1", Title: "Pay rent", DueDate: "2024-03-05", Status: models.TaskStatusDone},
			{ID: "t2", Title: "Call dentist", DueDate: "2024-03-06", Status: models.TaskStatusTodo},
		},
		WaterAnswers: []models.Answer{
			{PersonID: "p1", QuestionID: "q2", AnswerDate: "2024-03-06", ValueNum: floatPtr(8)},
		},
	}
}

func TestBuildReport(t *testing.T) {
	anchor := mustDate(t, "2024-03-06")
	w := Resolve(RangeWeek, anchor)

	report := BuildReport(RangeWeek, anchor, w, testSnapshot(t))

	if report.Person.ID != "p1" || report.Range != "week" || report.Anchor != "2024-03-06" {
		t.Errorf("Unexpected report header: %+v", report)
	}
	if report.Window.Start != "2024-03-04" || report.Window.End != "2024-03-10" {
		t.Errorf("Expected window 2024-03-04..2024-03-10, got %+v", report.Window)
	}

	if len(report.Questions) != 2 {
		t.Fatalf("Expected 2 question entries, got %d", len(report.Questions))
	}

	cb, ok := report.Questions[0].(CheckboxStats)
	if !ok {
		t.Fatalf("Expected CheckboxStats first, got %T", report.Questions[0])
	}
	if cb.CurrentStreak != 2 || cb.CompletionRate != 29 {
		t.Errorf("Expected streak 2 / rate 29, got %+v", cb)
	}
	if cb.Trend == nil || len(cb.Trend.Points) != 7 {
		t.Errorf("Expected 7-point trend attached, got %+v", cb.Trend)
	}

	num, ok := report.Questions[1].(NumberStats)
	if !ok {
		t.Fatalf("Expected NumberStats second, got %T", report.Questions[1])
	}
	if num.Stats.Sum != 8 || num.Trend == nil {
		t.Errorf("Expected sum 8 with trend, got %+v", num)
	}

	if report.WaterTrend == nil {
		t.Fatal("Expected water trend for the water question")
	}
	if report.WaterTrend.QuestionID != "q2" || len(report.WaterTrend.Points) != 10 {
		t.Errorf("Unexpected water trend: %+v", report.WaterTrend)
	}

	expected := TaskSummary{Completed: 1, Total: 2, Rate: 50}
	if report.Tasks != expected {
		t.Errorf("Expected task summary %+v, got %+v", expected, report.Tasks)
	}
}

func TestBuildReportNoWaterQuestion(t *testing.T) {
	anchor := mustDate(t, "2024-03-06")
	w := Resolve(RangeWeek, anchor)

	snap := testSnapshot(t)
	snap.Questions = snap.Questions[:1] // checkbox only
	snap.WaterAnswers = nil

	report := BuildReport(RangeWeek, anchor, w, snap)
	if report.WaterTrend != nil {
		t.Errorf("Expected no water trend, got %+v", report.WaterTrend)
	}
}

func TestBuildReportIsDeterministic(t *testing.T) {
	anchor := mustDate(t, "2024-03-06")
	w := Resolve(RangeWeek, anchor)
	snap := testSnapshot(t)

	first, err := json.Marshal(BuildReport(RangeWeek, anchor, w, snap))
	if err != nil {
		t.Fatalf("Failed to marshal report: %v", err)
	}
	second, err := json.Marshal(BuildReport(RangeWeek, anchor, w, snap))
	if err != nil {
		t.Fatalf("Failed to marshal report: %v", err)
	}

	if !bytes.Equal(first, second) {
		t.Error("Expected identical snapshots to produce byte-identical reports")
	}
}

func TestBuildReportEmptySnapshot(t *testing.T) {
	anchor := mustDate(t, "2024-03-06")
	w := Resolve(RangeWeek, anchor)

	report := BuildReport(RangeWeek, anchor, w, Snapshot{
		Person: models.Person{ID: "p1", DisplayName: "Avery"},
	})

	if len(report.Questions) != 0 {
		t.Errorf("Expected empty question list, got %d", len(report.Questions))
	}
	if report.Tasks != (TaskSummary{}) {
		t.Errorf("Expected zero task summary, got %+v", report.Tasks)
	}
	if report.WaterTrend != nil {
		t.Errorf("Expected nil water trend, got %+v", report.WaterTrend)
	}

	// the question list must serialize as [], not null
	raw, err := json.Marshal(report)
	if err != nil {
		t.Fatalf("Failed to marshal report: %v", err)
	}
	if !bytes.Contains(raw, []byte(`"questions":[]`)) {
		t.Errorf("Expected empty array for questions, got %s", raw)
	}
}
