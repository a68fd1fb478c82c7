// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package insights

import (
	"strings"
	"time"

	"github.com/danielhkuo/dayline/models"
)

// waterTrendDays is the fixed rolling window for the water chart: the
// anchor plus the nine preceding days, independent of the selected range.
const waterTrendDays = 10

// TrendPoint is one day in a value series. Value is nil for days with
// no answer, so charts always receive a contiguous day axis.
type TrendPoint struct {
	Date  string   `json:"date"`
	Value *float64 `json:"value"`
}

// CountPoint is one day in a per-option count series.
type CountPoint struct {
	Date  string `json:"date"`
	Count int    `json:"count"`
}

// OptionSeries is the per-day tally for one label of a rating or select
// question.
type OptionSeries struct {
	Label  string       `json:"label"`
	Points []CountPoint `json:"points"`
}

// Trend is a per-question time series over the selected window: Points
// for checkbox (1/0/nil) and number questions, Series for rating and
// select questions.
type Trend struct {
	Points []TrendPoint   `json:"points,omitempty"`
	Series []OptionSeries `json:"series,omitempty"`
}

// WaterTrend is the fixed 10-day series for the distinguished water
// question.
type WaterTrend struct {
	QuestionID string       `json:"question_id"`
	Prompt     string       `json:"prompt"`
	Points     []TrendPoint `json:"points"`
}

// FindWaterQuestion picks the distinguished numeric question for the
// water chart: the first active number question whose prompt contains
// "water", case-insensitively. Returns nil when none qualifies.
func FindWaterQuestion(questions []models.Question) *models.Question {
	for i := range questions {
		q := &questions[i]
		if q.Type == models.TypeNumber && strings.Contains(strings.ToLower(q.Prompt), "water") {
			return q
		}
	}
	return nil
}

// BuildWaterTrend produces the rolling 10-day series ending at the
// anchor date. Answers may cover any date range; days without a finite
// numeric answer chart as nil.
func BuildWaterTrend(q models.Question, answers []models.Answer, anchor time.Time) *WaterTrend {
	start := dateOnly(anchor).AddDate(0, 0, -(waterTrendDays - 1))
	days := daysBetween(start, dateOnly(anchor))

	byDate := make(map[string]float64, len(answers))
	for _, a := range answers {
		if v, ok := finiteValue(a); ok {
			byDate[a.AnswerDate] = v
		}
	}

	points := make([]TrendPoint, 0, len(days))
	for _, day := range days {
		p := TrendPoint{Date: day}
		if v, ok := byDate[day]; ok {
			value := v
			p.Value = &value
		}
		points = append(points, p)
	}

	return &WaterTrend{QuestionID: q.ID, Prompt: q.Prompt, Points: points}
}

// BuildQuestionTrend produces the per-question chart series over the
// selected window. Checkbox days map to 1/0 (nil when unanswered),
// number days to the answer value (nil when absent or non-finite), and
// rating/select questions get one count series per label. Text and
// unrecognized types have no trend.
func BuildQuestionTrend(q models.Question, answers []models.Answer, w Window) *Trend {
	switch q.Type {
	case models.TypeCheckbox:
		return &Trend{Points: checkboxPoints(answers, w.Days)}
	case models.TypeNumber:
		return &Trend{Points: numberPoints(answers, w.Days)}
	case models.TypeRating:
		opts := ParseOptions(q.Options)
		min, max := opts.RatingBounds()
		labels := make([]string, 0, max-min+1)
		for i := min; i <= max; i++ {
			label := ratingLabel(float64(i), min, opts.Labels)
			labels = append(labels, label)
		}
		return &Trend{Series: optionSeries(labels, w.Days, ratingLabelsByDate(answers, min, opts.Labels))}
	case models.TypeSelect:
		opts := ParseOptions(q.Options)
		return &Trend{Series: optionSeries(opts.Choices, w.Days, selectLabelsByDate(answers))}
	default:
		return nil
	}
}

func checkboxPoints(answers []models.Answer, days []string) []TrendPoint {
	byDate := make(map[string]float64, len(answers))
	for _, a := range answers {
		v := 0.0
		if a.ValueBool != nil && *a.ValueBool {
			v = 1.0
		}
		byDate[a.AnswerDate] = v
	}
	return valuePoints(days, byDate)
}

func numberPoints(answers []models.Answer, days []string) []TrendPoint {
	byDate := make(map[string]float64, len(answers))
	for _, a := range answers {
		if v, ok := finiteValue(a); ok {
			byDate[a.AnswerDate] = v
		}
	}
	return valuePoints(days, byDate)
}

func valuePoints(days []string, byDate map[string]float64) []TrendPoint {
	points := make([]TrendPoint, 0, len(days))
	for _, day := range days {
		p := TrendPoint{Date: day}
		if v, ok := byDate[day]; ok {
			value := v
			p.Value = &value
		}
		points = append(points, p)
	}
	return points
}

// ratingLabelsByDate maps each answered day to its computed label.
func ratingLabelsByDate(answers []models.Answer, min int, labels []string) map[string]string {
	byDate := make(map[string]string, len(answers))
	for _, a := range answers {
		if v, ok := finiteValue(a); ok {
			byDate[a.AnswerDate] = ratingLabel(v, min, labels)
		}
	}
	return byDate
}

func selectLabelsByDate(answers []models.Answer) map[string]string {
	byDate := make(map[string]string, len(answers))
	for _, a := range answers {
		if a.ValueText != nil && *a.ValueText != "" {
			byDate[a.AnswerDate] = *a.ValueText
		}
	}
	return byDate
}

// optionSeries builds one contiguous count series per label. Declared
// labels come first; labels observed only in answers are appended in
// day order.
func optionSeries(declared []string, days []string, labelByDate map[string]string) []OptionSeries {
	order := []string{}
	seen := make(map[string]bool)
	for _, label := range declared {
		if !seen[label] {
			seen[label] = true
			order = append(order, label)
		}
	}
	for _, day := range days {
		if label, ok := labelByDate[day]; ok && !seen[label] {
			seen[label] = true
			order = append(order, label)
		}
	}

	series := make([]OptionSeries, 0, len(order))
	for _, label := range order {
		points := make([]CountPoint, 0, len(days))
		for _, day := range days {
			count := 0
			if l, ok := labelByDate[day]; ok && l == label {
				count = 1
			}
			points = append(points, CountPoint{Date: day, Count: count})
		}
		series = append(series, OptionSeries{Label: label, Points: points})
	}

	return series
}
