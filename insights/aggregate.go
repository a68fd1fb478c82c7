// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package insights

import (
	"math"
	"sort"
	"strconv"

	"github.com/danielhkuo/dayline/models"
)

// QuestionInfo identifies a question in a stats object.
type QuestionInfo struct {
	ID     string `json:"id"`
	Prompt string `json:"prompt"`
	Type   string `json:"type"`
}

// CheckboxStats reports completion over the window plus the current
// streak counted backward from the anchor.
type CheckboxStats struct {
	QuestionInfo
	CompletionRate int    `json:"completion_rate"`
	CurrentStreak  int    `json:"current_streak"`
	Trend          *Trend `json:"trend,omitempty"`
}

// NumberSummary holds the numeric aggregates; sum and avg are rounded
// to two decimal places.
type NumberSummary struct {
	Sum float64 `json:"sum"`
	Avg float64 `json:"avg"`
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

type NumberStats struct {
	QuestionInfo
	Stats NumberSummary `json:"stats"`
	Trend *Trend        `json:"trend,omitempty"`
}

// Bucket is one label's tally in a distribution.
type Bucket struct {
	Label string `json:"label"`
	Count int    `json:"count"`
}

// DistributionStats is the label→count breakdown for rating and select
// questions. Declared buckets always appear, zero-count included;
// observed labels outside the declared set are appended after them.
type DistributionStats struct {
	QuestionInfo
	Distribution []Bucket `json:"distribution"`
	Trend        *Trend   `json:"trend,omitempty"`
}

// TextEntry is one dated journal excerpt.
type TextEntry struct {
	Date  string `json:"date"`
	Value string `json:"value"`
}

type TextStats struct {
	QuestionInfo
	Count  int         `json:"count"`
	Latest []TextEntry `json:"latest"`
}

// AggregateQuestion computes type-specific statistics for one question
// over its answers within the window. The answers slice must already be
// restricted to the window; anchor is the YYYY-MM-DD reference date for
// streak counting. Unrecognized question types yield the identity-only
// fallback, never an error.
func AggregateQuestion(q models.Question, answers []models.Answer, w Window, anchor string) any {
	info := QuestionInfo{ID: q.ID, Prompt: q.Prompt, Type: q.Type}

	switch q.Type {
	case models.TypeCheckbox:
		rate, streak := checkboxStats(answers, w.Days, anchor)
		return CheckboxStats{QuestionInfo: info, CompletionRate: rate, CurrentStreak: streak}
	case models.TypeNumber:
		return NumberStats{QuestionInfo: info, Stats: numberSummary(answers)}
	case models.TypeRating:
		return DistributionStats{QuestionInfo: info, Distribution: ratingDistribution(q, answers)}
	case models.TypeSelect:
		return DistributionStats{QuestionInfo: info, Distribution: selectDistribution(q, answers)}
	case models.TypeTextShort, models.TypeTextLong:
		count, latest := textStats(answers)
		return TextStats{QuestionInfo: info, Count: count, Latest: latest}
	default:
		return info
	}
}

// checkboxStats computes the completion rate over the whole window and
// the current streak. The streak walks the window's day list from the
// most recent day backward: days strictly after the anchor are skipped
// (a future day inside the window never breaks a streak), and the first
// day at or before the anchor without a true answer stops the count.
// The walk deliberately starts at the window's last day rather than the
// anchor's position, matching the behavior this system has always had.
func checkboxStats(answers []models.Answer, days []string, anchor string) (rate, streak int) {
	trueCount := 0
	byDate := make(map[string]bool, len(answers))
	for _, a := range answers {
		checked := a.ValueBool != nil && *a.ValueBool
		byDate[a.AnswerDate] = checked
		if checked {
			trueCount++
		}
	}

	if len(days) > 0 {
		rate = roundPct(trueCount, len(days))
	}

	for i := len(days) - 1; i >= 0; i-- {
		if days[i] > anchor {
			continue
		}
		if byDate[days[i]] {
			streak++
		} else {
			break
		}
	}

	return rate, streak
}

// numberSummary aggregates finite numeric answers; NaN and infinities
// count as absent. All four fields are zero when nothing qualifies.
func numberSummary(answers []models.Answer) NumberSummary {
	var nums []float64
	for _, a := range answers {
		if v, ok := finiteValue(a); ok {
			nums = append(nums, v)
		}
	}

	if len(nums) == 0 {
		return NumberSummary{}
	}

	sum := 0.0
	min, max := nums[0], nums[0]
	for _, v := range nums {
		sum += v
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}

	return NumberSummary{
		Sum: round2(sum),
		Avg: round2(sum / float64(len(nums))),
		Min: min,
		Max: max,
	}
}

// ratingDistribution builds one bucket per integer from options.min
// (default 1) to options.max (default 5), then tallies each finite
// numeric answer under its computed label. Out-of-range values tally
// under their stringified label, appended after the declared buckets;
// they never widen the declared range and are never dropped.
func ratingDistribution(q models.Question, answers []models.Answer) []Bucket {
	opts := ParseOptions(q.Options)
	min, max := opts.RatingBounds()

	d := newDistribution()
	for i := min; i <= max; i++ {
		label := strconv.Itoa(i)
		if idx := i - min; idx >= 0 && idx < len(opts.Labels) {
			label = opts.Labels[idx]
		}
		d.declare(label)
	}

	for _, a := range answers {
		v, ok := finiteValue(a)
		if !ok {
			continue
		}
		d.tally(ratingLabel(v, min, opts.Labels))
	}

	return d.buckets
}

// ratingLabel maps a numeric answer to its bucket label: the declared
// label for in-range integers, otherwise the stringified number.
func ratingLabel(v float64, min int, labels []string) string {
	if v == math.Trunc(v) {
		if idx := int(v) - min; idx >= 0 && idx < len(labels) {
			return labels[idx]
		}
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// selectDistribution initializes one bucket per declared choice and
// tallies non-empty text answers. Answers naming an unknown choice get
// their own trailing bucket rather than being discarded.
func selectDistribution(q models.Question, answers []models.Answer) []Bucket {
	opts := ParseOptions(q.Options)

	d := newDistribution()
	for _, choice := range opts.Choices {
		d.declare(choice)
	}

	for _, a := range answers {
		if a.ValueText == nil || *a.ValueText == "" {
			continue
		}
		d.tally(*a.ValueText)
	}

	return d.buckets
}

// textStats counts non-empty text answers and collects the ten most
// recent as dated excerpts, newest first.
func textStats(answers []models.Answer) (int, []TextEntry) {
	entries := []TextEntry{}
	for _, a := range answers {
		if a.ValueText == nil || *a.ValueText == "" {
			continue
		}
		entries = append(entries, TextEntry{Date: a.AnswerDate, Value: *a.ValueText})
	}

	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Date > entries[j].Date
	})

	count := len(entries)
	if len(entries) > 10 {
		entries = entries[:10]
	}

	return count, entries
}

// distribution keeps buckets in declaration order with first-seen
// appending for labels outside the declared set.
type distribution struct {
	buckets []Bucket
	index   map[string]int
}

func newDistribution() *distribution {
	return &distribution{buckets: []Bucket{}, index: make(map[string]int)}
}

func (d *distribution) declare(label string) {
	if _, ok := d.index[label]; ok {
		return
	}
	d.index[label] = len(d.buckets)
	d.buckets = append(d.buckets, Bucket{Label: label})
}

func (d *distribution) tally(label string) {
	i, ok := d.index[label]
	if !ok {
		i = len(d.buckets)
		d.index[label] = i
		d.buckets = append(d.buckets, Bucket{Label: label})
	}
	d.buckets[i].Count++
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func roundPct(part, whole int) int {
	return int(math.Round(float64(part) / float64(whole) * 100))
}
