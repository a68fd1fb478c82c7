// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package insights

import "github.com/danielhkuo/dayline/models"

// TaskSummary reports completion over the tasks due within the window.
type TaskSummary struct {
	Completed int `json:"completed"`
	Total     int `json:"total"`
	Rate      int `json:"rate"`
}

// SummarizeTasks counts done tasks against the total; rate is a rounded
// percentage, zero when there are no tasks.
func SummarizeTasks(tasks []models.Task) TaskSummary {
	completed := 0
	for _, t := range tasks {
		if t.Status == models.TaskStatusDone {
			completed++
		}
	}

	s := TaskSummary{Completed: completed, Total: len(tasks)}
	if s.Total > 0 {
		s.Rate = roundPct(completed, s.Total)
	}
	return s
}
