// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package insights

import "encoding/json"

// Options is the typed view of a question's options bag. Fields are
// pointers where absence matters (rating defaults min=1, max=5).
type Options struct {
	Min     *int     `json:"min"`
	Max     *int     `json:"max"`
	Labels  []string `json:"labels"`
	Choices []string `json:"choices"`
}

// ParseOptions decodes the options bag, tolerating null, empty, and
// malformed input (all of which yield zero options).
func ParseOptions(raw json.RawMessage) Options {
	var opts Options
	if len(raw) == 0 {
		return opts
	}
	// best effort; an undecodable bag behaves like an empty one
	_ = json.Unmarshal(raw, &opts)
	return opts
}

// RatingBounds returns the inclusive bucket range for a rating
// question, applying the 1..5 defaults.
func (o Options) RatingBounds() (min, max int) {
	min, max = 1, 5
	if o.Min != nil {
		min = *o.Min
	}
	if o.Max != nil {
		max = *o.Max
	}
	return min, max
}
