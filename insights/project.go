// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package insights

import (
	"math"

	"github.com/danielhkuo/dayline/models"
)

// ProjectValue maps a raw answer row to one logical value based on the
// owning question's declared type. Pure and total: every type yields a
// value, with per-type defaults for empty slots.
//
//   - checkbox: bool, false when the slot is null
//   - number/rating: float64, nil when null or non-finite
//   - select/text_short/text_long: string, "" when null
//   - anything else: the raw JSON slot, nil when null
func ProjectValue(questionType string, a models.Answer) any {
	switch questionType {
	case models.TypeCheckbox:
		if a.ValueBool != nil {
			return *a.ValueBool
		}
		return false
	case models.TypeNumber, models.TypeRating:
		if v, ok := finiteValue(a); ok {
			return v
		}
		return nil
	case models.TypeSelect, models.TypeTextShort, models.TypeTextLong:
		if a.ValueText != nil {
			return *a.ValueText
		}
		return ""
	default:
		if len(a.ValueJSON) > 0 {
			return a.ValueJSON
		}
		return nil
	}
}

// finiteValue extracts the numeric slot, treating NaN and infinities as
// absent.
func finiteValue(a models.Answer) (float64, bool) {
	if a.ValueNum == nil {
		return 0, false
	}
	v := *a.ValueNum
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}
