// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package insights is the aggregation engine behind GET /insights.

It is a pure, synchronous computation over an in-memory snapshot: the
handler performs all datastore reads, then hands the rows to BuildReport.
Nothing in this package blocks, retries, or holds state between calls,
so identical snapshots always produce identical reports.

# Windows

	w := insights.Resolve(insights.RangeWeek, anchor)

Week windows are ISO weeks (Monday through Sunday) containing the
anchor; month and year windows are the anchor's calendar month and year.
Window.Days lists every date in the window as YYYY-MM-DD strings.

# Aggregation

	stats := insights.AggregateQuestion(q, answers, w, anchorStr)

One pure function per question type, dispatched in one place:

  - checkbox: completion rate plus the current streak, walking the
    window's days backward from the most recent and skipping days after
    the anchor
  - number: sum/avg/min/max over finite values
  - rating, select: label→count distributions with all declared buckets
    present, zero counts included
  - text_short, text_long: count plus the ten most recent excerpts
  - anything else: identity only, never an error

# Trends

BuildQuestionTrend layers per-day chart series over the window, and
BuildWaterTrend produces the fixed 10-day series for the first numeric
question mentioning "water" in its prompt. Series always cover every
window day contiguously; unanswered days are nil points.
*/
package insights
