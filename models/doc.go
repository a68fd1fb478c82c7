// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines the domain, request, and response types shared by
the Dayline API.

# Domain Types

The core entities mirror the database tables:

  - Person: a tracked user, selected via the session cookie
  - Section: a grouping bucket for questions (routine, wellbeing, ...)
  - Question: a per-person daily prompt with one of six declared types
  - Answer: one stored value per (person, question, date)
  - Task: a dated to-do with todo/done status

# Answer Slots

An Answer carries four optional value slots (bool, number, text, JSON).
Exactly one is populated, determined by the owning question's type.
Checkbox questions write value_bool, number and rating write value_num,
select and the two text types write value_text, anything else writes
value_json.
*/
package models
