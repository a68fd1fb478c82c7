// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the Dayline API.

# Handler Types

Each handler is a struct with database and config dependencies:

  - PeopleHandler: person listing and creation
  - SessionHandler: active-person cookie selection
  - DailyHandler: the per-day answer/task view
  - AnswersHandler: typed answer upserts
  - QuestionsHandler: question CRUD and reordering
  - TasksHandler: task creation and status toggling
  - InsightsHandler: windowed aggregation reports

Handlers are created via constructor functions that accept *sql.DB and Config:

	dailyHandler := handlers.NewDailyHandler(db, cfg)

# Person Scoping

Every route except /health, /people, and /session requires the
active_person_id cookie; requests without it get 401. All reads and
writes are scoped to that person.

# Daily Flow

	POST /session            → select a person
	GET  /daily?date=        → questions plus projected answers for a day
	POST /answers/upsert     → write one answer slot
	POST /tasks              → add a task
	POST /tasks/{id}/toggle  → mark done/todo

# Insights

	GET /insights?range=week&anchor=2024-03-06

The handler resolves the window, performs the snapshot reads (questions,
answers, tasks, plus the fixed 10-day water read), and delegates every
computation to the insights package. A failed read aborts the request
before any aggregation happens.
*/
package handlers
