// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the Dayline API server.

Dayline is a personal habit-tracking and journaling service: each person
answers a configurable set of daily questions (checkboxes, numbers,
ratings, selections, free text), logs dated tasks, and reads aggregated
insights (streaks, completion rates, distributions, trends) over week,
month, or year windows.

# Starting the Server

The server requires a database location via environment variables or
CLI flags:

	DATABASE_URL=dayline.db go run main.go

Or with flags:

	go run main.go -p 3324 -d dayline.db -t sqlite

A .env file in the working directory is loaded automatically.

# Configuration

  - DATABASE_URL (-d): database file path or connection string (required)
  - DATABASE_TYPE (-t): sqlite (default) or postgres
  - PORT (-p): server port (default: 3324)

# Architecture

The server uses a handler-based architecture with dependency injection:

  - handlers: HTTP request handlers (people, session, daily, answers,
    questions, tasks, insights)
  - insights: the pure windowed-aggregation engine
  - router: route definitions using Go 1.22+ routing
  - middleware: CORS, logging, JSON helpers
  - models: domain and request/response types
  - auth: active-person session cookie
  - db: connection, schema, seeding
  - cliparse: configuration parsing

See package documentation for each component.
*/
package main
