// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Package testutil provides shared helpers for tests: an in-memory
// sqlite database with the full schema, seed builders for people,
// questions, answers, and tasks, and small HTTP assertion utilities.
package testutil
