// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"database/sql"
	"net/http"

	"github.com/danielhkuo/dayline/cliparse"
	"github.com/danielhkuo/dayline/handlers"
	"github.com/danielhkuo/dayline/middleware"
)

func NewRouter(db *sql.DB, cfg cliparse.Config) *http.ServeMux {
	mux := http.NewServeMux()

	// Initialize handlers
	peopleHandler := handlers.NewPeopleHandler(db, cfg)
	sessionHandler := handlers.NewSessionHandler(db, cfg)
	dailyHandler := handlers.NewDailyHandler(db, cfg)
	answersHandler := handlers.NewAnswersHandler(db, cfg)
	questionsHandler := handlers.NewQuestionsHandler(db, cfg)
	tasksHandler := handlers.NewTasksHandler(db, cfg)
	insightsHandler := handlers.NewInsightsHandler(db, cfg)

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// People and session selection
	mux.HandleFunc("GET /people", middleware.WithLogging(peopleHandler.List))
	mux.HandleFunc("POST /people", middleware.WithLogging(peopleHandler.Create))
	mux.HandleFunc("POST /session", middleware.WithLogging(sessionHandler.Set))
	mux.HandleFunc("POST /session/clear", middleware.WithLogging(sessionHandler.Clear))

	// Daily view and answers
	mux.HandleFunc("GET /daily", middleware.WithLogging(dailyHandler.Get))
	mux.HandleFunc("POST /answers/upsert", middleware.WithLogging(answersHandler.Upsert))

	// Question management
	mux.HandleFunc("GET /questions", middleware.WithLogging(questionsHandler.List))
	mux.HandleFunc("POST /questions", middleware.WithLogging(questionsHandler.Create))
	mux.HandleFunc("POST /questions/reorder", middleware.WithLogging(questionsHandler.Reorder))
	mux.HandleFunc("PATCH /questions/{id}", middleware.WithLogging(questionsHandler.Update))
	mux.HandleFunc("DELETE /questions/{id}", middleware.WithLogging(questionsHandler.Delete))

	// Tasks
	mux.HandleFunc("POST /tasks", middleware.WithLogging(tasksHandler.Create))
	mux.HandleFunc("POST /tasks/{id}/toggle", middleware.WithLogging(tasksHandler.Toggle))

	// Insights
	mux.HandleFunc("GET /insights", middleware.WithLogging(insightsHandler.Get))

	// Root endpoint
	mux.HandleFunc("GET /", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("dayline API v1"))
	})

	return mux
}
