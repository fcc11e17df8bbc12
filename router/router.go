// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"database/sql"
	"net/http"

	"github.com/danielhkuo/huddleboard/cliparse"
	"github.com/danielhkuo/huddleboard/handlers"
	"github.com/danielhkuo/huddleboard/middleware"
)

func NewRouter(db *sql.DB, cfg cliparse.Config) *http.ServeMux {
	mux := http.NewServeMux()

	// Initialize handlers
	meetingHandler := handlers.NewMeetingHandler(db, cfg)
	actionHandler := handlers.NewActionItemHandler(db, cfg)
	ideaHandler := handlers.NewIdeaHandler(db, cfg)
	dashboardHandler := handlers.NewDashboardHandler(db, cfg)
	settingsHandler := handlers.NewSettingsHandler(db, cfg)

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Meetings
	mux.HandleFunc("POST /meetings", middleware.WithLogging(meetingHandler.Create))
	mux.HandleFunc("GET /meetings", middleware.WithLogging(meetingHandler.List))
	mux.HandleFunc("DELETE /meetings/{id}", middleware.WithLogging(meetingHandler.Delete))

	// Action items
	mux.HandleFunc("POST /action-items", middleware.WithLogging(actionHandler.Create))
	mux.HandleFunc("GET /action-items", middleware.WithLogging(actionHandler.List))
	mux.HandleFunc("GET /action-items/urgent", middleware.WithLogging(actionHandler.Urgent))
	mux.HandleFunc("PATCH /action-items/{id}/status", middleware.WithLogging(actionHandler.UpdateStatus))
	mux.HandleFunc("DELETE /action-items/{id}", middleware.WithLogging(actionHandler.Delete))

	// Ideas and voting
	mux.HandleFunc("POST /ideas", middleware.WithLogging(ideaHandler.Create))
	mux.HandleFunc("GET /ideas", middleware.WithLogging(ideaHandler.List))
	mux.HandleFunc("DELETE /ideas/{id}", middleware.WithLogging(ideaHandler.Delete))
	mux.HandleFunc("POST /ideas/{id}/votes", middleware.WithLogging(ideaHandler.CastVote))
	mux.HandleFunc("POST /voters", middleware.WithLogging(ideaHandler.ClaimVoter))

	// Dashboard and settings
	mux.HandleFunc("GET /dashboard/summary", middleware.WithLogging(dashboardHandler.Summary))
	mux.HandleFunc("GET /settings", middleware.WithLogging(settingsHandler.Get))
	mux.HandleFunc("PUT /settings", middleware.WithLogging(settingsHandler.Put))

	// Root endpoint
	mux.HandleFunc("GET /", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("huddleboard API v1"))
	})

	return mux
}
