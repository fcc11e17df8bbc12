// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"log/slog"
	"net/http"
	"time"

	"github.com/danielhkuo/huddleboard/cliparse"
	"github.com/danielhkuo/huddleboard/middleware"
	"github.com/danielhkuo/huddleboard/models"
)

type SettingsHandler struct {
	db  *sql.DB
	cfg cliparse.Config
}

func NewSettingsHandler(db *sql.DB, cfg cliparse.Config) *SettingsHandler {
	return &SettingsHandler{db: db, cfg: cfg}
}

// Get handles GET /settings
// Returns defaults when the team has never saved settings.
func (h *SettingsHandler) Get(w http.ResponseWriter, r *http.Request) {
	var settings models.TeamSettings
	err := h.db.QueryRow(`
		SELECT team_name, dark_mode, updated_at FROM team_settings WHERE id = 1
	`).Scan(&settings.TeamName, &settings.DarkMode, &settings.UpdatedAt)

	if err == sql.ErrNoRows {
		middleware.JSONResponse(w, http.StatusOK, models.TeamSettings{})
		return
	}
	if err != nil {
		slog.Error("failed to query settings", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, settings)
}

// Put handles PUT /settings
func (h *SettingsHandler) Put(w http.ResponseWriter, r *http.Request) {
	var req models.UpdateSettingsRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	updatedAt := time.Now()

	// Single-row upsert; both PostgreSQL and SQLite support excluded
	_, err := h.db.Exec(`
		INSERT INTO team_settings (id, team_name, dark_mode, updated_at)
		VALUES (1, $1, $2, $3)
		ON CONFLICT (id) DO UPDATE SET
			team_name = excluded.team_name,
			dark_mode = excluded.dark_mode,
			updated_at = excluded.updated_at
	`, req.TeamName, req.DarkMode, updatedAt)

	if err != nil {
		slog.Error("failed to upsert settings", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to save settings")
		return
	}

	slog.Info("settings updated", "team_name", req.TeamName, "dark_mode", req.DarkMode)

	middleware.JSONResponse(w, http.StatusOK, models.TeamSettings{
		TeamName:  req.TeamName,
		DarkMode:  req.DarkMode,
		UpdatedAt: updatedAt,
	})
}
