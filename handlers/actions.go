// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/google/uuid"

	"github.com/danielhkuo/huddleboard/auth"
	"github.com/danielhkuo/huddleboard/cliparse"
	"github.com/danielhkuo/huddleboard/engine"
	"github.com/danielhkuo/huddleboard/middleware"
	"github.com/danielhkuo/huddleboard/models"
)

// DefaultUrgentLimit caps the urgent list when no limit is requested.
const DefaultUrgentLimit = 5

type ActionItemHandler struct {
	db  *sql.DB
	cfg cliparse.Config
}

func NewActionItemHandler(db *sql.DB, cfg cliparse.Config) *ActionItemHandler {
	return &ActionItemHandler{db: db, cfg: cfg}
}

// Create handles POST /action-items
func (h *ActionItemHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req models.CreateActionItemRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if req.Description == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "description is required")
		return
	}
	if req.Assignee == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "assignee is required")
		return
	}
	if _, err := time.Parse(engine.DateLayout, req.DueDate); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "due_date must be YYYY-MM-DD")
		return
	}

	itemID := uuid.NewString()
	_, err := h.db.Exec(`
		INSERT INTO action_item (id, description, assignee, due_date, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`, itemID, req.Description, req.Assignee, req.DueDate, models.StatusOpen, time.Now())

	if err != nil {
		slog.Error("failed to insert action item", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to create action item")
		return
	}

	slog.Info("action item created", "action_item_id", itemID, "assignee", req.Assignee)

	middleware.JSONResponse(w, http.StatusCreated, models.CreateActionItemResponse{
		ActionItemID: itemID,
	})
}

// List handles GET /action-items
// Open items come first, then by due date; every record carries its
// deadline bucket.
func (h *ActionItemHandler) List(w http.ResponseWriter, r *http.Request) {
	items, err := h.fetchItems("")
	if err != nil {
		slog.Error("failed to query action items", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	now := time.Now()
	views := make([]models.ActionItemView, len(items))
	for i, item := range items {
		views[i] = models.ActionItemView{
			ActionItem: item,
			Bucket:     string(engine.Classify(item, now)),
		}
	}

	middleware.JSONResponse(w, http.StatusOK, views)
}

// Urgent handles GET /action-items/urgent?limit=n
func (h *ActionItemHandler) Urgent(w http.ResponseWriter, r *http.Request) {
	limit := DefaultUrgentLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			middleware.ErrorResponse(w, http.StatusBadRequest, "limit must be a positive integer")
			return
		}
		limit = parsed
	}

	items, err := h.fetchItems(models.StatusOpen)
	if err != nil {
		slog.Error("failed to query action items", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	now := time.Now()
	urgent := engine.UrgentList(items, now, limit)

	views := make([]models.UrgentItem, len(urgent))
	for i, item := range urgent {
		views[i] = models.UrgentItem{
			ActionItem: item,
			Bucket:     string(engine.Classify(item, now)),
			DueIn:      dueLabel(item, now),
		}
	}

	middleware.JSONResponse(w, http.StatusOK, views)
}

// dueLabel humanizes the remaining time until the end of the due day.
func dueLabel(item models.ActionItem, now time.Time) string {
	due, err := time.ParseInLocation(engine.DateLayout, item.DueDate, now.Location())
	if err != nil {
		return ""
	}
	endOfDay := due.AddDate(0, 0, 1).Add(-time.Second)
	return humanize.Time(endOfDay)
}

// UpdateStatus handles PATCH /action-items/:id/status
func (h *ActionItemHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	itemID := r.PathValue("id")
	if itemID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "action_item_id is required")
		return
	}

	var req models.UpdateActionItemStatusRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if req.Status != models.StatusOpen && req.Status != models.StatusDone {
		middleware.ErrorResponse(w, http.StatusBadRequest, "status must be open or done")
		return
	}

	result, err := h.db.Exec(`UPDATE action_item SET status = $1 WHERE id = $2`, req.Status, itemID)
	if err != nil {
		slog.Error("failed to update action item", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to update action item")
		return
	}

	affected, err := result.RowsAffected()
	if err != nil {
		slog.Error("failed to read rows affected", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to update action item")
		return
	}
	if affected == 0 {
		middleware.ErrorResponse(w, http.StatusNotFound, "Action item not found")
		return
	}

	slog.Info("action item status updated", "action_item_id", itemID, "status", req.Status)

	item, err := h.fetchItem(itemID)
	if err != nil {
		slog.Error("failed to reload action item", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.ActionItemView{
		ActionItem: item,
		Bucket:     string(engine.Classify(item, time.Now())),
	})
}

// Delete handles DELETE /action-items/:id (admin)
func (h *ActionItemHandler) Delete(w http.ResponseWriter, r *http.Request) {
	itemID := r.PathValue("id")
	if itemID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "action_item_id is required")
		return
	}

	adminKey := r.Header.Get("X-Admin-Key")
	if err := auth.ValidateAdminKey(adminKey, h.cfg.AdminKeySalt); err != nil {
		middleware.ErrorResponse(w, http.StatusUnauthorized, "Invalid admin key")
		return
	}

	result, err := h.db.Exec(`DELETE FROM action_item WHERE id = $1`, itemID)
	if err != nil {
		slog.Error("failed to delete action item", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to delete action item")
		return
	}

	affected, err := result.RowsAffected()
	if err != nil {
		slog.Error("failed to read rows affected", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to delete action item")
		return
	}
	if affected == 0 {
		middleware.ErrorResponse(w, http.StatusNotFound, "Action item not found")
		return
	}

	slog.Info("action item deleted", "action_item_id", itemID)

	w.WriteHeader(http.StatusNoContent)
}

// fetchItems loads action items, optionally filtered by status.
// 'open' sorts after 'done' lexically, so DESC puts open items first.
func (h *ActionItemHandler) fetchItems(status string) ([]models.ActionItem, error) {
	query := `
		SELECT id, description, assignee, due_date, status, created_at
		FROM action_item
		ORDER BY status DESC, due_date, created_at
	`
	args := []interface{}{}
	if status != "" {
		query = `
			SELECT id, description, assignee, due_date, status, created_at
			FROM action_item
			WHERE status = $1
			ORDER BY due_date, created_at
		`
		args = append(args, status)
	}

	rows, err := h.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := []models.ActionItem{}
	for rows.Next() {
		var item models.ActionItem
		if err := rows.Scan(&item.ID, &item.Description, &item.Assignee, &item.DueDate, &item.Status, &item.CreatedAt); err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

func (h *ActionItemHandler) fetchItem(id string) (models.ActionItem, error) {
	var item models.ActionItem
	err := h.db.QueryRow(`
		SELECT id, description, assignee, due_date, status, created_at
		FROM action_item
		WHERE id = $1
	`, id).Scan(&item.ID, &item.Description, &item.Assignee, &item.DueDate, &item.Status, &item.CreatedAt)
	return item, err
}
