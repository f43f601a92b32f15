package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"shopconsole/internal/backend"
	"shopconsole/internal/domain/category"
	"shopconsole/internal/domain/journal"
	"shopconsole/internal/session"
)

// CategoryAPI is the backend surface used by category handlers.
type CategoryAPI interface {
	GetCategory(ctx context.Context, id int64) (*category.Category, error)
	CreateCategory(ctx context.Context, c category.MinimalCategory) (*category.Category, error)
	EditCategory(ctx context.Context, c category.MinimalCategory) (*category.Category, error)
	DeleteCategory(ctx context.Context, id int64) error
}

func ListCategories(sessions *session.Manager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess, ok := loadSession(w, r, sessions)
		if !ok {
			return
		}
		view, err := selectPage(r, sess.Categories)
		respondListing(w, r, sessions, sess, sess.Categories, view, err)
	}
}

func GetCategory(api CategoryAPI) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := idParam(r, "id")
		if err != nil {
			http.Error(w, "invalid category id", http.StatusBadRequest)
			return
		}
		c, err := api.GetCategory(r.Context(), id)
		if err != nil {
			if errors.Is(err, backend.ErrNotFound) {
				http.Error(w, "category not found", http.StatusNotFound)
				return
			}
			mutationFailed(w, "get_category", err)
			return
		}
		writeJSON(w, http.StatusOK, c)
	}
}

func CreateCategory(api CategoryAPI, rec Recorder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req category.MinimalCategory
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid JSON", http.StatusBadRequest)
			return
		}
		c, err := api.CreateCategory(r.Context(), req)
		var id int64
		if c != nil {
			id = c.ID
		}
		rec.Record(r.Context(), sessionID(r), journal.ActionCreate, journal.ResourceCategory, id, err)
		if err != nil {
			mutationFailed(w, "create_category", err)
			return
		}
		mutationOK(w, "category created", c)
	}
}

func EditCategory(api CategoryAPI, rec Recorder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req category.MinimalCategory
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid JSON", http.StatusBadRequest)
			return
		}
		c, err := api.EditCategory(r.Context(), req)
		rec.Record(r.Context(), sessionID(r), journal.ActionEdit, journal.ResourceCategory, req.ID, err)
		if err != nil {
			mutationFailed(w, "edit_category", err)
			return
		}
		mutationOK(w, "category updated", c)
	}
}

func DeleteCategory(api CategoryAPI, rec Recorder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := idParam(r, "id")
		if err != nil {
			http.Error(w, "invalid category id", http.StatusBadRequest)
			return
		}
		err = api.DeleteCategory(r.Context(), id)
		rec.Record(r.Context(), sessionID(r), journal.ActionDelete, journal.ResourceCategory, id, err)
		if err != nil {
			mutationFailed(w, "delete_category", err)
			return
		}
		mutationOK(w, "category deleted", nil)
	}
}
