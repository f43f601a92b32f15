package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"shopconsole/internal/backend"
	"shopconsole/internal/domain/journal"
	"shopconsole/internal/domain/shop"
	"shopconsole/internal/listing"
	"shopconsole/internal/session"
)

// ShopAPI is the backend surface used by shop handlers.
type ShopAPI interface {
	GetShop(ctx context.Context, id int64) (*shop.Shop, error)
	CreateShop(ctx context.Context, s shop.MinimalShop) (*shop.Shop, error)
	EditShop(ctx context.Context, s shop.MinimalShop) (*shop.Shop, error)
	DeleteShop(ctx context.Context, id int64) error
}

// ListShops applies one listing event and returns the shop view. The event
// is picked from the query: search, then sort, then filters, then page.
func ListShops(sessions *session.Manager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess, ok := loadSession(w, r, sessions)
		if !ok {
			return
		}
		ctx := r.Context()
		q := r.URL.Query()

		var (
			view listing.View[shop.Shop]
			err  error
		)
		switch {
		case q.Has("search"):
			view, err = sess.Shops.Search(ctx, q.Get("search"))
		case q.Has("sort"):
			view, err = sess.Shops.SetSort(ctx, q.Get("sort"))
		case q.Has("filters"):
			view, err = sess.Shops.SetFilters(ctx, q.Get("filters"))
		default:
			view, err = selectPage(r, sess.Shops)
		}
		respondListing(w, r, sessions, sess, sess.Shops, view, err)
	}
}

// GetShop returns one shop.
func GetShop(api ShopAPI) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := idParam(r, "id")
		if err != nil {
			http.Error(w, "invalid shop id", http.StatusBadRequest)
			return
		}
		s, err := api.GetShop(r.Context(), id)
		if err != nil {
			if errors.Is(err, backend.ErrNotFound) {
				http.Error(w, "shop not found", http.StatusNotFound)
				return
			}
			mutationFailed(w, "get_shop", err)
			return
		}
		writeJSON(w, http.StatusOK, s)
	}
}

// CreateShop posts a new shop.
func CreateShop(api ShopAPI, rec Recorder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req shop.MinimalShop
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid JSON", http.StatusBadRequest)
			return
		}
		s, err := api.CreateShop(r.Context(), req)
		var id int64
		if s != nil {
			id = s.ID
		}
		rec.Record(r.Context(), sessionID(r), journal.ActionCreate, journal.ResourceShop, id, err)
		if err != nil {
			mutationFailed(w, "create_shop", err)
			return
		}
		mutationOK(w, "shop created", s)
	}
}

// EditShop replaces a shop.
func EditShop(api ShopAPI, rec Recorder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req shop.MinimalShop
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid JSON", http.StatusBadRequest)
			return
		}
		s, err := api.EditShop(r.Context(), req)
		rec.Record(r.Context(), sessionID(r), journal.ActionEdit, journal.ResourceShop, req.ID, err)
		if err != nil {
			mutationFailed(w, "edit_shop", err)
			return
		}
		mutationOK(w, "shop updated", s)
	}
}

// DeleteShop deletes a shop.
func DeleteShop(api ShopAPI, rec Recorder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := idParam(r, "id")
		if err != nil {
			http.Error(w, "invalid shop id", http.StatusBadRequest)
			return
		}
		err = api.DeleteShop(r.Context(), id)
		rec.Record(r.Context(), sessionID(r), journal.ActionDelete, journal.ResourceShop, id, err)
		if err != nil {
			mutationFailed(w, "delete_shop", err)
			return
		}
		mutationOK(w, "shop deleted", nil)
	}
}
