package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"shopconsole/internal/backend"
	"shopconsole/internal/domain/journal"
	"shopconsole/internal/domain/page"
	"shopconsole/internal/domain/product"
	"shopconsole/internal/listing"
	"shopconsole/internal/session"
)

// ProductAPI is the backend surface used by product handlers.
type ProductAPI interface {
	ListProducts(ctx context.Context, pageIndex, size int, f backend.ProductFilter) (*page.Page[product.Product], error)
	GetProduct(ctx context.Context, id int64) (*product.Product, error)
	CreateProduct(ctx context.Context, p product.MinimalProduct) (*product.Product, error)
	EditProduct(ctx context.Context, p product.MinimalProduct) (*product.Product, error)
	DeleteProduct(ctx context.Context, id int64) error
	SetProductShop(ctx context.Context, productID, shopID int64) (*product.Product, error)
}

// ListProducts returns the session's product listing. With shopId or
// categoryId the listing is a one-off filtered page that does not touch the
// session state but still counts on busy.
func ListProducts(sessions *session.Manager, api ProductAPI, busy *listing.Busy, pageSize int, emptyMessage string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		f, ok := parseProductFilter(q.Get("shopId"), q.Get("categoryId"))
		if !ok {
			http.Error(w, "invalid shopId or categoryId", http.StatusBadRequest)
			return
		}
		if f.ShopID != nil || f.CategoryID != nil {
			pageIndex := 0
			if n, err := strconv.Atoi(q.Get("page")); err == nil && n > 0 {
				pageIndex = n - 1
			}
			release := busy.Acquire()
			p, err := api.ListProducts(r.Context(), pageIndex, pageSize, f)
			release()
			if err != nil {
				writeJSON(w, http.StatusBadGateway, ListingResponse[product.Product]{Error: GenericError})
				return
			}
			writeJSON(w, http.StatusOK, ListingResponse[product.Product]{
				View:  listing.ViewOf(p, emptyMessage),
				State: listing.State{Page: pageIndex},
				Mode:  listing.ModePlain.String(),
			})
			return
		}

		sess, ok := loadSession(w, r, sessions)
		if !ok {
			return
		}
		view, err := selectPage(r, sess.Products)
		respondListing(w, r, sessions, sess, sess.Products, view, err)
	}
}

func parseProductFilter(shopID, categoryID string) (backend.ProductFilter, bool) {
	var f backend.ProductFilter
	if shopID != "" {
		n, err := strconv.ParseInt(shopID, 10, 64)
		if err != nil {
			return f, false
		}
		f.ShopID = &n
	}
	if categoryID != "" {
		n, err := strconv.ParseInt(categoryID, 10, 64)
		if err != nil {
			return f, false
		}
		f.CategoryID = &n
	}
	return f, true
}

// GetProduct returns a product formatted for ?locale= (default fr).
func GetProduct(api ProductAPI) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := idParam(r, "id")
		if err != nil {
			http.Error(w, "invalid product id", http.StatusBadRequest)
			return
		}
		p, err := api.GetProduct(r.Context(), id)
		if err != nil {
			if errors.Is(err, backend.ErrNotFound) {
				http.Error(w, "product not found", http.StatusNotFound)
				return
			}
			mutationFailed(w, "get_product", err)
			return
		}
		locale := r.URL.Query().Get("locale")
		if locale == "" {
			locale = "fr"
		}
		writeJSON(w, http.StatusOK, product.Format(p, locale))
	}
}

func CreateProduct(api ProductAPI, rec Recorder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req product.MinimalProduct
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid JSON", http.StatusBadRequest)
			return
		}
		p, err := api.CreateProduct(r.Context(), req)
		var id int64
		if p != nil {
			id = p.ID
		}
		rec.Record(r.Context(), sessionID(r), journal.ActionCreate, journal.ResourceProduct, id, err)
		if err != nil {
			mutationFailed(w, "create_product", err)
			return
		}
		mutationOK(w, "product created", p)
	}
}

func EditProduct(api ProductAPI, rec Recorder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req product.MinimalProduct
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid JSON", http.StatusBadRequest)
			return
		}
		p, err := api.EditProduct(r.Context(), req)
		rec.Record(r.Context(), sessionID(r), journal.ActionEdit, journal.ResourceProduct, req.ID, err)
		if err != nil {
			mutationFailed(w, "edit_product", err)
			return
		}
		mutationOK(w, "product updated", p)
	}
}

// DeleteProduct deletes a product; any failure yields the generic error notice.
func DeleteProduct(api ProductAPI, rec Recorder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := idParam(r, "id")
		if err != nil {
			http.Error(w, "invalid product id", http.StatusBadRequest)
			return
		}
		err = api.DeleteProduct(r.Context(), id)
		rec.Record(r.Context(), sessionID(r), journal.ActionDelete, journal.ResourceProduct, id, err)
		if err != nil {
			mutationFailed(w, "delete_product", err)
			return
		}
		mutationOK(w, "product deleted", nil)
	}
}

// AttachProductShop moves a product to a shop.
func AttachProductShop(api ProductAPI, rec Recorder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := idParam(r, "id")
		if err != nil {
			http.Error(w, "invalid product id", http.StatusBadRequest)
			return
		}
		shopID, err := idParam(r, "shopId")
		if err != nil {
			http.Error(w, "invalid shop id", http.StatusBadRequest)
			return
		}
		p, err := api.SetProductShop(r.Context(), id, shopID)
		rec.Record(r.Context(), sessionID(r), journal.ActionAttach, journal.ResourceProduct, id, err)
		if err != nil {
			mutationFailed(w, "attach_product_shop", err)
			return
		}
		mutationOK(w, "product attached", p)
	}
}
