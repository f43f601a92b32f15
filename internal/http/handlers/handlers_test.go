package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"shopconsole/internal/backend"
	"shopconsole/internal/domain/journal"
	"shopconsole/internal/domain/page"
	"shopconsole/internal/domain/product"
	middlewarex "shopconsole/internal/http/middleware"
	"shopconsole/internal/listing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeProducts struct {
	lastPage   int
	lastFilter backend.ProductFilter
	failAttach bool
	onList     func()
}

func (f *fakeProducts) ListProducts(_ context.Context, pageIndex, _ int, flt backend.ProductFilter) (*page.Page[product.Product], error) {
	f.lastPage, f.lastFilter = pageIndex, flt
	if f.onList != nil {
		f.onList()
	}
	return &page.Page[product.Product]{Pageable: page.Pageable{PageNumber: pageIndex}}, nil
}

func (f *fakeProducts) GetProduct(_ context.Context, id int64) (*product.Product, error) {
	if id == 404 {
		return nil, &backend.APIError{Op: "get_product", StatusCode: http.StatusNotFound}
	}
	return &product.Product{ID: id, Price: 300, LocalizedProducts: []product.LocalizedProduct{{Locale: "FR", Name: "Croissant"}}}, nil
}

func (f *fakeProducts) CreateProduct(_ context.Context, p product.MinimalProduct) (*product.Product, error) {
	return &product.Product{ID: 11, Price: p.Price}, nil
}

func (f *fakeProducts) EditProduct(_ context.Context, p product.MinimalProduct) (*product.Product, error) {
	return &product.Product{ID: p.ID, Price: p.Price}, nil
}

func (f *fakeProducts) DeleteProduct(context.Context, int64) error { return nil }

func (f *fakeProducts) SetProductShop(_ context.Context, productID, _ int64) (*product.Product, error) {
	if f.failAttach {
		return nil, errors.New("backend down")
	}
	return &product.Product{ID: productID}, nil
}

type recorded struct {
	action   journal.Action
	resource journal.Resource
	id       int64
	failed   bool
}

type fakeRecorder struct{ calls []recorded }

func (r *fakeRecorder) Record(_ context.Context, _ string, action journal.Action, resource journal.Resource, id int64, cause error) {
	r.calls = append(r.calls, recorded{action, resource, id, cause != nil})
}

func productRouter(api ProductAPI, rec Recorder) http.Handler {
	return productRouterWithBusy(api, rec, &listing.Busy{})
}

func productRouterWithBusy(api ProductAPI, rec Recorder, busy *listing.Busy) http.Handler {
	r := chi.NewRouter()
	r.Use(middlewarex.Session(0))
	r.Get("/products", ListProducts(nil, api, busy, 9, "none"))
	r.Get("/products/{id}", GetProduct(api))
	r.Post("/products", CreateProduct(api, rec))
	r.Put("/products/{id}/shop/{shopId}", AttachProductShop(api, rec))
	return r
}

func TestListProductsByShopIsStateless(t *testing.T) {
	api := &fakeProducts{}
	rr := httptest.NewRecorder()
	productRouter(api, &fakeRecorder{}).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/products?shopId=4&page=2", nil))

	require.Equal(t, http.StatusOK, rr.Code)
	require.NotNil(t, api.lastFilter.ShopID)
	assert.Equal(t, int64(4), *api.lastFilter.ShopID)
	assert.Nil(t, api.lastFilter.CategoryID)
	assert.Equal(t, 1, api.lastPage)

	var body ListingResponse[product.Product]
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	assert.True(t, body.View.Empty)
	assert.Equal(t, "none", body.View.EmptyMessage)
}

func TestListProductsByShopMarksBusy(t *testing.T) {
	busy := &listing.Busy{}
	loadingDuringCall := false
	api := &fakeProducts{onList: func() { loadingDuringCall = busy.Loading() }}

	rr := httptest.NewRecorder()
	productRouterWithBusy(api, &fakeRecorder{}, busy).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/products?categoryId=2", nil))

	require.Equal(t, http.StatusOK, rr.Code)
	assert.True(t, loadingDuringCall)
	assert.False(t, busy.Loading())
}

func TestListProductsRejectsBadFilter(t *testing.T) {
	rr := httptest.NewRecorder()
	productRouter(&fakeProducts{}, &fakeRecorder{}).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/products?categoryId=abc", nil))
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestGetProductFormatsAndMapsNotFound(t *testing.T) {
	h := productRouter(&fakeProducts{}, &fakeRecorder{})

	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/products/5", nil))
	require.Equal(t, http.StatusOK, rr.Code)
	var f product.Formatted
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &f))
	assert.Equal(t, "Croissant", f.Name)
	assert.Contains(t, f.PriceLabel, "3,00")

	rr = httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/products/404", nil))
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestMutationsRecordOutcome(t *testing.T) {
	api := &fakeProducts{}
	rec := &fakeRecorder{}
	h := productRouter(api, rec)

	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/products", strings.NewReader(`{"price":450,"localizedProducts":[]}`)))
	require.Equal(t, http.StatusOK, rr.Code)
	var ok MutationResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &ok))
	assert.Equal(t, "success", ok.Notice.Severity)

	api.failAttach = true
	rr = httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodPut, "/products/11/shop/2", nil))
	assert.Equal(t, http.StatusBadGateway, rr.Code)
	var failed MutationResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &failed))
	assert.Equal(t, Notice{Severity: "error", Message: GenericError}, failed.Notice)

	assert.Equal(t, []recorded{
		{journal.ActionCreate, journal.ResourceProduct, 11, false},
		{journal.ActionAttach, journal.ResourceProduct, 11, true},
	}, rec.calls)
}

func TestCreateRejectsInvalidJSON(t *testing.T) {
	rec := &fakeRecorder{}
	rr := httptest.NewRecorder()
	productRouter(&fakeProducts{}, rec).ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/products", strings.NewReader("{")))
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Empty(t, rec.calls)
}
