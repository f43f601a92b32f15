package httpx

import (
	"net/http"

	"shopconsole/internal/backend"
	"shopconsole/internal/config"
	"shopconsole/internal/http/handlers"
	middlewarex "shopconsole/internal/http/middleware"
	journalsvc "shopconsole/internal/services/journal"
	"shopconsole/internal/session"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
)

// Empty-state messages shown when a listing page has no content.
const (
	ShopsEmptyMessage      = "Aucune boutique correspondante"
	ProductsEmptyMessage   = "Aucun produit correspondant"
	CategoriesEmptyMessage = "Aucune catégorie correspondante"
)

// RouterDependencies holds all dependencies for the HTTP router
type RouterDependencies struct {
	Config   config.Cfg
	Backend  *backend.Client
	Sessions *session.Manager
	Journal  *journalsvc.Service
}

// NewRouter creates the console HTTP router
func NewRouter(deps RouterDependencies) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chimw.RequestID)
	r.Use(chimw.Logger)
	r.Use(chimw.Recoverer)

	// Health check (public)
	r.Get("/health", handlers.Health(deps.Backend, deps.Sessions.Busy()))

	// Admin routes
	r.Route("/admin", func(r chi.Router) {
		r.Use(middlewarex.AdminAuth(deps.Config))
		r.Get("/journal", handlers.ListJournal(deps.Journal))
	})

	// Console routes, one listing state per session cookie
	r.Route("/console", func(r chi.Router) {
		r.Use(middlewarex.AdminAuth(deps.Config))
		r.Use(middlewarex.Session(deps.Config.Listing.SessionTTL))

		r.Route("/shops", func(r chi.Router) {
			r.Get("/", handlers.ListShops(deps.Sessions))
			r.Post("/", handlers.CreateShop(deps.Backend, deps.Journal))
			r.Put("/", handlers.EditShop(deps.Backend, deps.Journal))
			r.Get("/{id}", handlers.GetShop(deps.Backend))
			r.Delete("/{id}", handlers.DeleteShop(deps.Backend, deps.Journal))
		})

		r.Route("/products", func(r chi.Router) {
			r.Get("/", handlers.ListProducts(deps.Sessions, deps.Backend, deps.Sessions.Busy(), deps.Config.Listing.PageSize, ProductsEmptyMessage))
			r.Post("/", handlers.CreateProduct(deps.Backend, deps.Journal))
			r.Put("/", handlers.EditProduct(deps.Backend, deps.Journal))
			r.Get("/{id}", handlers.GetProduct(deps.Backend))
			r.Delete("/{id}", handlers.DeleteProduct(deps.Backend, deps.Journal))
			r.Put("/{id}/shop/{shopId}", handlers.AttachProductShop(deps.Backend, deps.Journal))
		})

		r.Route("/categories", func(r chi.Router) {
			r.Get("/", handlers.ListCategories(deps.Sessions))
			r.Post("/", handlers.CreateCategory(deps.Backend, deps.Journal))
			r.Put("/", handlers.EditCategory(deps.Backend, deps.Journal))
			r.Get("/{id}", handlers.GetCategory(deps.Backend))
			r.Delete("/{id}", handlers.DeleteCategory(deps.Backend, deps.Journal))
		})
	})

	return r
}

// NewSessionManager wires the session listings to the backend.
func NewSessionManager(cfg config.Cfg, api *backend.Client, store session.Store) *session.Manager {
	return session.NewManager(store, session.Sources{
		Shops:      api,
		Products:   api.ProductSource(backend.ProductFilter{}),
		Categories: api.CategorySource(),
	}, session.Options{
		PageSize:        cfg.Listing.PageSize,
		IdleTTL:         cfg.Listing.SessionTTL,
		ShopsEmpty:      ShopsEmptyMessage,
		ProductsEmpty:   ProductsEmptyMessage,
		CategoriesEmpty: CategoriesEmptyMessage,
	})
}
