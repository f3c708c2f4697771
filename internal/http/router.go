package httpserver

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/Lucas-Aron/Retail/internal/http/handlers"
	"github.com/Lucas-Aron/Retail/internal/service/access"
	"github.com/Lucas-Aron/Retail/internal/service/product"
	"github.com/Lucas-Aron/Retail/internal/service/supplier"
	"github.com/Lucas-Aron/Retail/internal/store"
)

const APIBasePath = "/api/v1"
const ProductsPath = APIBasePath + "/products"
const SuppliersPath = APIBasePath + "/suppliers"
const AccessPath = APIBasePath + "/access"
const HealthPath = APIBasePath + "/health"

// Services bundles what the router needs to serve pages and the JSON API.
type Services struct {
	Store     *store.Store
	Products  product.ProductService
	Suppliers supplier.SupplierService
	Access    access.AccessService
}

func NewRouter(svc Services) *chi.Mux {
	r := chi.NewRouter()
	r.Use(middleware.RequestID, middleware.RealIP, middleware.Logger, middleware.Recoverer)

	h := handlers.NewStatusHandler(svc.Store)
	pages := handlers.NewPageHandler(svc.Store, svc.Products, svc.Suppliers, svc.Access)

	initHealthRoutes(r, h)
	initPageRoutes(r, pages)
	initProductRoutes(r, &handlers.ProductHandler{Service: svc.Products})
	initSupplierRoutes(r, &handlers.SupplierHandler{Service: svc.Suppliers})
	initAccessRoutes(r, &handlers.AccessHandler{Service: svc.Access})

	return r
}

func initHealthRoutes(r *chi.Mux, h *handlers.StatusHandler) {
	r.Get(HealthPath, func(w http.ResponseWriter, r *http.Request) {
		h.Health(w)
	})
}

func initPageRoutes(r *chi.Mux, p *handlers.PageHandler) {
	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/products/new", http.StatusSeeOther)
	})

	r.Get("/products/new", p.ProductForm)
	r.Post("/products", p.ProductCreate)
	r.Get("/products", p.ProductList)

	r.Get("/suppliers/new", p.SupplierForm)
	r.Post("/suppliers", p.SupplierCreate)
	r.Get("/suppliers", p.SupplierList)

	r.Get("/access/new", p.AccessForm)
	r.Post("/access", p.AccessCreate)
	r.Get("/access", p.AccessList)

	r.Post("/close", p.Close)
}

func initProductRoutes(r *chi.Mux, h *handlers.ProductHandler) {
	r.Route(ProductsPath, func(r chi.Router) {
		r.Get("/", h.List)
		r.Post("/", h.Create)
	})
}

func initSupplierRoutes(r *chi.Mux, h *handlers.SupplierHandler) {
	r.Route(SuppliersPath, func(r chi.Router) {
		r.Get("/", h.List)
		r.Post("/", h.Create)
		r.Get("/choices", h.Choices)
	})
}

func initAccessRoutes(r *chi.Mux, h *handlers.AccessHandler) {
	r.Route(AccessPath, func(r chi.Router) {
		r.Get("/", h.List)
		r.Post("/", h.Create)
	})
}
