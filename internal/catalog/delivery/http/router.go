package http

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/rs/cors"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

// RouterOptions carries the endpoints served next to the catalog routes
type RouterOptions struct {
	Health  http.Handler
	Metrics http.Handler
	Swagger http.Handler
}

// NewRouter assembles the catalog routes and the middleware chain
func NewRouter(h *CatalogHandler, opts RouterOptions) http.Handler {
	router := mux.NewRouter()

	if opts.Health != nil {
		router.Handle("/health", opts.Health).Methods(http.MethodGet)
	}
	if opts.Metrics != nil {
		router.Handle("/metrics", opts.Metrics).Methods(http.MethodGet)
	}
	if opts.Swagger != nil {
		RegisterSwaggerDocs(router, opts.Swagger)
	}

	h.RegisterRoutes(router)

	router.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		respondError(w, http.StatusNotFound, "route not found")
	})
	router.MethodNotAllowedHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		respondError(w, http.StatusMethodNotAllowed, "method not allowed")
	})

	router.Use(RequestIDMiddleware, LoggingMiddleware, RecoveryMiddleware, SecurityHeadersMiddleware)

	c := cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Content-Type", "Authorization", "X-API-Key"},
	})

	return otelhttp.NewHandler(c.Handler(router), "catalog-http",
		otelhttp.WithSpanNameFormatter(func(_ string, r *http.Request) string {
			return r.Method + " " + r.URL.Path
		}),
	)
}
