// Package swaggerkit serves the API's OpenAPI document and the swagger UI
package swaggerkit

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	httpSwagger "github.com/swaggo/http-swagger"
)

// Mount serves the UI under /api/docs/ and the document at /api/docs/doc.json.
// base is the server url written into the document, e.g. "/api/v1"
func Mount(r chi.Router, base string) {
	r.Get("/api/docs", http.RedirectHandler("/api/docs/", http.StatusMovedPermanently).ServeHTTP)
	r.Get("/api/docs/doc.json", serveDocJSON(base))
	r.Get("/api/docs/*", httpSwagger.Handler(
		httpSwagger.InstanceName("api"),
		httpSwagger.URL("/api/docs/doc.json"),
	))
}
