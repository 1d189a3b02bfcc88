package handler

import (
	"net/http"

	"pdf-text-extractor/internal/domain"
	apperrors "pdf-text-extractor/pkg/errors"

	"github.com/gorilla/mux"
	"github.com/rs/cors"
)

// NewRouter creates a new HTTP router with all routes configured
func NewRouter(pdfHandler *PDFHandler, logger domain.Logger, allowedOrigins []string) http.Handler {
	router := mux.NewRouter()
	router.Use(Recoverer(logger), RequestLogger(logger))

	router.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeAppError(w, apperrors.NewNotFoundError("Not found"))
	})
	router.MethodNotAllowedHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeAppError(w, apperrors.NewMethodNotAllowedError("Method not allowed"))
	})

	// Health check endpoints
	router.HandleFunc("/", pdfHandler.Health).Methods(http.MethodGet)
	router.HandleFunc("/health", pdfHandler.Health).Methods(http.MethodGet)

	router.HandleFunc("/extract-text", pdfHandler.ExtractText).Methods(http.MethodPost)

	// Configure CORS
	c := cors.New(cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{
			http.MethodGet,
			http.MethodPost,
		},
		AllowedHeaders: []string{
			"Content-Type",
		},
		MaxAge: 300,
	})

	return c.Handler(router)
}
