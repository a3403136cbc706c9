// Package httpapi is the thin HTTP shell over the catalog service: routing,
// request validation, and error-to-status mapping. All business rules live in
// the catalog package.
package httpapi

import (
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"
	"github.com/rs/cors"
	"go.uber.org/zap"

	"github.com/beesaferoot/estate-catalog/internal/catalog"
)

// NewRouter assembles the API routes under /api with request logging and CORS.
func NewRouter(svc *catalog.Service, logger *zap.Logger) http.Handler {
	validate := validator.New()

	r := mux.NewRouter()
	api := r.PathPrefix("/api").Subrouter()

	NewWorkingAreaHandler(svc, validate, logger).Register(api)
	NewPropertyHandler(svc, validate, logger).Register(api)
	NewUnitHandler(svc, validate, logger).Register(api)
	NewSupportHandler(svc, validate, logger).Register(api)

	return cors.AllowAll().Handler(requestLogger(logger)(r))
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (rec *statusRecorder) WriteHeader(status int) {
	rec.status = status
	rec.ResponseWriter.WriteHeader(status)
}

func requestLogger(logger *zap.Logger) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
			next.ServeHTTP(rec, r)
			logger.Info("request",
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.Int("status", rec.status),
				zap.Duration("duration", time.Since(start)),
			)
		})
	}
}
