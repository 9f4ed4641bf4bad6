package server

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	authctrl "comngon/internal/auth/controller"
	authmw "comngon/internal/auth/middleware"
	orderctrl "comngon/internal/order/controller"
)

func NewRouter(
	authController *authctrl.AuthController,
	orderController *orderctrl.OrderController,
	verifier authmw.TokenVerifier,
	logger *zap.Logger,
) http.Handler {
	r := chi.NewRouter()

	r.Use(chimiddleware.RealIP)
	r.Use(requestLogger(logger))
	r.Use(chimiddleware.Recoverer)

	r.Get("/", healthHandler("Com Ngon API is running"))
	r.Get("/api/health", healthHandler("API is healthy"))

	r.Route("/api", func(r chi.Router) {
		r.Post("/register", authController.Register)
		r.Post("/login", authController.Login)

		r.Route("/orders", func(r chi.Router) {
			r.Use(authmw.RequireAuth(verifier, logger))
			r.Post("/", orderController.PlaceOrder)
			r.Get("/", orderController.ListOrders)
			r.Get("/{orderId}", orderController.GetOrder)
		})
	})

	r.NotFound(func(w http.ResponseWriter, req *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		json.NewEncoder(w).Encode(map[string]string{
			"message": "route not found",
			"path":    req.URL.Path,
		})
	})

	return r
}

func healthHandler(message string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{
			"status":    "OK",
			"message":   message,
			"timestamp": time.Now().UTC().Format(time.RFC3339),
		})
	}
}

func requestLogger(logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := chimiddleware.NewWrapResponseWriter(w, r.ProtoMajor)

			next.ServeHTTP(ww, r)

			logger.Info("request handled",
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.Int("status", ww.Status()),
				zap.Duration("duration", time.Since(start)),
			)
		})
	}
}
