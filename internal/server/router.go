package server

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"vendora/internal/board"
	"vendora/internal/catalog"
	"vendora/internal/shop"
	"vendora/internal/user"
	"vendora/internal/withdrawal"
)

func NewRouter(
	boardCtrl *board.Controller,
	catalogCtrl *catalog.Controller,
	shopCtrl *shop.Controller,
	withdrawalCtrl *withdrawal.Controller,
	userCtrl *user.Controller,
	logger *zap.Logger,
) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(requestLogger(logger))

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	r.Route("/api", func(r chi.Router) {
		r.Mount("/", boardCtrl.Routes())
		r.Mount("/products", catalogCtrl.ProductRoutes())
		r.Mount("/categories", catalogCtrl.CategoryRoutes())
		r.Mount("/tags", catalogCtrl.TagRoutes())
		r.Mount("/brands", catalogCtrl.BrandRoutes())
		r.Mount("/attributes", catalogCtrl.AttributeRoutes())
		r.Mount("/shops", shopCtrl.Routes())
		r.Mount("/withdrawals", withdrawalCtrl.Routes())
		r.Mount("/users", userCtrl.Routes())
	})

	return r
}

func requestLogger(logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r)
			logger.Info("request",
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.Int("status", ww.Status()),
				zap.Duration("duration", time.Since(start)),
			)
		})
	}
}
