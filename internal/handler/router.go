package handler

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/hitoshi/storefront/internal/metrics"
	"github.com/hitoshi/storefront/internal/middleware"
)

// RouterDeps はNewRouterに必要な依存関係をまとめた構造体。
type RouterDeps struct {
	// ミドルウェア依存
	CORSAllowedOrigin string
	Logger            *slog.Logger
	MetricsRecorder   middleware.HTTPMetricsRecorder
	MetricsGatherer   prometheus.Gatherer

	// 認証
	TokenVerifier  middleware.TokenVerifier
	AccountService AccountServiceInterface

	// カタログ
	CatalogService CatalogServiceInterface

	// チェックアウト
	CheckoutService CheckoutServiceInterface

	// 診断
	DB DBTimeQuerier
}

// NewRouter は全APIエンドポイントのルーティングとミドルウェアチェーンを構成したchi.Routerを返す。
//
// ミドルウェアスタックの実行順序:
//
//	RequestID → CORS → SecurityHeaders → Recovery → Logging → Metrics
//
// 認証ゲートはチェックアウトルートのみに適用する。それ以外のルートは
// 意図的に認証なしで公開されている。
func NewRouter(deps *RouterDeps) http.Handler {
	r := chi.NewRouter()

	logger := deps.Logger
	if logger == nil {
		logger = slog.Default()
	}

	r.Use(middleware.NewRequestIDMiddleware())
	r.Use(middleware.NewCORSMiddleware(deps.CORSAllowedOrigin))
	r.Use(middleware.NewSecurityHeadersMiddleware())
	r.Use(middleware.NewRecoveryMiddleware())
	r.Use(middleware.NewLoggingMiddleware(logger))
	if deps.MetricsRecorder != nil {
		r.Use(middleware.NewMetricsMiddleware(deps.MetricsRecorder))
	}

	authHandler := NewAuthHandler(deps.AccountService, deps.TokenVerifier)
	productHandler := NewProductHandler(deps.CatalogService)
	checkoutHandler := NewCheckoutHandler(deps.CheckoutService)
	healthHandler := NewHealthHandler(deps.DB)

	// --- 認証不要のルート ---

	r.Post("/register", authHandler.Register)
	r.Post("/login", authHandler.Login)
	r.Get("/verify-token", authHandler.VerifyToken)

	r.Get("/products", productHandler.ListProducts)
	r.Get("/products/{id}", productHandler.GetProduct)

	r.Get("/health", healthHandler.Health)
	r.Get("/test-db", healthHandler.TestDB)

	if deps.MetricsGatherer != nil {
		r.Handle("/metrics", metrics.Handler(deps.MetricsGatherer))
	}

	// --- 認証が必要なルート ---

	r.Group(func(r chi.Router) {
		r.Use(middleware.NewAuthMiddleware(deps.TokenVerifier))
		r.Post("/checkout", checkoutHandler.Checkout)
	})

	return r
}
