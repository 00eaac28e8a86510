package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/hitoshi/wheelshare/internal/metrics"
	"github.com/hitoshi/wheelshare/internal/middleware"
)

// HealthChecker はヘルスチェックに必要なインターフェース。
// sql.DBが満たす。
type HealthChecker interface {
	PingContext(ctx context.Context) error
}

// RouterDeps はNewRouterに必要な依存関係をまとめた構造体。
type RouterDeps struct {
	// ミドルウェア依存
	Logger            *slog.Logger
	CORSAllowedOrigin string
	RateLimiter       *middleware.RateLimiter

	// 運用
	HealthChecker HealthChecker
	Gatherer      prometheus.Gatherer
	StatusMetrics middleware.HTTPStatusRecorder

	// ドメインサービス
	SharingService  SharingServiceInterface
	ReviewService   ReviewServiceInterface
	AdminService    AdminServiceInterface
	CounterResetter CounterResetter
	SettingsService SettingsServiceInterface
	WheelService    WheelServiceInterface
	CarouselService CarouselServiceInterface

	// フロントエンド配信
	StaticDir string
}

// NewRouter は全APIエンドポイントのルーティングとミドルウェアチェーンを構成したchi.Routerを返す。
//
// ミドルウェアスタックの実行順序:
//
//	Recovery → SecurityHeaders → CORS → Logging → Identity → RateLimit(General)
//
// 運用ルート（/health、/metrics）はレート制限の外に配置する。
func NewRouter(deps *RouterDeps) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.NewRecoveryMiddleware())
	r.Use(middleware.NewSecurityHeadersMiddleware())
	r.Use(middleware.NewCORSMiddleware(deps.CORSAllowedOrigin))
	r.Use(middleware.NewLoggingMiddleware(deps.Logger))
	if deps.StatusMetrics != nil {
		r.Use(middleware.NewStatusMetricsMiddleware(deps.StatusMetrics))
	}
	r.Use(middleware.NewIdentityMiddleware())

	sharedWheelHandler := NewSharedWheelHandler(deps.SharingService)
	reviewHandler := NewReviewHandler(deps.ReviewService)
	adminHandler := NewAdminHandler(deps.AdminService, deps.CounterResetter)
	settingsHandler := NewSettingsHandler(deps.SettingsService)
	wheelHandler := NewWheelHandler(deps.WheelService)
	carouselHandler := NewCarouselHandler(deps.CarouselService)
	userHandler := NewUserHandler()

	// --- 運用ルート ---

	r.Get("/health", NewHealthHandler(deps.HealthChecker).ServeHTTP)
	if deps.Gatherer != nil {
		r.Method(http.MethodGet, "/metrics", metrics.Handler(deps.Gatherer))
	}

	// --- APIルート ---
	// ミドルウェアスタック: RateLimit(General)
	r.Group(func(r chi.Router) {
		r.Use(deps.RateLimiter.GeneralMiddleware())

		// 保存済みホイール
		r.Route("/api/wheels", func(r chi.Router) {
			r.Get("/", wheelHandler.List)
			r.Post("/", wheelHandler.Save)
			r.Delete("/{title}", wheelHandler.Delete)
		})

		// 共有ホイール
		r.Route("/api/shared-wheels", func(r chi.Router) {
			// POST /api/shared-wheels - 公開（公開専用レート制限を追加）
			r.With(deps.RateLimiter.PublishMiddleware()).Post("/", sharedWheelHandler.Publish)

			r.Get("/", sharedWheelHandler.ListOwn)
			r.Get("/{path}", sharedWheelHandler.GetPublished)
			r.Delete("/{path}", sharedWheelHandler.DeleteOwn)
		})

		// 閲覧記録
		r.Post("/api/shared-wheel-reads", sharedWheelHandler.LogRead)

		// レビューキュー
		r.Route("/api/review-queue", func(r chi.Router) {
			r.Get("/next", reviewHandler.Next)
			r.Get("/count", reviewHandler.Count)
			r.Post("/{path}/approve", reviewHandler.Approve)
			r.Post("/{path}/delete", reviewHandler.Reject)
		})

		// レビュアー台帳
		r.Route("/api/admins", func(r chi.Router) {
			r.Get("/", adminHandler.List)
			r.Post("/", adminHandler.Upsert)

			r.Route("/{uid}", func(r chi.Router) {
				r.Delete("/", adminHandler.Delete)
				r.Post("/reset-reviews", adminHandler.ResetReviews)
				r.Post("/reset-session", adminHandler.ResetSession)
			})
		})

		// 設定
		r.Route("/api/settings", func(r chi.Router) {
			r.Get("/dirty-words", settingsHandler.GetDirtyWords)
			r.Post("/dirty-words", settingsHandler.ReplaceDirtyWords)
			r.Get("/earnings-per-review", settingsHandler.GetEarningsPerReview)
		})

		// ショーケース
		r.Route("/api/carousels", func(r chi.Router) {
			r.Get("/", carouselHandler.List)
			r.Post("/", carouselHandler.Replace)
		})

		// ユーザー（スタブ）
		r.Get("/api/user/is-admin", userHandler.IsAdmin)
		r.Get("/api/spin-stats", userHandler.SpinStats)
	})

	// --- 静的ファイルとSPAフォールバック ---
	if deps.StaticDir != "" {
		r.NotFound(NewSPAHandler(deps.StaticDir).ServeHTTP)
	}

	return r
}
