// Package metrics はPrometheusメトリクスの収集と公開を提供する。
package metrics

import (
	"net/http"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// MetricsCollector はメトリクス収集のインターフェース。
// サービス層とミドルウェアから利用する。
type MetricsCollector interface {
	RecordPublishAccepted()
	RecordPublishBlocked()
	RecordSharedWheelRead()
	RecordReviewDecision(outcome string)
	RecordHTTPStatus(statusCode int)
}

// Collector はPrometheusメトリクスを収集する実装。
type Collector struct {
	publishAccepted prometheus.Counter
	publishBlocked  prometheus.Counter
	sharedReads     prometheus.Counter
	reviewDecisions *prometheus.CounterVec
	httpStatus      *prometheus.CounterVec
}

// NewCollector は新しいCollectorを生成し、指定されたレジストリにメトリクスを登録する。
func NewCollector(reg prometheus.Registerer) *Collector {
	c := &Collector{
		publishAccepted: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "wheelshare_publish_accepted_total",
			Help: "公開を受理した共有ホイールの合計数",
		}),
		publishBlocked: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "wheelshare_publish_blocked_total",
			Help: "禁止ワード検出で拒否した公開リクエストの合計数",
		}),
		sharedReads: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "wheelshare_shared_wheel_reads_total",
			Help: "共有ホイール閲覧記録の合計数",
		}),
		reviewDecisions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "wheelshare_review_decisions_total",
			Help: "モデレーション決定の種別ごとの合計数",
		}, []string{"outcome"}),
		httpStatus: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "wheelshare_http_status_total",
			Help: "HTTPステータスコード別のレスポンス数",
		}, []string{"status_code"}),
	}

	reg.MustRegister(
		c.publishAccepted,
		c.publishBlocked,
		c.sharedReads,
		c.reviewDecisions,
		c.httpStatus,
	)

	return c
}

// RecordPublishAccepted は公開受理を記録する。
func (c *Collector) RecordPublishAccepted() {
	c.publishAccepted.Inc()
}

// RecordPublishBlocked は禁止ワードによる公開拒否を記録する。
func (c *Collector) RecordPublishBlocked() {
	c.publishBlocked.Inc()
}

// RecordSharedWheelRead は共有ホイールの閲覧を記録する。
func (c *Collector) RecordSharedWheelRead() {
	c.sharedReads.Inc()
}

// RecordReviewDecision はモデレーション決定を種別付きで記録する。
func (c *Collector) RecordReviewDecision(outcome string) {
	c.reviewDecisions.WithLabelValues(outcome).Inc()
}

// RecordHTTPStatus はHTTPステータスコードを記録する。
func (c *Collector) RecordHTTPStatus(statusCode int) {
	c.httpStatus.WithLabelValues(strconv.Itoa(statusCode)).Inc()
}

// Handler はPrometheusスクレイプ用のHTTPハンドラーを返す。
func Handler(gatherer prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})
}

// SetupMetricsRoute は/metricsエンドポイントを提供するHTTPハンドラーを返す。
// Prometheusスクレイプに対応する。
func SetupMetricsRoute(gatherer prometheus.Gatherer) http.Handler {
	mux := http.NewServeMux()
	mux.Handle("/metrics", Handler(gatherer))
	return mux
}
