// Package metrics はPrometheusメトリクスの収集と公開を提供する。
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Collector はPrometheusメトリクスを収集する実装。
type Collector struct {
	httpRequests     *prometheus.CounterVec
	httpDuration     prometheus.Histogram
	ordersCreated    prometheus.Counter
	checkoutFailures prometheus.Counter
}

// NewCollector は新しいCollectorを生成し、指定されたレジストリにメトリクスを登録する。
func NewCollector(reg prometheus.Registerer) *Collector {
	c := &Collector{
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "storefront_http_requests_total",
			Help: "HTTPリクエストの合計数（メソッド・ルート・ステータス別）",
		}, []string{"method", "path", "status"}),
		httpDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "storefront_http_request_duration_seconds",
			Help:    "HTTPリクエスト処理時間（秒）",
			Buckets: prometheus.DefBuckets,
		}),
		ordersCreated: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "storefront_orders_created_total",
			Help: "作成された注文の合計数",
		}),
		checkoutFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "storefront_checkout_failures_total",
			Help: "チェックアウトトランザクション失敗の合計数",
		}),
	}

	reg.MustRegister(
		c.httpRequests,
		c.httpDuration,
		c.ordersCreated,
		c.checkoutFailures,
	)

	return c
}

// RecordHTTPRequest はHTTPリクエスト1件の結果を記録する。
// pathには具体的なURLではなくルートパターンを渡すこと（カーディナリティ対策）。
func (c *Collector) RecordHTTPRequest(method, path string, status int, duration time.Duration) {
	c.httpRequests.WithLabelValues(method, path, strconv.Itoa(status)).Inc()
	c.httpDuration.Observe(duration.Seconds())
}

// RecordOrderCreated は注文作成成功を記録する。
func (c *Collector) RecordOrderCreated() {
	c.ordersCreated.Inc()
}

// RecordCheckoutFailure はチェックアウト失敗を記録する。
func (c *Collector) RecordCheckoutFailure() {
	c.checkoutFailures.Inc()
}

// Handler はPrometheusスクレイプ用のHTTPハンドラーを返す。
func Handler(gatherer prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})
}
