package api

import (
	"sync"

	promclient "github.com/prometheus/client_golang/prometheus"

	prom "github.com/S3b4sB0t3r0/evg-server/internal/infra/components/prometheus"
)

var (
	metricsOnce sync.Once
	reqCounter  *promclient.CounterVec
	reqLatency  *promclient.HistogramVec
)

func initHTTPMetrics(pc *prom.Component) {
	metricsOnce.Do(func() {
		reqCounter = pc.NewCounter("http_requests_total",
			"HTTP requests by method, route and status.",
			[]string{"method", "route", "status"})
		reqLatency = pc.NewHistogram("http_request_duration_seconds",
			"HTTP request latency by method and route.",
			[]string{"method", "route"},
			promclient.DefBuckets)
	})
}

func httpRequests(pc *prom.Component) *promclient.CounterVec {
	initHTTPMetrics(pc)
	return reqCounter
}

func httpLatency(pc *prom.Component) *promclient.HistogramVec {
	initHTTPMetrics(pc)
	return reqLatency
}
