package httpadapter

import (
	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/common/adaptor"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// PrometheusHandler serves the gatherer in the text exposition format.
func PrometheusHandler(g prometheus.Gatherer) app.HandlerFunc {
	return adaptor.HertzHandler(promhttp.HandlerFor(g, promhttp.HandlerOpts{}))
}
