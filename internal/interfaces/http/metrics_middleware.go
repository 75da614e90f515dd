package http

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	httpRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "tesoreria_http_requests_total",
		Help: "Total de peticiones HTTP por ruta, método y status.",
	}, []string{"route", "method", "status"})

	httpRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "tesoreria_http_request_duration_seconds",
		Help:    "Duración de las peticiones HTTP.",
		Buckets: prometheus.DefBuckets,
	}, []string{"route", "method"})

	documentGateRejections = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "tesoreria_document_gate_rejections_total",
		Help: "Rechazos del gate de números de documento por motivo.",
	}, []string{"reason"}) // duplicate | out_of_range
)

// CountGateRejection incrementa el contador de rechazos del gate.
func CountGateRejection(reason string) {
	documentGateRejections.WithLabelValues(reason).Inc()
}

// MetricsMiddleware instrumenta cada petición con contador y latencia.
// Usa la plantilla de la ruta (ej. /api/transactions/:id) para no explotar
// la cardinalidad con IDs.
func MetricsMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()

		route := c.Route().Path
		method := c.Method()
		status := c.Response().StatusCode()
		if err != nil {
			if fe, ok := err.(*fiber.Error); ok {
				status = fe.Code
			}
		}
		httpRequestsTotal.WithLabelValues(route, method, strconv.Itoa(status)).Inc()
		httpRequestDuration.WithLabelValues(route, method).Observe(time.Since(start).Seconds())
		return err
	}
}

// MetricsHandler expone /metrics en formato Prometheus.
func MetricsHandler() fiber.Handler {
	return adaptor.HTTPHandler(promhttp.Handler())
}
