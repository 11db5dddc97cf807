package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Collector tracks wallet activity on a private registry so tests can run
// several instances without duplicate registration panics.
type Collector struct {
	registry            *prometheus.Registry
	walletOperations    *prometheus.CounterVec
	walletBalance       prometheus.Gauge
	notificationsActive prometheus.Gauge
	loginAttempts       *prometheus.CounterVec
}

func NewCollector() *Collector {
	registry := prometheus.NewRegistry()

	return &Collector{
		registry: registry,
		walletOperations: promauto.With(registry).NewCounterVec(prometheus.CounterOpts{
			Name: "wallet_operations_total",
			Help: "Wallet mutations by operation and outcome",
		}, []string{"operation", "outcome"}),
		walletBalance: promauto.With(registry).NewGauge(prometheus.GaugeOpts{
			Name: "wallet_balance",
			Help: "Current wallet balance",
		}),
		notificationsActive: promauto.With(registry).NewGauge(prometheus.GaugeOpts{
			Name: "notifications_active",
			Help: "Number of stored notifications",
		}),
		loginAttempts: promauto.With(registry).NewCounterVec(prometheus.CounterOpts{
			Name: "login_attempts_total",
			Help: "Login attempts by outcome",
		}, []string{"outcome"}),
	}
}

func (c *Collector) RecordOperation(operation string, success bool) {
	if c == nil {
		return
	}
	outcome := "success"
	if !success {
		outcome = "failure"
	}
	c.walletOperations.WithLabelValues(operation, outcome).Inc()
}

func (c *Collector) SetBalance(balance float64) {
	if c == nil {
		return
	}
	c.walletBalance.Set(balance)
}

func (c *Collector) SetNotificationCount(n int) {
	if c == nil {
		return
	}
	c.notificationsActive.Set(float64(n))
}

func (c *Collector) RecordLogin(success bool) {
	if c == nil {
		return
	}
	outcome := "success"
	if !success {
		outcome = "failure"
	}
	c.loginAttempts.WithLabelValues(outcome).Inc()
}

func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{})
}
