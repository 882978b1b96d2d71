// Package metrics defines and registers all custom Prometheus metrics for
// the expense-system API. It is the single source of truth for metric names,
// labels, and help strings.
//
// Metrics register with the default Prometheus registry at import time via
// promauto; the router exposes them on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "expense"

// LoginsTotal counts login attempts.
// Label:
//   - result: "success" or "failure"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// ExpensesCreatedTotal counts newly recorded expenses.
// Label:
//   - category: the category name the expense was recorded under
var ExpensesCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "expenses_created_total",
		Help:      "Total number of expenses recorded, by category.",
	},
	[]string{"category"},
)

// DashboardRequestsTotal counts dashboard aggregate requests.
// Label:
//   - view: "dashboard" or "monthly_series"
var DashboardRequestsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "dashboard_requests_total",
		Help:      "Total number of dashboard aggregate requests, by view.",
	},
	[]string{"view"},
)

// DashboardRequestDuration measures how long assembling a dashboard view
// takes end-to-end, including all aggregate queries.
// Label:
//   - view: "dashboard" or "monthly_series"
var DashboardRequestDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "dashboard_request_duration_seconds",
		Help:      "Duration of dashboard view assembly from request to response payload.",
		Buckets:   prometheus.DefBuckets,
	},
	[]string{"view"},
)
