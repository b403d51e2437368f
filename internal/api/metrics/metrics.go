// Package metrics defines the custom Prometheus metrics of the inventory
// API. Metrics are registered with the default registry on package load.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "inventory"

// ── Auth metrics ──────────────────────────────────────────────────────────────

// LoginAttempts counts login attempts.
// Label:
//   - result: "success", "invalid" or "inactive"
var LoginAttempts = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "login_attempts_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// ── Order metrics ─────────────────────────────────────────────────────────────

// OrdersCreatedTotal counts orders placed successfully.
var OrdersCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "orders_created_total",
		Help:      "Total number of orders created.",
	},
)

// OrdersCancelledTotal counts cancelled orders.
var OrdersCancelledTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "orders_cancelled_total",
		Help:      "Total number of orders cancelled.",
	},
)

// OrderRollbacksTotal counts order creations that had to give stock back.
var OrderRollbacksTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "order_rollbacks_total",
		Help:      "Total number of order creations rolled back after a partial stock deduction.",
	},
)

// ── Stock movement metrics ────────────────────────────────────────────────────

// StockMovementsTotal counts persisted stock movements.
// Label:
//   - type: "increase" or "decrease"
var StockMovementsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "stock_movements_total",
		Help:      "Total number of stock movements recorded, by type.",
	},
	[]string{"type"},
)

// StockMovementErrorsTotal counts movements the recorder failed to persist.
var StockMovementErrorsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "stock_movement_errors_total",
		Help:      "Total number of stock movements that could not be recorded.",
	},
)

// StockQueueDepth tracks movements waiting in each dispatcher worker channel.
var StockQueueDepth = promauto.NewGaugeVec(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "stock_queue_depth",
		Help:      "Current number of stock movements pending in each dispatcher worker channel.",
	},
	[]string{"worker_id"},
)

// StockProcessingDuration measures how long recording one movement takes.
// Label:
//   - result: "ok" or "error"
var StockProcessingDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "stock_processing_duration_seconds",
		Help:      "Duration of stock movement recording from dequeue to persistence.",
		Buckets:   prometheus.DefBuckets,
	},
	[]string{"result"},
)

// LowStockProducts is the number of active products at or below the low
// stock threshold, refreshed by the scheduled sweep.
var LowStockProducts = promauto.NewGauge(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "low_stock_products",
		Help:      "Number of products at or below the low stock threshold.",
	},
)

// ── Dashboard metrics ─────────────────────────────────────────────────────────

// DashboardCacheTotal counts dashboard cache lookups.
// Label:
//   - result: "hit" or "miss"
var DashboardCacheTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "dashboard_cache_total",
		Help:      "Total number of dashboard cache lookups, by result.",
	},
	[]string{"result"},
)
