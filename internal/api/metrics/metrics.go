// Package metrics defines and registers the custom Prometheus metrics of the
// storefront API. It is the single source of truth for metric names, labels,
// and help strings.
//
// Metrics are registered with the default Prometheus registry on package
// initialisation (promauto) and served by the /metrics route.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "storefront"

// ── Account metrics ───────────────────────────────────────────────────────────

// UsersRegisteredTotal counts successful registrations.
// Label:
//   - role: "user" or "admin"
var UsersRegisteredTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "users_registered_total",
		Help:      "Total number of registered users, by role.",
	},
	[]string{"role"},
)

// LoginsTotal counts login attempts.
// Label:
//   - result: "ok" or "rejected"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, labelled by result (ok/rejected).",
	},
	[]string{"result"},
)

// ── Catalog and order metrics ─────────────────────────────────────────────────

// ProductsAddedTotal counts products added to the catalog.
var ProductsAddedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "products_added_total",
		Help:      "Total number of products added to the catalog.",
	},
)

// OrdersPlacedTotal counts order requests.
// Label:
//   - result: "ok", "duplicate" (idempotency key replayed) or "error"
var OrdersPlacedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "orders_placed_total",
		Help:      "Total number of order requests, labelled by result.",
	},
	[]string{"result"},
)

// OrderedItemsTotal sums the quantity of every placed order.
var OrderedItemsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "ordered_items_total",
		Help:      "Total quantity of items across all placed orders.",
	},
)

// ── Export metrics ────────────────────────────────────────────────────────────

// ExportsTotal counts generated export files.
// Labels:
//   - report: "inventario" or "reporte_ventas"
//   - format: "xlsx" or "csv"
var ExportsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "exports_total",
		Help:      "Total number of generated export files, by report and format.",
	},
	[]string{"report", "format"},
)

// ExportDuration measures how long building an export file takes.
// Label:
//   - report: "inventario" or "reporte_ventas"
var ExportDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "export_duration_seconds",
		Help:      "Duration of export generation, from query to rendered file.",
		Buckets:   prometheus.DefBuckets, // .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10
	},
	[]string{"report"},
)
