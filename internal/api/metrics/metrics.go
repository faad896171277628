// Package metrics defines and registers all custom Prometheus metrics for
// the realty API. It is the single source of truth for metric names, labels,
// and help strings; metrics register with the default registry at init.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "realty"

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

// AccountsCreatedTotal counts newly registered accounts.
// Label:
//   - role: initial role assigned at creation ("admin", "agent", "user")
var AccountsCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "accounts_created_total",
		Help:      "Total number of accounts created, by initial role.",
	},
	[]string{"role"},
)

// ListingsCreatedTotal counts newly created listings.
// Label:
//   - property_type: "residential" or "commercial"
var ListingsCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "listings_created_total",
		Help:      "Total number of listings created, by property type.",
	},
	[]string{"property_type"},
)

// PasswordChangesTotal counts successful password changes.
var PasswordChangesTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "password_changes_total",
		Help:      "Total number of successful password changes.",
	},
)
