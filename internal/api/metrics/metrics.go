// Package metrics defines and registers the custom Prometheus metrics of the
// vehicles API. It is the single source of truth for metric names, labels
// and help strings. Metrics register with the default registry on import.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "vehicles_api"

// LoginsTotal counts login attempts.
// Label:
//   - result: "success" or "failure"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of administrator login attempts, by result.",
	},
	[]string{"result"},
)

// AdministratorsCreatedTotal counts registered administrators.
// Label:
//   - role: "Adm" or "Editor"
var AdministratorsCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "administrators_created_total",
		Help:      "Total number of administrators created, by role.",
	},
	[]string{"role"},
)

// VehicleMutationsTotal counts successful vehicle writes.
// Label:
//   - operation: "create", "update" or "delete"
var VehicleMutationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "vehicle_mutations_total",
		Help:      "Total number of vehicles created, updated or deleted.",
	},
	[]string{"operation"},
)
