// Package metrics exposes the site's prometheus collectors. The
// interesting signals are the admin ones: sign-in outcomes (watching
// for rate-limit storms or a misconfigured hash) and mutation counts
// per entity and action.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics bundles the collectors; construct once in main and inject.
type Metrics struct {
	SignIns   *prometheus.CounterVec
	Mutations *prometheus.CounterVec
}

// New registers the collectors on reg.  The server passes the default
// registerer; tests pass a fresh registry so cases stay independent.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		SignIns: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "bandland_signin_attempts_total",
			Help: "Admin sign-in attempts by outcome code.",
		}, []string{"outcome"}),
		Mutations: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "bandland_admin_mutations_total",
			Help: "Successful admin mutations by entity and action.",
		}, []string{"entity", "action"}),
	}
}

// Handler returns the /metrics scrape endpoint.
func Handler() http.Handler {
	return promhttp.Handler()
}
