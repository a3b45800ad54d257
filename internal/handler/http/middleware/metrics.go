package middleware

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var geoGateDecisions = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "geo_gate_decisions_total",
		Help: "Geography gate decisions by outcome and requester country",
	},
	[]string{"decision", "country"},
)

// recordDecision records one gate decision. The country label is the
// header value, bounded by the ISO country-code space; an absent header is
// recorded as "none".
func recordDecision(decision, country string) {
	if country == "" {
		country = "none"
	}
	geoGateDecisions.WithLabelValues(decision, country).Inc()
}
