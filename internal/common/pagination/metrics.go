package pagination

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RequestsTotal counts listing page requests.
	// Labels: status (HTTP status code), page_range (page bucket: 1-10, 11-50, etc.)
	RequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "listing_pagination_requests_total",
			Help: "Total number of paginated listing requests",
		},
		[]string{"status", "page_range"},
	)

	// ErrorsTotal counts pagination errors by type.
	// Labels: type (out_of_range, upstream)
	ErrorsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "listing_pagination_errors_total",
			Help: "Total number of pagination errors",
		},
		[]string{"type"},
	)

	// TotalCount tracks the current number of eligible articles as seen by
	// the most recent full listing query.
	TotalCount = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "listing_articles_total",
			Help: "Eligible article count from the most recent listing query",
		},
	)
)

// RecordRequest records a listing page request.
func RecordRequest(statusCode, page int) {
	RequestsTotal.WithLabelValues(fmt.Sprintf("%d", statusCode), pageRangeBucket(page)).Inc()
}

// RecordError records a pagination error.
// errorType should be one of: "out_of_range", "upstream".
func RecordError(errorType string) {
	ErrorsTotal.WithLabelValues(errorType).Inc()
}

// UpdateTotalCount updates the eligible article count gauge.
func UpdateTotalCount(count int) {
	TotalCount.Set(float64(count))
}

// pageRangeBucket returns the page range bucket for a page number, keeping
// metric label cardinality bounded.
func pageRangeBucket(page int) string {
	switch {
	case page <= 10:
		return "1-10"
	case page <= 50:
		return "11-50"
	case page <= 100:
		return "51-100"
	default:
		return "100+"
	}
}
