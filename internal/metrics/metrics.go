package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "footprint"

var (
	emissionsComputed = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "emissions",
		Name:      "computations_total",
		Help:      "Number of emissions totals computed.",
	})

	tipsGenerated = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "tips",
		Name:      "generated_total",
		Help:      "Number of tips persisted, by category.",
	}, []string{"category"})

	goalsAchieved = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "goals",
		Name:      "achieved_total",
		Help:      "Number of goals that moved from pending to achieved.",
	})

	reportsGenerated = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "reports",
		Name:      "generated_total",
		Help:      "Number of reports generated, by whether the document was archived.",
	}, []string{"archived"})

	httpDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "http",
		Name:      "request_duration_seconds",
		Help:      "HTTP request latency by route pattern and status code.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"method", "route", "status"})
)

func init() {
	prometheus.MustRegister(emissionsComputed, tipsGenerated, goalsAchieved, reportsGenerated, httpDuration)
}

func RecordEmissionsComputed() {
	emissionsComputed.Inc()
}

func RecordTipGenerated(category string) {
	tipsGenerated.WithLabelValues(category).Inc()
}

func RecordGoalsAchieved(n int) {
	if n <= 0 {
		return
	}
	goalsAchieved.Add(float64(n))
}

func RecordReportGenerated(archived bool) {
	reportsGenerated.WithLabelValues(strconv.FormatBool(archived)).Inc()
}

// ObserveHTTPRequest records one served request. route is the matched mux
// pattern, not the raw path, to keep label cardinality bounded.
func ObserveHTTPRequest(method, route string, status int, elapsed time.Duration) {
	if route == "" {
		route = "unmatched"
	}
	httpDuration.WithLabelValues(method, route, strconv.Itoa(status)).Observe(elapsed.Seconds())
}
