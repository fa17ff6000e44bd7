package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Database metrics
var (
	// DBQueriesTotal tracks the total number of database queries
	DBQueriesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "db_queries_total",
			Help: "Total number of database queries executed",
		},
		[]string{"query_type", "table", "status"},
	)

	// DBQueryDuration tracks the duration of database queries
	DBQueryDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "db_query_duration_seconds",
			Help:    "Duration of database queries in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"query_type", "table"},
	)

	// DBConnectionsOpen tracks the number of open database connections
	DBConnectionsOpen = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "db_connections_open",
			Help: "Number of established connections both in use and idle",
		},
	)

	// DBConnectionsInUse tracks the number of connections currently in use
	DBConnectionsInUse = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "db_connections_in_use",
			Help: "Number of connections currently in use",
		},
	)

	// DBConnectionsIdle tracks the number of idle connections
	DBConnectionsIdle = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "db_connections_idle",
			Help: "Number of idle connections",
		},
	)
)

// Upstream weather API metrics
var (
	// WeatherRequestsTotal tracks calls to the OpenWeatherMap API by outcome
	WeatherRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "weather_api_requests_total",
			Help: "Total number of upstream weather API requests",
		},
		[]string{"status"},
	)

	// WeatherRequestDuration tracks the duration of upstream weather API calls
	WeatherRequestDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "weather_api_request_duration_seconds",
			Help:    "Duration of upstream weather API requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
	)
)

// HTTP handler metrics
var (
	// HTTPRequestsTotal tracks handled HTTP requests by route and status
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests handled",
		},
		[]string{"route", "method", "status"},
	)

	// HTTPRequestDuration tracks request handling duration by route
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Duration of HTTP request handling in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"route"},
	)
)

var (
	// AppInfo provides static information about the application
	AppInfo = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "skycast_app_info",
			Help: "Application information (always 1)",
		},
	)

	// AppStartTime records when the application started
	AppStartTime = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "skycast_app_start_time_seconds",
			Help: "Unix timestamp of when the application started",
		},
	)
)

func init() {
	// Set app info to 1 (always visible)
	AppInfo.Set(1)
	// Record app start time
	AppStartTime.SetToCurrentTime()
}

// RecordDBQuery records a database query execution
func RecordDBQuery(queryType, table string, duration time.Duration, err error) {
	status := "success"
	if err != nil {
		status = "error"
	}
	DBQueriesTotal.WithLabelValues(queryType, table, status).Inc()
	DBQueryDuration.WithLabelValues(queryType, table).Observe(duration.Seconds())
}

// RecordWeatherRequest records one upstream weather API call.
// statusCode 0 means the request never completed (network failure).
func RecordWeatherRequest(statusCode int, duration time.Duration) {
	status := "network_error"
	if statusCode > 0 {
		status = strconv.Itoa(statusCode)
	}
	WeatherRequestsTotal.WithLabelValues(status).Inc()
	WeatherRequestDuration.Observe(duration.Seconds())
}

// RecordHTTPRequest records one handled HTTP request
func RecordHTTPRequest(route, method string, statusCode int, duration time.Duration) {
	HTTPRequestsTotal.WithLabelValues(route, method, strconv.Itoa(statusCode)).Inc()
	HTTPRequestDuration.WithLabelValues(route).Observe(duration.Seconds())
}

// UpdateDBConnectionStats updates database connection pool statistics
func UpdateDBConnectionStats(open, inUse, idle int) {
	DBConnectionsOpen.Set(float64(open))
	DBConnectionsInUse.Set(float64(inUse))
	DBConnectionsIdle.Set(float64(idle))
}
