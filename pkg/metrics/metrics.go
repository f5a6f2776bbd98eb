package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics набор Prometheus метрик сервиса
type Metrics struct {
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	DBQueryDuration *prometheus.HistogramVec
	DBQueryErrors   *prometheus.CounterVec
	DBConnections   *prometheus.GaugeVec

	CapacityDecisions *prometheus.CounterVec
	SeatResolutions   *prometheus.CounterVec
	ReservationsMade  *prometheus.CounterVec
	RateLimitRejected *prometheus.CounterVec
}

// New регистрирует метрики в DefaultRegisterer (их отдает promhttp.Handler)
func New(serviceName string) *Metrics {
	return NewWithRegisterer(serviceName, prometheus.DefaultRegisterer)
}

// NewWithRegisterer регистрирует метрики в указанном реестре
func NewWithRegisterer(serviceName string, reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	constLabels := prometheus.Labels{"service": serviceName}

	return &Metrics{
		HTTPRequestsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name:        "http_requests_total",
			Help:        "Total number of HTTP requests",
			ConstLabels: constLabels,
		}, []string{"method", "path", "status"}),

		HTTPRequestDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "http_request_duration_seconds",
			Help:        "Duration of HTTP requests",
			Buckets:     prometheus.DefBuckets,
			ConstLabels: constLabels,
		}, []string{"method", "path", "status"}),

		DBQueryDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "db_query_duration_seconds",
			Help:        "Duration of database queries",
			Buckets:     []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1},
			ConstLabels: constLabels,
		}, []string{"operation"}),

		DBQueryErrors: factory.NewCounterVec(prometheus.CounterOpts{
			Name:        "db_query_errors_total",
			Help:        "Total number of failed database queries",
			ConstLabels: constLabels,
		}, []string{"operation"}),

		DBConnections: factory.NewGaugeVec(prometheus.GaugeOpts{
			Name:        "db_connections",
			Help:        "Database connection pool state",
			ConstLabels: constLabels,
		}, []string{"state"}),

		CapacityDecisions: factory.NewCounterVec(prometheus.CounterOpts{
			Name:        "capacity_decisions_total",
			Help:        "Capacity evaluations by result",
			ConstLabels: constLabels,
		}, []string{"result"}),

		SeatResolutions: factory.NewCounterVec(prometheus.CounterOpts{
			Name:        "seat_resolutions_total",
			Help:        "Seat availability resolutions by outcome",
			ConstLabels: constLabels,
		}, []string{"outcome"}),

		ReservationsMade: factory.NewCounterVec(prometheus.CounterOpts{
			Name:        "reservations_created_total",
			Help:        "Reservations created by channel",
			ConstLabels: constLabels,
		}, []string{"channel"}),

		RateLimitRejected: factory.NewCounterVec(prometheus.CounterOpts{
			Name:        "rate_limit_rejected_total",
			Help:        "Requests rejected by the rate limiter",
			ConstLabels: constLabels,
		}, []string{"path"}),
	}
}

// ObserveHTTPRequest записывает метрики HTTP запроса
func (m *Metrics) ObserveHTTPRequest(method, path string, status int, duration time.Duration) {
	if m == nil {
		return
	}
	code := strconv.Itoa(status)
	m.HTTPRequestsTotal.WithLabelValues(method, path, code).Inc()
	m.HTTPRequestDuration.WithLabelValues(method, path, code).Observe(duration.Seconds())
}

// ObserveDBQuery записывает длительность запроса к БД и ошибку (если была)
func (m *Metrics) ObserveDBQuery(operation string, duration time.Duration, err error) {
	if m == nil {
		return
	}
	m.DBQueryDuration.WithLabelValues(operation).Observe(duration.Seconds())
	if err != nil {
		m.DBQueryErrors.WithLabelValues(operation).Inc()
	}
}

// ObserveCapacityDecision учитывает решение о допуске бронирования
func (m *Metrics) ObserveCapacityDecision(canBook bool) {
	if m == nil {
		return
	}
	result := "denied"
	if canBook {
		result = "admitted"
	}
	m.CapacityDecisions.WithLabelValues(result).Inc()
}

// ObserveSeatResolution учитывает результат подбора места
func (m *Metrics) ObserveSeatResolution(outcome string) {
	if m == nil {
		return
	}
	m.SeatResolutions.WithLabelValues(outcome).Inc()
}

// ObserveReservationCreated учитывает созданное бронирование
func (m *Metrics) ObserveReservationCreated(channel string) {
	if m == nil {
		return
	}
	m.ReservationsMade.WithLabelValues(channel).Inc()
}

// ObserveRateLimited учитывает отклоненный лимитером запрос
func (m *Metrics) ObserveRateLimited(path string) {
	if m == nil {
		return
	}
	m.RateLimitRejected.WithLabelValues(path).Inc()
}
