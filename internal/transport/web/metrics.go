package web

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/Mexidense/la-mar-sala-resort/internal/resort"
)

// Metrics holds the Prometheus instruments for the booking endpoints. Each
// server owns its registry so tests can build servers independently.
type Metrics struct {
	registry *prometheus.Registry

	CheckIns    *prometheus.CounterVec
	CheckOuts   prometheus.Counter
	RoomChanges prometheus.Counter
}

func NewMetrics() *Metrics {
	registry := prometheus.NewRegistry()
	factory := promauto.With(registry)

	return &Metrics{
		registry: registry,
		CheckIns: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "resort_check_ins_total",
			Help: "Check-in attempts by outcome status",
		}, []string{"status"}),
		CheckOuts: factory.NewCounter(prometheus.CounterOpts{
			Name: "resort_check_outs_total",
			Help: "Early check-outs applied",
		}),
		RoomChanges: factory.NewCounter(prometheus.CounterOpts{
			Name: "resort_room_changes_total",
			Help: "Bookings moved between rooms",
		}),
	}
}

func (m *Metrics) ObserveCheckIn(status resort.CheckInStatus) {
	m.CheckIns.WithLabelValues(status.String()).Inc()
}

func (m *Metrics) Handler() http.Handler {
	//nolint:exhaustruct
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
