package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var _ Metrics = (*Service)(nil)

// NewMetricsHandler returns an http.Handler for the given Gatherer.
// If no gatherer is provided, it uses the default one.
func NewMetricsHandler(gatherer ...prometheus.Gatherer) http.Handler {
	gath := prometheus.DefaultGatherer
	if len(gatherer) > 0 {
		gath = gatherer[0]
	}
	return promhttp.HandlerFor(gath, promhttp.HandlerOpts{})
}

// NewService creates and registers the Prometheus metrics.
// If no registerer is provided, it uses the default Prometheus registerer.
func NewService(registerer ...prometheus.Registerer) *Service {
	reg := prometheus.DefaultRegisterer
	if len(registerer) > 0 {
		reg = registerer[0]
	}

	s := &Service{
		MatchesRecorded: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "entes_matches_recorded_total",
			Help: "The total number of matches recorded.",
		}),
		StatEntriesRecorded: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "entes_stat_entries_recorded_total",
			Help: "The total number of player stat entries recorded.",
		}),
		PlayersDeleted: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "entes_players_deleted_total",
			Help: "The total number of players deleted (with cascaded stats).",
		}),
		ReportsServed: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "entes_reports_served_total",
			Help: "The total number of report queries served (totals, rankings, record, history).",
		}),
		ReportDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "entes_report_duration_seconds",
			Help:    "The duration of individual report computations.",
			Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		}),
		SlackNotifSent: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "entes_slack_notifications_sent_total",
			Help: "The total number of Slack notifications successfully sent.",
		}),
		SlackNotifFailed: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "entes_slack_notifications_failed_total",
			Help: "The total number of Slack notifications that failed to send.",
		}),
		StartupTimeSeconds: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "entes_startup_duration_seconds",
			Help: "The duration of the application startup in seconds.",
		}),
	}

	reg.MustRegister(
		s.MatchesRecorded,
		s.StatEntriesRecorded,
		s.PlayersDeleted,
		s.ReportsServed,
		s.ReportDuration,
		s.SlackNotifSent,
		s.SlackNotifFailed,
		s.StartupTimeSeconds,
	)

	return s
}

func (s *Service) IncMatchesRecorded() {
	s.MatchesRecorded.Inc()
}

func (s *Service) IncStatEntriesRecorded() {
	s.StatEntriesRecorded.Inc()
}

func (s *Service) IncPlayersDeleted() {
	s.PlayersDeleted.Inc()
}

func (s *Service) IncReportsServed() {
	s.ReportsServed.Inc()
}

func (s *Service) ObserveReportDuration(duration float64) {
	s.ReportDuration.Observe(duration)
}

func (s *Service) IncSlackNotifSent() {
	s.SlackNotifSent.Inc()
}

func (s *Service) IncSlackNotifFailed() {
	s.SlackNotifFailed.Inc()
}

func (s *Service) SetStartupTime(duration float64) {
	s.StartupTimeSeconds.Set(duration)
}
