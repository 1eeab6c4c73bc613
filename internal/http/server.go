package http

import (
	"net/http"

	"github.com/Dmorales2498/Entes-Stats/internal/auth"
	"github.com/Dmorales2498/Entes-Stats/internal/config"
	"github.com/Dmorales2498/Entes-Stats/internal/metrics"
	"github.com/Dmorales2498/Entes-Stats/internal/notifier"
	"github.com/Dmorales2498/Entes-Stats/internal/photos"
	"github.com/Dmorales2498/Entes-Stats/internal/pubsub"
	"github.com/Dmorales2498/Entes-Stats/internal/roster"
	"github.com/Dmorales2498/Entes-Stats/internal/stats"
	"github.com/go-playground/validator/v10"
)

func NewServer(store roster.Store, engine *stats.Engine, metricsSvc metrics.Metrics, metricsHandler http.Handler, cfg config.Config, notifier notifier.Notifier, photoStore *photos.Store, resolver *auth.Resolver, pubsub pubsub.PubSubClient) *Server {
	server := &Server{
		Store:          store,
		Engine:         engine,
		Metrics:        metricsSvc,
		MetricsHandler: metricsHandler,
		Cfg:            cfg,
		Notifier:       notifier,
		Photos:         photoStore,
		Auth:           resolver,
		Router:         http.NewServeMux(),
		pubsub:         pubsub,
		validate:       validator.New(validator.WithRequiredStructEnabled()),
	}

	server.routes()
	return server
}

func (s *Server) routes() {
	// All handlers are wrapped with middleware using the Chain helper.
	// Read endpoints require any resolved role, mutations require admin.
	s.Router.Handle("/metrics", s.MetricsHandler)
	s.Router.Handle("/health", Chain(s.HealthCheckHandler(), paramsMiddleware))
	s.Router.Handle("/clear", Chain(s.ClearStoreHandler(), paramsMiddleware, s.authMiddleware, requireAdmin))

	s.Router.Handle("/players", Chain(s.ListPlayersHandler(), paramsMiddleware, s.authMiddleware, requireViewer))
	s.Router.Handle("/players/create", Chain(s.CreatePlayerHandler(), paramsMiddleware, s.authMiddleware, requireAdmin))
	s.Router.Handle("/players/update", Chain(s.UpdatePlayerHandler(), paramsMiddleware, s.authMiddleware, requireAdmin))
	s.Router.Handle("/players/delete", Chain(s.DeletePlayerHandler(), paramsMiddleware, s.authMiddleware, requireAdmin))
	s.Router.Handle("/players/photo", Chain(s.UploadPhotoHandler(), paramsMiddleware, s.authMiddleware, requireAdmin))

	s.Router.Handle("/matches", Chain(s.ListMatchesHandler(), paramsMiddleware, s.authMiddleware, requireViewer))
	s.Router.Handle("/matches/create", Chain(s.CreateMatchHandler(), paramsMiddleware, s.authMiddleware, requireAdmin))
	s.Router.Handle("/matches/delete", Chain(s.DeleteMatchHandler(), paramsMiddleware, s.authMiddleware, requireAdmin))

	s.Router.Handle("/stats/add", Chain(s.AddStatEntryHandler(), paramsMiddleware, s.authMiddleware, requireAdmin))
	s.Router.Handle("/stats/update", Chain(s.UpdateStatEntryHandler(), paramsMiddleware, s.authMiddleware, requireAdmin))
	s.Router.Handle("/stats/delete", Chain(s.DeleteStatEntryHandler(), paramsMiddleware, s.authMiddleware, requireAdmin))
	s.Router.Handle("/stats/player", Chain(s.PlayerStatsHandler(), paramsMiddleware, s.authMiddleware, requireViewer))
	s.Router.Handle("/stats/match", Chain(s.MatchStatsHandler(), paramsMiddleware, s.authMiddleware, requireViewer))

	s.Router.Handle("/reports/totals", Chain(s.TotalsReportHandler(), paramsMiddleware, s.authMiddleware, requireViewer))
	s.Router.Handle("/reports/leaderboard", Chain(s.LeaderboardReportHandler(), paramsMiddleware, s.authMiddleware, requireViewer))
	s.Router.Handle("/reports/record", Chain(s.TeamRecordReportHandler(), paramsMiddleware, s.authMiddleware, requireViewer))
	s.Router.Handle("/reports/history", Chain(s.MatchHistoryReportHandler(), paramsMiddleware, s.authMiddleware, requireViewer))

	s.Router.Handle("/notify/leaderboard", Chain(s.NotifyLeaderboardHandler(), paramsMiddleware, s.authMiddleware, requireAdmin))
	s.Router.Handle("/notify/record", Chain(s.NotifyRecordHandler(), paramsMiddleware, s.authMiddleware, requireAdmin))
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.Router.ServeHTTP(w, r)
}
