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

type Server struct {
	Store          roster.Store
	Engine         *stats.Engine
	Metrics        metrics.Metrics
	MetricsHandler http.Handler
	Cfg            config.Config
	Notifier       notifier.Notifier
	Photos         *photos.Store
	Auth           *auth.Resolver
	Router         *http.ServeMux
	pubsub         pubsub.PubSubClient
	validate       *validator.Validate
}
