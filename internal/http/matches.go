package http

import (
	"net/http"

	"github.com/Dmorales2498/Entes-Stats/internal/pubsub"
	"github.com/Dmorales2498/Entes-Stats/internal/roster"
	"github.com/Dmorales2498/Entes-Stats/internal/stats"
	"github.com/charmbracelet/log"
)

type createMatchRequest struct {
	Date      string  `json:"date" validate:"required,datetime=2006-01-02"`
	Opponent  *string `json:"opponent"`
	IsHome    bool    `json:"is_home"`
	HomeScore *int    `json:"home_score" validate:"omitempty,min=0"`
	AwayScore *int    `json:"away_score" validate:"omitempty,min=0"`
}

func (s *Server) ListMatchesHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		matches, err := s.Store.ListMatches(dateRangeParams(r))
		if err != nil {
			http.Error(w, "Failed to get matches", http.StatusInternalServerError)
			log.Error("Failed to get matches from store", "error", err)
			return
		}
		writeJSON(w, http.StatusOK, matches)
	}
}

func (s *Server) CreateMatchHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req createMatchRequest
		if !s.decodeAndValidate(w, r, &req) {
			return
		}
		isDryRun := isDryRunFromContext(r)

		match, err := s.Store.CreateMatch(req.Date, req.Opponent, req.IsHome, req.HomeScore, req.AwayScore)
		if err != nil {
			http.Error(w, "Failed to create match", http.StatusInternalServerError)
			log.Error("Failed to create match", "error", err, "date", req.Date)
			return
		}
		s.Metrics.IncMatchesRecorded()
		log.Info("Match created", "id", match.ID, "date", match.Date)

		summary := stats.Summarize(*match)
		if summary.Outcome != stats.OutcomePending {
			s.notifyResult(match, summary, isDryRun)
		}

		writeJSON(w, http.StatusCreated, match)
	}
}

// notifyResult publishes the recorded result and posts it to the team
// channel. Failures are logged but never fail the originating request.
func (s *Server) notifyResult(match *roster.Match, summary stats.MatchSummary, isDryRun bool) {
	event := pubsub.MatchRecordedEvent{
		MatchID: match.ID,
		Date:    match.Date,
		Outcome: string(summary.Outcome),
	}
	if err := s.pubsub.SendMessage(string(pubsub.EventMatchRecorded), event); err != nil {
		log.Error("Failed to publish match recorded event", "error", err, "matchID", match.ID)
	}

	record, err := s.Engine.TeamRecord(roster.DateRange{})
	if err != nil {
		log.Error("Failed to compute team record for notification", "error", err)
		return
	}
	if err := s.Notifier.SendResultNotification(match, summary, record, isDryRun); err != nil {
		log.Error("Failed to send result notification", "error", err, "matchID", match.ID)
	}
}

func (s *Server) DeleteMatchHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := idParam(r, "id")
		if err != nil {
			http.Error(w, "Invalid 'id' parameter", http.StatusBadRequest)
			return
		}

		if err := s.Store.DeleteMatch(id); err != nil {
			http.Error(w, "Failed to delete match", storeErrStatus(err))
			log.Error("Failed to delete match", "error", err, "id", id)
			return
		}
		log.Info("Match deleted with all stat entries", "id", id)
		w.WriteHeader(http.StatusOK)
	}
}
