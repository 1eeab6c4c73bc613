package http

import (
	"net/http"
	"time"

	"github.com/Dmorales2498/Entes-Stats/internal/stats"
	"github.com/charmbracelet/log"
)

// observeReport records serving metrics for one report request.
func (s *Server) observeReport(start time.Time) {
	s.Metrics.IncReportsServed()
	s.Metrics.ObserveReportDuration(time.Since(start).Seconds())
}

func (s *Server) TotalsReportHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		defer s.observeReport(time.Now())

		playerID, err := idParam(r, "player_id")
		if err != nil {
			http.Error(w, "Invalid 'player_id' parameter", http.StatusBadRequest)
			return
		}
		totals, err := s.Engine.Totals(playerID)
		if err != nil {
			http.Error(w, "Failed to compute totals", storeErrStatus(err))
			log.Error("Failed to compute totals", "error", err, "playerID", playerID)
			return
		}
		writeJSON(w, http.StatusOK, totals)
	}
}

func (s *Server) LeaderboardReportHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		defer s.observeReport(time.Now())

		metric, err := stats.ParseMetric(r.URL.Query().Get("metric"))
		if err != nil {
			http.Error(w, "Invalid 'metric' parameter", http.StatusBadRequest)
			return
		}
		entries, err := s.Engine.TopBy(metric, limitParam(r))
		if err != nil {
			http.Error(w, "Failed to compute leaderboard", http.StatusInternalServerError)
			log.Error("Failed to compute leaderboard", "error", err, "metric", metric)
			return
		}
		writeJSON(w, http.StatusOK, entries)
	}
}

func (s *Server) TeamRecordReportHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		defer s.observeReport(time.Now())

		record, err := s.Engine.TeamRecord(dateRangeParams(r))
		if err != nil {
			http.Error(w, "Failed to compute team record", http.StatusInternalServerError)
			log.Error("Failed to compute team record", "error", err)
			return
		}
		writeJSON(w, http.StatusOK, record)
	}
}

func (s *Server) MatchHistoryReportHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		defer s.observeReport(time.Now())

		summaries, err := s.Engine.MatchHistory(dateRangeParams(r), limitParam(r))
		if err != nil {
			http.Error(w, "Failed to compute match history", http.StatusInternalServerError)
			log.Error("Failed to compute match history", "error", err)
			return
		}
		writeJSON(w, http.StatusOK, summaries)
	}
}

func (s *Server) NotifyLeaderboardHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		isDryRun := isDryRunFromContext(r)

		metric, err := stats.ParseMetric(r.URL.Query().Get("metric"))
		if err != nil {
			http.Error(w, "Invalid 'metric' parameter", http.StatusBadRequest)
			return
		}
		entries, err := s.Engine.TopBy(metric, limitParam(r))
		if err != nil {
			http.Error(w, "Failed to compute leaderboard", http.StatusInternalServerError)
			log.Error("Failed to compute leaderboard", "error", err, "metric", metric)
			return
		}
		if err := s.Notifier.SendLeaderboard(metric, entries, isDryRun); err != nil {
			http.Error(w, "Failed to send leaderboard", http.StatusInternalServerError)
			log.Error("Failed to send leaderboard", "error", err, "metric", metric)
			return
		}
		w.Write([]byte("OK"))
	}
}

func (s *Server) NotifyRecordHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		isDryRun := isDryRunFromContext(r)

		record, err := s.Engine.TeamRecord(dateRangeParams(r))
		if err != nil {
			http.Error(w, "Failed to compute team record", http.StatusInternalServerError)
			log.Error("Failed to compute team record", "error", err)
			return
		}
		if err := s.Notifier.SendTeamRecord(record, isDryRun); err != nil {
			http.Error(w, "Failed to send team record", http.StatusInternalServerError)
			log.Error("Failed to send team record", "error", err)
			return
		}
		w.Write([]byte("OK"))
	}
}
