package http

import (
	"net/http"

	"github.com/Dmorales2498/Entes-Stats/internal/pubsub"
	"github.com/Dmorales2498/Entes-Stats/internal/roster"
	"github.com/charmbracelet/log"
)

type addStatEntryRequest struct {
	PlayerID    int64 `json:"player_id" validate:"required"`
	MatchID     int64 `json:"match_id" validate:"required"`
	Goals       int   `json:"goals" validate:"min=0"`
	Assists     int   `json:"assists" validate:"min=0"`
	Appearances *int  `json:"appearances" validate:"omitempty,min=0"`
	Minutes     *int  `json:"minutes" validate:"omitempty,min=0"`
}

type updateStatEntryRequest struct {
	ID          int64 `json:"id" validate:"required"`
	Goals       int   `json:"goals" validate:"min=0"`
	Assists     int   `json:"assists" validate:"min=0"`
	Appearances *int  `json:"appearances" validate:"omitempty,min=0"`
}

func (s *Server) AddStatEntryHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req addStatEntryRequest
		if !s.decodeAndValidate(w, r, &req) {
			return
		}

		entry, err := s.Store.AddStatEntry(roster.StatInput{
			PlayerID:    req.PlayerID,
			MatchID:     req.MatchID,
			Goals:       req.Goals,
			Assists:     req.Assists,
			Appearances: req.Appearances,
			Minutes:     req.Minutes,
		})
		if err != nil {
			http.Error(w, "Failed to add stat entry", storeErrStatus(err))
			log.Error("Failed to add stat entry", "error", err, "playerID", req.PlayerID, "matchID", req.MatchID)
			return
		}
		s.Metrics.IncStatEntriesRecorded()
		s.publishStatsUpdated(entry.PlayerID, entry.MatchID)
		log.Info("Stat entry added", "id", entry.ID, "playerID", entry.PlayerID, "matchID", entry.MatchID)
		writeJSON(w, http.StatusCreated, entry)
	}
}

func (s *Server) UpdateStatEntryHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req updateStatEntryRequest
		if !s.decodeAndValidate(w, r, &req) {
			return
		}

		entry, err := s.Store.UpdateStatEntry(req.ID, req.Goals, req.Assists, req.Appearances)
		if err != nil {
			http.Error(w, "Failed to update stat entry", storeErrStatus(err))
			log.Error("Failed to update stat entry", "error", err, "id", req.ID)
			return
		}
		s.publishStatsUpdated(entry.PlayerID, entry.MatchID)
		writeJSON(w, http.StatusOK, entry)
	}
}

func (s *Server) DeleteStatEntryHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := idParam(r, "id")
		if err != nil {
			http.Error(w, "Invalid 'id' parameter", http.StatusBadRequest)
			return
		}

		entry, err := s.Store.GetStatEntry(id)
		if err != nil {
			http.Error(w, "Failed to delete stat entry", storeErrStatus(err))
			return
		}
		if err := s.Store.DeleteStatEntry(id); err != nil {
			http.Error(w, "Failed to delete stat entry", storeErrStatus(err))
			log.Error("Failed to delete stat entry", "error", err, "id", id)
			return
		}
		s.publishStatsUpdated(entry.PlayerID, entry.MatchID)
		log.Info("Stat entry deleted", "id", id)
		w.WriteHeader(http.StatusOK)
	}
}

func (s *Server) PlayerStatsHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		playerID, err := idParam(r, "player_id")
		if err != nil {
			http.Error(w, "Invalid 'player_id' parameter", http.StatusBadRequest)
			return
		}
		entries, err := s.Store.ListStatsForPlayer(playerID)
		if err != nil {
			http.Error(w, "Failed to get stat entries", http.StatusInternalServerError)
			log.Error("Failed to get stat entries for player", "error", err, "playerID", playerID)
			return
		}
		writeJSON(w, http.StatusOK, entries)
	}
}

func (s *Server) MatchStatsHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		matchID, err := idParam(r, "match_id")
		if err != nil {
			http.Error(w, "Invalid 'match_id' parameter", http.StatusBadRequest)
			return
		}
		entries, err := s.Store.ListStatsForMatch(matchID)
		if err != nil {
			http.Error(w, "Failed to get stat entries", http.StatusInternalServerError)
			log.Error("Failed to get stat entries for match", "error", err, "matchID", matchID)
			return
		}
		writeJSON(w, http.StatusOK, entries)
	}
}

func (s *Server) publishStatsUpdated(playerID, matchID int64) {
	event := pubsub.StatsUpdatedEvent{PlayerID: playerID, MatchID: matchID}
	if err := s.pubsub.SendMessage(string(pubsub.EventStatsUpdated), event); err != nil {
		log.Error("Failed to publish stats updated event", "error", err, "playerID", playerID, "matchID", matchID)
	}
}
