package http

import (
	"net/http"

	"github.com/Dmorales2498/Entes-Stats/internal/pubsub"
	"github.com/charmbracelet/log"
)

type createPlayerRequest struct {
	Name     string  `json:"name" validate:"required"`
	Jersey   *int    `json:"jersey" validate:"omitempty,min=0,max=99"`
	Position *string `json:"position"`
}

type updatePlayerRequest struct {
	ID       int64   `json:"id" validate:"required"`
	Name     *string `json:"name"`
	Jersey   *int    `json:"jersey" validate:"omitempty,min=0,max=99"`
	Position *string `json:"position"`
}

func (s *Server) ListPlayersHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		players, err := s.Store.ListPlayers()
		if err != nil {
			http.Error(w, "Failed to get players", http.StatusInternalServerError)
			log.Error("Failed to get players from store", "error", err)
			return
		}
		writeJSON(w, http.StatusOK, players)
	}
}

func (s *Server) CreatePlayerHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req createPlayerRequest
		if !s.decodeAndValidate(w, r, &req) {
			return
		}

		player, err := s.Store.CreatePlayer(req.Name, req.Jersey, req.Position)
		if err != nil {
			http.Error(w, "Failed to create player", http.StatusInternalServerError)
			log.Error("Failed to create player", "error", err, "name", req.Name)
			return
		}
		log.Info("Player created", "id", player.ID, "name", player.Name)
		writeJSON(w, http.StatusCreated, player)
	}
}

func (s *Server) UpdatePlayerHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req updatePlayerRequest
		if !s.decodeAndValidate(w, r, &req) {
			return
		}

		player, err := s.Store.UpdatePlayer(req.ID, req.Name, req.Jersey, req.Position)
		if err != nil {
			http.Error(w, "Failed to update player", storeErrStatus(err))
			log.Error("Failed to update player", "error", err, "id", req.ID)
			return
		}
		writeJSON(w, http.StatusOK, player)
	}
}

func (s *Server) DeletePlayerHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := idParam(r, "id")
		if err != nil {
			http.Error(w, "Invalid 'id' parameter", http.StatusBadRequest)
			return
		}

		if err := s.Store.DeletePlayer(id); err != nil {
			http.Error(w, "Failed to delete player", storeErrStatus(err))
			log.Error("Failed to delete player", "error", err, "id", id)
			return
		}
		s.Metrics.IncPlayersDeleted()
		if err := s.pubsub.SendMessage(string(pubsub.EventPlayerDeleted), pubsub.PlayerDeletedEvent{PlayerID: id}); err != nil {
			log.Error("Failed to publish player deleted event", "error", err, "id", id)
		}
		log.Info("Player deleted with all stat entries", "id", id)
		w.WriteHeader(http.StatusOK)
	}
}

// UploadPhotoHandler accepts a multipart form with an 'id' field and a
// 'photo' file, re-encodes the image and stores the path on the player.
func (s *Server) UploadPhotoHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseMultipartForm(10 << 20); err != nil {
			http.Error(w, "Invalid multipart form", http.StatusBadRequest)
			return
		}
		id, err := idParam(r, "id")
		if err != nil {
			http.Error(w, "Invalid 'id' parameter", http.StatusBadRequest)
			return
		}

		player, err := s.Store.GetPlayer(id)
		if err != nil {
			http.Error(w, "Player not found", storeErrStatus(err))
			return
		}

		file, _, err := r.FormFile("photo")
		if err != nil {
			http.Error(w, "Missing 'photo' file", http.StatusBadRequest)
			return
		}
		defer file.Close()

		path, err := s.Photos.Save(player.ID, player.Name, file)
		if err != nil {
			http.Error(w, "Failed to save photo", http.StatusBadRequest)
			log.Error("Failed to save photo", "error", err, "id", id)
			return
		}
		if err := s.Store.SetPlayerPhoto(player.ID, path); err != nil {
			http.Error(w, "Failed to store photo path", storeErrStatus(err))
			log.Error("Failed to store photo path", "error", err, "id", id)
			return
		}
		log.Info("Photo uploaded", "id", id, "path", path)
		writeJSON(w, http.StatusOK, map[string]string{"photo_path": path})
	}
}
