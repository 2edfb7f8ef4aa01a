package httpapi

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"time"

	"boum-cafe/broadcast-svc/internal/domain"
	"boum-cafe/broadcast-svc/internal/service"
	"boum-cafe/session"

	"github.com/gorilla/mux"
)

type Handler struct {
	Broadcasts service.BroadcasterInterface
	Schedules  service.ScheduleServiceInterface
	Music      service.MusicServiceInterface
	Sessions   session.Validator
}

func NewHandler(broadcasts service.BroadcasterInterface, schedules service.ScheduleServiceInterface, music service.MusicServiceInterface, sessions session.Validator) *Handler {
	return &Handler{
		Broadcasts: broadcasts,
		Schedules:  schedules,
		Music:      music,
		Sessions:   sessions,
	}
}

func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/health", h.healthCheck).Methods("GET")

	api := r.PathPrefix("/api").Subrouter()
	api.Use(func(next http.Handler) http.Handler { return session.Require(h.Sessions, next) })

	api.HandleFunc("/status", h.getStatus).Methods("GET")
	api.HandleFunc("/broadcasts", h.createBroadcast).Methods("POST")

	api.HandleFunc("/schedules", h.getSchedules).Methods("GET")
	api.HandleFunc("/schedules", h.createSchedule).Methods("POST")
	api.HandleFunc("/schedules/{id}", h.deleteSchedule).Methods("DELETE")

	api.HandleFunc("/playlists", h.getPlaylists).Methods("GET")
	api.HandleFunc("/music", h.getMusic).Methods("GET")
	api.HandleFunc("/music/select", h.selectMusic).Methods("POST")
	api.HandleFunc("/music/toggle", h.toggleMusic).Methods("POST")
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, service.ErrInvalidAnnouncement), errors.Is(err, service.ErrInvalidSchedule):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, service.ErrScheduleNotFound):
		http.Error(w, "Schedule not found", http.StatusNotFound)
	case errors.Is(err, service.ErrPlaylistNotFound):
		http.Error(w, "Playlist not found", http.StatusNotFound)
	case errors.Is(err, service.ErrBroadcastBusy), errors.Is(err, service.ErrNoPlaylist):
		http.Error(w, err.Error(), http.StatusConflict)
	default:
		log.Printf("[broadcast-svc] request failed: %v", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func (h *Handler) healthCheck(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"status":    "healthy",
		"service":   "broadcast-svc",
		"timestamp": time.Now().Format(time.RFC3339),
	})
}

func (h *Handler) getStatus(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.Broadcasts.Status())
}

func (h *Handler) createBroadcast(w http.ResponseWriter, r *http.Request) {
	var a domain.Announcement
	if err := json.NewDecoder(r.Body).Decode(&a); err != nil {
		http.Error(w, "Invalid JSON format: "+err.Error(), http.StatusBadRequest)
		return
	}
	if err := h.Broadcasts.Start(a); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusAccepted, h.Broadcasts.Status())
}

func (h *Handler) getSchedules(w http.ResponseWriter, r *http.Request) {
	schedules, err := h.Schedules.List(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	if schedules == nil {
		schedules = []domain.Schedule{}
	}
	writeJSON(w, http.StatusOK, schedules)
}

func (h *Handler) createSchedule(w http.ResponseWriter, r *http.Request) {
	var schedule domain.Schedule
	if err := json.NewDecoder(r.Body).Decode(&schedule); err != nil {
		http.Error(w, "Invalid JSON format: "+err.Error(), http.StatusBadRequest)
		return
	}
	if err := h.Schedules.Create(r.Context(), &schedule); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, schedule)
}

func (h *Handler) deleteSchedule(w http.ResponseWriter, r *http.Request) {
	if err := h.Schedules.Delete(r.Context(), mux.Vars(r)["id"]); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) getPlaylists(w http.ResponseWriter, r *http.Request) {
	playlists, err := h.Music.Playlists(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	if playlists == nil {
		playlists = []domain.Playlist{}
	}
	writeJSON(w, http.StatusOK, playlists)
}

func (h *Handler) getMusic(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.Music.State())
}

type selectRequest struct {
	PlaylistID string `json:"playlist_id"`
}

func (h *Handler) selectMusic(w http.ResponseWriter, r *http.Request) {
	var req selectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.PlaylistID == "" {
		http.Error(w, "playlist_id is required", http.StatusBadRequest)
		return
	}
	state, err := h.Music.Select(r.Context(), req.PlaylistID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, state)
}

func (h *Handler) toggleMusic(w http.ResponseWriter, r *http.Request) {
	state, err := h.Music.Toggle(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, state)
}
