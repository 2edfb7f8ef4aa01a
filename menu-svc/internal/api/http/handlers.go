package httpapi

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"time"

	"boum-cafe/menu-svc/internal/domain"
	"boum-cafe/menu-svc/internal/service"
	"boum-cafe/session"

	"github.com/gorilla/mux"
)

const heartbeatInterval = 25 * time.Second

type Handler struct {
	Menus    service.MenuServiceInterface
	Hub      *service.Hub
	QR       service.QRGenerator
	Sessions session.Validator
}

func NewHandler(menuSvc service.MenuServiceInterface, hub *service.Hub, qr service.QRGenerator, sessions session.Validator) *Handler {
	return &Handler{
		Menus:    menuSvc,
		Hub:      hub,
		QR:       qr,
		Sessions: sessions,
	}
}

func (h *Handler) admin(fn http.HandlerFunc) http.Handler {
	return session.Require(h.Sessions, fn)
}

func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/health", h.healthCheck).Methods("GET")

	r.HandleFunc("/api/board", h.getBoard).Methods("GET")
	r.HandleFunc("/api/board/events", h.boardEvents).Methods("GET")
	r.HandleFunc("/api/board/qrcode", h.getBoardQRCode).Methods("GET")
	r.HandleFunc("/api/categories", h.getCategories).Methods("GET")

	r.Handle("/api/menus", h.admin(h.getMenus)).Methods("GET")
	r.Handle("/api/menus", h.admin(h.createMenu)).Methods("POST")
	r.Handle("/api/menus/recompact", h.admin(h.recompact)).Methods("POST")
	r.Handle("/api/menus/{id:[0-9]+}", h.admin(h.getMenu)).Methods("GET")
	r.Handle("/api/menus/{id:[0-9]+}", h.admin(h.updateMenu)).Methods("PUT")
	r.Handle("/api/menus/{id:[0-9]+}", h.admin(h.deleteMenu)).Methods("DELETE")
	r.Handle("/api/menus/{id:[0-9]+}/image", h.admin(h.uploadMenuImage)).Methods("POST")
	r.Handle("/api/menus/{id:[0-9]+}/move-up", h.admin(h.moveUp)).Methods("POST")
	r.Handle("/api/menus/{id:[0-9]+}/move-down", h.admin(h.moveDown)).Methods("POST")
	r.Handle("/api/menus/{id:[0-9]+}/sort-order", h.admin(h.setSortOrder)).Methods("PUT")
	r.Handle("/api/categories/{category}/order", h.admin(h.reorderCategory)).Methods("PUT")
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// writeError maps service errors onto HTTP statuses.
func writeError(w http.ResponseWriter, err error) {
	var outOfBand *service.OrderOutOfBandError
	switch {
	case errors.As(err, &outOfBand):
		writeJSON(w, http.StatusBadRequest, map[string]interface{}{
			"error":   outOfBand.Error(),
			"base":    outOfBand.Base,
			"max":     outOfBand.Max,
			"current": outOfBand.Current,
		})
	case errors.Is(err, service.ErrMenuNotFound):
		http.Error(w, "Menu not found", http.StatusNotFound)
	case errors.Is(err, service.ErrCategoryFull):
		http.Error(w, err.Error(), http.StatusConflict)
	case errors.Is(err, service.ErrUnknownCategory),
		errors.Is(err, service.ErrInvalidMenu),
		errors.Is(err, service.ErrOrderMismatch),
		errors.Is(err, service.ErrUnsupportedImage):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, service.ErrStorageBucketMissing):
		http.Error(w, service.ErrStorageBucketMissing.Error(), http.StatusInternalServerError)
	case errors.Is(err, service.ErrStoragePolicy):
		http.Error(w, service.ErrStoragePolicy.Error(), http.StatusInternalServerError)
	case errors.Is(err, service.ErrUploadFailed):
		http.Error(w, err.Error(), http.StatusInternalServerError)
	default:
		log.Printf("[menu-svc] request failed: %v", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func pathID(r *http.Request) int {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])
	return id
}

func (h *Handler) healthCheck(w http.ResponseWriter, r *http.Request) {
	response := map[string]interface{}{
		"status":    "healthy",
		"service":   "menu-svc",
		"timestamp": time.Now().Format(time.RFC3339),
	}
	if h.Hub != nil {
		response["board_subscribers"] = h.Hub.Subscribers()
	}
	writeJSON(w, http.StatusOK, response)
}

func (h *Handler) getBoard(w http.ResponseWriter, r *http.Request) {
	board, err := h.Menus.Board(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, board)
}

// boardEvents streams a "changed" event whenever the catalog changes. Clients
// re-fetch /api/board on each event.
func (h *Handler) boardEvents(w http.ResponseWriter, r *http.Request) {
	flusher, ok := w.(http.Flusher)
	if !ok || h.Hub == nil {
		http.Error(w, "Streaming unsupported", http.StatusInternalServerError)
		return
	}

	events, cancel := h.Hub.Subscribe()
	defer cancel()

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.WriteHeader(http.StatusOK)
	fmt.Fprint(w, "event: ready\ndata: {}\n\n")
	flusher.Flush()

	heartbeat := time.NewTicker(heartbeatInterval)
	defer heartbeat.Stop()

	for {
		select {
		case <-r.Context().Done():
			return
		case <-events:
			fmt.Fprint(w, "event: changed\ndata: {\"table\":\"menus\"}\n\n")
			flusher.Flush()
		case <-heartbeat.C:
			fmt.Fprint(w, ": ping\n\n")
			flusher.Flush()
		}
	}
}

func (h *Handler) getBoardQRCode(w http.ResponseWriter, r *http.Request) {
	if h.QR == nil {
		http.Error(w, "QR code not configured", http.StatusNotFound)
		return
	}
	png, err := h.QR.Generate()
	if err != nil {
		http.Error(w, "Failed to generate QR code", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "public, max-age=3600")
	w.WriteHeader(http.StatusOK)
	w.Write(png)
}

func (h *Handler) getCategories(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.Menus.Bands())
}

func (h *Handler) getMenus(w http.ResponseWriter, r *http.Request) {
	items, err := h.Menus.List(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	if items == nil {
		items = []domain.MenuItem{}
	}
	writeJSON(w, http.StatusOK, items)
}

func (h *Handler) getMenu(w http.ResponseWriter, r *http.Request) {
	item, err := h.Menus.Get(r.Context(), pathID(r))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, item)
}

func (h *Handler) createMenu(w http.ResponseWriter, r *http.Request) {
	var item domain.MenuItem
	if err := json.NewDecoder(r.Body).Decode(&item); err != nil {
		http.Error(w, "Invalid JSON format: "+err.Error(), http.StatusBadRequest)
		return
	}
	if err := h.Menus.Create(r.Context(), &item); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, item)
}

func (h *Handler) updateMenu(w http.ResponseWriter, r *http.Request) {
	var item domain.MenuItem
	if err := json.NewDecoder(r.Body).Decode(&item); err != nil {
		http.Error(w, "Invalid JSON format: "+err.Error(), http.StatusBadRequest)
		return
	}
	item.ID = pathID(r)
	if err := h.Menus.Update(r.Context(), &item); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, item)
}

func (h *Handler) deleteMenu(w http.ResponseWriter, r *http.Request) {
	if err := h.Menus.Delete(r.Context(), pathID(r)); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) uploadMenuImage(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, service.MaxImageSize+1<<20)
	if err := r.ParseMultipartForm(service.MaxImageSize); err != nil {
		http.Error(w, "File too large", http.StatusBadRequest)
		return
	}

	file, header, err := r.FormFile("image")
	if err != nil {
		http.Error(w, "Error retrieving the file", http.StatusBadRequest)
		return
	}
	defer file.Close()

	if header.Size > service.MaxImageSize {
		http.Error(w, "File too large", http.StatusBadRequest)
		return
	}

	imageURL, err := h.Menus.UpdateImage(r.Context(), pathID(r), header.Filename, header.Header.Get("Content-Type"), file)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{
		"message":   "Image uploaded successfully",
		"image_url": imageURL,
	})
}

func (h *Handler) moveUp(w http.ResponseWriter, r *http.Request) {
	moved, err := h.Menus.MoveUp(r.Context(), pathID(r))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"moved": moved})
}

func (h *Handler) moveDown(w http.ResponseWriter, r *http.Request) {
	moved, err := h.Menus.MoveDown(r.Context(), pathID(r))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"moved": moved})
}

type sortOrderRequest struct {
	SortOrder *int `json:"sort_order"`
}

func (h *Handler) setSortOrder(w http.ResponseWriter, r *http.Request) {
	var req sortOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.SortOrder == nil {
		http.Error(w, "sort_order is required", http.StatusBadRequest)
		return
	}
	changes, err := h.Menus.SetSortOrder(r.Context(), pathID(r), *req.SortOrder)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"changes": assignments(changes)})
}

type reorderRequest struct {
	IDs []int `json:"ids"`
}

func (h *Handler) reorderCategory(w http.ResponseWriter, r *http.Request) {
	var req reorderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid JSON format: "+err.Error(), http.StatusBadRequest)
		return
	}
	category := domain.Category(mux.Vars(r)["category"])
	changes, err := h.Menus.Reorder(r.Context(), category, req.IDs)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"changes": assignments(changes)})
}

func (h *Handler) recompact(w http.ResponseWriter, r *http.Request) {
	changes, err := h.Menus.Recompact(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"changes": assignments(changes)})
}

func assignments(a []service.Assignment) []service.Assignment {
	if a == nil {
		return []service.Assignment{}
	}
	return a
}
