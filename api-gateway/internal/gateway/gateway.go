package gateway

import (
	"encoding/json"
	"io"
	"log"
	"net/http"
	"strings"

	"github.com/gorilla/mux"
)

type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

type Config struct {
	MenuSvcURL      string
	BroadcastSvcURL string
	// FrontendDir holds the board and console pages. Empty disables them.
	FrontendDir string
}

type Gateway struct {
	config Config
	client HTTPClient
}

func NewGateway(config Config, client HTTPClient) *Gateway {
	return &Gateway{
		config: config,
		client: client,
	}
}

var (
	menuPrefixes      = []string{"/api/menus", "/api/categories", "/api/board", "/uploads/"}
	broadcastPrefixes = []string{"/api/schedules", "/api/broadcasts", "/api/playlists", "/api/music", "/api/status"}
)

func matchesPrefix(path string, prefixes []string) bool {
	for _, p := range prefixes {
		if path == p || strings.HasPrefix(path, p+"/") || (strings.HasSuffix(p, "/") && strings.HasPrefix(path, p)) {
			return true
		}
	}
	return false
}

// Target returns the backend base URL for path, or "" when no backend owns it.
func (g *Gateway) Target(path string) string {
	switch {
	case matchesPrefix(path, menuPrefixes):
		return g.config.MenuSvcURL
	case matchesPrefix(path, broadcastPrefixes):
		return g.config.BroadcastSvcURL
	}
	return ""
}

func (g *Gateway) HealthCheck(w http.ResponseWriter, r *http.Request) {
	response := map[string]string{
		"status":  "healthy",
		"service": "api-gateway",
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}

func (g *Gateway) ProxyRequest(w http.ResponseWriter, r *http.Request, targetURL string) {
	log.Printf("[GATEWAY] PROXY: %s %s -> %s%s", r.Method, r.URL.Path, targetURL, r.URL.Path)

	url := targetURL + r.URL.Path
	if r.URL.RawQuery != "" {
		url += "?" + r.URL.RawQuery
	}

	req, err := http.NewRequestWithContext(r.Context(), r.Method, url, r.Body)
	if err != nil {
		log.Printf("[GATEWAY] ERROR: Failed to create request: %v", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	for k, v := range r.Header {
		req.Header[k] = v
	}

	resp, err := g.client.Do(req)
	if err != nil {
		log.Printf("[GATEWAY] ERROR: Failed to proxy to %s: %v", targetURL, err)
		http.Error(w, err.Error(), http.StatusBadGateway)
		return
	}
	defer resp.Body.Close()

	for k, v := range resp.Header {
		w.Header()[k] = v
	}
	w.WriteHeader(resp.StatusCode)

	if strings.HasPrefix(resp.Header.Get("Content-Type"), "text/event-stream") {
		streamBody(w, resp.Body)
		return
	}
	if _, err := io.Copy(w, resp.Body); err != nil {
		log.Printf("[GATEWAY] ERROR: Failed to copy response: %v", err)
	}
}

// streamBody relays an event stream, flushing after every read so board
// clients see changes as they happen.
func streamBody(w http.ResponseWriter, body io.Reader) {
	flusher, _ := w.(http.Flusher)
	buf := make([]byte, 4096)
	for {
		n, err := body.Read(buf)
		if n > 0 {
			if _, werr := w.Write(buf[:n]); werr != nil {
				return
			}
			if flusher != nil {
				flusher.Flush()
			}
		}
		if err != nil {
			return
		}
	}
}

func (g *Gateway) RouteHandler(w http.ResponseWriter, r *http.Request) {
	path := r.URL.Path
	log.Printf("[GATEWAY] ROUTE: %s %s", r.Method, path)

	if target := g.Target(path); target != "" {
		g.ProxyRequest(w, r, target)
		return
	}

	if strings.HasPrefix(path, "/api/") {
		log.Printf("[GATEWAY] Unmatched API route: %s", path)
		http.Error(w, "API route not found", http.StatusNotFound)
		return
	}

	if g.config.FrontendDir == "" {
		http.NotFound(w, r)
		return
	}
	http.FileServer(http.Dir(g.config.FrontendDir)).ServeHTTP(w, r)
}

func (g *Gateway) SetupRoutes() http.Handler {
	r := mux.NewRouter()
	r.HandleFunc("/health", g.HealthCheck).Methods("GET")
	r.PathPrefix("/").HandlerFunc(g.RouteHandler)
	return r
}
