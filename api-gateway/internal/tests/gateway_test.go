package tests

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"boum-cafe/api-gateway/internal/gateway"
	"boum-cafe/api-gateway/internal/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var testConfig = gateway.Config{
	MenuSvcURL:      "http://menu-svc",
	BroadcastSvcURL: "http://broadcast-svc",
}

func okResponse(body string) *http.Response {
	resp := &http.Response{
		StatusCode: http.StatusOK,
		Body:       io.NopCloser(strings.NewReader(body)),
		Header:     make(http.Header),
	}
	resp.Header.Set("Content-Type", "application/json")
	return resp
}

func TestGateway_HealthCheck(t *testing.T) {
	gw := gateway.NewGateway(gateway.Config{}, nil)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rr := httptest.NewRecorder()

	gw.HealthCheck(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	var body map[string]string
	json.NewDecoder(rr.Body).Decode(&body)
	assert.Equal(t, "healthy", body["status"])
	assert.Equal(t, "api-gateway", body["service"])
}

func TestGateway_Target(t *testing.T) {
	gw := gateway.NewGateway(testConfig, nil)

	tests := []struct {
		path string
		want string
	}{
		{"/api/menus", "http://menu-svc"},
		{"/api/menus/12/move-up", "http://menu-svc"},
		{"/api/categories", "http://menu-svc"},
		{"/api/categories/Coffee/order", "http://menu-svc"},
		{"/api/board", "http://menu-svc"},
		{"/api/board/events", "http://menu-svc"},
		{"/uploads/menu-1.png", "http://menu-svc"},
		{"/api/schedules", "http://broadcast-svc"},
		{"/api/schedules/abc", "http://broadcast-svc"},
		{"/api/broadcasts", "http://broadcast-svc"},
		{"/api/playlists", "http://broadcast-svc"},
		{"/api/music/toggle", "http://broadcast-svc"},
		{"/api/status", "http://broadcast-svc"},
		{"/api/menusx", ""},
		{"/api/unknown", ""},
		{"/board", ""},
	}
	for _, testCase := range tests {
		assert.Equal(t, testCase.want, gw.Target(testCase.path), testCase.path)
	}
}

func TestGateway_RouteHandler_ProxiesWithQueryAndHeaders(t *testing.T) {
	mockClient := mocks.NewHTTPClient(t)
	gw := gateway.NewGateway(testConfig, mockClient)

	mockClient.On("Do", mock.MatchedBy(func(req *http.Request) bool {
		return req.URL.String() == "http://broadcast-svc/api/schedules?active=1" &&
			req.Header.Get("Authorization") == "Bearer tok"
	})).Return(okResponse(`[]`), nil).Once()

	req := httptest.NewRequest(http.MethodGet, "/api/schedules?active=1", nil)
	req.Header.Set("Authorization", "Bearer tok")
	rr := httptest.NewRecorder()

	gw.RouteHandler(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))
	assert.Equal(t, `[]`, rr.Body.String())
}

func TestGateway_RouteHandler_MenuBoard(t *testing.T) {
	mockClient := mocks.NewHTTPClient(t)
	gw := gateway.NewGateway(testConfig, mockClient)

	mockClient.On("Do", mock.MatchedBy(func(req *http.Request) bool {
		return req.URL.Host == "menu-svc" && req.URL.Path == "/api/board"
	})).Return(okResponse(`{"Coffee":[{"id":1,"name":"Americano"}]}`), nil).Once()

	rr := httptest.NewRecorder()
	gw.RouteHandler(rr, httptest.NewRequest(http.MethodGet, "/api/board", nil))

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "Americano")
}

func TestGateway_RouteHandler_StreamsEvents(t *testing.T) {
	mockClient := mocks.NewHTTPClient(t)
	gw := gateway.NewGateway(testConfig, mockClient)

	resp := okResponse("event: ready\ndata: {}\n\nevent: changed\ndata: {\"table\":\"menus\"}\n\n")
	resp.Header.Set("Content-Type", "text/event-stream")
	mockClient.On("Do", mock.Anything).Return(resp, nil).Once()

	rr := httptest.NewRecorder()
	gw.RouteHandler(rr, httptest.NewRequest(http.MethodGet, "/api/board/events", nil))

	assert.True(t, rr.Flushed)
	assert.Contains(t, rr.Body.String(), "event: changed")
}

func TestGateway_RouteHandler_UnknownAPI(t *testing.T) {
	gw := gateway.NewGateway(gateway.Config{}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/unknown", nil)
	rr := httptest.NewRecorder()

	gw.RouteHandler(rr, req)

	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestGateway_RouteHandler_ProxyError(t *testing.T) {
	mockClient := mocks.NewHTTPClient(t)
	gw := gateway.NewGateway(testConfig, mockClient)

	mockClient.On("Do", mock.Anything).Return(nil, errors.New("connection failed")).Once()

	req := httptest.NewRequest(http.MethodPost, "/api/broadcasts", strings.NewReader(`{}`))
	rr := httptest.NewRecorder()

	gw.RouteHandler(rr, req)

	assert.Equal(t, http.StatusBadGateway, rr.Code)
}

func TestGateway_ServesFrontend(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "board.html"), []byte("<h1>BOUM</h1>"), 0644))

	gw := gateway.NewGateway(gateway.Config{FrontendDir: dir}, nil)
	router := gw.SetupRoutes()

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/board.html", nil))
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "BOUM")

	rr = httptest.NewRecorder()
	gateway.NewGateway(gateway.Config{}, nil).SetupRoutes().ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/board.html", nil))
	assert.Equal(t, http.StatusNotFound, rr.Code)
}
