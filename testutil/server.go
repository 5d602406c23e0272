package testutil

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
)

// MockResponse is served for one request
type MockResponse struct {
	Status int
	Body   any
}

// RecordedRequest is a request received by MockHTTPServer
type RecordedRequest struct {
	Method string
	Path   string
	Body   []byte
}

// MockHTTPServer serves queued responses in order and records what it receives
type MockHTTPServer struct {
	*httptest.Server
	mu        sync.Mutex
	responses []MockResponse
	Requests  []RecordedRequest
}

// NewMockHTTPServer starts a server that is closed when the test ends
func NewMockHTTPServer(t testing.TB, responses ...MockResponse) *MockHTTPServer {
	mock := &MockHTTPServer{responses: responses}
	mock.Server = httptest.NewServer(http.HandlerFunc(mock.serve))
	t.Cleanup(mock.Close)
	return mock
}

func (mock *MockHTTPServer) serve(w http.ResponseWriter, r *http.Request) {
	body, _ := io.ReadAll(r.Body)

	mock.mu.Lock()
	mock.Requests = append(mock.Requests, RecordedRequest{Method: r.Method, Path: r.URL.Path, Body: body})
	if len(mock.responses) == 0 {
		mock.mu.Unlock()
		http.Error(w, `{"error":"no more mock responses"}`, http.StatusInternalServerError)
		return
	}
	res := mock.responses[0]
	mock.responses = mock.responses[1:]
	mock.mu.Unlock()

	status := res.Status
	if status == 0 {
		status = http.StatusOK
	}
	var bz []byte
	switch b := res.Body.(type) {
	case string:
		bz = []byte(b)
	case []byte:
		bz = b
	default:
		bz, _ = json.Marshal(b)
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(bz)
}

// Received returns a copy of the recorded requests
func (mock *MockHTTPServer) Received() []RecordedRequest {
	mock.mu.Lock()
	defer mock.mu.Unlock()
	return append([]RecordedRequest(nil), mock.Requests...)
}
