package mock

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
)

// ApiMock is a stub HTTP server standing in for an external API. Responses are
// registered per method and path; every request body is kept for assertions.
type ApiMock struct {
	mu        sync.Mutex
	server    *httptest.Server
	responses map[string]stubResponse
	requests  map[string][]map[string]any
}

type stubResponse struct {
	status int
	body   any
}

// NewApiServer creates an ApiMock. Call Start before use.
func NewApiServer() *ApiMock {
	return &ApiMock{
		responses: map[string]stubResponse{},
		requests:  map[string][]map[string]any{},
	}
}

// Start launches the stub server.
func (a *ApiMock) Start() {
	a.server = httptest.NewServer(http.HandlerFunc(a.handle))
}

// Close stops the stub server.
func (a *ApiMock) Close() {
	if a.server != nil {
		a.server.Close()
	}
}

// GetUrl returns the stub server base URL.
func (a *ApiMock) GetUrl() string {
	return a.server.URL
}

// SetResponse registers the reply for a method and path.
func (a *ApiMock) SetResponse(method, path string, status int, body any) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.responses[method+path] = stubResponse{status: status, body: body}
}

// Reset drops all registered responses and recorded requests.
func (a *ApiMock) Reset() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.responses = map[string]stubResponse{}
	a.requests = map[string][]map[string]any{}
}

// RequestCount returns how many requests hit a method and path.
func (a *ApiMock) RequestCount(method, path string) int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return len(a.requests[method+path])
}

// GetRequestBody returns the decoded JSON body of the index-th request, or nil.
func (a *ApiMock) GetRequestBody(method, path string, index int) map[string]any {
	a.mu.Lock()
	defer a.mu.Unlock()
	received := a.requests[method+path]
	if index < 0 || index >= len(received) {
		return nil
	}
	return received[index]
}

func (a *ApiMock) handle(w http.ResponseWriter, r *http.Request) {
	key := r.Method + r.URL.Path

	body, _ := io.ReadAll(r.Body)
	request := map[string]any{}
	_ = json.Unmarshal(body, &request)

	a.mu.Lock()
	a.requests[key] = append(a.requests[key], request)
	stub, ok := a.responses[key]
	a.mu.Unlock()

	if !ok {
		stub = stubResponse{status: http.StatusNotFound, body: map[string]any{"message": "no stub for " + key}}
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(stub.status)
	_ = json.NewEncoder(w).Encode(stub.body)
}
