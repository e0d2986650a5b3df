package testutil

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"time"

	"ourshelves/internal/platform/openlibrary"
)

// TestBookPayload is a complete create/update body.
var TestBookPayload = map[string]interface{}{
	"title":       "The Dispossessed",
	"author":      "Ursula K. Le Guin",
	"genre":       "Science Fiction",
	"description": "An ambiguous utopia",
	"year":        1974,
	"cover":       "https://covers.openlibrary.org/b/id/1-L.jpg",
}

// NewRequest creates a new HTTP request for testing. A non-nil body is
// sent as JSON.
func NewRequest(method, path string, body interface{}) *http.Request {
	var bodyBytes []byte
	if body != nil {
		bodyBytes, _ = json.Marshal(body)
	}
	var r *http.Request
	if bodyBytes != nil {
		r = httptest.NewRequest(method, path, bytes.NewReader(bodyBytes))
		r.Header.Set("Content-Type", "application/json")
	} else {
		r = httptest.NewRequest(method, path, nil)
	}
	return r
}

// RecordResponse records the HTTP response for testing
type RecordResponse struct {
	Code   int
	Header http.Header
	Raw    []byte
	Body   map[string]interface{}
}

// RecordHTTPResponse records the HTTP response. Body stays nil when the
// payload is not a JSON object.
func RecordHTTPResponse(w *httptest.ResponseRecorder) RecordResponse {
	result := w.Result()
	defer result.Body.Close()

	bodyBytes, _ := io.ReadAll(result.Body)

	var bodyMap map[string]interface{}
	if len(bodyBytes) > 0 {
		json.NewDecoder(bytes.NewReader(bodyBytes)).Decode(&bodyMap)
	}

	return RecordResponse{
		Code:   result.StatusCode,
		Header: result.Header,
		Raw:    bodyBytes,
		Body:   bodyMap,
	}
}

// FakeOpenLibrary answers every /search.json request with a canned
// response and records the raw query string of the last call.
type FakeOpenLibrary struct {
	*httptest.Server

	mu        sync.Mutex
	status    int
	body      string
	lastQuery string
}

// NewFakeOpenLibrary starts a fake upstream answering 200 with body.
// Close it when done.
func NewFakeOpenLibrary(body string) *FakeOpenLibrary {
	f := &FakeOpenLibrary{status: http.StatusOK, body: body}
	f.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/search.json" {
			http.NotFound(w, r)
			return
		}
		f.mu.Lock()
		f.lastQuery = r.URL.RawQuery
		status, body := f.status, f.body
		f.mu.Unlock()

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = io.Copy(w, strings.NewReader(body))
	}))
	return f
}

// Respond changes the canned response for later calls.
func (f *FakeOpenLibrary) Respond(status int, body string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.status, f.body = status, body
}

// LastQuery returns the raw query string of the most recent call.
func (f *FakeOpenLibrary) LastQuery() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.lastQuery
}

// Client returns an Open Library client pointed at the fake.
func (f *FakeOpenLibrary) Client() *openlibrary.Client {
	return openlibrary.NewClient(openlibrary.Config{
		BaseURL:   f.URL,
		UserAgent: "ourshelves-test",
		Timeout:   2 * time.Second,
	})
}

// AssertResponseCode checks if the response code matches expected
func AssertResponseCode(t interface {
	Errorf(format string, args ...any)
}, got, want int) {
	if got != want {
		t.Errorf("got status code %d, want %d", got, want)
	}
}

// AssertResponseBody checks if the response body contains expected field
func AssertResponseBody(t interface {
	Errorf(format string, args ...any)
}, body map[string]interface{}, key string, expectedValue interface{}) {
	value, ok := body[key]
	if !ok {
		t.Errorf("response body missing key %q", key)
		return
	}
	if value != expectedValue {
		t.Errorf("got %q for key %q, want %q", value, key, expectedValue)
	}
}
