package search

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ourshelves/internal/testutil"
)

func newHandlerWithUpstream(t *testing.T, body string) (*HTTPHandler, *testutil.FakeOpenLibrary) {
	t.Helper()
	upstream := testutil.NewFakeOpenLibrary(body)
	t.Cleanup(upstream.Close)
	return NewHTTPHandler(NewService(upstream.Client())), upstream
}

func serveSearch(h *HTTPHandler, target string) *httptest.ResponseRecorder {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /books/search/{term...}", h.Search)
	w := httptest.NewRecorder()
	mux.ServeHTTP(w, httptest.NewRequest(http.MethodGet, target, nil))
	return w
}

func upstreamQ(t *testing.T, upstream *testutil.FakeOpenLibrary) string {
	t.Helper()
	values, err := url.ParseQuery(upstream.LastQuery())
	require.NoError(t, err)
	return values.Get("q")
}

func TestHTTPHandler_Search(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		h, upstream := newHandlerWithUpstream(t, `{"numFound":1,"docs":[{"title":"Dune","author_name":["Frank Herbert"],"first_publish_year":1965,"cover_i":12345,"number_of_pages_median":412}]}`)

		w := serveSearch(h, "/books/search/Dune")

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "Dune", upstreamQ(t, upstream))
		assert.JSONEq(t, `{"searchTerm":"Dune","totalResults":1,"books":[{"title":"Dune","author":"Frank Herbert","year":1965,"cover":"https://covers.openlibrary.org/b/id/12345-M.jpg","pages":412}]}`, w.Body.String())
	})

	t.Run("percent-encoded term is decoded once", func(t *testing.T) {
		h, upstream := newHandlerWithUpstream(t, `{"numFound":0,"docs":[]}`)

		w := serveSearch(h, "/books/search/the%20lord%20of%20the%20rings")

		require.Equal(t, http.StatusOK, w.Code)
		var body Result
		require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
		assert.Equal(t, "the lord of the rings", body.SearchTerm)
		assert.Equal(t, "the lord of the rings", upstreamQ(t, upstream))
		assert.NotNil(t, body.Books)
	})

	t.Run("upstream failure", func(t *testing.T) {
		h, upstream := newHandlerWithUpstream(t, "")
		upstream.Respond(http.StatusInternalServerError, "")

		w := serveSearch(h, "/books/search/Dune")

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.JSONEq(t, `{"error":"Failed to fetch books","message":"Open Library API error: 500"}`, w.Body.String())
	})

	t.Run("upstream not found status", func(t *testing.T) {
		h, upstream := newHandlerWithUpstream(t, "")
		upstream.Respond(http.StatusNotFound, "")

		w := serveSearch(h, "/books/search/Dune")

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.JSONEq(t, `{"error":"Failed to fetch books","message":"Open Library API error: 404"}`, w.Body.String())
	})

	t.Run("upstream unreachable", func(t *testing.T) {
		h, upstream := newHandlerWithUpstream(t, "")
		upstream.Close()

		w := serveSearch(h, "/books/search/Dune")

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		var body map[string]string
		require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
		assert.Equal(t, "Failed to fetch books", body["error"])
		assert.Contains(t, body["message"], "Open Library API error: ")
	})
}
