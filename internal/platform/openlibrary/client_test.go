package openlibrary

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, h http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	return NewClient(Config{BaseURL: srv.URL, UserAgent: "OurShelvesTest/1.0", Timeout: 2 * time.Second})
}

func TestClient_Search(t *testing.T) {
	var gotQuery, gotRawQuery, gotAgent, gotPath string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.Query().Get("q")
		gotRawQuery = r.URL.RawQuery
		gotAgent = r.Header.Get("User-Agent")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"numFound":1,"docs":[{"title":"Dune","author_name":["Frank Herbert"],"first_publish_year":1965,"cover_i":12345,"number_of_pages_median":412}]}`))
	})

	res, err := c.Search(context.Background(), "dune & sons/100%")
	require.NoError(t, err)

	assert.Equal(t, "/search.json", gotPath)
	assert.Equal(t, "dune & sons/100%", gotQuery)
	assert.Equal(t, "q=dune+%26+sons%2F100%25", gotRawQuery)
	assert.Equal(t, "OurShelvesTest/1.0", gotAgent)

	assert.Equal(t, NullInt{Int: 1, Valid: true}, res.NumFound)
	require.Len(t, res.Docs, 1)
	doc := res.Docs[0]
	assert.Equal(t, NullString{String: "Dune", Valid: true}, doc.Title)
	assert.Equal(t, AuthorNames{"Frank Herbert"}, doc.AuthorName)
	assert.Equal(t, int64(1965), doc.FirstPublishYear.Int)
	assert.Equal(t, int64(12345), doc.CoverID.Int)
	assert.Equal(t, int64(412), doc.NumberOfPagesMedian.Int)
}

func TestClient_Search_StatusError(t *testing.T) {
	calls := 0
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.WriteHeader(http.StatusInternalServerError)
	})

	res, err := c.Search(context.Background(), "dune")
	assert.Nil(t, res)

	var statusErr *StatusError
	require.True(t, errors.As(err, &statusErr))
	assert.Equal(t, http.StatusInternalServerError, statusErr.StatusCode)
	assert.Equal(t, 1, calls, "search must not retry")
}

func TestClient_Search_DecodeError(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`<html>maintenance</html>`))
	})

	_, err := c.Search(context.Background(), "dune")
	assert.Error(t, err)
}

func TestClient_Search_TransportError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()
	c := NewClient(Config{BaseURL: srv.URL, Timeout: time.Second})

	_, err := c.Search(context.Background(), "dune")
	assert.Error(t, err)
	var statusErr *StatusError
	assert.False(t, errors.As(err, &statusErr))
}

func TestNewClient_Defaults(t *testing.T) {
	c := NewClient(Config{BaseURL: "https://example.org/"})
	assert.Equal(t, "https://example.org", c.baseURL)
	assert.Nil(t, c.limiter)

	c = NewClient(Config{RPS: 2})
	assert.Equal(t, DefaultBaseURL, c.baseURL)
	assert.NotNil(t, c.limiter)
}
