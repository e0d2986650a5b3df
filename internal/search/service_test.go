package search

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"ourshelves/internal/platform/openlibrary"
)

type mockClient struct {
	mock.Mock
}

func (m *mockClient) Search(ctx context.Context, query string) (*openlibrary.SearchResponse, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*openlibrary.SearchResponse), args.Error(1)
}

func TestService_Search(t *testing.T) {
	ctx := context.Background()

	t.Run("echoes the term and maps docs", func(t *testing.T) {
		m := new(mockClient)
		s := NewService(m)

		res := &openlibrary.SearchResponse{
			NumFound: openlibrary.NullInt{Int: 1, Valid: true},
			Docs: []openlibrary.SearchDoc{{
				Title:      openlibrary.NullString{String: "The Left Hand of Darkness", Valid: true},
				AuthorName: openlibrary.AuthorNames{"Ursula K. Le Guin"},
			}},
		}
		m.On("Search", ctx, "left hand & darkness").Return(res, nil)

		got, err := s.Search(ctx, "left hand & darkness")
		require.NoError(t, err)

		assert.Equal(t, "left hand & darkness", got.SearchTerm)
		assert.Equal(t, int64(1), got.TotalResults)
		require.Len(t, got.Books, 1)
		assert.Equal(t, "Ursula K. Le Guin", got.Books[0].Author)
		m.AssertExpectations(t)
	})

	t.Run("empty term is passed through", func(t *testing.T) {
		m := new(mockClient)
		s := NewService(m)
		m.On("Search", ctx, "").Return(&openlibrary.SearchResponse{}, nil)

		got, err := s.Search(ctx, "")
		require.NoError(t, err)
		assert.Equal(t, "", got.SearchTerm)
		assert.Empty(t, got.Books)
	})

	t.Run("status error becomes upstream error", func(t *testing.T) {
		m := new(mockClient)
		s := NewService(m)
		m.On("Search", ctx, "dune").Return(nil, &openlibrary.StatusError{StatusCode: 500})

		_, err := s.Search(ctx, "dune")

		var upstream *UpstreamError
		require.True(t, errors.As(err, &upstream))
		assert.Equal(t, 500, upstream.StatusCode)
		assert.Equal(t, "Open Library API error: 500", err.Error())
		m.AssertNumberOfCalls(t, "Search", 1)
	})

	t.Run("transport error becomes upstream error", func(t *testing.T) {
		m := new(mockClient)
		s := NewService(m)
		cause := errors.New("connection reset")
		m.On("Search", ctx, "dune").Return(nil, cause)

		_, err := s.Search(ctx, "dune")

		var upstream *UpstreamError
		require.True(t, errors.As(err, &upstream))
		assert.Zero(t, upstream.StatusCode)
		assert.ErrorIs(t, err, cause)
	})
}
