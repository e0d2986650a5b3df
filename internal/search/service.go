package search

import (
	"context"
	"errors"

	"ourshelves/internal/logger"
	"ourshelves/internal/platform/openlibrary"
)

// Client is the outbound search dependency.
type Client interface {
	Search(ctx context.Context, query string) (*openlibrary.SearchResponse, error)
}

type Service struct {
	client Client
}

func NewService(client Client) *Service {
	return &Service{client: client}
}

// Search queries Open Library for term and maps the response. Any failure
// of the call is returned as *UpstreamError.
func (s *Service) Search(ctx context.Context, term string) (Result, error) {
	defer logger.Track(ctx, "openlibrary search")()

	res, err := s.client.Search(ctx, term)
	if err != nil {
		var statusErr *openlibrary.StatusError
		if errors.As(err, &statusErr) {
			return Result{}, &UpstreamError{StatusCode: statusErr.StatusCode, Err: err}
		}
		return Result{}, &UpstreamError{Err: err}
	}
	return MapResponse(term, res), nil
}
