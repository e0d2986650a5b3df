package search

import (
	"fmt"

	"ourshelves/internal/platform/openlibrary"
)

const (
	UnknownAuthor = "Unknown"
	coverURLFmt   = "https://covers.openlibrary.org/b/id/%d-M.jpg"
)

// Result is the normalized answer to a search. It is never persisted.
type Result struct {
	SearchTerm   string `json:"searchTerm"`
	TotalResults int64  `json:"totalResults"`
	Books        []Book `json:"books"`
}

// Book is a search hit in the application's shape.
type Book struct {
	Title  *string `json:"title"`
	Author string  `json:"author"`
	Year   *int64  `json:"year"`
	Cover  *string `json:"cover"`
	Pages  *int64  `json:"pages"`
}

// UpstreamError means the Open Library call did not succeed.
type UpstreamError struct {
	StatusCode int
	Err        error
}

func (e *UpstreamError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("Open Library API error: %d", e.StatusCode)
	}
	return fmt.Sprintf("Open Library API error: %v", e.Err)
}

func (e *UpstreamError) Unwrap() error { return e.Err }

// CoverURL builds the medium-size cover image URL for a cover id.
func CoverURL(coverID int64) string {
	return fmt.Sprintf(coverURLFmt, coverID)
}

// MapDoc converts one upstream doc. Missing values become nil, a missing
// or empty author list becomes UnknownAuthor.
func MapDoc(doc openlibrary.SearchDoc) Book {
	b := Book{
		Title:  doc.Title.Ptr(),
		Author: UnknownAuthor,
		Year:   doc.FirstPublishYear.Ptr(),
		Pages:  doc.NumberOfPagesMedian.Ptr(),
	}
	if len(doc.AuthorName) > 0 && doc.AuthorName[0] != "" {
		b.Author = doc.AuthorName[0]
	}
	if doc.CoverID.Valid {
		cover := CoverURL(doc.CoverID.Int)
		b.Cover = &cover
	}
	return b
}

// MapResponse maps every doc in order. Books is never nil.
func MapResponse(term string, res *openlibrary.SearchResponse) Result {
	out := Result{SearchTerm: term, Books: []Book{}}
	if res == nil {
		return out
	}
	out.TotalResults = res.NumFound.Int
	for _, doc := range res.Docs {
		out.Books = append(out.Books, MapDoc(doc))
	}
	return out
}
