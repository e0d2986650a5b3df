package openlibrary

import (
	"bytes"
	"encoding/json"
	"math"
)

// SearchResponse matches the subset of search.json the service reads.
// Every field is optional on the wire.
type SearchResponse struct {
	NumFound NullInt     `json:"numFound"`
	Docs     []SearchDoc `json:"docs"`
}

// SearchDoc is one entry of search.json "docs".
type SearchDoc struct {
	Title               NullString  `json:"title"`
	AuthorName          AuthorNames `json:"author_name"`
	FirstPublishYear    NullInt     `json:"first_publish_year"`
	CoverID             NullInt     `json:"cover_i"`
	NumberOfPagesMedian NullInt     `json:"number_of_pages_median"`
}

var jsonNull = []byte("null")

// NullInt is an integer that may be missing. Null and non-numeric values
// decode as invalid instead of failing the whole response.
type NullInt struct {
	Int   int64
	Valid bool
}

func (n *NullInt) UnmarshalJSON(b []byte) error {
	*n = NullInt{}
	if bytes.Equal(b, jsonNull) {
		return nil
	}
	var num json.Number
	if err := json.Unmarshal(b, &num); err != nil {
		return nil
	}
	if i, err := num.Int64(); err == nil {
		*n = NullInt{Int: i, Valid: true}
		return nil
	}
	if f, err := num.Float64(); err == nil && f == math.Trunc(f) && !math.IsInf(f, 0) {
		*n = NullInt{Int: int64(f), Valid: true}
	}
	return nil
}

// Ptr returns nil for an invalid value.
func (n NullInt) Ptr() *int64 {
	if !n.Valid {
		return nil
	}
	v := n.Int
	return &v
}

// NullString is a string that may be missing. Non-string values decode as
// invalid.
type NullString struct {
	String string
	Valid  bool
}

func (s *NullString) UnmarshalJSON(b []byte) error {
	*s = NullString{}
	if bytes.Equal(b, jsonNull) {
		return nil
	}
	var v string
	if err := json.Unmarshal(b, &v); err != nil {
		return nil
	}
	*s = NullString{String: v, Valid: true}
	return nil
}

func (s NullString) Ptr() *string {
	if !s.Valid {
		return nil
	}
	v := s.String
	return &v
}

// AuthorNames is the author_name list. A value that is not an array
// decodes as an empty list; non-string entries become "".
type AuthorNames []string

func (a *AuthorNames) UnmarshalJSON(b []byte) error {
	*a = nil
	if bytes.Equal(b, jsonNull) {
		return nil
	}
	var raw []json.RawMessage
	if err := json.Unmarshal(b, &raw); err != nil {
		return nil
	}
	names := make(AuthorNames, 0, len(raw))
	for _, item := range raw {
		var name string
		if err := json.Unmarshal(item, &name); err != nil {
			name = ""
		}
		names = append(names, name)
	}
	*a = names
	return nil
}
