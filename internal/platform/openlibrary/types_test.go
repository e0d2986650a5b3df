package openlibrary

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSearchDoc_LooselyTypedFields(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want SearchDoc
	}{
		{
			name: "all absent",
			in:   `{}`,
			want: SearchDoc{},
		},
		{
			name: "explicit nulls",
			in:   `{"title":null,"author_name":null,"first_publish_year":null,"cover_i":null}`,
			want: SearchDoc{},
		},
		{
			name: "author_name is a string",
			in:   `{"title":"X","author_name":"Solo Author"}`,
			want: SearchDoc{Title: NullString{String: "X", Valid: true}},
		},
		{
			name: "author_name has non-string entries",
			in:   `{"author_name":[7,"B"]}`,
			want: SearchDoc{AuthorName: AuthorNames{"", "B"}},
		},
		{
			name: "numbers as float and string",
			in:   `{"first_publish_year":1965.0,"number_of_pages_median":"412","cover_i":"n/a"}`,
			want: SearchDoc{
				FirstPublishYear:    NullInt{Int: 1965, Valid: true},
				NumberOfPagesMedian: NullInt{Int: 412, Valid: true},
			},
		},
		{
			name: "fractional number is not an int",
			in:   `{"first_publish_year":1965.5}`,
			want: SearchDoc{},
		},
		{
			name: "title of the wrong type",
			in:   `{"title":42}`,
			want: SearchDoc{},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var got SearchDoc
			require.NoError(t, json.Unmarshal([]byte(tc.in), &got))
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestSearchResponse_AbsentDocs(t *testing.T) {
	var res SearchResponse
	require.NoError(t, json.Unmarshal([]byte(`{}`), &res))
	assert.False(t, res.NumFound.Valid)
	assert.Empty(t, res.Docs)
}

func TestNullPtr(t *testing.T) {
	assert.Nil(t, NullInt{}.Ptr())
	assert.Equal(t, int64(5), *NullInt{Int: 5, Valid: true}.Ptr())
	assert.Nil(t, NullString{}.Ptr())
	assert.Equal(t, "a", *NullString{String: "a", Valid: true}.Ptr())
}
