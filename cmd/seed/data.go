package main

import (
	"fmt"
	"math/rand"

	"ourshelves/internal/book"
)

func str(s string) *string { return &s }
func num(i int) *int       { return &i }

func sampleBooks() []book.Input {
	return []book.Input{
		{
			Title:       "The Hobbit",
			Author:      str("J.R.R. Tolkien"),
			Genre:       str("Fantasy"),
			Description: str("Bilbo Baggins is swept into a quest to reclaim a treasure guarded by a dragon."),
			Year:        num(1937),
			Cover:       str("https://covers.openlibrary.org/b/id/6979861-M.jpg"),
		},
		{
			Title:       "Dune",
			Author:      str("Frank Herbert"),
			Genre:       str("Science Fiction"),
			Description: str("A noble family is handed stewardship of the desert planet Arrakis."),
			Year:        num(1965),
			Cover:       str("https://covers.openlibrary.org/b/id/11481354-M.jpg"),
		},
		{
			Title:  "Pride and Prejudice",
			Author: str("Jane Austen"),
			Genre:  str("Romance"),
			Year:   num(1813),
		},
		{
			Title:       "Nineteen Eighty-Four",
			Author:      str("George Orwell"),
			Genre:       str("Dystopian"),
			Description: str("Winston Smith works for the Ministry of Truth."),
			Year:        num(1949),
		},
		{
			Title: "Untitled Notebook",
		},
	}
}

var (
	genres = []string{"Fiction", "Science Fiction", "History", "Science", "Technology", "Romance", "Mystery", "Biography", "Philosophy", "Art"}
	words  = []string{
		"Adventure", "Mystery", "Journey", "Discovery", "Secrets", "Dreams", "Hope",
		"Love", "War", "Peace", "Science", "Nature", "Technology", "History", "Future",
		"Past", "Present", "Reality", "Imagination", "Wisdom", "Life", "Death",
		"Light", "Darkness", "World", "Universe", "Time", "Space", "Mind", "Soul",
	}
)

// generateBooks builds n filler books for load testing.
func generateBooks(n int) []book.Input {
	out := make([]book.Input, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, book.Input{
			Title:       fmt.Sprintf("Book Title %d - %s", i+1, randomWord()),
			Author:      str(fmt.Sprintf("%s %s", randomWord(), randomWord())),
			Genre:       str(genres[rand.Intn(len(genres))]),
			Description: str(fmt.Sprintf("This is a book about %s.", randomWord())),
			Year:        num(1950 + rand.Intn(75)),
		})
	}
	return out
}

func randomWord() string {
	return words[rand.Intn(len(words))]
}
