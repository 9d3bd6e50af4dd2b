// Package search implements the storefront's fuzzy text matcher: a
// normalized query is tested against each catalog card's text by
// substring containment, then word-by-word with an edit-distance
// tolerance of one.
package search

import "strings"

var numberWords = map[string]string{
	"zero": "0", "one": "1", "two": "2", "three": "3", "four": "4",
	"five": "5", "six": "6", "seven": "7", "eight": "8", "nine": "9",
	"ten": "10",
}

const maxDistance = 1

// Normalize lowercases and trims the query, then maps a number word to
// its digit form. Normalization happens before matching, so "two"
// matches cards that spell the quantity as "2".
func Normalize(query string) string {
	q := strings.ToLower(strings.TrimSpace(query))
	if digits, ok := numberWords[q]; ok {
		return digits
	}
	return q
}

// Levenshtein computes the edit distance between two strings with unit
// cost for insertion, deletion and substitution.
func Levenshtein(a, b string) int {
	ra, rb := []rune(a), []rune(b)
	prev := make([]int, len(ra)+1)
	curr := make([]int, len(ra)+1)
	for j := range prev {
		prev[j] = j
	}
	for i := 1; i <= len(rb); i++ {
		curr[0] = i
		for j := 1; j <= len(ra); j++ {
			if rb[i-1] == ra[j-1] {
				curr[j] = prev[j-1]
			} else {
				curr[j] = min3(prev[j-1], curr[j-1], prev[j]) + 1
			}
		}
		prev, curr = curr, prev
	}
	return prev[len(ra)]
}

func min3(a, b, c int) int {
	m := a
	if b < m {
		m = b
	}
	if c < m {
		m = c
	}
	return m
}

// Visible reports whether a card with the given text stays on screen
// for the (already normalized) query. An empty query shows every card.
func Visible(cardText, query string) bool {
	if query == "" {
		return true
	}
	text := strings.ToLower(cardText)
	if strings.Contains(text, query) {
		return true
	}
	for _, word := range strings.Fields(text) {
		if word == query || strings.Contains(word, query) || Levenshtein(query, word) <= maxDistance {
			return true
		}
	}
	return false
}

// MatchesCategory implements the category-tab filter: the "All" tab
// shows every card, any other tab shows only its own category.
func MatchesCategory(cardCategory, activeTab string) bool {
	return activeTab == "All" || cardCategory == activeTab
}
