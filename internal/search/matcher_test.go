package search

import "testing"

func TestLevenshtein(t *testing.T) {
	cases := []struct {
		a, b string
		want int
	}{
		{"cat", "cat", 0},
		{"cat", "hat", 1},
		{"cat", "cart", 1},
		{"", "abc", 3},
		{"kitten", "sitting", 3},
	}
	for _, tc := range cases {
		if got := Levenshtein(tc.a, tc.b); got != tc.want {
			t.Errorf("Levenshtein(%q, %q) = %d, want %d", tc.a, tc.b, got, tc.want)
		}
	}
}

func TestNormalize_NumberWords(t *testing.T) {
	if got := Normalize("  Two "); got != "2" {
		t.Fatalf("expected number word mapped to digit, got %q", got)
	}
	if got := Normalize("TEN"); got != "10" {
		t.Fatalf("expected ten -> 10, got %q", got)
	}
	if got := Normalize("  Candle "); got != "candle" {
		t.Fatalf("expected lowercased trimmed query, got %q", got)
	}
}

func TestNormalize_BeforeMatching(t *testing.T) {
	// "two" only matches a card that spells the quantity as "2" because
	// the query is converted before matching, not after.
	card := "Gift set of 2 candles"
	if !Visible(card, Normalize("two")) {
		t.Fatalf("expected normalized query to match digit form")
	}
	if Visible("no digits here at all", Normalize("two")) {
		t.Fatalf("expected no match without digit in card text")
	}
}

func TestVisible_EmptyQueryShowsAll(t *testing.T) {
	for _, text := range []string{"", "anything", "Lavender Candle $12.99"} {
		if !Visible(text, Normalize("")) {
			t.Fatalf("empty query must show card %q", text)
		}
	}
}

func TestVisible_SubstringAndFuzzy(t *testing.T) {
	card := "Lavender Candle handmade soap"
	if !Visible(card, "candle") {
		t.Fatalf("expected direct substring match")
	}
	if !Visible(card, "candke") {
		t.Fatalf("expected edit-distance-1 word match")
	}
	if Visible(card, "pottery") {
		t.Fatalf("expected no match for unrelated query")
	}
}

func TestMatchesCategory(t *testing.T) {
	if !MatchesCategory("Candles", "All") {
		t.Fatalf("All tab must show every card")
	}
	if !MatchesCategory("Candles", "Candles") {
		t.Fatalf("matching category must show")
	}
	if MatchesCategory("Soaps", "Candles") {
		t.Fatalf("non-matching category must hide")
	}
}
