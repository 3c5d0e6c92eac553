package main

import "strconv"

// standardDeckSize is the number of cards printed by --cards.
const standardDeckSize = 52

var (
	ranks = [...]string{"A", "2", "3", "4", "5", "6", "7", "8", "9", "10", "J", "Q", "K"}
	suits = [...]string{"♠", "♥", "♦", "♣"}
)

// newDeck returns the values 1..n in order.
func newDeck(n int) []int {
	deck := make([]int, n)
	for i := range deck {
		deck[i] = i + 1
	}
	return deck
}

// cardFace names card value v (1..52) of a fresh deck ordered by suit
// ♠ ♥ ♦ ♣, each A..K.
func cardFace(v int) string {
	if v < 1 || v > standardDeckSize {
		return "?" + strconv.Itoa(v)
	}
	i := v - 1
	return ranks[i%len(ranks)] + suits[i/len(ranks)]
}

// render formats deck values as numbers or card faces.
func render(deck []int, faces bool) []string {
	out := make([]string, len(deck))
	for i, v := range deck {
		if faces {
			out[i] = cardFace(v)
		} else {
			out[i] = strconv.Itoa(v)
		}
	}
	return out
}
