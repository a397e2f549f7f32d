package extract

import (
	"iter"
	"regexp"
	"strings"
	"unicode"

	"github.com/phrazzld/scry-relay/internal/domain"
)

const answerMarker = "**Answer:**"

var (
	// blockStartRegex matches an optional label, the index, and the question marker.
	blockStartRegex = regexp.MustCompile(`(?:Flashcard\s*)?\d+:\s*\*\*Question:\*\*`)

	// blockBoundaryRegex matches the start of the next block on a new line.
	blockBoundaryRegex = regexp.MustCompile(`\n(?:Flashcard\s*)?\d+:`)
)

// Flashcards returns a lazy sequence of the flashcards found in text.
//
// Blocks are matched left to right without overlap. A block's question runs
// up to the first answer marker after it, and its answer runs up to the next
// line that starts a new block or to the end of the input. A block with no
// answer marker after it produces nothing.
//
// The sequence holds no state of its own and may be ranged over any number
// of times with identical results.
func Flashcards(text string) iter.Seq[domain.Flashcard] {
	return func(yield func(domain.Flashcard) bool) {
		pos := 0
		for pos < len(text) {
			card, next, ok := scanBlock(text, pos)
			if !ok {
				return
			}
			if !yield(card) {
				return
			}
			pos = next
		}
	}
}

// All collects every flashcard in text. The result is never nil.
func All(text string) []domain.Flashcard {
	cards := make([]domain.Flashcard, 0)
	for card := range Flashcards(text) {
		cards = append(cards, card)
	}
	return cards
}

// scanBlock finds the first complete block at or after from. It returns the
// card and the offset where scanning should resume.
func scanBlock(text string, from int) (domain.Flashcard, int, bool) {
	loc := blockStartRegex.FindStringIndex(text[from:])
	if loc == nil {
		return domain.Flashcard{}, 0, false
	}
	questionStart := from + loc[1]

	rel := strings.Index(text[questionStart:], answerMarker)
	if rel < 0 {
		// No later start can find an answer marker either.
		return domain.Flashcard{}, 0, false
	}
	markerAt := questionStart + rel

	answerStart := skipSpace(text, markerAt+len(answerMarker))
	answerEnd := len(text)
	if b := blockBoundaryRegex.FindStringIndex(text[answerStart:]); b != nil {
		answerEnd = answerStart + b[0]
	}

	card := domain.Flashcard{
		Question: strings.TrimSpace(text[questionStart:markerAt]),
		Answer:   strings.TrimSpace(text[answerStart:answerEnd]),
	}
	return card, answerEnd, true
}

func skipSpace(text string, i int) int {
	rest := strings.TrimLeftFunc(text[i:], unicode.IsSpace)
	return len(text) - len(rest)
}
