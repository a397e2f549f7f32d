// Package extract turns free-form generated text into flashcard records.
//
// The expected input is a sequence of numbered blocks, each holding a
// question marker and an answer marker:
//
//	Flashcard 1:
//	**Question:** What is Go?
//	**Answer:** A programming language.
//
// Extraction is best-effort. Spans that do not match the block shape are
// skipped without error, and block indices are never interpreted: records come
// out in source order.
package extract
