// Package domain contains the core entities of the flashcard relay: the
// normalized generation request, the upstream result, and the flashcard
// records extracted from generated text. It is independent of any HTTP,
// configuration, or upstream-provider concern.
package domain
