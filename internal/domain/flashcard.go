package domain

// Flashcard is a single question/answer pair extracted from generated text.
// Both fields are trimmed of surrounding whitespace.
type Flashcard struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}
