package generation

import "fmt"

// SystemInstruction is the fixed persona sent ahead of every user prompt.
const SystemInstruction = "You are a helpful assistant that creates educational flashcards. " +
	"Generate well-structured flashcards based on the given topic or content."

// Chat roles used in the two-message exchange.
const (
	RoleSystem = "system"
	RoleUser   = "user"
)

// Message is one entry of a chat-completion exchange.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// BuildPrompt wraps the client's topic with an instruction asking for count
// flashcards in the numbered block format the extractor understands.
func BuildPrompt(count int, topic string) string {
	return fmt.Sprintf(
		"Create %d flashcards. "+
			"Return ONLY in this format, no extra text: "+
			"Flashcard N:\n**Question:** ...\n**Answer:** ...\n"+
			"where N is the number, and each question/answer is on its own line. "+
			"Do not include anything else. %s",
		count, topic,
	)
}

// Messages returns the system and user messages for prompt.
func Messages(prompt string) []Message {
	return []Message{
		{Role: RoleSystem, Content: SystemInstruction},
		{Role: RoleUser, Content: prompt},
	}
}
