package model

// Sender identifies who wrote a chat message
type Sender string

const (
	SenderUser      Sender = "user"
	SenderAssistant Sender = "assistant"
)

// ChatMessage is a single entry in a chat transcript
type ChatMessage struct {
	Sender Sender
	Text   string
}
