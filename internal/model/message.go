package model

// Message is a chat message as the message store returns it.
type Message struct {
	ID        int64  `json:"id"`
	Sender    string `json:"sender"`
	Content   string `json:"content"`
	Timestamp string `json:"timestamp"`
}

type OutgoingMessage struct {
	Sender  string `json:"sender"`
	Content string `json:"content"`
}
