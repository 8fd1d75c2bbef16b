package domain

import "time"

// Role identifies the author of a chat message.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Message is a single chat turn. Immutable once created; a session's
// message list is append-only.
type Message struct {
	ID        string    `json:"id"`
	Role      Role      `json:"role"`
	Content   string    `json:"content"`
	Timestamp time.Time `json:"timestamp"`
	Recipe    *Recipe   `json:"recipe,omitempty"` // embedded when the turn produced one
}

// ChatSession is an ordered, append-only conversation.
type ChatSession struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Messages  []Message `json:"messages"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"` // bumped on every message append
}

// Turn is a minimal role/content pair sent to the model as history.
type Turn struct {
	Role    Role
	Content string
}

// History returns the session's messages as model turns, most recent last.
func (s *ChatSession) History() []Turn {
	turns := make([]Turn, 0, len(s.Messages))
	for _, m := range s.Messages {
		turns = append(turns, Turn{Role: m.Role, Content: m.Content})
	}
	return turns
}
