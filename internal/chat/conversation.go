package chat

import (
	"time"

	"github.com/google/uuid"
)

// Greeting is the first assistant message of every new conversation.
const Greeting = "Hi! I'm an AI assistant. I'm ready to help you with any question, in many languages. How can I help?"

// Conversation is an ordered list of messages with a display title.
type Conversation struct {
	ID        string
	Title     string
	Messages  []Message
	UpdatedAt time.Time
}

// NewConversation starts a conversation holding only the greeting.
func NewConversation(now time.Time) *Conversation {
	return &Conversation{
		ID:        uuid.NewString(),
		Title:     "New chat",
		Messages:  []Message{NewMessage(RoleAssistant, Greeting, now)},
		UpdatedAt: now,
	}
}

// Append adds a message and refreshes the title and update time. The title
// follows the first user message.
func (c *Conversation) Append(msg Message) {
	if msg.Role == RoleUser && !c.HasUserMessages() {
		c.Title = TitleFromPrompt(msg.Content)
	}
	c.Messages = append(c.Messages, msg)
	c.UpdatedAt = msg.Timestamp
}

// HasUserMessages reports whether the user has said anything yet.
func (c *Conversation) HasUserMessages() bool {
	for _, msg := range c.Messages {
		if msg.Role == RoleUser {
			return true
		}
	}
	return false
}

// IsFresh reports whether the conversation still shows only the greeting.
func (c *Conversation) IsFresh() bool {
	return len(c.Messages) <= 1
}

// LastAssistant returns the most recent assistant message, or nil.
func (c *Conversation) LastAssistant() *Message {
	for i := len(c.Messages) - 1; i >= 0; i-- {
		if c.Messages[i].Role == RoleAssistant {
			return &c.Messages[i]
		}
	}
	return nil
}

// History is the in-memory list of past conversations, most recent first.
type History struct {
	entries []*Conversation
}

// NewHistory returns an empty history.
func NewHistory() *History {
	return &History{}
}

// DemoHistory returns a history seeded with sample dialogs.
func DemoHistory(now time.Time) *History {
	h := NewHistory()
	samples := []struct {
		title  string
		prompt string
		age    time.Duration
	}{
		{title: "Translating documents", prompt: "Translate this paragraph into English", age: time.Hour},
		{title: "Help with Python code", prompt: "Help me with code: read a CSV in Python", age: 2 * time.Hour},
		{title: "Learning English", prompt: "Explain when to use the present perfect", age: 24 * time.Hour},
	}
	responder := NewResponder()
	for i := len(samples) - 1; i >= 0; i-- {
		s := samples[i]
		at := now.Add(-s.age)
		c := NewConversation(at)
		c.Append(NewMessage(RoleUser, s.prompt, at))
		c.Append(NewMessage(RoleAssistant, responder.Reply(s.prompt), at))
		c.Title = s.title
		h.Add(c)
	}
	return h
}

// Add places c at the front of the history. A conversation already present
// is moved rather than duplicated.
func (h *History) Add(c *Conversation) {
	h.Remove(c.ID)
	h.entries = append([]*Conversation{c}, h.entries...)
}

// Remove drops the conversation with the given ID and returns it.
func (h *History) Remove(id string) *Conversation {
	for i, c := range h.entries {
		if c.ID == id {
			h.entries = append(h.entries[:i], h.entries[i+1:]...)
			return c
		}
	}
	return nil
}

// Entries returns the conversations, most recent first.
func (h *History) Entries() []*Conversation {
	return h.entries
}

// Len returns the number of archived conversations.
func (h *History) Len() int {
	return len(h.entries)
}
