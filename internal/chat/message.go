// Package chat holds the conversation model of the assistant demo: messages,
// conversations, the in-memory dialog history, and the canned responder that
// stands in for a real model.
package chat

import (
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/treykane/cli-assistant/internal/segment"
)

// Role identifies the sender of a message.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// DisplayName returns the label shown above a message.
func (r Role) DisplayName() string {
	switch r {
	case RoleUser:
		return "You"
	case RoleAssistant:
		return "Assistant"
	default:
		return string(r)
	}
}

// Message is a single entry in a conversation.
type Message struct {
	ID         string
	Role       Role
	Content    string
	Timestamp  time.Time
	Attachment *Attachment
	Liked      bool
}

// NewMessage creates a message stamped with a fresh ID and the given time.
func NewMessage(role Role, content string, now time.Time) Message {
	return Message{
		ID:        uuid.NewString(),
		Role:      role,
		Content:   content,
		Timestamp: now,
	}
}

// Segments splits the message content for rendering.
func (m Message) Segments() []segment.Segment {
	return segment.Split(m.Content)
}

// CodeBlocks returns the fenced code blocks of the message in order.
func (m Message) CodeBlocks() []segment.Segment {
	return segment.CodeBlocks(m.Content)
}

// MaxTitleRunes bounds conversation titles derived from the first prompt.
const MaxTitleRunes = 40

// TitleFromPrompt derives a short single-line conversation title.
func TitleFromPrompt(prompt string) string {
	title := strings.Join(strings.Fields(prompt), " ")
	if title == "" {
		return "New chat"
	}
	if utf8.RuneCountInString(title) <= MaxTitleRunes {
		return title
	}
	runes := []rune(title)
	return strings.TrimSpace(string(runes[:MaxTitleRunes-1])) + "…"
}
