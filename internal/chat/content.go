package chat

import "strings"

// Prompt is an example prompt offered on the welcome screen.
type Prompt struct {
	Icon string
	Text string
}

// ExamplePrompts are shown while a conversation holds only the greeting.
var ExamplePrompts = []Prompt{
	{Icon: "文", Text: "Translate text into English"},
	{Icon: "</>", Text: "Help me with code"},
	{Icon: "📖", Text: "Explain a hard topic"},
	{Icon: "💡", Text: "Give me a creative idea"},
}

// Feature is one card of the features showcase.
type Feature struct {
	Title       string
	Description string
}

// Features lists the showcase cards.
var Features = []Feature{
	{Title: "Multilingual", Description: "Talk in 100+ languages with automatic translation and context adaptation."},
	{Title: "Fast answers", Description: "Instant request processing powered by modern AI technology."},
	{Title: "Security", Description: "Full data confidentiality and protection of personal information."},
	{Title: "Smart context", Description: "Remembers previous dialogs for more precise, personal answers."},
}

// ComingSoon lists features announced but not yet available.
var ComingSoon = []string{
	"Integrations with popular services and APIs",
	"Voice input and spoken answers",
	"Working with documents and images",
	"Personal AI assistants that learn",
}

// FAQEntry is one question and answer pair.
type FAQEntry struct {
	Question string
	Answer   string
}

// FAQ lists the frequently asked questions.
var FAQ = []FAQEntry{
	{
		Question: "How does multilingual support work?",
		Answer:   "The assistant detects the language of your message and answers in the same language. You can also ask it to translate text into any of 100+ supported languages.",
	},
	{
		Question: "Is dialog history saved?",
		Answer:   "Dialogs are kept in the sidebar for the current session. You can go back to any earlier conversation at any time.",
	},
	{
		Question: "How safe is my data?",
		Answer:   "Nothing leaves your machine: this demo has no network access and attached files are never read.",
	},
	{
		Question: "Can I use the assistant for work?",
		Answer:   "Of course! It helps with a wide range of tasks: writing code, translation, data analysis, learning and more.",
	},
}

// FeaturesMarkdown renders the features page as markdown.
func FeaturesMarkdown() string {
	var b strings.Builder
	b.WriteString("# AI Assistant features\n\n")
	b.WriteString("A powerful tool for any task.\n\n")
	for _, f := range Features {
		b.WriteString("## " + f.Title + "\n\n")
		b.WriteString(f.Description + "\n\n")
	}
	b.WriteString("## Coming soon\n\n")
	for _, item := range ComingSoon {
		b.WriteString("- ✓ " + item + "\n")
	}
	return b.String()
}

// FAQMarkdown renders the FAQ page as markdown.
func FAQMarkdown() string {
	var b strings.Builder
	b.WriteString("# Frequently asked questions\n\n")
	for _, e := range FAQ {
		b.WriteString("## " + e.Question + "\n\n")
		b.WriteString(e.Answer + "\n\n")
	}
	b.WriteString("---\n\n")
	b.WriteString("### Need help?\n\n")
	b.WriteString("Contact support and we will answer all your questions: `support@example.com`\n")
	return b.String()
}
