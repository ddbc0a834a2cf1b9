package chat

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
)

// Rule maps a set of trigger keywords to a canned reply.
type Rule struct {
	Name     string
	Keywords []string
	Reply    string
}

// Responder picks canned replies by keyword matching. It holds no state
// between calls.
type Responder struct {
	rules []Rule
	fold  cases.Caser
}

// NewResponder returns a responder with the built-in rules.
func NewResponder() *Responder {
	return NewResponderWithRules(defaultRules)
}

// NewResponderWithRules returns a responder that checks rules in order.
func NewResponderWithRules(rules []Rule) *Responder {
	return &Responder{rules: rules, fold: cases.Fold()}
}

// Match returns the first rule whose keyword occurs in prompt.
func (r *Responder) Match(prompt string) (Rule, bool) {
	folded := r.fold.String(prompt)
	for _, rule := range r.rules {
		for _, kw := range rule.Keywords {
			if strings.Contains(folded, r.fold.String(kw)) {
				return rule, true
			}
		}
	}
	return Rule{}, false
}

// Reply returns the canned reply for prompt, echoing the prompt when no rule
// matches.
func (r *Responder) Reply(prompt string) string {
	if rule, ok := r.Match(prompt); ok {
		return rule.Reply
	}
	return fallbackReply(prompt)
}

func fallbackReply(prompt string) string {
	return fmt.Sprintf("Got it! I understood your request: \"%s\". This is a demo reply. "+
		"A full version would answer with real AI analysis, supporting many languages and context.",
		prompt)
}

var defaultRules = []Rule{
	{
		Name:     "code",
		Keywords: []string{"code", "python", "program", "function", "код"},
		Reply: "Sure, here is a small example to start from:\n\n" +
			"```python\n" +
			"import csv\n\n" +
			"def read_rows(path):\n" +
			"    with open(path, newline=\"\") as f:\n" +
			"        return list(csv.DictReader(f))\n\n" +
			"print(read_rows(\"data.csv\"))\n" +
			"```\n\n" +
			"Copy the block, adjust the file name, and run it. Tell me what the data looks like and I can help further.",
	},
	{
		Name:     "translate",
		Keywords: []string{"translate", "translation", "переведи", "перевод"},
		Reply: "I can translate between more than 100 languages.\n" +
			"Paste the text and tell me the target language, for example:\n" +
			"\"Translate into English: Привет, как дела?\" → \"Hi, how are you?\"",
	},
	{
		Name:     "explain",
		Keywords: []string{"explain", "what is", "how does", "объясни"},
		Reply: "Happy to explain. A good way to learn a hard topic is:\n" +
			"1. Start from a concrete example.\n" +
			"2. Name the general rule behind it.\n" +
			"3. Check the rule on a new example.\n" +
			"Which topic should we take apart?",
	},
	{
		Name:     "idea",
		Keywords: []string{"idea", "creative", "brainstorm", "идея", "идею"},
		Reply: "Here are a few creative ideas:\n" +
			"- A weekly photo walk with a single-word theme.\n" +
			"- A recipe swap where everyone cooks from a random country.\n" +
			"- A tiny CLI tool that turns your notes into flashcards.\n" +
			"Want me to expand one of them?",
	},
	{
		Name:     "greeting",
		Keywords: []string{"hello", "hi there", "привет"},
		Reply:    "Hello! Ask me anything: translation, code, explanations, or ideas.",
	},
}
