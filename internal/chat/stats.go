package chat

import (
	"strconv"
	"time"

	"github.com/dustin/go-humanize"
)

// Stats summarizes usage across the active conversation and history.
type Stats struct {
	Dialogs  int
	Messages int
}

// CollectStats counts dialogs with user input and all messages they hold.
func CollectStats(active *Conversation, history *History) Stats {
	var s Stats
	count := func(c *Conversation) {
		if c == nil || !c.HasUserMessages() {
			return
		}
		s.Dialogs++
		s.Messages += len(c.Messages)
	}
	count(active)
	if history != nil {
		for _, c := range history.Entries() {
			if active != nil && c.ID == active.ID {
				continue
			}
			count(c)
		}
	}
	return s
}

// CompactCount formats n the way the profile page shows counters: 127, 2.5k, 1.2M.
func CompactCount(n int) string {
	switch {
	case n < 1000:
		return strconv.Itoa(n)
	case n < 1_000_000:
		return humanize.FtoaWithDigits(float64(n)/1000, 1) + "k"
	default:
		return humanize.FtoaWithDigits(float64(n)/1_000_000, 1) + "M"
	}
}

// RelativeTime renders t relative to now, e.g. "2 hours ago".
func RelativeTime(t, now time.Time) string {
	return humanize.RelTime(t, now, "ago", "from now")
}
