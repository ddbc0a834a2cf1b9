package chat

// Stream reveals a reply a few runes at a time to simulate token streaming.
type Stream struct {
	runes []rune
	pos   int
}

// NewStream prepares reply for incremental reveal.
func NewStream(reply string) *Stream {
	return &Stream{runes: []rune(reply)}
}

// Advance reveals up to n more runes and returns the visible text and
// whether the whole reply is now visible.
func (s *Stream) Advance(n int) (string, bool) {
	if n <= 0 {
		n = 1
	}
	s.pos = min(len(s.runes), s.pos+n)
	return string(s.runes[:s.pos]), s.Done()
}

// Visible returns the text revealed so far.
func (s *Stream) Visible() string {
	return string(s.runes[:s.pos])
}

// Full returns the complete reply.
func (s *Stream) Full() string {
	return string(s.runes)
}

// Done reports whether the whole reply has been revealed.
func (s *Stream) Done() bool {
	return s.pos >= len(s.runes)
}
