package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/treykane/cli-assistant/internal/segment"
)

// segmentRecord is the JSON form of one segment.
type segmentRecord struct {
	Kind     string `json:"kind"`
	Language string `json:"language,omitempty"`
	Content  string `json:"content"`
	Start    int    `json:"start"`
	End      int    `json:"end"`
}

// runSegment reads a message from the file named in args, or from stdin, and
// writes its segments to out, one JSON object per line.
func runSegment(args []string, stdin io.Reader, out io.Writer) error {
	if len(args) > 1 {
		return errors.New("segment takes at most one file argument")
	}

	in := stdin
	if len(args) == 1 && args[0] != "-" {
		f, err := os.Open(args[0])
		if err != nil {
			return fmt.Errorf("open message: %w", err)
		}
		defer f.Close()
		in = f
	}

	data, err := io.ReadAll(in)
	if err != nil {
		return fmt.Errorf("read message: %w", err)
	}

	enc := json.NewEncoder(out)
	enc.SetEscapeHTML(false)
	for _, s := range segment.Split(string(data)) {
		rec := segmentRecord{
			Kind:     s.Kind.String(),
			Language: s.Language,
			Content:  s.Content,
			Start:    s.Start,
			End:      s.End,
		}
		if err := enc.Encode(rec); err != nil {
			return fmt.Errorf("write segment: %w", err)
		}
	}
	return nil
}
