package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestRunSegmentReadsStdin(t *testing.T) {
	var out bytes.Buffer
	in := strings.NewReader("Look:\n```go\nfmt.Println(1)\n```\ndone")

	if err := runSegment(nil, in, &out); err != nil {
		t.Fatalf("runSegment: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected 3 JSON lines, got %d: %q", len(lines), out.String())
	}
	var code segmentRecord
	if err := json.Unmarshal([]byte(lines[1]), &code); err != nil {
		t.Fatalf("decode line: %v", err)
	}
	if code.Kind != "code" || code.Language != "go" || code.Content != "fmt.Println(1)" {
		t.Fatalf("unexpected code record: %+v", code)
	}
	if code.Start != 6 {
		t.Fatalf("expected code to start at byte 6, got %d", code.Start)
	}
}

func TestRunSegmentReadsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "msg.txt")
	if err := os.WriteFile(path, []byte("just text"), 0o600); err != nil {
		t.Fatalf("write message: %v", err)
	}

	var out bytes.Buffer
	if err := runSegment([]string{path}, strings.NewReader("ignored"), &out); err != nil {
		t.Fatalf("runSegment: %v", err)
	}
	if got := strings.TrimSpace(out.String()); got != `{"kind":"text","content":"just text","start":0,"end":9}` {
		t.Fatalf("unexpected output %q", got)
	}
}

func TestRunSegmentEmptyInputPrintsNothing(t *testing.T) {
	var out bytes.Buffer
	if err := runSegment(nil, strings.NewReader(""), &out); err != nil {
		t.Fatalf("runSegment: %v", err)
	}
	if out.Len() != 0 {
		t.Fatalf("expected no output, got %q", out.String())
	}
}

func TestRunSegmentMissingFile(t *testing.T) {
	err := runSegment([]string{filepath.Join(t.TempDir(), "nope")}, nil, &bytes.Buffer{})
	if err == nil || !strings.Contains(err.Error(), "open message") {
		t.Fatalf("expected open error, got %v", err)
	}
}

func TestRunSegmentRejectsExtraArgs(t *testing.T) {
	if err := runSegment([]string{"a", "b"}, nil, &bytes.Buffer{}); err == nil {
		t.Fatal("expected error for two arguments")
	}
}
