package app

import (
	"testing"

	"github.com/charmbracelet/x/ansi"

	"github.com/treykane/cli-assistant/internal/segment"
)

func TestGetRendererCachesPerStyleAndWidth(t *testing.T) {
	resetRendererCacheForTests()
	t.Cleanup(resetRendererCacheForTests)

	dark, err := getRenderer("dark", 80)
	if err != nil {
		t.Fatalf("getRenderer: %v", err)
	}
	again, err := getRenderer("dark", 80)
	if err != nil {
		t.Fatalf("getRenderer: %v", err)
	}
	if dark != again {
		t.Fatal("expected cached renderer to be reused")
	}
	light, err := getRenderer("light", 80)
	if err != nil {
		t.Fatalf("getRenderer: %v", err)
	}
	if light == dark {
		t.Fatal("expected a separate renderer per style")
	}
}

func TestGetRendererEvictsLeastRecentlyUsed(t *testing.T) {
	resetRendererCacheForTests()
	t.Cleanup(resetRendererCacheForTests)

	for width := 20; width < 20+(maxRendererCacheEntries+2)*10; width += 10 {
		if _, err := getRenderer("dark", width); err != nil {
			t.Fatalf("getRenderer(%d): %v", width, err)
		}
	}

	rendererCacheMu.Lock()
	defer rendererCacheMu.Unlock()
	if len(rendererCache) != maxRendererCacheEntries {
		t.Fatalf("expected %d cached renderers, got %d", maxRendererCacheEntries, len(rendererCache))
	}
	if _, ok := rendererCache[rendererKey{style: "dark", width: 20}]; ok {
		t.Fatal("expected the oldest renderer to be evicted")
	}
}

func TestRenderWidthBucket(t *testing.T) {
	tests := []struct {
		width int
		want  int
	}{
		{width: 0, want: 80},
		{width: 15, want: 15},
		{width: 81, want: 80},
		{width: 119, want: 100},
	}
	for _, tt := range tests {
		if got := renderWidthBucket(tt.width); got != tt.want {
			t.Fatalf("renderWidthBucket(%d) = %d, want %d", tt.width, got, tt.want)
		}
	}
}

func TestHighlightCodeKeepsLines(t *testing.T) {
	code := "def f():\n    return 1"
	out := highlightCode(code, "python", true)
	if got := segment.LineCount(ansi.Strip(out)); got != 2 {
		t.Fatalf("expected 2 highlighted lines, got %d: %q", got, out)
	}
}
