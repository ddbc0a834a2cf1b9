// render.go turns model state into viewport content.
//
// The chat transcript is rebuilt from the conversation on every change and
// re-segmented each time, so a reply that is still streaming shows an
// unterminated fence as plain text until its closing fence arrives.
//
// The features and FAQ pages are static markdown rendered through Glamour.
// Their output is cached per page, width bucket and theme. Glamour
// TermRenderer instances are cached per style and width in an LRU bounded by
// maxRendererCacheEntries, guarded by a mutex.
package app

import (
	"container/list"
	"sync"

	"github.com/charmbracelet/glamour"

	"github.com/treykane/cli-assistant/internal/chat"
)

// pageCacheKey identifies one rendered static page.
type pageCacheKey struct {
	page  page
	width int
	dark  bool
}

// rendererKey identifies a reusable Glamour renderer.
type rendererKey struct {
	style string
	width int
}

var (
	// maxRendererCacheEntries bounds the number of Glamour renderers kept.
	maxRendererCacheEntries = 8

	rendererCacheMu    sync.Mutex
	rendererCache      = map[rendererKey]*glamour.TermRenderer{}
	rendererCacheOrder = list.New()
	rendererCacheNodes = map[rendererKey]*list.Element{}
)

// refreshPage re-renders the content of the active page into the viewport.
func (m *Model) refreshPage() {
	layout := m.calculateLayout()
	m.viewport.Width = layout.InnerWidth
	m.viewport.Height = layout.ViewportHeight

	switch m.page {
	case pageChat:
		m.refreshChat()
	case pageFeatures:
		m.viewport.SetContent(m.renderStaticPage(pageFeatures, chat.FeaturesMarkdown()))
	case pageFAQ:
		m.viewport.SetContent(m.renderStaticPage(pageFAQ, chat.FAQMarkdown()))
	case pageProfile:
		m.viewport.SetContent(m.renderProfile(layout.InnerWidth))
	}
}

// refreshChat rebuilds the transcript. The view follows new output while it
// is scrolled to the bottom or a reply is in flight.
func (m *Model) refreshChat() {
	if m.page != pageChat {
		return
	}
	follow := m.viewport.AtBottom() || m.busy()
	m.viewport.SetContent(m.renderTranscript(m.viewport.Width))
	if follow {
		m.viewport.GotoBottom()
	}
}

// renderStaticPage renders markdown for p, reusing a cached result when the
// width bucket and theme match.
func (m *Model) renderStaticPage(p page, markdown string) string {
	key := pageCacheKey{page: p, width: renderWidthBucket(m.viewport.Width), dark: m.dark}
	if out, ok := m.pageCache[key]; ok {
		return out
	}
	out := renderMarkdown(markdown, key.width, glamourStyle(m.dark))
	if len(m.pageCache) >= MaxPageCacheEntries {
		clear(m.pageCache)
	}
	m.pageCache[key] = out
	return out
}

func glamourStyle(dark bool) string {
	if dark {
		return "dark"
	}
	return "light"
}

// renderMarkdown converts markdown to ANSI output. If the renderer fails the
// raw markdown is returned so the user still sees content.
func renderMarkdown(content string, width int, style string) string {
	if width <= 0 {
		width = 80
	}
	renderer, err := getRenderer(style, width)
	if err != nil {
		appLog.Error("create markdown renderer", "width", width, "style", style, "error", err)
		return content
	}
	out, err := renderer.Render(content)
	if err != nil {
		appLog.Error("render markdown content", "width", width, "style", style, "error", err)
		return content
	}
	return out
}

// getRenderer returns a cached Glamour TermRenderer for style and width,
// creating one if needed.
func getRenderer(style string, width int) (*glamour.TermRenderer, error) {
	key := rendererKey{style: style, width: width}
	rendererCacheMu.Lock()
	defer rendererCacheMu.Unlock()
	if renderer, ok := rendererCache[key]; ok {
		if node, ok := rendererCacheNodes[key]; ok {
			rendererCacheOrder.MoveToBack(node)
		}
		return renderer, nil
	}
	renderer, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(style),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return nil, err
	}
	rendererCache[key] = renderer
	rendererCacheNodes[key] = rendererCacheOrder.PushBack(key)
	evictOldestRendererIfNeeded()
	return renderer, nil
}

func evictOldestRendererIfNeeded() {
	for len(rendererCache) > maxRendererCacheEntries && rendererCacheOrder.Len() > 0 {
		oldest := rendererCacheOrder.Front()
		key, _ := oldest.Value.(rendererKey)
		rendererCacheOrder.Remove(oldest)
		delete(rendererCache, key)
		delete(rendererCacheNodes, key)
	}
}

func resetRendererCacheForTests() {
	rendererCacheMu.Lock()
	defer rendererCacheMu.Unlock()
	rendererCache = map[rendererKey]*glamour.TermRenderer{}
	rendererCacheOrder = list.New()
	rendererCacheNodes = map[rendererKey]*list.Element{}
}
