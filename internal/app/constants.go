package app

import "time"

// Layout constants.
const (
	// SidebarMaxWidth caps the sidebar on wide terminals.
	SidebarMaxWidth = 32

	// SidebarWidthDivider sets the sidebar to terminal_width / this value
	// when that is narrower than SidebarMaxWidth.
	SidebarWidthDivider = 4

	// InputRows is the number of text rows in the message composer.
	InputRows = 3

	// FooterRows is the height of the status footer.
	FooterRows = 1

	// BubbleWidthPercent is the share of the chat width a message bubble may use.
	BubbleWidthPercent = 80
)

// Input limits.
const (
	// PathCharLimit bounds the attachment path prompt.
	PathCharLimit = 512
)

// Timing.
const (
	// CopiedIndicatorDuration is how long the "Copied" marker stays visible.
	CopiedIndicatorDuration = 2 * time.Second
)

// Rendering.
const (
	// MaxPageCacheEntries bounds cached glamour renders of static pages.
	MaxPageCacheEntries = 16
)
