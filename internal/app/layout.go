// layout.go centralizes the terminal layout calculations.
//
// The sidebar takes the smaller of SidebarMaxWidth and
// terminal_width / SidebarWidthDivider; the main pane fills the rest. The last
// FooterRows rows hold the status line. On the chat page the main pane is
// split into a header row, the scrolling transcript and the composer, which
// is an indicator row, a rule and InputRows of text.
package app

// composerRows is the height of the chat composer block.
const composerRows = 1 + 1 + InputRows

// LayoutDimensions holds all calculated layout dimensions for the UI.
type LayoutDimensions struct {
	SidebarWidth   int // sidebar width including border/padding
	MainWidth      int // main pane width including border/padding
	ContentHeight  int // terminal height minus the footer
	InnerWidth     int // usable width inside the main pane
	InnerHeight    int // usable height inside the main pane
	ViewportHeight int // transcript or page rows, after header and composer
}

// calculateLayout computes all UI dimensions from the terminal size and the
// active page.
func (m *Model) calculateLayout() LayoutDimensions {
	sidebarWidth := min(SidebarMaxWidth, m.width/SidebarWidthDivider)
	mainWidth := max(0, m.width-sidebarWidth)
	contentHeight := max(0, m.height-FooterRows)

	frame := m.styles.mainPane
	innerWidth := max(0, mainWidth-frame.GetHorizontalFrameSize())
	innerHeight := max(0, contentHeight-frame.GetVerticalFrameSize())

	viewportHeight := max(0, innerHeight-1)
	if m.page == pageChat {
		viewportHeight = max(0, viewportHeight-composerRows)
	}

	return LayoutDimensions{
		SidebarWidth:   sidebarWidth,
		MainWidth:      mainWidth,
		ContentHeight:  contentHeight,
		InnerWidth:     innerWidth,
		InnerHeight:    innerHeight,
		ViewportHeight: viewportHeight,
	}
}

// updateLayout resizes the widgets and re-renders the main pane content.
func (m *Model) updateLayout() {
	layout := m.calculateLayout()
	m.input.SetWidth(layout.InnerWidth)
	m.input.SetHeight(InputRows)
	m.pathInput.Width = max(0, layout.InnerWidth-len(m.pathInput.Prompt)-1)
	m.refreshPage()
}

// bubbleWidth is the widest a message bubble may be at the current size.
func (m *Model) bubbleWidth() int {
	return max(12, m.viewport.Width*BubbleWidthPercent/100)
}
