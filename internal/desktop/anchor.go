package desktop

// Anchor is the screen corner the tray lives in.
type Anchor int

const (
	AnchorTopRight Anchor = iota
	AnchorBottomRight
	AnchorTopLeft
	AnchorBottomLeft
)

const (
	// edgeMargin 窗口与屏幕边缘的间距
	edgeMargin = 8
	// barReserve keeps the window clear of the taskbar / menu bar.
	barReserve = 48
)

// ParseAnchor maps a settings value to an Anchor. "auto" (or empty) follows
// the platform: taskbar at the bottom on Windows, menu bar on top elsewhere.
func ParseAnchor(s, goos string) Anchor {
	switch s {
	case "top-right":
		return AnchorTopRight
	case "bottom-right":
		return AnchorBottomRight
	case "top-left":
		return AnchorTopLeft
	case "bottom-left":
		return AnchorBottomLeft
	}
	if goos == "windows" {
		return AnchorBottomRight
	}
	return AnchorTopRight
}

// Place returns the top-left position of a winW x winH window tucked into
// the anchor corner of a screenW x screenH screen. The result is never
// negative, so an oversized window is pinned to the top-left.
func (a Anchor) Place(screenW, screenH, winW, winH int) (x, y int) {
	left := a == AnchorTopLeft || a == AnchorBottomLeft
	top := a == AnchorTopRight || a == AnchorTopLeft

	if left {
		x = edgeMargin
	} else {
		x = screenW - winW - edgeMargin
	}
	if top {
		y = barReserve
	} else {
		y = screenH - winH - barReserve
	}
	return max(x, 0), max(y, 0)
}
