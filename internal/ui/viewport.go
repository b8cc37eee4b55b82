package ui

// Viewport is a fixed-height window over a list of rendered lines.
//
// Replacing the content follows the stick-to-bottom rule: if the window was
// within threshold lines of the bottom before the update it is moved to the
// bottom afterwards, otherwise the reading position is kept.
type Viewport struct {
	height    int
	threshold int
	offset    int
	lines     []string
}

func NewViewport(height, threshold int) *Viewport {
	if height < 1 {
		height = 1
	}

	return &Viewport{height: height, threshold: threshold}
}

// AtBottom reports whether the window is within the threshold of the bottom.
func (v *Viewport) AtBottom() bool {
	return len(v.lines)-v.offset-v.height < v.threshold
}

func (v *Viewport) SetContent(lines []string) {
	stick := v.AtBottom()
	v.lines = lines

	if stick {
		v.offset = v.maxOffset()
		return
	}

	v.offset = min(v.offset, v.maxOffset())
}

func (v *Viewport) ScrollUp(n int) {
	v.offset = max(0, v.offset-n)
}

func (v *Viewport) ScrollDown(n int) {
	v.offset = min(v.maxOffset(), v.offset+n)
}

func (v *Viewport) Offset() int {
	return v.offset
}

func (v *Viewport) Height() int {
	return v.height
}

// Visible returns the lines currently inside the window.
func (v *Viewport) Visible() []string {
	end := min(len(v.lines), v.offset+v.height)

	return v.lines[v.offset:end]
}

func (v *Viewport) maxOffset() int {
	return max(0, len(v.lines)-v.height)
}
