package eyekit

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// hudStatus formats the editor state line shown by DrawHUD.
func hudStatus(st *EditorState) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s  mode: %s  selected: %d", st.Key, st.Mode(), st.Selection().Len())
	if ax := st.Axis(); ax != AxisNone {
		b.WriteString("  axis: ")
		if ax == AxisX {
			b.WriteString("X")
		} else {
			b.WriteString("Y")
		}
	}
	return b.String()
}

// DrawHUD prints the current FPS and TPS and, when st is non-nil, the
// editor's mode and selection at the top-left of dst.
func DrawHUD(dst *ebiten.Image, st *EditorState) {
	msg := fmt.Sprintf("FPS: %.1f\nTPS: %.1f", ebiten.ActualFPS(), ebiten.ActualTPS())
	if st != nil {
		msg += "\n" + hudStatus(st)
	}
	// Semi-transparent background for readability
	lines := strings.Count(msg, "\n") + 1
	fillRect(dst, Rect{Width: 8 + 6*float64(longestLine(msg)), Height: 4 + 16*float64(lines)}, color.RGBA{0, 0, 0, 128})
	ebitenutil.DebugPrintAt(dst, msg, 2, 2)
}

func longestLine(s string) int {
	n := 0
	for _, l := range strings.Split(s, "\n") {
		n = max(n, len(l))
	}
	return n
}
