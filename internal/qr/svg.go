package qr

import (
	"fmt"
	"strings"
)

// renderSVG emits a vector document from the encoder's module bitmap. Modules
// are walked row-major, so output is byte-stable for a given bitmap.
func renderSVG(bitmap [][]bool, size int) string {
	n := len(bitmap)
	var b strings.Builder
	fmt.Fprintf(&b,
		`<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d" shape-rendering="crispEdges">`,
		size, size, n, n,
	)
	b.WriteString(`<rect width="100%" height="100%" fill="#ffffff"/>`)
	b.WriteString(`<path fill="#000000" d="`)
	for y, row := range bitmap {
		for x, dark := range row {
			if dark {
				fmt.Fprintf(&b, "M%d %dh1v1h-1z", x, y)
			}
		}
	}
	b.WriteString(`"/></svg>`)
	return b.String()
}
