package scene

import (
	"bufio"
	"encoding/xml"
	"fmt"
	"io"
	"strings"

	"sgthelper/internal/config"
)

const svgMargin = 20.0

// WriteSVG writes b as a standalone SVG document. Coordinates are shifted so
// the drawing starts svgMargin units in from the top-left corner.
func WriteSVG(w io.Writer, b Batch, theme config.Theme) error {
	bw := bufio.NewWriter(w)
	bb, ok := b.Bounds()
	if !ok {
		bb = Bounds{}
	}
	dx := svgMargin - bb.MinX
	dy := svgMargin - bb.MinY
	width := bb.MaxX - bb.MinX + 2*svgMargin
	height := bb.MaxY - bb.MinY + 2*svgMargin

	fmt.Fprintf(bw, `<svg xmlns="http://www.w3.org/2000/svg" width="%s" height="%s" viewBox="0 0 %s %s">`+"\n",
		num(width), num(height), num(width), num(height))
	fmt.Fprintf(bw, `<g stroke="%s" stroke-width="1" fill="none">`+"\n", attr(theme.Stroke))
	for _, l := range b.Lines {
		fmt.Fprintf(bw, `<line x1="%s" y1="%s" x2="%s" y2="%s"/>`+"\n",
			num(l.X1+dx), num(l.Y1+dy), num(l.X2+dx), num(l.Y2+dy))
	}
	fmt.Fprintln(bw, `</g>`)
	if len(b.Labels) > 0 {
		fmt.Fprintf(bw, `<g font-family="%s" font-size="%d" fill="%s" text-anchor="middle" dominant-baseline="middle">`+"\n",
			attr(theme.FontFamily), theme.FontSize, attr(theme.Stroke))
		for _, t := range b.Labels {
			fmt.Fprintf(bw, `<text x="%s" y="%s">%s</text>`+"\n", num(t.X+dx), num(t.Y+dy), attr(t.Body))
		}
		fmt.Fprintln(bw, `</g>`)
	}
	fmt.Fprintln(bw, `</svg>`)
	return bw.Flush()
}

func num(v float64) string {
	return strings.TrimSuffix(strings.TrimRight(fmt.Sprintf("%.2f", v), "0"), ".")
}

func attr(s string) string {
	var sb strings.Builder
	_ = xml.EscapeText(&sb, []byte(s))
	return sb.String()
}
