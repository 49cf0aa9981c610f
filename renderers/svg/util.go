package svg

import (
	"fmt"
	"math"
	"strings"

	"github.com/tdewolff/figure"
	"github.com/tdewolff/minify/v2"
)

// Precision is the number of significant digits of written numbers.
var Precision = 8

type num float64

func (f num) String() string {
	s := fmt.Sprintf("%.*g", Precision, f)
	if num(math.MaxInt32) < f || f < num(math.MinInt32) {
		if i := strings.IndexAny(s, ".eE"); i == -1 {
			s += ".0"
		}
	}
	return string(minify.Number([]byte(s), Precision))
}

// pathData returns the path as SVG path data with minified numbers.
func pathData(p *figure.Path) string {
	sb := strings.Builder{}
	start := p.StartPos()
	fmt.Fprintf(&sb, "M%v %v", num(start.X), num(start.Y))
	for _, seg := range p.Segments() {
		switch seg.Cmd {
		case figure.LineToCmd:
			fmt.Fprintf(&sb, "L%v %v", num(seg.End.X), num(seg.End.Y))
		case figure.QuadToCmd:
			fmt.Fprintf(&sb, "Q%v %v %v %v", num(seg.CP1.X), num(seg.CP1.Y), num(seg.End.X), num(seg.End.Y))
		case figure.CubeToCmd:
			fmt.Fprintf(&sb, "C%v %v %v %v %v %v", num(seg.CP1.X), num(seg.CP1.Y), num(seg.CP2.X), num(seg.CP2.Y), num(seg.End.X), num(seg.End.Y))
		case figure.CloseCmd:
			sb.WriteString("z")
		}
	}
	return sb.String()
}
