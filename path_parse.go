package figure

import (
	"errors"
	"fmt"

	"github.com/tdewolff/parse/v2/strconv"
)

// ErrBadPath is returned for malformed SVG path data.
var ErrBadPath = errors.New("bad path data")

func skipCommaWhitespace(path []byte) int {
	i := 0
	for i < len(path) && (path[i] == ' ' || path[i] == ',' || path[i] == '\n' || path[i] == '\r' || path[i] == '\t') {
		i++
	}
	return i
}

func parseNum(path []byte) (float64, int) {
	i := skipCommaWhitespace(path)
	f, n := strconv.ParseFloat(path[i:])
	if n == 0 {
		return 0.0, 0
	}
	return f, i + n
}

// MustParsePath parses SVG path data and panics on error.
func MustParsePath(s string) *Path {
	p, err := ParsePath(s)
	if err != nil {
		panic(err)
	}
	return p
}

// ParsePath parses SVG path data with the commands M, L, H, V, Q, T, C, S and Z, in absolute or
// relative form. Arcs are not supported.
func ParsePath(s string) (*Path, error) {
	path := []byte(s)
	p := &Path{}

	var prevCmd byte
	cpx, cpy := 0.0, 0.0 // control point of previous Bézier
	i := skipCommaWhitespace(path)
	for i < len(path) {
		cmd := prevCmd
		if path[i] >= 'A' {
			cmd = path[i]
			i++
		} else if prevCmd == 0 || prevCmd == 'Z' || prevCmd == 'z' {
			return nil, fmt.Errorf("%w: expected command at %d", ErrBadPath, i)
		} else if prevCmd == 'M' {
			cmd = 'L'
		} else if prevCmd == 'm' {
			cmd = 'l'
		}

		var nums [6]float64
		numLen := 0
		switch cmd {
		case 'M', 'm', 'L', 'l', 'T', 't':
			numLen = 2
		case 'H', 'h', 'V', 'v':
			numLen = 1
		case 'Q', 'q', 'S', 's':
			numLen = 4
		case 'C', 'c':
			numLen = 6
		case 'Z', 'z':
		default:
			return nil, fmt.Errorf("%w: unsupported command %q", ErrBadPath, cmd)
		}
		for k := 0; k < numLen; k++ {
			f, n := parseNum(path[i:])
			if n == 0 {
				return nil, fmt.Errorf("%w: expected number at %d", ErrBadPath, i)
			}
			nums[k] = f
			i += n
		}

		pos := p.Pos()
		x, y := pos.X, pos.Y
		if 'a' <= cmd && cmd != 'z' {
			for k := 0; k < numLen; k++ {
				if cmd == 'v' || k%2 == 1 && cmd != 'h' {
					nums[k] += y
				} else {
					nums[k] += x
				}
			}
		}

		switch cmd {
		case 'M', 'm':
			p.MoveTo(nums[0], nums[1])
		case 'Z', 'z':
			p.Close()
		case 'L', 'l':
			p.LineTo(nums[0], nums[1])
		case 'H', 'h':
			p.LineTo(nums[0], y)
		case 'V', 'v':
			p.LineTo(x, nums[0])
		case 'C', 'c':
			p.CubeTo(nums[0], nums[1], nums[2], nums[3], nums[4], nums[5])
			cpx, cpy = nums[2], nums[3]
		case 'S', 's':
			a, b := x, y
			if prevCmd == 'C' || prevCmd == 'c' || prevCmd == 'S' || prevCmd == 's' {
				a, b = 2*x-cpx, 2*y-cpy
			}
			p.CubeTo(a, b, nums[0], nums[1], nums[2], nums[3])
			cpx, cpy = nums[0], nums[1]
		case 'Q', 'q':
			p.QuadTo(nums[0], nums[1], nums[2], nums[3])
			cpx, cpy = nums[0], nums[1]
		case 'T', 't':
			a, b := x, y
			if prevCmd == 'Q' || prevCmd == 'q' || prevCmd == 'T' || prevCmd == 't' {
				a, b = 2*x-cpx, 2*y-cpy
			}
			p.QuadTo(a, b, nums[0], nums[1])
			cpx, cpy = a, b
		}
		prevCmd = cmd
		i += skipCommaWhitespace(path[i:])
	}
	return p, nil
}
