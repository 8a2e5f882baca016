package mcg

import (
	"errors"
	"fmt"
	"strings"

	"github.com/tdewolff/parse/v2/strconv"
)

// ErrBadPath is returned when path notation cannot be parsed.
var ErrBadPath = errors.New("bad path")

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

// ParsePolygons parses polygons in SVG-like path notation, such as "M0 0 L10 0 L10 10 Z". Only the
// straight line commands M, L, H, V and Z are allowed, in absolute or relative (lowercase) form.
// Every subpath is a closed polygon, whether or not it ends in Z. Coordinates are in float space
// and snapped to the fixed-point grid of ctx.
func ParsePolygons(ctx *Context, s string) (*PolygonSet, error) {
	path := []byte(s)
	ps := NewPolygonSet(ctx)

	var points []Vector
	flush := func() {
		if 0 < len(points) {
			ps.Add(NewPolygon(ctx, points))
			points = nil
		}
	}

	var cmd byte
	x, y := 0.0, 0.0 // current position
	x0, y0 := 0.0, 0.0
	i := 0
	for {
		i += skipCommaWhitespace(path[i:])
		if len(path) <= i {
			break
		}

		if 'A' <= path[i] {
			cmd = path[i]
			i++
		} else if cmd == 0 {
			return nil, fmt.Errorf("%w: expected command at position %d", ErrBadPath, i)
		} else if cmd == 'M' {
			// coordinates after a move are implicit line commands
			cmd = 'L'
		} else if cmd == 'm' {
			cmd = 'l'
		} else if cmd == 'Z' || cmd == 'z' {
			return nil, fmt.Errorf("%w: expected command at position %d", ErrBadPath, i)
		}

		var nums [2]float64
		num := 0
		switch cmd {
		case 'M', 'm', 'L', 'l':
			num = 2
		case 'H', 'h', 'V', 'v':
			num = 1
		case 'Z', 'z':
		default:
			return nil, fmt.Errorf("%w: unsupported command %q at position %d", ErrBadPath, cmd, i-1)
		}
		for j := 0; j < num; j++ {
			f, n := parseNum(path[i:])
			if n == 0 {
				return nil, fmt.Errorf("%w: expected number at position %d", ErrBadPath, i)
			}
			nums[j] = f
			i += n
		}

		switch cmd {
		case 'M', 'm':
			flush()
			if cmd == 'm' {
				nums[0] += x
				nums[1] += y
			}
			x, y = nums[0], nums[1]
			x0, y0 = x, y
		case 'L', 'l':
			if cmd == 'l' {
				nums[0] += x
				nums[1] += y
			}
			x, y = nums[0], nums[1]
		case 'H', 'h':
			if cmd == 'h' {
				nums[0] += x
			}
			x = nums[0]
		case 'V', 'v':
			if cmd == 'v' {
				nums[0] += y
			}
			y = nums[0]
		case 'Z', 'z':
			flush()
			x, y = x0, y0
			continue
		}
		points = append(points, ctx.Vector(x, y))
	}
	flush()
	return ps, nil
}

// MustParsePolygons is like ParsePolygons but panics on error.
func MustParsePolygons(ctx *Context, s string) *PolygonSet {
	ps, err := ParsePolygons(ctx, s)
	if err != nil {
		panic(err)
	}
	return ps
}

// String returns the polygon in path notation in float space.
func (p *Polygon) String() string {
	sb := strings.Builder{}
	writePolygon(&sb, p)
	return sb.String()
}

func writePolygon(sb *strings.Builder, p *Polygon) {
	for i, pt := range p.points {
		if i == 0 {
			sb.WriteString("M")
		} else {
			sb.WriteString(" L")
		}
		fmt.Fprintf(sb, "%g %g", p.ctx.Itof(pt.H), p.ctx.Itof(pt.V))
	}
	if p.closed && 0 < len(p.points) {
		sb.WriteString(" Z")
	}
}

// String returns all polygons in path notation in float space, parseable by ParsePolygons.
func (s *PolygonSet) String() string {
	sb := strings.Builder{}
	for i, p := range s.elements {
		if i != 0 {
			sb.WriteString(" ")
		}
		writePolygon(&sb, p)
	}
	return sb.String()
}

// String returns the segments as path notation of unconnected lines in float space.
func (s *SegmentSet) String() string {
	sb := strings.Builder{}
	for i, seg := range s.elements {
		if i != 0 {
			sb.WriteString(" ")
		}
		fmt.Fprintf(&sb, "M%g %g L%g %g", s.ctx.Itof(seg.P1.H), s.ctx.Itof(seg.P1.V), s.ctx.Itof(seg.P2.H), s.ctx.Itof(seg.P2.V))
	}
	return sb.String()
}
