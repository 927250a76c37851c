// Package boxdraw selects the box-drawing glyph for lines meeting at a cell.
//
// A Junction describes the line weight crossing each side of a cell. Compose
// resolves it through a table of all 81 combinations built once at startup.
// Combinations without a mapped glyph resolve to Fallback; a cell with no
// lines resolves to Blank. Compose never fails.
package boxdraw

// Edge is the line state on one side of a cell
type Edge uint8

const (
	Absent Edge = iota
	Light
	Heavy
)

// edgeStates is the number of Edge values, the base of the junction index
const edgeStates = 3

// Junction is the set of edges meeting at one cell
type Junction struct {
	Top, Right, Bottom, Left Edge
}

const (
	// Blank is the glyph for a cell with no edges
	Blank = ' '
	// Fallback is the glyph for combinations with no mapped glyph
	Fallback = '┼'
)

// tableSize covers every Top/Right/Bottom/Left combination
const tableSize = edgeStates * edgeStates * edgeStates * edgeStates

var (
	glyphs [tableSize]rune
	mapped [tableSize]bool
)

func init() {
	buildTable()
}

// index encodes a junction as a base-3 number, Top most significant
// Out-of-range edges are clamped to Heavy
func (j Junction) index() int {
	return int(clamp(j.Top))*27 + int(clamp(j.Right))*9 + int(clamp(j.Bottom))*3 + int(clamp(j.Left))
}

func clamp(e Edge) Edge {
	if e > Heavy {
		return Heavy
	}
	return e
}

// junctionAt is the inverse of index
func junctionAt(i int) Junction {
	return Junction{
		Top:    Edge(i / 27 % 3),
		Right:  Edge(i / 9 % 3),
		Bottom: Edge(i / 3 % 3),
		Left:   Edge(i % 3),
	}
}

// Compose returns the glyph drawing the junction's lines
func Compose(j Junction) rune {
	return glyphs[j.index()]
}

// Lookup returns the glyph and whether it is an exact match rather than Fallback
// The empty junction reports true with Blank
func Lookup(j Junction) (rune, bool) {
	i := j.index()
	return glyphs[i], mapped[i]
}

// Uncovered lists the combinations that resolve to Fallback, in index order
func Uncovered() []Junction {
	var out []Junction
	for i := range mapped {
		if !mapped[i] {
			out = append(out, junctionAt(i))
		}
	}
	return out
}

// Lattice returns the junction at lattice point (row, col) of a grid with
// rows x cols cells; points range over [0,rows] x [0,cols].
// Lines on the outer boundary use outer, interior lines use inner.
func Lattice(row, col, rows, cols int, outer, inner Edge) Junction {
	if row < 0 || col < 0 || row > rows || col > cols {
		return Junction{}
	}

	// Weight of the horizontal line through this row and the vertical line through this column
	h := inner
	if row == 0 || row == rows {
		h = outer
	}
	v := inner
	if col == 0 || col == cols {
		v = outer
	}

	var j Junction
	if row > 0 {
		j.Top = v
	}
	if row < rows {
		j.Bottom = v
	}
	if col > 0 {
		j.Left = h
	}
	if col < cols {
		j.Right = h
	}
	return j
}

// HorizontalRun is the glyph for a horizontal line segment between junctions
func HorizontalRun(e Edge) rune {
	return Compose(Junction{Left: e, Right: e})
}

// VerticalRun is the glyph for a vertical line segment between junctions
func VerticalRun(e Edge) rune {
	return Compose(Junction{Top: e, Bottom: e})
}
