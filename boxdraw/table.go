package boxdraw

// glyphEntry maps one junction to its glyph
type glyphEntry struct {
	j Junction
	g rune
}

// edges builds a junction in Top, Right, Bottom, Left order
func edges(top, right, bottom, left Edge) Junction {
	return Junction{Top: top, Right: right, Bottom: bottom, Left: left}
}

const (
	o = Absent
	l = Light
	h = Heavy
)

// glyphEntries covers U+2500..U+254B and the U+2574..U+257B end caps.
// Weight-changing straight segments (U+257C..U+257F) are not mapped: they
// resolve to Fallback.
var glyphEntries = []glyphEntry{
	// End caps
	{edges(o, o, o, l), '╴'},
	{edges(l, o, o, o), '╵'},
	{edges(o, l, o, o), '╶'},
	{edges(o, o, l, o), '╷'},
	{edges(o, o, o, h), '╸'},
	{edges(h, o, o, o), '╹'},
	{edges(o, h, o, o), '╺'},
	{edges(o, o, h, o), '╻'},

	// Straight lines
	{edges(o, l, o, l), '─'},
	{edges(o, h, o, h), '━'},
	{edges(l, o, l, o), '│'},
	{edges(h, o, h, o), '┃'},

	// Down and right
	{edges(o, l, l, o), '┌'},
	{edges(o, h, l, o), '┍'},
	{edges(o, l, h, o), '┎'},
	{edges(o, h, h, o), '┏'},

	// Down and left
	{edges(o, o, l, l), '┐'},
	{edges(o, o, l, h), '┑'},
	{edges(o, o, h, l), '┒'},
	{edges(o, o, h, h), '┓'},

	// Up and right
	{edges(l, l, o, o), '└'},
	{edges(l, h, o, o), '┕'},
	{edges(h, l, o, o), '┖'},
	{edges(h, h, o, o), '┗'},

	// Up and left
	{edges(l, o, o, l), '┘'},
	{edges(l, o, o, h), '┙'},
	{edges(h, o, o, l), '┚'},
	{edges(h, o, o, h), '┛'},

	// Vertical and right
	{edges(l, l, l, o), '├'},
	{edges(l, h, l, o), '┝'},
	{edges(h, l, l, o), '┞'},
	{edges(l, l, h, o), '┟'},
	{edges(h, l, h, o), '┠'},
	{edges(h, h, l, o), '┡'},
	{edges(l, h, h, o), '┢'},
	{edges(h, h, h, o), '┣'},

	// Vertical and left
	{edges(l, o, l, l), '┤'},
	{edges(l, o, l, h), '┥'},
	{edges(h, o, l, l), '┦'},
	{edges(l, o, h, l), '┧'},
	{edges(h, o, h, l), '┨'},
	{edges(h, o, l, h), '┩'},
	{edges(l, o, h, h), '┪'},
	{edges(h, o, h, h), '┫'},

	// Down and horizontal
	{edges(o, l, l, l), '┬'},
	{edges(o, l, l, h), '┭'},
	{edges(o, h, l, l), '┮'},
	{edges(o, h, l, h), '┯'},
	{edges(o, l, h, l), '┰'},
	{edges(o, l, h, h), '┱'},
	{edges(o, h, h, l), '┲'},
	{edges(o, h, h, h), '┳'},

	// Up and horizontal
	{edges(l, l, o, l), '┴'},
	{edges(l, l, o, h), '┵'},
	{edges(l, h, o, l), '┶'},
	{edges(l, h, o, h), '┷'},
	{edges(h, l, o, l), '┸'},
	{edges(h, l, o, h), '┹'},
	{edges(h, h, o, l), '┺'},
	{edges(h, h, o, h), '┻'},

	// Vertical and horizontal
	{edges(l, l, l, l), '┼'},
	{edges(l, l, l, h), '┽'},
	{edges(l, h, l, l), '┾'},
	{edges(l, h, l, h), '┿'},
	{edges(h, l, l, l), '╀'},
	{edges(l, l, h, l), '╁'},
	{edges(h, l, h, l), '╂'},
	{edges(h, l, l, h), '╃'},
	{edges(h, h, l, l), '╄'},
	{edges(l, l, h, h), '╅'},
	{edges(l, h, h, l), '╆'},
	{edges(h, h, l, h), '╇'},
	{edges(l, h, h, h), '╈'},
	{edges(h, l, h, h), '╉'},
	{edges(h, h, h, l), '╊'},
	{edges(h, h, h, h), '╋'},
}

func buildTable() {
	for i := range glyphs {
		glyphs[i] = Fallback
	}

	glyphs[0] = Blank
	mapped[0] = true

	for _, e := range glyphEntries {
		i := e.j.index()
		glyphs[i] = e.g
		mapped[i] = true
	}
}
