package constant

// Default glyph table, indexed Up, Down, Left, Right, Body
const (
	GlyphUp    = '⮝'
	GlyphDown  = '⮟'
	GlyphLeft  = '⮜'
	GlyphRight = '➤'
	GlyphBody  = '*'
	GlyphFood  = '@'
)

// Backend names accepted by -backend and the config file
const (
	BackendANSI  = "ansi"
	BackendTcell = "tcell"
)
