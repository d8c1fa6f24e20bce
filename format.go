package stendhal

// Format identifies one inline style: one of the 16 named colors, one of the
// five style toggles, or the reset mark. Every Format maps to exactly one
// escape-code character and vice versa.
type Format uint8

const (
	Black Format = iota
	DarkBlue
	DarkGreen
	DarkAqua
	DarkRed
	DarkPurple
	Gold
	Gray
	DarkGray
	Blue
	Green
	Aqua
	Red
	LightPurple
	Yellow
	White
	Obfuscated
	Bold
	Strikethrough
	Underline
	Italic
	Reset
)

// FormatByCode resolves the single character following the § sentinel
// against the fixed code table. It reports false for any character outside
// the recognized alphabet (0-9, a-f, k-o, r).
func FormatByCode(code rune) (Format, bool) {
	switch code {
	case '0':
		return Black, true
	case '1':
		return DarkBlue, true
	case '2':
		return DarkGreen, true
	case '3':
		return DarkAqua, true
	case '4':
		return DarkRed, true
	case '5':
		return DarkPurple, true
	case '6':
		return Gold, true
	case '7':
		return Gray, true
	case '8':
		return DarkGray, true
	case '9':
		return Blue, true
	case 'a':
		return Green, true
	case 'b':
		return Aqua, true
	case 'c':
		return Red, true
	case 'd':
		return LightPurple, true
	case 'e':
		return Yellow, true
	case 'f':
		return White, true
	case 'k':
		return Obfuscated, true
	case 'l':
		return Bold, true
	case 'm':
		return Strikethrough, true
	case 'n':
		return Underline, true
	case 'o':
		return Italic, true
	case 'r':
		return Reset, true
	}
	return 0, false
}

var formatCodes = [...]byte{
	Black:         '0',
	DarkBlue:      '1',
	DarkGreen:     '2',
	DarkAqua:      '3',
	DarkRed:       '4',
	DarkPurple:    '5',
	Gold:          '6',
	Gray:          '7',
	DarkGray:      '8',
	Blue:          '9',
	Green:         'a',
	Aqua:          'b',
	Red:           'c',
	LightPurple:   'd',
	Yellow:        'e',
	White:         'f',
	Obfuscated:    'k',
	Bold:          'l',
	Strikethrough: 'm',
	Underline:     'n',
	Italic:        'o',
	Reset:         'r',
}

// Code returns the one-character escape code for f.
func (f Format) Code() byte {
	return formatCodes[f]
}

// String renders the full sentinel escape for f, e.g. "§c" for Red.
func (f Format) String() string {
	return "§" + string(rune(f.Code()))
}

// IsColor reports whether f is one of the 16 named colors.
func (f Format) IsColor() bool {
	return f <= White
}

// Color returns the color view of f. It reports false for style toggles and
// the reset mark.
func (f Format) Color() (Color, bool) {
	if !f.IsColor() {
		return 0, false
	}
	return Color(f), true
}

// Color is one of the 16 named Minecraft text colors. Each color carries a
// proper name and fixed foreground and background RGB values.
type Color uint8

// Format returns c as a Format value.
func (c Color) Format() Format {
	return Format(c)
}

// RGB is a 24-bit color value.
type RGB struct {
	R, G, B uint8
}

const hexDigits = "0123456789ABCDEF"

// Hex renders the value as "#RRGGBB" with uppercase digits.
func (v RGB) Hex() string {
	b := [7]byte{
		'#',
		hexDigits[v.R>>4], hexDigits[v.R&0xf],
		hexDigits[v.G>>4], hexDigits[v.G&0xf],
		hexDigits[v.B>>4], hexDigits[v.B&0xf],
	}
	return string(b[:])
}

type colorValue struct {
	name string
	fg   RGB
	bg   RGB
}

// Fixed per Minecraft Java Edition. Background values are the in-game text
// shadow colors.
var colorValues = [...]colorValue{
	Black:       {"black", RGB{0, 0, 0}, RGB{0, 0, 0}},
	DarkBlue:    {"dark_blue", RGB{0, 0, 170}, RGB{0, 0, 42}},
	DarkGreen:   {"dark_green", RGB{0, 170, 0}, RGB{0, 42, 0}},
	DarkAqua:    {"dark_aqua", RGB{0, 170, 170}, RGB{0, 42, 42}},
	DarkRed:     {"dark_red", RGB{170, 0, 0}, RGB{42, 0, 0}},
	DarkPurple:  {"dark_purple", RGB{170, 0, 170}, RGB{42, 0, 42}},
	Gold:        {"gold", RGB{255, 170, 0}, RGB{42, 42, 0}},
	Gray:        {"gray", RGB{170, 170, 170}, RGB{42, 42, 42}},
	DarkGray:    {"dark_gray", RGB{85, 85, 85}, RGB{21, 21, 21}},
	Blue:        {"blue", RGB{85, 85, 255}, RGB{21, 21, 63}},
	Green:       {"green", RGB{85, 255, 85}, RGB{21, 63, 21}},
	Aqua:        {"aqua", RGB{85, 255, 255}, RGB{21, 63, 63}},
	Red:         {"red", RGB{255, 85, 85}, RGB{63, 21, 21}},
	LightPurple: {"light_purple", RGB{255, 85, 255}, RGB{63, 21, 63}},
	Yellow:      {"yellow", RGB{255, 255, 85}, RGB{63, 63, 21}},
	White:       {"white", RGB{255, 255, 255}, RGB{63, 63, 63}},
}

// Name returns the proper name of the color, e.g. "light_purple".
func (c Color) Name() string {
	return colorValues[c].name
}

// Foreground returns the text color value.
func (c Color) Foreground() RGB {
	return colorValues[c].fg
}

// Background returns the text shadow color value.
func (c Color) Background() RGB {
	return colorValues[c].bg
}

// Colors returns all 16 named colors in code order.
func Colors() []Color {
	out := make([]Color, 16)
	for i := range out {
		out[i] = Color(i)
	}
	return out
}
