package drill

// ColorKey identifies a dan row's display color. It always equals the
// question's multiplicand.
type ColorKey int

const (
	ColorRed ColorKey = iota + 1
	ColorOrange
	ColorYellow
	ColorYellowGreen
	ColorGreen
	ColorCyan
	ColorBlue
	ColorPurple
	ColorPink
)

var colorNames = [...]string{
	ColorRed:         "red",
	ColorOrange:      "orange",
	ColorYellow:      "yellow",
	ColorYellowGreen: "yellow-green",
	ColorGreen:       "green",
	ColorCyan:        "cyan",
	ColorBlue:        "blue",
	ColorPurple:      "purple",
	ColorPink:        "pink",
}

// Valid reports whether k is one of the nine row keys.
func (k ColorKey) Valid() bool {
	return k >= ColorRed && k <= ColorPink
}

func (k ColorKey) String() string {
	if !k.Valid() {
		return "unknown"
	}
	return colorNames[k]
}
