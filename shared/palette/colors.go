package palette

import rl "github.com/gen2brain/raylib-go/raylib"

// NamedColor representa uma cor nomeada da paleta padrão.
type NamedColor struct {
	Token   string
	Name    string
	R, G, B uint8
}

// DefaultColors é a tabela de cores embutidas da paleta.
// Usada para mapear tokens (ex: "AMBER", "COBALT") para valores RGB.
var DefaultColors = []NamedColor{
	{"AMBER", "amber", 255, 191, 0},
	{"AQUA", "aqua", 0, 255, 255},
	{"AZURE", "azure", 0, 127, 255},
	{"BLACK", "black", 0, 0, 0},
	{"BLUE", "blue", 0, 0, 255},
	{"BRASS", "brass", 181, 166, 66},
	{"BRONZE", "bronze", 205, 127, 50},
	{"CARDINAL", "cardinal", 196, 30, 58},
	{"CERULEAN", "cerulean", 0, 123, 167},
	{"CHARCOAL", "charcoal", 54, 69, 79},
	{"COBALT", "cobalt", 0, 71, 171},
	{"COPPER", "copper", 184, 115, 51},
	{"CRIMSON", "crimson", 220, 20, 60},
	{"EMERALD", "emerald", 80, 200, 120},
	{"GOLD", "gold", 212, 175, 55},
	{"GRAY", "gray", 128, 128, 128},
	{"GREEN", "green", 0, 255, 0},
	{"INDIGO", "indigo", 75, 0, 130},
	{"IVORY", "ivory", 255, 255, 240},
	{"JADE", "jade", 0, 168, 107},
	{"LAVENDER", "lavender", 230, 230, 250},
	{"MAROON", "maroon", 128, 0, 0},
	{"ORANGE", "orange", 255, 165, 0},
	{"PEARL", "pearl", 240, 234, 214},
	{"RED", "red", 255, 0, 0},
	{"SILVER", "silver", 192, 192, 192},
	{"TEAL", "teal", 0, 128, 128},
	{"VERMILION", "vermilion", 227, 66, 52},
	{"VIOLET", "violet", 143, 0, 255},
	{"WHITE", "white", 255, 255, 255},
	{"YELLOW", "yellow", 255, 255, 0},
}

var colorsByToken = func() map[string]NamedColor {
	m := make(map[string]NamedColor, len(DefaultColors))
	for _, c := range DefaultColors {
		m[c.Token] = c
	}
	return m
}()

// Lookup resolve um token da paleta padrão para uma cor opaca.
func Lookup(token string) (rl.Color, bool) {
	c, ok := colorsByToken[token]
	if !ok {
		return rl.Color{}, false
	}
	return rl.Color{R: c.R, G: c.G, B: c.B, A: 255}, true
}
