package palette

import (
	"fmt"
	"strings"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// ParseHex converte uma string hexadecimal em cor RGBA.
// Aceita "RRGGBB" e "RRGGBBAA", com ou sem '#' na frente.
// Sem canal alpha explícito, a cor é opaca (A = 255).
func ParseHex(s string) (rl.Color, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")

	if len(hex) != 6 && len(hex) != 8 {
		return rl.Color{}, fmt.Errorf("cor hexadecimal inválida %q: esperado RRGGBB ou RRGGBBAA", s)
	}

	var channels [4]uint8
	channels[3] = 255

	for i := 0; i < len(hex)/2; i++ {
		hi, ok1 := hexDigit(hex[i*2])
		lo, ok2 := hexDigit(hex[i*2+1])
		if !ok1 || !ok2 {
			return rl.Color{}, fmt.Errorf("cor hexadecimal inválida %q: dígito não-hexadecimal", s)
		}
		channels[i] = hi<<4 | lo
	}

	return rl.Color{R: channels[0], G: channels[1], B: channels[2], A: channels[3]}, nil
}

func hexDigit(c byte) (uint8, bool) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', true
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10, true
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10, true
	}
	return 0, false
}
