package palette

import (
	"testing"

	rl "github.com/gen2brain/raylib-go/raylib"
)

func TestParseHex(t *testing.T) {
	tests := []struct {
		input   string
		want    rl.Color
		wantErr bool
	}{
		{"#FF8800", rl.Color{R: 255, G: 136, B: 0, A: 255}, false},
		{"FF8800", rl.Color{R: 255, G: 136, B: 0, A: 255}, false},
		{"#ff8800", rl.Color{R: 255, G: 136, B: 0, A: 255}, false},
		{"#3366FFCC", rl.Color{R: 51, G: 102, B: 255, A: 204}, false},
		{"#000000", rl.Color{R: 0, G: 0, B: 0, A: 255}, false},
		{"  #FFFFFF ", rl.Color{R: 255, G: 255, B: 255, A: 255}, false},
		{"notacolor", rl.Color{}, true},
		{"#FF88", rl.Color{}, true},
		{"#GGHHII", rl.Color{}, true},
		{"", rl.Color{}, true},
		{"#FF8800AABB", rl.Color{}, true},
	}

	for _, tt := range tests {
		got, err := ParseHex(tt.input)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseHex(%q): err = %v, wantErr %v", tt.input, err, tt.wantErr)
			continue
		}
		if err == nil && got != tt.want {
			t.Errorf("ParseHex(%q) = %+v, esperado %+v", tt.input, got, tt.want)
		}
	}
}

func TestLookup(t *testing.T) {
	c, ok := Lookup("COBALT")
	if !ok {
		t.Fatal("COBALT deveria existir na paleta padrão")
	}
	want := rl.Color{R: 0, G: 71, B: 171, A: 255}
	if c != want {
		t.Errorf("COBALT = %+v, esperado %+v", c, want)
	}

	if _, ok := Lookup("COR_INEXISTENTE"); ok {
		t.Error("token desconhecido não deveria resolver")
	}
}

func TestDefaultColorsHaveUniqueTokens(t *testing.T) {
	seen := make(map[string]bool)
	for _, c := range DefaultColors {
		if seen[c.Token] {
			t.Errorf("token duplicado na paleta: %s", c.Token)
		}
		seen[c.Token] = true
	}
}
