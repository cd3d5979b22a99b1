package layers

import (
	"errors"
	"testing"
)

func testRegistry(t *testing.T) *Registry {
	t.Helper()
	r, err := NewRegistry("Default", "Terrain", "Props", "Units")
	if err != nil {
		t.Fatalf("NewRegistry: %v", err)
	}
	return r
}

func TestCreateMaskMembership(t *testing.T) {
	r := testRegistry(t)

	mask, err := r.CreateMask("Terrain", "Units")
	if err != nil {
		t.Fatalf("CreateMask: %v", err)
	}

	tests := []struct {
		layer string
		want  bool
	}{
		{"Terrain", true},
		{"Units", true},
		{"Default", false},
		{"Props", false},
	}

	for _, tt := range tests {
		idx, ok := r.IndexOf(tt.layer)
		if !ok {
			t.Fatalf("IndexOf(%q) não resolveu", tt.layer)
		}
		if got := IsLayerInMask(idx, mask); got != tt.want {
			t.Errorf("IsLayerInMask(%q) = %v, esperado %v", tt.layer, got, tt.want)
		}
	}
}

func TestCreateMaskUnknownLayerIsSkipped(t *testing.T) {
	r := testRegistry(t)

	mask, err := r.CreateMask("Props", "CamadaFantasma")
	if err == nil {
		t.Fatal("esperado erro para camada desconhecida")
	}
	if !errors.Is(err, ErrUnknownLayer) {
		t.Errorf("erro não embrulha ErrUnknownLayer: %v", err)
	}

	// A camada válida ainda entra na máscara
	idx, _ := r.IndexOf("Props")
	if !IsLayerInMask(idx, mask) {
		t.Error("camada válida deveria estar na máscara mesmo com erro")
	}
}

func TestCreateMaskAllUnknownYieldsZero(t *testing.T) {
	r := testRegistry(t)

	mask, err := r.CreateMask("Nada", "Nenhures")
	if err == nil {
		t.Fatal("esperado erro")
	}
	if mask != 0 {
		t.Errorf("máscara = %b, esperado 0", mask)
	}
}

func TestCreateMaskEmptyInput(t *testing.T) {
	r := testRegistry(t)

	mask, err := r.CreateMask()
	if err != nil {
		t.Errorf("entrada vazia não deve gerar erro: %v", err)
	}
	if mask != 0 {
		t.Errorf("máscara = %b, esperado 0 (não casa com nada)", mask)
	}
	if IsLayerInMask(0, mask) {
		t.Error("máscara vazia não deve conter camada nenhuma")
	}
}

func TestNewRegistryValidation(t *testing.T) {
	tests := []struct {
		name    string
		layers  []string
		wantErr bool
	}{
		{"ok", []string{"A", "B"}, false},
		{"duplicate", []string{"A", "A"}, true},
		{"empty_name", []string{"A", ""}, true},
		{"too_many", make33(), true},
	}

	for _, tt := range tests {
		_, err := NewRegistry(tt.layers...)
		if (err != nil) != tt.wantErr {
			t.Errorf("%s: err = %v, wantErr %v", tt.name, err, tt.wantErr)
		}
	}
}

func make33() []string {
	out := make([]string, MaxLayers+1)
	for i := range out {
		out[i] = string(rune('A' + i))
	}
	return out
}

func TestNameRoundTripsWithIndexOf(t *testing.T) {
	r := testRegistry(t)

	for _, layer := range []string{"Default", "Terrain", "Props", "Units"} {
		idx, ok := r.IndexOf(layer)
		if !ok {
			t.Fatalf("IndexOf(%q) não resolveu", layer)
		}
		name, ok := r.Name(idx)
		if !ok || name != layer {
			t.Errorf("Name(%d) = (%q, %v), esperado (%q, true)", idx, name, ok, layer)
		}
	}

	if _, ok := r.Name(-1); ok {
		t.Error("índice negativo não deveria resolver")
	}
	if _, ok := r.Name(r.Len()); ok {
		t.Error("índice além do fim não deveria resolver")
	}
}

func TestIsLayerInMaskOutOfRange(t *testing.T) {
	mask := Mask(0xFFFFFFFF)
	if IsLayerInMask(-1, mask) || IsLayerInMask(MaxLayers, mask) {
		t.Error("índices fora do intervalo nunca estão na máscara")
	}
}
