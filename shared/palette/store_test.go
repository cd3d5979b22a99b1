package palette

import (
	"testing"

	"CenaVision/shared/scene"

	rl "github.com/gen2brain/raylib-go/raylib"
)

func testStore(t *testing.T) *Store {
	t.Helper()
	s := &Store{}
	if err := s.OpenInitialize(t.TempDir(), "teste"); err != nil {
		t.Fatalf("OpenInitialize: %v", err)
	}
	return s
}

func TestSaveLoadEntry(t *testing.T) {
	s := testStore(t)

	custom := rl.Color{R: 12, G: 34, B: 56, A: 200}
	if err := s.SaveEntry("MINHA_COR", custom); err != nil {
		t.Fatalf("SaveEntry: %v", err)
	}

	got, err := s.LoadEntry("MINHA_COR")
	if err != nil {
		t.Fatalf("LoadEntry: %v", err)
	}
	if got != custom {
		t.Errorf("cor carregada = %+v, esperado %+v", got, custom)
	}

	// Upsert: salvar de novo sobrescreve
	custom.R = 99
	if err := s.SaveEntry("MINHA_COR", custom); err != nil {
		t.Fatalf("SaveEntry (upsert): %v", err)
	}
	got, err = s.LoadEntry("MINHA_COR")
	if err != nil {
		t.Fatalf("LoadEntry após upsert: %v", err)
	}
	if got.R != 99 {
		t.Errorf("R = %d após upsert, esperado 99", got.R)
	}

	if _, err := s.LoadEntry("INEXISTENTE"); err == nil {
		t.Error("token ausente deveria retornar erro")
	}
}

func TestResolvePrefersCustomEntry(t *testing.T) {
	s := testStore(t)

	// Cor customizada com o mesmo token de uma cor embutida
	custom := rl.Color{R: 1, G: 2, B: 3, A: 255}
	if err := s.SaveEntry("COBALT", custom); err != nil {
		t.Fatalf("SaveEntry: %v", err)
	}

	got, ok := s.Resolve("COBALT")
	if !ok || got != custom {
		t.Errorf("Resolve = (%+v, %v), esperado a cor customizada", got, ok)
	}

	// Token só na paleta embutida cai no Lookup
	builtin, _ := Lookup("AMBER")
	got, ok = s.Resolve("AMBER")
	if !ok || got != builtin {
		t.Errorf("Resolve(AMBER) = (%+v, %v), esperado paleta embutida", got, ok)
	}

	if _, ok := s.Resolve("NADA"); ok {
		t.Error("token desconhecido não deveria resolver")
	}
}

func TestResolveNilStoreFallsBack(t *testing.T) {
	var s *Store
	want, _ := Lookup("EMERALD")
	got, ok := s.Resolve("EMERALD")
	if !ok || got != want {
		t.Errorf("Resolve em store nulo = (%+v, %v), esperado paleta embutida", got, ok)
	}
}

func TestSaveLoadSnapshot(t *testing.T) {
	s := testStore(t)

	snap := &scene.Snapshot{
		Nodes: []scene.NodeState{
			{
				Name:     "centro",
				Tag:      "hero",
				Position: rl.Vector3{X: 1, Y: 2, Z: 3},
				Scale:    rl.Vector3{X: 2, Y: 2, Z: 2},
				Color:    rl.Color{R: 10, G: 20, B: 30, A: 255},
				HasColor: true,
			},
		},
		Lights: []scene.LightState{
			{Name: "sol", Position: rl.Vector3{Y: 30}, Intensity: 1},
		},
	}

	if err := s.SaveSnapshot("quicksave", snap); err != nil {
		t.Fatalf("SaveSnapshot: %v", err)
	}

	got, err := s.LoadSnapshot("quicksave")
	if err != nil {
		t.Fatalf("LoadSnapshot: %v", err)
	}

	if len(got.Nodes) != 1 || len(got.Lights) != 1 {
		t.Fatalf("snapshot com %d nós / %d luzes, esperado 1/1", len(got.Nodes), len(got.Lights))
	}
	if got.Nodes[0] != snap.Nodes[0] {
		t.Errorf("nó = %+v, esperado %+v", got.Nodes[0], snap.Nodes[0])
	}
	if got.Lights[0] != snap.Lights[0] {
		t.Errorf("luz = %+v, esperado %+v", got.Lights[0], snap.Lights[0])
	}

	if _, err := s.LoadSnapshot("inexistente"); err == nil {
		t.Error("snapshot ausente deveria retornar erro")
	}
}
