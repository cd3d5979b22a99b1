package scene

import (
	"testing"

	rl "github.com/gen2brain/raylib-go/raylib"
)

func TestFindVisualsByTag(t *testing.T) {
	s := New()

	a := s.AddNode(&Node{Name: "a", Tag: "props"})
	b := s.AddNode(&Node{Name: "b", Tag: "props"})
	c := s.AddNode(&Node{Name: "c", Tag: "hero"})

	va := s.AddVisual(&Visual{Node: a})
	vb := s.AddVisual(&Visual{Node: b})
	s.AddVisual(&Visual{Node: c})
	s.AddVisual(&Visual{Node: nil}) // visual órfão nunca casa

	got := s.FindVisualsByTag("props")
	if len(got) != 2 {
		t.Fatalf("len = %d, esperado 2", len(got))
	}
	if got[0] != va || got[1] != vb {
		t.Error("visuais retornados fora de ordem ou errados")
	}

	if len(s.FindVisualsByTag("inexistente")) != 0 {
		t.Error("tag inexistente deveria retornar vazio")
	}
}

func TestAddNodeDefaultsScale(t *testing.T) {
	s := New()
	n := s.AddNode(&Node{Name: "x"})
	want := rl.Vector3{X: 1, Y: 1, Z: 1}
	if n.Scale != want {
		t.Errorf("escala padrão = %+v, esperado %+v", n.Scale, want)
	}

	m := s.AddNode(&Node{Name: "y", Scale: rl.Vector3{X: 2, Y: 2, Z: 2}})
	if m.Scale.X != 2 {
		t.Error("escala explícita não deve ser sobrescrita")
	}
}

func TestFindersReturnNilWhenAbsent(t *testing.T) {
	s := New()
	if s.FindNode("nada") != nil {
		t.Error("FindNode deveria retornar nil")
	}
	if s.FindLight("nada") != nil {
		t.Error("FindLight deveria retornar nil")
	}
}

func TestTakeSnapshot(t *testing.T) {
	s := New()

	n := s.AddNode(&Node{
		Name:     "centro",
		Tag:      "hero",
		Position: rl.Vector3{X: 1, Y: 2, Z: 3},
	})
	s.AddVisual(&Visual{Node: n, Color: rl.Color{R: 10, G: 20, B: 30, A: 200}})

	s.AddNode(&Node{Name: "vazio"}) // nó sem visual

	s.AddLight(&Light{
		Name:     "sol",
		Position: rl.Vector3{Y: 30},
		Color:    rl.Color{R: 255, G: 244, B: 214, A: 255},
	})

	snap := s.TakeSnapshot()

	if len(snap.Nodes) != 2 || len(snap.Lights) != 1 {
		t.Fatalf("snapshot com %d nós / %d luzes, esperado 2/1", len(snap.Nodes), len(snap.Lights))
	}

	centro := snap.Nodes[0]
	if !centro.HasColor || centro.Color.A != 200 {
		t.Errorf("nó com visual deveria carregar a cor: %+v", centro)
	}
	if centro.Position != n.Position {
		t.Errorf("posição = %+v, esperado %+v", centro.Position, n.Position)
	}

	if snap.Nodes[1].HasColor {
		t.Error("nó sem visual não deve reportar cor")
	}

	if snap.Lights[0].Intensity != 1 {
		t.Errorf("intensidade padrão = %v, esperado 1 (AddLight normaliza)", snap.Lights[0].Intensity)
	}
}
