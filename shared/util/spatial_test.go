package util

import (
	"math"
	"testing"

	rl "github.com/gen2brain/raylib-go/raylib"
)

func TestDistSq(t *testing.T) {
	tests := []struct {
		name string
		a, b rl.Vector3
		want float32
	}{
		{"same_point", rl.Vector3{X: 1, Y: 2, Z: 3}, rl.Vector3{X: 1, Y: 2, Z: 3}, 0},
		{"unit_x", rl.Vector3{}, rl.Vector3{X: 1}, 1},
		{"pythagorean", rl.Vector3{}, rl.Vector3{X: 3, Y: 4}, 25},
		{"negative_coords", rl.Vector3{X: -2}, rl.Vector3{X: 2}, 16},
	}

	for _, tt := range tests {
		if got := DistSq(tt.a, tt.b); got != tt.want {
			t.Errorf("%s: DistSq = %v, esperado %v", tt.name, got, tt.want)
		}
	}
}

func TestIsInRangeMatchesDistSq(t *testing.T) {
	points := []rl.Vector3{
		{},
		{X: 1, Y: 2, Z: 3},
		{X: -5, Y: 0.5, Z: 12},
		{X: 100, Y: -40, Z: 7},
	}
	radii := []float32{0, 0.5, 5, 50, 500}

	for _, a := range points {
		for _, b := range points {
			for _, r := range radii {
				want := DistSq(a, b) < r*r
				if got := IsInRange(a, b, r); got != want {
					t.Errorf("IsInRange(%v, %v, %v) = %v, esperado %v", a, b, r, got, want)
				}
			}
		}
	}
}

func TestIsInRangeBoundaryIsExclusive(t *testing.T) {
	a := rl.Vector3{}
	b := rl.Vector3{X: 5}
	if IsInRange(a, b, 5) {
		t.Error("distância igual ao raio não conta como dentro do alcance")
	}
	if !IsInRange(a, b, 5.001) {
		t.Error("distância menor que o raio deveria contar")
	}
}

func TestWithOffset(t *testing.T) {
	pos := rl.Vector3{X: 1, Y: 2, Z: 3}
	offset := rl.Vector3{X: -1, Y: 0.5, Z: 10}
	got := WithOffset(pos, offset)
	want := rl.Vector3{X: 0, Y: 2.5, Z: 13}
	if got != want {
		t.Errorf("WithOffset = %+v, esperado %+v", got, want)
	}
}

func TestRandomPointInCircle(t *testing.T) {
	center := rl.Vector3{X: 10, Y: 99, Z: -5}
	radius := float32(7)
	fixedY := float32(1.5)

	for i := 0; i < 200; i++ {
		p := RandomPointInCircle(center, radius, fixedY)

		if p.Y != fixedY {
			t.Fatalf("Y = %v, esperado coordenada fixa %v", p.Y, fixedY)
		}

		dx := float64(p.X - center.X)
		dz := float64(p.Z - center.Z)
		if dist := math.Sqrt(dx*dx + dz*dz); dist > float64(radius)+1e-4 {
			t.Fatalf("ponto a %v unidades do centro, raio máximo %v", dist, radius)
		}
	}
}

func TestRandomPositionOutsideFrustumAllCovered(t *testing.T) {
	// Câmera bem acima da origem olhando para baixo com FOV largo:
	// o frustum cobre todo o disco de amostragem, então toda tentativa falha.
	f := NewFrustumFromCamera(
		rl.Vector3{X: 0, Y: 200, Z: 0},
		rl.Vector3{},
		rl.Vector3{Z: 1},
		120, 1.0, 0.1, 1000,
	)

	ref := rl.Vector3{}
	if !f.ContainsPoint(ref) {
		t.Fatal("sanidade: a referência deveria estar dentro do frustum")
	}

	for i := 0; i < 20; i++ {
		if _, ok := RandomPositionOutsideFrustum(f, ref); ok {
			t.Fatal("frustum cobre toda a região de amostragem; esperado ok=false")
		}
	}
}

func TestRandomPositionOutsideFrustumFarAway(t *testing.T) {
	// Frustum estreito olhando para longe da região de amostragem:
	// a primeira tentativa já deve servir.
	f := NewFrustumFromCamera(
		rl.Vector3{X: 5000, Y: 10, Z: 5000},
		rl.Vector3{X: 5100, Y: 10, Z: 5000},
		rl.Vector3{Y: 1},
		30, 1.0, 0.1, 100,
	)

	ref := rl.Vector3{X: 0, Y: 1, Z: 0}
	pos, ok := RandomPositionOutsideFrustum(f, ref)
	if !ok {
		t.Fatal("esperado encontrar posição fora do frustum")
	}

	if !IsInRange(ref, pos, FrustumSampleRadius+1) {
		t.Errorf("posição %+v fora do disco de amostragem ao redor de %+v", pos, ref)
	}
	if pos.Y != ref.Y {
		t.Errorf("Y = %v, esperado manter o Y da referência (%v)", pos.Y, ref.Y)
	}
}
