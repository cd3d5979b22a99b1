package util

import (
	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/go-gl/mathgl/mgl32"
)

// Plane representa um plano no espaço 3D na forma Normal·P + D = 0.
// A normal aponta para o lado de dentro do frustum.
type Plane struct {
	Normal mgl32.Vec3
	D      float32
}

// DistanceTo retorna a distância com sinal de um ponto ao plano.
// Positivo = lado de dentro.
func (p Plane) DistanceTo(point mgl32.Vec3) float32 {
	return p.Normal.Dot(point) + p.D
}

// Índices dos seis planos do frustum.
const (
	PlaneLeft = iota
	PlaneRight
	PlaneBottom
	PlaneTop
	PlaneNear
	PlaneFar
)

// Frustum representa o volume de visão da câmera, delimitado por seis planos.
type Frustum struct {
	Planes [6]Plane
}

// NewFrustumFromMatrix extrai os seis planos de uma matriz view-projection
// (método de Gribb-Hartmann: combinações das linhas da matriz).
func NewFrustumFromMatrix(vp mgl32.Mat4) *Frustum {
	row0 := vp.Row(0)
	row1 := vp.Row(1)
	row2 := vp.Row(2)
	row3 := vp.Row(3)

	f := &Frustum{}
	f.Planes[PlaneLeft] = planeFromVec4(row3.Add(row0))
	f.Planes[PlaneRight] = planeFromVec4(row3.Sub(row0))
	f.Planes[PlaneBottom] = planeFromVec4(row3.Add(row1))
	f.Planes[PlaneTop] = planeFromVec4(row3.Sub(row1))
	f.Planes[PlaneNear] = planeFromVec4(row3.Add(row2))
	f.Planes[PlaneFar] = planeFromVec4(row3.Sub(row2))
	return f
}

// NewFrustumFromCamera monta a matriz view-projection a partir dos parâmetros
// da câmera e extrai o frustum. fovy em graus, como no raylib.
func NewFrustumFromCamera(position, target, up rl.Vector3, fovyDeg, aspect, near, far float32) *Frustum {
	proj := mgl32.Perspective(mgl32.DegToRad(fovyDeg), aspect, near, far)
	view := mgl32.LookAtV(
		mgl32.Vec3{position.X, position.Y, position.Z},
		mgl32.Vec3{target.X, target.Y, target.Z},
		mgl32.Vec3{up.X, up.Y, up.Z},
	)
	return NewFrustumFromMatrix(proj.Mul4(view))
}

func planeFromVec4(v mgl32.Vec4) Plane {
	normal := mgl32.Vec3{v.X(), v.Y(), v.Z()}
	length := normal.Len()
	if length == 0 {
		return Plane{}
	}
	return Plane{
		Normal: normal.Mul(1 / length),
		D:      v.W() / length,
	}
}

// ContainsPoint verifica se um ponto está dentro do frustum.
func (f *Frustum) ContainsPoint(point rl.Vector3) bool {
	p := mgl32.Vec3{point.X, point.Y, point.Z}
	for _, plane := range f.Planes {
		if plane.DistanceTo(p) < 0 {
			return false
		}
	}
	return true
}

// IntersectsBox testa se uma caixa alinhada aos eixos (centro + meia-aresta)
// intersecta o frustum. Usa o vértice positivo de cada plano: se a caixa
// estiver inteira do lado de fora de qualquer plano, não há interseção.
// O teste é conservador (pode reportar interseção em cantos), o que é
// suficiente para culling e para amostragem fora da tela.
func (f *Frustum) IntersectsBox(center rl.Vector3, halfExtent float32) bool {
	c := mgl32.Vec3{center.X, center.Y, center.Z}
	for _, plane := range f.Planes {
		// Vértice da caixa mais avançado na direção da normal do plano
		positive := c
		for i := 0; i < 3; i++ {
			if plane.Normal[i] >= 0 {
				positive[i] += halfExtent
			} else {
				positive[i] -= halfExtent
			}
		}
		if plane.DistanceTo(positive) < 0 {
			return false
		}
	}
	return true
}
