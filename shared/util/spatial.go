package util

import (
	"math"
	"math/rand"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Parâmetros da busca por posição fora do frustum.
const (
	// FrustumSampleAttempts é o número máximo de tentativas de amostragem.
	FrustumSampleAttempts = 10
	// FrustumSampleRadius é o raio do disco de amostragem ao redor da referência.
	FrustumSampleRadius = 40.0
	// frustumSampleHalfExtent é a meia-aresta da caixa unitária usada no teste de visibilidade.
	frustumSampleHalfExtent = 0.5
)

// IsInRange verifica se dois pontos estão a menos de r unidades um do outro.
// Compara distâncias quadradas; quem precisar da distância exata deve calculá-la à parte.
func IsInRange(a, b rl.Vector3, r float32) bool {
	return DistSq(a, b) < r*r
}

// WithOffset retorna a posição de referência deslocada por um vetor fixo.
func WithOffset(pos, offset rl.Vector3) rl.Vector3 {
	return rl.Vector3{
		X: pos.X + offset.X,
		Y: pos.Y + offset.Y,
		Z: pos.Z + offset.Z,
	}
}

// RandomPointInCircle sorteia um ponto uniforme dentro de um disco horizontal
// de raio dado, centrado em center, com coordenada Y fixa fornecida pelo chamador.
func RandomPointInCircle(center rl.Vector3, radius, y float32) rl.Vector3 {
	// sqrt no raio garante densidade uniforme na área do disco
	r := radius * float32(math.Sqrt(rand.Float64()))
	theta := rand.Float64() * 2 * math.Pi

	return rl.Vector3{
		X: center.X + r*float32(math.Cos(theta)),
		Y: y,
		Z: center.Z + r*float32(math.Sin(theta)),
	}
}

// RandomPositionOutsideFrustum procura um ponto fora do volume de visão da câmera.
// Sorteia até FrustumSampleAttempts pontos em um disco de FrustumSampleRadius unidades
// ao redor da referência e testa uma caixa unitária contra os planos do frustum.
// Retorna o primeiro ponto cuja caixa não intersecta o frustum e ok=true,
// ou ok=false se todas as tentativas caírem dentro da área visível.
func RandomPositionOutsideFrustum(f *Frustum, ref rl.Vector3) (rl.Vector3, bool) {
	for i := 0; i < FrustumSampleAttempts; i++ {
		candidate := RandomPointInCircle(ref, FrustumSampleRadius, ref.Y)
		if !f.IntersectsBox(candidate, frustumSampleHalfExtent) {
			return candidate, true
		}
	}
	return rl.Vector3{}, false
}
