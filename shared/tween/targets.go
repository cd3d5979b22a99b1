package tween

import (
	"fmt"

	"CenaVision/shared/palette"
	"CenaVision/shared/scene"
	"CenaVision/shared/util"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// NewFade cria uma transição de alpha sobre um conjunto de visuais.
// from e to são frações em [0,1] (0 = transparente, 1 = opaco), aplicadas
// uniformemente a todos os visuais a cada passo. O slice é o conjunto
// resolvido pelo chamador; visuais adicionados depois não participam.
func NewFade(visuals []*scene.Visual, from, to float32, duration float32, cfg Config) *Transition {
	from = util.Clamp01(from)
	to = util.Clamp01(to)

	applyAlpha := func(alpha float32) {
		a := uint8(alpha*255 + 0.5)
		for _, v := range visuals {
			v.Color.A = a
		}
	}

	return newTransition(duration, cfg,
		func(frac float32) {
			applyAlpha(util.Lerp(from, to, frac))
		},
		func() {
			applyAlpha(to)
		},
	)
}

// NewScale cria uma transição de escala uniforme de um nó.
func NewScale(node *scene.Node, from, to float32, duration float32, cfg Config) *Transition {
	return newTransition(duration, cfg,
		func(frac float32) {
			s := util.Lerp(from, to, frac)
			node.Scale = rl.Vector3{X: s, Y: s, Z: s}
		},
		func() {
			node.Scale = rl.Vector3{X: to, Y: to, Z: to}
		},
	)
}

// NewSlide cria uma transição que desloca um nó por um vetor de direção.
// A posição inicial é capturada na construção; o destino é início + offset.
func NewSlide(node *scene.Node, offset rl.Vector3, duration float32, cfg Config) *Transition {
	start := node.Position
	end := util.WithOffset(start, offset)

	return newTransition(duration, cfg,
		func(frac float32) {
			node.Position = util.LerpVector3(start, end, frac)
		},
		func() {
			node.Position = end
		},
	)
}

// NewLightColor cria uma transição de cor de uma luz.
func NewLightColor(light *scene.Light, from, to rl.Color, duration float32, cfg Config) *Transition {
	return newTransition(duration, cfg,
		func(frac float32) {
			light.Color = util.LerpColor(from, to, frac)
		},
		func() {
			light.Color = to
		},
	)
}

// NewLightColorHex cria uma transição da cor atual de uma luz até uma cor
// em formato hexadecimal ("#RRGGBB" ou "#RRGGBBAA"). String não-parseável
// retorna erro sem criar transição nenhuma: a luz não é tocada.
func NewLightColorHex(light *scene.Light, hex string, duration float32, cfg Config) (*Transition, error) {
	target, err := palette.ParseHex(hex)
	if err != nil {
		return nil, fmt.Errorf("transição de cor abortada: %w", err)
	}
	return NewLightColor(light, light.Color, target, duration, cfg), nil
}
