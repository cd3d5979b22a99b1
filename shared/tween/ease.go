package tween

import "math"

// Ease remapeia uma fração de progresso linear em [0,1] para uma fração
// suavizada. Todas as curvas daqui são monotônicas crescentes com
// Ease(0) = 0 e Ease(1) = 1.
type Ease func(t float32) float32

// Linear é a curva identidade (sem suavização).
func Linear(t float32) float32 {
	return t
}

// EaseInQuad acelera a partir do zero.
func EaseInQuad(t float32) float32 {
	return t * t
}

// EaseOutQuad desacelera até o fim.
func EaseOutQuad(t float32) float32 {
	return -t * (t - 2)
}

// EaseInOutQuad acelera na primeira metade e desacelera na segunda.
func EaseInOutQuad(t float32) float32 {
	t *= 2
	if t < 1 {
		return 0.5 * t * t
	}
	t--
	return -0.5 * (t*(t-2) - 1)
}

// EaseInSine acelera suavemente seguindo um quarto de cosseno.
func EaseInSine(t float32) float32 {
	return 1 - float32(math.Cos(float64(t)*math.Pi/2))
}

// EaseOutSine desacelera suavemente seguindo um quarto de seno.
func EaseOutSine(t float32) float32 {
	return float32(math.Sin(float64(t) * math.Pi / 2))
}

// EaseInOutSine combina as duas metades em meio cosseno.
func EaseInOutSine(t float32) float32 {
	return -0.5 * (float32(math.Cos(float64(t)*math.Pi)) - 1)
}

// ByName resolve o nome de uma curva (como aparece na configuração)
// para a função correspondente. Nome desconhecido ou vazio cai em Linear.
func ByName(name string) Ease {
	switch name {
	case "ease_in_quad":
		return EaseInQuad
	case "ease_out_quad":
		return EaseOutQuad
	case "ease_in_out_quad":
		return EaseInOutQuad
	case "ease_in_sine":
		return EaseInSine
	case "ease_out_sine":
		return EaseOutSine
	case "ease_in_out_sine":
		return EaseInOutSine
	default:
		return Linear
	}
}
