package util

import rl "github.com/gen2brain/raylib-go/raylib"

// Lerp realiza interpolação linear entre dois floats.
func Lerp(start, end, amount float32) float32 {
	return start + amount*(end-start)
}

// LerpVector3 interpola linearmente cada componente de dois vetores 3D.
func LerpVector3(start, end rl.Vector3, amount float32) rl.Vector3 {
	return rl.Vector3{
		X: Lerp(start.X, end.X, amount),
		Y: Lerp(start.Y, end.Y, amount),
		Z: Lerp(start.Z, end.Z, amount),
	}
}

// LerpColor interpola duas cores RGBA canal a canal.
// A interpolação é feita em float para evitar erros de arredondamento acumulados.
func LerpColor(start, end rl.Color, amount float32) rl.Color {
	return rl.Color{
		R: LerpByte(start.R, end.R, amount),
		G: LerpByte(start.G, end.G, amount),
		B: LerpByte(start.B, end.B, amount),
		A: LerpByte(start.A, end.A, amount),
	}
}

// LerpByte interpola dois bytes com arredondamento e saturação em [0, 255].
func LerpByte(start, end uint8, amount float32) uint8 {
	v := Lerp(float32(start), float32(end), amount)
	if v <= 0 {
		return 0
	}
	if v >= 255 {
		return 255
	}
	return uint8(v + 0.5)
}

// Clamp01 limita um valor ao intervalo [0, 1].
func Clamp01(v float32) float32 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// DistSq retorna a distância quadrada entre dois vetores 3D.
// Evita a raiz quadrada quando só precisamos comparar distâncias.
func DistSq(v1, v2 rl.Vector3) float32 {
	dx := v1.X - v2.X
	dy := v1.Y - v2.Y
	dz := v1.Z - v2.Z
	return dx*dx + dy*dy + dz*dz
}
