package camera

import (
	"math"

	"CenaVision/shared/util"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/go-gl/mathgl/mgl32"
)

// Planos de corte usados na projeção e na extração do frustum.
const (
	NearPlane = 0.1
	FarPlane  = 1000.0
)

// Controller gerencia a movimentação orbital da câmera da cena.
// Movimento suave: os valores atuais perseguem os alvos com lerp amortecido.
type Controller struct {
	// Estado interno do Raylib
	RLCamera rl.Camera3D

	// Configurações
	MinZoom        float32
	MaxZoom        float32
	MoveSpeed      float32
	RotateSpeed    float32
	ZoomSpeed      float32
	SmoothFactor   float32 // 0.0 a 1.0 (quanto menor, mais suave/lento)

	// Estado Alvo (para interpolação suave)
	TargetLookAt rl.Vector3 // Para onde a câmera quer olhar (ponto central)
	TargetZoom   float32    // Zoom desejado
	TargetAngleY float32    // Rotação horizontal atual (radianos)
	TargetAngleX float32    // Elevação atual (radianos)

	// Estado Atual (interpolado)
	CurrentLookAt rl.Vector3
	CurrentZoom   float32
}

// New cria um novo controlador de câmera.
func New(fovy, moveSpeed, rotateSpeed, zoomSpeed float32) *Controller {
	c := &Controller{
		MinZoom:      5.0,
		MaxZoom:      200.0,
		MoveSpeed:    moveSpeed,
		RotateSpeed:  rotateSpeed,
		ZoomSpeed:    zoomSpeed,
		SmoothFactor: 0.1,

		TargetLookAt: rl.Vector3{X: 0, Y: 0, Z: 0},
		TargetZoom:   50.0,
		TargetAngleY: 45.0 * rl.Deg2rad,  // 45 graus (padrão isométrico)
		TargetAngleX: -30.0 * rl.Deg2rad, // -30 graus (olhando de cima)
	}

	// Inicializa os valores atuais com os alvos para não "saltar" no início
	c.CurrentLookAt = c.TargetLookAt
	c.CurrentZoom = c.TargetZoom

	c.RLCamera = rl.Camera3D{
		Up:         rl.Vector3{X: 0, Y: 1, Z: 0},
		Fovy:       fovy,
		Projection: rl.CameraPerspective,
	}

	c.recompute()
	return c
}

// SetTarget define o ponto de interesse da câmera imediatamente (sem suavização).
func (c *Controller) SetTarget(pos rl.Vector3) {
	c.TargetLookAt = pos
	c.CurrentLookAt = pos
	c.recompute()
}

// Update interpola os valores atuais em direção aos alvos.
// Deve ser chamado a cada frame.
func (c *Controller) Update(dt float32) {
	// Amortecimento normalizado para 60 FPS
	factor := c.SmoothFactor * 60.0 * dt
	if factor > 1.0 {
		factor = 1.0
	}

	c.CurrentLookAt = util.LerpVector3(c.CurrentLookAt, c.TargetLookAt, factor)
	c.CurrentZoom = util.Lerp(c.CurrentZoom, c.TargetZoom, factor)

	c.recompute()
}

// recompute converte coordenadas esféricas (ângulos + zoom) para a posição cartesiana.
func (c *Controller) recompute() {
	dist := c.CurrentZoom

	cosX := float32(math.Cos(float64(c.TargetAngleX)))
	sinX := float32(math.Sin(float64(c.TargetAngleX)))
	cosY := float32(math.Cos(float64(c.TargetAngleY)))
	sinY := float32(math.Sin(float64(c.TargetAngleY)))

	offsetX := dist * cosX * sinY
	offsetY := dist * -sinX // Y é UP no Raylib; sinX negativo pois olhamos de cima
	offsetZ := dist * cosX * cosY

	c.RLCamera.Position = rl.Vector3{
		X: c.CurrentLookAt.X + offsetX,
		Y: c.CurrentLookAt.Y + offsetY,
		Z: c.CurrentLookAt.Z + offsetZ,
	}

	c.RLCamera.Target = c.CurrentLookAt
}

// Frustum extrai o volume de visão atual da câmera para o aspect ratio dado.
func (c *Controller) Frustum(aspect float32) *util.Frustum {
	return util.NewFrustumFromCamera(
		c.RLCamera.Position,
		c.RLCamera.Target,
		c.RLCamera.Up,
		c.RLCamera.Fovy,
		aspect,
		NearPlane,
		FarPlane,
	)
}

// HandleInput processa entrada do usuário. Retorna true se houve input de movimento.
func (c *Controller) HandleInput(dt float32) bool {
	moved := false

	// Zoom com Scroll
	wheel := rl.GetMouseWheelMove()
	if wheel != 0 {
		moved = true
		c.TargetZoom -= wheel * c.ZoomSpeed
		if c.TargetZoom < c.MinZoom {
			c.TargetZoom = c.MinZoom
		}
		if c.TargetZoom > c.MaxZoom {
			c.TargetZoom = c.MaxZoom
		}
	}

	// Rotação com botão direito (Orbit)
	if rl.IsMouseButtonDown(rl.MouseRightButton) {
		delta := rl.GetMouseDelta()
		if delta.X != 0 || delta.Y != 0 {
			moved = true
		}
		c.TargetAngleY -= delta.X * c.RotateSpeed * 0.005
		c.TargetAngleX -= delta.Y * c.RotateSpeed * 0.005

		// Clamp na elevação para não virar a câmera de ponta cabeça
		maxElev := float32(-5.0 * rl.Deg2rad)
		minElev := float32(-89.0 * rl.Deg2rad)
		if c.TargetAngleX > maxElev {
			c.TargetAngleX = maxElev
		}
		if c.TargetAngleX < minElev {
			c.TargetAngleX = minElev
		}
	}

	// Movimento WASD relativo à câmera, projetado no plano XZ
	camPos := mgl32.Vec3{c.RLCamera.Position.X, c.RLCamera.Position.Y, c.RLCamera.Position.Z}
	targetPos := mgl32.Vec3{c.TargetLookAt.X, c.TargetLookAt.Y, c.TargetLookAt.Z}

	forward := targetPos.Sub(camPos)
	forward[1] = 0
	if forward.Len() == 0 {
		return moved
	}
	forward = forward.Normalize()

	upVec := mgl32.Vec3{0, 1, 0}
	right := forward.Cross(upVec).Normalize()

	// Velocidade proporcional ao zoom: quanto mais alto, mais rápido
	currentSpeed := c.MoveSpeed * (c.CurrentZoom / 50.0) * dt

	move := mgl32.Vec3{0, 0, 0}
	if rl.IsKeyDown(rl.KeyW) {
		move = move.Add(forward)
	}
	if rl.IsKeyDown(rl.KeyS) {
		move = move.Sub(forward)
	}
	if rl.IsKeyDown(rl.KeyD) {
		move = move.Add(right)
	}
	if rl.IsKeyDown(rl.KeyA) {
		move = move.Sub(right)
	}

	if move.Len() > 0 {
		move = move.Normalize().Mul(currentSpeed)
		targetPos = targetPos.Add(move)

		c.TargetLookAt = rl.Vector3{
			X: targetPos.X(),
			Y: targetPos.Y(),
			Z: targetPos.Z(),
		}
		moved = true
	}

	return moved
}
