package app

import (
	"fmt"

	"CenaVision/shared/scene"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// draw renderiza a cena e o HUD.
func (a *App) draw() {
	rl.BeginDrawing()
	rl.ClearBackground(rl.NewColor(30, 30, 40, 255))

	a.drawScene()
	a.drawHUD()

	rl.EndDrawing()
}

// drawScene renderiza a cena 3D.
func (a *App) drawScene() {
	rl.BeginMode3D(a.Cam.RLCamera)

	if a.Config.ShowGrid {
		rl.DrawGrid(40, 1.0)
	}

	// A luz principal tinge o chão: aproximação barata de iluminação
	if light := a.Scene.FindLight("sol"); light != nil {
		ground := light.Color
		ground.A = 60
		rl.DrawPlane(rl.Vector3{}, rl.Vector2{X: 80, Y: 80}, ground)
		rl.DrawSphere(light.Position, 0.5, light.Color)
	}

	for _, v := range a.Scene.Visuals {
		if v.Node == nil || v.Color.A == 0 {
			continue
		}

		switch v.Shape {
		case scene.ShapeSphere:
			rl.DrawSphere(v.Node.Position, v.Node.Scale.X, v.Color)
		default:
			rl.DrawCube(v.Node.Position, v.Node.Scale.X, v.Node.Scale.Y, v.Node.Scale.Z, v.Color)
		}

		if a.highlighted[v.Node] {
			rl.DrawCubeWires(v.Node.Position,
				v.Node.Scale.X+0.2, v.Node.Scale.Y+0.2, v.Node.Scale.Z+0.2,
				rl.Yellow)
		}
	}

	rl.EndMode3D()
}

// drawHUD desenha a interface sobreposta.
func (a *App) drawHUD() {
	rl.DrawText("F fade | G escala | H desliza | J luz | N spawn | R alcance | F5/F9 save/load",
		10, int32(rl.GetScreenHeight())-25, 16, rl.RayWhite)

	if !a.Config.ShowDebugInfo {
		return
	}

	// Fundo semi-transparente para o debug
	width := int32(250)
	height := int32(110)
	x := int32(rl.GetScreenWidth()) - width - 10
	y := int32(10)

	rl.DrawRectangle(x, y, width, height, rl.NewColor(0, 0, 0, 180))
	rl.DrawRectangleLines(x, y, width, height, rl.NewColor(50, 50, 50, 255))

	line := y + 8
	rl.DrawText(fmt.Sprintf("FPS: %d", rl.GetFPS()), x+10, line, 18, rl.Green)
	line += 22
	rl.DrawText(fmt.Sprintf("Transições ativas: %d", a.Runner.Len()), x+10, line, 18, rl.RayWhite)
	line += 22
	rl.DrawText(fmt.Sprintf("Nós: %d", len(a.Scene.Nodes)), x+10, line, 18, rl.RayWhite)
	line += 22

	monitor := "monitor: off"
	if a.publisher != nil && a.publisher.IsConnected() {
		monitor = "monitor: conectado"
	}
	rl.DrawText(monitor, x+10, line, 18, rl.Gray)
}
