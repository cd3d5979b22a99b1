package app

import (
	"fmt"
	"log"

	"CenaVision/shared/layers"
	"CenaVision/shared/palette"
	"CenaVision/shared/scene"
	"CenaVision/shared/util"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Tokens da paleta usados pelos props da demo, em ordem de spawn.
var propColorTokens = []string{"COBALT", "EMERALD", "AMBER", "CRIMSON", "TEAL", "VIOLET"}

// buildScene monta a cena de demonstração: um anel de props ao redor
// da origem, um nó central e uma luz.
func (a *App) buildScene() {
	propLayer, _ := a.Registry.IndexOf("Props")

	// Nó central (alvo de escala e deslizamento)
	center := a.Scene.AddNode(&scene.Node{
		Name:     "centro",
		Tag:      "hero",
		Layer:    propLayer,
		Position: rl.Vector3{X: 0, Y: 1, Z: 0},
	})
	a.Scene.AddVisual(&scene.Visual{
		Node:  center,
		Color: rl.Color{R: 240, G: 234, B: 214, A: 255},
		Shape: scene.ShapeSphere,
	})

	// Anel de props
	for i, token := range propColorTokens {
		color, ok := palette.Lookup(token)
		if !ok {
			color = rl.White
		}

		pos := util.RandomPointInCircle(rl.Vector3{}, 20, 1)
		node := a.Scene.AddNode(&scene.Node{
			Name:     fmt.Sprintf("prop_%d", i),
			Tag:      "props",
			Layer:    propLayer,
			Position: pos,
		})
		a.Scene.AddVisual(&scene.Visual{
			Node:  node,
			Color: color,
			Shape: scene.ShapeCube,
		})
	}

	// Luz principal
	a.Scene.AddLight(&scene.Light{
		Name:      "sol",
		Position:  rl.Vector3{X: 10, Y: 30, Z: 10},
		Color:     rl.Color{R: 255, G: 244, B: 214, A: 255},
		Intensity: 1,
	})

	log.Printf("[App] Cena montada: %d nós, %d visuais, %d luzes",
		len(a.Scene.Nodes), len(a.Scene.Visuals), len(a.Scene.Lights))
}

// spawnOutsideView cria um prop novo fora do volume de visão da câmera,
// para aparecer sem "pop" na tela. Sem posição válida, não cria nada.
func (a *App) spawnOutsideView() {
	aspect := float32(rl.GetScreenWidth()) / float32(rl.GetScreenHeight())
	frustum := a.Cam.Frustum(aspect)

	ref := a.Cam.CurrentLookAt
	pos, ok := util.RandomPositionOutsideFrustum(frustum, ref)
	if !ok {
		log.Println("[App] Sem posição fora da tela após as tentativas; spawn adiado")
		return
	}
	pos.Y = 1

	a.spawnCounter++
	token := propColorTokens[a.spawnCounter%len(propColorTokens)]
	color, _ := a.Store.Resolve(token)

	effectLayer, _ := a.Registry.IndexOf("Effects")
	node := a.Scene.AddNode(&scene.Node{
		Name:     fmt.Sprintf("spawn_%d", a.spawnCounter),
		Tag:      "props",
		Layer:    effectLayer,
		Position: pos,
	})
	a.Scene.AddVisual(&scene.Visual{
		Node:  node,
		Color: color,
		Shape: scene.ShapeCube,
	})

	log.Printf("[App] Spawn fora da tela em (%.1f, %.1f, %.1f)", pos.X, pos.Y, pos.Z)
}

// refreshHighlights marca os nós dentro do raio de alcance do ponto de
// interesse da câmera, filtrados pela máscara de camadas destacáveis.
func (a *App) refreshHighlights() {
	clear(a.highlighted)

	ref := a.Cam.CurrentLookAt
	for _, n := range a.Scene.Nodes {
		if !util.IsInRange(ref, n.Position, a.rangeRadius) {
			continue
		}
		if !layers.IsLayerInMask(n.Layer, a.highlightMask) {
			continue
		}
		a.highlighted[n] = true
	}
}

// saveSnapshot persiste a fotografia atual da cena no banco.
func (a *App) saveSnapshot() {
	if a.Store == nil {
		return
	}
	if err := a.Store.SaveSnapshot("quicksave", a.Scene.TakeSnapshot()); err != nil {
		log.Printf("[App] Erro ao salvar snapshot: %v", err)
		return
	}
	log.Println("[App] Snapshot da cena salvo")
}

// loadSnapshot restaura posições, escalas e cores a partir do banco.
// Nós que não existem mais na cena são ignorados.
func (a *App) loadSnapshot() {
	if a.Store == nil {
		return
	}
	snap, err := a.Store.LoadSnapshot("quicksave")
	if err != nil {
		log.Printf("[App] Erro ao carregar snapshot: %v", err)
		return
	}

	for _, state := range snap.Nodes {
		node := a.Scene.FindNode(state.Name)
		if node == nil {
			continue
		}
		node.Position = state.Position
		node.Scale = state.Scale
		if state.HasColor {
			for _, v := range a.Scene.Visuals {
				if v.Node == node {
					v.Color = state.Color
				}
			}
		}
	}
	for _, state := range snap.Lights {
		if light := a.Scene.FindLight(state.Name); light != nil {
			light.Position = state.Position
			light.Color = state.Color
			light.Intensity = state.Intensity
		}
	}

	log.Println("[App] Snapshot da cena restaurado")
}
