package app

import (
	"log"

	"CenaVision/shared/proto/cvnet"
	"CenaVision/shared/tween"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Cores hexadecimais alternadas pela tecla J.
var lightHexCycle = []string{"#FF8800", "#3366FFCC", "#FFF4D6"}

var lightHexIndex int

// updateInput trata as teclas que disparam transições e utilitários da demo.
func (a *App) updateInput() {
	switch {
	case rl.IsKeyPressed(rl.KeyF):
		a.startFade()
	case rl.IsKeyPressed(rl.KeyG):
		a.startScalePulse()
	case rl.IsKeyPressed(rl.KeyH):
		a.startSlide()
	case rl.IsKeyPressed(rl.KeyJ):
		a.startLightHex()
	case rl.IsKeyPressed(rl.KeyN):
		a.spawnOutsideView()
	case rl.IsKeyPressed(rl.KeyR):
		a.refreshHighlights()
	case rl.IsKeyPressed(rl.KeyF5):
		a.saveSnapshot()
	case rl.IsKeyPressed(rl.KeyF9):
		a.loadSnapshot()
	}
}

// report envia o evento ao monitor, se houver publicador conectado.
// Duração e progresso saem da própria transição.
func (a *App) report(phase cvnet.TransitionPhase, kind, target string, tr *tween.Transition) {
	if a.publisher == nil || tr == nil {
		return
	}
	a.publisher.PublishTransition(phase, kind, target, tr.Duration(), tr.Progress())
}

// startFade alterna todos os visuais com a tag "props" entre visível e invisível.
// O conjunto de alvos é resolvido agora; spawns durante o fade ficam de fora.
func (a *App) startFade() {
	visuals := a.Scene.FindVisualsByTag("props")
	if len(visuals) == 0 {
		return
	}

	from, to := float32(1), float32(0)
	if a.fadedOut {
		from, to = 0, 1
	}
	a.fadedOut = !a.fadedOut

	var tr *tween.Transition
	tr = tween.NewFade(visuals, from, to, a.Config.DefaultDuration, tween.Config{
		Ease: a.defaultEase,
		OnComplete: func() {
			a.report(cvnet.PhaseFinished, "fade", "props", tr)
		},
	})
	a.report(cvnet.PhaseStarted, "fade", "props", tr)
	a.Runner.Add(tr)
}

// startScalePulse cresce o nó central e o devolve ao tamanho original ao terminar.
func (a *App) startScalePulse() {
	node := a.Scene.FindNode("centro")
	if node == nil {
		return
	}

	dur := a.Config.DefaultDuration / 2
	var out *tween.Transition
	out = tween.NewScale(node, 1, 2.5, dur, tween.Config{
		Ease: tween.EaseOutQuad,
		OnComplete: func() {
			// Volta: transição encadeada no callback da ida
			var back *tween.Transition
			back = tween.NewScale(node, 2.5, 1, dur, tween.Config{
				Ease: tween.EaseInQuad,
				OnComplete: func() {
					a.report(cvnet.PhaseFinished, "scale", node.Name, back)
				},
			})
			a.Runner.Add(back)
		},
	})
	a.report(cvnet.PhaseStarted, "scale", node.Name, out)
	a.Runner.Add(out)
}

// startSlide desloca o nó central ao longo do eixo X.
func (a *App) startSlide() {
	node := a.Scene.FindNode("centro")
	if node == nil {
		return
	}

	offset := rl.Vector3{X: 8}
	var tr *tween.Transition
	tr = tween.NewSlide(node, offset, a.Config.DefaultDuration, tween.Config{
		Ease: a.defaultEase,
		OnComplete: func() {
			a.report(cvnet.PhaseFinished, "slide", node.Name, tr)
		},
	})
	a.report(cvnet.PhaseStarted, "slide", node.Name, tr)
	a.Runner.Add(tr)
}

// startLightHex transiciona a cor da luz principal para a próxima cor do ciclo.
// Hex inválido não toca na luz; só loga o erro.
func (a *App) startLightHex() {
	light := a.Scene.FindLight("sol")
	if light == nil {
		return
	}

	hex := lightHexCycle[lightHexIndex%len(lightHexCycle)]
	lightHexIndex++

	var tr *tween.Transition
	var err error
	tr, err = tween.NewLightColorHex(light, hex, a.Config.DefaultDuration, tween.Config{
		Ease: a.defaultEase,
		OnComplete: func() {
			a.report(cvnet.PhaseFinished, "light_color", light.Name, tr)
		},
	})
	if err != nil {
		log.Printf("[App] %v", err)
		return
	}

	a.report(cvnet.PhaseStarted, "light_color", light.Name, tr)
	a.Runner.Add(tr)
}
