// Package tween implementa transições de valores dirigidas por frame:
// fade de alpha, escala, deslizamento de posição e lerp de cor de luz.
// Cada transição é um objeto de estado explícito avançado por Step(dt),
// sem acoplamento com scheduler nenhum: quem dirige o tempo é o loop
// de frames do chamador.
package tween

// Config agrupa os parâmetros opcionais de uma transição.
// O zero value é válido: curva linear e nenhum callback.
type Config struct {
	// Ease remapeia a fração de progresso. Nil = identidade (linear).
	Ease Ease

	// OnComplete é chamado exatamente uma vez, no passo que termina a
	// transição, depois do valor final ser aplicado. Nil = sem callback.
	OnComplete func()
}

// Transition interpola um valor do início ao fim ao longo de uma duração,
// aplicando o valor interpolado aos alvos a cada passo. O conjunto de
// alvos é resolvido na construção e não muda durante a vida da transição.
type Transition struct {
	duration float32
	elapsed  float32
	ease     Ease
	done     bool

	// apply recebe a fração já suavizada e aplica o valor interpolado aos alvos.
	apply func(frac float32)
	// finish força o valor final exato, independente de drift de ponto flutuante.
	finish func()

	onComplete func()
}

// newTransition monta uma transição genérica. Os construtores concretos
// (NewFade, NewScale, ...) fecham apply/finish sobre seus alvos.
func newTransition(duration float32, cfg Config, apply func(float32), finish func()) *Transition {
	return &Transition{
		duration:   duration,
		ease:       cfg.Ease,
		apply:      apply,
		finish:     finish,
		onComplete: cfg.OnComplete,
	}
}

// Step avança a transição em dt segundos e aplica o novo valor aos alvos.
// Retorna true quando a transição terminou (inclusive em chamadas após o fim).
// No passo final o valor exato de destino é forçado e o callback dispara
// uma única vez. Duração zero ou negativa completa no primeiro passo.
func (t *Transition) Step(dt float32) bool {
	if t.done {
		return true
	}

	t.elapsed += dt

	if t.duration <= 0 || t.elapsed >= t.duration {
		t.finish()
		t.done = true
		if t.onComplete != nil {
			t.onComplete()
		}
		return true
	}

	frac := t.elapsed / t.duration
	if t.ease != nil {
		frac = t.ease(frac)
	}
	t.apply(frac)
	return false
}

// Done informa se a transição já completou.
func (t *Transition) Done() bool {
	return t.done
}

// Elapsed retorna o tempo já decorrido, em segundos.
func (t *Transition) Elapsed() float32 {
	return t.elapsed
}

// Duration retorna a duração total configurada, em segundos.
func (t *Transition) Duration() float32 {
	return t.duration
}

// Progress retorna a fração linear de progresso em [0,1].
func (t *Transition) Progress() float32 {
	if t.done || t.duration <= 0 {
		return 1
	}
	frac := t.elapsed / t.duration
	if frac > 1 {
		return 1
	}
	return frac
}
