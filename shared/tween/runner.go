package tween

// Runner mantém a lista de transições ativas e as avança uma vez por frame.
// O modelo é cooperativo e single-threaded: o loop do host chama Update(dt)
// e cada transição dá um passo. Transições que miram os mesmos alvos não se
// coordenam: a última aplicada no frame vence, na ordem de inserção.
type Runner struct {
	active []*Transition

	// Transições adicionadas por callbacks durante o Update ficam aqui
	// até o fim do passo; mexer em active no meio da compactação as perderia.
	pending  []*Transition
	stepping bool
}

// NewRunner cria um runner vazio.
func NewRunner() *Runner {
	return &Runner{}
}

// Add registra uma transição para ser avançada a cada Update.
// Retorna a própria transição, para o chamador guardar como handle de Stop.
// Add(nil) é ignorado (conveniência para construtores que retornam erro).
// Chamar Add de dentro de um callback OnComplete é válido: a transição
// entra na lista ao fim do Update corrente e avança a partir do próximo.
func (r *Runner) Add(t *Transition) *Transition {
	if t == nil {
		return nil
	}
	if r.stepping {
		r.pending = append(r.pending, t)
		return t
	}
	r.active = append(r.active, t)
	return t
}

// Update avança todas as transições ativas em dt segundos e compacta
// as que terminaram. Callbacks de conclusão disparam durante o passo.
func (r *Runner) Update(dt float32) {
	r.stepping = true
	kept := r.active[:0]
	for _, t := range r.active {
		if !t.Step(dt) {
			kept = append(kept, t)
		}
	}
	// Limpa as referências que sobraram no fim do slice
	for i := len(kept); i < len(r.active); i++ {
		r.active[i] = nil
	}
	r.active = kept
	r.stepping = false

	if len(r.pending) > 0 {
		r.active = append(r.active, r.pending...)
		for i := range r.pending {
			r.pending[i] = nil
		}
		r.pending = r.pending[:0]
	}
}

// Stop remove uma transição sem completá-la: o valor fica onde estava e o
// callback não dispara. Retorna true se a transição estava ativa.
func (r *Runner) Stop(t *Transition) bool {
	for i, candidate := range r.active {
		if candidate == t {
			r.active = append(r.active[:i], r.active[i+1:]...)
			return true
		}
	}
	for i, candidate := range r.pending {
		if candidate == t {
			r.pending = append(r.pending[:i], r.pending[i+1:]...)
			return true
		}
	}
	return false
}

// Len retorna o número de transições ativas.
func (r *Runner) Len() int {
	return len(r.active)
}
