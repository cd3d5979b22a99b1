// Package layers implementa o registro de camadas nomeadas e a construção
// de máscaras de bits para filtrar consultas espaciais.
// Equivalente ao esquema de layers de engines de cena: o índice da camada
// no registro é a posição do bit na máscara.
package layers

import (
	"errors"
	"fmt"
)

// MaxLayers é o número máximo de camadas suportadas (largura da máscara).
const MaxLayers = 32

// Mask é um conjunto de camadas: o bit i representa a camada de índice i.
type Mask uint32

// ErrUnknownLayer indica um nome de camada que não existe no registro.
var ErrUnknownLayer = errors.New("camada desconhecida")

// Registry mapeia nomes de camadas para índices fixos.
// Construído uma vez (normalmente a partir da configuração) e somente lido depois.
type Registry struct {
	names []string
	index map[string]int
}

// NewRegistry cria um registro com as camadas dadas, na ordem dada.
// Falha se houver mais de MaxLayers camadas ou nomes duplicados/vazios.
func NewRegistry(names ...string) (*Registry, error) {
	if len(names) > MaxLayers {
		return nil, fmt.Errorf("registro suporta no máximo %d camadas, recebeu %d", MaxLayers, len(names))
	}

	r := &Registry{
		names: make([]string, len(names)),
		index: make(map[string]int, len(names)),
	}
	for i, name := range names {
		if name == "" {
			return nil, fmt.Errorf("camada %d tem nome vazio", i)
		}
		if _, dup := r.index[name]; dup {
			return nil, fmt.Errorf("camada duplicada: %q", name)
		}
		r.names[i] = name
		r.index[name] = i
	}
	return r, nil
}

// IndexOf resolve um nome de camada para seu índice.
func (r *Registry) IndexOf(name string) (int, bool) {
	i, ok := r.index[name]
	return i, ok
}

// Name retorna o nome da camada no índice dado.
func (r *Registry) Name(index int) (string, bool) {
	if index < 0 || index >= len(r.names) {
		return "", false
	}
	return r.names[index], true
}

// Len retorna o número de camadas registradas.
func (r *Registry) Len() int {
	return len(r.names)
}

// CreateMask acumula as camadas nomeadas em uma máscara de bits.
// Nomes não resolvidos são pulados sem abortar a construção: a máscara
// retornada cobre as camadas válidas e o erro (um por nome desconhecido,
// agregados) reporta as que ficaram de fora. Entrada vazia produz máscara
// zero, que não casa com nada.
func (r *Registry) CreateMask(names ...string) (Mask, error) {
	var mask Mask
	var errs []error

	for _, name := range names {
		idx, ok := r.index[name]
		if !ok {
			errs = append(errs, fmt.Errorf("%w: %q", ErrUnknownLayer, name))
			continue
		}
		mask |= 1 << idx
	}

	return mask, errors.Join(errs...)
}

// IsLayerInMask verifica se o bit da camada de índice dado está na máscara.
func IsLayerInMask(index int, mask Mask) bool {
	if index < 0 || index >= MaxLayers {
		return false
	}
	return mask&(1<<index) != 0
}
