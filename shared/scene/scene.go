package scene

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

// Shape define a forma primitiva usada para desenhar um Visual.
type Shape int

const (
	ShapeCube Shape = iota
	ShapeSphere
)

// Node é um nó espacial da cena: posição e escala no mundo.
// O nó não é dono de nada; transições e sistemas o mutam in-place.
type Node struct {
	Name     string
	Tag      string
	Layer    int // Índice da camada no registro (bit da máscara)
	Position rl.Vector3
	Scale    rl.Vector3
}

// Visual é um elemento desenhável preso a um nó.
// O canal alpha da cor controla fades.
type Visual struct {
	Node  *Node
	Color rl.Color
	Shape Shape
}

// Light representa uma fonte de luz pontual da cena.
type Light struct {
	Name      string
	Position  rl.Vector3
	Color     rl.Color
	Intensity float32
}

// Scene agrupa os objetos de uma cena em registros planos.
// Sem hierarquia: o modelo aqui é deliberadamente raso, como os helpers que o consomem.
type Scene struct {
	Nodes   []*Node
	Visuals []*Visual
	Lights  []*Light
}

// New cria uma cena vazia.
func New() *Scene {
	return &Scene{}
}

// AddNode registra um nó na cena e o retorna.
func (s *Scene) AddNode(n *Node) *Node {
	if n.Scale == (rl.Vector3{}) {
		n.Scale = rl.Vector3{X: 1, Y: 1, Z: 1}
	}
	s.Nodes = append(s.Nodes, n)
	return n
}

// AddVisual registra um visual na cena e o retorna.
func (s *Scene) AddVisual(v *Visual) *Visual {
	s.Visuals = append(s.Visuals, v)
	return v
}

// AddLight registra uma luz na cena e a retorna.
func (s *Scene) AddLight(l *Light) *Light {
	if l.Intensity == 0 {
		l.Intensity = 1
	}
	s.Lights = append(s.Lights, l)
	return l
}

// FindNode retorna o primeiro nó com o nome dado, ou nil.
func (s *Scene) FindNode(name string) *Node {
	for _, n := range s.Nodes {
		if n.Name == name {
			return n
		}
	}
	return nil
}

// FindLight retorna a primeira luz com o nome dado, ou nil.
func (s *Scene) FindLight(name string) *Light {
	for _, l := range s.Lights {
		if l.Name == name {
			return l
		}
	}
	return nil
}

// FindVisualsByTag retorna um snapshot dos visuais cujo nó tem a tag dada.
// A lista é resolvida UMA vez: visuais adicionados ou removidos depois da
// chamada não afetam quem guardou o resultado (transições em andamento
// continuam aplicando valores ao conjunto resolvido no início).
func (s *Scene) FindVisualsByTag(tag string) []*Visual {
	var out []*Visual
	for _, v := range s.Visuals {
		if v.Node != nil && v.Node.Tag == tag {
			out = append(out, v)
		}
	}
	return out
}
