package scene

import rl "github.com/gen2brain/raylib-go/raylib"

// NodeState é o estado serializável de um nó em um instante.
type NodeState struct {
	Name     string
	Tag      string
	Position rl.Vector3
	Scale    rl.Vector3
	Color    rl.Color
	HasColor bool
}

// LightState é o estado serializável de uma luz em um instante.
type LightState struct {
	Name      string
	Position  rl.Vector3
	Color     rl.Color
	Intensity float32
}

// Snapshot é uma fotografia da cena, usada para persistência e para o
// stream do monitor remoto. Serializável em GOB.
type Snapshot struct {
	Nodes  []NodeState
	Lights []LightState
}

// TakeSnapshot captura o estado atual da cena.
// Nós com visual carregam a cor do primeiro visual associado.
func (s *Scene) TakeSnapshot() *Snapshot {
	snap := &Snapshot{
		Nodes:  make([]NodeState, 0, len(s.Nodes)),
		Lights: make([]LightState, 0, len(s.Lights)),
	}

	for _, n := range s.Nodes {
		state := NodeState{
			Name:     n.Name,
			Tag:      n.Tag,
			Position: n.Position,
			Scale:    n.Scale,
		}
		for _, v := range s.Visuals {
			if v.Node == n {
				state.Color = v.Color
				state.HasColor = true
				break
			}
		}
		snap.Nodes = append(snap.Nodes, state)
	}

	for _, l := range s.Lights {
		snap.Lights = append(snap.Lights, LightState{
			Name:      l.Name,
			Position:  l.Position,
			Color:     l.Color,
			Intensity: l.Intensity,
		})
	}

	return snap
}
