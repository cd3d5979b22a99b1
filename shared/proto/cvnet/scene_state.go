package cvnet

import (
	"google.golang.org/protobuf/encoding/protowire"
)

// NodeState é o estado de um nó da cena no protocolo.
type NodeState struct {
	Name    string
	Tag     string
	X, Y, Z float32
	Scale   float32 // Escala uniforme (componente X da escala do nó)
	R, G, B uint32
	Alpha   uint32
}

// LightState é o estado de uma luz da cena no protocolo.
type LightState struct {
	Name      string
	X, Y, Z   float32
	R, G, B   uint32
	Intensity float32
}

// SceneState é uma fotografia da cena enviada ao monitor.
type SceneState struct {
	Nodes  []NodeState
	Lights []LightState
}

func (m *NodeState) Marshal() []byte {
	var b []byte
	b = appendString(b, 1, m.Name)
	b = appendString(b, 2, m.Tag)
	b = appendFloat(b, 3, m.X)
	b = appendFloat(b, 4, m.Y)
	b = appendFloat(b, 5, m.Z)
	b = appendFloat(b, 6, m.Scale)
	b = appendVarint(b, 7, uint64(m.R))
	b = appendVarint(b, 8, uint64(m.G))
	b = appendVarint(b, 9, uint64(m.B))
	b = appendVarint(b, 10, uint64(m.Alpha))
	return b
}

func (m *NodeState) Unmarshal(data []byte) error {
	for len(data) > 0 {
		num, typ, n := protowire.ConsumeTag(data)
		if n < 0 {
			return protowire.ParseError(n)
		}
		data = data[n:]

		switch num {
		case 1, 2:
			v, n := protowire.ConsumeString(data)
			if n < 0 {
				return protowire.ParseError(n)
			}
			if num == 1 {
				m.Name = v
			} else {
				m.Tag = v
			}
			data = data[n:]
		case 3, 4, 5, 6:
			v, n := protowire.ConsumeFixed32(data)
			if n < 0 {
				return protowire.ParseError(n)
			}
			f := floatFromBits(v)
			switch num {
			case 3:
				m.X = f
			case 4:
				m.Y = f
			case 5:
				m.Z = f
			case 6:
				m.Scale = f
			}
			data = data[n:]
		case 7, 8, 9, 10:
			v, n := protowire.ConsumeVarint(data)
			if n < 0 {
				return protowire.ParseError(n)
			}
			switch num {
			case 7:
				m.R = uint32(v)
			case 8:
				m.G = uint32(v)
			case 9:
				m.B = uint32(v)
			case 10:
				m.Alpha = uint32(v)
			}
			data = data[n:]
		default:
			var err error
			data, err = skipField(num, typ, data)
			if err != nil {
				return err
			}
		}
	}
	return nil
}

func (m *LightState) Marshal() []byte {
	var b []byte
	b = appendString(b, 1, m.Name)
	b = appendFloat(b, 2, m.X)
	b = appendFloat(b, 3, m.Y)
	b = appendFloat(b, 4, m.Z)
	b = appendVarint(b, 5, uint64(m.R))
	b = appendVarint(b, 6, uint64(m.G))
	b = appendVarint(b, 7, uint64(m.B))
	b = appendFloat(b, 8, m.Intensity)
	return b
}

func (m *LightState) Unmarshal(data []byte) error {
	for len(data) > 0 {
		num, typ, n := protowire.ConsumeTag(data)
		if n < 0 {
			return protowire.ParseError(n)
		}
		data = data[n:]

		switch num {
		case 1:
			v, n := protowire.ConsumeString(data)
			if n < 0 {
				return protowire.ParseError(n)
			}
			m.Name = v
			data = data[n:]
		case 2, 3, 4, 8:
			v, n := protowire.ConsumeFixed32(data)
			if n < 0 {
				return protowire.ParseError(n)
			}
			f := floatFromBits(v)
			switch num {
			case 2:
				m.X = f
			case 3:
				m.Y = f
			case 4:
				m.Z = f
			case 8:
				m.Intensity = f
			}
			data = data[n:]
		case 5, 6, 7:
			v, n := protowire.ConsumeVarint(data)
			if n < 0 {
				return protowire.ParseError(n)
			}
			switch num {
			case 5:
				m.R = uint32(v)
			case 6:
				m.G = uint32(v)
			case 7:
				m.B = uint32(v)
			}
			data = data[n:]
		default:
			var err error
			data, err = skipField(num, typ, data)
			if err != nil {
				return err
			}
		}
	}
	return nil
}

func (m *SceneState) Marshal() []byte {
	var b []byte
	for i := range m.Nodes {
		b = appendSubmessage(b, 1, m.Nodes[i].Marshal())
	}
	for i := range m.Lights {
		b = appendSubmessage(b, 2, m.Lights[i].Marshal())
	}
	return b
}

func (m *SceneState) Unmarshal(data []byte) error {
	for len(data) > 0 {
		num, typ, n := protowire.ConsumeTag(data)
		if n < 0 {
			return protowire.ParseError(n)
		}
		data = data[n:]

		switch num {
		case 1:
			sub, n := protowire.ConsumeBytes(data)
			if n < 0 {
				return protowire.ParseError(n)
			}
			var node NodeState
			if err := node.Unmarshal(sub); err != nil {
				return err
			}
			m.Nodes = append(m.Nodes, node)
			data = data[n:]
		case 2:
			sub, n := protowire.ConsumeBytes(data)
			if n < 0 {
				return protowire.ParseError(n)
			}
			var light LightState
			if err := light.Unmarshal(sub); err != nil {
				return err
			}
			m.Lights = append(m.Lights, light)
			data = data[n:]
		default:
			var err error
			data, err = skipField(num, typ, data)
			if err != nil {
				return err
			}
		}
	}
	return nil
}
