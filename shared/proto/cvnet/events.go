package cvnet

import (
	"google.golang.org/protobuf/encoding/protowire"
)

// TransitionPhase indica o momento do ciclo de vida reportado.
type TransitionPhase int32

const (
	PhaseStarted  TransitionPhase = 1
	PhaseFinished TransitionPhase = 2
)

// TransitionEvent reporta o início ou fim de uma transição no cliente.
type TransitionEvent struct {
	Phase    TransitionPhase
	Kind     string // "fade", "scale", "slide", "light_color"
	Target   string // Nome ou tag do alvo
	Duration float32
	Progress float32
}

// Marshal serializa o evento.
func (m *TransitionEvent) Marshal() []byte {
	var b []byte
	b = appendVarint(b, 1, uint64(m.Phase))
	b = appendString(b, 2, m.Kind)
	b = appendString(b, 3, m.Target)
	b = appendFloat(b, 4, m.Duration)
	b = appendFloat(b, 5, m.Progress)
	return b
}

// Unmarshal desserializa o evento, pulando campos desconhecidos.
func (m *TransitionEvent) Unmarshal(data []byte) error {
	for len(data) > 0 {
		num, typ, n := protowire.ConsumeTag(data)
		if n < 0 {
			return protowire.ParseError(n)
		}
		data = data[n:]

		switch num {
		case 1:
			v, n := protowire.ConsumeVarint(data)
			if n < 0 {
				return protowire.ParseError(n)
			}
			m.Phase = TransitionPhase(v)
			data = data[n:]
		case 2:
			v, n := protowire.ConsumeString(data)
			if n < 0 {
				return protowire.ParseError(n)
			}
			m.Kind = v
			data = data[n:]
		case 3:
			v, n := protowire.ConsumeString(data)
			if n < 0 {
				return protowire.ParseError(n)
			}
			m.Target = v
			data = data[n:]
		case 4:
			v, n := protowire.ConsumeFixed32(data)
			if n < 0 {
				return protowire.ParseError(n)
			}
			m.Duration = floatFromBits(v)
			data = data[n:]
		case 5:
			v, n := protowire.ConsumeFixed32(data)
			if n < 0 {
				return protowire.ParseError(n)
			}
			m.Progress = floatFromBits(v)
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
