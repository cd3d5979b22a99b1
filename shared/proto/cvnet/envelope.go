// Package cvnet define as mensagens do protocolo do monitor remoto.
// Codificação manual no wire format do protobuf (via encoding/protowire),
// o que mantém o protocolo legível por qualquer cliente protobuf sem
// depender de código gerado. Campos desconhecidos são pulados na leitura
// para permitir evolução do protocolo.
package cvnet

import (
	"fmt"
	"math"

	"google.golang.org/protobuf/encoding/protowire"
)

// EnvelopeType identifica o tipo da mensagem embrulhada.
type EnvelopeType int32

const (
	EnvelopeUnknown         EnvelopeType = 0
	EnvelopeTransitionEvent EnvelopeType = 1
	EnvelopeSceneState      EnvelopeType = 2
)

// Envelope embrulha qualquer mensagem do protocolo com seu tipo.
type Envelope struct {
	Type    EnvelopeType
	Payload []byte
}

// Marshal serializa o envelope.
func (e *Envelope) Marshal() []byte {
	var b []byte
	if e.Type != 0 {
		b = protowire.AppendTag(b, 1, protowire.VarintType)
		b = protowire.AppendVarint(b, uint64(e.Type))
	}
	if len(e.Payload) > 0 {
		b = protowire.AppendTag(b, 2, protowire.BytesType)
		b = protowire.AppendBytes(b, e.Payload)
	}
	return b
}

// Unmarshal desserializa o envelope, pulando campos desconhecidos.
func (e *Envelope) Unmarshal(data []byte) error {
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
			e.Type = EnvelopeType(v)
			data = data[n:]
		case 2:
			v, n := protowire.ConsumeBytes(data)
			if n < 0 {
				return protowire.ParseError(n)
			}
			e.Payload = append([]byte(nil), v...)
			data = data[n:]
		default:
			n := protowire.ConsumeFieldValue(num, typ, data)
			if n < 0 {
				return protowire.ParseError(n)
			}
			data = data[n:]
		}
	}
	return nil
}

// Wrap serializa uma mensagem e a embrulha em um envelope pronto para envio.
func Wrap(typ EnvelopeType, payload []byte) []byte {
	env := &Envelope{Type: typ, Payload: payload}
	return env.Marshal()
}

// helpers de codificação compartilhados pelas mensagens

func appendFloat(b []byte, num protowire.Number, v float32) []byte {
	if v == 0 {
		return b
	}
	b = protowire.AppendTag(b, num, protowire.Fixed32Type)
	return protowire.AppendFixed32(b, floatBits(v))
}

func appendString(b []byte, num protowire.Number, s string) []byte {
	if s == "" {
		return b
	}
	b = protowire.AppendTag(b, num, protowire.BytesType)
	return protowire.AppendString(b, s)
}

func appendVarint(b []byte, num protowire.Number, v uint64) []byte {
	if v == 0 {
		return b
	}
	b = protowire.AppendTag(b, num, protowire.VarintType)
	return protowire.AppendVarint(b, v)
}

func appendSubmessage(b []byte, num protowire.Number, sub []byte) []byte {
	b = protowire.AppendTag(b, num, protowire.BytesType)
	return protowire.AppendBytes(b, sub)
}

func skipField(num protowire.Number, typ protowire.Type, data []byte) ([]byte, error) {
	n := protowire.ConsumeFieldValue(num, typ, data)
	if n < 0 {
		return nil, fmt.Errorf("campo %d: %w", num, protowire.ParseError(n))
	}
	return data[n:], nil
}

func floatBits(v float32) uint32 {
	return math.Float32bits(v)
}

func floatFromBits(bits uint32) float32 {
	return math.Float32frombits(bits)
}
