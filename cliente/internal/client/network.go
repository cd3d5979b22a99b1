package client

import (
	"log"
	"sync"
	"time"

	"CenaVision/shared/proto/cvnet"
	"CenaVision/shared/scene"

	"github.com/gorilla/websocket"
)

// Publisher envia eventos de cena para o servidor monitor.
// Todas as publicações são best-effort: sem conexão, o evento é descartado
// em silêncio para nunca travar o loop de frames do jogo.
type Publisher struct {
	conn      *websocket.Conn
	url       string
	connected bool
	mu        sync.RWMutex
}

// NewPublisher cria um publicador apontando para a URL do monitor.
func NewPublisher(url string) *Publisher {
	return &Publisher{url: url}
}

// Connect tenta conectar ao monitor com algumas tentativas espaçadas.
// Pensado para rodar em goroutine própria durante a inicialização.
func (p *Publisher) Connect() error {
	dialer := websocket.Dialer{
		HandshakeTimeout: 5 * time.Second,
	}

	var err error
	maxRetries := 5
	for i := 0; i < maxRetries; i++ {
		log.Printf("[Monitor] Tentativa de conexão %d/%d em %s...", i+1, maxRetries, p.url)
		var conn *websocket.Conn
		conn, _, err = dialer.Dial(p.url, nil)
		if err == nil {
			p.mu.Lock()
			p.conn = conn
			p.connected = true
			p.mu.Unlock()
			go p.readLoop()
			log.Printf("[Monitor] Conectado ao monitor em %s", p.url)
			return nil
		}
		log.Printf("[Monitor] Monitor indisponível: %v. Aguardando...", err)
		time.Sleep(2 * time.Second)
	}

	log.Printf("[Monitor] Desistindo após %d tentativas: %v", maxRetries, err)
	return err
}

// IsConnected informa se há conexão ativa com o monitor.
func (p *Publisher) IsConnected() bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.connected
}

// readLoop só existe para detectar a desconexão do servidor.
func (p *Publisher) readLoop() {
	for {
		p.mu.RLock()
		conn := p.conn
		p.mu.RUnlock()
		if conn == nil {
			return
		}
		if _, _, err := conn.ReadMessage(); err != nil {
			log.Printf("[Monitor] Conexão encerrada: %v", err)
			p.mu.Lock()
			p.connected = false
			p.mu.Unlock()
			return
		}
	}
}

// Close encerra a conexão, se houver.
func (p *Publisher) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.conn != nil {
		p.conn.Close()
		p.conn = nil
	}
	p.connected = false
}

// send embrulha e envia um payload; erros derrubam o estado de conexão.
func (p *Publisher) send(typ cvnet.EnvelopeType, payload []byte) {
	if !p.IsConnected() {
		return
	}

	data := cvnet.Wrap(typ, payload)

	p.mu.Lock()
	err := p.conn.WriteMessage(websocket.BinaryMessage, data)
	if err != nil {
		p.connected = false
	}
	p.mu.Unlock()

	if err != nil {
		log.Printf("[Monitor] Erro ao enviar evento: %v", err)
	}
}

// PublishTransition reporta o início ou fim de uma transição.
func (p *Publisher) PublishTransition(phase cvnet.TransitionPhase, kind, target string, duration, progress float32) {
	msg := &cvnet.TransitionEvent{
		Phase:    phase,
		Kind:     kind,
		Target:   target,
		Duration: duration,
		Progress: progress,
	}
	p.send(cvnet.EnvelopeTransitionEvent, msg.Marshal())
}

// PublishSceneState envia uma fotografia da cena para o monitor.
func (p *Publisher) PublishSceneState(snap *scene.Snapshot) {
	msg := &cvnet.SceneState{}

	for _, n := range snap.Nodes {
		msg.Nodes = append(msg.Nodes, cvnet.NodeState{
			Name:  n.Name,
			Tag:   n.Tag,
			X:     n.Position.X,
			Y:     n.Position.Y,
			Z:     n.Position.Z,
			Scale: n.Scale.X,
			R:     uint32(n.Color.R),
			G:     uint32(n.Color.G),
			B:     uint32(n.Color.B),
			Alpha: uint32(n.Color.A),
		})
	}
	for _, l := range snap.Lights {
		msg.Lights = append(msg.Lights, cvnet.LightState{
			Name:      l.Name,
			X:         l.Position.X,
			Y:         l.Position.Y,
			Z:         l.Position.Z,
			R:         uint32(l.Color.R),
			G:         uint32(l.Color.G),
			B:         uint32(l.Color.B),
			Intensity: l.Intensity,
		})
	}

	p.send(cvnet.EnvelopeSceneState, msg.Marshal())
}
