// Servidor monitor do CenaVision: recebe eventos de cena de clientes
// publicadores via WebSocket e os retransmite para todos os observadores
// conectados. Não interpreta o conteúdo além do envelope; o payload
// segue no wire format do cvnet.
package main

import (
	"log"
	"net/http"
	"sync"

	"CenaVision/shared/config"
	"CenaVision/shared/proto/cvnet"

	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// Hub gerencia as conexões WebSocket dos observadores.
type Hub struct {
	clients    map[*websocket.Conn]*sync.Mutex
	broadcast  chan []byte
	register   chan *websocket.Conn
	unregister chan *websocket.Conn
	mu         sync.Mutex

	// Última fotografia de cena vista, enviada a observadores recém-conectados
	lastScene   []byte
	lastSceneMu sync.Mutex
}

func newHub() *Hub {
	return &Hub{
		clients:    make(map[*websocket.Conn]*sync.Mutex),
		broadcast:  make(chan []byte, 4096), // Bufferizado para evitar bloqueios no publicador
		register:   make(chan *websocket.Conn),
		unregister: make(chan *websocket.Conn),
	}
}

func (h *Hub) run() {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("[Hub] Recuperado de pânico fatal: %v", r)
		}
	}()

	for {
		select {
		case client, ok := <-h.register:
			if !ok {
				return
			}
			h.mu.Lock()
			h.clients[client] = &sync.Mutex{}
			h.mu.Unlock()
			log.Printf("[Hub] Observador registrado: %s", client.RemoteAddr())

			// Observador novo recebe o último estado de cena conhecido
			h.lastSceneMu.Lock()
			last := h.lastScene
			h.lastSceneMu.Unlock()
			if last != nil {
				if err := h.writeSafe(client, last); err != nil {
					log.Printf("[Hub] Erro ao enviar estado inicial: %v", err)
				}
			}

		case client, ok := <-h.unregister:
			if !ok {
				return
			}
			h.mu.Lock()
			if lock, ok := h.clients[client]; ok {
				lock.Lock()
				delete(h.clients, client)
				client.Close()
				lock.Unlock()
				log.Printf("[Hub] Observador desregistrado: %s", client.RemoteAddr())
			}
			h.mu.Unlock()

		case message, ok := <-h.broadcast:
			if !ok {
				return
			}
			// Lista de alvos montada fora do lock do hub para não segurar
			// o lock durante escritas de rede
			type clientEntry struct {
				conn *websocket.Conn
				lock *sync.Mutex
			}
			h.mu.Lock()
			var targets []clientEntry
			for c, l := range h.clients {
				targets = append(targets, clientEntry{c, l})
			}
			h.mu.Unlock()

			for _, target := range targets {
				target.lock.Lock()
				err := target.conn.WriteMessage(websocket.BinaryMessage, message)
				target.lock.Unlock()
				if err != nil {
					log.Printf("[Hub] Erro ao enviar para %s: %v", target.conn.RemoteAddr(), err)
					target.conn.Close()
					h.mu.Lock()
					delete(h.clients, target.conn)
					h.mu.Unlock()
				}
			}
		}
	}
}

// writeSafe garante que apenas uma goroutine escreva na conexão por vez.
func (h *Hub) writeSafe(conn *websocket.Conn, data []byte) error {
	h.mu.Lock()
	lock, ok := h.clients[conn]
	h.mu.Unlock()
	if !ok {
		return websocket.ErrCloseSent
	}

	lock.Lock()
	defer lock.Unlock()
	return conn.WriteMessage(websocket.BinaryMessage, data)
}

// safeSend envia para o canal de broadcast protegendo contra pânico de canal fechado.
func (h *Hub) safeSend(data []byte) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("[Hub] Aviso: falha ao enviar broadcast (canal fechado?): %v", r)
		}
	}()
	h.broadcast <- data
}

// handlePublish recebe o stream de eventos de um cliente publicador
// (o jogo rodando as transições) e retransmite cada envelope válido.
func (h *Hub) handlePublish(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("[Servidor] Erro no upgrade do publicador: %v", err)
		return
	}
	defer conn.Close()
	log.Printf("[Servidor] Publicador conectado: %s", conn.RemoteAddr())

	for {
		msgType, data, err := conn.ReadMessage()
		if err != nil {
			log.Printf("[Servidor] Publicador desconectado: %v", err)
			return
		}
		if msgType != websocket.BinaryMessage {
			continue
		}

		// Valida o envelope antes de retransmitir; lixo é descartado
		var env cvnet.Envelope
		if err := env.Unmarshal(data); err != nil {
			log.Printf("[Servidor] Envelope inválido descartado: %v", err)
			continue
		}

		if env.Type == cvnet.EnvelopeSceneState {
			h.lastSceneMu.Lock()
			h.lastScene = data
			h.lastSceneMu.Unlock()
		}

		h.safeSend(data)
	}
}

// handleObserve registra um observador que só recebe o stream retransmitido.
func (h *Hub) handleObserve(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("[Servidor] Erro no upgrade do observador: %v", err)
		return
	}

	h.register <- conn

	// Loop de leitura só para detectar desconexão (observadores não enviam nada útil)
	go func() {
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				h.unregister <- conn
				return
			}
		}
	}()
}

func main() {
	cfg := config.Load()

	hub := newHub()
	go hub.run()

	http.HandleFunc("/publish", hub.handlePublish)
	http.HandleFunc("/ws", hub.handleObserve)

	log.Printf("[Servidor] Monitor CenaVision escutando em %s", cfg.ListenAddr)
	if err := http.ListenAndServe(cfg.ListenAddr, nil); err != nil {
		log.Fatalf("[Servidor] Erro fatal: %v", err)
	}
}
