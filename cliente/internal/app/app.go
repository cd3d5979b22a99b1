package app

import (
	"log"

	"CenaVision/cliente/internal/camera"
	"CenaVision/cliente/internal/client"
	"CenaVision/shared/config"
	"CenaVision/shared/layers"
	"CenaVision/shared/palette"
	"CenaVision/shared/scene"
	"CenaVision/shared/tween"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// App é a aplicação de demonstração do CenaVision: uma cena com nós,
// visuais e uma luz, onde transições são disparadas por teclado e
// reportadas ao monitor remoto.
type App struct {
	Config *config.Config

	Cam *camera.Controller

	// Cena e transições
	Scene    *scene.Scene
	Runner   *tween.Runner
	Registry *layers.Registry

	// Máscara das camadas destacáveis (consulta de alcance com R)
	highlightMask layers.Mask

	// Persistência de paleta e snapshots
	Store *palette.Store

	// Monitor remoto
	publisher *client.Publisher

	// Estado da demo
	frameCount   int
	fadedOut     bool // Alterna o sentido do fade dos props
	defaultEase  tween.Ease
	rangeRadius  float32
	highlighted  map[*scene.Node]bool
	spawnCounter int
}

// New cria uma nova instância da aplicação.
func New(cfg *config.Config) *App {
	return &App{
		Config:      cfg,
		Scene:       scene.New(),
		Runner:      tween.NewRunner(),
		defaultEase: tween.ByName(cfg.DefaultEase),
		rangeRadius: 15.0,
		highlighted: make(map[*scene.Node]bool),
	}
}

// Run inicia o loop principal da aplicação.
func (a *App) Run() {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("[PANIC] Erro fatal recuperado: %v", r)
			panic(r)
		}
	}()

	// Registro de camadas a partir da configuração
	reg, err := layers.NewRegistry(a.Config.LayerNames...)
	if err != nil {
		log.Fatalf("[App] Configuração de camadas inválida: %v", err)
	}
	a.Registry = reg

	// Máscara de destaque: props e efeitos participam da consulta de alcance
	mask, err := reg.CreateMask("Props", "Effects")
	if err != nil {
		// Nomes desconhecidos são pulados; a máscara cobre o que resolveu
		log.Printf("[App] Aviso ao montar máscara de destaque: %v", err)
	}
	a.highlightMask = mask

	// Banco de paleta e snapshots
	a.Store = &palette.Store{}
	if err := a.Store.OpenInitialize(a.Config.SaveDir, "cenavision"); err != nil {
		log.Printf("[App] Persistência desabilitada: %v", err)
		a.Store = nil
	}

	// Inicializar janela raylib
	rl.SetConfigFlags(rl.FlagMsaa4xHint | rl.FlagWindowResizable)
	rl.InitWindow(a.Config.WindowWidth, a.Config.WindowHeight, a.Config.WindowTitle)
	rl.SetTraceLogLevel(rl.LogWarning) // Reduz ruído no terminal

	if a.Config.Fullscreen {
		rl.ToggleFullscreen()
	}

	rl.SetTargetFPS(a.Config.TargetFPS)
	rl.SetExitKey(0)

	// Câmera
	a.Cam = camera.New(a.Config.FOV, a.Config.CameraSpeed, a.Config.CameraSensitivity, a.Config.ZoomSpeed)
	a.Cam.SetTarget(rl.Vector3{X: 0, Y: 0, Z: 0})

	// Cena de demonstração
	a.buildScene()

	log.Println("[App] Janela inicializada com sucesso")
	log.Printf("[App] Resolução: %dx%d", a.Config.WindowWidth, a.Config.WindowHeight)

	// Monitor remoto em goroutine própria para não segurar a inicialização
	if a.Config.MonitorEnabled {
		a.publisher = client.NewPublisher(a.Config.MonitorURL)
		go a.publisher.Connect()
	}

	// Loop principal
	for !rl.WindowShouldClose() {
		a.update()
		a.draw()
	}

	a.shutdown()
	rl.CloseWindow()
}

// update atualiza a lógica a cada frame.
func (a *App) update() {
	a.frameCount++
	dt := rl.GetFrameTime()

	a.Cam.HandleInput(dt)
	a.Cam.Update(dt)

	a.updateInput()

	// Um passo cooperativo para cada transição ativa
	a.Runner.Update(dt)

	// Fotografia periódica da cena para o monitor (1x por segundo a 60fps)
	if a.publisher != nil && a.frameCount%60 == 0 {
		a.publisher.PublishSceneState(a.Scene.TakeSnapshot())
	}
}

// shutdown realiza a limpeza de recursos.
func (a *App) shutdown() {
	log.Println("[App] Finalizando aplicação...")

	if a.publisher != nil {
		a.publisher.Close()
	}

	if err := a.Config.Save(); err != nil {
		log.Printf("[App] Erro ao salvar configurações: %v", err)
	}
}
