package main

import (
	"flag"
	"log"
	"runtime"

	"CenaVision/cliente/internal/app"
	"CenaVision/shared/config"
)

func main() {
	// IMPORTANTE para estabilidade: Raylib/OpenGL exige rodar na thread principal do SO
	runtime.LockOSThread()

	// Flags de linha de comando (sobrescrevem o config salvo)
	monitorURL := flag.String("monitor", "", "URL do monitor remoto (padrão: desabilitado)")
	fullscreen := flag.Bool("fullscreen", false, "Iniciar em tela cheia")
	debug := flag.Bool("debug", false, "Mostrar informações de debug")
	width := flag.Int("width", 0, "Largura da janela")
	height := flag.Int("height", 0, "Altura da janela")
	flag.Parse()

	log.SetFlags(log.Ltime | log.Lshortfile)
	log.Println("--- CenaVision v0.1.0 ---")

	cfg := config.Load()

	if *monitorURL != "" {
		cfg.MonitorURL = *monitorURL
		cfg.MonitorEnabled = true
	}
	if *fullscreen {
		cfg.Fullscreen = true
	}
	if *debug {
		cfg.ShowDebugInfo = true
	}
	if *width > 0 {
		cfg.WindowWidth = int32(*width)
	}
	if *height > 0 {
		cfg.WindowHeight = int32(*height)
	}

	application := app.New(cfg)
	application.Run()
}
