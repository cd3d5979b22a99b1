package config

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// Config armazena as configurações do CenaVision.
type Config struct {
	// Janela
	WindowWidth  int32  `json:"window_width"`
	WindowHeight int32  `json:"window_height"`
	WindowTitle  string `json:"window_title"`
	Fullscreen   bool   `json:"fullscreen"`
	TargetFPS    int32  `json:"target_fps"`

	// Monitor remoto (Usado pelo Cliente)
	MonitorURL     string `json:"monitor_url"`
	MonitorEnabled bool   `json:"monitor_enabled"`

	// Monitor remoto (Usado pelo Servidor)
	ListenAddr string `json:"listen_addr"`

	// Camadas nomeadas da cena, na ordem dos bits da máscara
	LayerNames []string `json:"layer_names"`

	// Transições
	DefaultDuration float32 `json:"default_duration"` // Segundos
	DefaultEase     string  `json:"default_ease"`     // Nome da curva (ex: "ease_in_out_quad")

	// Câmera
	CameraSpeed       float32 `json:"camera_speed"`
	CameraSensitivity float32 `json:"camera_sensitivity"`
	ZoomSpeed         float32 `json:"zoom_speed"`
	FOV               float32 `json:"fov"`

	// Persistência
	SaveDir string `json:"save_dir"`

	// Debug
	ShowDebugInfo bool `json:"show_debug_info"`
	ShowGrid      bool `json:"show_grid"`
}

// DefaultConfig retorna a configuração padrão.
func DefaultConfig() *Config {
	return &Config{
		WindowWidth:  1280,
		WindowHeight: 720,
		WindowTitle:  "CenaVision",
		Fullscreen:   false,
		TargetFPS:    60,

		MonitorURL:     "ws://127.0.0.1:8080/publish",
		MonitorEnabled: false,

		ListenAddr: ":8080",

		LayerNames: []string{"Default", "Terrain", "Props", "Units", "Effects"},

		DefaultDuration: 1.0,
		DefaultEase:     "ease_in_out_quad",

		CameraSpeed:       10.0,
		CameraSensitivity: 0.3,
		ZoomSpeed:         5.0,
		FOV:               45.0,

		SaveDir: "saves",

		ShowDebugInfo: true,
		ShowGrid:      false,
	}
}

// configPath retorna o caminho do arquivo de configuração.
func configPath() string {
	execDir, err := os.Executable()
	if err != nil {
		return "config.json"
	}
	return filepath.Join(filepath.Dir(execDir), "config.json")
}

// Load carrega as configurações de um arquivo JSON.
// Se o arquivo não existir, retorna as configurações padrão.
func Load() *Config {
	cfg := DefaultConfig()

	data, err := os.ReadFile(configPath())
	if err != nil {
		return cfg
	}

	if err := json.Unmarshal(data, cfg); err != nil {
		return DefaultConfig()
	}

	return cfg
}

// Save salva as configurações em um arquivo JSON.
func (c *Config) Save() error {
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(configPath(), data, 0644)
}
