// Launcher do CenaVision: sobe o servidor monitor e em seguida o cliente
// de demonstração já apontando para ele. Conveniência para rodar a dupla
// sem dois terminais.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"time"
)

func binaryName(base string) string {
	if runtime.GOOS == "windows" {
		return base + ".exe"
	}
	return base
}

func main() {
	monitorAddr := flag.String("monitor", "ws://127.0.0.1:8080/publish", "URL de publicação do monitor")
	wait := flag.Duration("wait", 2*time.Second, "Espera entre subir o monitor e o cliente")
	flag.Parse()

	fmt.Println("--- CenaVision Launcher ---")

	// 1. Servidor monitor em background
	fmt.Println("[1/2] Iniciando monitor...")
	serverPath, err := filepath.Abs(filepath.Join("servidor", binaryName("servidor")))
	if err != nil {
		log.Fatalf("Erro ao resolver caminho do monitor: %v", err)
	}

	serverCmd := exec.Command(serverPath)
	serverCmd.Stdout = os.Stdout
	serverCmd.Stderr = os.Stderr
	if err := serverCmd.Start(); err != nil {
		log.Fatalf("Erro ao iniciar monitor: %v", err)
	}

	// 2. Dar tempo do monitor abrir a porta antes do cliente conectar
	time.Sleep(*wait)

	// 3. Cliente de demonstração em foreground; quando fechar, derruba o monitor
	fmt.Println("[2/2] Abrindo cliente...")
	clientPath, err := filepath.Abs(filepath.Join("cliente", binaryName("cliente")))
	if err != nil {
		log.Fatalf("Erro ao resolver caminho do cliente: %v", err)
	}

	clientCmd := exec.Command(clientPath, "-monitor", *monitorAddr)
	clientCmd.Dir = "cliente"
	clientCmd.Stdout = os.Stdout
	clientCmd.Stderr = os.Stderr

	if err := clientCmd.Run(); err != nil {
		fmt.Printf("Cliente encerrou com erro: %v\n", err)
	}

	if err := serverCmd.Process.Kill(); err != nil {
		log.Printf("Aviso: não foi possível encerrar o monitor: %v", err)
	}
	fmt.Println("CenaVision finalizado.")
}
