package palette

import (
	"bytes"
	"encoding/gob"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"CenaVision/shared/scene"

	rl "github.com/gen2brain/raylib-go/raylib"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// EntryModel representa o esquema do banco para uma cor customizada do usuário.
type EntryModel struct {
	Token      string `gorm:"primaryKey"`
	R, G, B, A uint8
	UpdatedAt  time.Time
}

// SnapshotModel armazena uma fotografia da cena serializada em GOB.
type SnapshotModel struct {
	Name      string `gorm:"primaryKey"`
	Data      []byte
	UpdatedAt time.Time
}

// MetadataModel armazena informações globais do banco (versão de formato, etc).
type MetadataModel struct {
	Key   string `gorm:"primaryKey"`
	Value string
}

const CurrentFormatVersion = 1

// Store persiste cores customizadas e snapshots de cena em SQLite via GORM.
type Store struct {
	DB *gorm.DB
}

// OpenInitialize abre (ou cria) o banco SQLite no diretório dado e roda migrações.
func (s *Store) OpenInitialize(dir, name string) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	dbPath := filepath.Join(dir, fmt.Sprintf("%s.cv", name))

	// Logger silencioso em produção
	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return fmt.Errorf("falha ao conectar no SQLite: %w", err)
	}

	if err := db.AutoMigrate(&EntryModel{}, &SnapshotModel{}, &MetadataModel{}); err != nil {
		return fmt.Errorf("falha na migração do banco: %w", err)
	}

	s.DB = db

	db.Save(&MetadataModel{Key: "FormatVersion", Value: fmt.Sprint(CurrentFormatVersion)})
	return nil
}

// SaveEntry grava (upsert) uma cor customizada.
func (s *Store) SaveEntry(token string, c rl.Color) error {
	if s.DB == nil {
		return fmt.Errorf("banco de dados não inicializado")
	}
	model := EntryModel{Token: token, R: c.R, G: c.G, B: c.B, A: c.A}
	return s.DB.Save(&model).Error
}

// LoadEntry carrega uma cor customizada pelo token.
func (s *Store) LoadEntry(token string) (rl.Color, error) {
	if s.DB == nil {
		return rl.Color{}, fmt.Errorf("banco de dados não inicializado")
	}
	var model EntryModel
	if err := s.DB.First(&model, "token = ?", token).Error; err != nil {
		return rl.Color{}, err
	}
	return rl.Color{R: model.R, G: model.G, B: model.B, A: model.A}, nil
}

// Resolve procura um token primeiro nas cores customizadas do banco e
// depois na paleta embutida. Store nulo ou sem banco cai direto na paleta.
func (s *Store) Resolve(token string) (rl.Color, bool) {
	if s != nil && s.DB != nil {
		if c, err := s.LoadEntry(token); err == nil {
			return c, true
		}
	}
	return Lookup(token)
}

// SaveSnapshot serializa uma fotografia da cena em GOB e grava no banco.
func (s *Store) SaveSnapshot(name string, snap *scene.Snapshot) error {
	if s.DB == nil {
		return fmt.Errorf("banco de dados não inicializado")
	}

	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(snap); err != nil {
		return fmt.Errorf("falha ao serializar snapshot: %w", err)
	}

	model := SnapshotModel{Name: name, Data: buf.Bytes()}
	return s.DB.Save(&model).Error
}

// LoadSnapshot carrega e desserializa uma fotografia da cena.
func (s *Store) LoadSnapshot(name string) (*scene.Snapshot, error) {
	if s.DB == nil {
		return nil, fmt.Errorf("banco de dados não inicializado")
	}

	var model SnapshotModel
	if err := s.DB.First(&model, "name = ?", name).Error; err != nil {
		return nil, err
	}

	var snap scene.Snapshot
	if err := gob.NewDecoder(bytes.NewReader(model.Data)).Decode(&snap); err != nil {
		return nil, err
	}
	return &snap, nil
}
