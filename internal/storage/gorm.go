package storage

import (
	"context"
	"errors"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Blob é a única tabela do banco local: um registro por chave lógica.
type Blob struct {
	Key       string    `gorm:"primaryKey;size:100"`
	Value     []byte    `gorm:"type:blob"`
	UpdatedAt time.Time `json:"updated_at"`
}

type GormKV struct {
	db *gorm.DB
}

// NewDB abre (criando se preciso) o banco sqlite local em
// dataDir/barbearia.db e garante o schema.
func NewDB(dataDir string) *gorm.DB {
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		log.Fatalf("failed to create data dir: %v", err)
	}

	path := filepath.Join(dataDir, "barbearia.db")

	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		PrepareStmt: true,
	})
	if err != nil {
		log.Fatalf("failed to open database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		log.Fatalf("failed to get sql.DB: %v", err)
	}

	// sqlite local, escritor único
	sqlDB.SetMaxOpenConns(1)
	sqlDB.SetConnMaxIdleTime(10 * time.Minute)

	if err := db.AutoMigrate(&Blob{}); err != nil {
		log.Fatalf("failed to migrate: %v", err)
	}

	return db
}

func NewGormKV(db *gorm.DB) *GormKV {
	return &GormKV{db: db}
}

func (s *GormKV) Read(ctx context.Context, key string) ([]byte, bool, error) {
	var b Blob
	err := s.db.WithContext(ctx).
		Where("key = ?", key).
		First(&b).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return b.Value, true, nil
}

func (s *GormKV) Write(ctx context.Context, key string, blob []byte) error {
	b := Blob{Key: key, Value: blob, UpdatedAt: time.Now()}

	return s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "key"}},
			DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
		}).
		Create(&b).Error
}
