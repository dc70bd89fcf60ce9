package testutil

import (
	"fmt"
	"strings"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/rafabene/cuidar-backend/internal/domain/ports"
	"github.com/rafabene/cuidar-backend/internal/infrastructure/logging"
	"github.com/rafabene/cuidar-backend/internal/infrastructure/persistence/postgres"
)

// SetupTestDB abre um banco SQLite em memória exclusivo do teste e aplica
// o schema completo. O banco vive enquanto houver conexão aberta; o
// cleanup fecha o pool ao final do teste.
func SetupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	// Nome único por teste para isolar os bancos em memória
	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", name)

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("failed to get sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := postgres.Migrate(db); err != nil {
		t.Fatalf("failed to migrate test schema: %v", err)
	}

	t.Cleanup(func() {
		_ = sqlDB.Close()
	})

	return db
}

// NewTestLogger retorna um logger silencioso para os testes (apenas erros)
func NewTestLogger() ports.Logger {
	return logging.NewSlogLogger("error")
}
