package storage

import (
	"os"
	"path/filepath"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/fabiano-filho/cronicas-de-algorion-backend/internal/game"
)

// OpenAndMigrate opens the sqlite database and keeps the schema updated
// via AutoMigrate. The parent directory is created so a fresh checkout
// can run with the default ./data path.
func OpenAndMigrate(dataSourceName string) (*gorm.DB, error) {
	if dir := filepath.Dir(dataSourceName); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, err
		}
	}
	db, err := gorm.Open(sqlite.Open(dataSourceName), &gorm.Config{})
	if err != nil {
		return nil, err
	}
	if err := db.AutoMigrate(&game.Session{}, &game.Player{}); err != nil {
		return nil, err
	}
	return db, nil
}
