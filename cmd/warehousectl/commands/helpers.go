package commands

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/WareOnGo/whatsapp-logistics-bot/internal/config"
	"github.com/WareOnGo/whatsapp-logistics-bot/internal/storage"
)

// openDatabase loads the configuration and connects with the schema applied.
func openDatabase(ctx context.Context) (*sql.DB, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	openCtx, cancel := context.WithTimeout(ctx, 15*time.Second)
	defer cancel()
	db, err := storage.Open(openCtx, cfg.Database)
	if err != nil {
		return nil, err
	}
	if err := storage.Migrate(ctx, db, cfg.Database.Driver); err != nil {
		db.Close()
		return nil, err
	}
	return db, nil
}
