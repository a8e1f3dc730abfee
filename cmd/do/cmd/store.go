package cmd

import (
	"github.com/SyedqaderEng/financeOS-sub001/internal/config"
	"github.com/SyedqaderEng/financeOS-sub001/internal/db"
	"github.com/SyedqaderEng/financeOS-sub001/internal/logger"
	"github.com/jmoiron/sqlx"
)

// openDatabase loads the environment config and opens the configured
// database without running migrations.
func openDatabase() (*config.Config, *sqlx.DB, func(), error) {
	cfg := config.Load()
	flush := logger.Init(logger.Options{
		Development: cfg.IsDevelopment(),
		Environment: cfg.AppEnv,
		SentryDSN:   cfg.SentryDSN,
	})

	database, err := db.Init(cfg.DBDriver, cfg.DBConnection)
	if err != nil {
		flush()
		return nil, nil, nil, err
	}

	closeFn := func() {
		_ = database.Close()
		flush()
	}
	return cfg, database, closeFn, nil
}
