package app

import (
	"database/sql"
	"errors"
	"fmt"
	"path/filepath"

	"go-payroll/internal/shared/config"

	"github.com/golang-migrate/migrate/v4"
	pgxmigrate "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	_ "github.com/jackc/pgx/v5/stdlib"
	"go.uber.org/zap"
)

const (
	MigrateUp      = "up"
	MigrateDown    = "down"
	MigrateVersion = "version"
)

// RunMigrations applies the SQL files under cfg.App.MigrationsDir.
// steps limits "down" to that many migrations; zero rolls back one.
func RunMigrations(cfg *config.Config, command string, steps int) error {
	logger := zap.L().Named("app.migrate")

	db, err := sql.Open("pgx", cfg.Database.URL())
	if err != nil {
		return err
	}
	defer db.Close()

	driver, err := pgxmigrate.WithInstance(db, &pgxmigrate.Config{})
	if err != nil {
		return err
	}

	dir, err := filepath.Abs(cfg.App.MigrationsDir)
	if err != nil {
		return err
	}

	m, err := migrate.NewWithDatabaseInstance("file://"+filepath.ToSlash(dir), cfg.Database.Name, driver)
	if err != nil {
		return err
	}

	switch command {
	case MigrateUp:
		err = m.Up()
	case MigrateDown:
		if steps < 1 {
			steps = 1
		}
		err = m.Steps(-steps)
	case MigrateVersion:
		version, dirty, verr := m.Version()
		if verr != nil && !errors.Is(verr, migrate.ErrNilVersion) {
			return verr
		}
		logger.Info("migration version", zap.Uint("version", version), zap.Bool("dirty", dirty))
		return nil
	default:
		return fmt.Errorf("unknown migrate command %q", command)
	}

	if errors.Is(err, migrate.ErrNoChange) {
		logger.Info("no migration to apply")
		return nil
	}
	if err != nil {
		return err
	}

	logger.Info("migrations applied", zap.String("command", command))
	return nil
}
