package main

import (
	"flag"

	"go-payroll/internal/app"
	"go-payroll/internal/shared/config"

	"go.uber.org/zap"
)

func main() {
	steps := flag.Int("steps", 1, "number of migrations to roll back with down")
	flag.Parse()

	command := flag.Arg(0)
	if command == "" {
		command = app.MigrateUp
	}

	logger, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()
	zap.ReplaceGlobals(logger)

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("load config failed", zap.Error(err))
	}

	if err := app.RunMigrations(cfg, command, *steps); err != nil {
		logger.Fatal("migrate failed", zap.String("command", command), zap.Error(err))
	}
}
