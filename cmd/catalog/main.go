package main

import (
	"github.com/smallbiznis/catalog/internal/config"
	"github.com/smallbiznis/catalog/internal/logger"
	"github.com/smallbiznis/catalog/internal/migration"
	"github.com/smallbiznis/catalog/internal/server"
	"github.com/smallbiznis/catalog/pkg/db"
	"go.uber.org/fx"
)

func main() {
	app := fx.New(
		// Core infrastructure
		config.Module,
		logger.Module,
		db.Module,
		migration.Module,

		// HTTP surface (pulls in the product domain)
		server.Module,
	)
	app.Run()
}
