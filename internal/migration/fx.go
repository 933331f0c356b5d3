package migration

import (
	"github.com/smallbiznis/catalog/internal/config"
	productdomain "github.com/smallbiznis/catalog/internal/product/domain"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

var Module = fx.Module("migrations",
	fx.Invoke(func(conn *gorm.DB, cfg config.Config) error {
		if cfg.DBType != "postgres" {
			// mysql/sqlite dev runs fall back to schema sync; versioned
			// migrations are only maintained for the postgres deployment.
			return conn.AutoMigrate(&productdomain.Product{})
		}

		sqlDB, err := conn.DB()
		if err != nil {
			return err
		}
		return RunMigrations(sqlDB)
	}),
)
