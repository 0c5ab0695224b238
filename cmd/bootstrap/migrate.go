package bootstrap

import (
	"context"
	"log/slog"

	"frontdesk/internal/infra/db"
	"frontdesk/internal/pkg/config"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var MigrateModule = fx.Module("migrate",
	fx.Invoke(
		applySchemaOnStart,
	),
)

// Runs after DBModule so a failed connection surfaces first. The pool
// parameter is only an ordering dependency.
func applySchemaOnStart(lc fx.Lifecycle, cfg config.Config, _ *pgxpool.Pool, logger *slog.Logger) {
	if !cfg.Migrate.OnStart {
		return
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			logger.Info("applying schema", "dev_url", cfg.Migrate.DevURL)
			return db.ApplySchema(ctx, cfg.DB.BuildDSN(), cfg.Migrate.DevURL)
		},
	})
}
