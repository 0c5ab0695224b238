// Package bootstrap is the composition root a presentation shell embeds: it
// wires configuration, logging, the storage pool and the engine components
// into one fx graph. The engine itself has no network or CLI surface.
package bootstrap

import (
	"frontdesk/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	LoggerModule,
	DBModule,
	MigrateModule,
	components.RepositoryModule,
	components.UseCaseModule,
)
