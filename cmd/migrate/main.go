// Comando de migração de esquema. Aplica as alterações pendentes de forma
// idempotente, então pode rodar em todo deploy
package main

import (
	"context"
	"time"

	"github.com/neopdv/backoffice-api/infrastructure/database/postgres"
	"github.com/neopdv/backoffice-api/internal/config"
	"github.com/neopdv/backoffice-api/internal/maintenance"
	"github.com/sirupsen/logrus"
)

func main() {
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	ctx := context.Background()

	conn, err := postgres.NewConnection(ctx, cfg.Database)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}
	defer conn.Close()

	if err := maintenance.RunMigrations(ctx, conn); err != nil {
		logrus.WithError(err).Fatal("Erro ao aplicar migrações")
	}
}
