package main

import (
	"context"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/neopdv/backoffice-api/infrastructure/database/postgres"
	"github.com/neopdv/backoffice-api/infrastructure/repository"
	"github.com/neopdv/backoffice-api/internal/api"
	"github.com/neopdv/backoffice-api/internal/config"
	"github.com/neopdv/backoffice-api/internal/scheduler"
	"github.com/neopdv/backoffice-api/internal/usecases/expensing"
	"github.com/neopdv/backoffice-api/internal/usecases/metering"
	"github.com/neopdv/backoffice-api/internal/usecases/printing"
	"github.com/sirupsen/logrus"
)

func main() {
	// Inicializa configuração de logs
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	// Define o nível de log com base na configuração
	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)
	logrus.Infof("Nível de log configurado para: %s", logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	metricsRepo := repository.NewMetricsRepository(pgConn)
	expenseRepo := repository.NewExpenseRepository(pgConn)
	categoryRepo := repository.NewExpenseCategoryRepository(pgConn)
	printerRepo := repository.NewPrinterRepository(pgConn)

	metricsService := metering.NewService(metricsRepo, cfg)
	expenseService := expensing.NewService(expenseRepo, categoryRepo)
	printerService := printing.NewService(printerRepo)

	// Agendador que mantém o cache de métricas aquecido
	metricsWarmService := scheduler.NewMetricsWarmService(metricsService, cfg)
	if err := metricsWarmService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de aquecimento de métricas")
	} else {
		logrus.Info("Agendador de aquecimento de métricas iniciado com sucesso")
	}

	server, err := api.New(
		cfg,
		metricsService,
		expenseService,
		printerService,
	)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// configureLogger configura o formato e comportamento dos logs
func configureLogger() {
	_, file, _, _ := runtime.Caller(0)
	dir := path.Dir(file)
	os.Chdir(dir)

	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}

// pgconn cria uma conexão com o banco de dados
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}

	err = conn.Ping(ctx)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao testar conexão com PostgreSQL")
	}

	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}
