package main

import (
	"context"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/flooring-analytics-api/infrastructure/database/postgres"
	"github.com/vfg2006/flooring-analytics-api/infrastructure/repository"
	"github.com/vfg2006/flooring-analytics-api/infrastructure/repository/analytics"
	"github.com/vfg2006/flooring-analytics-api/internal/api"
	"github.com/vfg2006/flooring-analytics-api/internal/config"
	"github.com/vfg2006/flooring-analytics-api/internal/scheduler"
	"github.com/vfg2006/flooring-analytics-api/internal/usecases/authenticating"
	"github.com/vfg2006/flooring-analytics-api/internal/usecases/insighting"
	"github.com/vfg2006/flooring-analytics-api/internal/usecases/reconciling"
	"github.com/vfg2006/flooring-analytics-api/internal/usecases/reporting"
	"github.com/vfg2006/flooring-analytics-api/internal/usecases/tracking"
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

	salesRowRepo := repository.NewSalesRowRepository(pgConn)
	futureSaleRepo := repository.NewFutureSaleRepository(pgConn)
	lossRepo := repository.NewLossOpportunityRepository(pgConn)
	snapshotRepo := repository.NewDashboardSnapshotRepository(pgConn)
	analyticsGateway := analytics.NewGateway(pgConn)

	authenticator := authenticating.NewService(cfg)

	// Em produção a conferência contábil só avisa; fora dela, derruba a
	// página para a regressão aparecer cedo.
	severity := reconciling.SeverityFatal
	if cfg.IsProduction() {
		severity = reconciling.SeverityWarn
	}
	validator := reconciling.NewValidator(severity, cfg.Reconciliation.Enabled)

	insightService := insighting.NewService(salesRowRepo, validator)
	reportingService := reporting.NewService(analyticsGateway, snapshotRepo)
	trackingService := tracking.NewService(futureSaleRepo, lossRepo, cfg)

	snapshotSyncService := scheduler.NewDashboardSnapshotSyncService(
		analyticsGateway,
		snapshotRepo,
		cfg,
	)

	if err := snapshotSyncService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de snapshot do dashboard")
	} else {
		logrus.Info("Agendador de snapshot do dashboard iniciado com sucesso")
	}

	server, err := api.New(
		cfg,
		reportingService,
		insightService,
		trackingService,
		authenticator,
		snapshotSyncService,
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
