package main

import (
	"context"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ads-report-api/infrastructure/database/postgres"
	"github.com/vfg2006/ads-report-api/infrastructure/integrator/meta/metaclient"
	"github.com/vfg2006/ads-report-api/infrastructure/repository"
	"github.com/vfg2006/ads-report-api/internal/api"
	"github.com/vfg2006/ads-report-api/internal/config"
	"github.com/vfg2006/ads-report-api/internal/scheduler"
	"github.com/vfg2006/ads-report-api/internal/usecases/reporting"
	"github.com/vfg2006/ads-report-api/internal/usecases/sharing"
	"github.com/vfg2006/ads-report-api/internal/usecases/tenancy"
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

	bmRepo := repository.NewBusinessManagerRepository(pgConn)
	reportRepo := repository.NewReportRepository(pgConn)
	sharedLinkRepo := repository.NewSharedLinkRepository(pgConn)

	// Cada requisição monta um cliente do Meta vinculado à credencial do BM
	clientFactory := metaclient.NewFactory(cfg)

	tenantService := tenancy.NewService(bmRepo, clientFactory)
	reportService := reporting.NewService(cfg, tenantService, reportRepo)
	sharingService := sharing.NewService(cfg, bmRepo, reportRepo, sharedLinkRepo)

	// Agendador de limpeza de links compartilhados expirados
	linkCleanupService := scheduler.NewLinkCleanupService(sharedLinkRepo, cfg)
	if err := linkCleanupService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de limpeza de links compartilhados")
	} else {
		logrus.Info("Agendador de limpeza de links compartilhados iniciado com sucesso")
	}

	server, err := api.New(
		cfg,
		tenantService,
		reportService,
		sharingService,
		linkCleanupService,
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
