package main

import (
	"context"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-goal-api/infrastructure/database/postgres"
	"github.com/vfg2006/sales-goal-api/infrastructure/repository"
	"github.com/vfg2006/sales-goal-api/internal/api"
	"github.com/vfg2006/sales-goal-api/internal/config"
	"github.com/vfg2006/sales-goal-api/internal/scheduler"
	"github.com/vfg2006/sales-goal-api/internal/usecases/authenticating"
	"github.com/vfg2006/sales-goal-api/internal/usecases/goaling"
	"github.com/vfg2006/sales-goal-api/internal/usecases/managing"
	"github.com/vfg2006/sales-goal-api/internal/usecases/selling"
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

	userRepo := repository.NewUserRepository(pgConn)
	sellerRepo := repository.NewSellerRepository(pgConn)
	saleRepo := repository.NewSaleRepository(pgConn)
	attendanceRepo := repository.NewAttendanceRepository(pgConn)
	overrideRepo := repository.NewGoalOverrideRepository(pgConn)
	summaryRepo := repository.NewDailySalesSummaryRepository(pgConn)

	authenticator := authenticating.NewService(userRepo, cfg)

	goalService := goaling.NewService(sellerRepo, saleRepo, overrideRepo)
	sellingService := selling.NewService(sellerRepo, saleRepo, attendanceRepo)
	managingService := managing.NewService(sellerRepo, summaryRepo, cfg)

	// Inicializa o agendador de consolidação diária de vendas
	dailySummarySyncService := scheduler.NewDailySummarySyncService(
		sellerRepo,
		saleRepo,
		attendanceRepo,
		summaryRepo,
		cfg,
	)

	// Inicia o agendador em background
	if err := dailySummarySyncService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de consolidação diária de vendas")
	} else {
		logrus.Info("Agendador de consolidação diária de vendas iniciado com sucesso")
	}

	server, err := api.New(
		cfg,
		goalService,
		sellingService,
		managingService,
		authenticator,
		dailySummarySyncService,
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
