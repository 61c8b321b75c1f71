// Package scheduler contém os serviços de agendamento para consolidação de dados
package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-goal-api/infrastructure/repository"
	"github.com/vfg2006/sales-goal-api/internal/config"
	"github.com/vfg2006/sales-goal-api/internal/domain"
	"github.com/vfg2006/sales-goal-api/pkg/utils"
)

// DailySummarySyncConfig representa a configuração do agendador de resumos diários
type DailySummarySyncConfig struct {
	CronSchedule  string
	LookbackDays  int
	RetentionDays int
	SyncEnabled   bool
}

// DailySummarySyncService consolida as vendas e atendimentos de cada vendedor
// em uma linha por dia na tabela daily_sales_summaries. O motor de pacing não
// depende desta tabela; ela alimenta apenas o relatório gerencial.
type DailySummarySyncService struct {
	scheduler           *gocron.Scheduler
	config              DailySummarySyncConfig
	sellerRepo          repository.SellerRepository
	saleRepo            repository.SaleRepository
	attendanceRepo      repository.AttendanceRepository
	summaryRepo         repository.DailySalesSummaryRepository
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
}

// NewDailySummarySyncService cria uma nova instância do serviço de consolidação diária
func NewDailySummarySyncService(
	sellerRepo repository.SellerRepository,
	saleRepo repository.SaleRepository,
	attendanceRepo repository.AttendanceRepository,
	summaryRepo repository.DailySalesSummaryRepository,
	appConfig *config.Config,
) *DailySummarySyncService {
	// Criar a configuração com base na config global
	syncConfig := DailySummarySyncConfig{
		CronSchedule:  appConfig.DailySummarySync.CronSchedule,
		LookbackDays:  appConfig.DailySummarySync.LookbackDays,
		RetentionDays: appConfig.DailySummarySync.RetentionDays,
		SyncEnabled:   appConfig.DailySummarySync.Enabled,
	}

	// Criar o agendador
	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"cron_schedule":  syncConfig.CronSchedule,
		"lookback_days":  syncConfig.LookbackDays,
		"retention_days": syncConfig.RetentionDays,
		"sync_enabled":   syncConfig.SyncEnabled,
	}).Info("Configuração do agendador de resumos diários carregada")

	return &DailySummarySyncService{
		scheduler:      scheduler,
		config:         syncConfig,
		sellerRepo:     sellerRepo,
		saleRepo:       saleRepo,
		attendanceRepo: attendanceRepo,
		summaryRepo:    summaryRepo,
		syncRunning:    false,
	}
}

// Start inicia o agendador
func (s *DailySummarySyncService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Consolidação de resumos diários desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de consolidação de resumos diários")

	// Agendar a consolidação diária
	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.syncAllDailySummaries()
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar consolidação de resumos diários: %w", err)
	}

	// Executar o agendador em uma goroutine separada
	s.scheduler.StartAsync()

	// Configurar o cancelamento do agendador quando o contexto for cancelado
	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de consolidação de resumos diários")
		s.scheduler.Stop()
	}()

	return nil
}

// TriggerManualSync inicia manualmente uma consolidação de resumos diários
func (s *DailySummarySyncService) TriggerManualSync() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Consolidação de resumos diários já em andamento, ignorando solicitação manual")
		return
	}
	s.syncMutex.Unlock()

	logrus.Info("Iniciando consolidação manual de resumos diários")
	go s.syncAllDailySummaries()
}

// GetStatus retorna o status do agendador de resumos diários
func (s *DailySummarySyncService) GetStatus() map[string]any {
	return map[string]any{
		"sync_enabled":           s.config.SyncEnabled,
		"sync_cron":              s.config.CronSchedule,
		"sync_lookback_days":     s.config.LookbackDays,
		"sync_retention_days":    s.config.RetentionDays,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
	}
}

// syncAllDailySummaries consolida as vendas dos últimos dias de todos os vendedores ativos
func (s *DailySummarySyncService) syncAllDailySummaries() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Consolidação de resumos diários já em andamento, ignorando")
		return
	}
	s.syncRunning = true
	s.syncMutex.Unlock()

	startTime := time.Now()
	s.lastSyncStartedAt = startTime

	defer func() {
		s.syncMutex.Lock()
		s.syncRunning = false
		s.syncMutex.Unlock()
	}()

	logrus.Info("Iniciando consolidação de resumos diários para todos os vendedores ativos")

	sellers, err := s.sellerRepo.ListSellers(true)
	if err != nil {
		logrus.WithError(err).Error("Erro ao buscar vendedores para consolidação de resumos diários")
		return
	}

	if len(sellers) == 0 {
		logrus.Info("Nenhum vendedor ativo encontrado para consolidação de resumos diários")
		return
	}

	dates := s.getDatesToProcess()
	logrus.WithFields(logrus.Fields{
		"days":       s.config.LookbackDays,
		"start_date": dates[len(dates)-1].Format(time.DateOnly),
		"end_date":   dates[0].Format(time.DateOnly),
	}).Info("Período para consolidação de resumos diários")

	processed := s.processSummaries(sellers, dates)

	s.pruneOldSummaries()

	duration := time.Since(startTime)
	logrus.WithFields(logrus.Fields{
		"duration":  duration.String(),
		"sellers":   len(sellers),
		"days":      s.config.LookbackDays,
		"processed": processed,
	}).Info("Consolidação de resumos diários concluída")

	s.lastSyncCompletedAt = time.Now()
}

// pruneOldSummaries descarta resumos fora da janela de retenção. A falha da
// limpeza não compromete a consolidação recém-gravada.
func (s *DailySummarySyncService) pruneOldSummaries() {
	if s.config.RetentionDays <= 0 {
		return
	}

	removed, err := s.summaryRepo.DeleteOlderThan(s.config.RetentionDays)
	if err != nil {
		logrus.WithError(err).Error("Erro ao descartar resumos diários antigos")
		return
	}

	if removed > 0 {
		logrus.WithFields(logrus.Fields{
			"removed":        removed,
			"retention_days": s.config.RetentionDays,
		}).Info("Resumos diários fora da janela de retenção descartados")
	}
}

// getDatesToProcess cria um conjunto de datas para processar
func (s *DailySummarySyncService) getDatesToProcess() []time.Time {
	dates := make([]time.Time, s.config.LookbackDays)
	for i := 0; i < s.config.LookbackDays; i++ {
		dates[i] = time.Now().AddDate(0, 0, -i-1) // Começar de ontem e ir para trás
	}
	return dates
}

// processSummaries consolida cada par (vendedor, data) e retorna a quantidade gravada
func (s *DailySummarySyncService) processSummaries(sellers []*domain.Seller, dates []time.Time) int {
	processed := 0

	for _, seller := range sellers {
		for _, date := range dates {
			summary, err := s.buildSummary(seller.ID, date)
			if err != nil {
				logrus.WithError(err).WithFields(logrus.Fields{
					"seller_id": seller.ID,
					"date":      date.Format(time.DateOnly),
				}).Error("Erro ao consolidar resumo diário")
				continue
			}

			if err := s.summaryRepo.SaveOrUpdate(summary); err != nil {
				logrus.WithError(err).WithFields(logrus.Fields{
					"seller_id": seller.ID,
					"date":      date.Format(time.DateOnly),
				}).Error("Erro ao gravar resumo diário")
				continue
			}

			processed++
		}
	}

	return processed
}

// buildSummary monta o resumo de um vendedor para um único dia
func (s *DailySummarySyncService) buildSummary(sellerID int, date time.Time) (*domain.DailySalesSummary, error) {
	sales, err := s.saleRepo.GetByDateRange(sellerID, date, date)
	if err != nil {
		return nil, errors.Wrap(err, "busca de vendas do dia")
	}

	attendanceCount, err := s.attendanceRepo.CountByPeriod(sellerID, date, date)
	if err != nil {
		return nil, errors.Wrap(err, "contagem de atendimentos do dia")
	}

	var totalAmount float64
	for _, sale := range sales {
		totalAmount += sale.Amount
	}

	averageTicket := 0.0
	if len(sales) > 0 {
		averageTicket = utils.RoundWithTwoDecimalPlace(totalAmount / float64(len(sales)))
	}

	return &domain.DailySalesSummary{
		SellerID:        sellerID,
		Date:            date,
		TotalAmount:     totalAmount,
		SalesQuantity:   len(sales),
		AttendanceCount: attendanceCount,
		AverageTicket:   averageTicket,
	}, nil
}
