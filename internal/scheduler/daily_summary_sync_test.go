package scheduler

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/sales-goal-api/infrastructure/repository/mocks"
	"github.com/vfg2006/sales-goal-api/internal/domain"
	"go.uber.org/mock/gomock"
)

func TestDailySummarySyncService_buildSummary(t *testing.T) {
	date := time.Date(2024, 3, 9, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		setup    func(saleRepo *mocks.MockSaleRepository, attendanceRepo *mocks.MockAttendanceRepository)
		validate func(t *testing.T, summary *domain.DailySalesSummary, err error)
	}{
		{
			name: "Dia com vendas consolida total, quantidade e ticket médio",
			setup: func(saleRepo *mocks.MockSaleRepository, attendanceRepo *mocks.MockAttendanceRepository) {
				saleRepo.EXPECT().GetByDateRange(1, date, date).Return([]*domain.Sale{
					{ID: "a1b2c3", SellerID: 1, Amount: 1000.0, SaleDate: date},
					{ID: "d4e5f6", SellerID: 1, Amount: 333.33, SaleDate: date},
					{ID: "g7h8i9", SellerID: 1, Amount: 500.0, SaleDate: date},
				}, nil)
				attendanceRepo.EXPECT().CountByPeriod(1, date, date).Return(7, nil)
			},
			validate: func(t *testing.T, summary *domain.DailySalesSummary, err error) {
				assert.NoError(t, err)
				assert.Equal(t, 1, summary.SellerID)
				assert.Equal(t, date, summary.Date)
				assert.InDelta(t, 1833.33, summary.TotalAmount, 1e-9)
				assert.Equal(t, 3, summary.SalesQuantity)
				assert.Equal(t, 7, summary.AttendanceCount)
				// Ticket médio arredondado em duas casas: 1833.33 / 3
				assert.Equal(t, 611.11, summary.AverageTicket)
			},
		},
		{
			name: "Dia sem vendas zera o ticket médio",
			setup: func(saleRepo *mocks.MockSaleRepository, attendanceRepo *mocks.MockAttendanceRepository) {
				saleRepo.EXPECT().GetByDateRange(1, date, date).Return(nil, nil)
				attendanceRepo.EXPECT().CountByPeriod(1, date, date).Return(2, nil)
			},
			validate: func(t *testing.T, summary *domain.DailySalesSummary, err error) {
				assert.NoError(t, err)
				assert.Equal(t, 0.0, summary.TotalAmount)
				assert.Equal(t, 0, summary.SalesQuantity)
				assert.Equal(t, 2, summary.AttendanceCount)
				assert.Equal(t, 0.0, summary.AverageTicket)
			},
		},
		{
			name: "Falha na busca de vendas interrompe a consolidação do dia",
			setup: func(saleRepo *mocks.MockSaleRepository, attendanceRepo *mocks.MockAttendanceRepository) {
				saleRepo.EXPECT().GetByDateRange(1, date, date).Return(nil, errors.New("connection refused"))
			},
			validate: func(t *testing.T, summary *domain.DailySalesSummary, err error) {
				assert.Nil(t, summary)
				assert.Error(t, err)
			},
		},
		{
			name: "Falha na contagem de atendimentos interrompe a consolidação do dia",
			setup: func(saleRepo *mocks.MockSaleRepository, attendanceRepo *mocks.MockAttendanceRepository) {
				saleRepo.EXPECT().GetByDateRange(1, date, date).Return(nil, nil)
				attendanceRepo.EXPECT().CountByPeriod(1, date, date).Return(0, errors.New("connection refused"))
			},
			validate: func(t *testing.T, summary *domain.DailySalesSummary, err error) {
				assert.Nil(t, summary)
				assert.Error(t, err)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			saleRepo := mocks.NewMockSaleRepository(ctrl)
			attendanceRepo := mocks.NewMockAttendanceRepository(ctrl)

			tt.setup(saleRepo, attendanceRepo)

			service := &DailySummarySyncService{
				saleRepo:       saleRepo,
				attendanceRepo: attendanceRepo,
			}

			summary, err := service.buildSummary(1, date)
			tt.validate(t, summary, err)
		})
	}
}

func TestDailySummarySyncService_processSummaries(t *testing.T) {
	dateA := time.Date(2024, 3, 9, 0, 0, 0, 0, time.UTC)
	dateB := time.Date(2024, 3, 8, 0, 0, 0, 0, time.UTC)

	sellers := []*domain.Seller{
		{ID: 1, Name: "Ana", Active: true},
		{ID: 2, Name: "Bruno", Active: true},
	}

	t.Run("Grava um resumo por par vendedor/data", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		saleRepo := mocks.NewMockSaleRepository(ctrl)
		attendanceRepo := mocks.NewMockAttendanceRepository(ctrl)
		summaryRepo := mocks.NewMockDailySalesSummaryRepository(ctrl)

		saleRepo.EXPECT().GetByDateRange(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil).Times(4)
		attendanceRepo.EXPECT().CountByPeriod(gomock.Any(), gomock.Any(), gomock.Any()).Return(0, nil).Times(4)
		summaryRepo.EXPECT().SaveOrUpdate(gomock.Any()).Return(nil).Times(4)

		service := &DailySummarySyncService{
			saleRepo:       saleRepo,
			attendanceRepo: attendanceRepo,
			summaryRepo:    summaryRepo,
		}

		processed := service.processSummaries(sellers, []time.Time{dateA, dateB})
		assert.Equal(t, 4, processed)
	})

	t.Run("Falha em um par não interrompe os demais", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		saleRepo := mocks.NewMockSaleRepository(ctrl)
		attendanceRepo := mocks.NewMockAttendanceRepository(ctrl)
		summaryRepo := mocks.NewMockDailySalesSummaryRepository(ctrl)

		// Primeiro par falha na busca de vendas; os outros três seguem normalmente
		gomock.InOrder(
			saleRepo.EXPECT().GetByDateRange(1, dateA, dateA).Return(nil, errors.New("connection refused")),
			saleRepo.EXPECT().GetByDateRange(1, dateB, dateB).Return(nil, nil),
			saleRepo.EXPECT().GetByDateRange(2, dateA, dateA).Return(nil, nil),
			saleRepo.EXPECT().GetByDateRange(2, dateB, dateB).Return(nil, nil),
		)
		attendanceRepo.EXPECT().CountByPeriod(gomock.Any(), gomock.Any(), gomock.Any()).Return(0, nil).Times(3)
		summaryRepo.EXPECT().SaveOrUpdate(gomock.Any()).Return(nil).Times(3)

		service := &DailySummarySyncService{
			saleRepo:       saleRepo,
			attendanceRepo: attendanceRepo,
			summaryRepo:    summaryRepo,
		}

		processed := service.processSummaries(sellers, []time.Time{dateA, dateB})
		assert.Equal(t, 3, processed)
	})
}

func TestDailySummarySyncService_pruneOldSummaries(t *testing.T) {
	t.Run("Descarta resumos fora da janela de retenção", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		summaryRepo := mocks.NewMockDailySalesSummaryRepository(ctrl)
		summaryRepo.EXPECT().DeleteOlderThan(365).Return(int64(12), nil)

		service := &DailySummarySyncService{
			config:      DailySummarySyncConfig{RetentionDays: 365},
			summaryRepo: summaryRepo,
		}

		service.pruneOldSummaries()
	})

	t.Run("Retenção zero desliga a limpeza", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		// Nenhuma chamada esperada no repositório
		summaryRepo := mocks.NewMockDailySalesSummaryRepository(ctrl)

		service := &DailySummarySyncService{
			config:      DailySummarySyncConfig{RetentionDays: 0},
			summaryRepo: summaryRepo,
		}

		service.pruneOldSummaries()
	})

	t.Run("Falha na limpeza não propaga", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		summaryRepo := mocks.NewMockDailySalesSummaryRepository(ctrl)
		summaryRepo.EXPECT().DeleteOlderThan(90).Return(int64(0), errors.New("connection refused"))

		service := &DailySummarySyncService{
			config:      DailySummarySyncConfig{RetentionDays: 90},
			summaryRepo: summaryRepo,
		}

		service.pruneOldSummaries()
	})
}

func TestDailySummarySyncService_GetStatus(t *testing.T) {
	service := &DailySummarySyncService{
		config: DailySummarySyncConfig{
			CronSchedule:  "0 3 * * *",
			LookbackDays:  3,
			RetentionDays: 365,
			SyncEnabled:   true,
		},
	}

	status := service.GetStatus()

	assert.Equal(t, true, status["sync_enabled"])
	assert.Equal(t, "0 3 * * *", status["sync_cron"])
	assert.Equal(t, 3, status["sync_lookback_days"])
	assert.Equal(t, 365, status["sync_retention_days"])
}
