package goaling

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/sales-goal-api/infrastructure/repository/mocks"
	"github.com/vfg2006/sales-goal-api/internal/domain"
	"go.uber.org/mock/gomock"
)

func TestService_GetDailyGoal(t *testing.T) {
	date := time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)
	firstOfMonth := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)

	activeSeller := &domain.Seller{
		ID:           1,
		Name:         "Ana",
		MonthlyQuota: 30000,
		Active:       true,
	}

	tests := []struct {
		name     string
		setup    func(sellerRepo *mocks.MockSellerRepository, saleRepo *mocks.MockSaleRepository, overrideRepo *mocks.MockGoalOverrideRepository)
		validate func(t *testing.T, goal *domain.ComputedGoal, err error)
	}{
		{
			name: "Meta calculada a partir do restante e dos dias de venda",
			setup: func(sellerRepo *mocks.MockSellerRepository, saleRepo *mocks.MockSaleRepository, overrideRepo *mocks.MockGoalOverrideRepository) {
				sellerRepo.EXPECT().GetByID(1).Return(activeSeller, nil)
				saleRepo.EXPECT().SumAmountByPeriod(1, firstOfMonth, date).Return(10000.0, nil)
				overrideRepo.EXPECT().GetBySellerAndDate(1, date).Return(nil, nil)
			},
			validate: func(t *testing.T, goal *domain.ComputedGoal, err error) {
				assert.NoError(t, err)
				assert.Equal(t, 30000.0, goal.MonthlyQuota)
				assert.Equal(t, 10000.0, goal.RealizedToDate)
				assert.Equal(t, 20000.0, goal.Remaining)
				// 20000 restantes divididos pelos 18 dias de venda até o fim do mês
				assert.InDelta(t, 20000.0/18.0, goal.DailyTarget, 1e-9)
				assert.Equal(t, domain.GoalSourceComputed, goal.Source)
			},
		},
		{
			name: "Override manual vence o valor calculado mas preserva os agregados",
			setup: func(sellerRepo *mocks.MockSellerRepository, saleRepo *mocks.MockSaleRepository, overrideRepo *mocks.MockGoalOverrideRepository) {
				sellerRepo.EXPECT().GetByID(1).Return(activeSeller, nil)
				saleRepo.EXPECT().SumAmountByPeriod(1, firstOfMonth, date).Return(10000.0, nil)
				overrideRepo.EXPECT().GetBySellerAndDate(1, date).Return(&domain.GoalOverride{
					SellerID: 1,
					Date:     date,
					Amount:   500,
				}, nil)
			},
			validate: func(t *testing.T, goal *domain.ComputedGoal, err error) {
				assert.NoError(t, err)
				assert.Equal(t, 500.0, goal.DailyTarget)
				assert.Equal(t, domain.GoalSourceOverride, goal.Source)

				// Agregados do mês continuam refletindo as vendas reais
				assert.Equal(t, 10000.0, goal.RealizedToDate)
				assert.Equal(t, 20000.0, goal.Remaining)
			},
		},
		{
			name: "Vendedor sem meta mensal responde com a meta fixa",
			setup: func(sellerRepo *mocks.MockSellerRepository, saleRepo *mocks.MockSaleRepository, overrideRepo *mocks.MockGoalOverrideRepository) {
				sellerRepo.EXPECT().GetByID(1).Return(&domain.Seller{
					ID:                 1,
					Name:               "Carla",
					MonthlyQuota:       0,
					DefaultDailyTarget: 800,
					Active:             true,
				}, nil)
				saleRepo.EXPECT().SumAmountByPeriod(1, firstOfMonth, date).Return(3000.0, nil)
				overrideRepo.EXPECT().GetBySellerAndDate(1, date).Return(nil, nil)
			},
			validate: func(t *testing.T, goal *domain.ComputedGoal, err error) {
				assert.NoError(t, err)
				assert.Equal(t, 800.0, goal.DailyTarget)
				assert.Equal(t, domain.GoalSourceFallback, goal.Source)
			},
		},
		{
			name: "Vendedor inexistente",
			setup: func(sellerRepo *mocks.MockSellerRepository, saleRepo *mocks.MockSaleRepository, overrideRepo *mocks.MockGoalOverrideRepository) {
				sellerRepo.EXPECT().GetByID(1).Return(nil, nil)
			},
			validate: func(t *testing.T, goal *domain.ComputedGoal, err error) {
				assert.Nil(t, goal)
				assert.ErrorIs(t, err, ErrSellerNotFound)
			},
		},
		{
			name: "Vendedor inativo é tratado como inexistente",
			setup: func(sellerRepo *mocks.MockSellerRepository, saleRepo *mocks.MockSaleRepository, overrideRepo *mocks.MockGoalOverrideRepository) {
				sellerRepo.EXPECT().GetByID(1).Return(&domain.Seller{ID: 1, Active: false}, nil)
			},
			validate: func(t *testing.T, goal *domain.ComputedGoal, err error) {
				assert.Nil(t, goal)
				assert.ErrorIs(t, err, ErrSellerNotFound)
			},
		},
		{
			name: "Falha na soma de vendas não é mascarada com zero",
			setup: func(sellerRepo *mocks.MockSellerRepository, saleRepo *mocks.MockSaleRepository, overrideRepo *mocks.MockGoalOverrideRepository) {
				sellerRepo.EXPECT().GetByID(1).Return(activeSeller, nil)
				saleRepo.EXPECT().SumAmountByPeriod(1, firstOfMonth, date).Return(0.0, errors.New("connection refused"))
			},
			validate: func(t *testing.T, goal *domain.ComputedGoal, err error) {
				assert.Nil(t, goal)
				assert.ErrorIs(t, err, ErrDependency)
			},
		},
		{
			name: "Falha na consulta de override propaga o erro",
			setup: func(sellerRepo *mocks.MockSellerRepository, saleRepo *mocks.MockSaleRepository, overrideRepo *mocks.MockGoalOverrideRepository) {
				sellerRepo.EXPECT().GetByID(1).Return(activeSeller, nil)
				saleRepo.EXPECT().SumAmountByPeriod(1, firstOfMonth, date).Return(10000.0, nil)
				overrideRepo.EXPECT().GetBySellerAndDate(1, date).Return(nil, errors.New("connection refused"))
			},
			validate: func(t *testing.T, goal *domain.ComputedGoal, err error) {
				assert.Nil(t, goal)
				assert.ErrorIs(t, err, ErrDependency)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			sellerRepo := mocks.NewMockSellerRepository(ctrl)
			saleRepo := mocks.NewMockSaleRepository(ctrl)
			overrideRepo := mocks.NewMockGoalOverrideRepository(ctrl)

			tt.setup(sellerRepo, saleRepo, overrideRepo)

			service := NewService(sellerRepo, saleRepo, overrideRepo)
			goal, err := service.GetDailyGoal(1, date)

			tt.validate(t, goal, err)
		})
	}
}

func TestService_SetOverride(t *testing.T) {
	date := time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)

	activeSeller := &domain.Seller{ID: 1, Name: "Ana", Active: true}

	t.Run("Grava o override com os dados do par", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		sellerRepo := mocks.NewMockSellerRepository(ctrl)
		saleRepo := mocks.NewMockSaleRepository(ctrl)
		overrideRepo := mocks.NewMockGoalOverrideRepository(ctrl)

		sellerRepo.EXPECT().GetByID(1).Return(activeSeller, nil)
		overrideRepo.EXPECT().Upsert(gomock.Any()).DoAndReturn(func(override *domain.GoalOverride) error {
			assert.Equal(t, 1, override.SellerID)
			assert.Equal(t, date, override.Date)
			assert.Equal(t, 500.0, override.Amount)
			return nil
		})

		service := NewService(sellerRepo, saleRepo, overrideRepo)
		err := service.SetOverride(1, date, 500)

		assert.NoError(t, err)
	})

	t.Run("Repetir o override com o mesmo valor não muda o estado", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		sellerRepo := mocks.NewMockSellerRepository(ctrl)
		saleRepo := mocks.NewMockSaleRepository(ctrl)
		overrideRepo := mocks.NewMockGoalOverrideRepository(ctrl)

		quotaSeller := &domain.Seller{ID: 1, Name: "Ana", MonthlyQuota: 30000, Active: true}
		firstOfMonth := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)

		sellerRepo.EXPECT().GetByID(1).Return(quotaSeller, nil).Times(2)
		overrideRepo.EXPECT().Upsert(gomock.Any()).Times(2).DoAndReturn(func(override *domain.GoalOverride) error {
			assert.Equal(t, 1, override.SellerID)
			assert.Equal(t, date, override.Date)
			assert.Equal(t, 500.0, override.Amount)
			return nil
		})

		service := NewService(sellerRepo, saleRepo, overrideRepo)

		assert.NoError(t, service.SetOverride(1, date, 500))
		assert.NoError(t, service.SetOverride(1, date, 500))

		// Depois das duas gravações a consulta enxerga um único override
		sellerRepo.EXPECT().GetByID(1).Return(quotaSeller, nil).Times(2)
		saleRepo.EXPECT().SumAmountByPeriod(1, firstOfMonth, date).Return(10000.0, nil).Times(2)
		overrideRepo.EXPECT().GetBySellerAndDate(1, date).Return(&domain.GoalOverride{
			SellerID: 1,
			Date:     date,
			Amount:   500,
		}, nil).Times(2)

		first, err := service.GetDailyGoal(1, date)
		assert.NoError(t, err)

		second, err := service.GetDailyGoal(1, date)
		assert.NoError(t, err)

		assert.Equal(t, 500.0, first.DailyTarget)
		assert.Equal(t, domain.GoalSourceOverride, first.Source)
		assert.Equal(t, first, second)
	})

	t.Run("Override zero é aceito para zerar a meta do dia", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		sellerRepo := mocks.NewMockSellerRepository(ctrl)
		saleRepo := mocks.NewMockSaleRepository(ctrl)
		overrideRepo := mocks.NewMockGoalOverrideRepository(ctrl)

		sellerRepo.EXPECT().GetByID(1).Return(activeSeller, nil)
		overrideRepo.EXPECT().Upsert(gomock.Any()).Return(nil)

		service := NewService(sellerRepo, saleRepo, overrideRepo)
		err := service.SetOverride(1, date, 0)

		assert.NoError(t, err)
	})

	t.Run("Valor negativo é rejeitado sem tocar os repositórios", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		sellerRepo := mocks.NewMockSellerRepository(ctrl)
		saleRepo := mocks.NewMockSaleRepository(ctrl)
		overrideRepo := mocks.NewMockGoalOverrideRepository(ctrl)

		service := NewService(sellerRepo, saleRepo, overrideRepo)
		err := service.SetOverride(1, date, -10)

		assert.ErrorIs(t, err, ErrInvalidAmount)
		assert.True(t, IsValidationError(err))
	})

	t.Run("Vendedor inexistente", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		sellerRepo := mocks.NewMockSellerRepository(ctrl)
		saleRepo := mocks.NewMockSaleRepository(ctrl)
		overrideRepo := mocks.NewMockGoalOverrideRepository(ctrl)

		sellerRepo.EXPECT().GetByID(1).Return(nil, nil)

		service := NewService(sellerRepo, saleRepo, overrideRepo)
		err := service.SetOverride(1, date, 500)

		assert.ErrorIs(t, err, ErrSellerNotFound)
	})

	t.Run("Falha na gravação propaga o erro de dependência", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		sellerRepo := mocks.NewMockSellerRepository(ctrl)
		saleRepo := mocks.NewMockSaleRepository(ctrl)
		overrideRepo := mocks.NewMockGoalOverrideRepository(ctrl)

		sellerRepo.EXPECT().GetByID(1).Return(activeSeller, nil)
		overrideRepo.EXPECT().Upsert(gomock.Any()).Return(errors.New("connection refused"))

		service := NewService(sellerRepo, saleRepo, overrideRepo)
		err := service.SetOverride(1, date, 500)

		assert.ErrorIs(t, err, ErrDependency)
	})
}
