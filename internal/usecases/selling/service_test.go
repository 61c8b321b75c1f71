package selling

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/sales-goal-api/infrastructure/repository/mocks"
	"github.com/vfg2006/sales-goal-api/internal/domain"
	"go.uber.org/mock/gomock"
)

func TestService_RecordSale(t *testing.T) {
	saleDate := time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)

	activeSeller := &domain.Seller{ID: 1, Name: "Ana", Active: true}

	t.Run("Registra a venda com ID gerado", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		sellerRepo := mocks.NewMockSellerRepository(ctrl)
		saleRepo := mocks.NewMockSaleRepository(ctrl)
		attendanceRepo := mocks.NewMockAttendanceRepository(ctrl)

		sellerRepo.EXPECT().GetByID(1).Return(activeSeller, nil)
		saleRepo.EXPECT().CreateSale(gomock.Any()).DoAndReturn(func(sale *domain.Sale) error {
			assert.NotEmpty(t, sale.ID)
			assert.Equal(t, 1, sale.SellerID)
			assert.Equal(t, 350.0, sale.Amount)
			assert.Equal(t, saleDate, sale.SaleDate)
			return nil
		})

		service := NewService(sellerRepo, saleRepo, attendanceRepo)
		sale, err := service.RecordSale(1, 350, saleDate)

		assert.NoError(t, err)
		assert.NotNil(t, sale)
		assert.NotEmpty(t, sale.ID)
	})

	t.Run("Venda de valor zero é aceita", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		sellerRepo := mocks.NewMockSellerRepository(ctrl)
		saleRepo := mocks.NewMockSaleRepository(ctrl)
		attendanceRepo := mocks.NewMockAttendanceRepository(ctrl)

		sellerRepo.EXPECT().GetByID(1).Return(activeSeller, nil)
		saleRepo.EXPECT().CreateSale(gomock.Any()).Return(nil)

		service := NewService(sellerRepo, saleRepo, attendanceRepo)
		_, err := service.RecordSale(1, 0, saleDate)

		assert.NoError(t, err)
	})

	t.Run("Valor negativo é rejeitado antes de consultar o vendedor", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		sellerRepo := mocks.NewMockSellerRepository(ctrl)
		saleRepo := mocks.NewMockSaleRepository(ctrl)
		attendanceRepo := mocks.NewMockAttendanceRepository(ctrl)

		service := NewService(sellerRepo, saleRepo, attendanceRepo)
		sale, err := service.RecordSale(1, -50, saleDate)

		assert.Nil(t, sale)
		assert.ErrorIs(t, err, ErrNegativeAmount)
	})

	t.Run("Vendedor inativo não registra venda", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		sellerRepo := mocks.NewMockSellerRepository(ctrl)
		saleRepo := mocks.NewMockSaleRepository(ctrl)
		attendanceRepo := mocks.NewMockAttendanceRepository(ctrl)

		sellerRepo.EXPECT().GetByID(1).Return(&domain.Seller{ID: 1, Active: false}, nil)

		service := NewService(sellerRepo, saleRepo, attendanceRepo)
		sale, err := service.RecordSale(1, 350, saleDate)

		assert.Nil(t, sale)
		assert.ErrorIs(t, err, ErrSellerNotFound)
	})

	t.Run("Falha de banco na gravação", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		sellerRepo := mocks.NewMockSellerRepository(ctrl)
		saleRepo := mocks.NewMockSaleRepository(ctrl)
		attendanceRepo := mocks.NewMockAttendanceRepository(ctrl)

		sellerRepo.EXPECT().GetByID(1).Return(activeSeller, nil)
		saleRepo.EXPECT().CreateSale(gomock.Any()).Return(errors.New("connection refused"))

		service := NewService(sellerRepo, saleRepo, attendanceRepo)
		sale, err := service.RecordSale(1, 350, saleDate)

		assert.Nil(t, sale)
		assert.ErrorIs(t, err, ErrDatabaseOperation)
	})
}

func TestService_RecordAttendance(t *testing.T) {
	date := time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)

	activeSeller := &domain.Seller{ID: 1, Name: "Ana", Active: true}

	newAttendance := func(outcome string) *domain.Attendance {
		return &domain.Attendance{
			SellerID:     1,
			CustomerName: "Cliente Teste",
			Outcome:      outcome,
			Date:         date,
		}
	}

	t.Run("Registra atendimento com resultado válido", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		sellerRepo := mocks.NewMockSellerRepository(ctrl)
		saleRepo := mocks.NewMockSaleRepository(ctrl)
		attendanceRepo := mocks.NewMockAttendanceRepository(ctrl)

		attendance := newAttendance(domain.AttendanceOutcomeSale)

		sellerRepo.EXPECT().GetByID(1).Return(activeSeller, nil)
		attendanceRepo.EXPECT().CreateAttendance(attendance).Return(attendance, nil)

		service := NewService(sellerRepo, saleRepo, attendanceRepo)
		created, err := service.RecordAttendance(attendance)

		assert.NoError(t, err)
		assert.Equal(t, attendance, created)
	})

	t.Run("Resultado desconhecido é rejeitado", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		sellerRepo := mocks.NewMockSellerRepository(ctrl)
		saleRepo := mocks.NewMockSaleRepository(ctrl)
		attendanceRepo := mocks.NewMockAttendanceRepository(ctrl)

		service := NewService(sellerRepo, saleRepo, attendanceRepo)
		created, err := service.RecordAttendance(newAttendance("maybe"))

		assert.Nil(t, created)
		assert.ErrorIs(t, err, ErrInvalidOutcome)
	})

	t.Run("Nome do cliente é obrigatório", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		sellerRepo := mocks.NewMockSellerRepository(ctrl)
		saleRepo := mocks.NewMockSaleRepository(ctrl)
		attendanceRepo := mocks.NewMockAttendanceRepository(ctrl)

		attendance := newAttendance(domain.AttendanceOutcomeNoSale)
		attendance.CustomerName = ""

		service := NewService(sellerRepo, saleRepo, attendanceRepo)
		created, err := service.RecordAttendance(attendance)

		assert.Nil(t, created)
		assert.ErrorIs(t, err, ErrCustomerRequired)
	})
}

func TestService_ListSales(t *testing.T) {
	startDate := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	endDate := time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)

	t.Run("Lista as vendas do período", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		sellerRepo := mocks.NewMockSellerRepository(ctrl)
		saleRepo := mocks.NewMockSaleRepository(ctrl)
		attendanceRepo := mocks.NewMockAttendanceRepository(ctrl)

		expected := []*domain.Sale{
			{ID: "a1b2c3", SellerID: 1, Amount: 350, SaleDate: startDate},
			{ID: "d4e5f6", SellerID: 1, Amount: 120, SaleDate: endDate},
		}

		sellerRepo.EXPECT().GetByID(1).Return(&domain.Seller{ID: 1, Active: true}, nil)
		saleRepo.EXPECT().GetByDateRange(1, startDate, endDate).Return(expected, nil)

		service := NewService(sellerRepo, saleRepo, attendanceRepo)
		sales, err := service.ListSales(1, startDate, endDate)

		assert.NoError(t, err)
		assert.Equal(t, expected, sales)
	})

	t.Run("Vendedor zerado é rejeitado", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		sellerRepo := mocks.NewMockSellerRepository(ctrl)
		saleRepo := mocks.NewMockSaleRepository(ctrl)
		attendanceRepo := mocks.NewMockAttendanceRepository(ctrl)

		service := NewService(sellerRepo, saleRepo, attendanceRepo)
		sales, err := service.ListSales(0, startDate, endDate)

		assert.Nil(t, sales)
		assert.ErrorIs(t, err, ErrSellerRequired)
	})
}
