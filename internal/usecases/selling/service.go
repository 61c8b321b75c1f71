package selling

import (
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-goal-api/infrastructure/repository"
	"github.com/vfg2006/sales-goal-api/internal/domain"
	errorcodes "github.com/vfg2006/sales-goal-api/pkg/apiErrors"
	"github.com/vfg2006/sales-goal-api/pkg/utils"
)

type SellingService interface {
	RecordSale(sellerID int, amount float64, saleDate time.Time) (*domain.Sale, error)
	ListSales(sellerID int, startDate, endDate time.Time) ([]*domain.Sale, error)
	RecordAttendance(attendance *domain.Attendance) (*domain.Attendance, error)
	ListAttendances(sellerID int, startDate, endDate time.Time) ([]*domain.Attendance, error)
}

type Service struct {
	sellerRepo     repository.SellerRepository
	saleRepo       repository.SaleRepository
	attendanceRepo repository.AttendanceRepository
}

func NewService(
	sellerRepo repository.SellerRepository,
	saleRepo repository.SaleRepository,
	attendanceRepo repository.AttendanceRepository,
) SellingService {
	return &Service{
		sellerRepo:     sellerRepo,
		saleRepo:       saleRepo,
		attendanceRepo: attendanceRepo,
	}
}

func (s *Service) RecordSale(sellerID int, amount float64, saleDate time.Time) (*domain.Sale, error) {
	if amount < 0 {
		return nil, NewSellingError(ErrNegativeAmount, errorcodes.ErrInvalidAmount, "")
	}

	if err := s.checkActiveSeller(sellerID); err != nil {
		return nil, err
	}

	id, err := utils.GenerateID()
	if err != nil {
		return nil, NewSellingError(ErrGenerateID, errorcodes.ErrInternalServer, err.Error())
	}

	sale := &domain.Sale{
		ID:       id,
		SellerID: sellerID,
		Amount:   amount,
		SaleDate: saleDate,
	}

	if err := s.saleRepo.CreateSale(sale); err != nil {
		logrus.WithError(err).Errorf("Erro ao registrar venda do vendedor ID=%d", sellerID)
		return nil, NewSellingError(ErrDatabaseOperation, errorcodes.ErrDatabaseOperation, "registro de venda")
	}

	return sale, nil
}

func (s *Service) ListSales(sellerID int, startDate, endDate time.Time) ([]*domain.Sale, error) {
	if err := s.checkActiveSeller(sellerID); err != nil {
		return nil, err
	}

	sales, err := s.saleRepo.GetByDateRange(sellerID, startDate, endDate)
	if err != nil {
		logrus.WithError(err).Errorf("Erro ao listar vendas do vendedor ID=%d", sellerID)
		return nil, NewSellingError(ErrDatabaseOperation, errorcodes.ErrDatabaseOperation, "listagem de vendas")
	}

	return sales, nil
}

func (s *Service) RecordAttendance(attendance *domain.Attendance) (*domain.Attendance, error) {
	if attendance.CustomerName == "" {
		return nil, NewSellingError(ErrCustomerRequired, errorcodes.ErrMissingRequiredData, "")
	}

	if !validOutcome(attendance.Outcome) {
		return nil, NewSellingError(ErrInvalidOutcome, errorcodes.ErrInvalidFormat, attendance.Outcome)
	}

	if err := s.checkActiveSeller(attendance.SellerID); err != nil {
		return nil, err
	}

	created, err := s.attendanceRepo.CreateAttendance(attendance)
	if err != nil {
		logrus.WithError(err).Errorf("Erro ao registrar atendimento do vendedor ID=%d", attendance.SellerID)
		return nil, NewSellingError(ErrDatabaseOperation, errorcodes.ErrDatabaseOperation, "registro de atendimento")
	}

	return created, nil
}

func (s *Service) ListAttendances(sellerID int, startDate, endDate time.Time) ([]*domain.Attendance, error) {
	if err := s.checkActiveSeller(sellerID); err != nil {
		return nil, err
	}

	attendances, err := s.attendanceRepo.GetByDateRange(sellerID, startDate, endDate)
	if err != nil {
		logrus.WithError(err).Errorf("Erro ao listar atendimentos do vendedor ID=%d", sellerID)
		return nil, NewSellingError(ErrDatabaseOperation, errorcodes.ErrDatabaseOperation, "listagem de atendimentos")
	}

	return attendances, nil
}

func (s *Service) checkActiveSeller(sellerID int) error {
	if sellerID == 0 {
		return NewSellingError(ErrSellerRequired, errorcodes.ErrMissingRequiredData, "")
	}

	seller, err := s.sellerRepo.GetByID(sellerID)
	if err != nil {
		logrus.WithError(err).Errorf("Erro ao buscar vendedor ID=%d", sellerID)
		return NewSellingError(ErrDatabaseOperation, errorcodes.ErrDatabaseOperation, "consulta de vendedor")
	}

	if seller == nil || !seller.Active {
		return NewSellingError(ErrSellerNotFound, errorcodes.ErrSellerNotFound, "")
	}

	return nil
}

func validOutcome(outcome string) bool {
	switch outcome {
	case domain.AttendanceOutcomeSale, domain.AttendanceOutcomeNoSale, domain.AttendanceOutcomeFollowUp:
		return true
	}
	return false
}
