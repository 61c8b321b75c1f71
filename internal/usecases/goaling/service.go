package goaling

import (
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-goal-api/infrastructure/repository"
	"github.com/vfg2006/sales-goal-api/internal/domain"
	errorcodes "github.com/vfg2006/sales-goal-api/pkg/apiErrors"
)

type GoalService interface {
	// GetDailyGoal devolve o snapshot de meta diária do vendedor para a
	// data informada. Um override exato em (vendedor, data) substitui o
	// valor calculado, mas os agregados do mês seguem sendo reportados.
	GetDailyGoal(sellerID int, date time.Time) (*domain.ComputedGoal, error)
	// SetOverride grava a meta manual do par (vendedor, data). Idempotente:
	// repetir a chamada com o mesmo valor não muda o estado.
	SetOverride(sellerID int, date time.Time, amount float64) error
}

type Service struct {
	sellerRepo   repository.SellerRepository
	saleRepo     repository.SaleRepository
	overrideRepo repository.GoalOverrideRepository
}

func NewService(
	sellerRepo repository.SellerRepository,
	saleRepo repository.SaleRepository,
	overrideRepo repository.GoalOverrideRepository,
) GoalService {
	return &Service{
		sellerRepo:   sellerRepo,
		saleRepo:     saleRepo,
		overrideRepo: overrideRepo,
	}
}

func (s *Service) GetDailyGoal(sellerID int, date time.Time) (*domain.ComputedGoal, error) {
	seller, err := s.loadActiveSeller(sellerID)
	if err != nil {
		return nil, err
	}

	// Realizado do mês: do dia 1 até a data do cálculo, inclusive
	realized, err := s.saleRepo.SumAmountByPeriod(sellerID, FirstDayOfMonth(date), date)
	if err != nil {
		logrus.WithError(err).Errorf("Erro ao somar vendas do mês para o vendedor ID=%d", sellerID)
		return nil, NewSellerGoalError(ErrDependency, errorcodes.ErrDependencyFailure, sellerID, "soma de vendas do período")
	}

	dailyTarget, source := Resolve(ResolverInput{
		MonthlyQuota:       seller.MonthlyQuota,
		DefaultDailyTarget: seller.DefaultDailyTarget,
		ComputationDate:    date,
		RealizedToDate:     realized,
	})

	goal := &domain.ComputedGoal{
		SellerID:       sellerID,
		Date:           date,
		MonthlyQuota:   seller.MonthlyQuota,
		RealizedToDate: realized,
		Remaining:      Remaining(seller.MonthlyQuota, realized),
		DailyTarget:    dailyTarget,
		Source:         source,
	}

	// Override manual para o par exato (vendedor, data) sempre vence o
	// valor calculado; os agregados do mês não são substituídos
	override, err := s.overrideRepo.GetBySellerAndDate(sellerID, date)
	if err != nil {
		logrus.WithError(err).Errorf("Erro ao buscar override de meta para o vendedor ID=%d", sellerID)
		return nil, NewSellerGoalError(ErrDependency, errorcodes.ErrDependencyFailure, sellerID, "consulta de override")
	}

	if override != nil {
		goal.DailyTarget = override.Amount
		goal.Source = domain.GoalSourceOverride
	}

	return goal, nil
}

func (s *Service) SetOverride(sellerID int, date time.Time, amount float64) error {
	if amount < 0 {
		return NewSellerGoalError(ErrInvalidAmount, errorcodes.ErrInvalidAmount, sellerID, "override não pode ser negativo")
	}

	if _, err := s.loadActiveSeller(sellerID); err != nil {
		return err
	}

	err := s.overrideRepo.Upsert(&domain.GoalOverride{
		SellerID: sellerID,
		Date:     date,
		Amount:   amount,
	})
	if err != nil {
		logrus.WithError(err).Errorf("Erro ao gravar override de meta para o vendedor ID=%d", sellerID)
		return NewSellerGoalError(ErrDependency, errorcodes.ErrDependencyFailure, sellerID, "gravação de override")
	}

	return nil
}

func (s *Service) loadActiveSeller(sellerID int) (*domain.Seller, error) {
	seller, err := s.sellerRepo.GetByID(sellerID)
	if err != nil {
		logrus.WithError(err).Errorf("Erro ao buscar vendedor ID=%d", sellerID)
		return nil, NewSellerGoalError(ErrDependency, errorcodes.ErrDependencyFailure, sellerID, "consulta de vendedor")
	}

	if seller == nil || !seller.Active {
		return nil, NewSellerGoalError(ErrSellerNotFound, errorcodes.ErrSellerNotFound, sellerID, "")
	}

	return seller, nil
}
