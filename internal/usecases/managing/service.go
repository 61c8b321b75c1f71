package managing

import (
	"errors"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-goal-api/infrastructure/repository"
	"github.com/vfg2006/sales-goal-api/internal/config"
	"github.com/vfg2006/sales-goal-api/internal/domain"
)

// Erros específicos para administração de vendedores
var (
	ErrSellerNotFound    = errors.New("vendedor não encontrado")
	ErrNameRequired      = errors.New("nome do vendedor é obrigatório")
	ErrNegativeQuota     = errors.New("meta mensal não pode ser negativa")
	ErrNegativeTarget    = errors.New("meta diária fixa não pode ser negativa")
	ErrDatabaseOperation = errors.New("erro ao realizar operação no banco de dados")
)

// ManagingService concentra as operações administrativas do gerente:
// cadastro de vendedores, metas mensais e o relatório diário consolidado.
type ManagingService interface {
	CreateSeller(seller *domain.Seller) (*domain.Seller, error)
	UpdateSeller(req *domain.UpdateSellerRequest) error
	GetSeller(sellerID int) (*domain.Seller, error)
	ListSellers(onlyActive bool) ([]*domain.Seller, error)
	GetDailySummaryReport(date time.Time) (*domain.DailySummaryReport, error)
}

type Service struct {
	sellerRepo  repository.SellerRepository
	summaryRepo repository.DailySalesSummaryRepository
	cfg         *config.Config
}

func NewService(
	sellerRepo repository.SellerRepository,
	summaryRepo repository.DailySalesSummaryRepository,
	cfg *config.Config,
) ManagingService {
	return &Service{
		sellerRepo:  sellerRepo,
		summaryRepo: summaryRepo,
		cfg:         cfg,
	}
}

func (s *Service) CreateSeller(seller *domain.Seller) (*domain.Seller, error) {
	if seller.Name == "" {
		return nil, ErrNameRequired
	}

	if seller.MonthlyQuota < 0 {
		return nil, ErrNegativeQuota
	}

	if seller.DefaultDailyTarget < 0 {
		return nil, ErrNegativeTarget
	}

	// Sem meta diária fixa explícita, vale o padrão global da configuração
	if seller.DefaultDailyTarget == 0 {
		seller.DefaultDailyTarget = s.cfg.Goal.DefaultDailyTarget
	}

	seller.Active = true

	created, err := s.sellerRepo.CreateSeller(seller)
	if err != nil {
		logrus.WithError(err).Error("Erro ao criar vendedor")
		return nil, ErrDatabaseOperation
	}

	return created, nil
}

func (s *Service) UpdateSeller(req *domain.UpdateSellerRequest) error {
	sellerDatabase, err := s.sellerRepo.GetByID(req.ID)
	if err != nil {
		logrus.WithError(err).Errorf("Erro ao buscar vendedor ID=%d", req.ID)
		return ErrDatabaseOperation
	}

	if sellerDatabase == nil {
		return ErrSellerNotFound
	}

	if req.Name != nil {
		sellerDatabase.Name = *req.Name
	}

	if req.Lastname != nil {
		sellerDatabase.Lastname = *req.Lastname
	}

	if req.Store != nil {
		sellerDatabase.Store = *req.Store
	}

	if req.MonthlyQuota != nil {
		if *req.MonthlyQuota < 0 {
			return ErrNegativeQuota
		}
		sellerDatabase.MonthlyQuota = *req.MonthlyQuota
	}

	if req.DefaultDailyTarget != nil {
		if *req.DefaultDailyTarget < 0 {
			return ErrNegativeTarget
		}
		sellerDatabase.DefaultDailyTarget = *req.DefaultDailyTarget
	}

	if req.Active != nil {
		sellerDatabase.Active = *req.Active
	}

	if err := s.sellerRepo.UpdateSeller(sellerDatabase); err != nil {
		logrus.WithError(err).Errorf("Erro ao atualizar vendedor ID=%d", req.ID)
		return ErrDatabaseOperation
	}

	return nil
}

func (s *Service) GetSeller(sellerID int) (*domain.Seller, error) {
	seller, err := s.sellerRepo.GetByID(sellerID)
	if err != nil {
		logrus.WithError(err).Errorf("Erro ao buscar vendedor ID=%d", sellerID)
		return nil, ErrDatabaseOperation
	}

	if seller == nil {
		return nil, ErrSellerNotFound
	}

	return seller, nil
}

func (s *Service) ListSellers(onlyActive bool) ([]*domain.Seller, error) {
	sellers, err := s.sellerRepo.ListSellers(onlyActive)
	if err != nil {
		logrus.WithError(err).Error("Erro ao listar vendedores")
		return nil, ErrDatabaseOperation
	}

	return sellers, nil
}

func (s *Service) GetDailySummaryReport(date time.Time) (*domain.DailySummaryReport, error) {
	summaries, err := s.summaryRepo.GetByDate(date)
	if err != nil {
		logrus.WithError(err).Error("Erro ao buscar resumo diário")
		return nil, ErrDatabaseOperation
	}

	report := &domain.DailySummaryReport{
		Date:      date,
		Summaries: summaries,
	}

	for _, summary := range summaries {
		if summary.UpdatedAt.After(report.LastUpdate) {
			report.LastUpdate = summary.UpdatedAt
		}
	}

	return report, nil
}
