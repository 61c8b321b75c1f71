package repository

import (
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/sales-goal-api/infrastructure/database/postgres"
	"github.com/vfg2006/sales-goal-api/internal/domain"
)

const (
	sellersTable = "sellers"
)

type SellerRepository interface {
	CreateSeller(seller *domain.Seller) (*domain.Seller, error)
	UpdateSeller(seller *domain.Seller) error
	GetByID(sellerID int) (*domain.Seller, error)
	ListSellers(onlyActive bool) ([]*domain.Seller, error)
}

type sellerRepository struct {
	conn *postgres.Connection
}

func NewSellerRepository(conn *postgres.Connection) SellerRepository {
	return &sellerRepository{
		conn: conn,
	}
}

func (r *sellerRepository) CreateSeller(seller *domain.Seller) (*domain.Seller, error) {
	queryBuilder := squirrel.
		Insert(sellersTable).
		Columns("name", "lastname", "store", "monthly_quota", "default_daily_target", "active").
		Values(seller.Name, seller.Lastname, seller.Store, seller.MonthlyQuota, seller.DefaultDailyTarget, seller.Active).
		Suffix("RETURNING id").
		PlaceholderFormat(squirrel.Dollar)

	sellersSQL, sellersArgs, err := queryBuilder.ToSql()
	if err != nil {
		return nil, err
	}

	err = r.conn.QueryRow(sellersSQL, sellersArgs...).Scan(&seller.ID)
	if err != nil {
		return nil, err
	}

	return seller, nil
}

func (r *sellerRepository) UpdateSeller(seller *domain.Seller) error {
	queryBuilder := squirrel.
		Update(sellersTable).
		Set("monthly_quota", seller.MonthlyQuota).
		Set("default_daily_target", seller.DefaultDailyTarget).
		Set("active", seller.Active).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": seller.ID})

	if seller.Name != "" {
		queryBuilder = queryBuilder.Set("name", seller.Name)
	}

	if seller.Lastname != "" {
		queryBuilder = queryBuilder.Set("lastname", seller.Lastname)
	}

	if seller.Store != "" {
		queryBuilder = queryBuilder.Set("store", seller.Store)
	}

	query, args, err := queryBuilder.PlaceholderFormat(squirrel.Dollar).ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	_, err = r.conn.Exec(query, args...)
	if err != nil {
		return fmt.Errorf("erro ao atualizar vendedor: %w", err)
	}

	return nil
}

func (r *sellerRepository) GetByID(sellerID int) (*domain.Seller, error) {
	query, args, err := squirrel.
		Select("id", "name", "lastname", "store", "monthly_quota", "default_daily_target", "active", "created_at", "updated_at").
		From(sellersTable).
		Where(squirrel.Eq{"id": sellerID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	seller := &domain.Seller{}
	err = r.conn.QueryRow(query, args...).Scan(
		&seller.ID,
		&seller.Name,
		&seller.Lastname,
		&seller.Store,
		&seller.MonthlyQuota,
		&seller.DefaultDailyTarget,
		&seller.Active,
		&seller.CreatedAt,
		&seller.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao buscar vendedor: %w", err)
	}

	return seller, nil
}

func (r *sellerRepository) ListSellers(onlyActive bool) ([]*domain.Seller, error) {
	queryBuilder := squirrel.
		Select("id", "name", "lastname", "store", "monthly_quota", "default_daily_target", "active", "created_at", "updated_at").
		From(sellersTable).
		OrderBy("name ASC")

	if onlyActive {
		queryBuilder = queryBuilder.Where(squirrel.Eq{"active": true})
	}

	query, args, err := queryBuilder.PlaceholderFormat(squirrel.Dollar).ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	sellers := make([]*domain.Seller, 0)
	for rows.Next() {
		seller := &domain.Seller{}
		err := rows.Scan(
			&seller.ID,
			&seller.Name,
			&seller.Lastname,
			&seller.Store,
			&seller.MonthlyQuota,
			&seller.DefaultDailyTarget,
			&seller.Active,
			&seller.CreatedAt,
			&seller.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear vendedor: %w", err)
		}
		sellers = append(sellers, seller)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return sellers, nil
}
