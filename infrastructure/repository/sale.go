package repository

import (
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/vfg2006/sales-goal-api/infrastructure/database/postgres"
	"github.com/vfg2006/sales-goal-api/internal/domain"
)

const (
	salesTable = "sales"
)

type SaleRepository interface {
	CreateSale(sale *domain.Sale) error
	GetByDateRange(sellerID int, startDate, endDate time.Time) ([]*domain.Sale, error)
	// SumAmountByPeriod soma os valores de venda do vendedor no intervalo
	// fechado [startDate, endDate]. Retorna 0 quando não há vendas.
	SumAmountByPeriod(sellerID int, startDate, endDate time.Time) (float64, error)
}

type saleRepository struct {
	conn *postgres.Connection
}

func NewSaleRepository(conn *postgres.Connection) SaleRepository {
	return &saleRepository{
		conn: conn,
	}
}

func (r *saleRepository) CreateSale(sale *domain.Sale) error {
	query, args, err := squirrel.
		Insert(salesTable).
		Columns("id", "seller_id", "amount", "sale_date").
		Values(sale.ID, sale.SellerID, sale.Amount, sale.SaleDate.Format(time.DateOnly)).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	_, err = r.conn.Exec(query, args...)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return fmt.Errorf("erro no banco de dados: %w (código: %s)", pqErr, pqErr.Code)
		}
		return fmt.Errorf("erro ao registrar venda: %w", err)
	}

	return nil
}

func (r *saleRepository) GetByDateRange(sellerID int, startDate, endDate time.Time) ([]*domain.Sale, error) {
	query, args, err := squirrel.
		Select("id", "seller_id", "amount", "sale_date", "created_at").
		From(salesTable).
		Where(squirrel.Eq{"seller_id": sellerID}).
		Where(squirrel.GtOrEq{"sale_date": startDate.Format(time.DateOnly)}).
		Where(squirrel.LtOrEq{"sale_date": endDate.Format(time.DateOnly)}).
		OrderBy("sale_date ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	sales := make([]*domain.Sale, 0)
	for rows.Next() {
		sale := &domain.Sale{}
		err := rows.Scan(
			&sale.ID,
			&sale.SellerID,
			&sale.Amount,
			&sale.SaleDate,
			&sale.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear venda: %w", err)
		}
		sales = append(sales, sale)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return sales, nil
}

func (r *saleRepository) SumAmountByPeriod(sellerID int, startDate, endDate time.Time) (float64, error) {
	query, args, err := squirrel.
		Select("COALESCE(SUM(amount), 0)").
		From(salesTable).
		Where(squirrel.Eq{"seller_id": sellerID}).
		Where(squirrel.GtOrEq{"sale_date": startDate.Format(time.DateOnly)}).
		Where(squirrel.LtOrEq{"sale_date": endDate.Format(time.DateOnly)}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("erro ao construir a query: %w", err)
	}

	var total float64
	err = r.conn.QueryRow(query, args...).Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("erro ao somar vendas do período: %w", err)
	}

	return total, nil
}
