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
	dailySalesSummariesTable = "daily_sales_summaries"
)

type DailySalesSummaryRepository interface {
	SaveOrUpdate(summary *domain.DailySalesSummary) error
	GetByDate(date time.Time) ([]*domain.DailySalesSummary, error)
	DeleteOlderThan(days int) (int64, error)
}

type dailySalesSummaryRepository struct {
	conn *postgres.Connection
}

func NewDailySalesSummaryRepository(conn *postgres.Connection) DailySalesSummaryRepository {
	return &dailySalesSummaryRepository{
		conn: conn,
	}
}

func (r *dailySalesSummaryRepository) SaveOrUpdate(summary *domain.DailySalesSummary) error {
	query := squirrel.StatementBuilder.
		Insert(dailySalesSummariesTable).
		Columns("seller_id", "date", "total_amount", "sales_quantity", "attendance_count", "average_ticket").
		Values(
			summary.SellerID,
			summary.Date.Format(time.DateOnly),
			summary.TotalAmount,
			summary.SalesQuantity,
			summary.AttendanceCount,
			summary.AverageTicket,
		).
		Suffix(`
			ON CONFLICT (seller_id, date) DO UPDATE SET
				total_amount = EXCLUDED.total_amount,
				sales_quantity = EXCLUDED.sales_quantity,
				attendance_count = EXCLUDED.attendance_count,
				average_ticket = EXCLUDED.average_ticket,
				updated_at = NOW()
		`).
		PlaceholderFormat(squirrel.Dollar)

	sqlQuery, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	_, err = r.conn.Exec(sqlQuery, args...)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return fmt.Errorf("erro no banco de dados: %w (código: %s)", pqErr, pqErr.Code)
		}
		return fmt.Errorf("erro ao gravar resumo diário: %w", err)
	}

	return nil
}

func (r *dailySalesSummaryRepository) GetByDate(date time.Time) ([]*domain.DailySalesSummary, error) {
	query, args, err := squirrel.
		Select("id", "seller_id", "date", "total_amount", "sales_quantity", "attendance_count", "average_ticket", "created_at", "updated_at").
		From(dailySalesSummariesTable).
		Where(squirrel.Eq{"date": date.Format(time.DateOnly)}).
		OrderBy("total_amount DESC").
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

	summaries := make([]*domain.DailySalesSummary, 0)
	for rows.Next() {
		summary := &domain.DailySalesSummary{}
		err := rows.Scan(
			&summary.ID,
			&summary.SellerID,
			&summary.Date,
			&summary.TotalAmount,
			&summary.SalesQuantity,
			&summary.AttendanceCount,
			&summary.AverageTicket,
			&summary.CreatedAt,
			&summary.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear resumo diário: %w", err)
		}
		summaries = append(summaries, summary)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return summaries, nil
}

func (r *dailySalesSummaryRepository) DeleteOlderThan(days int) (int64, error) {
	cutoffDate := time.Now().AddDate(0, 0, -days).Format(time.DateOnly)

	query, args, err := squirrel.
		Delete(dailySalesSummariesTable).
		Where(squirrel.Lt{"date": cutoffDate}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("erro ao construir a query: %w", err)
	}

	result, err := r.conn.Exec(query, args...)
	if err != nil {
		return 0, fmt.Errorf("erro ao executar a query: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("erro ao obter número de linhas afetadas: %w", err)
	}

	return rowsAffected, nil
}
