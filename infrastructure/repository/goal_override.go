package repository

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/vfg2006/sales-goal-api/infrastructure/database/postgres"
	"github.com/vfg2006/sales-goal-api/internal/domain"
)

const (
	goalOverridesTable = "goal_overrides"
)

type GoalOverrideRepository interface {
	// GetBySellerAndDate retorna nil quando não há override para o par
	// (vendedor, data).
	GetBySellerAndDate(sellerID int, date time.Time) (*domain.GoalOverride, error)
	// Upsert grava o override do par (vendedor, data). A chave única da
	// tabela garante no máximo uma linha por par; escritas repetidas
	// substituem o valor anterior.
	Upsert(override *domain.GoalOverride) error
}

type goalOverrideRepository struct {
	conn *postgres.Connection
}

func NewGoalOverrideRepository(conn *postgres.Connection) GoalOverrideRepository {
	return &goalOverrideRepository{
		conn: conn,
	}
}

func (r *goalOverrideRepository) GetBySellerAndDate(sellerID int, date time.Time) (*domain.GoalOverride, error) {
	query, args, err := squirrel.
		Select("id", "seller_id", "date", "amount", "created_at", "updated_at").
		From(goalOverridesTable).
		Where(squirrel.Eq{"seller_id": sellerID, "date": date.Format(time.DateOnly)}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	override := &domain.GoalOverride{}
	err = r.conn.QueryRow(query, args...).Scan(
		&override.ID,
		&override.SellerID,
		&override.Date,
		&override.Amount,
		&override.CreatedAt,
		&override.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao buscar override de meta: %w", err)
	}

	return override, nil
}

func (r *goalOverrideRepository) Upsert(override *domain.GoalOverride) error {
	query := squirrel.StatementBuilder.
		Insert(goalOverridesTable).
		Columns("seller_id", "date", "amount").
		Values(
			override.SellerID,
			override.Date.Format(time.DateOnly),
			override.Amount,
		).
		Suffix(`
			ON CONFLICT (seller_id, date) DO UPDATE SET
				amount = EXCLUDED.amount,
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
		return fmt.Errorf("erro ao gravar override de meta: %w", err)
	}

	return nil
}
