package repository

import (
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/sales-goal-api/infrastructure/database/postgres"
	"github.com/vfg2006/sales-goal-api/internal/domain"
)

const (
	attendancesTable = "attendances"
)

type AttendanceRepository interface {
	CreateAttendance(attendance *domain.Attendance) (*domain.Attendance, error)
	GetByDateRange(sellerID int, startDate, endDate time.Time) ([]*domain.Attendance, error)
	CountByPeriod(sellerID int, startDate, endDate time.Time) (int, error)
}

type attendanceRepository struct {
	conn *postgres.Connection
}

func NewAttendanceRepository(conn *postgres.Connection) AttendanceRepository {
	return &attendanceRepository{
		conn: conn,
	}
}

func (r *attendanceRepository) CreateAttendance(attendance *domain.Attendance) (*domain.Attendance, error) {
	query, args, err := squirrel.
		Insert(attendancesTable).
		Columns("seller_id", "customer_name", "outcome", "notes", "date").
		Values(
			attendance.SellerID,
			attendance.CustomerName,
			attendance.Outcome,
			attendance.Notes,
			attendance.Date.Format(time.DateOnly),
		).
		Suffix("RETURNING id").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	err = r.conn.QueryRow(query, args...).Scan(&attendance.ID)
	if err != nil {
		return nil, fmt.Errorf("erro ao registrar atendimento: %w", err)
	}

	return attendance, nil
}

func (r *attendanceRepository) GetByDateRange(sellerID int, startDate, endDate time.Time) ([]*domain.Attendance, error) {
	query, args, err := squirrel.
		Select("id", "seller_id", "customer_name", "outcome", "notes", "date", "created_at").
		From(attendancesTable).
		Where(squirrel.Eq{"seller_id": sellerID}).
		Where(squirrel.GtOrEq{"date": startDate.Format(time.DateOnly)}).
		Where(squirrel.LtOrEq{"date": endDate.Format(time.DateOnly)}).
		OrderBy("date ASC").
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

	attendances := make([]*domain.Attendance, 0)
	for rows.Next() {
		attendance := &domain.Attendance{}
		err := rows.Scan(
			&attendance.ID,
			&attendance.SellerID,
			&attendance.CustomerName,
			&attendance.Outcome,
			&attendance.Notes,
			&attendance.Date,
			&attendance.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear atendimento: %w", err)
		}
		attendances = append(attendances, attendance)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return attendances, nil
}

func (r *attendanceRepository) CountByPeriod(sellerID int, startDate, endDate time.Time) (int, error) {
	query, args, err := squirrel.
		Select("COUNT(*)").
		From(attendancesTable).
		Where(squirrel.Eq{"seller_id": sellerID}).
		Where(squirrel.GtOrEq{"date": startDate.Format(time.DateOnly)}).
		Where(squirrel.LtOrEq{"date": endDate.Format(time.DateOnly)}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("erro ao construir a query: %w", err)
	}

	var count int
	err = r.conn.QueryRow(query, args...).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("erro ao contar atendimentos: %w", err)
	}

	return count, nil
}
