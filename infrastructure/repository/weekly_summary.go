package repository

import (
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	_ "github.com/lib/pq"
	"github.com/vfg2006/retail-velocity-api/infrastructure/database/postgres"
	"github.com/vfg2006/retail-velocity-api/internal/domain"
)

const weeklySummariesTable = "weekly_summaries"

// WeeklySummaryRepository guarda o retrato consolidado de unidades por semana
// calculado pelo agendador noturno. É um cache de leitura: a fonte da verdade
// continua sendo sales_reports.
type WeeklySummaryRepository interface {
	ListByUser(userID int) ([]domain.WeeklyTotal, error)
	SaveOrUpdate(userID int, totals []domain.WeeklyTotal) error
}

type weeklySummaryRepository struct {
	conn *postgres.Connection
}

func NewWeeklySummaryRepository(conn *postgres.Connection) WeeklySummaryRepository {
	return &weeklySummaryRepository{
		conn: conn,
	}
}

func (r *weeklySummaryRepository) ListByUser(userID int) ([]domain.WeeklyTotal, error) {
	query, args, err := squirrel.
		Select("to_char(week_start, 'YYYY-MM-DD'), units").
		From(weeklySummariesTable).
		Where(squirrel.Eq{"user_id": userID}).
		OrderBy("week_start ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	totals := make([]domain.WeeklyTotal, 0)
	for rows.Next() {
		var total domain.WeeklyTotal
		if err := rows.Scan(&total.WeekStart, &total.Units); err != nil {
			return nil, fmt.Errorf("erro ao escanear resumo semanal: %w", err)
		}
		totals = append(totals, total)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return totals, nil
}

func (r *weeklySummaryRepository) SaveOrUpdate(userID int, totals []domain.WeeklyTotal) error {
	if len(totals) == 0 {
		return nil
	}

	query := squirrel.StatementBuilder.
		Insert(weeklySummariesTable).
		Columns("user_id", "week_start", "units").
		PlaceholderFormat(squirrel.Dollar)

	for _, total := range totals {
		query = query.Values(userID, total.WeekStart, total.Units)
	}

	query = query.Suffix(`
		ON CONFLICT (user_id, week_start) DO UPDATE SET
			units = EXCLUDED.units,
			updated_at = NOW()
	`)

	sqlQuery, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	if _, err := r.conn.Exec(sqlQuery, args...); err != nil {
		return fmt.Errorf("erro ao executar a query: %w", err)
	}

	return nil
}
