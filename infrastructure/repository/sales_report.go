package repository

import (
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/vfg2006/retail-velocity-api/infrastructure/database/postgres"
	"github.com/vfg2006/retail-velocity-api/internal/domain"
)

const salesReportsTable = "sales_reports"

type SalesReportRepository interface {
	ListByUser(userID int) ([]*domain.SalesReport, error)
	UpsertBatch(reports []*domain.SalesReport) error
	ListUserIDs() ([]int, error)
}

type salesReportRepository struct {
	conn *postgres.Connection
}

func NewSalesReportRepository(conn *postgres.Connection) SalesReportRepository {
	return &salesReportRepository{
		conn: conn,
	}
}

func (r *salesReportRepository) ListByUser(userID int) ([]*domain.SalesReport, error) {
	query, args, err := squirrel.
		Select("id, user_id, sku_id, store_id, to_char(week_start, 'YYYY-MM-DD'), units_sold, created_at, updated_at").
		From(salesReportsTable).
		Where(squirrel.Eq{"user_id": userID}).
		OrderBy("week_start ASC, id ASC").
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

	reports := make([]*domain.SalesReport, 0)
	for rows.Next() {
		report := &domain.SalesReport{}
		if err := rows.Scan(
			&report.ID,
			&report.UserID,
			&report.SKUID,
			&report.StoreID,
			&report.WeekStart,
			&report.UnitsSold,
			&report.CreatedAt,
			&report.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("erro ao escanear relatório de vendas: %w", err)
		}
		reports = append(reports, report)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return reports, nil
}

// UpsertBatch grava um lote de fatos de vendas. O conflito na chave natural
// (user_id, sku_id, store_id, week_start) substitui o valor de unidades —
// o último valor importado vence. O lote inteiro é a unidade de falha.
func (r *salesReportRepository) UpsertBatch(reports []*domain.SalesReport) error {
	if len(reports) == 0 {
		return nil
	}

	query := squirrel.StatementBuilder.
		Insert(salesReportsTable).
		Columns("user_id", "sku_id", "store_id", "week_start", "units_sold").
		PlaceholderFormat(squirrel.Dollar)

	for _, report := range reports {
		query = query.Values(
			report.UserID,
			report.SKUID,
			report.StoreID,
			report.WeekStart,
			report.UnitsSold,
		)
	}

	query = query.Suffix(`
		ON CONFLICT (user_id, sku_id, store_id, week_start) DO UPDATE SET
			units_sold = EXCLUDED.units_sold,
			updated_at = NOW()
	`)

	sqlQuery, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	_, err = r.conn.Exec(sqlQuery, args...)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return fmt.Errorf("erro no banco de dados: %w (código: %s)", pqErr, pqErr.Code)
		}
		return fmt.Errorf("erro ao executar a query: %w", err)
	}

	return nil
}

// ListUserIDs retorna os usuários com fatos gravados, para a atualização
// agendada dos resumos semanais.
func (r *salesReportRepository) ListUserIDs() ([]int, error) {
	query, args, err := squirrel.
		Select("DISTINCT user_id").
		From(salesReportsTable).
		OrderBy("user_id ASC").
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

	userIDs := make([]int, 0)
	for rows.Next() {
		var id int
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("erro ao escanear user_id: %w", err)
		}
		userIDs = append(userIDs, id)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return userIDs, nil
}
