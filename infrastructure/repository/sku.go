package repository

import (
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	_ "github.com/lib/pq"
	"github.com/vfg2006/retail-velocity-api/infrastructure/database/postgres"
	"github.com/vfg2006/retail-velocity-api/internal/domain"
	"github.com/vfg2006/retail-velocity-api/pkg/utils"
)

const skusTable = "skus"

type SKURepository interface {
	ListByUser(userID int) ([]*domain.SKU, error)
	CreateMany(userID int, names []string) ([]*domain.SKU, error)
}

type skuRepository struct {
	conn *postgres.Connection
}

func NewSKURepository(conn *postgres.Connection) SKURepository {
	return &skuRepository{
		conn: conn,
	}
}

func (r *skuRepository) ListByUser(userID int) ([]*domain.SKU, error) {
	query, args, err := squirrel.
		Select("id, user_id, name, sku_code, created_at").
		From(skusTable).
		Where(squirrel.Eq{"user_id": userID}).
		OrderBy("name ASC").
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

	skus := make([]*domain.SKU, 0)
	for rows.Next() {
		sku := &domain.SKU{}
		if err := rows.Scan(&sku.ID, &sku.UserID, &sku.Name, &sku.SKUCode, &sku.CreatedAt); err != nil {
			return nil, fmt.Errorf("erro ao escanear sku: %w", err)
		}
		skus = append(skus, sku)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return skus, nil
}

// CreateMany insere os SKUs ainda desconhecidos em um único INSERT,
// gerando os identificadores curtos no cliente.
func (r *skuRepository) CreateMany(userID int, names []string) ([]*domain.SKU, error) {
	if len(names) == 0 {
		return nil, nil
	}

	query := squirrel.StatementBuilder.
		Insert(skusTable).
		Columns("id", "user_id", "name").
		PlaceholderFormat(squirrel.Dollar)

	skus := make([]*domain.SKU, 0, len(names))
	for _, name := range names {
		id, err := utils.GenerateID()
		if err != nil {
			return nil, fmt.Errorf("erro ao gerar identificador de sku: %w", err)
		}

		sku := &domain.SKU{ID: id, UserID: userID, Name: name}
		skus = append(skus, sku)
		query = query.Values(sku.ID, sku.UserID, sku.Name)
	}

	sqlQuery, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	if _, err := r.conn.Exec(sqlQuery, args...); err != nil {
		return nil, fmt.Errorf("erro ao inserir skus: %w", err)
	}

	return skus, nil
}
