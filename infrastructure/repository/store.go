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

const storesTable = "stores"

type StoreRepository interface {
	ListByUser(userID int) ([]*domain.Store, error)
	CreateMany(userID int, stores []*domain.Store) ([]*domain.Store, error)
}

type storeRepository struct {
	conn *postgres.Connection
}

func NewStoreRepository(conn *postgres.Connection) StoreRepository {
	return &storeRepository{
		conn: conn,
	}
}

func (r *storeRepository) ListByUser(userID int) ([]*domain.Store, error) {
	query, args, err := squirrel.
		Select("id, user_id, name, retailer, location, created_at").
		From(storesTable).
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

	stores := make([]*domain.Store, 0)
	for rows.Next() {
		store := &domain.Store{}
		if err := rows.Scan(&store.ID, &store.UserID, &store.Name, &store.Retailer, &store.Location, &store.CreatedAt); err != nil {
			return nil, fmt.Errorf("erro ao escanear loja: %w", err)
		}
		stores = append(stores, store)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return stores, nil
}

// CreateMany insere as lojas ainda desconhecidas em um único INSERT.
// A bandeira já vem inferida pelo chamador; o repositório só gera os
// identificadores e persiste.
func (r *storeRepository) CreateMany(userID int, stores []*domain.Store) ([]*domain.Store, error) {
	if len(stores) == 0 {
		return nil, nil
	}

	query := squirrel.StatementBuilder.
		Insert(storesTable).
		Columns("id", "user_id", "name", "retailer").
		PlaceholderFormat(squirrel.Dollar)

	for _, store := range stores {
		id, err := utils.GenerateID()
		if err != nil {
			return nil, fmt.Errorf("erro ao gerar identificador de loja: %w", err)
		}

		store.ID = id
		store.UserID = userID
		query = query.Values(store.ID, store.UserID, store.Name, store.Retailer)
	}

	sqlQuery, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	if _, err := r.conn.Exec(sqlQuery, args...); err != nil {
		return nil, fmt.Errorf("erro ao inserir lojas: %w", err)
	}

	return stores, nil
}
