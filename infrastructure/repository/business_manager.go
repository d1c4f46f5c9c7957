package repository

import (
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/vfg2006/ads-report-api/infrastructure/database/postgres"
	"github.com/vfg2006/ads-report-api/internal/domain"
)

const businessManagersTable = "business_managers bm"

type BusinessManagerRepository interface {
	SaveOrUpdate(bmID, accessToken string) error
	GetByBMID(bmID string) (*domain.BusinessManager, error)
	List() ([]string, error)
	Delete(bmID string) (bool, error)
}

type businessManagerRepository struct {
	conn *postgres.Connection
}

func NewBusinessManagerRepository(conn *postgres.Connection) BusinessManagerRepository {
	return &businessManagerRepository{
		conn: conn,
	}
}

// SaveOrUpdate registra um Business Manager. Se o bm_id já existe o access
// token é sobrescrito (last-write-wins).
func (r *businessManagerRepository) SaveOrUpdate(bmID, accessToken string) error {
	query := squirrel.StatementBuilder.
		Insert("business_managers").
		Columns("bm_id", "access_token").
		Values(bmID, accessToken).
		Suffix(`
			ON CONFLICT (bm_id) DO UPDATE SET
				access_token = EXCLUDED.access_token
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
		return fmt.Errorf("erro ao executar a query: %w", err)
	}

	return nil
}

func (r *businessManagerRepository) GetByBMID(bmID string) (*domain.BusinessManager, error) {
	query, args, err := squirrel.
		Select("bm.id, bm.bm_id, bm.access_token, bm.added_at").
		From(businessManagersTable).
		Where(squirrel.Eq{"bm.bm_id": bmID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	row := r.conn.QueryRow(query, args...)

	bm := &domain.BusinessManager{}
	if err := row.Scan(&bm.ID, &bm.BMID, &bm.AccessToken, &bm.AddedAt); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear business manager: %w", err)
	}

	return bm, nil
}

func (r *businessManagerRepository) List() ([]string, error) {
	query, args, err := squirrel.
		Select("bm.bm_id").
		From(businessManagersTable).
		OrderBy("bm.added_at ASC").
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

	bmIDs := make([]string, 0)
	for rows.Next() {
		var bmID string
		if err := rows.Scan(&bmID); err != nil {
			return nil, fmt.Errorf("erro ao escanear bm_id: %w", err)
		}
		bmIDs = append(bmIDs, bmID)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return bmIDs, nil
}

// Delete remove um Business Manager. Retorna false quando o bm_id não existe.
func (r *businessManagerRepository) Delete(bmID string) (bool, error) {
	query, args, err := squirrel.
		Delete("business_managers").
		Where(squirrel.Eq{"bm_id": bmID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("erro ao construir a query: %w", err)
	}

	result, err := r.conn.Exec(query, args...)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return false, fmt.Errorf("erro no banco de dados: %w (código: %s)", pqErr, pqErr.Code)
		}
		return false, fmt.Errorf("erro ao executar a query: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("erro ao obter número de linhas afetadas: %w", err)
	}

	return rowsAffected > 0, nil
}
