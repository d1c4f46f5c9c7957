package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/vfg2006/ads-report-api/infrastructure/database/postgres"
	"github.com/vfg2006/ads-report-api/internal/domain"
)

const sharedLinksTable = "shared_links sl"

type SharedLinkRepository interface {
	Save(link *domain.SharedLink) (int, error)
	GetByToken(token string) (*domain.SharedLink, error)
	DeleteExpiredBefore(cutoff time.Time) (int64, error)
}

type sharedLinkRepository struct {
	conn *postgres.Connection
}

func NewSharedLinkRepository(conn *postgres.Connection) SharedLinkRepository {
	return &sharedLinkRepository{
		conn: conn,
	}
}

// Save persiste um share link e retorna o ID gerado.
func (r *sharedLinkRepository) Save(link *domain.SharedLink) (int, error) {
	query := squirrel.StatementBuilder.
		Insert("shared_links").
		Columns("token", "report_id", "bm_id", "ad_account_id", "campaign_id", "date_preset", "expires_at").
		Values(
			link.Token,
			link.ReportID,
			link.BMID,
			link.AdAccountID,
			link.CampaignID,
			link.DatePreset,
			link.ExpiresAt,
		).
		Suffix("RETURNING id").
		PlaceholderFormat(squirrel.Dollar)

	sqlQuery, args, err := query.ToSql()
	if err != nil {
		return 0, fmt.Errorf("erro ao construir a query: %w", err)
	}

	var linkID int
	err = r.conn.RunInTransaction(context.Background(), func(tx *sql.Tx) error {
		return tx.QueryRow(sqlQuery, args...).Scan(&linkID)
	})
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return 0, fmt.Errorf("erro no banco de dados: %w (código: %s)", pqErr, pqErr.Code)
		}
		return 0, fmt.Errorf("erro ao executar a query: %w", err)
	}

	return linkID, nil
}

func (r *sharedLinkRepository) GetByToken(token string) (*domain.SharedLink, error) {
	query, args, err := squirrel.
		Select("sl.id, sl.token, sl.report_id, sl.bm_id, sl.ad_account_id, sl.campaign_id, sl.date_preset, sl.expires_at, sl.created_at").
		From(sharedLinksTable).
		Where(squirrel.Eq{"sl.token": token}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	row := r.conn.QueryRow(query, args...)

	link := &domain.SharedLink{}
	if err := row.Scan(
		&link.ID,
		&link.Token,
		&link.ReportID,
		&link.BMID,
		&link.AdAccountID,
		&link.CampaignID,
		&link.DatePreset,
		&link.ExpiresAt,
		&link.CreatedAt,
	); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear share link: %w", err)
	}

	return link, nil
}

// DeleteExpiredBefore remove links cuja expiração passou antes do cutoff.
// Usado pela limpeza agendada; a expiração em si é decidida na validação.
func (r *sharedLinkRepository) DeleteExpiredBefore(cutoff time.Time) (int64, error) {
	query, args, err := squirrel.
		Delete("shared_links").
		Where(squirrel.Lt{"expires_at": cutoff}).
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
