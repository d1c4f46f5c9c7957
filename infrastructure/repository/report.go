package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/vfg2006/ads-report-api/infrastructure/database/postgres"
	"github.com/vfg2006/ads-report-api/internal/domain"
)

const reportsTable = "reports r"

type ReportRepository interface {
	Save(report *domain.Report) (int, error)
	GetByID(id int) (*domain.Report, error)
	List() ([]*domain.Report, error)
	FindLatest(bmID, objectID string, reportType domain.ReportType, datePreset string) (*domain.Report, error)
}

type reportRepository struct {
	conn *postgres.Connection
}

func NewReportRepository(conn *postgres.Connection) ReportRepository {
	return &reportRepository{
		conn: conn,
	}
}

// Save insere um novo relatório imutável e retorna o ID gerado. A escrita é
// transacional: qualquer falha desfaz a linha.
func (r *reportRepository) Save(report *domain.Report) (int, error) {
	insightsJSON, err := json.Marshal(report.Insights)
	if err != nil {
		return 0, fmt.Errorf("erro ao serializar insights para JSON: %w", err)
	}

	query := squirrel.StatementBuilder.
		Insert("reports").
		Columns("report_name", "report_type", "bm_id", "object_id", "date_preset", "insights_data").
		Values(
			report.Name,
			string(report.Type),
			report.BMID,
			report.ObjectID,
			report.DatePreset,
			insightsJSON,
		).
		Suffix("RETURNING id").
		PlaceholderFormat(squirrel.Dollar)

	sqlQuery, args, err := query.ToSql()
	if err != nil {
		return 0, fmt.Errorf("erro ao construir a query: %w", err)
	}

	var reportID int
	err = r.conn.RunInTransaction(context.Background(), func(tx *sql.Tx) error {
		return tx.QueryRow(sqlQuery, args...).Scan(&reportID)
	})
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return 0, fmt.Errorf("erro no banco de dados: %w (código: %s)", pqErr, pqErr.Code)
		}
		return 0, fmt.Errorf("erro ao executar a query: %w", err)
	}

	return reportID, nil
}

func (r *reportRepository) GetByID(id int) (*domain.Report, error) {
	query, args, err := squirrel.
		Select("r.id, r.report_name, r.report_type, r.bm_id, r.object_id, r.date_preset, r.created_at, r.insights_data").
		From(reportsTable).
		Where(squirrel.Eq{"r.id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	row := r.conn.QueryRow(query, args...)

	report, err := r.scanReport(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear relatório: %w", err)
	}

	return report, nil
}

func (r *reportRepository) List() ([]*domain.Report, error) {
	query, args, err := squirrel.
		Select("r.id, r.report_name, r.report_type, r.bm_id, r.object_id, r.date_preset, r.created_at, r.insights_data").
		From(reportsTable).
		OrderBy("r.created_at DESC").
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

	reports := make([]*domain.Report, 0)
	for rows.Next() {
		report, err := r.scanReportRows(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear relatórios: %w", err)
		}
		reports = append(reports, report)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return reports, nil
}

// FindLatest retorna o relatório mais recente que casa com os parâmetros da
// consulta, ou nil quando nenhum existe.
func (r *reportRepository) FindLatest(bmID, objectID string, reportType domain.ReportType, datePreset string) (*domain.Report, error) {
	query, args, err := squirrel.
		Select("r.id, r.report_name, r.report_type, r.bm_id, r.object_id, r.date_preset, r.created_at, r.insights_data").
		From(reportsTable).
		Where(squirrel.Eq{
			"r.bm_id":       bmID,
			"r.object_id":   objectID,
			"r.report_type": string(reportType),
			"r.date_preset": datePreset,
		}).
		OrderBy("r.created_at DESC").
		Limit(1).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	row := r.conn.QueryRow(query, args...)

	report, err := r.scanReport(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear relatório: %w", err)
	}

	return report, nil
}

func (r *reportRepository) scanReport(row *sql.Row) (*domain.Report, error) {
	report := &domain.Report{}
	var insightsJSON []byte

	if err := row.Scan(
		&report.ID,
		&report.Name,
		&report.Type,
		&report.BMID,
		&report.ObjectID,
		&report.DatePreset,
		&report.CreatedAt,
		&insightsJSON,
	); err != nil {
		return nil, err
	}

	if err := r.decodeInsights(insightsJSON, report); err != nil {
		return nil, err
	}

	return report, nil
}

func (r *reportRepository) scanReportRows(rows *sql.Rows) (*domain.Report, error) {
	report := &domain.Report{}
	var insightsJSON []byte

	if err := rows.Scan(
		&report.ID,
		&report.Name,
		&report.Type,
		&report.BMID,
		&report.ObjectID,
		&report.DatePreset,
		&report.CreatedAt,
		&insightsJSON,
	); err != nil {
		return nil, err
	}

	if err := r.decodeInsights(insightsJSON, report); err != nil {
		return nil, err
	}

	return report, nil
}

func (r *reportRepository) decodeInsights(insightsJSON []byte, report *domain.Report) error {
	if insightsJSON == nil {
		return nil
	}

	if err := json.Unmarshal(insightsJSON, &report.Insights); err != nil {
		return fmt.Errorf("erro ao deserializar JSON de insights_data: %w", err)
	}

	return nil
}
