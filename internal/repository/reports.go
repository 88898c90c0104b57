package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/evcomply/compliance-checker-api/internal/models"
)

type ReportRepository interface {
	Create(ctx context.Context, report *models.Report) error
	GetByID(ctx context.Context, id string) (*models.Report, error)
	MarkVerified(ctx context.Context, id string, verifiedAt time.Time) error
	CountAll(ctx context.Context) (int, error)
	CountVerified(ctx context.Context) (int, error)
}

type reportRepository struct {
	db *sqlx.DB
}

func NewReportRepository(db *sqlx.DB) ReportRepository {
	return &reportRepository{db: db}
}

func (r *reportRepository) Create(ctx context.Context, report *models.Report) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	query := `
		INSERT INTO reports (id, filename, file_size, content_type, s3_key, record_count, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err = tx.ExecContext(ctx, query,
		report.ID,
		report.Filename,
		report.FileSize,
		report.ContentType,
		report.S3Key,
		len(report.Records),
		report.CreatedAt,
	)
	if err != nil {
		return err
	}

	recordQuery := `
		INSERT INTO test_records (report_id, position, name, standard, result, expected, actual, paragraph)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	for i, rec := range report.Records {
		_, err = tx.ExecContext(ctx, recordQuery,
			report.ID,
			i,
			rec.Name,
			rec.Standard,
			rec.Result,
			rec.Expected,
			rec.Actual,
			rec.Paragraph,
		)
		if err != nil {
			return err
		}
	}

	return tx.Commit()
}

func (r *reportRepository) GetByID(ctx context.Context, id string) (*models.Report, error) {
	var report models.Report

	query := `
		SELECT id, filename, file_size, content_type, s3_key, record_count, created_at, verified_at
		FROM reports
		WHERE id = $1
	`

	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&report.ID,
		&report.Filename,
		&report.FileSize,
		&report.ContentType,
		&report.S3Key,
		&report.RecordCount,
		&report.CreatedAt,
		&report.VerifiedAt,
	)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	recordQuery := `
		SELECT name, standard, result, expected, actual, paragraph
		FROM test_records
		WHERE report_id = $1
		ORDER BY position
	`

	if err := r.db.SelectContext(ctx, &report.Records, recordQuery, id); err != nil {
		return nil, err
	}

	return &report, nil
}

func (r *reportRepository) MarkVerified(ctx context.Context, id string, verifiedAt time.Time) error {
	query := `UPDATE reports SET verified_at = $2 WHERE id = $1`
	_, err := r.db.ExecContext(ctx, query, id, verifiedAt)
	return err
}

func (r *reportRepository) CountAll(ctx context.Context) (int, error) {
	var count int
	err := r.db.GetContext(ctx, &count, `SELECT COUNT(*) FROM reports`)
	return count, err
}

func (r *reportRepository) CountVerified(ctx context.Context) (int, error) {
	var count int
	err := r.db.GetContext(ctx, &count, `SELECT COUNT(*) FROM reports WHERE verified_at IS NOT NULL`)
	return count, err
}
