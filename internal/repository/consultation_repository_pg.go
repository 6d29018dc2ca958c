package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/neuralink-ai/site-backend/internal/domain"
)

type pgConsultationRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresConsultationRepository constructs an intake log backed by Postgres.
func NewPostgresConsultationRepository(pool *pgxpool.Pool) ConsultationRepository {
	return &pgConsultationRepository{pool: pool}
}

const consultationColumns = `id, name, email, company, message, service_interest, submitted_at, status`

func scanConsultation(row pgx.Row) (*domain.ConsultationRequest, error) {
	var req domain.ConsultationRequest
	if err := row.Scan(
		&req.ID,
		&req.Name,
		&req.Email,
		&req.Company,
		&req.Message,
		&req.ServiceInterest,
		&req.Timestamp,
		&req.Status,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &req, nil
}

func (r *pgConsultationRepository) List(ctx context.Context) ([]domain.ConsultationRequest, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+consultationColumns+` FROM consultation_requests ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := []domain.ConsultationRequest{}
	for rows.Next() {
		req, err := scanConsultation(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *req)
	}
	return result, rows.Err()
}

func (r *pgConsultationRepository) GetByID(ctx context.Context, id int) (*domain.ConsultationRequest, error) {
	return scanConsultation(r.pool.QueryRow(ctx, `SELECT `+consultationColumns+` FROM consultation_requests WHERE id=$1`, id))
}

func (r *pgConsultationRepository) Create(ctx context.Context, req *domain.ConsultationRequest) error {
	return pgx.BeginFunc(ctx, r.pool, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, `LOCK TABLE consultation_requests IN EXCLUSIVE MODE`); err != nil {
			return err
		}
		const query = `
        INSERT INTO consultation_requests (` + consultationColumns + `)
        SELECT COUNT(*) + 1, $1, $2, $3, $4, $5, $6, $7 FROM consultation_requests
        RETURNING id`
		return tx.QueryRow(ctx, query,
			req.Name,
			req.Email,
			req.Company,
			req.Message,
			req.ServiceInterest,
			req.Timestamp,
			string(req.Status),
		).Scan(&req.ID)
	})
}
