package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/neuralink-ai/site-backend/internal/domain"
)

// PostgresServiceRepository stores services in the services table.
type PostgresServiceRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresServiceRepository constructs a services repository backed by Postgres.
func NewPostgresServiceRepository(pool *pgxpool.Pool) *PostgresServiceRepository {
	return &PostgresServiceRepository{pool: pool}
}

const serviceColumns = `id, title, description, icon, features, price`

func scanService(row pgx.Row) (*domain.Service, error) {
	var svc domain.Service
	if err := row.Scan(&svc.ID, &svc.Title, &svc.Description, &svc.Icon, &svc.Features, &svc.Price); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if svc.Features == nil {
		svc.Features = []string{}
	}
	return &svc, nil
}

func (r *PostgresServiceRepository) List(ctx context.Context) ([]domain.Service, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+serviceColumns+` FROM services ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := []domain.Service{}
	for rows.Next() {
		svc, err := scanService(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *svc)
	}
	return result, rows.Err()
}

func (r *PostgresServiceRepository) GetByID(ctx context.Context, id int) (*domain.Service, error) {
	return scanService(r.pool.QueryRow(ctx, `SELECT `+serviceColumns+` FROM services WHERE id=$1`, id))
}

func (r *PostgresServiceRepository) Create(ctx context.Context, svc *domain.Service) error {
	return pgx.BeginFunc(ctx, r.pool, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, `LOCK TABLE services IN EXCLUSIVE MODE`); err != nil {
			return err
		}
		const query = `
        INSERT INTO services (id, title, description, icon, features, price)
        SELECT COALESCE(MAX(id), 0) + 1, $1, $2, $3, $4, $5 FROM services
        RETURNING id`
		return tx.QueryRow(ctx, query,
			svc.Title,
			svc.Description,
			svc.Icon,
			svc.Features,
			svc.Price,
		).Scan(&svc.ID)
	})
}

func (r *PostgresServiceRepository) Update(ctx context.Context, id int, fn func(*domain.Service)) (*domain.Service, error) {
	var updated *domain.Service
	err := pgx.BeginFunc(ctx, r.pool, func(tx pgx.Tx) error {
		svc, err := scanService(tx.QueryRow(ctx, `SELECT `+serviceColumns+` FROM services WHERE id=$1 FOR UPDATE`, id))
		if err != nil {
			return err
		}
		fn(svc)
		svc.ID = id
		const query = `
        UPDATE services SET title=$1, description=$2, icon=$3, features=$4, price=$5
        WHERE id=$6`
		if _, err := tx.Exec(ctx, query, svc.Title, svc.Description, svc.Icon, svc.Features, svc.Price, id); err != nil {
			return err
		}
		updated = svc
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func (r *PostgresServiceRepository) Delete(ctx context.Context, id int) (*domain.Service, error) {
	return scanService(r.pool.QueryRow(ctx, `DELETE FROM services WHERE id=$1 RETURNING `+serviceColumns, id))
}

func (r *PostgresServiceRepository) Count(ctx context.Context) (int, error) {
	var n int
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM services`).Scan(&n)
	return n, err
}

// SeedIfEmpty inserts seed with its own ids when the table has no rows.
func (r *PostgresServiceRepository) SeedIfEmpty(ctx context.Context, seed []domain.Service) (int, error) {
	inserted := 0
	err := pgx.BeginFunc(ctx, r.pool, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, `LOCK TABLE services IN EXCLUSIVE MODE`); err != nil {
			return err
		}
		var n int
		if err := tx.QueryRow(ctx, `SELECT COUNT(*) FROM services`).Scan(&n); err != nil {
			return err
		}
		if n > 0 {
			return nil
		}
		batch := &pgx.Batch{}
		for _, svc := range seed {
			batch.Queue(`INSERT INTO services (`+serviceColumns+`) VALUES ($1,$2,$3,$4,$5,$6)`,
				svc.ID, svc.Title, svc.Description, svc.Icon, svc.Features, svc.Price)
		}
		if err := tx.SendBatch(ctx, batch).Close(); err != nil {
			return fmt.Errorf("seed services: %w", err)
		}
		inserted = len(seed)
		return nil
	})
	return inserted, err
}
