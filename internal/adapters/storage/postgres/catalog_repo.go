package postgres

import (
	"context"
	"database/sql"

	"entaltek-sabueso/internal/domain/catalog"
)

type CatalogRepo struct {
	db *sql.DB
}

func NewCatalogRepo(db *sql.DB) *CatalogRepo {
	return &CatalogRepo{db: db}
}

func (r *CatalogRepo) Create(ctx context.Context, s catalog.Service) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO services (id, name, description, price, type, duration, created_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7)
	`,
		s.ID, s.Name, s.Description, s.Price, string(s.Type), s.Duration, s.CreatedAt,
	)
	return err
}

func (r *CatalogRepo) Update(ctx context.Context, s catalog.Service) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE services
		SET name = $2, description = $3, price = $4, type = $5, duration = $6
		WHERE id = $1
	`,
		s.ID, s.Name, s.Description, s.Price, string(s.Type), s.Duration,
	)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *CatalogRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM services WHERE id = $1`, id)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *CatalogRepo) GetByID(ctx context.Context, id string) (catalog.Service, error) {
	var (
		s   catalog.Service
		typ string
	)
	err := r.db.QueryRowContext(ctx, `
		SELECT id, name, description, price, type, duration, created_at
		FROM services WHERE id = $1
	`, id).Scan(&s.ID, &s.Name, &s.Description, &s.Price, &typ, &s.Duration, &s.CreatedAt)
	if err == sql.ErrNoRows {
		return catalog.Service{}, ErrNotFound
	}
	if err != nil {
		return catalog.Service{}, err
	}
	s.Type = catalog.Type(typ)
	return s, nil
}

func (r *CatalogRepo) List(ctx context.Context) ([]catalog.Service, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, name, description, price, type, duration, created_at
		FROM services ORDER BY seq
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]catalog.Service, 0)
	for rows.Next() {
		var (
			s   catalog.Service
			typ string
		)
		if err := rows.Scan(&s.ID, &s.Name, &s.Description, &s.Price, &typ, &s.Duration, &s.CreatedAt); err != nil {
			return nil, err
		}
		s.Type = catalog.Type(typ)
		out = append(out, s)
	}
	return out, rows.Err()
}
