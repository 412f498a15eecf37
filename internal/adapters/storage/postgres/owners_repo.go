package postgres

import (
	"context"
	"database/sql"

	"entaltek-sabueso/internal/domain/owners"
)

type OwnersRepo struct {
	db *sql.DB
}

func NewOwnersRepo(db *sql.DB) *OwnersRepo {
	return &OwnersRepo{db: db}
}

func (r *OwnersRepo) Create(ctx context.Context, o owners.Owner) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO owners (id, first_name, last_name, email, phone, address, created_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7)
	`,
		o.ID, o.FirstName, o.LastName, o.Email, o.Phone, o.Address, o.CreatedAt,
	)
	return err
}

func (r *OwnersRepo) GetByID(ctx context.Context, id string) (owners.Owner, error) {
	var o owners.Owner
	err := r.db.QueryRowContext(ctx, `
		SELECT id, first_name, last_name, email, phone, address, created_at
		FROM owners WHERE id = $1
	`, id).Scan(&o.ID, &o.FirstName, &o.LastName, &o.Email, &o.Phone, &o.Address, &o.CreatedAt)
	if err == sql.ErrNoRows {
		return owners.Owner{}, ErrNotFound
	}
	return o, err
}

func (r *OwnersRepo) List(ctx context.Context) ([]owners.Owner, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, first_name, last_name, email, phone, address, created_at
		FROM owners ORDER BY seq
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]owners.Owner, 0)
	for rows.Next() {
		var o owners.Owner
		if err := rows.Scan(&o.ID, &o.FirstName, &o.LastName, &o.Email, &o.Phone, &o.Address, &o.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, o)
	}
	return out, rows.Err()
}
