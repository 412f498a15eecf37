package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"entaltek-sabueso/internal/domain/dogs"
)

type DogsRepo struct {
	db *sql.DB
}

func NewDogsRepo(db *sql.DB) *DogsRepo {
	return &DogsRepo{db: db}
}

func (r *DogsRepo) Create(ctx context.Context, d dogs.Dog) error {
	medical, err := json.Marshal(d.Medical)
	if err != nil {
		return fmt.Errorf("marshal medical: %w", err)
	}

	_, err = r.db.ExecContext(ctx, `
		INSERT INTO dogs (
			id, name, breed, age, weight, photo, owner_id,
			status, check_in_time, check_out_time, medical, created_at
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12)
	`,
		d.ID,
		d.Name,
		d.Breed,
		d.Age,
		d.Weight,
		d.Photo,
		d.OwnerID,
		string(d.Status),
		toNullTime(d.CheckInTime),
		toNullTime(d.CheckOutTime),
		medical,
		d.CreatedAt,
	)
	return err
}

func (r *DogsRepo) Update(ctx context.Context, d dogs.Dog) error {
	medical, err := json.Marshal(d.Medical)
	if err != nil {
		return fmt.Errorf("marshal medical: %w", err)
	}

	res, err := r.db.ExecContext(ctx, `
		UPDATE dogs
		SET
			name = $2,
			breed = $3,
			age = $4,
			weight = $5,
			photo = $6,
			owner_id = $7,
			status = $8,
			check_in_time = $9,
			check_out_time = $10,
			medical = $11
		WHERE id = $1
	`,
		d.ID,
		d.Name,
		d.Breed,
		d.Age,
		d.Weight,
		d.Photo,
		d.OwnerID,
		string(d.Status),
		toNullTime(d.CheckInTime),
		toNullTime(d.CheckOutTime),
		medical,
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

func (r *DogsRepo) GetByID(ctx context.Context, id string) (dogs.Dog, error) {
	row := r.db.QueryRowContext(ctx, dogSelect+` WHERE id = $1`, id)
	d, err := scanDog(row)
	if err == sql.ErrNoRows {
		return dogs.Dog{}, ErrNotFound
	}
	return d, err
}

func (r *DogsRepo) List(ctx context.Context) ([]dogs.Dog, error) {
	return r.queryDogs(ctx, dogSelect+` ORDER BY seq`)
}

func (r *DogsRepo) ListByOwner(ctx context.Context, ownerID string) ([]dogs.Dog, error) {
	return r.queryDogs(ctx, dogSelect+` WHERE owner_id = $1 ORDER BY seq`, ownerID)
}

const dogSelect = `
	SELECT id, name, breed, age, weight, photo, owner_id,
	       status, check_in_time, check_out_time, medical, created_at
	FROM dogs`

func (r *DogsRepo) queryDogs(ctx context.Context, query string, args ...any) ([]dogs.Dog, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]dogs.Dog, 0)
	for rows.Next() {
		d, err := scanDog(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanDog(row rowScanner) (dogs.Dog, error) {
	var (
		d           dogs.Dog
		status      string
		checkIn     sql.NullTime
		checkOut    sql.NullTime
		medicalJSON []byte
	)

	err := row.Scan(
		&d.ID, &d.Name, &d.Breed, &d.Age, &d.Weight, &d.Photo, &d.OwnerID,
		&status, &checkIn, &checkOut, &medicalJSON, &d.CreatedAt,
	)
	if err != nil {
		return dogs.Dog{}, err
	}

	d.Status = dogs.Status(status)
	d.CheckInTime = fromNullTime(checkIn)
	d.CheckOutTime = fromNullTime(checkOut)
	if len(medicalJSON) > 0 {
		if err := json.Unmarshal(medicalJSON, &d.Medical); err != nil {
			return dogs.Dog{}, fmt.Errorf("unmarshal medical: %w", err)
		}
	}
	if d.Medical.Medications == nil {
		d.Medical.Medications = []dogs.Medication{}
	}
	return d, nil
}

func toNullTime(t *time.Time) sql.NullTime {
	if t == nil {
		return sql.NullTime{}
	}
	return sql.NullTime{Time: *t, Valid: true}
}

func fromNullTime(nt sql.NullTime) *time.Time {
	if !nt.Valid {
		return nil
	}
	t := nt.Time
	return &t
}
