package postgres

import (
	"context"
	"database/sql"

	"entaltek-sabueso/internal/domain/checkins"
)

type CheckInsRepo struct {
	db *sql.DB
}

func NewCheckInsRepo(db *sql.DB) *CheckInsRepo {
	return &CheckInsRepo{db: db}
}

func (r *CheckInsRepo) Create(ctx context.Context, c checkins.CheckIn) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO check_ins (
			id, dog_id, dog_name, owner_name, service_type,
			check_in_time, check_out_time, expected_check_out,
			notes, status, caretaker_id
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11)
	`,
		c.ID, c.DogID, c.DogName, c.OwnerName, string(c.ServiceType),
		c.CheckInTime, toNullTime(c.CheckOutTime), toNullTime(c.ExpectedCheckOut),
		c.Notes, string(c.Status), c.CaretakerID,
	)
	return err
}

func (r *CheckInsRepo) Update(ctx context.Context, c checkins.CheckIn) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE check_ins
		SET
			check_out_time = $2,
			expected_check_out = $3,
			notes = $4,
			status = $5
		WHERE id = $1
	`,
		c.ID, toNullTime(c.CheckOutTime), toNullTime(c.ExpectedCheckOut),
		c.Notes, string(c.Status),
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

func (r *CheckInsRepo) GetByID(ctx context.Context, id string) (checkins.CheckIn, error) {
	row := r.db.QueryRowContext(ctx, checkInSelect+` WHERE id = $1`, id)
	c, err := scanCheckIn(row)
	if err == sql.ErrNoRows {
		return checkins.CheckIn{}, ErrNotFound
	}
	return c, err
}

func (r *CheckInsRepo) List(ctx context.Context) ([]checkins.CheckIn, error) {
	return r.queryCheckIns(ctx, checkInSelect+` ORDER BY seq`)
}

func (r *CheckInsRepo) ListByDog(ctx context.Context, dogID string) ([]checkins.CheckIn, error) {
	return r.queryCheckIns(ctx, checkInSelect+` WHERE dog_id = $1 ORDER BY seq`, dogID)
}

func (r *CheckInsRepo) GetActiveByDog(ctx context.Context, dogID string) (checkins.CheckIn, error) {
	row := r.db.QueryRowContext(ctx, checkInSelect+` WHERE dog_id = $1 AND status = 'active'`, dogID)
	c, err := scanCheckIn(row)
	if err == sql.ErrNoRows {
		return checkins.CheckIn{}, ErrNotFound
	}
	return c, err
}

func (r *CheckInsRepo) ListByCaretaker(ctx context.Context, employeeID string, limit int) ([]checkins.CheckIn, error) {
	query := checkInSelect + ` WHERE caretaker_id = $1 ORDER BY check_in_time DESC`
	if limit > 0 {
		return r.queryCheckIns(ctx, query+` LIMIT $2`, employeeID, limit)
	}
	return r.queryCheckIns(ctx, query, employeeID)
}

const checkInSelect = `
	SELECT id, dog_id, dog_name, owner_name, service_type,
	       check_in_time, check_out_time, expected_check_out,
	       notes, status, caretaker_id
	FROM check_ins`

func (r *CheckInsRepo) queryCheckIns(ctx context.Context, query string, args ...any) ([]checkins.CheckIn, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]checkins.CheckIn, 0)
	for rows.Next() {
		c, err := scanCheckIn(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func scanCheckIn(row rowScanner) (checkins.CheckIn, error) {
	var (
		c                   checkins.CheckIn
		serviceType, status string
		checkOut, expected  sql.NullTime
	)

	err := row.Scan(
		&c.ID, &c.DogID, &c.DogName, &c.OwnerName, &serviceType,
		&c.CheckInTime, &checkOut, &expected,
		&c.Notes, &status, &c.CaretakerID,
	)
	if err != nil {
		return checkins.CheckIn{}, err
	}

	c.ServiceType = checkins.ServiceType(serviceType)
	c.Status = checkins.Status(status)
	c.CheckOutTime = fromNullTime(checkOut)
	c.ExpectedCheckOut = fromNullTime(expected)
	return c, nil
}
