package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"entaltek-sabueso/internal/domain/employees"
)

type EmployeesRepo struct {
	db *sql.DB
}

func NewEmployeesRepo(db *sql.DB) *EmployeesRepo {
	return &EmployeesRepo{db: db}
}

func (r *EmployeesRepo) Create(ctx context.Context, e employees.Employee) error {
	assigned, err := marshalAssigned(e.AssignedDogIDs)
	if err != nil {
		return err
	}

	_, err = r.db.ExecContext(ctx, `
		INSERT INTO employees (
			id, first_name, last_name, email, phone, role, status,
			hire_date, photo, assigned_dog_ids, created_at
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11)
	`,
		e.ID, e.FirstName, e.LastName, e.Email, e.Phone,
		string(e.Role), string(e.Status), e.HireDate, e.Photo, assigned, e.CreatedAt,
	)
	return err
}

func (r *EmployeesRepo) Update(ctx context.Context, e employees.Employee) error {
	assigned, err := marshalAssigned(e.AssignedDogIDs)
	if err != nil {
		return err
	}

	res, err := r.db.ExecContext(ctx, `
		UPDATE employees
		SET
			first_name = $2,
			last_name = $3,
			email = $4,
			phone = $5,
			role = $6,
			status = $7,
			hire_date = $8,
			photo = $9,
			assigned_dog_ids = $10
		WHERE id = $1
	`,
		e.ID, e.FirstName, e.LastName, e.Email, e.Phone,
		string(e.Role), string(e.Status), e.HireDate, e.Photo, assigned,
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

func (r *EmployeesRepo) GetByID(ctx context.Context, id string) (employees.Employee, error) {
	row := r.db.QueryRowContext(ctx, employeeSelect+` WHERE id = $1`, id)
	e, err := scanEmployee(row)
	if err == sql.ErrNoRows {
		return employees.Employee{}, ErrNotFound
	}
	return e, err
}

func (r *EmployeesRepo) List(ctx context.Context) ([]employees.Employee, error) {
	rows, err := r.db.QueryContext(ctx, employeeSelect+` ORDER BY seq`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]employees.Employee, 0)
	for rows.Next() {
		e, err := scanEmployee(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

const employeeSelect = `
	SELECT id, first_name, last_name, email, phone, role, status,
	       hire_date, photo, assigned_dog_ids, created_at
	FROM employees`

func scanEmployee(row rowScanner) (employees.Employee, error) {
	var (
		e            employees.Employee
		role, status string
		assignedJSON []byte
	)

	err := row.Scan(
		&e.ID, &e.FirstName, &e.LastName, &e.Email, &e.Phone, &role, &status,
		&e.HireDate, &e.Photo, &assignedJSON, &e.CreatedAt,
	)
	if err != nil {
		return employees.Employee{}, err
	}

	e.Role = employees.Role(role)
	e.Status = employees.Status(status)
	e.AssignedDogIDs = []string{}
	if len(assignedJSON) > 0 {
		if err := json.Unmarshal(assignedJSON, &e.AssignedDogIDs); err != nil {
			return employees.Employee{}, fmt.Errorf("unmarshal assigned_dog_ids: %w", err)
		}
	}
	return e, nil
}

func marshalAssigned(ids []string) ([]byte, error) {
	if ids == nil {
		ids = []string{}
	}
	b, err := json.Marshal(ids)
	if err != nil {
		return nil, fmt.Errorf("marshal assigned_dog_ids: %w", err)
	}
	return b, nil
}
