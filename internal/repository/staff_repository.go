package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/staff-records/internal/domain"
)

// ConflictError reports a uniqueness violation on the named form field.
type ConflictError struct {
	Field string
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("%s already exists", e.Field)
}

// StaffRepository handles persistence for staff records. Lookups return
// (nil, nil) when no record matches.
type StaffRepository interface {
	Create(ctx context.Context, record *domain.StaffRecord) error
	Update(ctx context.Context, record *domain.StaffRecord) error
	Delete(ctx context.Context, id int64) error
	GetByID(ctx context.Context, id int64) (*domain.StaffRecord, error)
	GetByStaffID(ctx context.Context, staffID string) (*domain.StaffRecord, error)
	GetByEmail(ctx context.Context, email string) (*domain.StaffRecord, error)
	List(ctx context.Context) ([]domain.StaffRecord, error)
}

type staffRepository struct {
	pool *pgxpool.Pool
}

// NewStaffRepository instantiates the repository.
func NewStaffRepository(pool *pgxpool.Pool) StaffRepository {
	return &staffRepository{pool: pool}
}

const staffColumns = "id, staff_id, staff_name, email, phone_number, starting_date, photo_path, created_at, updated_at"

func (r *staffRepository) Create(ctx context.Context, record *domain.StaffRecord) error {
	const query = `
        INSERT INTO staff_records (staff_id, staff_name, email, phone_number, starting_date, photo_path)
        VALUES ($1,$2,$3,$4,$5,$6)
        RETURNING id, created_at, updated_at`

	err := r.pool.QueryRow(ctx, query,
		record.StaffID,
		record.StaffName,
		record.Email,
		record.PhoneNumber,
		record.StartingDate,
		record.PhotoPath,
	).Scan(&record.ID, &record.CreatedAt, &record.UpdatedAt)
	return mapUniqueViolation(err)
}

func (r *staffRepository) Update(ctx context.Context, record *domain.StaffRecord) error {
	const query = `
        UPDATE staff_records
        SET staff_id=$1, staff_name=$2, email=$3, phone_number=$4, starting_date=$5, photo_path=$6, updated_at=NOW()
        WHERE id=$7`

	cmd, err := r.pool.Exec(ctx, query,
		record.StaffID,
		record.StaffName,
		record.Email,
		record.PhoneNumber,
		record.StartingDate,
		record.PhotoPath,
		record.ID,
	)
	if err != nil {
		return mapUniqueViolation(err)
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *staffRepository) Delete(ctx context.Context, id int64) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM staff_records WHERE id=$1`, id)
	return err
}

func (r *staffRepository) GetByID(ctx context.Context, id int64) (*domain.StaffRecord, error) {
	query := fmt.Sprintf(`SELECT %s FROM staff_records WHERE id=$1`, staffColumns)
	return r.getOne(ctx, query, id)
}

func (r *staffRepository) GetByStaffID(ctx context.Context, staffID string) (*domain.StaffRecord, error) {
	query := fmt.Sprintf(`SELECT %s FROM staff_records WHERE staff_id=$1`, staffColumns)
	return r.getOne(ctx, query, staffID)
}

func (r *staffRepository) GetByEmail(ctx context.Context, email string) (*domain.StaffRecord, error) {
	query := fmt.Sprintf(`SELECT %s FROM staff_records WHERE email=$1`, staffColumns)
	return r.getOne(ctx, query, email)
}

func (r *staffRepository) getOne(ctx context.Context, query string, arg any) (*domain.StaffRecord, error) {
	var record domain.StaffRecord
	err := r.pool.QueryRow(ctx, query, arg).Scan(
		&record.ID,
		&record.StaffID,
		&record.StaffName,
		&record.Email,
		&record.PhoneNumber,
		&record.StartingDate,
		&record.PhotoPath,
		&record.CreatedAt,
		&record.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &record, nil
}

func (r *staffRepository) List(ctx context.Context) ([]domain.StaffRecord, error) {
	query := fmt.Sprintf(`SELECT %s FROM staff_records ORDER BY id`, staffColumns)
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.StaffRecord
	for rows.Next() {
		var record domain.StaffRecord
		if err := rows.Scan(
			&record.ID,
			&record.StaffID,
			&record.StaffName,
			&record.Email,
			&record.PhoneNumber,
			&record.StartingDate,
			&record.PhotoPath,
			&record.CreatedAt,
			&record.UpdatedAt,
		); err != nil {
			return nil, err
		}
		result = append(result, record)
	}
	return result, rows.Err()
}

// mapUniqueViolation translates postgres unique-index violations into
// ConflictError values naming the colliding form field.
func mapUniqueViolation(err error) error {
	if err == nil {
		return nil
	}
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) || pgErr.Code != "23505" {
		return err
	}
	switch {
	case strings.Contains(pgErr.ConstraintName, "staff_id"):
		return &ConflictError{Field: "staffId"}
	case strings.Contains(pgErr.ConstraintName, "email"):
		return &ConflictError{Field: "email"}
	default:
		return &ConflictError{Field: "staffId"}
	}
}
