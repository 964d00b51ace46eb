package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/SscSPs/boarding_house_ledger/internal/apperrors"
	"github.com/SscSPs/boarding_house_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/boarding_house_ledger/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

type PgxStudentRepository struct {
	db querier
}

func newPgxStudentRepository(db querier) portsrepo.StudentRepositoryFacade {
	return &PgxStudentRepository{db: db}
}

var _ portsrepo.StudentRepositoryFacade = (*PgxStudentRepository)(nil)

func (r *PgxStudentRepository) FindStudentByID(ctx context.Context, studentID string) (*domain.Student, error) {
	var s domain.Student
	err := r.db.QueryRow(ctx, `
		SELECT student_id, full_name, boarding_house_id, status, deleted_at
		FROM students
		WHERE student_id = $1`, studentID,
	).Scan(&s.StudentID, &s.FullName, &s.BoardingHouseID, &s.Status, &s.DeletedAt)
	if err != nil {
		return nil, mapError(err, "student", studentID)
	}
	return &s, nil
}

func (r *PgxStudentRepository) FindEnrollmentByID(ctx context.Context, enrollmentID string) (*domain.Enrollment, error) {
	var e domain.Enrollment
	err := r.db.QueryRow(ctx, `
		SELECT enrollment_id, student_id, boarding_house_id, bed_id, monthly_rent, start_date, deleted_at
		FROM enrollments
		WHERE enrollment_id = $1`, enrollmentID,
	).Scan(&e.EnrollmentID, &e.StudentID, &e.BoardingHouseID, &e.BedID, &e.MonthlyRent, &e.StartDate, &e.DeletedAt)
	if err != nil {
		return nil, mapError(err, "enrollment", enrollmentID)
	}
	return &e, nil
}

// ListBillableEnrollments joins enrollments to active students and occupied beds.
func (r *PgxStudentRepository) ListBillableEnrollments(ctx context.Context, boardingHouseID string) ([]domain.BillableEnrollment, error) {
	query := `
		SELECT e.enrollment_id, e.student_id, e.boarding_house_id, e.bed_id, e.monthly_rent,
			e.start_date, e.deleted_at, s.full_name
		FROM enrollments e
		JOIN students s ON s.student_id = e.student_id
		JOIN beds b ON b.bed_id = e.bed_id
		WHERE e.boarding_house_id = $1
			AND e.deleted_at IS NULL
			AND s.deleted_at IS NULL AND s.status = $2
			AND b.deleted_at IS NULL AND b.status = $3
		ORDER BY s.full_name, e.enrollment_id;
	`
	rows, err := r.db.Query(ctx, query, boardingHouseID, domain.StudentActive, domain.BedOccupied)
	if err != nil {
		return nil, apperrors.NewStorageError("failed to query billable enrollments", err)
	}
	out, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.BillableEnrollment, error) {
		var b domain.BillableEnrollment
		err := row.Scan(
			&b.EnrollmentID, &b.StudentID, &b.BoardingHouseID, &b.BedID, &b.MonthlyRent,
			&b.StartDate, &b.DeletedAt, &b.StudentName,
		)
		return b, err
	})
	if err != nil {
		return nil, apperrors.NewStorageError("failed to collect billable enrollment rows", err)
	}
	return out, nil
}

func (r *PgxStudentRepository) FindStudentBalance(ctx context.Context, enrollmentID string) (*domain.StudentAccountBalance, error) {
	var b domain.StudentAccountBalance
	err := r.db.QueryRow(ctx, `
		SELECT student_id, enrollment_id, current_balance, currency, last_updated_at
		FROM student_account_balances
		WHERE enrollment_id = $1`, enrollmentID,
	).Scan(&b.StudentID, &b.EnrollmentID, &b.CurrentBalance, &b.Currency, &b.LastUpdatedAt)
	if err != nil {
		return nil, mapError(err, "student balance", enrollmentID)
	}
	return &b, nil
}

// AdjustStudentBalance upserts the enrollment's balance and returns the result.
func (r *PgxStudentRepository) AdjustStudentBalance(ctx context.Context, studentID string, enrollmentID string, delta decimal.Decimal, currency string, now time.Time) (decimal.Decimal, error) {
	query := `
		INSERT INTO student_account_balances (enrollment_id, student_id, current_balance, currency, last_updated_at)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (enrollment_id) DO UPDATE SET
			current_balance = student_account_balances.current_balance + EXCLUDED.current_balance,
			last_updated_at = EXCLUDED.last_updated_at
		WHERE student_account_balances.student_id = EXCLUDED.student_id
		RETURNING current_balance;
	`
	var balance decimal.Decimal
	err := r.db.QueryRow(ctx, query, enrollmentID, studentID, delta, currency, now).Scan(&balance)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return decimal.Zero, fmt.Errorf("%w: balance of enrollment %s belongs to another student", apperrors.ErrInvariantViolation, enrollmentID)
		}
		return decimal.Zero, mapError(err, "enrollment", enrollmentID)
	}
	return balance, nil
}
