package memory

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/SscSPs/boarding_house_ledger/internal/apperrors"
	"github.com/SscSPs/boarding_house_ledger/internal/core/domain"
	"github.com/shopspring/decimal"
)

type studentRepository struct {
	db access
}

func (r *studentRepository) FindStudentByID(ctx context.Context, studentID string) (*domain.Student, error) {
	var out domain.Student
	err := r.db.read(func(st *state) error {
		s, ok := st.students[studentID]
		if !ok {
			return apperrors.NewNotFoundError("student", studentID)
		}
		out = s
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *studentRepository) FindEnrollmentByID(ctx context.Context, enrollmentID string) (*domain.Enrollment, error) {
	var out domain.Enrollment
	err := r.db.read(func(st *state) error {
		e, ok := st.enrollments[enrollmentID]
		if !ok {
			return apperrors.NewNotFoundError("enrollment", enrollmentID)
		}
		out = e
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *studentRepository) ListBillableEnrollments(ctx context.Context, boardingHouseID string) ([]domain.BillableEnrollment, error) {
	var out []domain.BillableEnrollment
	err := r.db.read(func(st *state) error {
		for _, e := range st.enrollments {
			if e.BoardingHouseID != boardingHouseID || e.DeletedAt != nil || e.BedID == nil {
				continue
			}
			student, ok := st.students[e.StudentID]
			if !ok || student.DeletedAt != nil || student.Status != domain.StudentActive {
				continue
			}
			bed, ok := st.beds[*e.BedID]
			if !ok || bed.DeletedAt != nil || bed.Status != domain.BedOccupied {
				continue
			}
			out = append(out, domain.BillableEnrollment{Enrollment: e, StudentName: student.FullName})
		}
		return nil
	})
	sort.Slice(out, func(i, j int) bool {
		if out[i].StudentName == out[j].StudentName {
			return out[i].EnrollmentID < out[j].EnrollmentID
		}
		return out[i].StudentName < out[j].StudentName
	})
	return out, err
}

func (r *studentRepository) FindStudentBalance(ctx context.Context, enrollmentID string) (*domain.StudentAccountBalance, error) {
	var out domain.StudentAccountBalance
	err := r.db.read(func(st *state) error {
		b, ok := st.studentBalances[enrollmentID]
		if !ok {
			return apperrors.NewNotFoundError("student balance", enrollmentID)
		}
		out = b
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *studentRepository) AdjustStudentBalance(ctx context.Context, studentID string, enrollmentID string, delta decimal.Decimal, currency string, now time.Time) (decimal.Decimal, error) {
	var balance decimal.Decimal
	err := r.db.write(func(st *state) error {
		if _, ok := st.enrollments[enrollmentID]; !ok {
			return apperrors.NewNotFoundError("enrollment", enrollmentID)
		}
		b, ok := st.studentBalances[enrollmentID]
		if !ok {
			b = domain.StudentAccountBalance{StudentID: studentID, EnrollmentID: enrollmentID, CurrentBalance: decimal.Zero, Currency: currency}
		} else if b.StudentID != studentID {
			return fmt.Errorf("%w: balance of enrollment %s belongs to another student", apperrors.ErrInvariantViolation, enrollmentID)
		}
		b.CurrentBalance = b.CurrentBalance.Add(delta)
		b.LastUpdatedAt = now
		st.studentBalances[enrollmentID] = b
		balance = b.CurrentBalance
		return nil
	})
	return balance, err
}
