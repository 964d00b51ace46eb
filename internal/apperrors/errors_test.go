package apperrors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHTTPStatus(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want int
	}{
		{"validation", fmt.Errorf("%w: amount required", ErrValidation), http.StatusBadRequest},
		{"not found", NewNotFoundError("expense", "abc"), http.StatusNotFound},
		{"duplicate", ErrDuplicate, http.StatusConflict},
		{"overpayment", &OverpaymentError{Remaining: "10.00", Requested: "20.00"}, http.StatusUnprocessableEntity},
		{"insufficient", &InsufficientBalanceError{Available: "0.00", Requested: "5.00"}, http.StatusUnprocessableEntity},
		{"storage", NewStorageError("failed to commit", errors.New("conn reset")), http.StatusInternalServerError},
		{"unknown", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, HTTPStatus(tc.err))
		})
	}
}

func TestTypedErrorsUnwrapToSentinels(t *testing.T) {
	over := &OverpaymentError{Remaining: "0.00", Requested: "1.00"}
	assert.ErrorIs(t, over, ErrOverpayment)
	assert.ErrorIs(t, over, ErrInvariantViolation)
	assert.Contains(t, over.Error(), "cannot exceed remaining balance of $0.00")

	insufficient := &InsufficientBalanceError{Available: "3.00", Requested: "5.00"}
	assert.ErrorIs(t, insufficient, ErrInsufficientBalance)
	assert.ErrorIs(t, insufficient, ErrInvariantViolation)

	storage := NewStorageError("failed to begin transaction", errors.New("dial tcp"))
	assert.ErrorIs(t, storage, ErrStorage)
	assert.NotErrorIs(t, NewAppError(http.StatusBadRequest, "bad", nil), ErrStorage)
}
