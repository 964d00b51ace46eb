package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/SscSPs/boarding_house_ledger/internal/apperrors"
)

// AuditFields holds standard audit information for domain entities.
type AuditFields struct {
	CreatedAt     time.Time `json:"createdAt"`
	CreatedBy     string    `json:"createdBy"` // UserID Reference
	LastUpdatedAt time.Time `json:"lastUpdatedAt"`
	LastUpdatedBy string    `json:"lastUpdatedBy"` // UserID Reference
}

// NewAuditFields stamps creation and last update with the same actor and time.
func NewAuditFields(actor Actor, now time.Time) AuditFields {
	return AuditFields{
		CreatedAt:     now,
		CreatedBy:     actor.UserID(),
		LastUpdatedAt: now,
		LastUpdatedBy: actor.UserID(),
	}
}

// Touch records a modification by actor at now.
func (a *AuditFields) Touch(actor Actor, now time.Time) {
	a.LastUpdatedAt = now
	a.LastUpdatedBy = actor.UserID()
}

// Actor identifies who performs a ledger-affecting operation.
// Its fields are unexported so an Actor can only be obtained through NewActor;
// the zero value is rejected by every write operation.
type Actor struct {
	userID string
}

// NewActor builds an Actor for the given authenticated user.
func NewActor(userID string) (Actor, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return Actor{}, fmt.Errorf("%w: actor user id is required", apperrors.ErrValidation)
	}
	return Actor{userID: userID}, nil
}

// UserID returns the authenticated user id.
func (a Actor) UserID() string {
	return a.userID
}

// Validate fails for the zero Actor.
func (a Actor) Validate() error {
	if a.userID == "" {
		return fmt.Errorf("%w: operation requires an authenticated actor", apperrors.ErrValidation)
	}
	return nil
}
