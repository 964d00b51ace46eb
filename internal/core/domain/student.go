package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// StudentStatus is the enrollment standing of a student.
type StudentStatus string

const (
	StudentActive   StudentStatus = "active"
	StudentInactive StudentStatus = "inactive"
)

// BedStatus is the occupancy state of a bed.
type BedStatus string

const (
	BedAvailable   BedStatus = "available"
	BedOccupied    BedStatus = "occupied"
	BedMaintenance BedStatus = "maintenance"
)

// Student is a boarder who can be billed.
type Student struct {
	StudentID       string        `json:"studentID"`
	FullName        string        `json:"fullName"`
	BoardingHouseID string        `json:"boardingHouseID"`
	Status          StudentStatus `json:"status"`
	DeletedAt       *time.Time    `json:"deletedAt,omitempty"`
}

// Bed is a billable place in a room.
type Bed struct {
	BedID           string     `json:"bedID"`
	BoardingHouseID string     `json:"boardingHouseID"`
	Label           string     `json:"label"`
	Status          BedStatus  `json:"status"`
	DeletedAt       *time.Time `json:"deletedAt,omitempty"`
}

// Enrollment links a student to a boarding house, a bed and a monthly rent.
type Enrollment struct {
	EnrollmentID    string          `json:"enrollmentID"`
	StudentID       string          `json:"studentID"`
	BoardingHouseID string          `json:"boardingHouseID"`
	BedID           *string         `json:"bedID,omitempty"`
	MonthlyRent     decimal.Decimal `json:"monthlyRent"`
	StartDate       time.Time       `json:"startDate"`
	DeletedAt       *time.Time      `json:"deletedAt,omitempty"`
}

// StudentAccountBalance is the receivable-style running balance of one enrollment.
// A negative balance means the student owes money.
type StudentAccountBalance struct {
	StudentID      string          `json:"studentID"`
	EnrollmentID   string          `json:"enrollmentID"`
	CurrentBalance decimal.Decimal `json:"currentBalance"`
	Currency       string          `json:"currency"`
	LastUpdatedAt  time.Time       `json:"lastUpdatedAt"`
}

// BillableEnrollment is an enrollment of an active student holding an occupied bed.
type BillableEnrollment struct {
	Enrollment
	StudentName string `json:"studentName"`
}
