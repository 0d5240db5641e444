package domain

import (
	"time"

	"github.com/google/uuid"
)

type LicenseType string

const (
	LicenseTypeNone LicenseType = "NONE"
	LicenseTypeA    LicenseType = "A"
	LicenseTypeB    LicenseType = "B"
	LicenseTypeAB   LicenseType = "AB"
)

// PermitsMotorcycle reports whether the license class covers motorcycles.
// Only A and AB do.
func (l LicenseType) PermitsMotorcycle() bool {
	return l == LicenseTypeA || l == LicenseTypeAB
}

// Valid reports whether l is one of the known license classes.
func (l LicenseType) Valid() bool {
	switch l {
	case LicenseTypeNone, LicenseTypeA, LicenseTypeB, LicenseTypeAB:
		return true
	}
	return false
}

// DeliveryDriver is a courier account eligible to rent motorcycles when
// holding an A or AB license.
type DeliveryDriver struct {
	ID            uuid.UUID   `json:"id"`
	Name          string      `json:"name"`
	Email         string      `json:"email"`
	LicenseNumber string      `json:"license_number"`
	LicenseType   LicenseType `json:"license_type"`
	CreatedOn     time.Time   `json:"created_on"`
}
