// Package domain contains the core data types for the equipment ledger.
// This package has zero external dependencies and is imported by every other
// internal package (repo, validate, service, console).
package domain

import "fmt"

// Kind is the variant tag of an Equipment record.
// It is fixed when the record is constructed and survives every update.
type Kind int

const (
	// KindByTime marks equipment decommissioned because its service life ran out.
	KindByTime Kind = iota + 1
	// KindByReason marks equipment decommissioned for some other, stated reason.
	KindByReason
)

// String returns the stable storage name of the kind.
func (k Kind) String() string {
	switch k {
	case KindByTime:
		return "by_time"
	case KindByReason:
		return "by_reason"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Valid reports whether k is one of the known variants.
func (k Kind) Valid() bool {
	return k == KindByTime || k == KindByReason
}

// ParseKind is the inverse of Kind.String.
func ParseKind(s string) (Kind, error) {
	switch s {
	case "by_time":
		return KindByTime, nil
	case "by_reason":
		return KindByReason, nil
	default:
		return 0, fmt.Errorf("unknown equipment kind %q", s)
	}
}

// Equipment is one decommissioned equipment record.
// The variant payload is selected by Kind: Reason is only meaningful for
// KindByReason and is left empty for KindByTime.
//
// Dates are kept as the operator typed them. Only their shape is checked,
// never their calendar validity.
type Equipment struct {
	ID                  int    // 0 until the first successful save
	Kind                Kind   `validate:"oneof=1 2"`
	Name                string
	SerialNumber        string `validate:"serial"`
	RegistrationDate    string `validate:"ymd"`
	LastMaintenanceDate string `validate:"ymd"`
	DecommissionDate    string
	Reason              string
}

// NewByTime builds an unsaved record decommissioned by time.
func NewByTime(name, serial, registered, lastMaintenance, decommissioned string) Equipment {
	return Equipment{
		Kind:                KindByTime,
		Name:                name,
		SerialNumber:        serial,
		RegistrationDate:    registered,
		LastMaintenanceDate: lastMaintenance,
		DecommissionDate:    decommissioned,
	}
}

// NewByReason builds an unsaved record decommissioned for the given reason.
func NewByReason(name, serial, registered, lastMaintenance, decommissioned, reason string) Equipment {
	return Equipment{
		Kind:                KindByReason,
		Name:                name,
		SerialNumber:        serial,
		RegistrationDate:    registered,
		LastMaintenanceDate: lastMaintenance,
		DecommissionDate:    decommissioned,
		Reason:              reason,
	}
}
