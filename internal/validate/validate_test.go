package validate_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pkordes/decom-ledger/internal/domain"
	"github.com/pkordes/decom-ledger/internal/validate"
)

func validRecord() domain.Equipment {
	return domain.NewByTime("Drill", "12-345", "2020/01/01", "2021/01/01", "2022/01/01")
}

func TestValidator_Check(t *testing.T) {
	v := validate.New()

	tests := []struct {
		name   string
		mutate func(e *domain.Equipment)
		want   bool
	}{
		{"valid", func(e *domain.Equipment) {}, true},
		{"by reason is valid", func(e *domain.Equipment) { e.Kind = domain.KindByReason; e.Reason = "broken" }, true},
		{"serial too short", func(e *domain.Equipment) { e.SerialNumber = "1-345" }, false},
		{"serial letters", func(e *domain.Equipment) { e.SerialNumber = "ab-cde" }, false},
		{"serial empty", func(e *domain.Equipment) { e.SerialNumber = "" }, false},
		{"serial embedded in text", func(e *domain.Equipment) { e.SerialNumber = "SN 12-345 rev" }, true},
		{"registration date dashed", func(e *domain.Equipment) { e.RegistrationDate = "2020-01-01" }, false},
		{"registration date short year", func(e *domain.Equipment) { e.RegistrationDate = "99/99/99" }, false},
		{"maintenance date empty", func(e *domain.Equipment) { e.LastMaintenanceDate = "" }, false},
		{"no calendar check", func(e *domain.Equipment) { e.LastMaintenanceDate = "9999/99/99" }, true},
		{"decommission date is not checked", func(e *domain.Equipment) { e.DecommissionDate = "soon" }, true},
		{"name may be empty", func(e *domain.Equipment) { e.Name = "" }, true},
		{"unknown kind", func(e *domain.Equipment) { e.Kind = 0 }, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			e := validRecord()
			tc.mutate(&e)
			assert.Equal(t, tc.want, v.Check(e))
		})
	}
}
