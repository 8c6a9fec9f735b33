package console

import (
	"errors"
	"strings"

	"github.com/pkordes/decom-ledger/internal/domain"
)

// validationText extracts the operator-facing part of a wrapped validation error.
// e.g. "service.EquipmentService.SaveRecord: validation error: invalid input, ..." → "invalid input, ..."
// For format failures the result is domain.ValidationMessage, which is also a
// translation key.
func validationText(err error) string {
	if err == nil {
		return ""
	}
	msg := err.Error()
	if !errors.Is(err, domain.ErrValidation) {
		return msg
	}
	marker := domain.ErrValidation.Error() + ": "
	if i := strings.Index(msg, marker); i >= 0 {
		return msg[i+len(marker):]
	}
	return msg
}
