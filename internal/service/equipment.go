// Package service contains the business logic for the equipment ledger.
// Services validate inputs, enforce business rules, and delegate to a store.
// No storage code lives here: services depend on repo.RecordStore, not an implementation.
package service

import (
	"cmp"
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/pkordes/decom-ledger/internal/domain"
	"github.com/pkordes/decom-ledger/internal/repo"
	"github.com/pkordes/decom-ledger/internal/validate"
)

// EquipmentService implements the validate-then-delegate operations the console
// calls. Each operation is a single step; there is no multi-step protocol.
type EquipmentService struct {
	store     repo.RecordStore
	validator *validate.Validator
}

// NewEquipmentService constructs an EquipmentService backed by the provided store.
func NewEquipmentService(store repo.RecordStore, v *validate.Validator) *EquipmentService {
	return &EquipmentService{store: store, validator: v}
}

// SaveRecord validates e and persists it, assigning an identifier when e has none.
// Returns domain.ErrValidation (with domain.ValidationMessage) if a format check
// fails; the store is not touched in that case.
func (s *EquipmentService) SaveRecord(ctx context.Context, e domain.Equipment) (domain.Equipment, error) {
	return s.persist(ctx, "SaveRecord", e)
}

// UpdateRecord validates e and overwrites the stored record with the same identifier.
// It shares every rule with SaveRecord; only the caller's intent differs.
// Returns domain.ErrNotFound if the identifier is not live.
func (s *EquipmentService) UpdateRecord(ctx context.Context, e domain.Equipment) (domain.Equipment, error) {
	return s.persist(ctx, "UpdateRecord", e)
}

// DeleteRecord removes a record and reports whether one was removed.
func (s *EquipmentService) DeleteRecord(ctx context.Context, id int) (bool, error) {
	ok, err := s.store.Delete(ctx, id)
	if err != nil {
		return false, fmt.Errorf("service.EquipmentService.DeleteRecord: %w", err)
	}
	return ok, nil
}

// GetRecord returns a single record by identifier.
// Returns domain.ErrNotFound if no record has that identifier.
func (s *EquipmentService) GetRecord(ctx context.Context, id int) (domain.Equipment, error) {
	e, err := s.store.Get(ctx, id)
	if err != nil {
		return domain.Equipment{}, fmt.Errorf("service.EquipmentService.GetRecord: %w", err)
	}
	return e, nil
}

// ListRecords returns every record ordered by name, then serial number.
// Both keys compare bytewise and ascending; ties keep the store's order.
// Always returns a non-nil slice so callers can safely range over it.
func (s *EquipmentService) ListRecords(ctx context.Context) ([]domain.Equipment, error) {
	records, err := s.store.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("service.EquipmentService.ListRecords: %w", err)
	}
	if records == nil {
		return []domain.Equipment{}, nil
	}

	slices.SortStableFunc(records, func(a, b domain.Equipment) int {
		return cmp.Or(
			strings.Compare(a.Name, b.Name),
			strings.Compare(a.SerialNumber, b.SerialNumber),
		)
	})
	return records, nil
}

// persist is the shared body of SaveRecord and UpdateRecord.
// A record that already has an identifier must keep the variant it was created with.
func (s *EquipmentService) persist(ctx context.Context, op string, e domain.Equipment) (domain.Equipment, error) {
	if !s.validator.Check(e) {
		return domain.Equipment{}, fmt.Errorf("service.EquipmentService.%s: %w: %s", op, domain.ErrValidation, domain.ValidationMessage)
	}

	if e.ID != 0 {
		existing, err := s.store.Get(ctx, e.ID)
		if err != nil {
			return domain.Equipment{}, fmt.Errorf("service.EquipmentService.%s: %w", op, err)
		}
		if existing.Kind != e.Kind {
			return domain.Equipment{}, fmt.Errorf("service.EquipmentService.%s: %w: record %d is %s and cannot become %s",
				op, domain.ErrValidation, e.ID, existing.Kind, e.Kind)
		}
	}

	saved, err := s.store.Save(ctx, e)
	if err != nil {
		return domain.Equipment{}, fmt.Errorf("service.EquipmentService.%s: %w", op, err)
	}
	return saved, nil
}
