package services

import (
	"context"
	"fmt"
	"time"

	"learning-tracker/internal/domain"
	"learning-tracker/internal/errors"
	"learning-tracker/internal/repository/sqlite"
	"learning-tracker/internal/validation"
)

// slotServiceImpl implements the SlotService interface
type slotServiceImpl struct {
	repo          sqlite.Repository
	mapper        *domain.Mapper
	slotValidator *validation.SlotValidator
}

// NewSlotService creates a new SlotService instance
func NewSlotService(repo sqlite.Repository) SlotService {
	return &slotServiceImpl{
		repo:          repo,
		mapper:        domain.NewMapper(),
		slotValidator: validation.NewSlotValidator(),
	}
}

// AddSlot validates and stores a new slot. A slot overlapping an existing
// slot on the same date is rejected as a conflict; slots that merely touch
// at an endpoint are fine.
func (s *slotServiceImpl) AddSlot(ctx context.Context, date, start, end string) (*domain.TimeSlot, error) {
	if err := s.slotValidator.ValidateSlotInput(date, start, end); err != nil {
		return nil, errors.NewValidationError("invalid slot", err)
	}

	slotDate, err := time.Parse(domain.DateLayout, date)
	if err != nil {
		return nil, errors.NewValidationError("invalid slot date", err)
	}
	startClock, err := domain.ParseClock(start)
	if err != nil {
		return nil, errors.NewValidationError("invalid start time", err)
	}
	endClock, err := domain.ParseClock(end)
	if err != nil {
		return nil, errors.NewValidationError("invalid end time", err)
	}

	slot := domain.NewTimeSlot(slotDate, startClock, endClock)
	if err := s.slotValidator.ValidateSlot(slot); err != nil {
		return nil, errors.NewValidationError("invalid slot", err)
	}

	existing, err := s.SlotsForDate(ctx, date)
	if err != nil {
		return nil, err
	}
	if !domain.IsAvailable(existing, slot) {
		return nil, errors.NewConflictError("slot",
			fmt.Sprintf("%s overlaps an existing slot on %s", slot.Label(), date))
	}

	dbSlot := s.mapper.Slot.ToDatabase(slot)
	if err := s.repo.CreateSlot(ctx, &dbSlot); err != nil {
		return nil, err
	}

	slot.ID = dbSlot.ID
	return &slot, nil
}

// SlotsForDate lists the slots of a date ordered by start time
func (s *slotServiceImpl) SlotsForDate(ctx context.Context, date string) ([]domain.TimeSlot, error) {
	dbSlots, err := s.repo.ListSlotsByDate(ctx, date)
	if err != nil {
		return nil, err
	}

	slots, err := s.mapper.Slot.FromDatabaseSlice(dbSlots)
	if err != nil {
		return nil, errors.NewDatabaseError("map slots", err)
	}
	return slots, nil
}
