package validation

import (
	"learning-tracker/internal/domain"
)

// SlotValidator provides validation for time slot operations
type SlotValidator struct {
	validator *Validator
}

// NewSlotValidator creates a new slot validator
func NewSlotValidator() *SlotValidator {
	return &SlotValidator{
		validator: NewValidator(),
	}
}

// ValidateSlotInput validates the raw fields of a new time slot
func (sv *SlotValidator) ValidateSlotInput(date, start, end string) error {
	validationError := NewValidationError()

	if !sv.validator.IsNonEmptyString(date) {
		validationError.AddRequiredError("date")
	} else if !sv.validator.IsValidDate(date) {
		validationError.AddInvalidFormatError("date", date, domain.DateLayout)
	}

	if !sv.validator.IsNonEmptyString(start) {
		validationError.AddRequiredError("start_time")
	} else if !sv.validator.IsValidClock(start) {
		validationError.AddInvalidFormatError("start_time", start, domain.ClockLayout)
	}

	if !sv.validator.IsNonEmptyString(end) {
		validationError.AddRequiredError("end_time")
	} else if !sv.validator.IsValidClock(end) {
		validationError.AddInvalidFormatError("end_time", end, domain.ClockLayout)
	}

	if validationError.HasErrors() {
		return validationError
	}

	return nil
}

// ValidateSlot validates a domain.TimeSlot object
func (sv *SlotValidator) ValidateSlot(slot domain.TimeSlot) error {
	validationError := NewValidationError()

	if slot.Date.IsZero() {
		validationError.AddRequiredError("date")
	}

	if slot.Start >= slot.End {
		validationError.AddInvalidRangeError("start_time", slot.Start.String(), "must be before end time")
	}

	if validationError.HasErrors() {
		return validationError
	}

	return nil
}
