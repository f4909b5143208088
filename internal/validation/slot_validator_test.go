package validation

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"learning-tracker/internal/domain"
)

func TestSlotValidator_ValidateSlotInput(t *testing.T) {
	slotValidator := NewSlotValidator()

	t.Run("should accept valid fields", func(t *testing.T) {
		assert.NoError(t, slotValidator.ValidateSlotInput("2026-04-01", "09:00", "09:30"))
	})

	t.Run("should require all fields", func(t *testing.T) {
		err := slotValidator.ValidateSlotInput("", "", "")
		require.Error(t, err)

		validationError, ok := err.(*ValidationError)
		require.True(t, ok)
		assert.Len(t, validationError.Errors, 3)
		for _, fieldError := range validationError.Errors {
			assert.Equal(t, ErrorTypeRequired, fieldError.Type)
		}
	})

	t.Run("should reject malformed times", func(t *testing.T) {
		err := slotValidator.ValidateSlotInput("2026-04-01", "9am", "25:00")
		require.Error(t, err)

		validationError, ok := err.(*ValidationError)
		require.True(t, ok)
		assert.Len(t, validationError.GetFieldErrors("start_time"), 1)
		assert.Len(t, validationError.GetFieldErrors("end_time"), 1)
	})
}

func TestSlotValidator_ValidateSlot(t *testing.T) {
	slotValidator := NewSlotValidator()
	date := time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC)

	t.Run("should accept a well formed slot", func(t *testing.T) {
		slot := domain.NewTimeSlot(date, 9*60, 9*60+30)
		assert.NoError(t, slotValidator.ValidateSlot(slot))
	})

	t.Run("should reject start at or after end", func(t *testing.T) {
		for _, slot := range []domain.TimeSlot{
			domain.NewTimeSlot(date, 9*60, 9*60),
			domain.NewTimeSlot(date, 10*60, 9*60),
		} {
			err := slotValidator.ValidateSlot(slot)
			require.Error(t, err)

			validationError, ok := err.(*ValidationError)
			require.True(t, ok)
			assert.Equal(t, ErrorTypeInvalidRange, validationError.Errors[0].Type)
		}
	})

	t.Run("should require a date", func(t *testing.T) {
		slot := domain.NewTimeSlot(time.Time{}, 9*60, 9*60+30)

		err := slotValidator.ValidateSlot(slot)
		require.Error(t, err)
	})
}
