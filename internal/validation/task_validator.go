package validation

import (
	"learning-tracker/internal/domain"
)

// TaskValidator provides validation for Task-related operations
type TaskValidator struct {
	validator *Validator
}

// NewTaskValidator creates a new task validator
func NewTaskValidator() *TaskValidator {
	return &TaskValidator{
		validator: NewValidator(),
	}
}

// ValidateTopic validates a task topic for creation or update
func (tv *TaskValidator) ValidateTopic(topic string) error {
	validationError := NewValidationError()

	trimmed := tv.validator.TrimAndValidateString(topic)
	if !tv.validator.IsNonEmptyString(trimmed) {
		validationError.AddRequiredError("topic")
		return validationError
	}

	if !tv.validator.IsValidStringLength(trimmed, 1, 255) {
		validationError.AddInvalidLengthError("topic", trimmed, 1, 255)
	}

	if validationError.HasErrors() {
		return validationError
	}

	return nil
}

// ValidateTaskForCreation validates the raw fields of a new task
func (tv *TaskValidator) ValidateTaskForCreation(topic, dueDate, priority, recurrence string) error {
	validationError := NewValidationError()

	if topicErr := tv.ValidateTopic(topic); topicErr != nil {
		if topicValidationErr, ok := topicErr.(*ValidationError); ok {
			validationError.Errors = append(validationError.Errors, topicValidationErr.Errors...)
		}
	}

	if !tv.validator.IsNonEmptyString(dueDate) {
		validationError.AddRequiredError("due_date")
	} else if !tv.validator.IsValidDate(dueDate) {
		validationError.AddInvalidFormatError("due_date", dueDate, domain.DateLayout)
	}

	if _, err := domain.ParsePriority(priority); err != nil {
		validationError.AddInvalidValueError("priority", priority, "must be Low, Medium or High")
	}

	if _, err := domain.ParseRecurrence(recurrence); err != nil {
		validationError.AddInvalidValueError("recurrence", recurrence, "must be None, Daily, Weekly or Monthly")
	}

	if validationError.HasErrors() {
		return validationError
	}

	return nil
}

// ValidateTask validates a domain.Task object
func (tv *TaskValidator) ValidateTask(task domain.Task) error {
	validationError := NewValidationError()

	if topicErr := tv.ValidateTopic(task.Topic); topicErr != nil {
		if topicValidationErr, ok := topicErr.(*ValidationError); ok {
			validationError.Errors = append(validationError.Errors, topicValidationErr.Errors...)
		}
	}

	if task.DueDate.IsZero() {
		validationError.AddRequiredError("due_date")
	}

	if !tv.validator.IsValidProgress(task.Progress) {
		validationError.AddInvalidRangeError("progress", task.Progress, "must be between 0 and 100")
	}

	if task.ID != 0 && !tv.validator.IsValidTaskID(task.ID) {
		validationError.AddInvalidValueError("task_id", task.ID, "must be a positive integer")
	}

	if validationError.HasErrors() {
		return validationError
	}

	return nil
}

// ValidateTaskID validates a task ID
func (tv *TaskValidator) ValidateTaskID(id int64) error {
	if !tv.validator.IsValidTaskID(id) {
		validationError := NewValidationError()
		validationError.AddInvalidValueError("task_id", id, "must be a positive integer")
		return validationError
	}
	return nil
}

// ValidateProgress validates a progress percentage
func (tv *TaskValidator) ValidateProgress(progress int) error {
	if !tv.validator.IsValidProgress(progress) {
		validationError := NewValidationError()
		validationError.AddInvalidRangeError("progress", progress, "must be between 0 and 100")
		return validationError
	}
	return nil
}
