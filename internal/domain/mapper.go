package domain

import (
	"learning-tracker/internal/repository/sqlite"
)

// TaskMapper handles conversion between domain and database Task models.
type TaskMapper struct{}

// ToDatabase converts a domain Task to a database Task.
func (m *TaskMapper) ToDatabase(task Task) sqlite.Task {
	return sqlite.Task{
		ID:         task.ID,
		Topic:      task.Topic,
		Subtopics:  task.Subtopics,
		DueDate:    sqlite.FormatDateForDB(task.DueDate),
		Status:     string(task.Status),
		Priority:   string(task.Priority),
		Progress:   int64(task.Progress),
		Category:   task.Category,
		Recurrence: string(task.Recurrence),
	}
}

// FromDatabase converts a database Task to a domain Task. Unknown enum
// values or malformed dates fail fast.
func (m *TaskMapper) FromDatabase(dbTask sqlite.Task) (Task, error) {
	dueDate, err := sqlite.ParseDateFromDB(dbTask.DueDate)
	if err != nil {
		return Task{}, err
	}
	status, err := ParseStatus(dbTask.Status)
	if err != nil {
		return Task{}, err
	}
	priority, err := ParsePriority(dbTask.Priority)
	if err != nil {
		return Task{}, err
	}
	recurrence, err := ParseRecurrence(dbTask.Recurrence)
	if err != nil {
		return Task{}, err
	}

	return Task{
		ID:         dbTask.ID,
		Topic:      dbTask.Topic,
		Subtopics:  dbTask.Subtopics,
		DueDate:    dueDate,
		Status:     status,
		Priority:   priority,
		Progress:   int(dbTask.Progress),
		Category:   dbTask.Category,
		Recurrence: recurrence,
	}, nil
}

// SlotMapper handles conversion between domain and database TimeSlot models.
type SlotMapper struct{}

// ToDatabase converts a domain TimeSlot to a database Slot.
func (m *SlotMapper) ToDatabase(slot TimeSlot) sqlite.Slot {
	return sqlite.Slot{
		ID:        slot.ID,
		Date:      sqlite.FormatDateForDB(slot.Date),
		StartTime: slot.Start.String(),
		EndTime:   slot.End.String(),
	}
}

// FromDatabase converts a database Slot to a domain TimeSlot.
func (m *SlotMapper) FromDatabase(dbSlot sqlite.Slot) (TimeSlot, error) {
	date, err := sqlite.ParseDateFromDB(dbSlot.Date)
	if err != nil {
		return TimeSlot{}, err
	}
	start, err := ParseClock(dbSlot.StartTime)
	if err != nil {
		return TimeSlot{}, err
	}
	end, err := ParseClock(dbSlot.EndTime)
	if err != nil {
		return TimeSlot{}, err
	}

	return TimeSlot{
		ID:    dbSlot.ID,
		Date:  date,
		Start: start,
		End:   end,
	}, nil
}

// FromDatabaseSlice converts a slice of database Slots to domain TimeSlots.
func (m *SlotMapper) FromDatabaseSlice(dbSlots []*sqlite.Slot) ([]TimeSlot, error) {
	slots := make([]TimeSlot, len(dbSlots))
	for i, dbSlot := range dbSlots {
		slot, err := m.FromDatabase(*dbSlot)
		if err != nil {
			return nil, err
		}
		slots[i] = slot
	}
	return slots, nil
}

// ScheduleMapper handles conversion between domain and database
// ScheduleEntry models.
type ScheduleMapper struct{}

// ToDatabase converts a domain ScheduleEntry to a database ScheduleEntry.
func (m *ScheduleMapper) ToDatabase(entry ScheduleEntry) sqlite.ScheduleEntry {
	return sqlite.ScheduleEntry{
		ID:       entry.ID,
		Date:     sqlite.FormatDateForDB(entry.Date),
		Slot:     entry.Slot,
		TaskID:   entry.TaskID,
		Subtopic: entry.Subtopic,
	}
}

// FromDatabase converts a database ScheduleEntry to a domain ScheduleEntry.
func (m *ScheduleMapper) FromDatabase(dbEntry sqlite.ScheduleEntry) (ScheduleEntry, error) {
	date, err := sqlite.ParseDateFromDB(dbEntry.Date)
	if err != nil {
		return ScheduleEntry{}, err
	}

	return ScheduleEntry{
		ID:       dbEntry.ID,
		Date:     date,
		Slot:     dbEntry.Slot,
		TaskID:   dbEntry.TaskID,
		Subtopic: dbEntry.Subtopic,
	}, nil
}

// TimeLogMapper handles conversion between domain and database TimeLog
// models.
type TimeLogMapper struct{}

// ToDatabase converts a domain TimeLog to a database TimeLog.
func (m *TimeLogMapper) ToDatabase(log TimeLog) sqlite.TimeLog {
	return sqlite.TimeLog{
		ID:               log.ID,
		TaskID:           log.TaskID,
		StartTime:        sqlite.FormatTimeForDB(log.StartTime),
		EndTime:          sqlite.FormatTimeForDB(log.EndTime),
		TimeSpentSeconds: log.SpentSeconds,
	}
}

// FromDatabase converts a database TimeLog to a domain TimeLog.
func (m *TimeLogMapper) FromDatabase(dbLog sqlite.TimeLog) (TimeLog, error) {
	start, err := sqlite.ParseTimeFromDB(dbLog.StartTime)
	if err != nil {
		return TimeLog{}, err
	}
	end, err := sqlite.ParseTimeFromDB(dbLog.EndTime)
	if err != nil {
		return TimeLog{}, err
	}

	return TimeLog{
		ID:           dbLog.ID,
		TaskID:       dbLog.TaskID,
		StartTime:    start,
		EndTime:      end,
		SpentSeconds: dbLog.TimeSpentSeconds,
	}, nil
}

// UserMapper handles conversion between domain and database User models.
type UserMapper struct{}

// ToDatabase converts a domain User to a database User.
func (m *UserMapper) ToDatabase(user User) sqlite.User {
	return sqlite.User{
		ID:           user.ID,
		Username:     user.Username,
		PasswordHash: user.PasswordHash,
	}
}

// FromDatabase converts a database User to a domain User.
func (m *UserMapper) FromDatabase(dbUser sqlite.User) User {
	return User{
		ID:           dbUser.ID,
		Username:     dbUser.Username,
		PasswordHash: dbUser.PasswordHash,
	}
}

// Mapper provides a unified interface for all mapping operations.
type Mapper struct {
	Task     *TaskMapper
	Slot     *SlotMapper
	Schedule *ScheduleMapper
	TimeLog  *TimeLogMapper
	User     *UserMapper
}

// NewMapper creates a new Mapper instance with all sub-mappers.
func NewMapper() *Mapper {
	return &Mapper{
		Task:     &TaskMapper{},
		Slot:     &SlotMapper{},
		Schedule: &ScheduleMapper{},
		TimeLog:  &TimeLogMapper{},
		User:     &UserMapper{},
	}
}
