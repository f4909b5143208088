package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"learning-tracker/internal/errors"
	"learning-tracker/internal/repository/sqlite/migrations"

	_ "modernc.org/sqlite"
)

// Repository defines the interface for database operations
type Repository interface {
	// Task operations
	CreateTask(ctx context.Context, task *Task) error
	GetTask(ctx context.Context, id int64) (*Task, error)
	ListTasks(ctx context.Context) ([]*Task, error)
	ListTasksByStatus(ctx context.Context, status string) ([]*Task, error)
	UpdateTask(ctx context.Context, task *Task) error

	// Slot operations
	CreateSlot(ctx context.Context, slot *Slot) error
	ListSlotsByDate(ctx context.Context, date string) ([]*Slot, error)

	// Schedule operations
	CreateScheduleEntries(ctx context.Context, entries []*ScheduleEntry) error
	ListScheduleEntries(ctx context.Context) ([]*ScheduleEntry, error)
	ListScheduleEntriesByTask(ctx context.Context, taskID int64) ([]*ScheduleEntry, error)

	// Time log operations
	CreateTimeLog(ctx context.Context, log *TimeLog) error
	ListTimeLogs(ctx context.Context) ([]*TimeLog, error)
	ListTimeLogsByTask(ctx context.Context, taskID int64) ([]*TimeLog, error)

	// User operations
	CreateUser(ctx context.Context, user *User) error
	GetUserByUsername(ctx context.Context, username string) (*User, error)

	// Utility
	Close() error
}

// SQLiteRepository implements the Repository interface
type SQLiteRepository struct {
	db *sql.DB
}

// New creates a new SQLite repository instance
func New(dbPath string) (*SQLiteRepository, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, errors.NewDatabaseError("open database", err)
	}

	// A single connection keeps in-memory databases coherent and makes
	// the pragma below stick.
	db.SetMaxOpenConns(1)

	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		db.Close()
		return nil, errors.NewDatabaseError("enable foreign keys", err)
	}

	// Run migrations
	if err := migrations.RunMigrations(db); err != nil {
		db.Close()
		return nil, errors.NewDatabaseError("run migrations", err)
	}

	return &SQLiteRepository{db: db}, nil
}

// Close closes the database connection
func (r *SQLiteRepository) Close() error {
	return r.db.Close()
}

// CreateTask creates a new task
func (r *SQLiteRepository) CreateTask(ctx context.Context, task *Task) error {
	query := `
	INSERT INTO tasks (topic, subtopics, due_date, status, priority, progress, category, recurrence)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?)`

	id, err := ExecuteWithLastInsertID(ctx, r.db, query,
		task.Topic, task.Subtopics, task.DueDate, task.Status,
		task.Priority, task.Progress, task.Category, task.Recurrence)
	if err != nil {
		return err
	}

	task.ID = id
	return nil
}

// GetTask retrieves a task by ID
func (r *SQLiteRepository) GetTask(ctx context.Context, id int64) (*Task, error) {
	query := `
	SELECT id, topic, subtopics, due_date, status, priority, progress, category, recurrence
	FROM tasks
	WHERE id = ?`

	return QuerySingle(ctx, r.db, query, ScanTask, "task", fmt.Sprintf("%d", id), id)
}

// ListTasks retrieves all tasks ordered by priority, highest first
func (r *SQLiteRepository) ListTasks(ctx context.Context) ([]*Task, error) {
	query := `
	SELECT id, topic, subtopics, due_date, status, priority, progress, category, recurrence
	FROM tasks
	ORDER BY CASE priority WHEN 'High' THEN 0 WHEN 'Medium' THEN 1 ELSE 2 END, id ASC`

	return QueryMultiple(ctx, r.db, query, ScanTasks, "tasks")
}

// ListTasksByStatus retrieves all tasks with the given status ordered by
// priority, highest first
func (r *SQLiteRepository) ListTasksByStatus(ctx context.Context, status string) ([]*Task, error) {
	query := `
	SELECT id, topic, subtopics, due_date, status, priority, progress, category, recurrence
	FROM tasks
	WHERE status = ?
	ORDER BY CASE priority WHEN 'High' THEN 0 WHEN 'Medium' THEN 1 ELSE 2 END, id ASC`

	return QueryMultiple(ctx, r.db, query, ScanTasks, "tasks", status)
}

// UpdateTask updates an existing task
func (r *SQLiteRepository) UpdateTask(ctx context.Context, task *Task) error {
	query := `
	UPDATE tasks
	SET topic = ?, subtopics = ?, due_date = ?, status = ?, priority = ?, progress = ?, category = ?, recurrence = ?
	WHERE id = ?`

	return ExecuteWithRowsAffected(ctx, r.db, query, "task", fmt.Sprintf("%d", task.ID),
		task.Topic, task.Subtopics, task.DueDate, task.Status,
		task.Priority, task.Progress, task.Category, task.Recurrence, task.ID)
}

// CreateSlot creates a new time slot
func (r *SQLiteRepository) CreateSlot(ctx context.Context, slot *Slot) error {
	query := `INSERT INTO slots (date, start_time, end_time) VALUES (?, ?, ?)`

	id, err := ExecuteWithLastInsertID(ctx, r.db, query, slot.Date, slot.StartTime, slot.EndTime)
	if err != nil {
		return err
	}

	slot.ID = id
	return nil
}

// ListSlotsByDate retrieves all slots for a date ordered by start time
func (r *SQLiteRepository) ListSlotsByDate(ctx context.Context, date string) ([]*Slot, error) {
	query := `
	SELECT id, date, start_time, end_time
	FROM slots
	WHERE date = ?
	ORDER BY start_time ASC`

	return QueryMultiple(ctx, r.db, query, ScanSlots, "slots", date)
}

// CreateScheduleEntries persists all entries of one allocation round inside
// a single transaction. Either every entry is saved or none are.
func (r *SQLiteRepository) CreateScheduleEntries(ctx context.Context, entries []*ScheduleEntry) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return errors.NewDatabaseError("begin transaction", err)
	}

	query := `INSERT INTO schedule (date, slot, task_id, subtopic) VALUES (?, ?, ?, ?)`
	for _, entry := range entries {
		result, err := tx.ExecContext(ctx, query, entry.Date, entry.Slot, entry.TaskID, entry.Subtopic)
		if err != nil {
			tx.Rollback()
			return HandleDatabaseError("insert schedule entry", err)
		}
		id, err := result.LastInsertId()
		if err != nil {
			tx.Rollback()
			return errors.NewDatabaseError("get last insert ID", err)
		}
		entry.ID = id
	}

	if err := tx.Commit(); err != nil {
		return errors.NewDatabaseError("commit schedule entries", err)
	}
	return nil
}

// ListScheduleEntries retrieves all schedule entries ordered by date and id
func (r *SQLiteRepository) ListScheduleEntries(ctx context.Context) ([]*ScheduleEntry, error) {
	query := `
	SELECT id, date, slot, task_id, subtopic
	FROM schedule
	ORDER BY date ASC, id ASC`

	return QueryMultiple(ctx, r.db, query, ScanScheduleEntries, "schedule entries")
}

// ListScheduleEntriesByTask retrieves the schedule entries for a task in
// insertion order
func (r *SQLiteRepository) ListScheduleEntriesByTask(ctx context.Context, taskID int64) ([]*ScheduleEntry, error) {
	query := `
	SELECT id, date, slot, task_id, subtopic
	FROM schedule
	WHERE task_id = ?
	ORDER BY id ASC`

	return QueryMultiple(ctx, r.db, query, ScanScheduleEntries, "schedule entries", taskID)
}

// CreateTimeLog creates a new time log
func (r *SQLiteRepository) CreateTimeLog(ctx context.Context, log *TimeLog) error {
	query := `
	INSERT INTO time_logs (task_id, start_time, end_time, time_spent_seconds)
	VALUES (?, ?, ?, ?)`

	id, err := ExecuteWithLastInsertID(ctx, r.db, query,
		log.TaskID, log.StartTime, log.EndTime, log.TimeSpentSeconds)
	if err != nil {
		return err
	}

	log.ID = id
	return nil
}

// ListTimeLogs retrieves all time logs ordered by start time
func (r *SQLiteRepository) ListTimeLogs(ctx context.Context) ([]*TimeLog, error) {
	query := `
	SELECT id, task_id, start_time, end_time, time_spent_seconds
	FROM time_logs
	ORDER BY start_time ASC`

	return QueryMultiple(ctx, r.db, query, ScanTimeLogs, "time logs")
}

// ListTimeLogsByTask retrieves the time logs for a task ordered by start time
func (r *SQLiteRepository) ListTimeLogsByTask(ctx context.Context, taskID int64) ([]*TimeLog, error) {
	query := `
	SELECT id, task_id, start_time, end_time, time_spent_seconds
	FROM time_logs
	WHERE task_id = ?
	ORDER BY start_time ASC`

	return QueryMultiple(ctx, r.db, query, ScanTimeLogs, "time logs", taskID)
}

// CreateUser creates a new user. A duplicate username surfaces as a
// validation error via the unique constraint handling.
func (r *SQLiteRepository) CreateUser(ctx context.Context, user *User) error {
	query := `INSERT INTO users (username, password_hash) VALUES (?, ?)`

	id, err := ExecuteWithLastInsertID(ctx, r.db, query, user.Username, user.PasswordHash)
	if err != nil {
		return err
	}

	user.ID = id
	return nil
}

// GetUserByUsername retrieves a user by username
func (r *SQLiteRepository) GetUserByUsername(ctx context.Context, username string) (*User, error) {
	query := `SELECT id, username, password_hash FROM users WHERE username = ?`
	return QuerySingle(ctx, r.db, query, ScanUser, "user", username, username)
}
