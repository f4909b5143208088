package sqlite

// Scanner interface defines the common scanning behavior for both sql.Row
// and sql.Rows
type Scanner interface {
	Scan(dest ...interface{}) error
}

// Rows interface defines the common behavior for sql.Rows
type Rows interface {
	Next() bool
	Scan(dest ...interface{}) error
	Err() error
}

// ScanTask scans a single task from a database row
func ScanTask(scanner Scanner) (*Task, error) {
	task := &Task{}
	err := scanner.Scan(
		&task.ID,
		&task.Topic,
		&task.Subtopics,
		&task.DueDate,
		&task.Status,
		&task.Priority,
		&task.Progress,
		&task.Category,
		&task.Recurrence,
	)
	if err != nil {
		return nil, err
	}
	return task, nil
}

// ScanTasks scans multiple tasks from database rows
func ScanTasks(rows Rows) ([]*Task, error) {
	var tasks []*Task
	for rows.Next() {
		task, err := ScanTask(rows)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, task)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return tasks, nil
}

// ScanSlot scans a single slot from a database row
func ScanSlot(scanner Scanner) (*Slot, error) {
	slot := &Slot{}
	err := scanner.Scan(&slot.ID, &slot.Date, &slot.StartTime, &slot.EndTime)
	if err != nil {
		return nil, err
	}
	return slot, nil
}

// ScanSlots scans multiple slots from database rows
func ScanSlots(rows Rows) ([]*Slot, error) {
	var slots []*Slot
	for rows.Next() {
		slot, err := ScanSlot(rows)
		if err != nil {
			return nil, err
		}
		slots = append(slots, slot)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return slots, nil
}

// ScanScheduleEntry scans a single schedule entry from a database row
func ScanScheduleEntry(scanner Scanner) (*ScheduleEntry, error) {
	entry := &ScheduleEntry{}
	err := scanner.Scan(&entry.ID, &entry.Date, &entry.Slot, &entry.TaskID, &entry.Subtopic)
	if err != nil {
		return nil, err
	}
	return entry, nil
}

// ScanScheduleEntries scans multiple schedule entries from database rows
func ScanScheduleEntries(rows Rows) ([]*ScheduleEntry, error) {
	var entries []*ScheduleEntry
	for rows.Next() {
		entry, err := ScanScheduleEntry(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return entries, nil
}

// ScanTimeLog scans a single time log from a database row
func ScanTimeLog(scanner Scanner) (*TimeLog, error) {
	log := &TimeLog{}
	err := scanner.Scan(&log.ID, &log.TaskID, &log.StartTime, &log.EndTime, &log.TimeSpentSeconds)
	if err != nil {
		return nil, err
	}
	return log, nil
}

// ScanTimeLogs scans multiple time logs from database rows
func ScanTimeLogs(rows Rows) ([]*TimeLog, error) {
	var logs []*TimeLog
	for rows.Next() {
		log, err := ScanTimeLog(rows)
		if err != nil {
			return nil, err
		}
		logs = append(logs, log)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return logs, nil
}

// ScanUser scans a single user from a database row
func ScanUser(scanner Scanner) (*User, error) {
	user := &User{}
	err := scanner.Scan(&user.ID, &user.Username, &user.PasswordHash)
	if err != nil {
		return nil, err
	}
	return user, nil
}
