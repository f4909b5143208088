// Package export writes tasks and time logs as CSV.
package export

import (
	"encoding/csv"
	"io"
	"strconv"

	"learning-tracker/internal/domain"
	"learning-tracker/internal/errors"
)

// WriteTasks writes the given tasks as CSV with a header row.
func WriteTasks(w io.Writer, tasks []*domain.Task) error {
	writer := csv.NewWriter(w)

	header := []string{"id", "topic", "subtopics", "due_date", "status", "priority", "progress", "category", "recurrence"}
	if err := writer.Write(header); err != nil {
		return errors.WrapError(err, errors.ErrorTypeDatabase, "failed to write CSV header")
	}

	for _, task := range tasks {
		record := []string{
			strconv.FormatInt(task.ID, 10),
			task.Topic,
			task.Subtopics,
			task.DueDate.Format(domain.DateLayout),
			string(task.Status),
			string(task.Priority),
			strconv.Itoa(task.Progress),
			task.Category,
			string(task.Recurrence),
		}
		if err := writer.Write(record); err != nil {
			return errors.WrapError(err, errors.ErrorTypeDatabase, "failed to write CSV record")
		}
	}

	writer.Flush()
	return writer.Error()
}

// WriteTimeLogs writes the given time logs as CSV with a header row.
func WriteTimeLogs(w io.Writer, logs []domain.TimeLog) error {
	writer := csv.NewWriter(w)

	header := []string{"id", "task_id", "start_time", "end_time", "time_spent"}
	if err := writer.Write(header); err != nil {
		return errors.WrapError(err, errors.ErrorTypeDatabase, "failed to write CSV header")
	}

	for _, log := range logs {
		record := []string{
			strconv.FormatInt(log.ID, 10),
			strconv.FormatInt(log.TaskID, 10),
			log.StartTime.Format("2006-01-02 15:04:05"),
			log.EndTime.Format("2006-01-02 15:04:05"),
			domain.FormatSpent(log.SpentSeconds),
		}
		if err := writer.Write(record); err != nil {
			return errors.WrapError(err, errors.ErrorTypeDatabase, "failed to write CSV record")
		}
	}

	writer.Flush()
	return writer.Error()
}
