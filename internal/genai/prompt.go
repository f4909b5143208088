package genai

import (
	"fmt"
	"strings"

	"learning-tracker/internal/domain"
)

// SchedulePrompt asks for a study plan as a pipe-delimited table so the
// allocator can parse the response with the plan package.
func SchedulePrompt(task domain.Task, slots []domain.TimeSlot) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Create a study schedule for the topic %q.\n", task.Topic)
	if strings.TrimSpace(task.Subtopics) != "" {
		fmt.Fprintf(&b, "Cover these subtopics: %s.\n", task.Subtopics)
	}
	if strings.TrimSpace(task.Category) != "" {
		fmt.Fprintf(&b, "The category is %s.\n", task.Category)
	}
	fmt.Fprintf(&b, "The task is due on %s.\n", task.DueDate.Format(domain.DateLayout))

	if len(slots) > 0 {
		b.WriteString("Available time slots:\n")
		for _, slot := range slots {
			fmt.Fprintf(&b, "- %s on %s\n", slot.Label(), slot.Date.Format(domain.DateLayout))
		}
	}

	b.WriteString("\nRespond with a table with exactly these columns:\n")
	b.WriteString("| Subtopic | Duration | Suggested Slot |\n")
	b.WriteString("One row per subtopic, no other tables in the response.")

	return b.String()
}

// InsightsPrompt asks for productivity insights over the recorded tasks
// and time logs.
func InsightsPrompt(tasks []domain.Task, logs []domain.TimeLog) string {
	var b strings.Builder

	b.WriteString("Analyze the following task and time tracking data to provide insights:\n\n")

	b.WriteString("Tasks:\n")
	for _, task := range tasks {
		fmt.Fprintf(&b, "Task: %s, Due: %s, Status: %s, Priority: %s, Progress: %d%%\n",
			task.Topic, task.DueDate.Format(domain.DateLayout), task.Status, task.Priority, task.Progress)
	}

	b.WriteString("\nTime Logs:\n")
	for _, log := range logs {
		fmt.Fprintf(&b, "Task ID: %d, Time Spent: %d seconds\n", log.TaskID, log.SpentSeconds)
	}

	b.WriteString("\nProvide insights on:\n")
	b.WriteString("1. Peak productivity hours.\n")
	b.WriteString("2. Frequently missed deadlines.\n")
	b.WriteString("3. Suggestions for improving task completion.")

	return b.String()
}

// QuizPrompt asks for a quiz in the numbered block format the quiz parser
// understands.
func QuizPrompt(task domain.Task, count int) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Generate %d quiz questions about %q.\n", count, task.Topic)
	if strings.TrimSpace(task.Subtopics) != "" {
		fmt.Fprintf(&b, "Focus on these subtopics: %s.\n", task.Subtopics)
	}

	b.WriteString("Mix multiple choice and open-ended questions.\n")
	b.WriteString("Use exactly this format for every question:\n\n")
	b.WriteString("1. Question: <question text>\n")
	b.WriteString("Type: Multiple Choice or Open-ended\n")
	b.WriteString("Options: A) <option>, B) <option>, C) <option> (multiple choice only)\n")
	b.WriteString("Answer: <correct answer>\n")
	b.WriteString("Explanation: <one sentence explanation>")

	return b.String()
}
