package services

import (
	"context"
	"strings"

	"learning-tracker/internal/domain"
	"learning-tracker/internal/errors"
	"learning-tracker/internal/genai"
)

// insightServiceImpl implements the InsightService interface
type insightServiceImpl struct {
	generator    genai.Generator
	taskService  TaskService
	timerService TimerService
}

// NewInsightService creates a new InsightService instance
func NewInsightService(generator genai.Generator, taskService TaskService, timerService TimerService) InsightService {
	return &insightServiceImpl{
		generator:    generator,
		taskService:  taskService,
		timerService: timerService,
	}
}

// GenerateInsights feeds all recorded tasks and time logs to the generator
// and returns its analysis. Both data sets must be non-empty; there is
// nothing to analyze otherwise.
func (s *insightServiceImpl) GenerateInsights(ctx context.Context) (string, error) {
	taskPtrs, err := s.taskService.ListTasks(ctx)
	if err != nil {
		return "", err
	}

	logs, err := s.timerService.ListLogs(ctx)
	if err != nil {
		return "", err
	}

	if len(taskPtrs) == 0 || len(logs) == 0 {
		return "", errors.NewStateError("no task or time log data available for insights")
	}

	tasks := make([]domain.Task, 0, len(taskPtrs))
	for _, task := range taskPtrs {
		tasks = append(tasks, *task)
	}

	text, err := s.generator.Complete(ctx, genai.InsightsPrompt(tasks, logs))
	if err != nil {
		return "", err
	}

	return strings.TrimSpace(text), nil
}
