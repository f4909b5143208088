package services

import (
	"context"

	"github.com/google/uuid"

	"learning-tracker/internal/errors"
	"learning-tracker/internal/genai"
	"learning-tracker/internal/logging"
	"learning-tracker/internal/quiz"
)

// quizServiceImpl implements the QuizService interface
type quizServiceImpl struct {
	generator    genai.Generator
	taskService  TaskService
	defaultCount int
	maxCount     int
}

// NewQuizService creates a new QuizService instance
func NewQuizService(generator genai.Generator, taskService TaskService, defaultCount, maxCount int) QuizService {
	return &quizServiceImpl{
		generator:    generator,
		taskService:  taskService,
		defaultCount: defaultCount,
		maxCount:     maxCount,
	}
}

// GenerateQuiz generates a quiz for a completed task. A count of zero uses
// the configured default; counts above the configured maximum are rejected.
func (q *quizServiceImpl) GenerateQuiz(ctx context.Context, taskID int64, count int) (*QuizSession, error) {
	if count == 0 {
		count = q.defaultCount
	}
	if count < 0 || count > q.maxCount {
		return nil, errors.NewValidationError("invalid question count", nil).
			WithContext("count", count).
			WithContext("max", q.maxCount)
	}

	task, err := q.taskService.GetTask(ctx, taskID)
	if err != nil {
		return nil, err
	}
	if !task.IsCompleted() {
		return nil, errors.NewStateError("quiz is only available for completed tasks")
	}

	text, err := q.generator.Complete(ctx, genai.QuizPrompt(*task, count))
	if err != nil {
		return nil, err
	}

	questions := quiz.Parse(text)
	if len(questions) == 0 {
		return nil, errors.NewGenerationError("generated text contained no questions", nil)
	}
	logging.Debugf("quiz for task %d parsed %d questions\n", taskID, len(questions))

	return &QuizSession{
		ID:        uuid.New().String(),
		TaskID:    taskID,
		Questions: questions,
	}, nil
}

// EvaluateQuiz scores the answers of one sitting against the session's
// questions. Pure and repeatable for the same inputs.
func (q *quizServiceImpl) EvaluateQuiz(session *QuizSession, answers []string) quiz.Result {
	return quiz.Evaluate(session.Questions, answers)
}
