package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"learning-tracker/internal/domain"
	"learning-tracker/internal/repository/sqlite"
)

// fakeGenerator returns canned text and records the last prompt
type fakeGenerator struct {
	response string
	err      error
	prompt   string
}

func (f *fakeGenerator) Complete(ctx context.Context, prompt string) (string, error) {
	f.prompt = prompt
	if f.err != nil {
		return "", f.err
	}
	return f.response, nil
}

func newTestRepo(t *testing.T) *sqlite.SQLiteRepository {
	t.Helper()
	repo, err := sqlite.New(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { repo.Close() })
	return repo
}

func createTestTask(t *testing.T, svc TaskService) *domain.Task {
	t.Helper()
	task, err := svc.CreateTask(context.Background(), TaskInput{
		Topic:      "Go fundamentals",
		Subtopics:  "variables, loops",
		DueDate:    "2026-04-01",
		Priority:   "High",
		Category:   "Programming",
		Recurrence: "None",
	})
	require.NoError(t, err)
	return task
}
