// Package genai provides the text-generation collaborator used by the
// schedule allocator and the quiz engine.
package genai

import "context"

// Generator produces text for a prompt. Implementations block until the
// full response is available; there is no streaming.
type Generator interface {
	Complete(ctx context.Context, prompt string) (string, error)
}
