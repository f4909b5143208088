package services

// completionPoints is the award for finishing a task.
const completionPoints = 10

// Session holds per-session state that is never persisted, currently the
// gamification points earned since the session began. It is an explicit
// object so callers decide its lifetime instead of relying on
// process-global counters.
type Session struct {
	points int
}

// NewSession creates a session with zero points.
func NewSession() *Session {
	return &Session{}
}

// Points returns the points earned so far in this session.
func (s *Session) Points() int {
	return s.points
}

// AwardCompletion adds the task completion award and returns the new total.
func (s *Session) AwardCompletion() int {
	s.points += completionPoints
	return s.points
}
