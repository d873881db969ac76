package game

import (
	"time"

	"organelle-quiz-service/internal/domain"
)

// runTimer drives the one-second countdown for a single round. The epoch
// it was armed with is its cancellation token: every round transition and
// phase change bumps the session epoch, so a stale timer discovers on its
// next tick that it belongs to a finished round and exits.
func (s *Session) runTimer(epoch int) {
	ticker := time.NewTicker(s.tick)
	defer ticker.Stop()
	for range ticker.C {
		if !s.tickOnce(epoch) {
			return
		}
	}
}

// tickOnce applies one timer tick and reports whether the timer should
// keep running. While feedback is displayed the countdown is paused, not
// reset. Reaching zero force-submits whatever answer state is held; an
// empty submission is judged incorrect, never skipped.
func (s *Session) tickOnce(epoch int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if epoch != s.timerEpoch || s.phase != domain.PhasePlaying {
		return false
	}
	if s.feedback != nil {
		return true
	}
	if s.timeLeft > 0 {
		s.timeLeft--
	}
	if s.timeLeft <= 0 {
		s.submitLocked(s.heldAnswer)
		s.broadcastLocked()
		return false
	}
	s.broadcastLocked()
	return true
}
