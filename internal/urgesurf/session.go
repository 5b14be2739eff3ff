// Package urgesurf models the "urge surfing" countdown: a fixed-length
// timer the user rides out instead of acting on a compulsion.
package urgesurf

import "time"

// DefaultDuration is the standard length of an urge-surf ride.
const DefaultDuration = 5 * time.Minute

// Session is a single countdown. It holds no ticker of its own; callers
// drive it with a clock value, which keeps it trivially testable and lets
// the TUI tick it from its own event loop.
type Session struct {
	duration  time.Duration
	startedAt time.Time
	active    bool
}

// New returns an inactive session. A non-positive duration falls back to
// DefaultDuration.
func New(duration time.Duration) *Session {
	if duration <= 0 {
		duration = DefaultDuration
	}
	return &Session{duration: duration}
}

// Duration returns the configured ride length.
func (s *Session) Duration() time.Duration {
	return s.duration
}

// Start begins the countdown at now. Starting an active session restarts it.
func (s *Session) Start(now time.Time) {
	s.startedAt = now
	s.active = true
}

// Stop ends the session early. Stopping an inactive session is a no-op.
func (s *Session) Stop() {
	s.active = false
}

// Active reports whether the countdown is running at now. A session whose
// time has fully elapsed is no longer active.
func (s *Session) Active(now time.Time) bool {
	return s.active && !s.Done(now)
}

// Done reports whether a started session has run its full duration.
func (s *Session) Done(now time.Time) bool {
	return s.active && !now.Before(s.startedAt.Add(s.duration))
}

// Remaining returns the time left at now, floored at zero.
func (s *Session) Remaining(now time.Time) time.Duration {
	if !s.active {
		return 0
	}
	remaining := s.duration - now.Sub(s.startedAt)
	if remaining < 0 {
		return 0
	}
	return remaining
}

// Progress returns the elapsed fraction in [0, 1] for progress bars.
func (s *Session) Progress(now time.Time) float64 {
	if !s.active || s.duration <= 0 {
		return 0
	}
	elapsed := float64(now.Sub(s.startedAt)) / float64(s.duration)
	if elapsed < 0 {
		return 0
	}
	if elapsed > 1 {
		return 1
	}
	return elapsed
}
