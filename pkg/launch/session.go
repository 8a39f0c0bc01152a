package launch

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"
)

var (
	// ErrResumeFailed means the UI could not be rebuilt after a launch
	ErrResumeFailed = errors.New("failed to resume UI")
	// ErrBusy is returned when a launch is requested while one is in progress
	ErrBusy = errors.New("launch already in progress")
)

// State is a step in the suspend → run → resume sequence
type State int

const (
	StateIdle State = iota
	StateSuspended
	StateRunning
	StateResuming
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateSuspended:
		return "suspended"
	case StateRunning:
		return "running"
	case StateResuming:
		return "resuming"
	case StateFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Surface is the part of the UI torn down while an external program runs
type Surface interface {
	Suspend() error
	Resume() error
}

// Result describes one finished launch
type Result struct {
	Argv     []string
	Duration time.Duration
	// RunErr is the external command's failure, if any. It does not stop the UI from resuming.
	RunErr error
}

// Session runs bundles synchronously, suspending the surface for the
// duration of the external program
type Session struct {
	template string
	surface  Surface
	runner   Runner
	state    State
	last     Result

	// OnTransition, when set, observes every state change
	OnTransition func(from, to State)
}

// NewSession creates an idle session. A nil runner uses ExecRunner.
func NewSession(template string, surface Surface, runner Runner) *Session {
	if runner == nil {
		runner = ExecRunner{}
	}
	return &Session{
		template: template,
		surface:  surface,
		runner:   runner,
		state:    StateIdle,
	}
}

// State returns the current state
func (s *Session) State() State {
	return s.state
}

// LastResult returns the outcome of the most recent completed launch
func (s *Session) LastResult() Result {
	return s.last
}

// Launch suspends the surface, runs the command for bundlePath to
// completion and resumes the surface. Only a failed resume is returned as
// ErrResumeFailed, after which the session stays in StateFailed.
func (s *Session) Launch(ctx context.Context, bundlePath string) error {
	if s.state != StateIdle {
		return fmt.Errorf("%w (state %s)", ErrBusy, s.state)
	}

	argv, err := BuildCommand(s.template, bundlePath)
	if err != nil {
		return err
	}

	if err := s.surface.Suspend(); err != nil {
		log.Printf("Warning: suspend before launch failed: %v", err)
		if rerr := s.resume(); rerr != nil {
			return rerr
		}
		return fmt.Errorf("suspend UI: %w", err)
	}
	s.transition(StateSuspended)

	s.transition(StateRunning)
	log.Printf("Launching bundle | argv=%q", argv)
	start := time.Now()
	runErr := s.runner.Run(ctx, argv)
	s.last = Result{Argv: argv, Duration: time.Since(start), RunErr: runErr}
	if runErr != nil {
		log.Printf("Warning: bundle exited with error: %v", runErr)
	}
	log.Printf("Launch completed | bundle=%s | duration=%s", bundlePath, s.last.Duration.Round(time.Millisecond))

	return s.resume()
}

func (s *Session) resume() error {
	s.transition(StateResuming)
	if err := s.surface.Resume(); err != nil {
		s.transition(StateFailed)
		return fmt.Errorf("%w: %v", ErrResumeFailed, err)
	}
	s.transition(StateIdle)
	return nil
}

func (s *Session) transition(to State) {
	from := s.state
	s.state = to
	if s.OnTransition != nil {
		s.OnTransition(from, to)
	}
}
