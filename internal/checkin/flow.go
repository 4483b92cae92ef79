package checkin

import (
	"context"
	"errors"
	"fmt"
	"sync"
)

const (
	MinJoyScore = 1
	MaxJoyScore = 5
)

var (
	ErrSubmitInFlight     = errors.New("a check-in submission is already in flight")
	ErrJoyScoreOutOfRange = errors.New("joy score must be between 1 and 5")
)

// Service is the slice of the API client the flow needs.
type Service interface {
	SubmitCheckin(ctx context.Context, childID, joyScore int, notes string) error
}

// Flow holds the joy score and notes as the user edits them, and contacts
// the server only on an explicit Submit. One submission at a time: the
// trigger is rejected while a previous one is outstanding.
type Flow struct {
	svc     Service
	childID int

	mu         sync.Mutex
	joyScore   int
	notes      string
	submitting bool
	successMsg string
	errorMsg   string
}

func NewFlow(svc Service, childID int) *Flow {
	return &Flow{
		svc:      svc,
		childID:  childID,
		joyScore: 3,
	}
}

func (f *Flow) SetJoyScore(score int) error {
	if score < MinJoyScore || score > MaxJoyScore {
		return fmt.Errorf("%w: got %d", ErrJoyScoreOutOfRange, score)
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.joyScore = score
	return nil
}

func (f *Flow) SetNotes(notes string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.notes = notes
}

func (f *Flow) JoyScore() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.joyScore
}

func (f *Flow) Notes() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.notes
}

// Result returns the outcome of the last submission. Exactly one of the
// two is non-empty after a completed Submit.
func (f *Flow) Result() (successMsg, errorMsg string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.successMsg, f.errorMsg
}

// Submit sends the captured joy score and notes. The prior result is
// cleared first; on return either a success or a failure message is set.
// No retry, no local state to roll back.
func (f *Flow) Submit(ctx context.Context) error {
	f.mu.Lock()
	if f.submitting {
		f.mu.Unlock()
		return ErrSubmitInFlight
	}
	f.submitting = true
	f.successMsg = ""
	f.errorMsg = ""
	joyScore := f.joyScore
	notes := f.notes
	f.mu.Unlock()

	err := f.svc.SubmitCheckin(ctx, f.childID, joyScore, notes)

	f.mu.Lock()
	defer f.mu.Unlock()
	f.submitting = false
	if err != nil {
		f.errorMsg = fmt.Sprintf("Check-in could not be saved: %v", err)
		return err
	}
	f.successMsg = "Check-in saved. See you tomorrow! 🌙"
	return nil
}
