package checkin

import (
	"context"
	"errors"
	"testing"
)

var errMockSubmit = errors.New("submit rejected")

// mockService implements Service with swappable behavior per test
type mockService struct {
	SubmitCheckinFunc func(ctx context.Context, childID, joyScore int, notes string) error
}

func (m *mockService) SubmitCheckin(ctx context.Context, childID, joyScore int, notes string) error {
	if m.SubmitCheckinFunc != nil {
		return m.SubmitCheckinFunc(ctx, childID, joyScore, notes)
	}
	return nil
}

func TestSubmitSuccess(t *testing.T) {
	var gotChildID, gotJoy int
	var gotNotes string
	svc := &mockService{
		SubmitCheckinFunc: func(ctx context.Context, childID, joyScore int, notes string) error {
			gotChildID, gotJoy, gotNotes = childID, joyScore, notes
			return nil
		},
	}

	flow := NewFlow(svc, 1)
	if err := flow.SetJoyScore(4); err != nil {
		t.Fatalf("SetJoyScore failed: %v", err)
	}
	flow.SetNotes("great day")

	if err := flow.Submit(context.Background()); err != nil {
		t.Fatalf("Submit failed: %v", err)
	}

	if gotChildID != 1 || gotJoy != 4 || gotNotes != "great day" {
		t.Errorf("unexpected submission: child=%d joy=%d notes=%q", gotChildID, gotJoy, gotNotes)
	}

	successMsg, errorMsg := flow.Result()
	if successMsg == "" {
		t.Error("expected a success message")
	}
	if errorMsg != "" {
		t.Errorf("expected no error message, got %q", errorMsg)
	}
}

func TestSubmitFailure(t *testing.T) {
	svc := &mockService{
		SubmitCheckinFunc: func(ctx context.Context, childID, joyScore int, notes string) error {
			return errMockSubmit
		},
	}

	flow := NewFlow(svc, 1)
	if err := flow.Submit(context.Background()); !errors.Is(err, errMockSubmit) {
		t.Fatalf("expected mock error, got %v", err)
	}

	successMsg, errorMsg := flow.Result()
	if errorMsg == "" {
		t.Error("expected an error message")
	}
	if successMsg != "" {
		t.Errorf("expected no success message, got %q", successMsg)
	}
}

func TestSubmitClearsPriorResult(t *testing.T) {
	fail := true
	svc := &mockService{
		SubmitCheckinFunc: func(ctx context.Context, childID, joyScore int, notes string) error {
			if fail {
				return errMockSubmit
			}
			return nil
		},
	}

	flow := NewFlow(svc, 1)
	flow.Submit(context.Background())

	fail = false
	if err := flow.Submit(context.Background()); err != nil {
		t.Fatalf("second Submit failed: %v", err)
	}

	successMsg, errorMsg := flow.Result()
	if errorMsg != "" {
		t.Errorf("stale error message survived: %q", errorMsg)
	}
	if successMsg == "" {
		t.Error("expected a success message")
	}
}

func TestSubmitRejectedWhileInFlight(t *testing.T) {
	release := make(chan struct{})
	started := make(chan struct{})
	svc := &mockService{
		SubmitCheckinFunc: func(ctx context.Context, childID, joyScore int, notes string) error {
			close(started)
			<-release
			return nil
		},
	}

	flow := NewFlow(svc, 1)

	done := make(chan error, 1)
	go func() {
		done <- flow.Submit(context.Background())
	}()

	<-started
	if err := flow.Submit(context.Background()); !errors.Is(err, ErrSubmitInFlight) {
		t.Fatalf("expected ErrSubmitInFlight, got %v", err)
	}
	close(release)

	if err := <-done; err != nil {
		t.Fatalf("first Submit failed: %v", err)
	}
}

func TestJoyScoreRange(t *testing.T) {
	flow := NewFlow(&mockService{}, 1)
	for _, score := range []int{0, 6, -1} {
		if err := flow.SetJoyScore(score); !errors.Is(err, ErrJoyScoreOutOfRange) {
			t.Errorf("SetJoyScore(%d): expected ErrJoyScoreOutOfRange, got %v", score, err)
		}
	}
	for score := MinJoyScore; score <= MaxJoyScore; score++ {
		if err := flow.SetJoyScore(score); err != nil {
			t.Errorf("SetJoyScore(%d) failed: %v", score, err)
		}
	}
}
