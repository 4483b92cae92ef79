package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/nakachan-ing/lifeos-cli/internal/model"
)

func samplePlan() []model.Task {
	return []model.Task{
		{ID: 1, ChildID: 1, Pillar: model.PillarCognitive, Title: "Shape puzzle", DurationMinutes: 20, DifficultyLevel: model.DifficultyEasy, DateAssigned: "2026-08-29"},
		{ID: 2, ChildID: 1, Pillar: model.PillarPhysical, Title: "Obstacle course", DurationMinutes: 30, DifficultyLevel: model.DifficultyMedium, DateAssigned: "2026-08-29"},
	}
}

func TestFetchPlan(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet || r.URL.Path != "/daily-plan/1" {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		json.NewEncoder(w).Encode(samplePlan())
	}))
	defer server.Close()

	client := NewWithBaseURL(server.URL)
	tasks, err := client.FetchPlan(context.Background(), 1)
	if err != nil {
		t.Fatalf("FetchPlan failed: %v", err)
	}
	if len(tasks) != 2 {
		t.Fatalf("expected 2 tasks, got %d", len(tasks))
	}
	if tasks[0].Title != "Shape puzzle" || tasks[1].Pillar != model.PillarPhysical {
		t.Errorf("unexpected tasks: %+v", tasks)
	}
}

func TestFetchPlanBootstrapRecovery(t *testing.T) {
	var fetchCalls, profileCalls int
	var profileBody createProfileRequest

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodGet && r.URL.Path == "/daily-plan/7":
			fetchCalls++
			if fetchCalls == 1 {
				http.Error(w, `{"detail":"Child profile not found"}`, http.StatusNotFound)
				return
			}
			json.NewEncoder(w).Encode(samplePlan())
		case r.Method == http.MethodPost && r.URL.Path == "/profiles/":
			profileCalls++
			if err := json.NewDecoder(r.Body).Decode(&profileBody); err != nil {
				t.Errorf("failed to decode profile body: %v", err)
			}
			w.WriteHeader(http.StatusCreated)
			json.NewEncoder(w).Encode(model.ChildProfile{ID: 7, Name: profileBody.Name})
		default:
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
	}))
	defer server.Close()

	client := NewWithBaseURL(server.URL)
	tasks, err := client.FetchPlan(context.Background(), 7)
	if err != nil {
		t.Fatalf("FetchPlan failed after bootstrap: %v", err)
	}
	if len(tasks) != 2 {
		t.Errorf("expected 2 tasks, got %d", len(tasks))
	}
	if fetchCalls != 2 {
		t.Errorf("expected exactly 2 fetch calls, got %d", fetchCalls)
	}
	if profileCalls != 1 {
		t.Errorf("expected exactly 1 profile-creation call, got %d", profileCalls)
	}
	if profileBody.Name != bootstrapProfile.Name || profileBody.DateOfBirth != bootstrapProfile.DateOfBirth {
		t.Errorf("bootstrap profile payload mismatch: %+v", profileBody)
	}
	if profileBody.ParentPriority != bootstrapProfile.ParentPriority {
		t.Errorf("bootstrap priority mismatch: %q", profileBody.ParentPriority)
	}
}

func TestFetchPlanBootstrapRetryFails(t *testing.T) {
	var fetchCalls, profileCalls int

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodGet && r.URL.Path == "/daily-plan/7":
			fetchCalls++
			http.Error(w, `{"detail":"Child profile not found"}`, http.StatusNotFound)
		case r.Method == http.MethodPost && r.URL.Path == "/profiles/":
			profileCalls++
			w.WriteHeader(http.StatusCreated)
			json.NewEncoder(w).Encode(model.ChildProfile{ID: 7})
		default:
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
	}))
	defer server.Close()

	client := NewWithBaseURL(server.URL)
	_, err := client.FetchPlan(context.Background(), 7)
	if !errors.Is(err, ErrPlanUnavailable) {
		t.Fatalf("expected ErrPlanUnavailable, got %v", err)
	}
	// One recovery only: no retry storm
	if fetchCalls != 2 {
		t.Errorf("expected exactly 2 fetch calls, got %d", fetchCalls)
	}
	if profileCalls != 1 {
		t.Errorf("expected exactly 1 profile-creation call, got %d", profileCalls)
	}
}

func TestFetchPlanServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer server.Close()

	client := NewWithBaseURL(server.URL)
	_, err := client.FetchPlan(context.Background(), 1)
	if !errors.Is(err, ErrPlanUnavailable) {
		t.Fatalf("expected ErrPlanUnavailable, got %v", err)
	}
}

func TestSetTaskCompletion(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/tasks/complete_task" {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		var payload completeTaskRequest
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			t.Errorf("failed to decode payload: %v", err)
		}
		if payload.TaskID != 3 || !payload.Completed {
			t.Errorf("unexpected payload: %+v", payload)
		}
		json.NewEncoder(w).Encode(model.Task{
			ID: 3, ChildID: 1, Completed: true,
			CompletionTimestamp: "2026-08-29T10:15:00Z",
		})
	}))
	defer server.Close()

	client := NewWithBaseURL(server.URL)
	task, err := client.SetTaskCompletion(context.Background(), 3, true)
	if err != nil {
		t.Fatalf("SetTaskCompletion failed: %v", err)
	}
	if !task.Completed || task.CompletionTimestamp == "" {
		t.Errorf("expected server-computed fields, got %+v", task)
	}
}

func TestSetTaskCompletionFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"detail":"Task not found"}`, http.StatusNotFound)
	}))
	defer server.Close()

	client := NewWithBaseURL(server.URL)
	_, err := client.SetTaskCompletion(context.Background(), 99, true)
	if !errors.Is(err, ErrTaskUpdateFailed) {
		t.Fatalf("expected ErrTaskUpdateFailed, got %v", err)
	}
}

func TestSubmitCheckin(t *testing.T) {
	var payload checkinRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/daily-plan/1/checkin" {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			t.Errorf("failed to decode payload: %v", err)
		}
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(map[string]any{"id": 1, "child_id": 1, "joy_score": payload.JoyScore})
	}))
	defer server.Close()

	client := NewWithBaseURL(server.URL)
	if err := client.SubmitCheckin(context.Background(), 1, 4, "great day"); err != nil {
		t.Fatalf("SubmitCheckin failed: %v", err)
	}
	if payload.JoyScore != 4 || payload.ParentNotes != "great day" {
		t.Errorf("unexpected payload: %+v", payload)
	}
}

func TestSubmitCheckinFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"detail":"Child profile not found"}`, http.StatusNotFound)
	}))
	defer server.Close()

	client := NewWithBaseURL(server.URL)
	err := client.SubmitCheckin(context.Background(), 1, 4, "great day")
	if !errors.Is(err, ErrCheckinSubmitFailed) {
		t.Fatalf("expected ErrCheckinSubmitFailed, got %v", err)
	}
}
