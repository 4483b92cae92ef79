package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/nakachan-ing/lifeos-cli/internal/model"
)

const defaultTimeout = 15 * time.Second

// Placeholder demographics used when a plan fetch hits a missing profile.
// The user can edit the profile afterwards with `lifeos profile`.
var bootstrapProfile = createProfileRequest{
	Name:           "New Explorer",
	DateOfBirth:    "2021-01-01",
	Interests:      []string{"stories", "blocks"},
	ParentPriority: "balanced",
}

// Client is a typed wrapper around the LifeOS backend API. It owns no
// state beyond transport configuration.
type Client struct {
	baseURL string
	client  *http.Client
}

type createProfileRequest struct {
	Name           string   `json:"name"`
	DateOfBirth    string   `json:"date_of_birth"`
	Interests      []string `json:"interests"`
	ParentPriority string   `json:"parent_priority"`
}

type completeTaskRequest struct {
	TaskID    int  `json:"task_id"`
	Completed bool `json:"completed"`
}

type checkinRequest struct {
	JoyScore    int    `json:"joy_score"`
	ParentNotes string `json:"parent_notes"`
}

func New(config model.Config) *Client {
	timeout := defaultTimeout
	if config.API.TimeoutSeconds > 0 {
		timeout = time.Duration(config.API.TimeoutSeconds) * time.Second
	}
	return &Client{
		baseURL: config.API.BaseURL,
		client:  &http.Client{Timeout: timeout},
	}
}

// NewWithBaseURL is used by tests and by callers that bypass config.
func NewWithBaseURL(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		client:  &http.Client{Timeout: defaultTimeout},
	}
}

// doJSON issues one request and decodes a 2xx response body into out.
// A nil out discards the body. Single-shot: no retries at this level.
func (c *Client) doJSON(ctx context.Context, method, path string, body, out any) error {
	var reqBody io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
		reqBody = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		io.Copy(io.Discard, resp.Body)
		return &statusError{code: resp.StatusCode}
	}

	if out == nil {
		io.Copy(io.Discard, resp.Body)
		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

type statusError struct {
	code int
}

func (e *statusError) Error() string {
	return fmt.Sprintf("server returned status %d", e.code)
}

func isNotFound(err error) bool {
	statusErr, ok := err.(*statusError)
	return ok && statusErr.code == http.StatusNotFound
}

// FetchPlan returns today's ordered task list for a child. On a 404 it
// performs exactly one recovery: create a placeholder profile, then retry
// the fetch once. Any other failure, or a failed retry, reports
// ErrPlanUnavailable.
func (c *Client) FetchPlan(ctx context.Context, childID int) ([]model.Task, error) {
	path := "/daily-plan/" + strconv.Itoa(childID)

	var tasks []model.Task
	err := c.doJSON(ctx, http.MethodGet, path, nil, &tasks)
	if err == nil {
		return tasks, nil
	}

	if !isNotFound(err) {
		return nil, fmt.Errorf("%w: %v", ErrPlanUnavailable, err)
	}

	// Missing profile: bootstrap once, then retry once. No retry storm.
	if _, err := c.CreateProfile(ctx, bootstrapProfile.Name, bootstrapProfile.DateOfBirth,
		bootstrapProfile.Interests, bootstrapProfile.ParentPriority); err != nil {
		return nil, fmt.Errorf("%w: bootstrap profile creation failed: %v", ErrPlanUnavailable, err)
	}

	if err := c.doJSON(ctx, http.MethodGet, path, nil, &tasks); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPlanUnavailable, err)
	}
	return tasks, nil
}

// SetTaskCompletion toggles one task and returns the authoritative
// server-side task, including server-computed fields.
func (c *Client) SetTaskCompletion(ctx context.Context, taskID int, completed bool) (model.Task, error) {
	var task model.Task
	payload := completeTaskRequest{TaskID: taskID, Completed: completed}
	if err := c.doJSON(ctx, http.MethodPost, "/tasks/complete_task", payload, &task); err != nil {
		return model.Task{}, fmt.Errorf("%w: %v", ErrTaskUpdateFailed, err)
	}
	return task, nil
}

// SubmitCheckin posts the daily joy score + notes. Fire-and-confirm: the
// response payload is discarded on success.
func (c *Client) SubmitCheckin(ctx context.Context, childID, joyScore int, notes string) error {
	path := "/daily-plan/" + strconv.Itoa(childID) + "/checkin"
	payload := checkinRequest{JoyScore: joyScore, ParentNotes: notes}
	if err := c.doJSON(ctx, http.MethodPost, path, payload, nil); err != nil {
		return fmt.Errorf("%w: %v", ErrCheckinSubmitFailed, err)
	}
	return nil
}

func (c *Client) CreateProfile(ctx context.Context, name, dateOfBirth string, interests []string, priority string) (model.ChildProfile, error) {
	var profile model.ChildProfile
	payload := createProfileRequest{
		Name:           name,
		DateOfBirth:    dateOfBirth,
		Interests:      interests,
		ParentPriority: priority,
	}
	if err := c.doJSON(ctx, http.MethodPost, "/profiles/", payload, &profile); err != nil {
		return model.ChildProfile{}, fmt.Errorf("%w: %v", ErrProfileUnavailable, err)
	}
	return profile, nil
}

func (c *Client) GetProfile(ctx context.Context, childID int) (model.ChildProfile, error) {
	var profile model.ChildProfile
	path := "/profiles/" + strconv.Itoa(childID)
	if err := c.doJSON(ctx, http.MethodGet, path, nil, &profile); err != nil {
		return model.ChildProfile{}, fmt.Errorf("%w: %v", ErrProfileUnavailable, err)
	}
	return profile, nil
}

func (c *Client) WeeklyProgress(ctx context.Context, childID int) (model.WeeklyProgress, error) {
	var progress model.WeeklyProgress
	path := "/daily-plan/" + strconv.Itoa(childID) + "/weekly-progress"
	if err := c.doJSON(ctx, http.MethodGet, path, nil, &progress); err != nil {
		return model.WeeklyProgress{}, fmt.Errorf("failed to fetch weekly progress: %w", err)
	}
	return progress, nil
}

func (c *Client) PillarDistribution(ctx context.Context, childID int) ([]model.PillarCount, error) {
	var rows []model.PillarCount
	path := "/analytics/pillar-distribution?child_id=" + url.QueryEscape(strconv.Itoa(childID))
	if err := c.doJSON(ctx, http.MethodGet, path, nil, &rows); err != nil {
		return nil, fmt.Errorf("failed to fetch pillar distribution: %w", err)
	}
	return rows, nil
}

func (c *Client) DifficultyTrend(ctx context.Context, childID int) ([]model.DifficultyPoint, error) {
	var rows []model.DifficultyPoint
	path := "/analytics/difficulty-trend?child_id=" + url.QueryEscape(strconv.Itoa(childID))
	if err := c.doJSON(ctx, http.MethodGet, path, nil, &rows); err != nil {
		return nil, fmt.Errorf("failed to fetch difficulty trend: %w", err)
	}
	return rows, nil
}

func (c *Client) Milestones(ctx context.Context, childID int) ([]model.Milestone, error) {
	var milestones []model.Milestone
	path := "/milestones/" + strconv.Itoa(childID)
	if err := c.doJSON(ctx, http.MethodGet, path, nil, &milestones); err != nil {
		return nil, fmt.Errorf("failed to fetch milestones: %w", err)
	}
	return milestones, nil
}
