package api

import "errors"

// Every failure the client reports wraps one of these. Network errors,
// parse errors, and non-2xx statuses are not distinguished.
var (
	ErrPlanUnavailable     = errors.New("daily plan unavailable")
	ErrTaskUpdateFailed    = errors.New("task update failed")
	ErrCheckinSubmitFailed = errors.New("check-in submit failed")
	ErrProfileUnavailable  = errors.New("child profile unavailable")
)
