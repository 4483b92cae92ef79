package model

// Checkin is the daily joy score + parent notes submission for one child.
type Checkin struct {
	ChildID     int    `json:"child_id"`
	JoyScore    int    `json:"joy_score"` // 1..5
	ParentNotes string `json:"parent_notes"`
}

// CheckinRecord is a confirmed check-in kept in the local log.
type CheckinRecord struct {
	ID          string `json:"id"`
	ChildID     int    `json:"child_id"`
	JoyScore    int    `json:"joy_score"`
	ParentNotes string `json:"parent_notes"`
	SubmittedAt string `json:"submitted_at"` // yyyy-mm-dd hh:mm:ss
}
