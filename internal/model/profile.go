package model

type ChildProfile struct {
	ID             int      `json:"id"`
	Name           string   `json:"name"`
	DateOfBirth    string   `json:"date_of_birth"` // yyyy-mm-dd
	Interests      []string `json:"interests"`
	ParentPriority string   `json:"parent_priority"`
}
