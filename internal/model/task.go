package model

// Pillar values a task can belong to.
const (
	PillarCognitive  = "Cognitive"
	PillarPhysical   = "Physical"
	PillarLanguage   = "Language"
	PillarCharacter  = "Character"
	PillarCreativity = "Creativity"
)

// Difficulty levels assigned by the planner.
const (
	DifficultyEasy   = "easy"
	DifficultyMedium = "medium"
	DifficultyHard   = "hard"
)

type Task struct {
	ID                  int    `json:"id"`
	ChildID             int    `json:"child_id"`
	Pillar              string `json:"pillar"` // Cognitive, Physical, Language, Character, Creativity
	Title               string `json:"title"`
	Description         string `json:"description"`
	DurationMinutes     int    `json:"duration_minutes"`
	DifficultyLevel     string `json:"difficulty_level"` // easy, medium, hard
	Completed           bool   `json:"completed"`
	CompletionTimestamp string `json:"completion_timestamp,omitempty"` // set by the server
	DateAssigned        string `json:"date_assigned"`                  // yyyy-mm-dd
}
