package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/nakachan-ing/lifeos-cli/internal/model"
)

// PlanSnapshot is one cached daily plan as last confirmed by the server.
type PlanSnapshot struct {
	ID        string       `json:"id"`
	ChildID   int          `json:"child_id"`
	Date      string       `json:"date"` // yyyy-mm-dd
	FetchedAt string       `json:"fetched_at"`
	Tasks     []model.Task `json:"tasks"`
}

func LoadJson[T any](filePath string, v *[]T) error {
	if _, err := os.Stat(filePath); os.IsNotExist(err) {
		// Missing file means an empty collection
		*v = []T{}
		return nil
	} else if err != nil {
		return fmt.Errorf("❌ Failed to check JSON file: %w", err)
	}

	jsonBytes, err := os.ReadFile(filePath)
	if err != nil {
		return fmt.Errorf("❌ Failed to read JSON file: %w", err)
	}

	if len(jsonBytes) > 0 {
		err = json.Unmarshal(jsonBytes, v)
		if err != nil {
			return fmt.Errorf("❌ Failed to parse JSON: %w", err)
		}
	}

	return nil
}

func SaveUpdatedJson[T any](items []T, jsonPath string) error {
	updatedJson, err := json.MarshalIndent(items, "", "  ")
	if err != nil {
		return fmt.Errorf("❌ Failed to convert to JSON: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(jsonPath), 0755); err != nil {
		return fmt.Errorf("❌ Failed to create data directory: %w", err)
	}

	err = os.WriteFile(jsonPath, updatedJson, 0644)
	if err != nil {
		return fmt.Errorf("❌ Failed to write JSON file: %w", err)
	}

	return nil
}

func snapshotsPath(config model.Config) string {
	return filepath.Join(config.JsonDataDir, "plans.json")
}

func checkinsPath(config model.Config) string {
	return filepath.Join(config.JsonDataDir, "checkins.json")
}

// SavePlanSnapshot replaces any existing snapshot for the same child/date.
func SavePlanSnapshot(tasks []model.Task, childID int, config model.Config) error {
	var snapshots []PlanSnapshot
	if err := LoadJson(snapshotsPath(config), &snapshots); err != nil {
		return err
	}

	now := time.Now()
	today := now.Format("2006-01-02")

	updated := []PlanSnapshot{}
	for _, snap := range snapshots {
		if snap.ChildID == childID && snap.Date == today {
			continue
		}
		updated = append(updated, snap)
	}

	updated = append(updated, PlanSnapshot{
		ID:        uuid.NewString(),
		ChildID:   childID,
		Date:      today,
		FetchedAt: now.Format("2006-01-02 15:04:05"),
		Tasks:     tasks,
	})

	// Keep only the retention window
	if config.Snapshot.Retention > 0 {
		sort.Slice(updated, func(i, j int) bool {
			return updated[i].Date < updated[j].Date
		})
		if len(updated) > config.Snapshot.Retention {
			updated = updated[len(updated)-config.Snapshot.Retention:]
		}
	}

	return SaveUpdatedJson(updated, snapshotsPath(config))
}

// LoadPlanSnapshot returns the most recent cached plan for a child.
func LoadPlanSnapshot(childID int, config model.Config) (*PlanSnapshot, error) {
	var snapshots []PlanSnapshot
	if err := LoadJson(snapshotsPath(config), &snapshots); err != nil {
		return nil, err
	}

	var latest *PlanSnapshot
	for i := range snapshots {
		if snapshots[i].ChildID != childID {
			continue
		}
		if latest == nil || snapshots[i].Date > latest.Date {
			latest = &snapshots[i]
		}
	}

	if latest == nil {
		return nil, fmt.Errorf("no cached plan found for child %d", childID)
	}
	return latest, nil
}

// AppendCheckinRecord logs a confirmed check-in locally.
func AppendCheckinRecord(checkin model.Checkin, config model.Config) error {
	var records []model.CheckinRecord
	if err := LoadJson(checkinsPath(config), &records); err != nil {
		return err
	}

	records = append(records, model.CheckinRecord{
		ID:          uuid.NewString(),
		ChildID:     checkin.ChildID,
		JoyScore:    checkin.JoyScore,
		ParentNotes: checkin.ParentNotes,
		SubmittedAt: time.Now().Format("2006-01-02 15:04:05"),
	})

	return SaveUpdatedJson(records, checkinsPath(config))
}
