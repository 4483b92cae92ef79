package store

import (
	"testing"
	"time"

	"github.com/nakachan-ing/lifeos-cli/internal/model"
)

func testConfig(t *testing.T) model.Config {
	t.Helper()
	config := model.DefaultConfig()
	config.JsonDataDir = t.TempDir()
	return config
}

func TestPlanSnapshotRoundTrip(t *testing.T) {
	config := testConfig(t)
	tasks := []model.Task{
		{ID: 1, ChildID: 2, Pillar: model.PillarCognitive, Title: "Shape puzzle", Completed: true},
		{ID: 2, ChildID: 2, Pillar: model.PillarCreativity, Title: "Finger painting"},
	}

	if err := SavePlanSnapshot(tasks, 2, config); err != nil {
		t.Fatalf("SavePlanSnapshot failed: %v", err)
	}

	snapshot, err := LoadPlanSnapshot(2, config)
	if err != nil {
		t.Fatalf("LoadPlanSnapshot failed: %v", err)
	}
	if snapshot.ChildID != 2 || len(snapshot.Tasks) != 2 {
		t.Errorf("unexpected snapshot: %+v", snapshot)
	}
	if snapshot.Tasks[0].Title != "Shape puzzle" {
		t.Errorf("task order not preserved: %+v", snapshot.Tasks)
	}
	if snapshot.Date != time.Now().Format("2006-01-02") {
		t.Errorf("unexpected snapshot date: %s", snapshot.Date)
	}
	if snapshot.ID == "" {
		t.Error("expected a snapshot ID")
	}
}

func TestPlanSnapshotReplacesSameDay(t *testing.T) {
	config := testConfig(t)

	if err := SavePlanSnapshot([]model.Task{{ID: 1}}, 2, config); err != nil {
		t.Fatalf("first SavePlanSnapshot failed: %v", err)
	}
	if err := SavePlanSnapshot([]model.Task{{ID: 1, Completed: true}}, 2, config); err != nil {
		t.Fatalf("second SavePlanSnapshot failed: %v", err)
	}

	var snapshots []PlanSnapshot
	if err := LoadJson(config.JsonDataDir+"/plans.json", &snapshots); err != nil {
		t.Fatalf("LoadJson failed: %v", err)
	}
	if len(snapshots) != 1 {
		t.Fatalf("expected 1 snapshot after same-day save, got %d", len(snapshots))
	}
	if !snapshots[0].Tasks[0].Completed {
		t.Error("latest snapshot not kept")
	}
}

func TestLoadPlanSnapshotMissing(t *testing.T) {
	config := testConfig(t)
	if _, err := LoadPlanSnapshot(99, config); err == nil {
		t.Fatal("expected an error for a missing snapshot")
	}
}

func TestAppendCheckinRecord(t *testing.T) {
	config := testConfig(t)
	checkin := model.Checkin{ChildID: 2, JoyScore: 4, ParentNotes: "great day"}

	if err := AppendCheckinRecord(checkin, config); err != nil {
		t.Fatalf("AppendCheckinRecord failed: %v", err)
	}
	if err := AppendCheckinRecord(checkin, config); err != nil {
		t.Fatalf("second AppendCheckinRecord failed: %v", err)
	}

	var records []model.CheckinRecord
	if err := LoadJson(config.JsonDataDir+"/checkins.json", &records); err != nil {
		t.Fatalf("LoadJson failed: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(records))
	}
	if records[0].JoyScore != 4 || records[0].ParentNotes != "great day" {
		t.Errorf("unexpected record: %+v", records[0])
	}
	if records[0].ID == records[1].ID {
		t.Error("expected unique record IDs")
	}
}

func TestLoadJsonMissingFile(t *testing.T) {
	var tasks []model.Task
	if err := LoadJson(t.TempDir()+"/missing.json", &tasks); err != nil {
		t.Fatalf("LoadJson on a missing file should return empty, got %v", err)
	}
	if len(tasks) != 0 {
		t.Errorf("expected empty slice, got %+v", tasks)
	}
}
